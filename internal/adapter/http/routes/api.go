package routes

import (
	"net/http"

	"pandit_booking/internal/adapter/http/handlers"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathPujas         = "/pujas"
	PathPandits       = "/pandits"
	PathBookings      = "/bookings"
	PathPayments      = "/payments"
	PathConsultations = "/consultations"
	PathAdmin         = "/admin"
)

type apiHandlers struct {
	bookings      *handlers.BookingHandler
	payments      *handlers.PaymentHandler
	pandits       *handlers.PanditHandler
	pujas         *handlers.PujaTypeHandler
	consultations *handlers.ConsultationHandler
	admin         *handlers.AdminHandler
}

// Ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}

func addPublicRoutes(rg *gin.RouterGroup, h apiHandlers) {
	pujas := rg.Group(PathPujas)
	{
		pujas.GET("", h.pujas.List)
		pujas.GET("/:id", h.pujas.Get)
	}

	pandits := rg.Group(PathPandits)
	{
		pandits.GET("", h.pandits.ListApproved)
		pandits.GET("/:id", h.pandits.GetPandit)
	}

	// Called by Razorpay; authenticated by the webhook signature header.
	rg.POST(PathPayments+"/webhook", h.payments.Webhook)
}

func addAuthenticatedRoutes(rg *gin.RouterGroup, h apiHandlers) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", h.bookings.CreateBooking)
		bookings.GET("/my-bookings", h.bookings.ListMyBookings)
		bookings.GET("/:id", h.bookings.GetBooking)
		bookings.PATCH("/:id/cancel", h.bookings.CancelBooking)
		bookings.PATCH("/:id", h.bookings.UpdateBooking)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/create", h.payments.CreatePayment)
		payments.POST("/razorpay/order", h.payments.CreateProviderOrder)
		payments.POST("/razorpay/verify", h.payments.VerifyPayment)
		payments.GET("/booking/:booking_id", h.payments.GetPaymentByBooking)
	}

	pandits := rg.Group(PathPandits)
	{
		pandits.POST("/apply", h.pandits.Apply)
		pandits.GET("/:id/bookings", h.bookings.ListPanditBookings)
		pandits.GET("/:id/consultations", h.consultations.ListForPandit)
	}

	rg.POST(PathConsultations, h.consultations.Create)
}

func addAdminRoutes(rg *gin.RouterGroup, h apiHandlers) {
	admin := rg.Group(PathAdmin, middleware.RequireRole(entities.UserRoleAdmin))
	{
		admin.POST("/pujas", h.pujas.Create)
		admin.PATCH("/pujas/:id", h.pujas.Update)
		admin.GET("/pandits", h.pandits.ListAll)
		admin.PATCH("/pandits/:id/approve", h.pandits.SetApproval)
		admin.GET("/stats", h.admin.Stats)
		admin.GET("/bookings", h.bookings.ListAllBookings)
		admin.GET("/users", h.admin.ListUsers)
		admin.POST("/virtual-sessions", h.admin.CreateVirtualSession)
		admin.GET("/virtual-sessions", h.admin.ListVirtualSessions)
	}
}
