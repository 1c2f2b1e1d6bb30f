package handlers

import (
	"log"
	"net/http"

	"pandit_booking/internal/adapter/http/dto/request"
	"pandit_booking/internal/adapter/http/dto/response"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for bookings.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "booking", err)
		return
	}
	requester := middleware.CurrentPrincipal(c)

	created, err := h.usecase.Create(c.Request.Context(), requester, req.ToInput())
	if err != nil {
		log.Printf("[booking][handler] create failed user_id=%s puja_type_id=%s err=%v", requester.UserID, req.PujaTypeID, err)
		respondError(c, "booking", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(created))
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.usecase.ListMine(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.Get(c.Request.Context(), c.Param("id"), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	requester := middleware.CurrentPrincipal(c)

	b, err := h.usecase.Cancel(c.Request.Context(), id, requester)
	if err != nil {
		log.Printf("[booking][handler] cancel failed booking_id=%s user_id=%s err=%v", id, requester.UserID, err)
		respondError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req request.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "booking", err)
		return
	}
	id := c.Param("id")
	requester := middleware.CurrentPrincipal(c)

	b, err := h.usecase.Update(c.Request.Context(), id, requester, req.ToUpdate())
	if err != nil {
		log.Printf("[booking][handler] update failed booking_id=%s user_id=%s err=%v", id, requester.UserID, err)
		respondError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// ListPanditBookings serves the assigned pandit and admins.
func (h *BookingHandler) ListPanditBookings(c *gin.Context) {
	bookings, err := h.usecase.ListForPandit(c.Request.Context(), c.Param("id"), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	bookings, err := h.usecase.ListAll(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}
