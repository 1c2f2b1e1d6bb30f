package handlers

import (
	"context"
	"log"
	"net/http"

	"pandit_booking/internal/adapter/http/dto/request"
	"pandit_booking/internal/adapter/http/dto/response"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/usecase"
	"pandit_booking/pkg"

	"github.com/gin-gonic/gin"
	"github.com/razorpay/razorpay-go/utils"
)

const (
	headerWebhookSignature = "X-Razorpay-Signature"
	headerWebhookEventID   = "X-Razorpay-Event-Id"
)

var (
	errMissingWebhookSignature = pkg.NewDomainErrorSimple("MISSING_WEBHOOK_SIGNATURE", "X-Razorpay-Signature header is required", http.StatusBadRequest)
)

// WebhookDeduplicator remembers processed provider event ids.
type WebhookDeduplicator interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}

// PaymentHandler handles HTTP requests for payments.
//
// webhookSecret and dedup are optional transport guards in front of the webhook
// use case; an empty secret skips the signature header check and a nil dedup
// processes every delivery.

type PaymentHandler struct {
	usecase       usecase.IPaymentUseCase
	webhookSecret string
	dedup         WebhookDeduplicator
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, webhookSecret string, dedup WebhookDeduplicator) *PaymentHandler {
	return &PaymentHandler{usecase: uc, webhookSecret: webhookSecret, dedup: dedup}
}

// CreatePayment godoc
// @Summary Create the payment record for a booking
// @Tags payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param payment body request.CreatePaymentRequest true "Booking to pay for"
// @Success 201 {object} response.PaymentResponse
// @Failure 403 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError "Booking already paid"
// @Router /payments/create [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "payment", err)
		return
	}
	requester := middleware.CurrentPrincipal(c)
	log.Printf("[payment][handler] create record start booking_id=%s user_id=%s", req.BookingID, requester.UserID)

	p, err := h.usecase.CreatePaymentRecord(c.Request.Context(), req.BookingID, requester, req.ProviderName())
	if err != nil {
		log.Printf("[payment][handler] create record failed booking_id=%s err=%v", req.BookingID, err)
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// CreateProviderOrder godoc
// @Summary Create or reuse the Razorpay order for a booking
// @Tags payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param order body request.CreateOrderRequest true "Booking to pay for"
// @Success 200 {object} response.ProviderOrderResponse
// @Failure 502 {object} pkg.HTTPError "Razorpay call failed"
// @Failure 503 {object} pkg.HTTPError "Razorpay not configured"
// @Router /payments/razorpay/order [post]
func (h *PaymentHandler) CreateProviderOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "payment", err)
		return
	}
	requester := middleware.CurrentPrincipal(c)
	log.Printf("[payment][handler] order start booking_id=%s user_id=%s", req.BookingID, requester.UserID)

	res, err := h.usecase.CreateProviderOrder(c.Request.Context(), req.BookingID, requester)
	if err != nil {
		log.Printf("[payment][handler] order failed booking_id=%s err=%v", req.BookingID, err)
		respondError(c, "payment", err)
		return
	}
	log.Printf("[payment][handler] order success booking_id=%s payment_id=%s order_id=%s reused=%t", req.BookingID, res.Payment.ID, res.Order.ID, res.Reused)
	c.JSON(http.StatusOK, response.FromProviderOrder(res))
}

// VerifyPayment godoc
// @Summary Verify a Razorpay Checkout signature and confirm the booking
// @Tags payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param verification body request.VerifyPaymentRequest true "Checkout handler payload"
// @Success 200 {object} response.VerificationResponse
// @Failure 400 {object} pkg.HTTPError "Signature mismatch"
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/razorpay/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "payment", err)
		return
	}
	requester := middleware.CurrentPrincipal(c)

	res, err := h.usecase.VerifyClientSignature(c.Request.Context(), req.ToInput(), requester)
	if err != nil {
		log.Printf("[payment][handler] verify failed order_id=%s user_id=%s err=%v", req.RazorpayOrderID, requester.UserID, err)
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVerification(res))
}

// GetPaymentByBooking godoc
// @Summary Get the payment of a booking
// @Tags payments
// @Produce json
// @Security Bearer
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} response.PaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/booking/{booking_id} [get]
func (h *PaymentHandler) GetPaymentByBooking(c *gin.Context) {
	p, err := h.usecase.GetByBooking(c.Request.Context(), c.Param("booking_id"), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// Webhook is called by the provider, unauthenticated. Errors are returned only
// for payloads the provider should retry or fix; everything else is acknowledged.
//
// @Summary Razorpay webhook
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Razorpay-Signature header string false "HMAC-SHA256 of the body"
// @Success 200 {object} response.WebhookResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		invalidRequest(c, "webhook", err)
		return
	}

	if h.webhookSecret != "" {
		sig := c.GetHeader(headerWebhookSignature)
		if sig == "" {
			log.Printf("[payment][webhook] signature header missing body_len=%d", len(body))
			c.JSON(errMissingWebhookSignature.HTTPStatus, errMissingWebhookSignature.ToHTTPError())
			return
		}
		if !utils.VerifyWebhookSignature(string(body), sig, h.webhookSecret) {
			log.Printf("[payment][webhook] signature rejected body_len=%d", len(body))
			respondError(c, "webhook", usecase.ErrSignatureMismatch)
			return
		}
	}

	ctx := c.Request.Context()
	eventID := c.GetHeader(headerWebhookEventID)
	claimed := false
	if h.dedup != nil && eventID != "" {
		first, err := h.dedup.Claim(ctx, eventID)
		switch {
		case err != nil:
			log.Printf("[payment][webhook] dedup unavailable, processing event_id=%s err=%v", eventID, err)
		case !first:
			log.Printf("[payment][webhook] duplicate delivery event_id=%s", eventID)
			c.JSON(http.StatusOK, response.WebhookResponse{Status: usecase.WebhookStatusIgnored, Reason: "duplicate event"})
			return
		default:
			claimed = true
		}
	}

	res, err := h.usecase.HandleProviderWebhook(ctx, body)
	if err != nil {
		if claimed {
			_ = h.dedup.Forget(context.WithoutCancel(ctx), eventID)
		}
		respondError(c, "webhook", err)
		return
	}
	c.JSON(http.StatusOK, response.FromWebhook(res))
}
