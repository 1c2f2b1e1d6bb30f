package request

import (
	"strings"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase"
)

// CreatePaymentRequest registers a payment record. Provider defaults to razorpay.
type CreatePaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Provider  string `json:"provider"`
}

func (r CreatePaymentRequest) ProviderName() string {
	if strings.TrimSpace(r.Provider) == "" {
		return entities.PaymentProviderRazorpay
	}
	return r.Provider
}

type CreateOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// VerifyPaymentRequest is the payload returned by the Razorpay Checkout handler.
// Missing fields are rejected by the use case so the error carries its stable code.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (r VerifyPaymentRequest) ToInput() usecase.VerifySignatureInput {
	return usecase.VerifySignatureInput{
		OrderID:   strings.TrimSpace(r.RazorpayOrderID),
		PaymentID: strings.TrimSpace(r.RazorpayPaymentID),
		Signature: r.RazorpaySignature,
	}
}
