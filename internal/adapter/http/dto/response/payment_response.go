package response

import (
	"encoding/json"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase"
)

type PaymentResponse struct {
	ID                string    `json:"id"`
	PaymentID         string    `json:"payment_id"`
	BookingID         string    `json:"booking_id"`
	Amount            float64   `json:"amount"`
	Provider          string    `json:"provider"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		PaymentID:         p.ID,
		BookingID:         p.BookingID,
		Amount:            p.Amount,
		Provider:          p.Provider,
		ProviderPaymentID: p.ProviderPaymentID,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type CheckoutUser struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ProviderOrderResponse is everything Razorpay Checkout needs to open on the client.
type ProviderOrderResponse struct {
	Key       string          `json:"key"`
	OrderID   string          `json:"order_id"`
	Order     json.RawMessage `json:"order,omitempty"`
	Amount    float64         `json:"amount"`
	AmountMin int64           `json:"amount_minor"`
	Currency  string          `json:"currency"`
	PaymentID string          `json:"payment_id"`
	BookingID string          `json:"booking_id"`
	User      CheckoutUser    `json:"user"`
	Reused    bool            `json:"reused"`
}

func FromProviderOrder(r usecase.ProviderOrderResult) ProviderOrderResponse {
	return ProviderOrderResponse{
		Key:       r.KeyID,
		OrderID:   r.Order.ID,
		Order:     r.Order.Raw,
		Amount:    r.Payment.Amount,
		AmountMin: r.Order.AmountMinor,
		Currency:  r.Order.Currency,
		PaymentID: r.Payment.ID,
		BookingID: r.Booking.ID,
		User:      CheckoutUser{Name: r.User.Name, Email: r.User.Email, Phone: r.User.Phone},
		Reused:    r.Reused,
	}
}

type VerificationResponse struct {
	Status        string `json:"status"`
	PaymentID     string `json:"payment_id"`
	BookingID     string `json:"booking_id"`
	BookingStatus string `json:"booking_status"`
}

func FromVerification(r usecase.VerificationResult) VerificationResponse {
	return VerificationResponse{
		Status:        usecase.WebhookStatusSuccess,
		PaymentID:     r.Payment.ID,
		BookingID:     r.Booking.ID,
		BookingStatus: string(r.Booking.Status),
	}
}

type WebhookResponse struct {
	Status    string `json:"status"`
	Event     string `json:"event,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func FromWebhook(r usecase.WebhookResult) WebhookResponse {
	return WebhookResponse(r)
}
