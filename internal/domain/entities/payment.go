package entities

import (
	"math"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentProviderRazorpay is the only provider orders are created with.
const PaymentProviderRazorpay = "razorpay"

// Payment is the single payment attempt attached to a booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the owning booking item carries payment_id, which enforces one payment per booking
//   - table payment_orders maps provider order id -> payment id (the reconciliation key)
//
// ProviderPaymentID holds the provider ORDER id once one was created. It is never
// overwritten after being set.

type Payment struct {
	ID                string        `json:"id"`
	BookingID         string        `json:"booking_id"`
	Amount            float64       `json:"amount"`
	Provider          string        `json:"provider"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	Status            PaymentStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// AmountMinorUnits converts the major-unit amount to the provider's integer minor units.
func (p Payment) AmountMinorUnits() int64 {
	return ToMinorUnits(p.Amount)
}

func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
