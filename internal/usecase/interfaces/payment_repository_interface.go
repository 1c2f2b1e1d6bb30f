package interfaces

import (
	"context"
	"pandit_booking/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
//
// The multi-row operations are atomic: either every row changes or none does.
//   - CreateForBooking stores the payment and links it to its booking. It fails with
//     ErrConditionFailed when the booking is missing or already has a payment.
//   - AttachProviderOrder sets provider_payment_id on a pending payment that has none,
//     and registers the order id for reconciliation.
//   - MarkSucceeded moves the payment (pending|success) to success and, when bookingID
//     is not empty, the booking (pending|confirmed) to confirmed.

type IPaymentRepository interface {
	CreateForBooking(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.Payment, error)
	GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.Payment, error)
	AttachProviderOrder(ctx context.Context, paymentID string, providerPaymentID string) (entities.Payment, error)
	MarkSucceeded(ctx context.Context, paymentID string, bookingID string) error
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error)
}
