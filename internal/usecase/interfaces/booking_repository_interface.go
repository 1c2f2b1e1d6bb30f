package interfaces

import (
	"context"
	"pandit_booking/internal/domain/entities"
)

// IBookingRepository abstracts persistence for Booking.
//
// Reads return a zero Booking (empty ID) and a nil error when nothing matches.
// Writes that depend on the current status are conditional and return
// ErrConditionFailed when the stored status no longer matches.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	ListByPanditID(ctx context.Context, panditID string) ([]entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	// Update writes status, scheduled_at, pandit_id and stream_url when the stored status equals expected.
	Update(ctx context.Context, b entities.Booking, expected entities.BookingStatus) (entities.Booking, error)
	// UpdateStatus sets status to "to" when the stored status is one of from.
	UpdateStatus(ctx context.Context, id string, to entities.BookingStatus, from []entities.BookingStatus) (entities.Booking, error)
}
