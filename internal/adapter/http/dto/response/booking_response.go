package response

import (
	"time"

	"pandit_booking/internal/domain/entities"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PanditID    string    `json:"pandit_id,omitempty"`
	PujaTypeID  string    `json:"puja_type_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Address     string    `json:"address,omitempty"`
	Price       float64   `json:"price"`
	StreamURL   string    `json:"stream_url,omitempty"`
	Status      string    `json:"status"`
	PaymentID   string    `json:"payment_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		PanditID:    b.PanditID,
		PujaTypeID:  b.PujaTypeID,
		ScheduledAt: b.ScheduledAt,
		Address:     b.Address,
		Price:       b.Price,
		StreamURL:   b.StreamURL,
		Status:      string(b.Status),
		PaymentID:   b.PaymentID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBookings(in []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(in))
	for _, b := range in {
		out = append(out, FromBooking(b))
	}
	return out
}
