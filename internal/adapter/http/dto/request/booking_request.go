package request

import (
	"strings"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase"
)

type CreateBookingRequest struct {
	PujaTypeID  string    `json:"puja_type_id" binding:"required"`
	PanditID    string    `json:"pandit_id"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Address     string    `json:"address"`
}

func (r CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		PujaTypeID:  strings.TrimSpace(r.PujaTypeID),
		PanditID:    strings.TrimSpace(r.PanditID),
		ScheduledAt: r.ScheduledAt,
		Address:     strings.TrimSpace(r.Address),
	}
}

// UpdateBookingRequest carries only the fields the caller wants to change.
// An empty pandit_id unassigns the pandit.
type UpdateBookingRequest struct {
	Status      *string    `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	PanditID    *string    `json:"pandit_id"`
	StreamURL   *string    `json:"stream_url"`
}

func (r UpdateBookingRequest) ToUpdate() entities.BookingUpdate {
	u := entities.BookingUpdate{
		ScheduledAt: r.ScheduledAt,
		StreamURL:   trimmed(r.StreamURL),
		PanditID:    trimmed(r.PanditID),
	}
	if r.Status != nil {
		s := entities.BookingStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		u.Status = &s
	}
	return u
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
