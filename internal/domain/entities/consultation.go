package entities

import "time"

// Consultation is a paid call with an approved pandit.
// It reuses the booking status values; only pending is set by this service.

type Consultation struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	PanditID         string        `json:"pandit_id"`
	ConsultationDate time.Time     `json:"consultation_date"`
	Price            float64       `json:"price"`
	Status           BookingStatus `json:"status"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}
