package entities

import "time"

// BookingStatus is the lifecycle state of a puja booking.
//
// Allowed moves:
//   - pending   -> confirmed (payment succeeded) | cancelled
//   - confirmed -> completed | cancelled
//   - completed and cancelled are terminal.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Staying in the same status is not a transition.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

// Booking is a devotee's request for a puja ceremony.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id
//   - GSI pandit_id-index: pandit_id (absent while unassigned)
//
// Price is copied from the puja type's default price at creation time.
// PaymentID is set once, by the transaction that creates the booking's payment.

type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	PanditID    string        `json:"pandit_id,omitempty"`
	PujaTypeID  string        `json:"puja_type_id"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Address     string        `json:"address,omitempty"`
	Price       float64       `json:"price"`
	StreamURL   string        `json:"stream_url,omitempty"`
	Status      BookingStatus `json:"status"`
	PaymentID   string        `json:"payment_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BookingUpdate carries the fields a partial update may touch. Nil means "leave as is".
// An empty PanditID unassigns the pandit.
type BookingUpdate struct {
	Status      *BookingStatus
	ScheduledAt *time.Time
	PanditID    *string
	StreamURL   *string
}

func (u BookingUpdate) IsEmpty() bool {
	return u.Status == nil && u.ScheduledAt == nil && u.PanditID == nil && u.StreamURL == nil
}

// Apply returns a copy of b with the update merged in.
func (u BookingUpdate) Apply(b Booking) Booking {
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.ScheduledAt != nil {
		b.ScheduledAt = u.ScheduledAt.UTC()
	}
	if u.PanditID != nil {
		b.PanditID = *u.PanditID
	}
	if u.StreamURL != nil {
		b.StreamURL = *u.StreamURL
	}
	return b
}
