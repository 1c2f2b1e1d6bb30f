package entities

import "time"

// VirtualSession is an admin-scheduled live stream, optionally tied to a puja type.

type VirtualSession struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StreamURL   string    `json:"stream_url"`
	ScheduledAt time.Time `json:"scheduled_at"`
	PujaTypeID  string    `json:"puja_type_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
