package entities

import "time"

// Pandit is a service-provider profile. Only approved pandits can be booked.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id (one profile per user)

type Pandit struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
