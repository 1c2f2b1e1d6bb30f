package entities

import "time"

type UserRole string

const (
	UserRoleUser   UserRole = "user"
	UserRolePandit UserRole = "pandit"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRolePandit || r == UserRoleAdmin
}

// User is an account. Identity is issued elsewhere; this service only reads
// users and promotes their role on pandit approval.

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      UserRole  `json:"role"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
