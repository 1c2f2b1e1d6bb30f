package response

import (
	"time"

	"pandit_booking/internal/domain/entities"
)

type PanditResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPandit(p entities.Pandit) PanditResponse {
	return PanditResponse(p)
}

func FromPandits(in []entities.Pandit) []PanditResponse {
	out := make([]PanditResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPandit(p))
	}
	return out
}

type PujaTypeResponse struct {
	ID                  string    `json:"id"`
	NameLocal           string    `json:"name_local"`
	NameEN              string    `json:"name_en"`
	Description         string    `json:"description,omitempty"`
	DetailedDescription string    `json:"detailed_description,omitempty"`
	Benefits            string    `json:"benefits,omitempty"`
	ImageURL            string    `json:"image_url,omitempty"`
	DurationMins        int       `json:"duration_minutes,omitempty"`
	MinPrice            float64   `json:"min_price"`
	MaxPrice            float64   `json:"max_price,omitempty"`
	DefaultPrice        float64   `json:"default_price"`
	IsVirtual           bool      `json:"is_virtual"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromPujaType(p entities.PujaType) PujaTypeResponse {
	return PujaTypeResponse(p)
}

func FromPujaTypes(in []entities.PujaType) []PujaTypeResponse {
	out := make([]PujaTypeResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPujaType(p))
	}
	return out
}

type ConsultationResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	PanditID         string    `json:"pandit_id"`
	ConsultationDate time.Time `json:"consultation_date"`
	Price            float64   `json:"price"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromConsultation(c entities.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:               c.ID,
		UserID:           c.UserID,
		PanditID:         c.PanditID,
		ConsultationDate: c.ConsultationDate,
		Price:            c.Price,
		Status:           string(c.Status),
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
}

func FromConsultations(in []entities.Consultation) []ConsultationResponse {
	out := make([]ConsultationResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromConsultation(c))
	}
	return out
}

type VirtualSessionResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StreamURL   string    `json:"stream_url"`
	ScheduledAt time.Time `json:"scheduled_at"`
	PujaTypeID  string    `json:"puja_type_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromVirtualSessions(in []entities.VirtualSession) []VirtualSessionResponse {
	out := make([]VirtualSessionResponse, 0, len(in))
	for _, s := range in {
		out = append(out, VirtualSessionResponse(s))
	}
	return out
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUsers(in []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(in))
	for _, u := range in {
		out = append(out, UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Role:      string(u.Role),
			City:      u.City,
			State:     u.State,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
