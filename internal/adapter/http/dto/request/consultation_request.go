package request

import (
	"strings"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase"
)

type CreateConsultationRequest struct {
	PanditID         string    `json:"pandit_id" binding:"required"`
	ConsultationDate time.Time `json:"consultation_date" binding:"required"`
	Price            float64   `json:"price"`
	Notes            string    `json:"notes"`
}

func (r CreateConsultationRequest) ToInput() usecase.CreateConsultationInput {
	return usecase.CreateConsultationInput{
		PanditID:         strings.TrimSpace(r.PanditID),
		ConsultationDate: r.ConsultationDate,
		Price:            r.Price,
		Notes:            strings.TrimSpace(r.Notes),
	}
}

type CreateVirtualSessionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StreamURL   string    `json:"stream_url" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	PujaTypeID  string    `json:"puja_type_id"`
}

func (r CreateVirtualSessionRequest) ToEntity() entities.VirtualSession {
	return entities.VirtualSession{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		StreamURL:   strings.TrimSpace(r.StreamURL),
		ScheduledAt: r.ScheduledAt,
		PujaTypeID:  strings.TrimSpace(r.PujaTypeID),
	}
}
