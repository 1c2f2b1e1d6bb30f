package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidConsultationPrice = newError("price must be positive", ErrValidation)
	ErrPanditUnavailable        = newError("pandit not found or not approved", ErrNotFound)
	ErrInvalidConsultationDate  = newError("consultation_date is required", ErrValidation)
)

// IConsultationUseCase books short calls with approved pandits.

type IConsultationUseCase interface {
	Create(ctx context.Context, requester Principal, in CreateConsultationInput) (entities.Consultation, error)
	ListForPandit(ctx context.Context, panditID string, requester Principal) ([]entities.Consultation, error)
}

type CreateConsultationInput struct {
	PanditID         string
	ConsultationDate time.Time
	Price            float64
	Notes            string
}

type ConsultationUseCase struct {
	repo       interfaces.IConsultationRepository
	panditRepo interfaces.IPanditRepository
}

var _ IConsultationUseCase = (*ConsultationUseCase)(nil)

func NewConsultationUseCase(repo interfaces.IConsultationRepository, panditRepo interfaces.IPanditRepository) *ConsultationUseCase {
	return &ConsultationUseCase{repo: repo, panditRepo: panditRepo}
}

func (u *ConsultationUseCase) Create(ctx context.Context, requester Principal, in CreateConsultationInput) (entities.Consultation, error) {
	if !requester.IsAuthenticated() {
		return entities.Consultation{}, ErrUnauthenticated
	}
	panditID := strings.TrimSpace(in.PanditID)
	if panditID == "" {
		return entities.Consultation{}, ErrInvalidPanditID
	}
	if in.ConsultationDate.IsZero() {
		return entities.Consultation{}, ErrInvalidConsultationDate
	}
	if in.Price <= 0 {
		return entities.Consultation{}, ErrInvalidConsultationPrice
	}

	p, err := u.panditRepo.GetByID(ctx, panditID)
	if err != nil {
		return entities.Consultation{}, err
	}
	if p.ID == "" || !p.Approved {
		return entities.Consultation{}, ErrPanditUnavailable
	}

	c := entities.Consultation{
		ID:               uuid.NewString(),
		UserID:           requester.UserID,
		PanditID:         p.ID,
		ConsultationDate: in.ConsultationDate.UTC(),
		Price:            in.Price,
		Status:           entities.BookingStatusPending,
		Notes:            strings.TrimSpace(in.Notes),
		CreatedAt:        time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[consultation][usecase] create failed user_id=%s pandit_id=%s err=%v", requester.UserID, p.ID, err)
		return entities.Consultation{}, err
	}
	log.Printf("[consultation][usecase] created consultation_id=%s pandit_id=%s", created.ID, created.PanditID)
	return created, nil
}

func (u *ConsultationUseCase) ListForPandit(ctx context.Context, panditID string, requester Principal) ([]entities.Consultation, error) {
	panditID = strings.TrimSpace(panditID)
	if panditID == "" {
		return nil, ErrInvalidPanditID
	}
	if !requester.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !requester.IsAdmin() {
		p, err := u.panditRepo.GetByID(ctx, panditID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, ErrPanditNotFound
		}
		if !requester.Owns(p.UserID) {
			return nil, ErrPanditProfileNotOwned
		}
	}
	return u.repo.ListByPanditID(ctx, panditID)
}
