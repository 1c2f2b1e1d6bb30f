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
	ErrInvalidPujaName  = newError("name_local and name_en are required", ErrValidation)
	ErrInvalidPujaPrice = newError("prices must be non-negative and min_price <= default_price <= max_price", ErrValidation)
	ErrInvalidDuration  = newError("duration_minutes must not be negative", ErrValidation)
	ErrEmptyPujaUpdate  = newError("no fields to update", ErrValidation)
)

// IPujaTypeUseCase serves the puja catalog. Reads are public; writes are admin only.

type IPujaTypeUseCase interface {
	List(ctx context.Context) ([]entities.PujaType, error)
	Get(ctx context.Context, id string) (entities.PujaType, error)
	Create(ctx context.Context, requester Principal, p entities.PujaType) (entities.PujaType, error)
	Update(ctx context.Context, id string, requester Principal, changes entities.PujaTypeUpdate) (entities.PujaType, error)
}

type PujaTypeUseCase struct {
	repo interfaces.IPujaTypeRepository
}

var _ IPujaTypeUseCase = (*PujaTypeUseCase)(nil)

func NewPujaTypeUseCase(repo interfaces.IPujaTypeRepository) *PujaTypeUseCase {
	return &PujaTypeUseCase{repo: repo}
}

func (u *PujaTypeUseCase) List(ctx context.Context) ([]entities.PujaType, error) {
	return u.repo.List(ctx)
}

func (u *PujaTypeUseCase) Get(ctx context.Context, id string) (entities.PujaType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PujaType{}, ErrInvalidPujaTypeID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PujaType{}, err
	}
	if p.ID == "" {
		return entities.PujaType{}, ErrPujaTypeNotFound
	}
	return p, nil
}

func (u *PujaTypeUseCase) Create(ctx context.Context, requester Principal, p entities.PujaType) (entities.PujaType, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return entities.PujaType{}, err
	}
	p = trimPujaType(p)
	if err := validatePujaType(p); err != nil {
		return entities.PujaType{}, err
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[catalog][usecase] create failed name_en=%q err=%v", p.NameEN, err)
		return entities.PujaType{}, err
	}
	log.Printf("[catalog][usecase] created puja_type_id=%s name_en=%q default_price=%.2f is_virtual=%t", created.ID, created.NameEN, created.DefaultPrice, created.IsVirtual)
	return created, nil
}

// Update never reprices existing bookings; they keep the price captured at creation.
func (u *PujaTypeUseCase) Update(ctx context.Context, id string, requester Principal, changes entities.PujaTypeUpdate) (entities.PujaType, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return entities.PujaType{}, err
	}
	if changes.IsEmpty() {
		return entities.PujaType{}, ErrEmptyPujaUpdate
	}
	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.PujaType{}, err
	}
	merged := trimPujaType(changes.Apply(current))
	if err := validatePujaType(merged); err != nil {
		return entities.PujaType{}, err
	}
	updated, err := u.repo.Update(ctx, merged)
	if err != nil {
		log.Printf("[catalog][usecase] update failed puja_type_id=%s err=%v", current.ID, err)
		return entities.PujaType{}, err
	}
	if updated.ID == "" {
		return entities.PujaType{}, ErrPujaTypeNotFound
	}
	return updated, nil
}

func validatePujaType(p entities.PujaType) error {
	if p.NameLocal == "" || p.NameEN == "" {
		return ErrInvalidPujaName
	}
	if p.DurationMins < 0 {
		return ErrInvalidDuration
	}
	if p.DefaultPrice < 0 || p.MinPrice < 0 || p.MaxPrice < 0 || p.MinPrice > p.DefaultPrice {
		return ErrInvalidPujaPrice
	}
	if p.MaxPrice > 0 && p.DefaultPrice > p.MaxPrice {
		return ErrInvalidPujaPrice
	}
	return nil
}

func trimPujaType(p entities.PujaType) entities.PujaType {
	p.NameLocal = strings.TrimSpace(p.NameLocal)
	p.NameEN = strings.TrimSpace(p.NameEN)
	p.Description = strings.TrimSpace(p.Description)
	p.DetailedDescription = strings.TrimSpace(p.DetailedDescription)
	p.Benefits = strings.TrimSpace(p.Benefits)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	return p
}
