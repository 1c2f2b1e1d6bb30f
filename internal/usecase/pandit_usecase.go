package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPanditID        = newError("invalid pandit_id", ErrValidation)
	ErrInvalidPanditLocation  = newError("city and state are required", ErrValidation)
	ErrPanditProfileExists    = newError("pandit profile already exists", ErrConflict)
	ErrPanditProfileNotOwned  = newError("pandit profile belongs to another user", ErrForbidden)
	ErrUserNotFound           = newError("user not found", ErrNotFound)
	ErrPanditApprovalConflict = newError("pandit or user changed concurrently, retry", ErrConflict)
)

// IPanditUseCase manages pandit profiles and their approval.
//
// Approval promotes the owning user from "user" to "pandit" atomically with the
// approval flag. Admins are never demoted by it.

type IPanditUseCase interface {
	Apply(ctx context.Context, requester Principal, in PanditApplication) (entities.Pandit, error)
	Get(ctx context.Context, id string) (entities.Pandit, error)
	ListApproved(ctx context.Context) ([]entities.Pandit, error)
	ListAll(ctx context.Context, requester Principal) ([]entities.Pandit, error)
	SetApproval(ctx context.Context, id string, approved bool, requester Principal) (entities.Pandit, error)
}

type PanditApplication struct {
	City     string
	State    string
	PhotoURL string
	Bio      string
}

type PanditUseCase struct {
	repo     interfaces.IPanditRepository
	userRepo interfaces.IUserRepository
}

var _ IPanditUseCase = (*PanditUseCase)(nil)

func NewPanditUseCase(repo interfaces.IPanditRepository, userRepo interfaces.IUserRepository) *PanditUseCase {
	return &PanditUseCase{repo: repo, userRepo: userRepo}
}

func (u *PanditUseCase) Apply(ctx context.Context, requester Principal, in PanditApplication) (entities.Pandit, error) {
	if !requester.IsAuthenticated() {
		return entities.Pandit{}, ErrUnauthenticated
	}
	city, state := strings.TrimSpace(in.City), strings.TrimSpace(in.State)
	if city == "" || state == "" {
		return entities.Pandit{}, ErrInvalidPanditLocation
	}
	existing, err := u.repo.GetByUserID(ctx, requester.UserID)
	if err != nil {
		return entities.Pandit{}, err
	}
	if existing.ID != "" {
		return entities.Pandit{}, ErrPanditProfileExists
	}

	p := entities.Pandit{
		ID:        uuid.NewString(),
		UserID:    requester.UserID,
		City:      city,
		State:     state,
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		Bio:       strings.TrimSpace(in.Bio),
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Pandit{}, ErrPanditProfileExists
	}
	if err != nil {
		log.Printf("[pandit][usecase] apply failed user_id=%s err=%v", requester.UserID, err)
		return entities.Pandit{}, err
	}
	log.Printf("[pandit][usecase] application received pandit_id=%s user_id=%s", created.ID, created.UserID)
	return created, nil
}

func (u *PanditUseCase) Get(ctx context.Context, id string) (entities.Pandit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pandit{}, ErrInvalidPanditID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pandit{}, err
	}
	if p.ID == "" {
		return entities.Pandit{}, ErrPanditNotFound
	}
	return p, nil
}

func (u *PanditUseCase) ListApproved(ctx context.Context) ([]entities.Pandit, error) {
	return u.repo.List(ctx, true)
}

func (u *PanditUseCase) ListAll(ctx context.Context, requester Principal) ([]entities.Pandit, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, false)
}

func (u *PanditUseCase) SetApproval(ctx context.Context, id string, approved bool, requester Principal) (entities.Pandit, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return entities.Pandit{}, err
	}
	p, err := u.Get(ctx, id)
	if err != nil {
		return entities.Pandit{}, err
	}

	promote := ""
	if approved {
		usr, err := u.userRepo.GetByID(ctx, p.UserID)
		if err != nil {
			return entities.Pandit{}, err
		}
		if usr.ID == "" {
			log.Printf("[pandit][usecase] approval rejected, user missing pandit_id=%s user_id=%s", p.ID, p.UserID)
			return entities.Pandit{}, ErrUserNotFound
		}
		if usr.Role == entities.UserRoleUser {
			promote = usr.ID
		}
	}

	updated, err := u.repo.SetApproval(ctx, p.ID, approved, promote)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Pandit{}, ErrPanditApprovalConflict
	}
	if err != nil {
		log.Printf("[pandit][usecase] approval failed pandit_id=%s err=%v", p.ID, err)
		return entities.Pandit{}, err
	}
	log.Printf("[pandit][usecase] approval set pandit_id=%s approved=%t promoted_user=%q by=%s", updated.ID, updated.Approved, promote, requester.UserID)
	return updated, nil
}
