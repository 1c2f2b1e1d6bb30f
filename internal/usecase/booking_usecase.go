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
	ErrInvalidBookingID         = newError("invalid booking_id", ErrValidation)
	ErrInvalidPujaTypeID        = newError("invalid puja_type_id", ErrValidation)
	ErrInvalidScheduledAt       = newError("invalid scheduled_at", ErrValidation)
	ErrInvalidBookingStatus     = newError("invalid booking status", ErrValidation)
	ErrEmptyBookingUpdate       = newError("no fields to update", ErrValidation)
	ErrBookingNotFound          = newError("booking not found", ErrNotFound)
	ErrPujaTypeNotFound         = newError("puja type not found", ErrNotFound)
	ErrPanditNotFound           = newError("pandit not found", ErrNotFound)
	ErrPanditNotApproved        = newError("pandit not approved", ErrInvalidState)
	ErrBookingNotOwned          = newError("booking belongs to another user", ErrForbidden)
	ErrBookingUpdateForbidden   = newError("only an admin or the assigned pandit can update this booking", ErrForbidden)
	ErrBookingNotCancellable    = newError("booking can no longer be cancelled", ErrInvalidState)
	ErrBookingInvalidTransition = newError("booking status transition not allowed", ErrInvalidState)
	ErrBookingStateChanged      = newError("booking changed concurrently, retry", ErrConflict)
)

// IBookingUseCase owns the booking state machine and who may drive it.
//
// Status changes through this use case are limited to completion and
// cancellation; confirmation only happens through payment reconciliation.

type IBookingUseCase interface {
	Create(ctx context.Context, requester Principal, in CreateBookingInput) (entities.Booking, error)
	Cancel(ctx context.Context, id string, requester Principal) (entities.Booking, error)
	Update(ctx context.Context, id string, requester Principal, changes entities.BookingUpdate) (entities.Booking, error)
	Get(ctx context.Context, id string, requester Principal) (entities.Booking, error)
	ListMine(ctx context.Context, requester Principal) ([]entities.Booking, error)
	ListForPandit(ctx context.Context, panditID string, requester Principal) ([]entities.Booking, error)
	ListAll(ctx context.Context, requester Principal) ([]entities.Booking, error)
}

type CreateBookingInput struct {
	PujaTypeID  string
	PanditID    string
	ScheduledAt time.Time
	Address     string
}

type BookingUseCase struct {
	repo       interfaces.IBookingRepository
	pujaRepo   interfaces.IPujaTypeRepository
	panditRepo interfaces.IPanditRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, pujaRepo interfaces.IPujaTypeRepository, panditRepo interfaces.IPanditRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo, pujaRepo: pujaRepo, panditRepo: panditRepo}
}

func (u *BookingUseCase) Create(ctx context.Context, requester Principal, in CreateBookingInput) (entities.Booking, error) {
	if !requester.IsAuthenticated() {
		return entities.Booking{}, ErrUnauthenticated
	}
	pujaTypeID := strings.TrimSpace(in.PujaTypeID)
	if pujaTypeID == "" {
		return entities.Booking{}, ErrInvalidPujaTypeID
	}
	if in.ScheduledAt.IsZero() {
		return entities.Booking{}, ErrInvalidScheduledAt
	}

	puja, err := u.pujaRepo.GetByID(ctx, pujaTypeID)
	if err != nil {
		log.Printf("[booking][usecase] failed loading puja type puja_type_id=%s err=%v", pujaTypeID, err)
		return entities.Booking{}, err
	}
	if puja.ID == "" {
		return entities.Booking{}, ErrPujaTypeNotFound
	}

	panditID := strings.TrimSpace(in.PanditID)
	if panditID != "" {
		if err := u.requireBookablePandit(ctx, panditID); err != nil {
			return entities.Booking{}, err
		}
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:          uuid.NewString(),
		UserID:      requester.UserID,
		PanditID:    panditID,
		PujaTypeID:  puja.ID,
		ScheduledAt: in.ScheduledAt.UTC(),
		Address:     strings.TrimSpace(in.Address),
		Price:       puja.DefaultPrice,
		Status:      entities.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] create failed user_id=%s puja_type_id=%s err=%v", requester.UserID, pujaTypeID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s user_id=%s pandit_id=%s price=%.2f", created.ID, created.UserID, created.PanditID, created.Price)
	return created, nil
}

func (u *BookingUseCase) Cancel(ctx context.Context, id string, requester Principal) (entities.Booking, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if !requester.Owns(b.UserID) {
		return entities.Booking{}, ErrBookingNotOwned
	}
	if b.Status.IsTerminal() {
		log.Printf("[booking][usecase] cancel rejected booking_id=%s status=%s", b.ID, b.Status)
		return entities.Booking{}, ErrBookingNotCancellable
	}

	cancelled, err := u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusCancelled,
		[]entities.BookingStatus{entities.BookingStatusPending, entities.BookingStatusConfirmed})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// Only a move into a terminal status can make the condition fail.
		log.Printf("[booking][usecase] cancel lost race booking_id=%s", b.ID)
		return entities.Booking{}, ErrBookingNotCancellable
	}
	if err != nil {
		log.Printf("[booking][usecase] cancel failed booking_id=%s err=%v", b.ID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] cancelled booking_id=%s previous_status=%s", b.ID, b.Status)
	return cancelled, nil
}

func (u *BookingUseCase) Update(ctx context.Context, id string, requester Principal, changes entities.BookingUpdate) (entities.Booking, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := u.authorizeUpdate(ctx, b, requester); err != nil {
		return entities.Booking{}, err
	}
	if changes.IsEmpty() {
		return entities.Booking{}, ErrEmptyBookingUpdate
	}

	if changes.Status != nil {
		next := *changes.Status
		if !next.IsValid() {
			return entities.Booking{}, ErrInvalidBookingStatus
		}
		if next != b.Status && (next == entities.BookingStatusConfirmed || !b.Status.CanTransitionTo(next)) {
			log.Printf("[booking][usecase] transition rejected booking_id=%s from=%s to=%s", b.ID, b.Status, next)
			return entities.Booking{}, ErrBookingInvalidTransition
		}
	}
	if changes.ScheduledAt != nil && changes.ScheduledAt.IsZero() {
		return entities.Booking{}, ErrInvalidScheduledAt
	}
	if changes.PanditID != nil {
		trimmed := strings.TrimSpace(*changes.PanditID)
		changes.PanditID = &trimmed
		if trimmed != "" && trimmed != b.PanditID {
			if err := u.requireBookablePandit(ctx, trimmed); err != nil {
				return entities.Booking{}, err
			}
		}
	}

	merged := changes.Apply(b)
	merged.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, merged, b.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[booking][usecase] update lost race booking_id=%s expected_status=%s", b.ID, b.Status)
		return entities.Booking{}, ErrBookingStateChanged
	}
	if err != nil {
		log.Printf("[booking][usecase] update failed booking_id=%s err=%v", b.ID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] updated booking_id=%s status=%s pandit_id=%s by=%s", updated.ID, updated.Status, updated.PanditID, requester.UserID)
	return updated, nil
}

func (u *BookingUseCase) Get(ctx context.Context, id string, requester Principal) (entities.Booking, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := requireOwnerOrAdmin(requester, b.UserID, ErrBookingNotOwned); err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (u *BookingUseCase) ListMine(ctx context.Context, requester Principal) ([]entities.Booking, error) {
	if !requester.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	return u.repo.ListByUserID(ctx, requester.UserID)
}

// ListForPandit is open to admins and to the pandit owning the profile.
func (u *BookingUseCase) ListForPandit(ctx context.Context, panditID string, requester Principal) ([]entities.Booking, error) {
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

func (u *BookingUseCase) ListAll(ctx context.Context, requester Principal) ([]entities.Booking, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.repo.List(ctx)
}

func (u *BookingUseCase) load(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[booking][usecase] failed loading booking booking_id=%s err=%v", id, err)
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// authorizeUpdate allows admins and the pandit assigned to the booking.
func (u *BookingUseCase) authorizeUpdate(ctx context.Context, b entities.Booking, requester Principal) error {
	if !requester.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if requester.IsAdmin() {
		return nil
	}
	if requester.Role != entities.UserRolePandit || b.PanditID == "" {
		return ErrBookingUpdateForbidden
	}
	profile, err := u.panditRepo.GetByUserID(ctx, requester.UserID)
	if err != nil {
		return err
	}
	if profile.ID == "" || profile.ID != b.PanditID {
		return ErrBookingUpdateForbidden
	}
	return nil
}

func (u *BookingUseCase) requireBookablePandit(ctx context.Context, panditID string) error {
	p, err := u.panditRepo.GetByID(ctx, panditID)
	if err != nil {
		log.Printf("[booking][usecase] failed loading pandit pandit_id=%s err=%v", panditID, err)
		return err
	}
	if p.ID == "" {
		return ErrPanditNotFound
	}
	if !p.Approved {
		return ErrPanditNotApproved
	}
	return nil
}
