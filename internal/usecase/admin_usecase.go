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
	ErrInvalidSessionTitle  = newError("title is required", ErrValidation)
	ErrInvalidSessionStream = newError("stream_url is required", ErrValidation)
)

// DashboardStats is the admin overview. Revenue sums successful payments only.
type DashboardStats struct {
	TotalUsers            int     `json:"total_users"`
	TotalPandits          int     `json:"total_pandits"`
	TotalBookings         int     `json:"total_bookings"`
	TotalRevenue          float64 `json:"total_revenue"`
	PendingApprovals      int     `json:"pending_approvals"`
	ActiveVirtualSessions int     `json:"active_virtual_sessions"`
}

// IAdminUseCase groups admin-only reads and virtual session scheduling.

type IAdminUseCase interface {
	Stats(ctx context.Context, requester Principal) (DashboardStats, error)
	ListUsers(ctx context.Context, requester Principal) ([]entities.User, error)
	CreateVirtualSession(ctx context.Context, requester Principal, s entities.VirtualSession) (entities.VirtualSession, error)
	ListActiveVirtualSessions(ctx context.Context, requester Principal) ([]entities.VirtualSession, error)
}

type AdminUseCase struct {
	users    interfaces.IUserRepository
	pandits  interfaces.IPanditRepository
	bookings interfaces.IBookingRepository
	payments interfaces.IPaymentRepository
	sessions interfaces.IVirtualSessionRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(users interfaces.IUserRepository, pandits interfaces.IPanditRepository, bookings interfaces.IBookingRepository, payments interfaces.IPaymentRepository, sessions interfaces.IVirtualSessionRepository) *AdminUseCase {
	return &AdminUseCase{users: users, pandits: pandits, bookings: bookings, payments: payments, sessions: sessions}
}

func (u *AdminUseCase) Stats(ctx context.Context, requester Principal) (DashboardStats, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return DashboardStats{}, err
	}
	var stats DashboardStats

	users, err := u.users.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	for _, usr := range users {
		if usr.Role == entities.UserRoleUser {
			stats.TotalUsers++
		}
	}

	pandits, err := u.pandits.List(ctx, false)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.TotalPandits = len(pandits)
	for _, p := range pandits {
		if !p.Approved {
			stats.PendingApprovals++
		}
	}

	bookings, err := u.bookings.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.TotalBookings = len(bookings)

	paid, err := u.payments.ListByStatus(ctx, entities.PaymentStatusSuccess)
	if err != nil {
		return DashboardStats{}, err
	}
	var revenueMinor int64
	for _, p := range paid {
		revenueMinor += p.AmountMinorUnits()
	}
	stats.TotalRevenue = float64(revenueMinor) / 100

	sessions, err := u.sessions.ListActive(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.ActiveVirtualSessions = len(sessions)

	return stats, nil
}

func (u *AdminUseCase) ListUsers(ctx context.Context, requester Principal) ([]entities.User, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}

func (u *AdminUseCase) CreateVirtualSession(ctx context.Context, requester Principal, s entities.VirtualSession) (entities.VirtualSession, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return entities.VirtualSession{}, err
	}
	s.Title = strings.TrimSpace(s.Title)
	s.StreamURL = strings.TrimSpace(s.StreamURL)
	s.Description = strings.TrimSpace(s.Description)
	s.PujaTypeID = strings.TrimSpace(s.PujaTypeID)
	if s.Title == "" {
		return entities.VirtualSession{}, ErrInvalidSessionTitle
	}
	if s.StreamURL == "" {
		return entities.VirtualSession{}, ErrInvalidSessionStream
	}
	if s.ScheduledAt.IsZero() {
		return entities.VirtualSession{}, ErrInvalidScheduledAt
	}
	s.ID = uuid.NewString()
	s.ScheduledAt = s.ScheduledAt.UTC()
	s.IsActive = true
	s.CreatedAt = time.Now().UTC()

	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		log.Printf("[admin][usecase] create virtual session failed title=%q err=%v", s.Title, err)
		return entities.VirtualSession{}, err
	}
	log.Printf("[admin][usecase] virtual session created session_id=%s scheduled_at=%s", created.ID, created.ScheduledAt.Format(time.RFC3339))
	return created, nil
}

func (u *AdminUseCase) ListActiveVirtualSessions(ctx context.Context, requester Principal) ([]entities.VirtualSession, error) {
	if err := RequireRole(requester, entities.UserRoleAdmin); err != nil {
		return nil, err
	}
	return u.sessions.ListActive(ctx)
}
