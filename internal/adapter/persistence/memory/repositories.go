package memory

import (
	"context"
	"slices"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"
)

type UserRepository struct{ s *Store }

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; ok {
		return entities.User{}, interfaces.ErrConditionFailed
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users[id], nil
}

func (r *UserRepository) List(_ context.Context) ([]entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.users, nil, func(u entities.User) time.Time { return u.CreatedAt }), nil
}

type PanditRepository struct{ s *Store }

var _ interfaces.IPanditRepository = (*PanditRepository)(nil)

func (r *PanditRepository) Create(_ context.Context, p entities.Pandit) (entities.Pandit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pandits[p.ID]; ok {
		return entities.Pandit{}, interfaces.ErrConditionFailed
	}
	for _, existing := range r.s.pandits {
		if existing.UserID == p.UserID {
			return entities.Pandit{}, interfaces.ErrConditionFailed
		}
	}
	r.s.pandits[p.ID] = p
	return p, nil
}

func (r *PanditRepository) GetByID(_ context.Context, id string) (entities.Pandit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.pandits[id], nil
}

func (r *PanditRepository) GetByUserID(_ context.Context, userID string) (entities.Pandit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.pandits {
		if p.UserID == userID {
			return p, nil
		}
	}
	return entities.Pandit{}, nil
}

func (r *PanditRepository) List(_ context.Context, approvedOnly bool) ([]entities.Pandit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keep := func(p entities.Pandit) bool { return !approvedOnly || p.Approved }
	return sortedValues(r.s.pandits, keep, func(p entities.Pandit) time.Time { return p.CreatedAt }), nil
}

func (r *PanditRepository) SetApproval(_ context.Context, id string, approved bool, promoteUserID string) (entities.Pandit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pandits[id]
	if !ok {
		return entities.Pandit{}, interfaces.ErrConditionFailed
	}
	if promoteUserID != "" {
		u, ok := r.s.users[promoteUserID]
		if !ok || u.Role != entities.UserRoleUser {
			return entities.Pandit{}, interfaces.ErrConditionFailed
		}
		u.Role = entities.UserRolePandit
		r.s.users[u.ID] = u
	}
	p.Approved = approved
	r.s.pandits[id] = p
	return p, nil
}

type PujaTypeRepository struct{ s *Store }

var _ interfaces.IPujaTypeRepository = (*PujaTypeRepository)(nil)

func (r *PujaTypeRepository) Create(_ context.Context, p entities.PujaType) (entities.PujaType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pujaTypes[p.ID]; ok {
		return entities.PujaType{}, interfaces.ErrConditionFailed
	}
	r.s.pujaTypes[p.ID] = p
	return p, nil
}

func (r *PujaTypeRepository) GetByID(_ context.Context, id string) (entities.PujaType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.pujaTypes[id], nil
}

func (r *PujaTypeRepository) List(_ context.Context) ([]entities.PujaType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.pujaTypes, nil, func(p entities.PujaType) time.Time { return p.CreatedAt }), nil
}

// Update returns a zero PujaType when the id does not exist.
func (r *PujaTypeRepository) Update(_ context.Context, p entities.PujaType) (entities.PujaType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.pujaTypes[p.ID]
	if !ok {
		return entities.PujaType{}, nil
	}
	p.CreatedAt = current.CreatedAt
	r.s.pujaTypes[p.ID] = p
	return p, nil
}

type BookingRepository struct{ s *Store }

var _ interfaces.IBookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) Create(_ context.Context, b entities.Booking) (entities.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bookings[b.ID]; ok {
		return entities.Booking{}, interfaces.ErrConditionFailed
	}
	r.s.bookings[b.ID] = b
	return b, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (entities.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.bookings[id], nil
}

func (r *BookingRepository) ListByUserID(_ context.Context, userID string) ([]entities.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.bookings, func(b entities.Booking) bool { return b.UserID == userID }, bookingCreatedAt), nil
}

func (r *BookingRepository) ListByPanditID(_ context.Context, panditID string) ([]entities.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.bookings, func(b entities.Booking) bool { return b.PanditID == panditID }, bookingCreatedAt), nil
}

func (r *BookingRepository) List(_ context.Context) ([]entities.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.bookings, nil, bookingCreatedAt), nil
}

func (r *BookingRepository) Update(_ context.Context, b entities.Booking, expected entities.BookingStatus) (entities.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.bookings[b.ID]
	if !ok || current.Status != expected {
		return entities.Booking{}, interfaces.ErrConditionFailed
	}
	current.Status = b.Status
	current.ScheduledAt = b.ScheduledAt
	current.PanditID = b.PanditID
	current.StreamURL = b.StreamURL
	current.UpdatedAt = r.s.now()
	r.s.bookings[b.ID] = current
	return current, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id string, to entities.BookingStatus, from []entities.BookingStatus) (entities.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.bookings[id]
	if !ok || !slices.Contains(from, current.Status) {
		return entities.Booking{}, interfaces.ErrConditionFailed
	}
	current.Status = to
	current.UpdatedAt = r.s.now()
	r.s.bookings[id] = current
	return current, nil
}

func bookingCreatedAt(b entities.Booking) time.Time { return b.CreatedAt }

type PaymentRepository struct{ s *Store }

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) CreateForBooking(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[p.BookingID]
	if !ok || b.PaymentID != "" {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	if _, dup := r.s.payments[p.ID]; dup {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	b.PaymentID = p.ID
	b.UpdatedAt = r.s.now()
	r.s.bookings[b.ID] = b
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payments[id], nil
}

func (r *PaymentRepository) GetByBookingID(_ context.Context, bookingID string) (entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[bookingID]
	if !ok || b.PaymentID == "" {
		return entities.Payment{}, nil
	}
	return r.s.payments[b.PaymentID], nil
}

func (r *PaymentRepository) GetByProviderPaymentID(_ context.Context, providerPaymentID string) (entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.orders[providerPaymentID]
	if !ok {
		return entities.Payment{}, nil
	}
	return r.s.payments[id], nil
}

func (r *PaymentRepository) AttachProviderOrder(_ context.Context, paymentID string, providerPaymentID string) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[paymentID]
	if !ok || p.ProviderPaymentID != "" || p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	if _, taken := r.s.orders[providerPaymentID]; taken {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	p.ProviderPaymentID = providerPaymentID
	p.UpdatedAt = r.s.now()
	r.s.payments[p.ID] = p
	r.s.orders[providerPaymentID] = p.ID
	return p, nil
}

func (r *PaymentRepository) MarkSucceeded(_ context.Context, paymentID string, bookingID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[paymentID]
	if !ok || (p.Status != entities.PaymentStatusPending && p.Status != entities.PaymentStatusSuccess) {
		return interfaces.ErrConditionFailed
	}
	now := r.s.now()
	if bookingID != "" {
		b, ok := r.s.bookings[bookingID]
		if !ok || (b.Status != entities.BookingStatusPending && b.Status != entities.BookingStatusConfirmed) {
			return interfaces.ErrConditionFailed
		}
		b.Status = entities.BookingStatusConfirmed
		b.UpdatedAt = now
		r.s.bookings[b.ID] = b
	}
	p.Status = entities.PaymentStatusSuccess
	p.UpdatedAt = now
	r.s.payments[p.ID] = p
	return nil
}

func (r *PaymentRepository) ListByStatus(_ context.Context, status entities.PaymentStatus) ([]entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keep := func(p entities.Payment) bool { return p.Status == status }
	return sortedValues(r.s.payments, keep, func(p entities.Payment) time.Time { return p.CreatedAt }), nil
}

type ConsultationRepository struct{ s *Store }

var _ interfaces.IConsultationRepository = (*ConsultationRepository)(nil)

func (r *ConsultationRepository) Create(_ context.Context, c entities.Consultation) (entities.Consultation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.consultations[c.ID]; ok {
		return entities.Consultation{}, interfaces.ErrConditionFailed
	}
	r.s.consultations[c.ID] = c
	return c, nil
}

func (r *ConsultationRepository) ListByPanditID(_ context.Context, panditID string) ([]entities.Consultation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keep := func(c entities.Consultation) bool { return c.PanditID == panditID }
	return sortedValues(r.s.consultations, keep, func(c entities.Consultation) time.Time { return c.CreatedAt }), nil
}

type VirtualSessionRepository struct{ s *Store }

var _ interfaces.IVirtualSessionRepository = (*VirtualSessionRepository)(nil)

func (r *VirtualSessionRepository) Create(_ context.Context, v entities.VirtualSession) (entities.VirtualSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[v.ID]; ok {
		return entities.VirtualSession{}, interfaces.ErrConditionFailed
	}
	r.s.sessions[v.ID] = v
	return v, nil
}

func (r *VirtualSessionRepository) ListActive(_ context.Context) ([]entities.VirtualSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keep := func(v entities.VirtualSession) bool { return v.IsActive }
	return sortedValues(r.s.sessions, keep, func(v entities.VirtualSession) time.Time { return v.ScheduledAt }), nil
}
