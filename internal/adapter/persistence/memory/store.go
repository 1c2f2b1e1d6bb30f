// Package memory is an in-process entity store with the same conditional-write
// semantics as the DynamoDB repositories. One mutex serializes every write,
// which gives the multi-row operations their all-or-nothing behaviour.
package memory

import (
	"sort"
	"sync"
	"time"

	"pandit_booking/internal/domain/entities"
)

type Store struct {
	mu sync.RWMutex

	users         map[string]entities.User
	pandits       map[string]entities.Pandit
	pujaTypes     map[string]entities.PujaType
	bookings      map[string]entities.Booking
	payments      map[string]entities.Payment
	orders        map[string]string // provider order id -> payment id
	consultations map[string]entities.Consultation
	sessions      map[string]entities.VirtualSession

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:         map[string]entities.User{},
		pandits:       map[string]entities.Pandit{},
		pujaTypes:     map[string]entities.PujaType{},
		bookings:      map[string]entities.Booking{},
		payments:      map[string]entities.Payment{},
		orders:        map[string]string{},
		consultations: map[string]entities.Consultation{},
		sessions:      map[string]entities.VirtualSession{},
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) Pandits() *PanditRepository {
	return &PanditRepository{s: s}
}

func (s *Store) PujaTypes() *PujaTypeRepository {
	return &PujaTypeRepository{s: s}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{s: s}
}

func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{s: s}
}

func (s *Store) Consultations() *ConsultationRepository {
	return &ConsultationRepository{s: s}
}

func (s *Store) VirtualSessions() *VirtualSessionRepository {
	return &VirtualSessionRepository{s: s}
}

func sortedValues[T any](m map[string]T, keep func(T) bool, createdAt func(T) time.Time) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return createdAt(out[i]).Before(createdAt(out[j])) })
	return out
}

