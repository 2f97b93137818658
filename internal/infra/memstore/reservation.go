package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"loyalty-ledger/internal/domain/reservation"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/usecase/queries"
)

// ReservationStore owns the ledger. Complete and Cancel race on the same
// id in a two-actor deployment, so both run under the store lock.
// Cancellation is a hard delete: cancelled reservations leave no trace,
// matching the observed source behavior.
type ReservationStore struct {
	mu           sync.RWMutex
	reservations []*reservation.Reservation
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{}
}

func (s *ReservationStore) Create(_ context.Context, r *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = append(s.reservations, r)
	return nil
}

func (s *ReservationStore) Complete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reservations {
		if r.ID() == id {
			return r.Complete(), nil
		}
	}
	return false, nil
}

func (s *ReservationStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reservations {
		if r.ID() == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *ReservationStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reservations {
		if r.ID() == id {
			return toReservationView(r), nil
		}
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (s *ReservationStore) FindPending(_ context.Context) ([]*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.ReservationView, 0)
	for _, r := range s.reservations {
		if r.IsPending() {
			views = append(views, toReservationView(r))
		}
	}
	return views, nil
}

func (s *ReservationStore) FindByCustomer(_ context.Context, identifier string) ([]*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.ReservationView, 0)
	for _, r := range s.reservations {
		if r.BelongsTo(identifier) {
			views = append(views, toReservationView(r))
		}
	}
	return views, nil
}

func (s *ReservationStore) CountByCustomer(_ context.Context, identifier string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.reservations {
		if r.BelongsTo(identifier) {
			count++
		}
	}
	return count, nil
}

func toReservationView(r *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:        r.ID(),
		Customer:  r.Customer(),
		ItemID:    r.ItemID(),
		ItemName:  r.ItemName(),
		Date:      r.Schedule().Date(),
		Time:      r.Schedule().TimeOfDay(),
		Quantity:  r.Quantity().Value(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
	}
}
