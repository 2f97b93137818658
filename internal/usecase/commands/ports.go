package commands

import (
	"context"

	"github.com/google/uuid"

	"loyalty-ledger/internal/domain/menu"
	"loyalty-ledger/internal/domain/reservation"
	"loyalty-ledger/internal/domain/user"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type MenuItemSnapshot struct {
	ID   uuid.UUID
	Name string
}

// UserRepository is the write side of the user directory. Create must run
// the uniqueness check and the insert as one critical section; the race
// between two registrations of the same identity is serialized here, not
// by callers.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	// UpdatePoints overwrites the balance; false means no matching user.
	UpdatePoints(ctx context.Context, identifier string, points int) (bool, error)
	// AddPoints applies a delta; false means no matching user.
	AddPoints(ctx context.Context, identifier string, delta int) (bool, error)
}

type MenuRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error
	// Remove reports false when the id is absent. It never touches
	// reservations referencing the item.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
	FindSnapshot(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	// Complete flips pending to completed under the store lock; false
	// means the reservation was absent or already completed.
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	// Delete removes the reservation entirely, whatever its status.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
