package reservation

import (
	"errors"
	"strings"
	"time"

	"loyalty-ledger/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrEmptyCustomer = errors.New("customer identifier is required")

// ItemSnapshot is the catalog state captured at creation time. The ledger
// holds a weak reference: the catalog item may be renamed or removed later
// without affecting existing reservations.
type ItemSnapshot struct {
	ID   uuid.UUID
	Name string
}

type Services struct {
	Clock clock.Clock
}

type Reservation struct {
	id        uuid.UUID
	customer  string
	itemID    uuid.UUID
	itemName  string
	schedule  Schedule
	quantity  Quantity
	status    Status
	createdAt time.Time
}

func NewReservation(
	services *Services,
	customer string,
	item ItemSnapshot,
	schedule Schedule,
	quantity Quantity,
) (*Reservation, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, ErrEmptyCustomer
	}

	return &Reservation{
		id:        uuid.New(),
		customer:  customer,
		itemID:    item.ID,
		itemName:  item.Name,
		schedule:  schedule,
		quantity:  quantity,
		status:    StatusPending,
		createdAt: services.Clock.Now(),
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	customer string,
	itemID uuid.UUID,
	itemName string,
	schedule Schedule,
	quantity Quantity,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		customer:  customer,
		itemID:    itemID,
		itemName:  itemName,
		schedule:  schedule,
		quantity:  quantity,
		status:    status,
		createdAt: createdAt,
	}
}

// Complete moves a pending reservation to completed. It reports false
// without changing state for any other status, so repeated calls are
// harmless.
func (r *Reservation) Complete() bool {
	if r.status != StatusPending {
		return false
	}
	r.status = StatusCompleted
	return true
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

// BelongsTo matches the customer identifier byte-exact, unlike directory
// lookups which fold email case.
func (r *Reservation) BelongsTo(identifier string) bool {
	return r.customer == identifier
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Customer() string     { return r.customer }
func (r *Reservation) ItemID() uuid.UUID    { return r.itemID }
func (r *Reservation) ItemName() string     { return r.itemName }
func (r *Reservation) Schedule() Schedule   { return r.schedule }
func (r *Reservation) Quantity() Quantity   { return r.quantity }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
