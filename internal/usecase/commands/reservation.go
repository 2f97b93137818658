package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"loyalty-ledger/internal/domain/loyalty"
	"loyalty-ledger/internal/domain/reservation"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/queries"
)

var (
	ErrUnknownMenuItem  = errs.New("menu item not found")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateReservationInput struct {
	Customer string
	ItemID   uuid.UUID
	Date     string
	Time     string
	Quantity int
}

type ReservationCommands interface {
	// Create snapshots the menu item name at creation time, stores the
	// reservation as pending and triggers the loyalty accrual policy.
	Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
	// Complete marks a pending reservation completed. Absent or already
	// completed ids are a no-op reported as false, not an error.
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	// Cancel removes the reservation from the ledger entirely, from any
	// status. False means the id was absent.
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
}

type reservationCommandsImpl struct {
	reservations ReservationRepository
	catalog      MenuRepository
	users        UserRepository
	services     *reservation.Services
	policy       loyalty.Policy
}

func NewReservationCommands(
	reservations ReservationRepository,
	catalog MenuRepository,
	users UserRepository,
	services *reservation.Services,
	policy loyalty.Policy,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		catalog:      catalog,
		users:        users,
		services:     services,
		policy:       policy,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	snap, err := c.catalog.FindSnapshot(ctx, input.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUnknownMenuItem)
		}
		return nil, err
	}

	schedule, err := reservation.NewSchedule(input.Date, input.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	quantity, err := reservation.NewQuantity(input.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := reservation.NewReservation(
		c.services,
		input.Customer,
		reservation.ItemSnapshot{ID: snap.ID, Name: snap.Name},
		schedule,
		quantity,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.reservations.Create(ctx, entity); err != nil {
		return nil, err
	}

	c.accruePoints(ctx, entity.Customer())

	return toReservationView(entity), nil
}

// accruePoints writes the per-reservation bonus through the directory in
// stored mode. A customer missing from the directory is tolerated: the
// reservation stands, the accrual is skipped.
func (c *reservationCommandsImpl) accruePoints(ctx context.Context, customer string) {
	bonus := c.policy.AccrualOnCreate()
	if bonus == 0 {
		return
	}

	applied, err := c.users.AddPoints(ctx, customer, bonus)
	if err != nil {
		slog.Warn("points accrual failed", "customer", customer, "error", err.Error())
		return
	}
	if !applied {
		slog.Warn("points accrual skipped, customer not registered", "customer", customer)
	}
}

func (c *reservationCommandsImpl) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	return c.reservations.Complete(ctx, id)
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	return c.reservations.Delete(ctx, id)
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
