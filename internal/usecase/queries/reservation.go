package queries

import (
	"context"

	"github.com/google/uuid"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// PendingQueue is the cashier work queue: pending reservations in
	// ledger order.
	PendingQueue(ctx context.Context) ([]*ReservationView, error)
	// ByCustomer returns every retained reservation whose customer
	// identifier matches byte-exact, in creation order.
	ByCustomer(ctx context.Context, identifier string) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindPending(ctx context.Context) ([]*ReservationView, error)
	FindByCustomer(ctx context.Context, identifier string) ([]*ReservationView, error)
	CountByCustomer(ctx context.Context, identifier string) (int, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) PendingQueue(ctx context.Context) ([]*ReservationView, error) {
	return q.readStore.FindPending(ctx)
}

func (q *reservationQueriesImpl) ByCustomer(ctx context.Context, identifier string) ([]*ReservationView, error) {
	return q.readStore.FindByCustomer(ctx, identifier)
}
