package queries

import (
	"context"

	"loyalty-ledger/internal/domain/loyalty"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	// Find resolves an identifier against the directory: exact username
	// match or case-insensitive email match.
	Find(ctx context.Context, identifier string) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
	// EffectivePoints is the balance a cashier sees, computed by the
	// configured loyalty policy from the stored base and the customer's
	// reservation count.
	EffectivePoints(ctx context.Context, identifier string) (int, error)
}

type UserReadStore interface {
	FindByIdentifier(ctx context.Context, identifier string) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore    UserReadStore
	reservations ReservationReadStore
	policy       loyalty.Policy
}

func NewUserQueries(readStore UserReadStore, reservations ReservationReadStore, policy loyalty.Policy) UserQueries {
	return &userQueriesImpl{
		readStore:    readStore,
		reservations: reservations,
		policy:       policy,
	}
}

func (q *userQueriesImpl) Find(ctx context.Context, identifier string) (*UserView, error) {
	view, err := q.readStore.FindByIdentifier(ctx, identifier)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}

func (q *userQueriesImpl) EffectivePoints(ctx context.Context, identifier string) (int, error) {
	view, err := q.Find(ctx, identifier)
	if err != nil {
		return 0, err
	}

	count, err := q.reservations.CountByCustomer(ctx, identifier)
	if err != nil {
		return 0, err
	}

	return q.policy.EffectivePoints(view.Points, count), nil
}
