package queries

import "context"

type MenuQueries interface {
	// List returns an insertion-ordered snapshot of the catalog.
	List(ctx context.Context) ([]*MenuItemView, error)
}

type MenuReadStore interface {
	List(ctx context.Context) ([]*MenuItemView, error)
}

type menuQueriesImpl struct {
	readStore MenuReadStore
}

func NewMenuQueries(readStore MenuReadStore) MenuQueries {
	return &menuQueriesImpl{readStore: readStore}
}

func (q *menuQueriesImpl) List(ctx context.Context) ([]*MenuItemView, error) {
	return q.readStore.List(ctx)
}
