package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"loyalty-ledger/internal/domain/menu"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
)

// MenuStore owns the catalog as an insertion-ordered collection.
type MenuStore struct {
	mu    sync.RWMutex
	items []*menu.MenuItem
}

func NewMenuStore() *MenuStore {
	return &MenuStore{}
}

func (s *MenuStore) Add(_ context.Context, item *menu.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	return nil
}

func (s *MenuStore) Remove(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MenuStore) FindSnapshot(_ context.Context, id uuid.UUID) (*commands.MenuItemSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID() == id {
			return &commands.MenuItemSnapshot{
				ID:   item.ID(),
				Name: item.Name(),
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
}

func (s *MenuStore) List(_ context.Context) ([]*queries.MenuItemView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.MenuItemView, 0, len(s.items))
	for _, item := range s.items {
		views = append(views, &queries.MenuItemView{
			ID:       item.ID(),
			Name:     item.Name(),
			ImageRef: item.ImageRef(),
		})
	}
	return views, nil
}
