package commands

import (
	"context"

	"github.com/google/uuid"

	"loyalty-ledger/internal/domain/menu"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/queries"
)

var ErrInvalidMenuItem = errs.New("invalid menu item")

type MenuCommands interface {
	// AddItem appends to the catalog. Duplicate names are allowed by
	// design: the catalog has no name uniqueness invariant.
	AddItem(ctx context.Context, name, imageRef string) (*queries.MenuItemView, error)
	// RemoveItem reports false when absent. Reservations holding a
	// snapshot of the item are unaffected.
	RemoveItem(ctx context.Context, id uuid.UUID) (bool, error)
}

type menuCommandsImpl struct {
	repo MenuRepository
}

func NewMenuCommands(repo MenuRepository) MenuCommands {
	return &menuCommandsImpl{repo: repo}
}

func (c *menuCommandsImpl) AddItem(ctx context.Context, name, imageRef string) (*queries.MenuItemView, error) {
	entity, err := menu.NewMenuItem(name, imageRef)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMenuItem)
	}

	if err := c.repo.Add(ctx, entity); err != nil {
		return nil, err
	}

	return &queries.MenuItemView{
		ID:       entity.ID(),
		Name:     entity.Name(),
		ImageRef: entity.ImageRef(),
	}, nil
}

func (c *menuCommandsImpl) RemoveItem(ctx context.Context, id uuid.UUID) (bool, error) {
	return c.repo.Remove(ctx, id)
}
