package menu

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidItemName = errors.New("menu item name is required")

// MenuItem is an append/remove catalog entry. Duplicate names are allowed;
// reservations reference items by id and keep their own name snapshot.
type MenuItem struct {
	id       uuid.UUID
	name     string
	imageRef string
}

func NewMenuItem(name, imageRef string) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidItemName
	}
	return &MenuItem{
		id:       uuid.New(),
		name:     name,
		imageRef: imageRef,
	}, nil
}

func ReconstructMenuItem(id uuid.UUID, name, imageRef string) *MenuItem {
	return &MenuItem{
		id:       id,
		name:     name,
		imageRef: imageRef,
	}
}

func (m *MenuItem) ID() uuid.UUID    { return m.id }
func (m *MenuItem) Name() string     { return m.name }
func (m *MenuItem) ImageRef() string { return m.imageRef }
