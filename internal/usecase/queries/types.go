package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Points   int       `json:"points"`
}

type MenuItemView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageRef string    `json:"image_ref,omitempty"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	Customer  string    `json:"customer"`
	ItemID    uuid.UUID `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
