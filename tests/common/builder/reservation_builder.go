//go:build unit

package builder

import (
	"time"

	"github.com/google/uuid"

	"loyalty-ledger/internal/domain/reservation"
	"loyalty-ledger/internal/pkg/clock"
)

type ReservationBuilder struct {
	Customer string
	ItemID   uuid.UUID
	ItemName string
	Date     string
	Time     string
	Quantity int
	Now      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Customer: "alice",
		ItemID:   uuid.New(),
		ItemName: "Burger",
		Date:     "2024-01-10",
		Time:     "9:00",
		Quantity: 2,
		Now:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	schedule, err := reservation.NewSchedule(r.Date, r.Time)
	if err != nil {
		return nil, err
	}

	quantity, err := reservation.NewQuantity(r.Quantity)
	if err != nil {
		return nil, err
	}

	services := &reservation.Services{Clock: clock.NewMockClock(r.Now)}
	return reservation.NewReservation(
		services,
		r.Customer,
		reservation.ItemSnapshot{ID: r.ItemID, Name: r.ItemName},
		schedule,
		quantity,
	)
}

// Fluent builder methods
func (r *ReservationBuilder) WithCustomer(customer string) *ReservationBuilder {
	r.Customer = customer
	return r
}

func (r *ReservationBuilder) WithItem(id uuid.UUID, name string) *ReservationBuilder {
	r.ItemID = id
	r.ItemName = name
	return r
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithTime(timeOfDay string) *ReservationBuilder {
	r.Time = timeOfDay
	return r
}

func (r *ReservationBuilder) WithQuantity(quantity int) *ReservationBuilder {
	r.Quantity = quantity
	return r
}
