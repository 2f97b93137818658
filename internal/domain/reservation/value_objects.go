package reservation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyDate       = errors.New("reservation date is required")
	ErrEmptyTime       = errors.New("reservation time is required")
	ErrInvalidQuantity = errors.New("quantity must be at least one")
)

// Schedule keeps the requested date and time of day as opaque strings.
// There is deliberately no past-date check; the ledger accepts whatever
// the boundary collected.
type Schedule struct {
	date      string
	timeOfDay string
}

func NewSchedule(date, timeOfDay string) (Schedule, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if date == "" {
		return Schedule{}, ErrEmptyDate
	}
	if timeOfDay == "" {
		return Schedule{}, ErrEmptyTime
	}
	return Schedule{date: date, timeOfDay: timeOfDay}, nil
}

func (s Schedule) Date() string {
	return s.date
}

func (s Schedule) TimeOfDay() string {
	return s.timeOfDay
}

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int {
	return q.value
}
