//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"loyalty-ledger/internal/domain/loyalty"
	"loyalty-ledger/internal/domain/reservation"
	"loyalty-ledger/internal/infra/memstore"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
)

// harness wires the engine the way bootstrap does, against fresh stores.
// The infra is in-memory, so tests run against the real thing.
type harness struct {
	clock  *clock.MockClock
	policy loyalty.Policy

	userCommands        commands.UserCommands
	menuCommands        commands.MenuCommands
	reservationCommands commands.ReservationCommands

	userQueries        queries.UserQueries
	menuQueries        queries.MenuQueries
	reservationQueries queries.ReservationQueries
}

func newHarness(mode loyalty.Mode) *harness {
	users := memstore.NewUserStore()
	catalog := memstore.NewMenuStore()
	ledger := memstore.NewReservationStore()

	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	policy := loyalty.NewPolicy(mode, 100, 10)
	services := &reservation.Services{Clock: mockClock}

	return &harness{
		clock:               mockClock,
		policy:              policy,
		userCommands:        commands.NewUserCommands(users, policy),
		menuCommands:        commands.NewMenuCommands(catalog),
		reservationCommands: commands.NewReservationCommands(ledger, catalog, users, services, policy),
		userQueries:         queries.NewUserQueries(users, ledger, policy),
		menuQueries:         queries.NewMenuQueries(catalog),
		reservationQueries:  queries.NewReservationQueries(ledger),
	}
}

func (h *harness) registerUser(t *testing.T, username, email string) *queries.UserView {
	t.Helper()
	view, err := h.userCommands.Register(context.Background(), commands.RegisterUserInput{
		Username:     username,
		Email:        email,
		PasswordHash: "hashed_password",
	})
	require.NoError(t, err)
	return view
}

func (h *harness) addMenuItem(t *testing.T, name string) *queries.MenuItemView {
	t.Helper()
	view, err := h.menuCommands.AddItem(context.Background(), name, "")
	require.NoError(t, err)
	return view
}

func (h *harness) createReservation(t *testing.T, customer string, itemID uuid.UUID) *queries.ReservationView {
	t.Helper()
	view, err := h.reservationCommands.Create(context.Background(), commands.CreateReservationInput{
		Customer: customer,
		ItemID:   itemID,
		Date:     "2024-01-10",
		Time:     "9:00",
		Quantity: 2,
	})
	require.NoError(t, err)
	return view
}
