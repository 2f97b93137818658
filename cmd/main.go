package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"loyalty-ledger/cmd/bootstrap"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(runDemo),
	)

	ctx := context.Background()

	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start the application", "error", err)
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("failed to stop the application", "error", err)
		os.Exit(1)
	}
}

// runDemo stands in for the excluded UI layer: it walks the customer and
// cashier flows against the engine and logs what each actor would see.
func runDemo(
	logger *slog.Logger,
	userCommands commands.UserCommands,
	reservationCommands commands.ReservationCommands,
	userQueries queries.UserQueries,
	menuQueries queries.MenuQueries,
	reservationQueries queries.ReservationQueries,
) error {
	ctx := context.Background()
	logger.Info("🚀 loyalty engine demo")

	account, err := userCommands.Register(ctx, commands.RegisterUserInput{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "demo-hash",
	})
	if err != nil {
		if !errors.Is(err, commands.ErrDuplicateIdentity) {
			return err
		}
		// Restored from a directory snapshot on a previous run
		account, err = userQueries.Find(ctx, "alice")
		if err != nil {
			return err
		}
	}
	logger.Info("customer signed up", "username", account.Username, "points", account.Points)

	items, err := menuQueries.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		logger.Warn("menu is empty, nothing to reserve")
		return nil
	}

	created, err := reservationCommands.Create(ctx, commands.CreateReservationInput{
		Customer: account.Username,
		ItemID:   items[0].ID,
		Date:     time.Now().Format("2006-01-02"),
		Time:     "9:00",
		Quantity: 2,
	})
	if err != nil {
		return err
	}
	logger.Info("customer reserved", "item", created.ItemName, "quantity", created.Quantity, "status", created.Status)

	pending, err := reservationQueries.PendingQueue(ctx)
	if err != nil {
		return err
	}
	logger.Info("cashier queue", "pending", len(pending))

	if _, err := reservationCommands.Complete(ctx, created.ID); err != nil {
		return err
	}

	points, err := userQueries.EffectivePoints(ctx, account.Username)
	if err != nil {
		return err
	}

	history, err := reservationQueries.ByCustomer(ctx, account.Username)
	if err != nil {
		return err
	}
	logger.Info("cashier lookup", "customer", account.Username, "points", points, "reservations", len(history))

	logger.Info("🛑 demo finished")
	return nil
}
