package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/seed"
	"loyalty-ledger/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedStores),
)

// SeedStores loads the configured seed file (or the built-in default
// menu) into the catalog and directory before the boundary runs.
func SeedStores(
	cfg config.Config,
	logger *slog.Logger,
	menuCommands commands.MenuCommands,
	userCommands commands.UserCommands,
) error {
	file := seed.Default()
	if cfg.Seed.Path != "" {
		loaded, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return err
		}
		file = loaded
	}

	ctx := context.Background()

	for _, item := range file.Menu {
		if _, err := menuCommands.AddItem(ctx, item.Name, item.Image); err != nil {
			logger.Warn("skipping seed menu item", "name", item.Name, "error", err.Error())
		}
	}

	for _, u := range file.Users {
		_, err := userCommands.Register(ctx, commands.RegisterUserInput{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
		})
		if err != nil {
			// Already present when a directory snapshot was restored
			if errors.Is(err, commands.ErrDuplicateIdentity) {
				continue
			}
			logger.Warn("skipping seed user", "username", u.Username, "error", err.Error())
		}
	}

	logger.Info("stores seeded", "menu_items", len(file.Menu), "users", len(file.Users))
	return nil
}
