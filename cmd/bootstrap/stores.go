package bootstrap

import (
	"context"
	"log/slog"

	"loyalty-ledger/internal/infra/memstore"
	"loyalty-ledger/internal/infra/snapshot"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("stores",
	fx.Provide(
		NewUserStore,
		memstore.NewMenuStore,
		memstore.NewReservationStore,
		asUserRepository,
		asUserReadStore,
		asMenuRepository,
		asMenuReadStore,
		asReservationRepository,
		asReservationReadStore,
	),
)

// NewUserStore wires the optional directory snapshot: restore on start,
// flush on stop. Reservation and menu stores are never persisted.
func NewUserStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *memstore.UserStore {
	store := memstore.NewUserStore()

	path := cfg.Directory.SnapshotPath
	if path == "" {
		return store
	}

	snap := snapshot.NewUserSnapshot(path)
	users, err := snap.Load()
	switch {
	case err != nil:
		logger.Warn("user snapshot load failed, starting with an empty directory", "path", path, "error", err.Error())
	case len(users) > 0:
		store.Restore(users)
		logger.Info("user directory restored", "path", path, "users", len(users))
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := snap.Save(store.Snapshot()); err != nil {
				logger.Error("failed to persist user directory", "path", path, "error", err.Error())
				return err
			}
			return nil
		},
	})

	return store
}

func asUserRepository(s *memstore.UserStore) commands.UserRepository { return s }
func asUserReadStore(s *memstore.UserStore) queries.UserReadStore    { return s }

func asMenuRepository(s *memstore.MenuStore) commands.MenuRepository { return s }
func asMenuReadStore(s *memstore.MenuStore) queries.MenuReadStore    { return s }

func asReservationRepository(s *memstore.ReservationStore) commands.ReservationRepository {
	return s
}

func asReservationReadStore(s *memstore.ReservationStore) queries.ReservationReadStore {
	return s
}
