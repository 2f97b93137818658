package components

import (
	"loyalty-ledger/internal/domain/loyalty"
	"loyalty-ledger/internal/domain/reservation"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewLoyaltyPolicy,
	func(clk clock.Clock) *reservation.Services {
		return &reservation.Services{Clock: clk}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewMenuCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewMenuQueries,
		queries.NewReservationQueries,
	),
)

func NewLoyaltyPolicy(cfg config.Config) (loyalty.Policy, error) {
	mode, err := loyalty.NewMode(cfg.Loyalty.Mode)
	if err != nil {
		return loyalty.Policy{}, err
	}
	return loyalty.NewPolicy(mode, cfg.Loyalty.SignupGrant, cfg.Loyalty.ReservationBonus), nil
}
