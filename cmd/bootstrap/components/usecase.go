package components

import (
	"log/slog"

	"ordersync/internal/infra/db"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/config"
	"ordersync/internal/usecase/commands"
	"ordersync/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewOrderQueries,
		queries.NewCartQueries,
		commands.NewOrderCommands,
		commands.NewCartCommands,
		NewRecoveryCommands,
	),
)

func NewRecoveryCommands(
	txRunner db.TxRunner,
	tokens commands.RecoveryTokenStore,
	events commands.RecoveryEventRecorder,
	outbox commands.NotificationEnqueuer,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) commands.RecoveryCommands {
	return commands.NewRecoveryCommands(txRunner, tokens, events, outbox, cfg.Recovery, clk, logger)
}
