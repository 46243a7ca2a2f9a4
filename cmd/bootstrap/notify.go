package bootstrap

import (
	"context"
	"log/slog"

	"ordersync/internal/infra/readstore"
	"ordersync/internal/infra/repository"
	"ordersync/internal/notify"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		notify.NewEmailSender,
		func(cfg config.Config, logger *slog.Logger) *notify.PushSender {
			return notify.NewPushSender(cfg.Push, logger)
		},
		notify.NewSenderRegistry,
		NewDispatcher,
	),
	fx.Invoke(RunDispatcher),
)

func NewDispatcher(
	pool *pgxpool.Pool,
	repo *repository.NotificationRepository,
	reads *readstore.OrderReadStore,
	senders map[string]notify.Sender,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) *notify.Dispatcher {
	return notify.NewDispatcher(pool, repo, reads, senders, cfg.Notify, clk, logger)
}

// RunDispatcher ties the outbox poller to the fx lifecycle.
func RunDispatcher(lc fx.Lifecycle, dispatcher *notify.Dispatcher, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("notification dispatcher started")
			go dispatcher.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			logger.Info("notification dispatcher stopped")
			return nil
		},
	})
}
