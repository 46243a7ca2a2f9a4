package components

import (
	"ordersync/internal/infra/cache"
	"ordersync/internal/infra/db"
	"ordersync/internal/infra/readstore"
	"ordersync/internal/infra/repository"
	"ordersync/internal/pkg/config"
	"ordersync/internal/usecase/commands"
	"ordersync/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			db.NewTxRunner,
			fx.As(new(db.TxRunner)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repository.NewRecoveryEventRepository,
			fx.As(new(commands.RecoveryEventRecorder)),
		),
		// The notification repository doubles as the write-side outbox and
		// the dispatcher's job store, so both shapes are provided.
		repository.NewNotificationRepository,
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationEnqueuer)),
		),
		// Read-side stores for queries
		readstore.NewOrderReadStore,
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
		// Redis-backed caches
		cache.NewCartCache,
		fx.Annotate(
			cache.NewCartCache,
			fx.As(new(queries.CartViewCache)),
		),
		fx.Annotate(
			cache.NewCartCache,
			fx.As(new(commands.CartCacheInvalidator)),
		),
		fx.Annotate(
			NewRecoveryTokenStore,
			fx.As(new(commands.RecoveryTokenStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewRecoveryTokenStore(client *redis.Client, cfg config.Config) *cache.RecoveryTokenStore {
	return cache.NewRecoveryTokenStore(client, cfg.Recovery.TokenTTL)
}
