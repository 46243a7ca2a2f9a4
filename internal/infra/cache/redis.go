package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"ordersync/internal/pkg/config"
	"ordersync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

// CartCache keeps cart views hot for the pull path. Entries are deleted
// on every committed write; a miss just falls through to Postgres, so
// cache errors are logged and swallowed.
type CartCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewCartCache(client *redis.Client) *CartCache {
	return &CartCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

func (c *CartCache) Get(ctx context.Context, sessionID uuid.UUID) (*queries.CartView, bool) {
	data, err := c.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("cart cache get failed", "error", err)
		}
		return nil, false
	}

	var view queries.CartView
	if err := json.Unmarshal(data, &view); err != nil {
		slog.Warn("cart cache entry is corrupt", "error", err)
		return nil, false
	}
	return &view, true
}

func (c *CartCache) Set(ctx context.Context, view *queries.CartView) {
	data, err := json.Marshal(view)
	if err != nil {
		slog.Warn("cart cache marshal failed", "error", err)
		return
	}

	// Jitter spreads expiry so carts warmed together do not all miss at once.
	ttl := c.baseTTL + time.Duration(rand.Intn(300))*time.Second
	if err := c.client.Set(ctx, cartKey(view.SessionID), data, ttl).Err(); err != nil {
		slog.Warn("cart cache set failed", "error", err)
	}
}

func (c *CartCache) Invalidate(ctx context.Context, sessionID uuid.UUID) {
	if err := c.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		slog.Warn("cart cache invalidate failed", "error", err)
	}
}

func cartKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
