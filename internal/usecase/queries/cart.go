package queries

import (
	"context"

	"ordersync/internal/infra"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartQueries interface {
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
}

type CartReadStore interface {
	FindBySession(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
}

// CartViewCache sits in front of the read store; entries are invalidated
// on every committed cart write.
type CartViewCache interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*CartView, bool)
	Set(ctx context.Context, view *CartView)
}

type cartQueriesImpl struct {
	store CartReadStore
	cache CartViewCache
}

func NewCartQueries(store CartReadStore, cache CartViewCache) CartQueries {
	return &cartQueriesImpl{store: store, cache: cache}
}

func (q *cartQueriesImpl) GetBySession(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	if view, ok := q.cache.Get(ctx, sessionID); ok {
		return view, nil
	}

	view, err := q.store.FindBySession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.cache.Set(ctx, view)
	return view, nil
}
