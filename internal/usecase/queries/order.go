package queries

import (
	"context"

	"ordersync/internal/infra"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderQueries interface {
	// GetByID is the full-state pull subscribers use to reconcile after
	// (re)connecting; it always includes the audit history.
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	UnifiedStats(ctx context.Context) (*OrderStatsView, error)
	FailedNotifications(ctx context.Context, limit int32) ([]*NotificationFailureView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	FindCachedStats(ctx context.Context) (*OrderStatsView, error)
	FindFailedNotifications(ctx context.Context, limit int32) ([]*NotificationFailureView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UnifiedStats prefers the denormalized cache row refreshed by the
// notification dispatcher and falls back to a live count.
func (q *orderQueriesImpl) UnifiedStats(ctx context.Context) (*OrderStatsView, error) {
	cached, err := q.store.FindCachedStats(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	counts, err := q.store.CountByStatus(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	return &OrderStatsView{Counts: counts, Total: total}, nil
}

func (q *orderQueriesImpl) FailedNotifications(ctx context.Context, limit int32) ([]*NotificationFailureView, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := q.store.FindFailedNotifications(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
