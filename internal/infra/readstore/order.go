package readstore

import (
	"context"
	"encoding/json"
	"time"

	"ordersync/internal/infra"
	"ordersync/internal/infra/db"
	"ordersync/internal/pkg/pgconv"
	"ordersync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, status, assigned_to, priority, tracking_code, last_activity, created_at, updated_at
		FROM orders
		WHERE id = $1`,
		id,
	)

	var (
		view         queries.OrderView
		assignedTo   pgtype.UUID
		trackingCode pgtype.Text
	)
	err := row.Scan(&view.ID, &view.Status, &assignedTo, &view.Priority, &trackingCode, &view.LastActivity, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	view.AssignedTo = pgconv.UUIDPtrFromPgtype(assignedTo)
	view.TrackingCode = pgconv.StringPtrFromPgtype(trackingCode)

	history, err := r.findHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	view.History = history

	return &view, nil
}

func (r *OrderReadStore) findHistory(ctx context.Context, orderID uuid.UUID) ([]queries.StatusEventView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, from_status, to_status, actor, comment, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY created_at, id`,
		orderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read status history", err)
	}
	defer rows.Close()

	var history []queries.StatusEventView
	for rows.Next() {
		var (
			ev         queries.StatusEventView
			fromStatus pgtype.Text
			comment    pgtype.Text
		)
		if err := rows.Scan(&ev.ID, &ev.OrderID, &fromStatus, &ev.ToStatus, &ev.Actor, &comment, &ev.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status event", err)
		}
		ev.FromStatus = pgconv.StringPtrFromPgtype(fromStatus)
		ev.Comment = pgconv.StringPtrFromPgtype(comment)
		history = append(history, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status history", err)
	}
	return history, nil
}

func (r *OrderReadStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count orders by status", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status counts", err)
	}
	return counts, nil
}

// FindCachedStats reads the aggregate row maintained by the notification
// dispatcher. Staleness beyond a minute falls back to a live count.
func (r *OrderReadStore) FindCachedStats(ctx context.Context) (*queries.OrderStatsView, error) {
	row := r.db.QueryRow(ctx, `SELECT counts, total, refreshed_at FROM order_metrics_cache WHERE id = 1`)

	var (
		countsJSON  []byte
		total       int64
		refreshedAt time.Time
	)
	if err := row.Scan(&countsJSON, &total, &refreshedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("metrics cache empty", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read metrics cache", err)
	}
	if time.Since(refreshedAt) > time.Minute {
		return nil, infra.WrapRepoErr("metrics cache stale", nil, infra.KindNotFound)
	}

	counts := make(map[string]int64)
	if err := json.Unmarshal(countsJSON, &counts); err != nil {
		return nil, infra.WrapRepoErr("metrics cache row is corrupt", err)
	}

	return &queries.OrderStatsView{
		Counts:    counts,
		Total:     total,
		FetchedAt: refreshedAt,
		FromCache: true,
	}, nil
}

func (r *OrderReadStore) FindFailedNotifications(ctx context.Context, limit int32) ([]*queries.NotificationFailureView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, kind, topic, attempts, last_error, created_at, updated_at
		FROM order_notifications
		WHERE status = 'failed'
		ORDER BY updated_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read failed notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationFailureView
	for rows.Next() {
		var (
			v         queries.NotificationFailureView
			lastError pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.OrderID, &v.Kind, &v.Topic, &v.Attempts, &lastError, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan failed notification", err)
		}
		v.LastError = pgconv.StringPtrFromPgtype(lastError)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate failed notifications", err)
	}
	return result, nil
}
