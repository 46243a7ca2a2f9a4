package repository

import (
	"context"
	"errors"
	"time"

	"ordersync/internal/domain/order"
	"ordersync/internal/infra"
	"ordersync/internal/infra/db"
	"ordersync/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO orders (id, status, assigned_to, priority, tracking_code, last_activity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		o.ID(),
		o.Status().String(),
		pgconv.UUIDPtrToPgtype(o.AssignedTo()),
		o.Priority(),
		pgconv.StringPtrToPgtype(o.TrackingCode()),
		o.LastActivity(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("order already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

// UpdateStatusConditional commits a transition with a conditional update
// keyed on the expected current status. Returning false means the row
// exists but another transition won the race; the caller maps that to a
// concurrent-modification failure. This also stays correct with several
// server instances, unlike an in-process lock.
func (r *OrderRepository) UpdateStatusConditional(
	ctx context.Context,
	tx db.DBTX,
	orderID uuid.UUID,
	expected, next order.Status,
	now time.Time,
) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $3, last_activity = $4, updated_at = now()
		WHERE id = $1 AND status = $2`,
		orderID, expected.String(), next.String(), now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// AppendStatusEvent writes one immutable audit row. Called only after the
// conditional update succeeded, inside the same transaction, so a failed
// transition leaves zero trace in the trail.
func (r *OrderRepository) AppendStatusEvent(ctx context.Context, tx db.DBTX, ev order.StatusEvent) error {
	var from *string
	if ev.FromStatus != nil {
		s := ev.FromStatus.String()
		from = &s
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO order_status_history (id, order_id, from_status, to_status, actor, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.ID,
		ev.OrderID,
		pgconv.StringPtrToPgtype(from),
		ev.ToStatus.String(),
		ev.Actor,
		pgconv.StringPtrToPgtype(ev.Comment),
		ev.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append status event", err)
	}
	return nil
}

// FindForTransition reads the order row for transition validation.
func (r *OrderRepository) FindForTransition(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*order.Order, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, status, assigned_to, priority, tracking_code, last_activity, created_at, updated_at
		FROM orders
		WHERE id = $1`,
		orderID,
	)

	var (
		id           uuid.UUID
		status       string
		assignedTo   pgtype.UUID
		priority     int32
		trackingCode pgtype.Text
		lastActivity time.Time
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &status, &assignedTo, &priority, &trackingCode, &lastActivity, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	st, err := order.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("order row carries unknown status", err)
	}

	return order.ReconstructOrder(
		id, st, pgconv.UUIDPtrFromPgtype(assignedTo), priority, pgconv.StringPtrFromPgtype(trackingCode),
		lastActivity, createdAt, updatedAt,
	), nil
}
