package repository

import (
	"context"
	"time"

	"ordersync/internal/infra"
	"ordersync/internal/infra/db"
	"ordersync/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Job statuses in order_notifications. pending rows are the transactional
// outbox; failed rows are what the admin audit view surfaces.
const (
	JobStatusPending = "pending"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
	JobStatusSkipped = "skipped"
)

type NotificationJob struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError *string
	RunAt     time.Time
}

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues a notification in the same transaction as the state
// change it announces, so a committed transition always has its job and a
// rolled-back one never does.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, orderID uuid.UUID, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_notifications (id, order_id, kind, topic, payload, status, attempts, run_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, now(), now())`,
		uuid.New(), orderID, kind, topic, payload, JobStatusPending, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

// ClaimDue picks up to limit due pending jobs, skipping rows another
// dispatcher instance already holds.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, limit int32) ([]NotificationJob, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, order_id, kind, topic, payload, status, attempts, last_error, run_at
		FROM order_notifications
		WHERE status = $1 AND run_at <= $2
		ORDER BY run_at
		LIMIT $3
		FOR UPDATE SKIP LOCKED`,
		JobStatusPending, now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var (
			job       NotificationJob
			lastError pgtype.Text
		)
		if err := rows.Scan(&job.ID, &job.OrderID, &job.Kind, &job.Topic, &job.Payload, &job.Status, &job.Attempts, &lastError, &job.RunAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		job.LastError = pgconv.StringPtrFromPgtype(lastError)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx db.DBTX, jobID uuid.UUID, attempts int32) error {
	return r.setStatus(ctx, tx, jobID, JobStatusSent, attempts)
}

func (r *NotificationRepository) MarkSkipped(ctx context.Context, tx db.DBTX, jobID uuid.UUID, attempts int32) error {
	return r.setStatus(ctx, tx, jobID, JobStatusSkipped, attempts)
}

// MarkFailed records a terminal failure after retries are exhausted.
func (r *NotificationRepository) MarkFailed(ctx context.Context, tx db.DBTX, jobID uuid.UUID, attempts int32, lastError string) error {
	_, err := tx.Exec(ctx, `
		UPDATE order_notifications
		SET status = $2, attempts = $3, last_error = $4, updated_at = now()
		WHERE id = $1`,
		jobID, JobStatusFailed, attempts, lastError,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}

// Reschedule returns a failed attempt to the queue. The job stays
// pending with run_at pushed forward, so retries spread across ticks
// instead of stalling the claim transaction.
func (r *NotificationRepository) Reschedule(ctx context.Context, tx db.DBTX, jobID uuid.UUID, attempts int32, runAt time.Time, lastError string) error {
	_, err := tx.Exec(ctx, `
		UPDATE order_notifications
		SET attempts = $2, run_at = $3, last_error = $4, updated_at = now()
		WHERE id = $1`,
		jobID, attempts, runAt, lastError,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (r *NotificationRepository) setStatus(ctx context.Context, tx db.DBTX, jobID uuid.UUID, status string, attempts int32) error {
	_, err := tx.Exec(ctx, `
		UPDATE order_notifications
		SET status = $2, attempts = $3, updated_at = now()
		WHERE id = $1`,
		jobID, status, attempts,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}

// RefreshMetricsCache rewrites the denormalized aggregate row the admin
// stats endpoint reads.
func (r *NotificationRepository) RefreshMetricsCache(ctx context.Context, tx db.DBTX, counts []byte, total int64, now time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_metrics_cache (id, counts, total, refreshed_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET counts = EXCLUDED.counts, total = EXCLUDED.total, refreshed_at = EXCLUDED.refreshed_at`,
		counts, total, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to refresh metrics cache", err)
	}
	return nil
}
