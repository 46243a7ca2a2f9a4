package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ordersync/internal/infra/db"
	"ordersync/internal/infra/repository"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/config"
	"ordersync/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatusCounter supplies the live order counts the dispatcher folds into
// the metrics cache after draining a batch.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// Dispatcher drains the order_notifications outbox. Jobs are claimed with
// SKIP LOCKED so several instances can poll the same table. Each claim
// gets exactly one delivery attempt; a failed job goes back into the
// queue with run_at pushed forward exponentially, so a flaky channel
// never holds the claim transaction and its row locks open while waiting.
// Terminal failures stay in the table for the admin audit view.
type Dispatcher struct {
	pool    *pgxpool.Pool
	repo    *repository.NotificationRepository
	counter StatusCounter
	senders map[string]Sender
	cfg     config.NotifyConfig
	clock   clock.Clock
	logger  *slog.Logger
}

func NewDispatcher(
	pool *pgxpool.Pool,
	repo *repository.NotificationRepository,
	counter StatusCounter,
	senders map[string]Sender,
	cfg config.NotifyConfig,
	clk clock.Clock,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		pool:    pool,
		repo:    repo,
		counter: counter,
		senders: senders,
		cfg:     cfg,
		clock:   clk,
		logger:  logger,
	}
}

// Run polls until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				d.logger.Error("notification batch failed", "error", err)
			}
		}
	}
}

// Tick claims and delivers one batch. Exposed for tests and for callers
// that want to drain synchronously.
func (d *Dispatcher) Tick(ctx context.Context) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin notification batch")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	jobs, err := d.repo.ClaimDue(ctx, tx, d.clock.Now(), int32(d.cfg.BatchSize))
	if err != nil {
		return err
	}

	for _, job := range jobs {
		d.deliver(ctx, tx, job)
	}

	if len(jobs) > 0 {
		if err := d.refreshMetrics(ctx, tx); err != nil {
			d.logger.Warn("metrics cache refresh failed", "error", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit notification batch")
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, tx db.DBTX, job repository.NotificationJob) {
	sender, ok := d.senders[job.Kind]
	if !ok {
		d.logger.Error("no sender for notification kind", "job_id", job.ID, "kind", job.Kind)
		if err := d.repo.MarkFailed(ctx, tx, job.ID, job.Attempts, "unknown notification kind: "+job.Kind); err != nil {
			d.logger.Error("failed to mark notification failed", "job_id", job.ID, "error", err)
		}
		return
	}

	attempts := job.Attempts + 1
	sendErr := sender.Send(ctx, job)

	switch {
	case sendErr == nil:
		if err := d.repo.MarkSent(ctx, tx, job.ID, attempts); err != nil {
			d.logger.Error("failed to mark notification sent", "job_id", job.ID, "error", err)
		}
	case errors.Is(sendErr, ErrSkip):
		if err := d.repo.MarkSkipped(ctx, tx, job.ID, attempts); err != nil {
			d.logger.Error("failed to mark notification skipped", "job_id", job.ID, "error", err)
		}
	case attempts >= int32(d.cfg.MaxAttempts):
		d.logger.Warn("notification delivery exhausted attempts",
			"job_id", job.ID, "kind", job.Kind, "topic", job.Topic, "attempts", attempts, "error", sendErr,
		)
		if err := d.repo.MarkFailed(ctx, tx, job.ID, attempts, sendErr.Error()); err != nil {
			d.logger.Error("failed to mark notification failed", "job_id", job.ID, "error", err)
		}
	default:
		runAt := d.clock.Now().Add(d.retryDelay(attempts))
		d.logger.Warn("notification delivery failed, rescheduled",
			"job_id", job.ID, "kind", job.Kind, "attempts", attempts, "run_at", runAt, "error", sendErr,
		)
		if err := d.repo.Reschedule(ctx, tx, job.ID, attempts, runAt, sendErr.Error()); err != nil {
			d.logger.Error("failed to reschedule notification", "job_id", job.ID, "error", err)
		}
	}
}

// retryDelay doubles per completed attempt from the configured base,
// capped so a chronically failing job still reaches its terminal state
// within the audit window.
func (d *Dispatcher) retryDelay(attempts int32) time.Duration {
	delay := d.cfg.RetryBackoff
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= d.cfg.MaxRetryBackoff {
			return d.cfg.MaxRetryBackoff
		}
	}
	if delay > d.cfg.MaxRetryBackoff {
		return d.cfg.MaxRetryBackoff
	}
	return delay
}

func (d *Dispatcher) refreshMetrics(ctx context.Context, tx db.DBTX) error {
	counts, err := d.counter.CountByStatus(ctx)
	if err != nil {
		return err
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return errs.Wrap(err, "failed to marshal status counts")
	}
	return d.repo.RefreshMetricsCache(ctx, tx, data, total, d.clock.Now())
}
