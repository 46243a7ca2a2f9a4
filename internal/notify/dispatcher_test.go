//go:build unit

package notify

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordersync/internal/infra/repository"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/config"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

// recordingTx captures the statements deliver issues so the outcome of an
// attempt can be asserted without Postgres.
type recordingTx struct {
	execs []string
	args  [][]any
}

func (r *recordingTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.execs = append(r.execs, sql)
	r.args = append(r.args, args)
	return pgconn.CommandTag{}, nil
}

func (r *recordingTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }

func (r *recordingTx) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

type stubSender struct{ err error }

func (s stubSender) Send(context.Context, repository.NotificationJob) error { return s.err }

func testNotifyConfig() config.NotifyConfig {
	return config.NotifyConfig{
		PollInterval:    time.Second,
		MaxAttempts:     3,
		BatchSize:       10,
		RetryBackoff:    100 * time.Millisecond,
		MaxRetryBackoff: time.Second,
	}
}

func newTestDispatcher(sender Sender) *Dispatcher {
	return NewDispatcher(
		nil,
		repository.NewNotificationRepository(),
		nil,
		map[string]Sender{"email": sender},
		testNotifyConfig(),
		clock.NewMockClock(fixedNow),
		slog.Default(),
	)
}

func emailJob(attempts int32) repository.NotificationJob {
	return repository.NotificationJob{
		ID:       uuid.New(),
		OrderID:  uuid.New(),
		Kind:     "email",
		Topic:    "order.shipped",
		Status:   repository.JobStatusPending,
		Attempts: attempts,
		RunAt:    fixedNow,
	}
}

func TestDispatcher_DeliverSuccessMarksSent(t *testing.T) {
	d := newTestDispatcher(stubSender{})
	tx := &recordingTx{}
	job := emailJob(0)

	d.deliver(context.Background(), tx, job)

	require.Len(t, tx.args, 1)
	assert.Equal(t, job.ID, tx.args[0][0])
	assert.Equal(t, repository.JobStatusSent, tx.args[0][1])
	assert.Equal(t, int32(1), tx.args[0][2])
}

func TestDispatcher_TransientFailureReschedulesWithoutBlocking(t *testing.T) {
	d := newTestDispatcher(stubSender{err: errs.New("smtp down")})
	tx := &recordingTx{}
	job := emailJob(0)

	d.deliver(context.Background(), tx, job)

	// One reschedule, no status change: the job stays pending with run_at
	// pushed one backoff step into the future.
	require.Len(t, tx.execs, 1)
	assert.Contains(t, tx.execs[0], "run_at = $3")
	assert.NotContains(t, tx.execs[0], "SET status")
	assert.Equal(t, int32(1), tx.args[0][1])
	assert.Equal(t, fixedNow.Add(100*time.Millisecond), tx.args[0][2])
	assert.Equal(t, "smtp down", tx.args[0][3])
}

func TestDispatcher_ExhaustedAttemptsMarkFailed(t *testing.T) {
	d := newTestDispatcher(stubSender{err: errs.New("smtp down")})
	tx := &recordingTx{}
	job := emailJob(2) // third attempt hits MaxAttempts

	d.deliver(context.Background(), tx, job)

	require.Len(t, tx.args, 1)
	assert.Equal(t, repository.JobStatusFailed, tx.args[0][1])
	assert.Equal(t, int32(3), tx.args[0][2])
	assert.Equal(t, "smtp down", tx.args[0][3])
}

func TestDispatcher_SkipMarksSkippedWithoutRetry(t *testing.T) {
	d := newTestDispatcher(stubSender{err: ErrSkip})
	tx := &recordingTx{}

	d.deliver(context.Background(), tx, emailJob(0))

	require.Len(t, tx.args, 1)
	assert.Equal(t, repository.JobStatusSkipped, tx.args[0][1])
}

func TestDispatcher_UnknownKindFailsTerminally(t *testing.T) {
	d := newTestDispatcher(stubSender{})
	tx := &recordingTx{}
	job := emailJob(0)
	job.Kind = "carrier_pigeon"

	d.deliver(context.Background(), tx, job)

	require.Len(t, tx.args, 1)
	assert.Equal(t, repository.JobStatusFailed, tx.args[0][1])
}

func TestDispatcher_RetryDelayDoublesAndCaps(t *testing.T) {
	d := newTestDispatcher(stubSender{})

	assert.Equal(t, 100*time.Millisecond, d.retryDelay(1))
	assert.Equal(t, 200*time.Millisecond, d.retryDelay(2))
	assert.Equal(t, 800*time.Millisecond, d.retryDelay(4))
	assert.Equal(t, time.Second, d.retryDelay(5))
	assert.Equal(t, time.Second, d.retryDelay(60))
}
