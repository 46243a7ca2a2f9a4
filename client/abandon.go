package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ordersync/internal/pkg/clock"
)

// RecoverySender triggers the abandonment email for the detector's
// session. HTTPGateway satisfies it.
type RecoverySender interface {
	SendRecoveryEmail(ctx context.Context, email string) error
}

// AbandonmentDetector watches one store for the abandoned condition: a
// non-empty cart idle past the threshold. Entering abandoned sends at
// most one recovery email; emptying the cart resets everything.
type AbandonmentDetector struct {
	store     *StateStore
	sender    RecoverySender
	email     string
	threshold time.Duration
	clk       clock.Clock
	logger    *slog.Logger

	mu        sync.Mutex
	abandoned bool
	emailSent bool
}

func NewAbandonmentDetector(store *StateStore, sender RecoverySender, email string, threshold time.Duration, clk clock.Clock, logger *slog.Logger) *AbandonmentDetector {
	if threshold <= 0 {
		threshold = time.Hour
	}
	return &AbandonmentDetector{
		store:     store,
		sender:    sender,
		email:     email,
		threshold: threshold,
		clk:       clk,
		logger:    logger,
	}
}

// Run checks on every tick of interval until ctx is cancelled.
func (d *AbandonmentDetector) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Check(ctx)
		}
	}
}

// Check evaluates the abandoned condition once. Safe to call from any
// goroutine and from tests directly.
func (d *AbandonmentDetector) Check(ctx context.Context) {
	snap := d.store.Snapshot()

	d.mu.Lock()
	if snap.Empty() {
		d.abandoned = false
		d.emailSent = false
		d.mu.Unlock()
		return
	}

	idle := d.clk.Now().Sub(snap.LastModified)
	if idle < d.threshold {
		d.abandoned = false
		d.mu.Unlock()
		return
	}

	d.abandoned = true
	alreadySent := d.emailSent
	d.mu.Unlock()

	if alreadySent {
		return
	}

	if err := d.sender.SendRecoveryEmail(ctx, d.email); err != nil {
		// Not marked sent; the next tick retries.
		d.logger.Warn("recovery email failed", "session_id", snap.SessionID, "error", err)
		return
	}

	d.mu.Lock()
	d.emailSent = true
	d.mu.Unlock()
	d.logger.Info("recovery email sent", "session_id", snap.SessionID)
}

// Abandoned reports whether the detector currently considers the cart
// abandoned.
func (d *AbandonmentDetector) Abandoned() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.abandoned
}
