package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"ordersync/internal/pkg/clock"

	"github.com/cenkalti/backoff/v4"
)

// SchedulerConfig tunes the sync loops. Zero values fall back to the
// defaults below.
type SchedulerConfig struct {
	PushDebounce   time.Duration
	PullInterval   time.Duration
	RequestTimeout time.Duration
	MaxPullBackoff time.Duration
}

func (c SchedulerConfig) withDefaults() SchedulerConfig {
	if c.PushDebounce <= 0 {
		c.PushDebounce = time.Second
	}
	if c.PullInterval <= 0 {
		c.PullInterval = 30 * time.Second
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 5 * time.Second
	}
	if c.MaxPullBackoff <= 0 {
		c.MaxPullBackoff = time.Minute
	}
	return c
}

// SyncScheduler drives one store's push and pull loops. Pushes flush
// the pending queue at most once per debounce window; pulls run on a
// fixed period plus explicit triggers (focus, view opened, manual).
// An in-flight sync makes a newly due one a no-op, never a queue entry.
type SyncScheduler struct {
	store  *StateStore
	gw     Gateway
	cfg    SchedulerConfig
	clk    clock.Clock
	logger *slog.Logger

	inflight atomic.Bool
	triggers chan struct{}

	mu      sync.Mutex
	retryAt time.Time
	backoff *backoff.ExponentialBackOff
}

func NewSyncScheduler(store *StateStore, gw Gateway, cfg SchedulerConfig, clk clock.Clock, logger *slog.Logger) *SyncScheduler {
	cfg = cfg.withDefaults()
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.PullInterval
	bo.MaxInterval = cfg.MaxPullBackoff
	bo.MaxElapsedTime = 0

	return &SyncScheduler{
		store:    store,
		gw:       gw,
		cfg:      cfg,
		clk:      clk,
		logger:   logger,
		triggers: make(chan struct{}, 1),
		backoff:  bo,
	}
}

// Run blocks until ctx is cancelled.
func (s *SyncScheduler) Run(ctx context.Context) {
	pushTicker := time.NewTicker(s.cfg.PushDebounce)
	pullTicker := time.NewTicker(s.cfg.PullInterval)
	defer pushTicker.Stop()
	defer pullTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-pushTicker.C:
			s.Flush(ctx)
		case <-pullTicker.C:
			if s.clk.Now().Before(s.nextRetry()) {
				continue
			}
			s.Pull(ctx)
		case <-s.triggers:
			// Explicit triggers ignore the failure backoff; a user
			// returning to the tab wants fresh state now.
			s.Pull(ctx)
		}
	}
}

// NotifyFocus requests a pull on the next loop iteration.
func (s *SyncScheduler) NotifyFocus() { s.trigger() }

// NotifyViewOpened requests a pull when a cart view becomes visible.
func (s *SyncScheduler) NotifyViewOpened() { s.trigger() }

// SyncNow requests an immediate manual pull.
func (s *SyncScheduler) SyncNow() { s.trigger() }

func (s *SyncScheduler) trigger() {
	select {
	case s.triggers <- struct{}{}:
	default:
	}
}

// Flush pushes the pending queue. A push failure leaves the mutation
// queued for the next window; a revision conflict drops it and lets
// the next pull reconcile.
func (s *SyncScheduler) Flush(ctx context.Context) {
	if !s.inflight.CompareAndSwap(false, true) {
		return
	}
	defer s.inflight.Store(false)

	for _, m := range s.store.Pending() {
		reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
		res, err := s.gw.SetItem(reqCtx, m)
		cancel()

		if errors.Is(err, ErrConflict) {
			s.logger.Warn("mutation lost a revision race, dropping",
				"product_id", m.ProductID, "revision", m.Revision)
			s.store.Ack(m.Revision)
			s.trigger()
			return
		}
		if err != nil {
			s.logger.Warn("push failed, mutation stays queued",
				"product_id", m.ProductID, "revision", m.Revision, "error", err)
			return
		}
		s.store.Ack(res.Revision)
	}
}

// Pull fetches the authoritative cart and reconciles the store with it.
func (s *SyncScheduler) Pull(ctx context.Context) {
	if !s.inflight.CompareAndSwap(false, true) {
		return
	}
	defer s.inflight.Store(false)

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	snap, err := s.gw.FetchCart(reqCtx)
	cancel()

	if err != nil {
		s.mu.Lock()
		s.retryAt = s.clk.Now().Add(s.backoff.NextBackOff())
		s.mu.Unlock()
		s.logger.Warn("pull failed", "error", err)
		return
	}

	s.mu.Lock()
	s.retryAt = time.Time{}
	s.backoff.Reset()
	s.mu.Unlock()

	s.store.ReconcileWith(snap)
}

func (s *SyncScheduler) nextRetry() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.retryAt
}
