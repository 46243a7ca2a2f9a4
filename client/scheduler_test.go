//go:build unit

package client_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ordersync/client"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu        sync.Mutex
	pushed    []client.Mutation
	pushErr   error
	pullSnap  client.Snapshot
	pullErr   error
	pullCalls int
	block     chan struct{}
}

func (g *fakeGateway) SetItem(_ context.Context, m client.Mutation) (client.PushResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pushErr != nil {
		return client.PushResult{}, g.pushErr
	}
	g.pushed = append(g.pushed, m)
	return client.PushResult{Revision: m.Revision}, nil
}

func (g *fakeGateway) FetchCart(_ context.Context) (client.Snapshot, error) {
	if g.block != nil {
		<-g.block
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pullCalls++
	if g.pullErr != nil {
		return client.Snapshot{}, g.pullErr
	}
	return g.pullSnap, nil
}

func (g *fakeGateway) SendRecoveryEmail(context.Context, string) error { return nil }

func (g *fakeGateway) pushedMutations() []client.Mutation {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]client.Mutation(nil), g.pushed...)
}

func newScheduler(store *client.StateStore, gw client.Gateway) *client.SyncScheduler {
	return client.NewSyncScheduler(store, gw, client.SchedulerConfig{}, clock.NewMockClock(baseTime), slog.Default())
}

func TestSyncScheduler_FlushPushesPendingInOrder(t *testing.T) {
	clk := clock.NewMockClock(baseTime)
	store := client.NewStateStore(uuid.New(), nil, clk, nil)
	gw := &fakeGateway{}
	s := newScheduler(store, gw)

	p1, p2 := uuid.New(), uuid.New()
	store.Apply(p1, 2, 100)
	store.Apply(p2, 1, 300)

	s.Flush(context.Background())

	pushed := gw.pushedMutations()
	require.Len(t, pushed, 2)
	assert.Equal(t, p1, pushed[0].ProductID)
	assert.Equal(t, p2, pushed[1].ProductID)
	assert.Empty(t, store.Pending())
}

func TestSyncScheduler_PushFailureLeavesMutationQueued(t *testing.T) {
	clk := clock.NewMockClock(baseTime)
	store := client.NewStateStore(uuid.New(), nil, clk, nil)
	gw := &fakeGateway{pushErr: errs.New("connection refused")}
	s := newScheduler(store, gw)

	store.Apply(uuid.New(), 2, 100)
	s.Flush(context.Background())

	require.Len(t, store.Pending(), 1)

	// The queue drains once the server is reachable again.
	gw.mu.Lock()
	gw.pushErr = nil
	gw.mu.Unlock()
	s.Flush(context.Background())
	assert.Empty(t, store.Pending())
}

func TestSyncScheduler_ConflictDropsMutation(t *testing.T) {
	clk := clock.NewMockClock(baseTime)
	store := client.NewStateStore(uuid.New(), nil, clk, nil)
	gw := &fakeGateway{pushErr: client.ErrConflict}
	s := newScheduler(store, gw)

	store.Apply(uuid.New(), 2, 100)
	s.Flush(context.Background())

	assert.Empty(t, store.Pending())
}

func TestSyncScheduler_PullReconcilesStore(t *testing.T) {
	clk := clock.NewMockClock(baseTime)
	sessionID := uuid.New()
	store := client.NewStateStore(sessionID, nil, clk, nil)
	productID := uuid.New()
	gw := &fakeGateway{pullSnap: client.Snapshot{
		SessionID:    sessionID,
		Revision:     9,
		Lines:        []client.Line{{ProductID: productID, Quantity: 5, UnitPriceCents: 200}},
		TotalCents:   1000,
		LastModified: baseTime,
	}}
	s := newScheduler(store, gw)

	s.Pull(context.Background())

	snap := store.Snapshot()
	assert.Equal(t, int64(9), snap.Revision)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, int32(5), snap.Lines[0].Quantity)
}

func TestSyncScheduler_InFlightSyncSkipsOverlap(t *testing.T) {
	clk := clock.NewMockClock(baseTime)
	store := client.NewStateStore(uuid.New(), nil, clk, nil)
	gw := &fakeGateway{block: make(chan struct{})}
	s := newScheduler(store, gw)

	done := make(chan struct{})
	go func() {
		s.Pull(context.Background())
		close(done)
	}()

	// Wait for the first pull to enter the gateway, then a second one
	// must return immediately instead of queueing behind it.
	time.Sleep(20 * time.Millisecond)
	s.Pull(context.Background())

	close(gw.block)
	<-done

	gw.mu.Lock()
	defer gw.mu.Unlock()
	assert.Equal(t, 1, gw.pullCalls)
}
