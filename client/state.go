// Package client is the Go SDK for the cart synchronization protocol.
// Each viewer (a browser tab, a kiosk, a test) owns a StateStore with
// optimistic local state; a SyncScheduler pushes queued mutations and
// pulls the authoritative cart, and a ReconciliationChannel lets
// sibling stores of the same session converge without a server round
// trip.
package client

import (
	"sort"
	"sync"
	"time"

	"ordersync/internal/pkg/clock"

	"github.com/google/uuid"
)

// Line is one product entry in a snapshot.
type Line struct {
	ProductID      uuid.UUID
	Quantity       int32
	UnitPriceCents int64
}

// Snapshot is an immutable value of the cart at one revision.
type Snapshot struct {
	SessionID    uuid.UUID
	Revision     int64
	Lines        []Line
	TotalCents   int64
	LastModified time.Time
}

func (s Snapshot) Empty() bool { return len(s.Lines) == 0 }

// Mutation is one quantity change awaiting a push. Revision is the
// local revision the mutation produced; the server treats any revision
// it has already committed as a duplicate.
type Mutation struct {
	ProductID      uuid.UUID
	Quantity       int32
	UnitPriceCents int64
	Revision       int64
}

// StateStore holds one viewer's optimistic cart state. Apply commits
// locally and queues the mutation for the scheduler; ReconcileWith
// adopts a remote snapshot when it is at least as new as the local one.
type StateStore struct {
	mu       sync.Mutex
	snap     Snapshot
	pending  []Mutation
	channel  Channel
	onChange func(Snapshot)
	clk      clock.Clock
}

// NewStateStore attaches the store to channel when one is given.
// onChange fires after every local commit and every adoption; it runs
// outside the store lock and may be nil.
func NewStateStore(sessionID uuid.UUID, channel Channel, clk clock.Clock, onChange func(Snapshot)) *StateStore {
	s := &StateStore{
		snap:     Snapshot{SessionID: sessionID},
		channel:  channel,
		onChange: onChange,
		clk:      clk,
	}
	if channel != nil {
		channel.Attach(s)
	}
	return s
}

// Apply commits a quantity change locally and returns the mutation the
// scheduler will push. Quantity 0 removes the line. The local revision
// is strictly increasing across Apply calls.
func (s *StateStore) Apply(productID uuid.UUID, quantity int32, unitPriceCents int64) Mutation {
	s.mu.Lock()
	s.snap.Revision++
	s.setLine(productID, quantity, unitPriceCents)
	s.snap.LastModified = s.clk.Now()

	m := Mutation{
		ProductID:      productID,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
		Revision:       s.snap.Revision,
	}
	s.pending = append(s.pending, m)
	snap := s.copySnapshot()
	s.mu.Unlock()

	s.notify(snap)
	if s.channel != nil {
		s.channel.Announce(s, snap)
	}
	return m
}

// ReconcileWith adopts remote when its revision is not older than the
// local one, discarding pending mutations the remote already covers.
// Adoption notifies the UI callback only, never the channel, so a
// relayed snapshot cannot ping-pong between tabs. Returns whether the
// remote state was adopted.
func (s *StateStore) ReconcileWith(remote Snapshot) bool {
	s.mu.Lock()
	if remote.Revision < s.snap.Revision {
		s.mu.Unlock()
		return false
	}

	s.snap = Snapshot{
		SessionID:    s.snap.SessionID,
		Revision:     remote.Revision,
		Lines:        append([]Line(nil), remote.Lines...),
		TotalCents:   remote.TotalCents,
		LastModified: remote.LastModified,
	}
	s.dropThroughLocked(remote.Revision)
	snap := s.copySnapshot()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Ack removes pending mutations up to and including revision. The
// scheduler calls it after the server confirms a push.
func (s *StateStore) Ack(revision int64) {
	s.mu.Lock()
	s.dropThroughLocked(revision)
	s.mu.Unlock()
}

// Pending returns a copy of the queued mutations in apply order.
func (s *StateStore) Pending() []Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Mutation(nil), s.pending...)
}

// Snapshot returns a copy of the current local state.
func (s *StateStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySnapshot()
}

func (s *StateStore) SessionID() uuid.UUID { return s.snap.SessionID }

func (s *StateStore) setLine(productID uuid.UUID, quantity int32, unitPriceCents int64) {
	kept := s.snap.Lines[:0]
	for _, l := range s.snap.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.snap.Lines = kept
	if quantity > 0 {
		s.snap.Lines = append(s.snap.Lines, Line{
			ProductID:      productID,
			Quantity:       quantity,
			UnitPriceCents: unitPriceCents,
		})
		sort.Slice(s.snap.Lines, func(i, j int) bool {
			return s.snap.Lines[i].ProductID.String() < s.snap.Lines[j].ProductID.String()
		})
	}

	s.snap.TotalCents = 0
	for _, l := range s.snap.Lines {
		s.snap.TotalCents += int64(l.Quantity) * l.UnitPriceCents
	}
}

func (s *StateStore) dropThroughLocked(revision int64) {
	kept := s.pending[:0]
	for _, m := range s.pending {
		if m.Revision > revision {
			kept = append(kept, m)
		}
	}
	s.pending = kept
}

func (s *StateStore) copySnapshot() Snapshot {
	snap := s.snap
	snap.Lines = append([]Line(nil), s.snap.Lines...)
	return snap
}

func (s *StateStore) notify(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}
