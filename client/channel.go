package client

import "sync"

// Channel fans a store's snapshot announcements out to sibling stores
// of the same session. The browser analogue is a storage event; the
// in-process implementation below serves tests and embedded use.
type Channel interface {
	Attach(store *StateStore)
	Detach(store *StateStore)
	Announce(from *StateStore, snap Snapshot)
}

// MemoryChannel delivers announcements synchronously to every attached
// store except the announcer. Each receiver applies its own
// last-writer-by-revision rule, so a stale announcement is a no-op.
type MemoryChannel struct {
	mu     sync.RWMutex
	stores map[*StateStore]struct{}
}

func NewMemoryChannel() *MemoryChannel {
	return &MemoryChannel{stores: make(map[*StateStore]struct{})}
}

func (c *MemoryChannel) Attach(store *StateStore) {
	c.mu.Lock()
	c.stores[store] = struct{}{}
	c.mu.Unlock()
}

func (c *MemoryChannel) Detach(store *StateStore) {
	c.mu.Lock()
	delete(c.stores, store)
	c.mu.Unlock()
}

func (c *MemoryChannel) Announce(from *StateStore, snap Snapshot) {
	c.mu.RLock()
	targets := make([]*StateStore, 0, len(c.stores))
	for s := range c.stores {
		if s != from {
			targets = append(targets, s)
		}
	}
	c.mu.RUnlock()

	for _, s := range targets {
		s.ReconcileWith(snap)
	}
}
