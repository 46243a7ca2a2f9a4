package realtime

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Subscriber is one live connection's mailbox. Events are drained by the
// connection's write pump; the hub never writes to the network itself.
type Subscriber struct {
	id   uuid.UUID
	role Role
	send chan StatusChangedEvent
	done chan struct{}
}

func (s *Subscriber) ID() uuid.UUID { return s.id }

func (s *Subscriber) Role() Role { return s.role }

// Events is the receive side of the subscriber's mailbox. The channel is
// never closed; Done signals that the hub let go of the subscriber.
func (s *Subscriber) Events() <-chan StatusChangedEvent { return s.send }

// Done is closed by Unsubscribe, which is how the write pump learns the
// hub let go of it. The mailbox stays open forever so a publish racing an
// unsubscribe can never hit a closed channel.
func (s *Subscriber) Done() <-chan struct{} { return s.done }

// Hub is the process-wide registry of live subscriptions, keyed by order
// id plus a wildcard set for admin "all orders" subscribers. All registry
// mutation goes through the mutex; publishing copies the recipient list
// under the lock and delivers outside it, so one slow subscriber cannot
// stall subscribe/unsubscribe or other deliveries.
type Hub struct {
	mu       sync.RWMutex
	byOrder  map[uuid.UUID]map[*Subscriber]struct{}
	wildcard map[*Subscriber]struct{}
	interest map[*Subscriber][]uuid.UUID

	logger *slog.Logger

	dropped uint64 // events lost to full subscriber buffers
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		byOrder:  make(map[uuid.UUID]map[*Subscriber]struct{}),
		wildcard: make(map[*Subscriber]struct{}),
		interest: make(map[*Subscriber][]uuid.UUID),
		logger:   logger,
	}
}

// Subscribe registers a connection. Customers name the order ids they
// care about; admins passing no ids become wildcard subscribers.
// Re-subscribing an existing subscriber replaces its interest set.
func (h *Hub) Subscribe(role Role, orderIDs []uuid.UUID, buffer int) *Subscriber {
	sub := &Subscriber{
		id:   uuid.New(),
		role: role,
		send: make(chan StatusChangedEvent, buffer),
		done: make(chan struct{}),
	}
	h.attach(sub, orderIDs)
	return sub
}

// Resubscribe replaces the subscriber's interest set in place, keeping
// its mailbox (and therefore its connection) untouched.
func (h *Hub) Resubscribe(sub *Subscriber, orderIDs []uuid.UUID) {
	h.mu.Lock()
	if _, live := h.interest[sub]; !live {
		h.mu.Unlock()
		return
	}
	h.detachLocked(sub, false)
	h.mu.Unlock()
	h.attach(sub, orderIDs)
}

func (h *Hub) attach(sub *Subscriber, orderIDs []uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// A nil interest set from an admin means "all orders". An empty
	// non-nil slice means no interest at all, which is how an explicit
	// unsubscribe message lands here.
	if sub.role == RoleAdmin && orderIDs == nil {
		h.wildcard[sub] = struct{}{}
		h.interest[sub] = nil
		return
	}

	for _, orderID := range orderIDs {
		set, ok := h.byOrder[orderID]
		if !ok {
			set = make(map[*Subscriber]struct{})
			h.byOrder[orderID] = set
		}
		set[sub] = struct{}{}
	}
	h.interest[sub] = orderIDs
}

// Unsubscribe removes the subscriber and closes its done channel. Safe to
// call more than once; connection teardown and explicit unsubscribe
// messages both end up here.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(sub, true)
}

func (h *Hub) detachLocked(sub *Subscriber, signalDone bool) {
	if _, live := h.interest[sub]; !live {
		if _, wild := h.wildcard[sub]; !wild {
			return
		}
	}

	delete(h.wildcard, sub)
	for _, orderID := range h.interest[sub] {
		set := h.byOrder[orderID]
		delete(set, sub)
		if len(set) == 0 {
			delete(h.byOrder, orderID)
		}
	}
	delete(h.interest, sub)

	if signalDone {
		close(sub.done)
	}
}

// Publish fans the event out to every subscriber of its order and every
// wildcard subscriber. Fire and forget: a full mailbox drops the event
// for that subscriber only, and the pull-on-(re)connect path is what
// guarantees it converges anyway.
func (h *Hub) Publish(event StatusChangedEvent) {
	h.mu.RLock()
	recipients := make([]*Subscriber, 0, len(h.wildcard)+len(h.byOrder[event.OrderID]))
	for sub := range h.wildcard {
		recipients = append(recipients, sub)
	}
	for sub := range h.byOrder[event.OrderID] {
		recipients = append(recipients, sub)
	}
	h.mu.RUnlock()

	for _, sub := range recipients {
		select {
		case <-sub.done:
			// Unsubscribed between the snapshot and the send. The mailbox
			// is never closed, so losing this race is still safe.
			continue
		default:
		}
		select {
		case sub.send <- event:
		default:
			h.mu.Lock()
			h.dropped++
			h.mu.Unlock()
			h.logger.Warn("dropped broadcast to slow subscriber",
				"subscriber_id", sub.id,
				"order_id", event.OrderID,
				"to_status", event.ToStatus,
			)
		}
	}
}

// SubscriberCount reports live subscriptions, for health reporting.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.interest)
}

func (h *Hub) DroppedCount() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}
