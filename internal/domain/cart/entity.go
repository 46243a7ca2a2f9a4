package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrStaleRevision   = errors.New("revision not newer than committed revision")
)

// Line is one product entry in a cart. The unit price is snapshotted at
// the time the product was added so later catalog edits do not reprice
// carts already in flight.
type Line struct {
	ProductID      uuid.UUID
	Quantity       int32
	UnitPriceCents int64
	AddedAt        time.Time
}

// Session is the authoritative server-side cart. Revision is strictly
// increasing per session; no two committed writes may carry the same
// revision, which is what makes retried pushes idempotent.
type Session struct {
	id           uuid.UUID
	lines        []Line
	revision     int64
	lastModified time.Time
	createdAt    time.Time
}

func NewSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		id:           id,
		revision:     0,
		lastModified: now,
		createdAt:    now,
	}
}

func ReconstructSession(id uuid.UUID, lines []Line, revision int64, lastModified, createdAt time.Time) *Session {
	return &Session{
		id:           id,
		lines:        lines,
		revision:     revision,
		lastModified: lastModified,
		createdAt:    createdAt,
	}
}

// SetQuantity applies a quantity mutation carrying the client's revision.
// A mutation whose revision is not strictly greater than the committed
// revision is a duplicate of an already-applied push and is rejected with
// ErrStaleRevision; callers treat that as "already applied", not as a
// failure. Quantity zero removes the line.
func (s *Session) SetQuantity(productID uuid.UUID, quantity int32, unitPriceCents int64, revision int64, now time.Time) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if revision <= s.revision {
		return ErrStaleRevision
	}

	idx := -1
	for i, line := range s.lines {
		if line.ProductID == productID {
			idx = i
			break
		}
	}

	switch {
	case quantity == 0 && idx >= 0:
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	case quantity == 0:
		// Removing an absent line still commits the revision so the
		// retried push stays idempotent.
	case idx >= 0:
		s.lines[idx].Quantity = quantity
	default:
		s.lines = append(s.lines, Line{
			ProductID:      productID,
			Quantity:       quantity,
			UnitPriceCents: unitPriceCents,
			AddedAt:        now,
		})
	}

	s.revision = revision
	s.lastModified = now
	return nil
}

func (s *Session) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *Session) TotalCents() int64 {
	var total int64
	for _, line := range s.lines {
		total += int64(line.Quantity) * line.UnitPriceCents
	}
	return total
}

// NextRevision is the revision a client must carry for a fresh mutation.
func (s *Session) NextRevision() int64 {
	return s.revision + 1
}

func (s *Session) ID() uuid.UUID           { return s.id }
func (s *Session) Revision() int64         { return s.revision }
func (s *Session) LastModified() time.Time { return s.lastModified }
func (s *Session) CreatedAt() time.Time    { return s.createdAt }

// Lines returns a copy; callers must not mutate cart state directly.
func (s *Session) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}
