//go:build unit

package cart_test

import (
	"testing"
	"time"

	"ordersync/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetQuantity_AddsAndUpdatesLines(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := cart.NewSession(uuid.New(), now)
	productID := uuid.New()

	require.NoError(t, s.SetQuantity(productID, 2, 1500, 1, now))
	require.Len(t, s.Lines(), 1)
	assert.Equal(t, int32(2), s.Lines()[0].Quantity)
	assert.Equal(t, int64(3000), s.TotalCents())
	assert.Equal(t, int64(1), s.Revision())

	require.NoError(t, s.SetQuantity(productID, 5, 1500, 2, now.Add(time.Minute)))
	require.Len(t, s.Lines(), 1)
	assert.Equal(t, int32(5), s.Lines()[0].Quantity)
	assert.Equal(t, int64(2), s.Revision())
	assert.Equal(t, now.Add(time.Minute), s.LastModified())
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	now := time.Now()
	s := cart.NewSession(uuid.New(), now)
	productID := uuid.New()

	require.NoError(t, s.SetQuantity(productID, 1, 900, 1, now))
	require.NoError(t, s.SetQuantity(productID, 0, 900, 2, now))

	assert.True(t, s.IsEmpty())
	assert.Equal(t, int64(2), s.Revision())
}

func TestSetQuantity_DuplicatePushIsRejectedByRevision(t *testing.T) {
	now := time.Now()
	s := cart.NewSession(uuid.New(), now)
	productID := uuid.New()

	require.NoError(t, s.SetQuantity(productID, 2, 1000, 1, now))

	// Retry after a false-negative timeout replays the same revision.
	err := s.SetQuantity(productID, 2, 1000, 1, now)
	assert.ErrorIs(t, err, cart.ErrStaleRevision)

	// Nothing double-applied.
	require.Len(t, s.Lines(), 1)
	assert.Equal(t, int32(2), s.Lines()[0].Quantity)
	assert.Equal(t, int64(1), s.Revision())
}

func TestSetQuantity_RejectsNegativeQuantity(t *testing.T) {
	now := time.Now()
	s := cart.NewSession(uuid.New(), now)

	err := s.SetQuantity(uuid.New(), -1, 1000, 1, now)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	assert.Equal(t, int64(0), s.Revision())
}

func TestSetQuantity_RemovingAbsentLineStillCommitsRevision(t *testing.T) {
	now := time.Now()
	s := cart.NewSession(uuid.New(), now)

	require.NoError(t, s.SetQuantity(uuid.New(), 0, 0, 1, now))
	assert.True(t, s.IsEmpty())
	assert.Equal(t, int64(1), s.Revision())
}

func TestNewRecoveryToken(t *testing.T) {
	sessionID := uuid.New()
	now := time.Now()

	token := cart.NewRecoveryToken(sessionID, now)

	assert.Equal(t, sessionID, token.SessionID)
	assert.False(t, token.Consumed)
	assert.Contains(t, token.DiscountCode, "COMEBACK-")
	assert.NotEqual(t, token.DiscountCode, cart.NewRecoveryToken(sessionID, now).DiscountCode)
}
