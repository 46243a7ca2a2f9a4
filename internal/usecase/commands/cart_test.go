//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordersync/internal/domain/cart"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/usecase/commands"
	commandsmock "ordersync/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cartCommandsFixture struct {
	carts   *commandsmock.MockCartRepository
	tokens  *commandsmock.MockRecoveryTokenStore
	cache   *commandsmock.MockCartCacheInvalidator
	clock   *clock.MockClock
	subject commands.CartCommands
}

func newCartCommandsFixture(t *testing.T) *cartCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &cartCommandsFixture{
		carts:  commandsmock.NewMockCartRepository(ctrl),
		tokens: commandsmock.NewMockRecoveryTokenStore(ctrl),
		cache:  commandsmock.NewMockCartCacheInvalidator(ctrl),
		clock:  clock.NewMockClock(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)),
	}
	f.subject = commands.NewCartCommands(
		passthroughTxRunner{}, f.carts, f.tokens, f.cache, f.clock, slog.Default(),
	)
	return f
}

func TestCartCommands_SetItemQuantity(t *testing.T) {
	f := newCartCommandsFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()
	now := f.clock.Now()

	session := cart.ReconstructSession(sessionID, nil, 0, now, now)
	f.carts.EXPECT().FindForUpdate(ctx, gomock.Any(), sessionID).Return(session, nil)
	f.carts.EXPECT().Save(ctx, gomock.Any(), session).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, sessionID)

	result, err := f.subject.SetItemQuantity(ctx, commands.SetItemQuantityInput{
		SessionID:      sessionID,
		ProductID:      uuid.New(),
		Quantity:       2,
		UnitPriceCents: 1299,
		Revision:       1,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.Revision)
	assert.False(t, result.AlreadyApplied)
	assert.False(t, result.CartEmpty)
}

func TestCartCommands_SetItemQuantity_DuplicatePushIsAlreadyApplied(t *testing.T) {
	f := newCartCommandsFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()
	productID := uuid.New()
	now := f.clock.Now()

	// Revision 3 is already committed; a retried push carrying 3 must not
	// touch the cart or the cache.
	session := cart.ReconstructSession(sessionID, []cart.Line{
		{ProductID: productID, Quantity: 2, UnitPriceCents: 1299, AddedAt: now},
	}, 3, now, now)
	f.carts.EXPECT().FindForUpdate(ctx, gomock.Any(), sessionID).Return(session, nil)

	result, err := f.subject.SetItemQuantity(ctx, commands.SetItemQuantityInput{
		SessionID:      sessionID,
		ProductID:      productID,
		Quantity:       5,
		UnitPriceCents: 1299,
		Revision:       3,
	})
	require.NoError(t, err)

	assert.True(t, result.AlreadyApplied)
	assert.EqualValues(t, 3, result.Revision)
	assert.EqualValues(t, 2, session.Lines()[0].Quantity)
}

func TestCartCommands_SetItemQuantity_NegativeQuantity(t *testing.T) {
	f := newCartCommandsFixture(t)

	_, err := f.subject.SetItemQuantity(context.Background(), commands.SetItemQuantityInput{
		SessionID: uuid.New(),
		ProductID: uuid.New(),
		Quantity:  -1,
		Revision:  1,
	})
	assert.ErrorIs(t, err, errs.ErrInvalidCartQuantity)
}

func TestCartCommands_SetItemQuantity_EmptiedCartClearsRecoveryToken(t *testing.T) {
	f := newCartCommandsFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()
	productID := uuid.New()
	now := f.clock.Now()

	session := cart.ReconstructSession(sessionID, []cart.Line{
		{ProductID: productID, Quantity: 1, UnitPriceCents: 500, AddedAt: now},
	}, 1, now, now)
	f.carts.EXPECT().FindForUpdate(ctx, gomock.Any(), sessionID).Return(session, nil)
	f.carts.EXPECT().Save(ctx, gomock.Any(), session).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, sessionID)
	f.tokens.EXPECT().Clear(ctx, sessionID).Return(nil)

	result, err := f.subject.SetItemQuantity(ctx, commands.SetItemQuantityInput{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  0,
		Revision:  2,
	})
	require.NoError(t, err)
	assert.True(t, result.CartEmpty)
}
