//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordersync/internal/domain/cart"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/config"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/usecase/commands"
	commandsmock "ordersync/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recoveryCommandsFixture struct {
	tokens  *commandsmock.MockRecoveryTokenStore
	events  *commandsmock.MockRecoveryEventRecorder
	outbox  *commandsmock.MockNotificationEnqueuer
	clock   *clock.MockClock
	subject commands.RecoveryCommands
}

func newRecoveryCommandsFixture(t *testing.T, cfg config.RecoveryConfig) *recoveryCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &recoveryCommandsFixture{
		tokens: commandsmock.NewMockRecoveryTokenStore(ctrl),
		events: commandsmock.NewMockRecoveryEventRecorder(ctrl),
		outbox: commandsmock.NewMockNotificationEnqueuer(ctrl),
		clock:  clock.NewMockClock(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)),
	}
	f.subject = commands.NewRecoveryCommands(
		passthroughTxRunner{}, f.tokens, f.events, f.outbox, cfg, f.clock, slog.Default(),
	)
	return f
}

func enabledRecovery() config.RecoveryConfig {
	return config.RecoveryConfig{
		Enabled:             true,
		InactivityThreshold: time.Hour,
		TokenTTL:            168 * time.Hour,
	}
}

func TestRecoveryCommands_SendRecoveryEmail(t *testing.T) {
	f := newRecoveryCommandsFixture(t, enabledRecovery())
	ctx := context.Background()
	sessionID := uuid.New()
	now := f.clock.Now()

	f.tokens.EXPECT().Issue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, token cart.RecoveryToken) (cart.RecoveryToken, bool, error) {
			assert.Equal(t, sessionID, token.SessionID)
			return token, true, nil
		})
	f.outbox.EXPECT().CreateJob(ctx, gomock.Any(), sessionID, "email", "cart.recovery", gomock.Any(), now).
		Return(nil)
	f.events.EXPECT().RecordEvent(ctx, gomock.Any(), sessionID, commands.RecoveryEventEmailSent, now).
		Return(nil)

	result, err := f.subject.SendRecoveryEmail(ctx, commands.SendRecoveryEmailInput{
		SessionID: sessionID,
		Email:     "shopper@example.com",
	})
	require.NoError(t, err)

	assert.False(t, result.AlreadySent)
	assert.NotEmpty(t, result.DiscountCode)
}

func TestRecoveryCommands_SendRecoveryEmail_AtMostOncePerSession(t *testing.T) {
	f := newRecoveryCommandsFixture(t, enabledRecovery())
	ctx := context.Background()
	sessionID := uuid.New()

	existing := cart.RecoveryToken{SessionID: sessionID, DiscountCode: "COMEBACK-AB12CD34"}
	f.tokens.EXPECT().Issue(ctx, gomock.Any()).Return(existing, false, nil)

	// No outbox job and no funnel event when the token already existed.
	result, err := f.subject.SendRecoveryEmail(ctx, commands.SendRecoveryEmailInput{
		SessionID: sessionID,
		Email:     "shopper@example.com",
	})
	require.NoError(t, err)

	assert.True(t, result.AlreadySent)
	assert.Equal(t, "COMEBACK-AB12CD34", result.DiscountCode)
}

func TestRecoveryCommands_SendRecoveryEmail_Disabled(t *testing.T) {
	f := newRecoveryCommandsFixture(t, config.RecoveryConfig{Enabled: false})

	_, err := f.subject.SendRecoveryEmail(context.Background(), commands.SendRecoveryEmailInput{
		SessionID: uuid.New(),
		Email:     "shopper@example.com",
	})
	assert.ErrorIs(t, err, errs.ErrRecoveryDisabled)
}

func TestRecoveryCommands_TrackRecoveryEvent_RejectsUnknownEvent(t *testing.T) {
	f := newRecoveryCommandsFixture(t, enabledRecovery())

	err := f.subject.TrackRecoveryEvent(context.Background(), uuid.New(), "checkout_started")
	assert.Error(t, err)
}

func TestRecoveryCommands_ClaimRecoveryToken(t *testing.T) {
	f := newRecoveryCommandsFixture(t, enabledRecovery())
	ctx := context.Background()
	sessionID := uuid.New()

	f.tokens.EXPECT().Claim(ctx, "COMEBACK-AB12CD34").
		Return(cart.RecoveryToken{SessionID: sessionID, DiscountCode: "COMEBACK-AB12CD34", Consumed: true}, nil)
	f.events.EXPECT().RecordEvent(ctx, gomock.Any(), sessionID, commands.RecoveryEventCartRestored, f.clock.Now()).
		Return(nil)

	result, err := f.subject.ClaimRecoveryToken(ctx, "COMEBACK-AB12CD34")
	require.NoError(t, err)

	assert.Equal(t, sessionID, result.SessionID)
}

func TestRecoveryCommands_ClaimRecoveryToken_SecondClaimLoses(t *testing.T) {
	f := newRecoveryCommandsFixture(t, enabledRecovery())

	f.tokens.EXPECT().Claim(gomock.Any(), "COMEBACK-AB12CD34").
		Return(cart.RecoveryToken{}, errs.ErrRecoveryTokenConsumed)

	_, err := f.subject.ClaimRecoveryToken(context.Background(), "COMEBACK-AB12CD34")
	assert.ErrorIs(t, err, errs.ErrRecoveryTokenConsumed)
}
