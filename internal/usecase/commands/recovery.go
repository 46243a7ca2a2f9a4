package commands

import (
	"context"
	"log/slog"

	"ordersync/internal/domain/cart"
	"ordersync/internal/infra/db"
	"ordersync/internal/notify"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/config"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Recovery funnel events recorded in cart_recovery_events.
const (
	RecoveryEventEmailSent    = "email_sent"
	RecoveryEventLinkOpened   = "link_opened"
	RecoveryEventCartRestored = "cart_restored"
)

type SendRecoveryEmailInput struct {
	SessionID uuid.UUID
	Email     string
}

type SendRecoveryEmailResult struct {
	DiscountCode string
	// AlreadySent is true when a token already existed for the session;
	// the abandonment email goes out at most once per idle period.
	AlreadySent bool
}

type ClaimRecoveryTokenResult struct {
	SessionID    uuid.UUID
	DiscountCode string
}

type RecoveryCommands interface {
	SendRecoveryEmail(ctx context.Context, in SendRecoveryEmailInput) (*SendRecoveryEmailResult, error)
	TrackRecoveryEvent(ctx context.Context, sessionID uuid.UUID, event string) error
	ClaimRecoveryToken(ctx context.Context, discountCode string) (*ClaimRecoveryTokenResult, error)
}

type recoveryCommandsImpl struct {
	txRunner db.TxRunner
	tokens   RecoveryTokenStore
	events   RecoveryEventRecorder
	outbox   NotificationEnqueuer
	cfg      config.RecoveryConfig
	clock    clock.Clock
	logger   *slog.Logger
}

func NewRecoveryCommands(
	txRunner db.TxRunner,
	tokens RecoveryTokenStore,
	events RecoveryEventRecorder,
	outbox NotificationEnqueuer,
	cfg config.RecoveryConfig,
	clk clock.Clock,
	logger *slog.Logger,
) RecoveryCommands {
	return &recoveryCommandsImpl{
		txRunner: txRunner,
		tokens:   tokens,
		events:   events,
		outbox:   outbox,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
	}
}

// SendRecoveryEmail issues the session's recovery token and enqueues the
// abandonment email. Token issuance is the idempotence point: the store
// accepts one token per session, so concurrent detectors reporting the
// same abandonment produce one email.
func (c *recoveryCommandsImpl) SendRecoveryEmail(ctx context.Context, in SendRecoveryEmailInput) (*SendRecoveryEmailResult, error) {
	if !c.cfg.Enabled {
		return nil, errs.ErrRecoveryDisabled
	}

	now := c.clock.Now()
	token, created, err := c.tokens.Issue(ctx, cart.NewRecoveryToken(in.SessionID, now))
	if err != nil {
		return nil, err
	}
	if !created {
		return &SendRecoveryEmailResult{DiscountCode: token.DiscountCode, AlreadySent: true}, nil
	}

	job, err := notify.PlanForRecovery(in.SessionID, in.Email, token.DiscountCode, now)
	if err != nil {
		return nil, err
	}

	err = c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		if err := c.outbox.CreateJob(ctx, tx, in.SessionID, job.Kind, job.Topic, job.Payload, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.events.RecordEvent(ctx, tx, in.SessionID, RecoveryEventEmailSent, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("recovery email enqueued", "session_id", in.SessionID)
	return &SendRecoveryEmailResult{DiscountCode: token.DiscountCode}, nil
}

func (c *recoveryCommandsImpl) TrackRecoveryEvent(ctx context.Context, sessionID uuid.UUID, event string) error {
	switch event {
	case RecoveryEventEmailSent, RecoveryEventLinkOpened, RecoveryEventCartRestored:
	default:
		return errs.New("unknown recovery event")
	}

	return c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		if err := c.events.RecordEvent(ctx, tx, sessionID, event, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ClaimRecoveryToken consumes the discount code from a recovery link. The
// token store guarantees a single winner; the restored-cart funnel event
// is recorded only for that winner.
func (c *recoveryCommandsImpl) ClaimRecoveryToken(ctx context.Context, discountCode string) (*ClaimRecoveryTokenResult, error) {
	if !c.cfg.Enabled {
		return nil, errs.ErrRecoveryDisabled
	}

	token, err := c.tokens.Claim(ctx, discountCode)
	if err != nil {
		return nil, err
	}

	err = c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		if err := c.events.RecordEvent(ctx, tx, token.SessionID, RecoveryEventCartRestored, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ClaimRecoveryTokenResult{
		SessionID:    token.SessionID,
		DiscountCode: token.DiscountCode,
	}, nil
}
