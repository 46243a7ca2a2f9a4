package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordersync/internal/domain/cart"
	"ordersync/internal/infra"
	"ordersync/internal/infra/db"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
)

type SetItemQuantityInput struct {
	SessionID      uuid.UUID
	ProductID      uuid.UUID
	Quantity       int32
	UnitPriceCents int64
	Revision       int64
}

// SetItemQuantityResult reports the committed revision. AlreadyApplied is
// true when the push carried a revision the server had already committed,
// which a retrying client treats as success.
type SetItemQuantityResult struct {
	Revision       int64
	AlreadyApplied bool
	CartEmpty      bool
}

type CartCommands interface {
	SetItemQuantity(ctx context.Context, in SetItemQuantityInput) (*SetItemQuantityResult, error)
}

type cartCommandsImpl struct {
	txRunner db.TxRunner
	carts    CartRepository
	tokens   RecoveryTokenStore
	cache    CartCacheInvalidator
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCartCommands(
	txRunner db.TxRunner,
	carts CartRepository,
	tokens RecoveryTokenStore,
	cache CartCacheInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) CartCommands {
	return &cartCommandsImpl{
		txRunner: txRunner,
		carts:    carts,
		tokens:   tokens,
		cache:    cache,
		clock:    clk,
		logger:   logger,
	}
}

func (c *cartCommandsImpl) SetItemQuantity(ctx context.Context, in SetItemQuantityInput) (*SetItemQuantityResult, error) {
	if in.Quantity < 0 {
		return nil, errs.ErrInvalidCartQuantity
	}

	var result SetItemQuantityResult

	err := c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		session, err := c.carts.FindForUpdate(ctx, tx, in.SessionID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		err = session.SetQuantity(in.ProductID, in.Quantity, in.UnitPriceCents, in.Revision, c.clock.Now())
		if errors.Is(err, cart.ErrStaleRevision) {
			// The row lock held by FindForUpdate makes this check
			// authoritative: the revision was already committed, so the
			// push is a duplicate and the cart must not change again.
			result = SetItemQuantityResult{
				Revision:       session.Revision(),
				AlreadyApplied: true,
				CartEmpty:      session.IsEmpty(),
			}
			return nil
		}
		if errors.Is(err, cart.ErrInvalidQuantity) {
			return errs.ErrInvalidCartQuantity
		}
		if err != nil {
			return err
		}

		if err := c.carts.Save(ctx, tx, session); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrStaleCartRevision
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = SetItemQuantityResult{
			Revision:  session.Revision(),
			CartEmpty: session.IsEmpty(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyApplied {
		c.cache.Invalidate(ctx, in.SessionID)
	}
	// An emptied cart is no longer abandoned; drop any recovery token so
	// the next idle period starts the funnel fresh.
	if result.CartEmpty && !result.AlreadyApplied {
		if err := c.tokens.Clear(ctx, in.SessionID); err != nil {
			c.logger.Warn("failed to clear recovery token", "session_id", in.SessionID, "error", err)
		}
	}

	return &result, nil
}
