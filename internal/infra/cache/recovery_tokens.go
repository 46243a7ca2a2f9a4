package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordersync/internal/domain/cart"
	"ordersync/internal/infra"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RecoveryTokenStore keeps recovery tokens in Redis with the configured
// TTL. SET NX gives at-most-one issuance per session and at-most-one
// claim per code.
type RecoveryTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecoveryTokenStore(client *redis.Client, ttl time.Duration) *RecoveryTokenStore {
	return &RecoveryTokenStore{client: client, ttl: ttl}
}

// Issue stores the token unless one already exists for the session. The
// returned token is the stored one either way, so a retried issue request
// resends the same discount code instead of minting a second token.
func (s *RecoveryTokenStore) Issue(ctx context.Context, token cart.RecoveryToken) (cart.RecoveryToken, bool, error) {
	data, err := json.Marshal(token)
	if err != nil {
		return cart.RecoveryToken{}, false, errs.Wrap(err, "failed to marshal recovery token")
	}

	ok, err := s.client.SetNX(ctx, sessionTokenKey(token.SessionID), data, s.ttl).Result()
	if err != nil {
		return cart.RecoveryToken{}, false, errs.Wrap(err, "failed to store recovery token")
	}
	if ok {
		if err := s.client.Set(ctx, codeKey(token.DiscountCode), token.SessionID.String(), s.ttl).Err(); err != nil {
			return cart.RecoveryToken{}, false, errs.Wrap(err, "failed to index recovery code")
		}
		return token, true, nil
	}

	existing, err := s.findBySession(ctx, token.SessionID)
	if err != nil {
		return cart.RecoveryToken{}, false, err
	}
	return *existing, false, nil
}

// Claim consumes the token behind a discount code. At most one claim
// succeeds; later claims see the consumed flag and fail.
func (s *RecoveryTokenStore) Claim(ctx context.Context, discountCode string) (cart.RecoveryToken, error) {
	sessionRaw, err := s.client.Get(ctx, codeKey(discountCode)).Result()
	if err == redis.Nil {
		return cart.RecoveryToken{}, errs.ErrRecoveryTokenNotFound
	}
	if err != nil {
		return cart.RecoveryToken{}, errs.Wrap(err, "failed to look up recovery code")
	}

	sessionID, err := uuid.Parse(sessionRaw)
	if err != nil {
		return cart.RecoveryToken{}, errs.Wrap(err, "recovery code index is corrupt")
	}

	// SET NX on the claim marker decides the single winner between
	// concurrent claims of the same code.
	won, err := s.client.SetNX(ctx, claimKey(discountCode), "1", s.ttl).Result()
	if err != nil {
		return cart.RecoveryToken{}, errs.Wrap(err, "failed to claim recovery token")
	}
	if !won {
		return cart.RecoveryToken{}, errs.ErrRecoveryTokenConsumed
	}

	token, err := s.findBySession(ctx, sessionID)
	if err != nil {
		return cart.RecoveryToken{}, err
	}

	token.Consumed = true
	data, err := json.Marshal(token)
	if err != nil {
		return cart.RecoveryToken{}, errs.Wrap(err, "failed to marshal recovery token")
	}
	// KEEPTTL preserves the issuance expiry across the consumed-flag write.
	if err := s.client.Set(ctx, sessionTokenKey(sessionID), data, redis.KeepTTL).Err(); err != nil {
		return cart.RecoveryToken{}, errs.Wrap(err, "failed to consume recovery token")
	}
	return *token, nil
}

// Clear removes the session's token, used when the cart empties and the
// abandonment markers reset.
func (s *RecoveryTokenStore) Clear(ctx context.Context, sessionID uuid.UUID) error {
	token, err := s.findBySession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	return s.client.Del(ctx, sessionTokenKey(sessionID), codeKey(token.DiscountCode)).Err()
}

func (s *RecoveryTokenStore) findBySession(ctx context.Context, sessionID uuid.UUID) (*cart.RecoveryToken, error) {
	data, err := s.client.Get(ctx, sessionTokenKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, infra.WrapRepoErr("recovery token not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read recovery token")
	}

	var token cart.RecoveryToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, errs.Wrap(err, "recovery token entry is corrupt")
	}
	return &token, nil
}

func sessionTokenKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("cart-recovery:session:%s", sessionID)
}

func codeKey(discountCode string) string {
	return fmt.Sprintf("cart-recovery:code:%s", discountCode)
}

func claimKey(discountCode string) string {
	return fmt.Sprintf("cart-recovery:claim:%s", discountCode)
}
