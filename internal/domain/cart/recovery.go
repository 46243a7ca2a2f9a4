package cart

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecoveryToken is handed to an abandoned-cart email. It is consumed at
// most once, when the customer restores the cart through the recovery
// link.
type RecoveryToken struct {
	SessionID    uuid.UUID `json:"session_id"`
	DiscountCode string    `json:"discount_code"`
	IssuedAt     time.Time `json:"issued_at"`
	Consumed     bool      `json:"consumed"`
}

func NewRecoveryToken(sessionID uuid.UUID, now time.Time) RecoveryToken {
	return RecoveryToken{
		SessionID:    sessionID,
		DiscountCode: newDiscountCode(),
		IssuedAt:     now,
	}
}

func newDiscountCode() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "COMEBACK-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return "COMEBACK-" + strings.ToUpper(hex.EncodeToString(buf))
}
