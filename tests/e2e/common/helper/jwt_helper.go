//go:build e2e

package helper

import (
	"testing"
	"time"

	"ordersync/internal/pkg/config"
	"ordersync/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Token issuance lives outside the service, so e2e tests sign their own
// tokens with the shared secret from the test config.
type JWTTestHelper struct {
	cfg config.JWTConfig
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{cfg: cfg}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
}

func (h *JWTTestHelper) CustomerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, userID, jwt.RoleCustomer)
}
