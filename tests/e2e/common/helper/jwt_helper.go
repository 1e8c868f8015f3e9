//go:build e2e

package helper

import (
	"testing"
	"time"

	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Sessions come from the external auth service in production; e2e tests mint
// their own tokens with the shared secret instead.
type JWTTestHelper struct {
	cfg config.JWTConfig
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{cfg: cfg}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, member bool) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, member)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, member bool) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, member)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
