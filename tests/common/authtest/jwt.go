//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, _, err := service.GenerateAccessToken(operatorID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, _, err := service.GenerateAccessToken(operatorID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
