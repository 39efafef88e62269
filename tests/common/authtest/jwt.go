//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens with the same secret the app under test verifies with
type JWTHelper struct {
	secret []byte
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{secret: []byte(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role, tenantID *uuid.UUID) string {
	t.Helper()
	now := time.Now()
	return h.sign(t, userID, role, tenantID, now, now.Add(time.Hour))
}

// CreateExpiredToken is well past the verifier's clock-skew leeway
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issued := time.Now().Add(-2 * time.Hour)
	return h.sign(t, userID, role, nil, issued, issued.Add(time.Hour))
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role user.Role, tenantID *uuid.UUID, issued, expires time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		UserID:    userID,
		Role:      role.String(),
		TenantID:  tenantID,
		TokenType: jwt.TokenTypeAccess,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    jwt.Issuer,
			Subject:   userID.String(),
			IssuedAt:  gojwt.NewNumericDate(issued),
			ExpiresAt: gojwt.NewNumericDate(expires),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(h.secret)
	require.NoError(t, err)
	return token
}
