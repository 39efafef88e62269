package jwt

import (
	"time"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

const (
	Issuer = "rental-marketplace"
	leeway = 30 * time.Second
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carries the identity the auth middleware puts on the request.
// TenantID is set only for owners.
type Claims struct {
	UserID    uuid.UUID  `json:"user_id"`
	Role      string     `json:"role"`
	TenantID  *uuid.UUID `json:"tenant_id,omitempty"`
	TokenType TokenType  `json:"token_type"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens for both halves of a session
type Service struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	parser     *jwt.Parser
}

func NewService(secretKey string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		key:        []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(leeway),
		),
	}
}

func (s *Service) AccessTokenDuration() time.Duration  { return s.accessTTL }
func (s *Service) RefreshTokenDuration() time.Duration { return s.refreshTTL }

func (s *Service) GenerateAccessToken(userID uuid.UUID, role user.Role, tenantID *uuid.UUID) (string, error) {
	return s.sign(Claims{UserID: userID, Role: role.String(), TenantID: tenantID, TokenType: TokenTypeAccess}, s.accessTTL)
}

func (s *Service) GenerateRefreshToken(userID uuid.UUID, role user.Role, tenantID *uuid.UUID) (string, error) {
	return s.sign(Claims{UserID: userID, Role: role.String(), TenantID: tenantID, TokenType: TokenTypeRefresh}, s.refreshTTL)
}

func (s *Service) sign(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    Issuer,
		Subject:   claims.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", errs.Wrapf(err, "sign %s token", claims.TokenType)
	}
	return signed, nil
}

// ValidateToken returns ErrExpiredToken for stale tokens and ErrInvalidToken
// for everything else the parser rejects.
func (s *Service) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case errs.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
