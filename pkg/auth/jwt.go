package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kabsdesign/studio/pkg/apperr"
)

// defaultTokenTTL applies when the configured TTL spec is absent or
// unparseable.
const defaultTokenTTL = 7 * 24 * time.Hour

// Claims are the token claims issued at register/login
type Claims struct {
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. expiresIn accepts "<n>d",
// "<n>h" or "<n>m"; anything else falls back to 7 days.
func NewTokenService(secret, expiresIn string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ParseTTL(expiresIn),
	}
}

// ParseTTL converts a TTL spec like "7d", "24h" or "30m" to a duration
func ParseTTL(spec string) time.Duration {
	spec = strings.TrimSpace(spec)
	if len(spec) < 2 {
		return defaultTokenTTL
	}

	unit := spec[len(spec)-1]
	n, err := strconv.Atoi(spec[:len(spec)-1])
	if err != nil || n <= 0 {
		return defaultTokenTTL
	}

	switch unit {
	case 'd':
		return time.Duration(n) * 24 * time.Hour
	case 'h':
		return time.Duration(n) * time.Hour
	case 'm':
		return time.Duration(n) * time.Minute
	default:
		return defaultTokenTTL
	}
}

// Issue signs a token for the given user
func (s *TokenService) Issue(userID, companyID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims. Tokens signed
// with a non-HMAC method, expired tokens, and tokens missing the user or
// company claim are all rejected.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	if claims.UserID == "" || claims.CompanyID == "" {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}

// TTL exposes the configured token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
