package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTTL(t *testing.T) {
	tests := []struct {
		spec string
		want time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"24h", 24 * time.Hour},
		{"30m", 30 * time.Minute},
		{"", defaultTokenTTL},
		{"d", defaultTokenTTL},
		{"0d", defaultTokenTTL},
		{"-5h", defaultTokenTTL},
		{"7w", defaultTokenTTL},
		{"abc", defaultTokenTTL},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTTL(tt.spec))
		})
	}
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", "1h")

	token, err := svc.Issue("user-1", "company-1", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", "1h").Issue("u", "c", RoleMember)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", "1h").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", "1h")
	claims := &Claims{
		UserID:    "u",
		CompanyID: "c",
		Role:      RoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsMissingIdentityClaims(t *testing.T) {
	svc := NewTokenService("test-secret", "1h")

	claims := &Claims{
		Role: RoleMember, // no userId / companyId
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("test-secret", "1h")

	claims := &Claims{UserID: "u", CompanyID: "c"}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", "1h")
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}
