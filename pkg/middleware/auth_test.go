package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabsdesign/studio/pkg/auth"
	"github.com/kabsdesign/studio/pkg/contextkeys"
)

func testTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	return auth.NewTokenService("test-secret-key", "1h")
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	var called bool
	handler := NewAuthMiddleware(testTokens(t)).Handler(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Missing authorization header")
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no scheme", "some-token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"lowercase bearer", "bearer token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := NewAuthMiddleware(testTokens(t)).Handler(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	var called bool
	handler := NewAuthMiddleware(testTokens(t)).Handler(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareRejectsTokenFromOtherSecret(t *testing.T) {
	other := auth.NewTokenService("different-secret", "1h")
	token, err := other.Issue("user-1", "company-1", auth.RoleMember)
	require.NoError(t, err)

	var called bool
	handler := NewAuthMiddleware(testTokens(t)).Handler(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddlewareAttachesClaims(t *testing.T) {
	tokens := testTokens(t)
	token, err := tokens.Issue("user-1", "company-1", auth.RoleAdmin)
	require.NoError(t, err)

	var gotClaims *auth.Claims
	var gotUserID, gotCompanyID string
	handler := NewAuthMiddleware(tokens).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = GetClaims(r)
		gotUserID = contextkeys.GetUserID(r.Context())
		gotCompanyID = contextkeys.GetCompanyID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "user-1", gotClaims.UserID)
	assert.Equal(t, "company-1", gotClaims.CompanyID)
	assert.Equal(t, auth.RoleAdmin, gotClaims.Role)
	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "company-1", gotCompanyID)
}

func TestGetClaimsWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	assert.Nil(t, GetClaims(req))
}

func TestRequireAdmin(t *testing.T) {
	tokens := testTokens(t)

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"admin passes", auth.RoleAdmin, http.StatusOK},
		{"member forbidden", auth.RoleMember, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Issue("user-1", "company-1", tt.role)
			require.NoError(t, err)

			var called bool
			handler := NewAuthMiddleware(tokens).Handler(RequireAdmin(okHandler(&called)))

			req := httptest.NewRequest(http.MethodDelete, "/api/projects/x", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
		})
	}
}

func TestRequireAdminWithoutAuthContext(t *testing.T) {
	var called bool
	rec := httptest.NewRecorder()
	RequireAdmin(okHandler(&called)).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
