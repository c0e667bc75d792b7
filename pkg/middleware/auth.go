package middleware

import (
	"net/http"
	"strings"

	"github.com/kabsdesign/studio/pkg/auth"
	"github.com/kabsdesign/studio/pkg/contextkeys"
	"github.com/kabsdesign/studio/pkg/httputil"
)

// AuthMiddleware verifies the bearer token and attaches the claims to
// the request context.
type AuthMiddleware struct {
	tokens *auth.TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handler wraps an HTTP handler with authentication
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.WriteUnauthorized(w, "Missing authorization header")
			return
		}

		// Format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.WriteUnauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			httputil.WriteUnauthorized(w, "Invalid or expired token")
			return
		}

		ctx := contextkeys.WithAuth(r.Context(), claims)
		ctx = contextkeys.WithUserID(ctx, claims.UserID)
		ctx = contextkeys.WithCompanyID(ctx, claims.CompanyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims extracts verified token claims from the request
func GetClaims(r *http.Request) *auth.Claims {
	claims, ok := r.Context().Value(contextkeys.AuthKey).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// RequireAdmin rejects requests whose token does not carry the admin
// role. It must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r)
		if claims == nil {
			httputil.WriteUnauthorized(w, "Authentication required")
			return
		}
		if claims.Role != auth.RoleAdmin {
			httputil.WriteErrorMessage(w, http.StatusForbidden, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
