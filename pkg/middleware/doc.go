// Package middleware provides HTTP middleware for authentication and authorization.
//
// # Overview
//
// This package implements token authentication for protected routes. The
// middleware extracts the Bearer token, verifies it, and attaches the
// claims plus the user and company identifiers to the request context.
//
// # Middleware Components
//
// AuthMiddleware: JWT bearer authentication
//
//	authMW := middleware.NewAuthMiddleware(tokenService)
//	router.Use(authMW.Handler)
//	// Rejects missing/invalid tokens with 401 JSON
//
// RequireAdmin: Role gate for admin-only routes, applied after AuthMiddleware
//
//	router.Handle("/admin", middleware.RequireAdmin(handler))
//
// # Related Packages
//
//   - pkg/auth: Token issuing and verification
//   - pkg/contextkeys: Context keys the middleware sets
package middleware
