// Package auth implements account registration, credential login, and
// token handling.
//
// # Overview
//
// Registration creates a company (tenant) and its first admin user in a
// single transaction. The company slug is derived from the name and made
// unique with numeric suffix probes; a slug that collides at insert time
// (a probe race) is retried exactly once with a freshly resolved slug.
//
// # Password scheme
//
// Stored credentials are bcrypt over the sha256 hex digest of the
// password. The digest stage keeps arbitrarily long passwords inside
// bcrypt's 72-byte input limit. Verification tries the digest form first
// and falls back to comparing the raw password, so hashes written before
// the digest stage was introduced keep working.
//
// # Tokens
//
// Tokens are HS256 JWTs carrying userId, companyId and role, with a
// configurable lifetime ("7d", "24h", "30m"; default 7 days). Verification
// rejects non-HMAC signing methods and tokens missing either id claim.
//
// # Related Packages
//
//   - pkg/middleware: Applies token verification to protected routes
//   - pkg/apperr: Error taxonomy returned by this package
package auth
