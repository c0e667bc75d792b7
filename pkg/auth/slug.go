package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// slugProbeLimit bounds the numeric-suffix search before falling back to a
// timestamp suffix.
const slugProbeLimit = 1000

// Slugify derives a URL-safe identifier from a company name: lowercase,
// runs of non-alphanumerics collapse to single hyphens, leading and
// trailing hyphens trimmed.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// querier is the subset of *sql.DB / *sql.Tx used for slug probes
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// ResolveUniqueSlug finds a slug not yet taken by any company. The base
// slug is probed first, then numeric suffixes -1, -2, ... up to the probe
// limit, then a unix-timestamp suffix as a last resort. The result is only
// tentatively free; the insert still races and must handle a duplicate-key
// error.
func ResolveUniqueSlug(ctx context.Context, q querier, name string) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "company"
	}

	candidate := base
	for counter := 0; ; counter++ {
		taken, err := slugTaken(ctx, q, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if counter >= slugProbeLimit {
			return fmt.Sprintf("%s-%d", base, time.Now().Unix()), nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter+1)
	}
}

func slugTaken(ctx context.Context, q querier, slug string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM companies WHERE slug = $1)", slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking slug availability: %w", err)
	}
	return exists, nil
}
