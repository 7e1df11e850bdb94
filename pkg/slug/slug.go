// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxLength is the longest base slug produced by Base.
	MaxLength = 90

	// MaxProbes bounds the sequential suffix search in Unique.
	MaxProbes = 1000

	fallback = "item"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// ExistsFunc reports whether a slug is already taken in the target table.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Base lowercases the title, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims hyphens from both ends.
// The result is cut to MaxLength.
func Base(title string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}

// Unique returns the first of base, base-1, base-2, ... for which exists
// reports false. Titles without any alphanumerics use "item" as base.
//
// The check is not a reservation: a concurrent insert can still take the
// returned slug, so callers must rely on a unique index and retry.
func Unique(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Base(title)
	if base == "" {
		base = fallback
	}

	candidate := base
	for i := 1; i <= MaxProbes; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}
