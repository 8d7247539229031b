// Package slug derives URL-safe, human-readable identifiers from titles and
// keeps them unique within a collection via a caller-supplied existence
// check. The check-then-act contract is not atomic: the backing store's own
// unique constraint stays the final authority, and callers should re-run
// assignment when an insert hits it.
package slug

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInvalidTitle means the title normalizes to an empty slug.
	ErrInvalidTitle = errors.New("title normalizes to empty slug")
	// ErrExhausted means every candidate was rejected by the existence check.
	ErrExhausted = errors.New("slug candidates exhausted")
)

const (
	maxAttempts = 3
	suffixRange = 1000
	maxLength   = 100
)

// ExistsFunc reports whether a candidate slug is already taken in the target
// collection. It must reflect the current state at call time; slightly stale
// reads are tolerated because the insert's unique constraint is authoritative.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Assigner produces unique slugs. The random source is injected so collision
// suffixes are deterministic in tests.
type Assigner struct {
	rnd *rand.Rand
}

func NewAssigner(rnd *rand.Rand) *Assigner {
	return &Assigner{rnd: rnd}
}

// Assign normalizes title and probes up to 3 candidates against exists: the
// bare normalized form first, then with a random 0-999 suffix. The first free
// candidate wins. Returns ErrInvalidTitle when nothing normalizable remains
// and ErrExhausted when every candidate is taken.
func (a *Assigner) Assign(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Normalize(title)
	if base == "" {
		return "", ErrInvalidTitle
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = fmt.Sprintf("%s-%d", base, a.rnd.Intn(suffixRange))
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", ErrExhausted
}

// stripMarks removes combining marks after NFD decomposition, so "Café" maps
// to "Cafe" rather than being dropped.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts a title to lower-kebab ASCII: transliterate, lowercase,
// collapse runs of non-alphanumerics into one hyphen, trim hyphens, cap at
// 100 characters. Returns "" when the title carries nothing usable.
func Normalize(title string) string {
	ascii, _, err := transform.String(stripMarks, title)
	if err != nil {
		ascii = title
	}

	var b strings.Builder
	b.Grow(len(ascii))

	lastWasDash := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash && b.Len() > 0 {
				b.WriteByte('-')
				lastWasDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxLength {
		out = strings.TrimRight(out[:maxLength], "-")
	}
	return out
}
