// Package sequence provides domain contracts for document number allocation.
// Implementations live in infrastructure layer.
package sequence

import (
	"context"
	"fmt"
	"time"
)

// padWidth is the minimum sequence width in formatted numbers.
// Sequences above 999 widen the number, they are never truncated or wrapped.
const padWidth = 3

// Allocator allocates unique, monotonically increasing document numbers.
// This is the domain contract - implementations live in infrastructure layer.
//
// Pattern: PREFIX-YEAR-SEQ (e.g., INV-2026-001). Counters are kept per
// (category, year): the first allocation of a new year starts at 1 again.
//
// Allocate never leaves a document without a number: when the counter store
// is unavailable after bounded retries, implementations issue a degraded
// timestamp-based number instead of failing (see FallbackNumber).
type Allocator interface {
	// Allocate claims the next sequence value for the category in now's
	// calendar year and returns the formatted number. The claimed value is
	// never observed by a concurrent allocation; values claimed for
	// document creations that later fail are not reused.
	Allocate(ctx context.Context, category Category, now time.Time) (string, error)

	// SetNext sets the next sequence value (for migration purposes).
	SetNext(ctx context.Context, category Category, year int, value int64) error
}

// Format builds the canonical number string for a claimed sequence value.
func Format(category Category, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%0*d", category.Prefix(), year, padWidth, seq)
}

// FallbackNumber builds a degraded number from the wall clock's low-order
// digits (last six digits of unix milliseconds).
//
// NOT collision-free: two fallbacks within the same millisecond produce the
// same number. It is a last resort for counter-store outages only and trades
// strict monotonicity for availability.
func FallbackNumber(category Category, now time.Time) string {
	return fmt.Sprintf("%s-%d-%06d", category.Prefix(), now.Year(), now.UnixMilli()%1_000_000)
}

// ParseSeq extracts the numeric sequence part from a formatted number.
// Returns -1 if parsing fails.
func ParseSeq(formatted string) int64 {
	var num int64
	if _, err := fmt.Sscanf(formatted, "%*[^-]-%*d-%d", &num); err == nil {
		return num
	}
	return -1
}
