// Package sequence provides the PostgreSQL implementation of document number
// allocation. It implements the core/sequence.Allocator interface.
package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"opsdesk/internal/core/apperror"
	coreseq "opsdesk/internal/core/sequence"
	"opsdesk/pkg/logger"
)

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 50 * time.Millisecond
)

// nextValSQL claims the next counter value in a single atomic statement.
// The upsert creates the (category, year) row lazily on first allocation and
// guarantees mutual exclusion at the database level, so concurrent allocators
// (including other processes) never observe the same value.
const nextValSQL = `
	INSERT INTO sys_sequences (category, year, current_val)
	VALUES ($1, $2, 1)
	ON CONFLICT (category, year) DO UPDATE SET current_val = sys_sequences.current_val + 1
	RETURNING current_val
`

const setValSQL = `
	INSERT INTO sys_sequences (category, year, current_val)
	VALUES ($1, $2, $3)
	ON CONFLICT (category, year) DO UPDATE SET current_val = $3
	RETURNING current_val
`

// Service allocates document numbers from durable per-(category, year)
// counters in PostgreSQL.
//
// The counter increment is the only contended step. Number formatting and
// document persistence happen outside it, and allocation is intentionally
// executed outside business transactions: a claimed value stays claimed even
// when the enclosing document creation is rolled back.
type Service struct {
	querier     Querier
	maxAttempts int
	backoff     time.Duration
}

// Ensure compile-time interface compliance.
var _ coreseq.Allocator = (*Service)(nil)

// New creates a new sequence service.
func New(querier Querier) *Service {
	return &Service{
		querier:     querier,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
}

// Allocate claims the next number for the category in now's calendar year.
//
// Store failures are retried with backoff up to the attempt ceiling; after
// that a timestamp fallback number is issued instead of an error, since
// numbers are mandatory non-null fields on every document. The fallback is
// not collision-free (see coreseq.FallbackNumber) and is logged as degraded.
func (s *Service) Allocate(ctx context.Context, category coreseq.Category, now time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("sequence service is not initialized")
	}
	if !category.Valid() {
		return "", fmt.Errorf("allocate: unknown document category %q", category)
	}

	year := now.Year()
	seq, err := s.nextVal(ctx, category, year)
	if err != nil {
		logger.Warn(ctx, "sequence allocation degraded to fallback number",
			"category", category.String(),
			"year", year,
			"error", err)
		return coreseq.FallbackNumber(category, now), nil
	}

	return coreseq.Format(category, year, seq), nil
}

// nextVal claims the next counter value, retrying transient store failures.
func (s *Service) nextVal(ctx context.Context, category coreseq.Category, year int) (int64, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		var num int64
		err := s.querier.QueryRow(ctx, nextValSQL, category.String(), year).Scan(&num)
		if err == nil {
			return num, nil
		}
		lastErr = err

		if attempt < s.maxAttempts {
			select {
			case <-ctx.Done():
				return 0, apperror.NewSequenceExhausted(category.String(), attempt).WithCause(ctx.Err())
			case <-time.After(time.Duration(attempt) * s.backoff):
			}
		}
	}

	return 0, apperror.NewSequenceExhausted(category.String(), s.maxAttempts).WithCause(lastErr)
}

// SetNext sets the next counter value (for migration purposes).
func (s *Service) SetNext(ctx context.Context, category coreseq.Category, year int, value int64) error {
	if !category.Valid() {
		return fmt.Errorf("set next: unknown document category %q", category)
	}

	var result int64
	err := s.querier.QueryRow(ctx, setValSQL, category.String(), year, value).Scan(&result)
	if err != nil {
		return apperror.NewDatabase(fmt.Errorf("set next %s/%d: %w", category, year, err))
	}
	return nil
}
