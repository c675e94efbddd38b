package sequence

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	coreseq "opsdesk/internal/core/sequence"
)

// Mock objects
type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

// mockQuerier simulates the atomic upsert over per-(category, year) counters.
type mockQuerier struct {
	mu       sync.Mutex
	counters map[string]int64
	calls    int

	// failFirst makes the first N calls fail before succeeding.
	failFirst int
	// failAlways makes every call fail.
	failAlways bool
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.failAlways || m.calls <= m.failFirst {
		return &mockRow{err: errors.New("connection refused")}
	}

	if m.counters == nil {
		m.counters = make(map[string]int64)
	}
	key := fmt.Sprintf("%v_%v", args[0], args[1])

	if len(args) == 3 {
		// SetNext path: current_val = $3
		m.counters[key] = args[2].(int64)
	} else {
		m.counters[key]++
	}
	return &mockRow{val: m.counters[key]}
}

func newService(q Querier) *Service {
	svc := New(q)
	svc.backoff = time.Millisecond // keep retry tests fast
	return svc
}

func TestAllocate_Sequential(t *testing.T) {
	q := &mockQuerier{}
	svc := newService(q)
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	want := []string{"INV-2026-001", "INV-2026-002", "INV-2026-003"}
	for i, w := range want {
		num, err := svc.Allocate(ctx, coreseq.CategoryInvoice, now)
		if err != nil {
			t.Fatalf("allocate %d: unexpected error: %v", i, err)
		}
		if num != w {
			t.Errorf("allocate %d: expected %s, got %s", i, w, num)
		}
	}

	// Sequences are strictly increasing for sequential calls.
	prev := int64(0)
	for i := 0; i < 5; i++ {
		num, err := svc.Allocate(ctx, coreseq.CategoryInvoice, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seq := coreseq.ParseSeq(num)
		if seq <= prev {
			t.Errorf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAllocate_IndependentCategories(t *testing.T) {
	q := &mockQuerier{}
	svc := newService(q)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	inv, _ := svc.Allocate(ctx, coreseq.CategoryInvoice, now)
	ord, _ := svc.Allocate(ctx, coreseq.CategoryOrder, now)
	tkt, _ := svc.Allocate(ctx, coreseq.CategoryTicket, now)

	if inv != "INV-2026-001" || ord != "ORD-2026-001" || tkt != "TKT-2026-001" {
		t.Errorf("categories must not share counters: %s %s %s", inv, ord, tkt)
	}
}

func TestAllocate_YearRollover(t *testing.T) {
	q := &mockQuerier{}
	svc := newService(q)
	ctx := context.Background()

	dec := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
	jan := time.Date(2027, 1, 1, 0, 1, 0, 0, time.UTC)

	num, err := svc.Allocate(ctx, coreseq.CategoryInvoice, dec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2026-001" {
		t.Errorf("expected INV-2026-001, got %s", num)
	}

	num, err = svc.Allocate(ctx, coreseq.CategoryInvoice, jan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2027-001" {
		t.Errorf("new year must restart at 1, got %s", num)
	}
}

func TestAllocate_PaddingWidensAbove999(t *testing.T) {
	q := &mockQuerier{}
	svc := newService(q)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := svc.SetNext(ctx, coreseq.CategoryInvoice, 2026, 999); err != nil {
		t.Fatalf("set next: %v", err)
	}

	num, err := svc.Allocate(ctx, coreseq.CategoryInvoice, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2026-1000" {
		t.Errorf("sequence above 999 must widen, not wrap: got %s", num)
	}
}

func TestAllocate_ConcurrentUniqueness(t *testing.T) {
	q := &mockQuerier{}
	svc := newService(q)
	ctx := context.Background()
	now := time.Date(2026, 5, 5, 12, 0, 0, 0, time.UTC)

	const workers = 64
	results := make(chan string, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := svc.Allocate(ctx, coreseq.CategoryInvoice, now)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results <- num
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, workers)
	for num := range results {
		if seen[num] {
			t.Errorf("duplicate number allocated: %s", num)
		}
		seen[num] = true
	}
	if len(seen) != workers {
		t.Errorf("expected %d distinct numbers, got %d", workers, len(seen))
	}
}

func TestAllocate_RetriesTransientFailures(t *testing.T) {
	q := &mockQuerier{failFirst: 2}
	svc := newService(q)
	ctx := context.Background()
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	num, err := svc.Allocate(ctx, coreseq.CategoryOrder, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORD-2026-001" {
		t.Errorf("expected ORD-2026-001 after retries, got %s", num)
	}
	if q.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", q.calls)
	}
}

func TestAllocate_FallbackAfterExhaustion(t *testing.T) {
	q := &mockQuerier{failAlways: true}
	svc := newService(q)
	ctx := context.Background()
	now := time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)

	num, err := svc.Allocate(ctx, coreseq.CategoryInvoice, now)
	if err != nil {
		t.Fatalf("allocation must not surface store failure: %v", err)
	}

	// Fallback shape: prefix, year, six timestamp digits.
	matched, _ := regexp.MatchString(`^INV-2026-\d{6}$`, num)
	if !matched {
		t.Errorf("expected fallback number shape INV-2026-NNNNNN, got %s", num)
	}
	if q.calls != defaultMaxAttempts {
		t.Errorf("expected %d attempts before fallback, got %d", defaultMaxAttempts, q.calls)
	}
}

func TestAllocate_UnknownCategory(t *testing.T) {
	svc := newService(&mockQuerier{})

	_, err := svc.Allocate(context.Background(), coreseq.Category("receipt"), time.Now())
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}
