package sequence

import (
	"context"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		category Category
		year     int
		seq      int64
		want     string
	}{
		{CategoryInvoice, 2026, 1, "INV-2026-001"},
		{CategoryOrder, 2026, 42, "ORD-2026-042"},
		{CategoryTicket, 2025, 999, "TKT-2025-999"},
		{CategoryInvoice, 2026, 1000, "INV-2026-1000"},
		{CategoryInvoice, 2026, 123456, "INV-2026-123456"},
	}

	for _, tt := range tests {
		if got := Format(tt.category, tt.year, tt.seq); got != tt.want {
			t.Errorf("Format(%s, %d, %d) = %s, want %s", tt.category, tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestParseSeq(t *testing.T) {
	if got := ParseSeq("INV-2026-007"); got != 7 {
		t.Errorf("ParseSeq = %d, want 7", got)
	}
	if got := ParseSeq("garbage"); got != -1 {
		t.Errorf("ParseSeq on garbage = %d, want -1", got)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("invoice")
	if err != nil || c != CategoryInvoice {
		t.Errorf("ParseCategory(invoice) = %v, %v", c, err)
	}
	if _, err := ParseCategory("note"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestFallbackNumber(t *testing.T) {
	now := time.UnixMilli(1764764123456).UTC()
	got := FallbackNumber(CategoryTicket, now)
	want := "TKT-" + now.Format("2006") + "-123456"
	if got != want {
		t.Errorf("FallbackNumber = %s, want %s", got, want)
	}
}

func TestMockAllocator_CountsPerCategoryYear(t *testing.T) {
	m := &MockAllocator{}
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	first, _ := m.Allocate(ctx, CategoryInvoice, now)
	second, _ := m.Allocate(ctx, CategoryInvoice, now)
	other, _ := m.Allocate(ctx, CategoryOrder, now)

	if first != "INV-2026-001" || second != "INV-2026-002" {
		t.Errorf("mock must count per series: %s, %s", first, second)
	}
	if other != "ORD-2026-001" {
		t.Errorf("mock must isolate categories: %s", other)
	}
}
