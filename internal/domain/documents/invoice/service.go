// Package invoice provides the Invoice document service.
package invoice

import (
	"context"
	"fmt"
	"time"

	"opsdesk/internal/core/id"
	"opsdesk/internal/core/sequence"
	"opsdesk/internal/core/tx"
	"opsdesk/internal/core/types"
	"opsdesk/internal/domain"
	"opsdesk/internal/domain/billing"
	"opsdesk/pkg/logger"
)

// Service provides business operations for invoices.
type Service struct {
	repo      Repository
	allocator sequence.Allocator
	txManager tx.Manager
}

// NewService creates a new invoice service.
func NewService(repo Repository, allocator sequence.Allocator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		allocator: allocator,
		txManager: txManager,
	}
}

// Create computes totals, allocates the invoice number and persists the
// document.
//
// The number is claimed before the transaction starts: a rollback after
// allocation leaves a gap in the series, which is accepted (numbers are
// claimed at allocation time, not at successful commit time).
func (s *Service) Create(ctx context.Context, doc *Invoice, ov billing.Overrides) error {
	totals, items, err := billing.ComputeTotals(doc.Items, ov)
	if err != nil {
		return err
	}
	doc.ApplyTotals(totals, items)

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if !doc.HasNumber() {
		number, err := s.allocator.Allocate(ctx, NumberingCategory, time.Now())
		if err != nil {
			return fmt.Errorf("allocate number: %w", err)
		}
		doc.Number = number
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "invoice created",
		"id", doc.ID,
		"number", doc.Number,
		"total", doc.Total)

	return nil
}

// Update persists invoice changes. When itemsChanged is set, totals are fully
// recomputed from the new item list with the same override rules as Create;
// otherwise stored totals stay untouched.
func (s *Service) Update(ctx context.Context, doc *Invoice, itemsChanged bool, ov billing.Overrides) error {
	if itemsChanged {
		totals, items, err := billing.ComputeTotals(doc.Items, ov)
		if err != nil {
			return err
		}
		doc.ApplyTotals(totals, items)
	}

	if doc.Status == StatusPaid && doc.PaidDate == nil {
		doc.MarkPaid(time.Now().UTC())
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// GetByID retrieves an invoice.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
	return s.repo.GetByID(ctx, docID)
}

// GetByNumber retrieves an invoice by its allocated number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	return s.repo.GetByNumber(ctx, number)
}

// Delete soft-deletes an invoice. The allocated number is never reused.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
}

// ListStats aggregates totals over a fetched invoice list.
type ListStats struct {
	Total   types.Money `json:"total"`
	Paid    types.Money `json:"paid"`
	Pending types.Money `json:"pending"`
}

// List retrieves invoices with filter, plus sum stats over the returned set.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], ListStats, error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListFilter().Limit
	}

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.ListResult[*Invoice]{}, ListStats{}, err
	}

	stats := ListStats{
		Total:   types.Zero(),
		Paid:    types.Zero(),
		Pending: types.Zero(),
	}
	for _, inv := range result.Items {
		stats.Total = stats.Total.Add(inv.Total)
		switch inv.Status {
		case StatusPaid:
			stats.Paid = stats.Paid.Add(inv.Total)
		case StatusPending:
			stats.Pending = stats.Pending.Add(inv.Total)
		}
	}

	return result, stats, nil
}
