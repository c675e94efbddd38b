// Package order provides the Order document service.
package order

import (
	"context"
	"fmt"
	"time"

	"opsdesk/internal/core/id"
	"opsdesk/internal/core/sequence"
	"opsdesk/internal/core/tx"
	"opsdesk/internal/domain"
	"opsdesk/internal/domain/billing"
	"opsdesk/pkg/logger"
)

// Service provides business operations for orders.
type Service struct {
	repo      Repository
	allocator sequence.Allocator
	txManager tx.Manager
}

// NewService creates a new order service.
func NewService(repo Repository, allocator sequence.Allocator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		allocator: allocator,
		txManager: txManager,
	}
}

// Create computes totals, allocates the order number and persists the
// document. Numbers are claimed at allocation time; gaps from rolled-back
// creations are accepted.
func (s *Service) Create(ctx context.Context, doc *Order, ov billing.Overrides) error {
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

	logger.Info(ctx, "order created",
		"id", doc.ID,
		"number", doc.Number,
		"total", doc.Total)

	return nil
}

// Update persists order changes. When itemsChanged is set, totals are fully
// recomputed from the new item list; otherwise stored totals stay untouched.
func (s *Service) Update(ctx context.Context, doc *Order, itemsChanged bool, ov billing.Overrides) error {
	if itemsChanged {
		totals, items, err := billing.ComputeTotals(doc.Items, ov)
		if err != nil {
			return err
		}
		doc.ApplyTotals(totals, items)
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// GetByID retrieves an order.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Order, error) {
	return s.repo.GetByID(ctx, docID)
}

// GetByNumber retrieves an order by its allocated number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

// Delete soft-deletes an order.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
}

// List retrieves orders with filter.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListFilter().Limit
	}
	return s.repo.List(ctx, filter)
}
