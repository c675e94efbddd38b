// Package ticket provides the Ticket document service.
package ticket

import (
	"context"
	"fmt"
	"time"

	"opsdesk/internal/core/id"
	"opsdesk/internal/core/sequence"
	"opsdesk/internal/core/tx"
	"opsdesk/internal/domain"
	"opsdesk/pkg/logger"
)

// Service provides business operations for tickets.
type Service struct {
	repo      Repository
	allocator sequence.Allocator
	txManager tx.Manager
}

// NewService creates a new ticket service.
func NewService(repo Repository, allocator sequence.Allocator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		allocator: allocator,
		txManager: txManager,
	}
}

// Create allocates the ticket number and persists the document.
func (s *Service) Create(ctx context.Context, doc *Ticket) error {
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

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "ticket created",
		"id", doc.ID,
		"number", doc.Number,
		"priority", doc.Priority)

	return nil
}

// Update persists ticket changes.
func (s *Service) Update(ctx context.Context, doc *Ticket) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// GetByID retrieves a ticket.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Ticket, error) {
	return s.repo.GetByID(ctx, docID)
}

// GetByNumber retrieves a ticket by its allocated number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Ticket, error) {
	return s.repo.GetByNumber(ctx, number)
}

// Delete soft-deletes a ticket.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
}

// List retrieves tickets with filter.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Ticket], error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListFilter().Limit
	}
	return s.repo.List(ctx, filter)
}
