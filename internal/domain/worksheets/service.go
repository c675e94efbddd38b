package worksheets

import (
	"context"

	"opsdesk/internal/core/id"
	"opsdesk/internal/core/tx"
	"opsdesk/internal/domain"
	"opsdesk/pkg/logger"
)

// Service provides business logic for worksheets.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new worksheet service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create validates and persists a new worksheet.
func (s *Service) Create(ctx context.Context, w *Worksheet) error {
	if err := w.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, w)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "worksheet created", "id", w.ID, "title", w.Title)
	return nil
}

// Update validates and persists worksheet changes.
// Completed worksheets get their progress pinned at 100.
func (s *Service) Update(ctx context.Context, w *Worksheet) error {
	if w.Status == StatusCompleted {
		w.Progress = 100
	}

	if err := w.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, w)
	})
}

// GetByID retrieves a worksheet.
func (s *Service) GetByID(ctx context.Context, worksheetID id.ID) (*Worksheet, error) {
	return s.repo.GetByID(ctx, worksheetID)
}

// Delete soft-deletes a worksheet.
func (s *Service) Delete(ctx context.Context, worksheetID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, worksheetID)
	})
}

// List retrieves worksheets with filter.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Worksheet], error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListFilter().Limit
	}
	return s.repo.List(ctx, filter)
}
