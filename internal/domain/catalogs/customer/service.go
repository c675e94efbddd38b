package customer

import (
	"context"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/id"
	"opsdesk/internal/core/tx"
	"opsdesk/internal/domain"
	"opsdesk/pkg/logger"
)

// Service provides business logic for the Customer catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Customer service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create validates and persists a new customer. Email must be unique.
func (s *Service) Create(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByEmail(ctx, c.Email, id.Nil)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("customer", "email", c.Email)
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "customer created", "id", c.ID, "name", c.Name)
	return nil
}

// Update validates and persists customer changes.
func (s *Service) Update(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByEmail(ctx, c.Email, c.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("customer", "email", c.Email)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, c)
	})
}

// GetByID retrieves a customer.
func (s *Service) GetByID(ctx context.Context, customerID id.ID) (*Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}

// Delete soft-deletes a customer.
func (s *Service) Delete(ctx context.Context, customerID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, customerID)
	})
}

// List retrieves customers with filter.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Customer], error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListFilter().Limit
	}
	return s.repo.List(ctx, filter)
}
