package customer

import (
	"context"

	"opsdesk/internal/core/id"
	"opsdesk/internal/domain"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, customerID id.ID) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, customerID id.ID) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Customer], error)

	// ExistsByEmail checks email uniqueness.
	ExistsByEmail(ctx context.Context, email string, excludeID id.ID) (bool, error)
}

// ListFilter for filtering customers.
type ListFilter struct {
	domain.ListFilter

	Status *Status
}
