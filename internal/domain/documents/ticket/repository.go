// Package ticket provides the Ticket document repository.
package ticket

import (
	"context"

	"opsdesk/internal/core/id"
	"opsdesk/internal/domain"
)

// Repository defines operations for ticket documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Ticket) error
	GetByID(ctx context.Context, docID id.ID) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	Update(ctx context.Context, doc *Ticket) error
	Delete(ctx context.Context, docID id.ID) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Ticket], error)
}

// ListFilter for filtering tickets.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	CustomerID *id.ID
	Status     *Status
	Priority   *Priority
}
