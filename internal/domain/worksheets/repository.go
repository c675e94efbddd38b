package worksheets

import (
	"context"

	"opsdesk/internal/core/id"
	"opsdesk/internal/domain"
)

// Repository defines the interface for Worksheet persistence.
type Repository interface {
	Create(ctx context.Context, w *Worksheet) error
	GetByID(ctx context.Context, worksheetID id.ID) (*Worksheet, error)
	Update(ctx context.Context, w *Worksheet) error
	Delete(ctx context.Context, worksheetID id.ID) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Worksheet], error)
}

// ListFilter for filtering worksheets.
type ListFilter struct {
	domain.ListFilter

	Status   *Status
	Priority *Priority
}
