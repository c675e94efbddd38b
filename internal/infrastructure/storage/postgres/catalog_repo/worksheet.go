package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"opsdesk/internal/domain"
	"opsdesk/internal/domain/worksheets"
	"opsdesk/internal/infrastructure/storage/postgres"
)

const worksheetsTable = "cat_worksheets"

// WorksheetRepo implements worksheets.Repository.
type WorksheetRepo struct {
	*BaseCatalogRepo[worksheets.Worksheet]
}

// NewWorksheetRepo creates a new worksheet repository.
func NewWorksheetRepo(txm *postgres.TxManager) *WorksheetRepo {
	return &WorksheetRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[worksheets.Worksheet](txm, worksheetsTable),
	}
}

// List retrieves worksheets with filtering. Search matches the title.
func (r *WorksheetRepo) List(ctx context.Context, filter worksheets.ListFilter) (domain.ListResult[*worksheets.Worksheet], error) {
	q := r.baseSelect()

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Priority != nil {
		q = q.Where(squirrel.Eq{"priority": *filter.Priority})
	}

	return r.listWith(ctx, q, filter.ListFilter, "title")
}
