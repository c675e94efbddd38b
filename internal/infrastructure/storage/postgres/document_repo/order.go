package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"opsdesk/internal/domain"
	"opsdesk/internal/domain/documents/order"
	"opsdesk/internal/infrastructure/storage/postgres"
)

const ordersTable = "doc_orders"

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*BaseDocumentRepo[order.Order]
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txm *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[order.Order](txm, ordersTable),
	}
}

// List retrieves orders with filtering.
func (r *OrderRepo) List(ctx context.Context, filter order.ListFilter) (domain.ListResult[*order.Order], error) {
	q := r.baseSelect()

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Kind != nil {
		q = q.Where(squirrel.Eq{"kind": *filter.Kind})
	}

	return r.listWith(ctx, q, filter.ListFilter)
}
