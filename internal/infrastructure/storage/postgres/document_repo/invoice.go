package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"opsdesk/internal/domain"
	"opsdesk/internal/domain/documents/invoice"
	"opsdesk/internal/infrastructure/storage/postgres"
)

const invoicesTable = "doc_invoices"

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	*BaseDocumentRepo[invoice.Invoice]
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[invoice.Invoice](txm, invoicesTable),
	}
}

// List retrieves invoices with filtering.
func (r *InvoiceRepo) List(ctx context.Context, filter invoice.ListFilter) (domain.ListResult[*invoice.Invoice], error) {
	q := r.baseSelect()

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	return r.listWith(ctx, q, filter.ListFilter)
}
