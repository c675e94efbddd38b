package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"opsdesk/internal/domain"
	"opsdesk/internal/domain/documents/ticket"
	"opsdesk/internal/infrastructure/storage/postgres"
)

const ticketsTable = "doc_tickets"

// TicketRepo implements ticket.Repository.
type TicketRepo struct {
	*BaseDocumentRepo[ticket.Ticket]
}

// NewTicketRepo creates a new ticket repository.
func NewTicketRepo(txm *postgres.TxManager) *TicketRepo {
	return &TicketRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[ticket.Ticket](txm, ticketsTable),
	}
}

// List retrieves tickets with filtering.
func (r *TicketRepo) List(ctx context.Context, filter ticket.ListFilter) (domain.ListResult[*ticket.Ticket], error) {
	q := r.baseSelect()

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Priority != nil {
		q = q.Where(squirrel.Eq{"priority": *filter.Priority})
	}

	return r.listWith(ctx, q, filter.ListFilter)
}
