package dashboard

import (
	"context"
	"time"

	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/catalogs/customer"
	"opsdesk/internal/domain/documents/invoice"
	"opsdesk/internal/domain/documents/order"
	"opsdesk/internal/domain/documents/ticket"
)

// Repository defines the read queries the aggregator runs over the store.
//
// All Count methods take an optional creation-time upper bound: nil means
// "no time bound" (the current value), a non-nil bound produces the
// previous-period snapshot (created_at <= bound). Status predicates always
// evaluate present-day status values.
//
// All implementations must treat empty result sets as zero, never as an
// error or null.
type Repository interface {
	CountCustomers(ctx context.Context, createdBefore *time.Time) (int64, error)
	CountWorksheets(ctx context.Context, statuses []string, createdBefore *time.Time) (int64, error)
	CountInvoices(ctx context.Context, statuses []string, createdBefore *time.Time) (int64, error)
	CountOrders(ctx context.Context, statuses []string, createdBefore *time.Time) (int64, error)
	CountTickets(ctx context.Context, statuses []string) (int64, error)

	// SumInvoiceTotals sums the total column over invoices whose status is in
	// statuses (when non-empty) and not in excluded.
	SumInvoiceTotals(ctx context.Context, statuses []string, excluded []string) (types.Money, error)

	// Recent* return the newest rows ordered by creation time descending.
	RecentInvoices(ctx context.Context, limit int) ([]*invoice.Invoice, error)
	RecentOrders(ctx context.Context, limit int) ([]*order.Order, error)
	RecentCustomers(ctx context.Context, limit int) ([]*customer.Customer, error)
	RecentTickets(ctx context.Context, limit int) ([]*ticket.Ticket, error)
}
