// Package report_repo provides PostgreSQL implementations for reporting
// repositories. Everything here is read-only.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/catalogs/customer"
	"opsdesk/internal/domain/dashboard"
	"opsdesk/internal/domain/documents/invoice"
	"opsdesk/internal/domain/documents/order"
	"opsdesk/internal/domain/documents/ticket"
	"opsdesk/internal/infrastructure/storage/postgres"
)

// Compile-time check that DashboardRepo implements dashboard.Repository.
var _ dashboard.Repository = (*DashboardRepo)(nil)

// DashboardRepo implements dashboard.Repository with aggregate queries.
type DashboardRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewDashboardRepo creates a new dashboard repository.
func NewDashboardRepo(txm *postgres.TxManager) *DashboardRepo {
	return &DashboardRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// count runs a COUNT(*) over table with the given predicates. Soft-deleted
// rows never count.
func (r *DashboardRepo) count(ctx context.Context, table string, statuses []string, createdBefore *time.Time) (int64, error) {
	q := r.builder.
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"deletion_mark": false})

	if len(statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": statuses})
	}
	if createdBefore != nil {
		q = q.Where(squirrel.LtOrEq{"created_at": *createdBefore})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (r *DashboardRepo) CountCustomers(ctx context.Context, createdBefore *time.Time) (int64, error) {
	return r.count(ctx, "cat_customers", nil, createdBefore)
}

func (r *DashboardRepo) CountWorksheets(ctx context.Context, statuses []string, createdBefore *time.Time) (int64, error) {
	return r.count(ctx, "cat_worksheets", statuses, createdBefore)
}

func (r *DashboardRepo) CountInvoices(ctx context.Context, statuses []string, createdBefore *time.Time) (int64, error) {
	return r.count(ctx, "doc_invoices", statuses, createdBefore)
}

func (r *DashboardRepo) CountOrders(ctx context.Context, statuses []string, createdBefore *time.Time) (int64, error) {
	return r.count(ctx, "doc_orders", statuses, createdBefore)
}

func (r *DashboardRepo) CountTickets(ctx context.Context, statuses []string) (int64, error) {
	return r.count(ctx, "doc_tickets", statuses, nil)
}

// SumInvoiceTotals sums the total column over matching invoices.
// COALESCE keeps the empty set at zero instead of NULL.
func (r *DashboardRepo) SumInvoiceTotals(ctx context.Context, statuses []string, excluded []string) (types.Money, error) {
	q := r.builder.
		Select("COALESCE(SUM(total), 0)").
		From("doc_invoices").
		Where(squirrel.Eq{"deletion_mark": false})

	if len(statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": statuses})
	}
	if len(excluded) > 0 {
		q = q.Where(squirrel.NotEq{"status": excluded})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return types.Zero(), fmt.Errorf("build sum: %w", err)
	}

	var total types.Money
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return types.Zero(), fmt.Errorf("sum invoice totals: %w", err)
	}
	return total, nil
}

// recentSelect builds the newest-first select for an activity stream.
func (r *DashboardRepo) recentSelect(table string, cols []string, limit int) squirrel.SelectBuilder {
	return r.builder.
		Select(cols...).
		From(table).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
}

func (r *DashboardRepo) RecentInvoices(ctx context.Context, limit int) ([]*invoice.Invoice, error) {
	q := r.recentSelect("doc_invoices", postgres.ExtractDBColumns[invoice.Invoice](), limit)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*invoice.Invoice
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("recent invoices: %w", err)
	}
	return items, nil
}

func (r *DashboardRepo) RecentOrders(ctx context.Context, limit int) ([]*order.Order, error) {
	q := r.recentSelect("doc_orders", postgres.ExtractDBColumns[order.Order](), limit)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*order.Order
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return items, nil
}

func (r *DashboardRepo) RecentCustomers(ctx context.Context, limit int) ([]*customer.Customer, error) {
	q := r.recentSelect("cat_customers", postgres.ExtractDBColumns[customer.Customer](), limit)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*customer.Customer
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("recent customers: %w", err)
	}
	return items, nil
}

func (r *DashboardRepo) RecentTickets(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	q := r.recentSelect("doc_tickets", postgres.ExtractDBColumns[ticket.Ticket](), limit)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*ticket.Ticket
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("recent tickets: %w", err)
	}
	return items, nil
}
