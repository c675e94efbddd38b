package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdesk/internal/core/entity"
	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/catalogs/customer"
	"opsdesk/internal/domain/documents/invoice"
	"opsdesk/internal/domain/documents/order"
	"opsdesk/internal/domain/documents/ticket"
)

type mockRepo struct {
	customers      map[bool]int64 // keyed by bounded
	worksheets     map[bool]int64
	invoices       map[bool]int64
	orders         map[bool]int64
	completed      int64
	tickets        int64
	totalRevenue   types.Money
	paidRevenue    types.Money
	gotBound       *time.Time
	recentInvoices []*invoice.Invoice
	recentOrders   []*order.Order
	recentCusts    []*customer.Customer
	recentTickets  []*ticket.Ticket
}

func (m *mockRepo) CountCustomers(_ context.Context, createdBefore *time.Time) (int64, error) {
	if createdBefore != nil {
		m.gotBound = createdBefore
	}
	return m.customers[createdBefore != nil], nil
}

func (m *mockRepo) CountWorksheets(_ context.Context, _ []string, createdBefore *time.Time) (int64, error) {
	return m.worksheets[createdBefore != nil], nil
}

func (m *mockRepo) CountInvoices(_ context.Context, _ []string, createdBefore *time.Time) (int64, error) {
	return m.invoices[createdBefore != nil], nil
}

func (m *mockRepo) CountOrders(_ context.Context, statuses []string, createdBefore *time.Time) (int64, error) {
	if len(statuses) == 1 && statuses[0] == string(order.StatusCompleted) {
		return m.completed, nil
	}
	return m.orders[createdBefore != nil], nil
}

func (m *mockRepo) CountTickets(_ context.Context, _ []string) (int64, error) {
	return m.tickets, nil
}

func (m *mockRepo) SumInvoiceTotals(_ context.Context, statuses []string, _ []string) (types.Money, error) {
	if len(statuses) == 1 && statuses[0] == string(invoice.StatusPaid) {
		return m.paidRevenue, nil
	}
	return m.totalRevenue, nil
}

func (m *mockRepo) RecentInvoices(_ context.Context, _ int) ([]*invoice.Invoice, error) {
	return m.recentInvoices, nil
}

func (m *mockRepo) RecentOrders(_ context.Context, _ int) ([]*order.Order, error) {
	return m.recentOrders, nil
}

func (m *mockRepo) RecentCustomers(_ context.Context, _ int) ([]*customer.Customer, error) {
	return m.recentCusts, nil
}

func (m *mockRepo) RecentTickets(_ context.Context, _ int) ([]*ticket.Ticket, error) {
	return m.recentTickets, nil
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"growth from zero", 5, 0, 100},
		{"both zero", 0, 0, 0},
		{"doubled", 8, 4, 100},
		{"halved", 4, 8, -50},
		{"unchanged", 7, 7, 0},
		{"dropped to zero", 0, 4, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestPreviousMonthEnd(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	got := previousMonthEnd(now)

	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 28, got.Day())
	assert.True(t, got.Before(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))

	// January rolls back into the previous year.
	got = previousMonthEnd(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 31, got.Day())
}

func TestStats(t *testing.T) {
	repo := &mockRepo{
		customers:    map[bool]int64{false: 10, true: 5},
		worksheets:   map[bool]int64{false: 4, true: 4},
		invoices:     map[bool]int64{false: 3, true: 0},
		orders:       map[bool]int64{false: 2, true: 8},
		completed:    6,
		tickets:      1,
		totalRevenue: types.MustMoney("1250.50"),
		paidRevenue:  types.MustMoney("900.00"),
	}
	svc := NewService(repo)

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	stats, err := svc.Stats(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalCustomers)
	assert.InDelta(t, 100, stats.TotalCustomersChange, 1e-9)
	assert.Equal(t, int64(4), stats.ActiveWorksheets)
	assert.InDelta(t, 0, stats.ActiveWorksheetsChange, 1e-9)
	assert.Equal(t, int64(3), stats.PendingInvoices)
	assert.InDelta(t, 100, stats.PendingInvoicesChange, 1e-9)
	assert.Equal(t, int64(2), stats.ActiveOrders)
	assert.InDelta(t, -75, stats.ActiveOrdersChange, 1e-9)
	assert.True(t, stats.TotalRevenue.Equal(types.MustMoney("1250.50")))
	assert.True(t, stats.PaidInvoices.Equal(types.MustMoney("900.00")))
	assert.Equal(t, int64(6), stats.CompletedOrders)
	assert.Equal(t, int64(1), stats.OpenTickets)

	// Snapshot bound is the end of the previous month.
	require.NotNil(t, repo.gotBound)
	assert.Equal(t, time.February, repo.gotBound.Month())
	assert.True(t, repo.gotBound.Before(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestStatsZeroState(t *testing.T) {
	repo := &mockRepo{
		customers:  map[bool]int64{},
		worksheets: map[bool]int64{},
		invoices:   map[bool]int64{},
		orders:     map[bool]int64{},
	}
	svc := NewService(repo)

	stats, err := svc.Stats(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalCustomers)
	assert.InDelta(t, 0, stats.TotalCustomersChange, 1e-9)
	assert.InDelta(t, 0, stats.ActiveWorksheetsChange, 1e-9)
	assert.InDelta(t, 0, stats.PendingInvoicesChange, 1e-9)
	assert.InDelta(t, 0, stats.ActiveOrdersChange, 1e-9)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.PaidInvoices.IsZero())
}

func testInvoice(number string, createdAt time.Time) *invoice.Invoice {
	inv := &invoice.Invoice{Document: entity.NewDocument()}
	inv.Number = number
	inv.CreatedAt = createdAt
	return inv
}

func testOrder(number string, status order.Status, createdAt time.Time) *order.Order {
	ord := &order.Order{Document: entity.NewDocument(), Status: status}
	ord.Number = number
	ord.CreatedAt = createdAt
	return ord
}

func testTicket(number string, status ticket.Status, createdAt time.Time) *ticket.Ticket {
	tk := &ticket.Ticket{Document: entity.NewDocument(), Status: status}
	tk.Number = number
	tk.CreatedAt = createdAt
	return tk
}

func testCustomer(createdAt time.Time) *customer.Customer {
	c := &customer.Customer{}
	c.CreatedAt = createdAt
	return c
}

func TestRecentEmpty(t *testing.T) {
	svc := NewService(&mockRepo{})

	got, err := svc.Recent(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecentMergesAndSorts(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	repo := &mockRepo{
		recentInvoices: []*invoice.Invoice{testInvoice("INV-2026-003", at(3))},
		recentOrders: []*order.Order{
			testOrder("ORD-2026-001", order.StatusCompleted, at(5)),
			testOrder("ORD-2026-002", order.StatusPending, at(1)),
		},
		recentCusts:   []*customer.Customer{testCustomer(at(4))},
		recentTickets: []*ticket.Ticket{testTicket("TKT-2026-009", ticket.StatusResolved, at(2))},
	}
	svc := NewService(repo)

	got, err := svc.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "Order ORD-2026-001 completed", got[0].Message)
	assert.Equal(t, ActivityCustomer, got[1].Type)
	assert.Equal(t, "New customer registered", got[1].Message)
	assert.Equal(t, "New invoice INV-2026-003 created", got[2].Message)
	assert.Equal(t, "Support ticket TKT-2026-009 resolved", got[3].Message)
	assert.Equal(t, "Order ORD-2026-002 created", got[4].Message)
}

func TestRecentTieBreakKeepsStreamOrder(t *testing.T) {
	at := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	repo := &mockRepo{
		recentInvoices: []*invoice.Invoice{testInvoice("INV-2026-001", at)},
		recentOrders:   []*order.Order{testOrder("ORD-2026-001", order.StatusPending, at)},
		recentCusts:    []*customer.Customer{testCustomer(at)},
		recentTickets:  []*ticket.Ticket{testTicket("TKT-2026-001", ticket.StatusOpen, at)},
	}
	svc := NewService(repo)

	got, err := svc.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, ActivityInvoice, got[0].Type)
	assert.Equal(t, ActivityOrder, got[1].Type)
	assert.Equal(t, ActivityCustomer, got[2].Type)
	assert.Equal(t, ActivityTicket, got[3].Type)
	assert.Equal(t, "New ticket TKT-2026-001 created", got[3].Message)
}

func TestRecentTruncatesToTen(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	repo := &mockRepo{}
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		repo.recentInvoices = append(repo.recentInvoices, testInvoice("INV-2026-001", ts))
		repo.recentOrders = append(repo.recentOrders, testOrder("ORD-2026-001", order.StatusPending, ts))
		repo.recentCusts = append(repo.recentCusts, testCustomer(ts))
		repo.recentTickets = append(repo.recentTickets, testTicket("TKT-2026-001", ticket.StatusOpen, ts))
	}
	svc := NewService(repo)

	got, err := svc.Recent(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 10)
}
