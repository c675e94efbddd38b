package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"opsdesk/internal/domain/documents/invoice"
	"opsdesk/internal/domain/documents/order"
	"opsdesk/internal/domain/documents/ticket"
	"opsdesk/internal/domain/worksheets"
)

const (
	// recentPerStream is how many rows each source stream contributes.
	recentPerStream = 5
	// recentLimit caps the merged activity feed.
	recentLimit = 10
)

// Tracked status sets. Present-day status values, see Stats doc.
var (
	activeWorksheetStatuses = []string{
		string(worksheets.StatusPending),
		string(worksheets.StatusInProgress),
	}
	pendingInvoiceStatuses = []string{string(invoice.StatusPending)}
	activeOrderStatuses    = []string{
		string(order.StatusPending),
		string(order.StatusProcessing),
		string(order.StatusShipped),
	}
	openTicketStatuses = []string{
		string(ticket.StatusOpen),
		string(ticket.StatusInProgress),
	}
)

// Service computes dashboard statistics and the recent-activity feed.
// Read-only; concurrent calls never block each other.
type Service struct {
	repo Repository
}

// NewService creates a new dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PercentChange returns the period-over-period delta in percent.
// A zero baseline yields 100 when the current value is positive, else 0.
func PercentChange(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// previousMonthEnd returns the last instant of the month preceding now's
// month (23:59:59.999...), in now's location.
func previousMonthEnd(now time.Time) time.Time {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.Add(-time.Nanosecond)
}

// Stats computes the dashboard statistics as of now.
func (s *Service) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	prevEnd := previousMonthEnd(now)

	customersCur, err := s.repo.CountCustomers(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	customersPrev, err := s.repo.CountCustomers(ctx, &prevEnd)
	if err != nil {
		return nil, fmt.Errorf("count customers snapshot: %w", err)
	}

	worksheetsCur, err := s.repo.CountWorksheets(ctx, activeWorksheetStatuses, nil)
	if err != nil {
		return nil, fmt.Errorf("count worksheets: %w", err)
	}
	worksheetsPrev, err := s.repo.CountWorksheets(ctx, activeWorksheetStatuses, &prevEnd)
	if err != nil {
		return nil, fmt.Errorf("count worksheets snapshot: %w", err)
	}

	invoicesCur, err := s.repo.CountInvoices(ctx, pendingInvoiceStatuses, nil)
	if err != nil {
		return nil, fmt.Errorf("count invoices: %w", err)
	}
	invoicesPrev, err := s.repo.CountInvoices(ctx, pendingInvoiceStatuses, &prevEnd)
	if err != nil {
		return nil, fmt.Errorf("count invoices snapshot: %w", err)
	}

	ordersCur, err := s.repo.CountOrders(ctx, activeOrderStatuses, nil)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	ordersPrev, err := s.repo.CountOrders(ctx, activeOrderStatuses, &prevEnd)
	if err != nil {
		return nil, fmt.Errorf("count orders snapshot: %w", err)
	}

	totalRevenue, err := s.repo.SumInvoiceTotals(ctx, nil, []string{string(invoice.StatusCancelled)})
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	paidRevenue, err := s.repo.SumInvoiceTotals(ctx, []string{string(invoice.StatusPaid)}, nil)
	if err != nil {
		return nil, fmt.Errorf("sum paid revenue: %w", err)
	}

	completedOrders, err := s.repo.CountOrders(ctx, []string{string(order.StatusCompleted)}, nil)
	if err != nil {
		return nil, fmt.Errorf("count completed orders: %w", err)
	}
	openTickets, err := s.repo.CountTickets(ctx, openTicketStatuses)
	if err != nil {
		return nil, fmt.Errorf("count open tickets: %w", err)
	}

	return &Stats{
		TotalCustomers:         customersCur,
		TotalCustomersChange:   PercentChange(customersCur, customersPrev),
		ActiveWorksheets:       worksheetsCur,
		ActiveWorksheetsChange: PercentChange(worksheetsCur, worksheetsPrev),
		PendingInvoices:        invoicesCur,
		PendingInvoicesChange:  PercentChange(invoicesCur, invoicesPrev),
		ActiveOrders:           ordersCur,
		ActiveOrdersChange:     PercentChange(ordersCur, ordersPrev),
		TotalRevenue:           totalRevenue,
		PaidInvoices:           paidRevenue,
		CompletedOrders:        completedOrders,
		OpenTickets:            openTickets,
	}, nil
}

// Recent merges the five most recent entries of each of the four source
// streams into one feed, newest first, capped at ten entries. Entries with
// equal timestamps keep stream order: invoices, orders, customers, tickets.
func (s *Service) Recent(ctx context.Context) ([]Activity, error) {
	recentInvoices, err := s.repo.RecentInvoices(ctx, recentPerStream)
	if err != nil {
		return nil, fmt.Errorf("recent invoices: %w", err)
	}
	recentOrders, err := s.repo.RecentOrders(ctx, recentPerStream)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	recentCustomers, err := s.repo.RecentCustomers(ctx, recentPerStream)
	if err != nil {
		return nil, fmt.Errorf("recent customers: %w", err)
	}
	recentTickets, err := s.repo.RecentTickets(ctx, recentPerStream)
	if err != nil {
		return nil, fmt.Errorf("recent tickets: %w", err)
	}

	activities := make([]Activity, 0, 4*recentPerStream)

	for _, inv := range recentInvoices {
		activities = append(activities, Activity{
			Type:    ActivityInvoice,
			Message: fmt.Sprintf("New invoice %s created", inv.Number),
			Time:    inv.CreatedAt,
		})
	}
	for _, ord := range recentOrders {
		msg := fmt.Sprintf("Order %s created", ord.Number)
		if ord.Status == order.StatusCompleted {
			msg = fmt.Sprintf("Order %s completed", ord.Number)
		}
		activities = append(activities, Activity{
			Type:    ActivityOrder,
			Message: msg,
			Time:    ord.CreatedAt,
		})
	}
	for _, c := range recentCustomers {
		activities = append(activities, Activity{
			Type:    ActivityCustomer,
			Message: "New customer registered",
			Time:    c.CreatedAt,
		})
	}
	for _, t := range recentTickets {
		msg := fmt.Sprintf("New ticket %s created", t.Number)
		if t.Status == ticket.StatusResolved {
			msg = fmt.Sprintf("Support ticket %s resolved", t.Number)
		}
		activities = append(activities, Activity{
			Type:    ActivityTicket,
			Message: msg,
			Time:    t.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time.After(activities[j].Time)
	})

	if len(activities) > recentLimit {
		activities = activities[:recentLimit]
	}
	return activities, nil
}
