// Package dashboard provides read-only business metrics over the document set.
package dashboard

import (
	"time"

	"opsdesk/internal/core/types"
)

// Stats is the dashboard statistics projection. Never persisted; recomputed
// on every query.
//
// The four *Change fields compare the current value against a snapshot as of
// the end of the previous calendar month. The previous value filters rows by
// creation time but evaluates present-day status, not status as of that date:
// a worksheet created in January and completed in March stops counting toward
// January's snapshot. This approximation is a documented limitation, not a
// bug to fix silently.
type Stats struct {
	TotalCustomers       int64   `json:"totalCustomers"`
	TotalCustomersChange float64 `json:"totalCustomersChange"`

	ActiveWorksheets       int64   `json:"activeWorksheets"`
	ActiveWorksheetsChange float64 `json:"activeWorksheetsChange"`

	PendingInvoices       int64   `json:"pendingInvoices"`
	PendingInvoicesChange float64 `json:"pendingInvoicesChange"`

	ActiveOrders       int64   `json:"activeOrders"`
	ActiveOrdersChange float64 `json:"activeOrdersChange"`

	// TotalRevenue sums invoice totals over all non-cancelled invoices.
	TotalRevenue types.Money `json:"totalRevenue"`

	// PaidInvoices sums invoice totals over paid invoices.
	PaidInvoices types.Money `json:"paidInvoices"`

	CompletedOrders int64 `json:"completedOrders"`
	OpenTickets     int64 `json:"openTickets"`
}

// ActivityKind identifies the source stream of an activity entry.
type ActivityKind string

const (
	ActivityInvoice  ActivityKind = "invoice"
	ActivityOrder    ActivityKind = "order"
	ActivityCustomer ActivityKind = "customer"
	ActivityTicket   ActivityKind = "ticket"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type    ActivityKind `json:"type"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}
