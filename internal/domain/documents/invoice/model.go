// Package invoice provides the Invoice document.
package invoice

import (
	"context"
	"time"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/entity"
	"opsdesk/internal/core/id"
	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/billing"
)

// Status is the invoice lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether the status is a known invoice status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Invoice represents a customer invoice.
// Items are stored as JSONB with per-item totals baked in at computation time.
type Invoice struct {
	entity.Document

	// Customer reference
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// Table part: priced items (JSONB column)
	Items billing.Items `db:"items" json:"items"`

	// Totals (derived by billing.ComputeTotals, see Service)
	Subtotal types.Money `db:"subtotal" json:"subtotal"`
	Tax      types.Money `db:"tax" json:"tax"`
	Discount types.Money `db:"discount" json:"discount"`
	Total    types.Money `db:"total" json:"total"`

	Status Status `db:"status" json:"status"`

	IssueDate time.Time  `db:"issue_date" json:"issueDate"`
	DueDate   time.Time  `db:"due_date" json:"dueDate"`
	PaidDate  *time.Time `db:"paid_date" json:"paidDate,omitempty"`
}

// NewInvoice creates a new pending invoice for a customer.
func NewInvoice(customerID id.ID) *Invoice {
	return &Invoice{
		Document:   entity.NewDocument(),
		CustomerID: customerID,
		Status:     StatusPending,
		IssueDate:  time.Now().UTC(),
		Subtotal:   types.Zero(),
		Tax:        types.Zero(),
		Discount:   types.Zero(),
		Total:      types.Zero(),
	}
}

// ApplyTotals stamps computed totals and items onto the invoice.
func (inv *Invoice) ApplyTotals(totals billing.Totals, items []billing.LineItem) {
	inv.Items = items
	inv.Subtotal = totals.Subtotal
	inv.Tax = totals.Tax
	inv.Discount = totals.Discount
	inv.Total = totals.Total
}

// MarkPaid transitions the invoice to paid, stamping the payment date once.
func (inv *Invoice) MarkPaid(at time.Time) {
	inv.Status = StatusPaid
	if inv.PaidDate == nil {
		inv.PaidDate = &at
	}
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(inv.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	if inv.DueDate.IsZero() {
		return apperror.NewValidation("due date is required").
			WithDetail("field", "dueDate")
	}

	if !inv.Status.Valid() {
		return apperror.NewValidation("unknown invoice status").
			WithDetail("field", "status").
			WithDetail("value", string(inv.Status))
	}

	if len(inv.Items) == 0 {
		return apperror.NewInvalidItems("at least one item is required").
			WithDetail("field", "items")
	}

	return nil
}

// Ensure interface compliance at compile time.
var _ entity.Validatable = (*Invoice)(nil)
