// Package order provides the Order document.
package order

import (
	"context"
	"time"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/entity"
	"opsdesk/internal/core/id"
	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/billing"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether the status is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Kind distinguishes product orders from service orders.
type Kind string

const (
	KindProduct Kind = "product"
	KindService Kind = "service"
)

// Valid reports whether the kind is known.
func (k Kind) Valid() bool {
	return k == KindProduct || k == KindService
}

// ShippingAddress is a free-form delivery address (JSONB column).
type ShippingAddress map[string]any

// Order represents a customer order for products or services.
type Order struct {
	entity.Document

	// Customer reference
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// Kind of order: product or service
	Kind Kind `db:"kind" json:"type"`

	// Table part: priced items (JSONB column)
	Items billing.Items `db:"items" json:"items"`

	// Totals (derived by billing.ComputeTotals, see Service)
	Subtotal types.Money `db:"subtotal" json:"subtotal"`
	Tax      types.Money `db:"tax" json:"tax"`
	Discount types.Money `db:"discount" json:"discount"`
	Total    types.Money `db:"total" json:"total"`

	Status Status `db:"status" json:"status"`

	OrderDate    time.Time `db:"order_date" json:"orderDate"`
	DeliveryDate time.Time `db:"delivery_date" json:"deliveryDate"`

	ShippingAddress ShippingAddress `db:"shipping_address" json:"shippingAddress,omitempty"`
}

// NewOrder creates a new pending order for a customer.
func NewOrder(customerID id.ID, kind Kind) *Order {
	return &Order{
		Document:   entity.NewDocument(),
		CustomerID: customerID,
		Kind:       kind,
		Status:     StatusPending,
		OrderDate:  time.Now().UTC(),
		Subtotal:   types.Zero(),
		Tax:        types.Zero(),
		Discount:   types.Zero(),
		Total:      types.Zero(),
	}
}

// ApplyTotals stamps computed totals and items onto the order.
func (o *Order) ApplyTotals(totals billing.Totals, items []billing.LineItem) {
	o.Items = items
	o.Subtotal = totals.Subtotal
	o.Tax = totals.Tax
	o.Discount = totals.Discount
	o.Total = totals.Total
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if id.IsNil(o.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	if !o.Kind.Valid() {
		return apperror.NewValidation("type must be product or service").
			WithDetail("field", "type").
			WithDetail("value", string(o.Kind))
	}

	if o.DeliveryDate.IsZero() {
		return apperror.NewValidation("delivery date is required").
			WithDetail("field", "deliveryDate")
	}

	if !o.Status.Valid() {
		return apperror.NewValidation("unknown order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}

	if len(o.Items) == 0 {
		return apperror.NewInvalidItems("at least one item is required").
			WithDetail("field", "items")
	}

	return nil
}

// Ensure interface compliance at compile time.
var _ entity.Validatable = (*Order)(nil)
