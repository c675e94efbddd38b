// Package customer provides the Customer catalog.
// Customers are referenced by invoices, orders and tickets, and are one of
// the tracked quantities on the dashboard.
package customer

import (
	"context"
	"regexp"
	"time"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/entity"
	"opsdesk/internal/core/types"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Status of a customer account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is known.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Customer represents a business customer.
type Customer struct {
	entity.BaseCatalog

	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
	Company  string `db:"company" json:"company"`
	Location string `db:"location" json:"location"`

	Status Status `db:"status" json:"status"`

	// Denormalized lifetime aggregates
	TotalOrders int64       `db:"total_orders" json:"totalOrders"`
	TotalSpent  types.Money `db:"total_spent" json:"totalSpent"`

	JoinDate time.Time `db:"join_date" json:"joinDate"`
	Notes    string    `db:"notes" json:"notes,omitempty"`
}

// NewCustomer creates a new active customer.
func NewCustomer(name, email string) *Customer {
	return &Customer{
		BaseCatalog: entity.NewBaseCatalog(),
		Name:        name,
		Email:       email,
		Status:      StatusActive,
		TotalSpent:  types.Zero(),
		JoinDate:    time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "name")
	}

	if c.Email == "" || !emailRE.MatchString(c.Email) {
		return apperror.NewValidation("a valid email is required").
			WithDetail("field", "email")
	}

	if !c.Status.Valid() {
		return apperror.NewValidation("unknown customer status").
			WithDetail("field", "status").
			WithDetail("value", string(c.Status))
	}

	return nil
}

// Ensure interface compliance at compile time.
var _ entity.Validatable = (*Customer)(nil)
