// Package ticket provides the support Ticket document.
package ticket

import (
	"context"
	"time"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/entity"
	"opsdesk/internal/core/id"
)

// Status is the ticket lifecycle state.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Valid reports whether the status is a known ticket status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Priority of a ticket.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is known.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Message is one entry of a ticket's conversation thread (JSONB column).
type Message struct {
	Author string    `json:"author"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sentAt"`
}

// Ticket represents a customer support ticket.
// Tickets are numbered like invoices and orders but carry no monetary totals.
type Ticket struct {
	entity.Document

	Subject     string `db:"subject" json:"subject"`
	Description string `db:"description" json:"description"`

	// Customer reference
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	Status   Status   `db:"status" json:"status"`
	Priority Priority `db:"priority" json:"priority"`
	Category string   `db:"category" json:"category"`

	// Conversation thread (JSONB column)
	Messages []Message `db:"messages" json:"messages"`

	// Rating given on resolution, 1..5
	Rating *int `db:"rating" json:"rating,omitempty"`

	Tags []string `db:"tags" json:"tags"`
}

// NewTicket creates a new open ticket for a customer.
func NewTicket(customerID id.ID, subject, description string) *Ticket {
	return &Ticket{
		Document:    entity.NewDocument(),
		CustomerID:  customerID,
		Subject:     subject,
		Description: description,
		Status:      StatusOpen,
		Priority:    PriorityMedium,
		Category:    "general",
	}
}

// AddMessage appends a message to the conversation thread.
func (t *Ticket) AddMessage(author, body string) {
	t.Messages = append(t.Messages, Message{
		Author: author,
		Body:   body,
		SentAt: time.Now().UTC(),
	})
}

// IsOpen reports whether the ticket still needs attention.
func (t *Ticket) IsOpen() bool {
	return t.Status == StatusOpen || t.Status == StatusInProgress
}

// Validate implements entity.Validatable.
func (t *Ticket) Validate(ctx context.Context) error {
	if t.Subject == "" {
		return apperror.NewValidation("subject is required").
			WithDetail("field", "subject")
	}

	if t.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}

	if id.IsNil(t.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	if !t.Status.Valid() {
		return apperror.NewValidation("unknown ticket status").
			WithDetail("field", "status").
			WithDetail("value", string(t.Status))
	}

	if !t.Priority.Valid() {
		return apperror.NewValidation("unknown ticket priority").
			WithDetail("field", "priority").
			WithDetail("value", string(t.Priority))
	}

	if t.Rating != nil && (*t.Rating < 1 || *t.Rating > 5) {
		return apperror.NewValidation("rating must be between 1 and 5").
			WithDetail("field", "rating").
			WithDetail("value", *t.Rating)
	}

	return nil
}

// Ensure interface compliance at compile time.
var _ entity.Validatable = (*Ticket)(nil)
