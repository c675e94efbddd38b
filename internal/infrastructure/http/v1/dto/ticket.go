package dto

import (
	"opsdesk/internal/core/id"
	"opsdesk/internal/domain/documents/ticket"
)

// CreateTicketRequest for creating support tickets.
type CreateTicketRequest struct {
	CustomerID  string          `json:"customerId" binding:"required,uuid"`
	Subject     string          `json:"subject" binding:"required"`
	Description string          `json:"description"`
	Priority    ticket.Priority `json:"priority"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Notes       string          `json:"notes"`
}

// ToEntity builds a new Ticket from the request.
func (r CreateTicketRequest) ToEntity() (*ticket.Ticket, error) {
	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return nil, err
	}

	doc := ticket.NewTicket(customerID, r.Subject, r.Description)
	if r.Priority != "" {
		doc.Priority = r.Priority
	}
	if r.Category != "" {
		doc.Category = r.Category
	}
	doc.Tags = r.Tags
	doc.Notes = r.Notes
	return doc, nil
}

// UpdateTicketRequest for updating tickets. Nil fields are left unchanged.
type UpdateTicketRequest struct {
	Subject     *string          `json:"subject"`
	Description *string          `json:"description"`
	Status      *ticket.Status   `json:"status"`
	Priority    *ticket.Priority `json:"priority"`
	Category    *string          `json:"category"`
	Rating      *int             `json:"rating"`
	Tags        *[]string        `json:"tags"`
	Notes       *string          `json:"notes"`

	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo copies present fields onto the existing ticket.
func (r UpdateTicketRequest) ApplyTo(doc *ticket.Ticket) {
	if r.Subject != nil {
		doc.Subject = *r.Subject
	}
	if r.Description != nil {
		doc.Description = *r.Description
	}
	if r.Status != nil {
		doc.Status = *r.Status
	}
	if r.Priority != nil {
		doc.Priority = *r.Priority
	}
	if r.Category != nil {
		doc.Category = *r.Category
	}
	if r.Rating != nil {
		doc.Rating = r.Rating
	}
	if r.Tags != nil {
		doc.Tags = *r.Tags
	}
	if r.Notes != nil {
		doc.Notes = *r.Notes
	}
	doc.SetVersion(r.Version)
}

// AddTicketMessageRequest appends one message to the conversation thread.
type AddTicketMessageRequest struct {
	Author string `json:"author" binding:"required"`
	Body   string `json:"body" binding:"required"`
}
