package dto

import (
	"time"

	"opsdesk/internal/core/id"
	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/billing"
	"opsdesk/internal/domain/documents/invoice"
)

// CreateInvoiceRequest for creating invoices.
// Subtotal, tax and discount are optional overrides: when present
// (including explicit zero) the stored value wins over the computed one.
type CreateInvoiceRequest struct {
	CustomerID string             `json:"customerId" binding:"required,uuid"`
	Items      []billing.LineItem `json:"items" binding:"required"`

	Subtotal *types.Money `json:"subtotal"`
	Tax      *types.Money `json:"tax"`
	Discount *types.Money `json:"discount"`

	Status   invoice.Status `json:"status"`
	DueDate  time.Time      `json:"dueDate" binding:"required"`
	PaidDate *time.Time     `json:"paidDate"`
	Notes    string         `json:"notes"`
}

// ToEntity builds a new Invoice from the request. Totals are stamped later
// by the service.
func (r CreateInvoiceRequest) ToEntity() (*invoice.Invoice, error) {
	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return nil, err
	}

	doc := invoice.NewInvoice(customerID)
	doc.Items = r.Items
	doc.DueDate = r.DueDate
	doc.Notes = r.Notes
	if r.Status != "" {
		doc.Status = r.Status
	}
	if r.PaidDate != nil {
		doc.MarkPaid(*r.PaidDate)
	}
	return doc, nil
}

// Overrides extracts the monetary overrides carried by the request.
func (r CreateInvoiceRequest) Overrides() billing.Overrides {
	return billing.Overrides{
		Subtotal: r.Subtotal,
		Tax:      r.Tax,
		Discount: r.Discount,
	}
}

// UpdateInvoiceRequest for updating invoices. Nil fields are left unchanged.
type UpdateInvoiceRequest struct {
	Items *[]billing.LineItem `json:"items"`

	Subtotal *types.Money `json:"subtotal"`
	Tax      *types.Money `json:"tax"`
	Discount *types.Money `json:"discount"`

	Status  *invoice.Status `json:"status"`
	DueDate *time.Time      `json:"dueDate"`
	Notes   *string         `json:"notes"`

	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo copies present fields onto the existing invoice and reports
// whether the item list changed (forcing a totals recomputation).
func (r UpdateInvoiceRequest) ApplyTo(doc *invoice.Invoice) (itemsChanged bool) {
	if r.Items != nil {
		doc.Items = *r.Items
		itemsChanged = true
	}
	if r.Status != nil {
		doc.Status = *r.Status
	}
	if r.DueDate != nil {
		doc.DueDate = *r.DueDate
	}
	if r.Notes != nil {
		doc.Notes = *r.Notes
	}
	doc.SetVersion(r.Version)
	return itemsChanged
}

// Overrides extracts the monetary overrides carried by the request.
func (r UpdateInvoiceRequest) Overrides() billing.Overrides {
	return billing.Overrides{
		Subtotal: r.Subtotal,
		Tax:      r.Tax,
		Discount: r.Discount,
	}
}

// InvoiceListResponse wraps an invoice page with sum stats.
type InvoiceListResponse struct {
	Items      []*invoice.Invoice `json:"items"`
	TotalCount int64              `json:"totalCount"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
	Stats      invoice.ListStats  `json:"stats"`
}
