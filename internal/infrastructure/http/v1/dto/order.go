package dto

import (
	"time"

	"opsdesk/internal/core/id"
	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/billing"
	"opsdesk/internal/domain/documents/order"
)

// CreateOrderRequest for creating orders. Monetary override semantics match
// CreateInvoiceRequest.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId" binding:"required,uuid"`
	Kind       order.Kind         `json:"type" binding:"required"`
	Items      []billing.LineItem `json:"items" binding:"required"`

	Subtotal *types.Money `json:"subtotal"`
	Tax      *types.Money `json:"tax"`
	Discount *types.Money `json:"discount"`

	Status          order.Status          `json:"status"`
	DeliveryDate    time.Time             `json:"deliveryDate"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	Notes           string                `json:"notes"`
}

// ToEntity builds a new Order from the request.
func (r CreateOrderRequest) ToEntity() (*order.Order, error) {
	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return nil, err
	}

	doc := order.NewOrder(customerID, r.Kind)
	doc.Items = r.Items
	doc.DeliveryDate = r.DeliveryDate
	doc.ShippingAddress = r.ShippingAddress
	doc.Notes = r.Notes
	if r.Status != "" {
		doc.Status = r.Status
	}
	return doc, nil
}

// Overrides extracts the monetary overrides carried by the request.
func (r CreateOrderRequest) Overrides() billing.Overrides {
	return billing.Overrides{
		Subtotal: r.Subtotal,
		Tax:      r.Tax,
		Discount: r.Discount,
	}
}

// UpdateOrderRequest for updating orders. Nil fields are left unchanged.
type UpdateOrderRequest struct {
	Items *[]billing.LineItem `json:"items"`

	Subtotal *types.Money `json:"subtotal"`
	Tax      *types.Money `json:"tax"`
	Discount *types.Money `json:"discount"`

	Status          *order.Status          `json:"status"`
	Kind            *order.Kind            `json:"type"`
	DeliveryDate    *time.Time             `json:"deliveryDate"`
	ShippingAddress *order.ShippingAddress `json:"shippingAddress"`
	Notes           *string                `json:"notes"`

	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo copies present fields onto the existing order and reports whether
// the item list changed.
func (r UpdateOrderRequest) ApplyTo(doc *order.Order) (itemsChanged bool) {
	if r.Items != nil {
		doc.Items = *r.Items
		itemsChanged = true
	}
	if r.Status != nil {
		doc.Status = *r.Status
	}
	if r.Kind != nil {
		doc.Kind = *r.Kind
	}
	if r.DeliveryDate != nil {
		doc.DeliveryDate = *r.DeliveryDate
	}
	if r.ShippingAddress != nil {
		doc.ShippingAddress = *r.ShippingAddress
	}
	if r.Notes != nil {
		doc.Notes = *r.Notes
	}
	doc.SetVersion(r.Version)
	return itemsChanged
}

// Overrides extracts the monetary overrides carried by the request.
func (r UpdateOrderRequest) Overrides() billing.Overrides {
	return billing.Overrides{
		Subtotal: r.Subtotal,
		Tax:      r.Tax,
		Discount: r.Discount,
	}
}
