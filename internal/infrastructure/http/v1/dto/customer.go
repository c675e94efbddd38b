package dto

import (
	"opsdesk/internal/domain/catalogs/customer"
)

// CreateCustomerRequest for creating customers.
type CreateCustomerRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone"`
	Company  string          `json:"company"`
	Location string          `json:"location"`
	Status   customer.Status `json:"status"`
	Notes    string          `json:"notes"`
}

// ToEntity builds a new Customer from the request.
func (r CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.NewCustomer(r.Name, r.Email)
	c.Phone = r.Phone
	c.Company = r.Company
	c.Location = r.Location
	c.Notes = r.Notes
	if r.Status != "" {
		c.Status = r.Status
	}
	return c
}

// UpdateCustomerRequest for updating customers. Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Phone    *string          `json:"phone"`
	Company  *string          `json:"company"`
	Location *string          `json:"location"`
	Status   *customer.Status `json:"status"`
	Notes    *string          `json:"notes"`

	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo copies present fields onto the existing customer.
func (r UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Company != nil {
		c.Company = *r.Company
	}
	if r.Location != nil {
		c.Location = *r.Location
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	c.SetVersion(r.Version)
}
