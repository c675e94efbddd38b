// Package sequence provides domain contracts for document number allocation.
package sequence

import (
	"fmt"
)

// Category identifies a numbering series. Each numbered document kind
// owns an independent per-year counter.
type Category string

const (
	CategoryInvoice Category = "invoice"
	CategoryOrder   Category = "order"
	CategoryTicket  Category = "ticket"
)

// prefixes maps categories to their fixed number prefixes.
var prefixes = map[Category]string{
	CategoryInvoice: "INV",
	CategoryOrder:   "ORD",
	CategoryTicket:  "TKT",
}

// Prefix returns the fixed prefix for the category ("INV", "ORD", "TKT").
func (c Category) Prefix() string {
	return prefixes[c]
}

// Valid reports whether the category is one of the known numbering series.
func (c Category) Valid() bool {
	_, ok := prefixes[c]
	return ok
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a category from its string form.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown document category: %q", s)
	}
	return c, nil
}

// Categories returns all known categories in declaration order.
func Categories() []Category {
	return []Category{CategoryInvoice, CategoryOrder, CategoryTicket}
}
