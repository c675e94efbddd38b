package entity

// Document is the base type for numbered business records.
// Examples: Invoice, Order, Ticket.
type Document struct {
	BaseDocument

	// Number is the human-readable document number (auto-generated,
	// unique within document category). Assigned exactly once at
	// creation time and never reassigned.
	Number string `db:"number" json:"number"`

	// Notes is an optional free-form comment
	Notes string `db:"notes" json:"notes,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
	}
}

// HasNumber reports whether a number has been allocated for the document.
func (d *Document) HasNumber() bool {
	return d.Number != ""
}
