package invoice

import "opsdesk/internal/core/sequence"

const (
	// NumberingCategory selects the numbering series for invoices (INV-YEAR-SEQ).
	NumberingCategory = sequence.CategoryInvoice
)
