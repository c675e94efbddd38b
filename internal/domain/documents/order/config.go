package order

import "opsdesk/internal/core/sequence"

const (
	// NumberingCategory selects the numbering series for orders (ORD-YEAR-SEQ).
	NumberingCategory = sequence.CategoryOrder
)
