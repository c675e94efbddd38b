package ticket

import "opsdesk/internal/core/sequence"

const (
	// NumberingCategory selects the numbering series for tickets (TKT-YEAR-SEQ).
	NumberingCategory = sequence.CategoryTicket
)
