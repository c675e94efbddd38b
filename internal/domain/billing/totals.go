// Package billing computes line-item and document-level monetary totals.
// Pure calculation, no persistence dependency.
package billing

import (
	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/types"
)

// LineItem is a single priced row of a document.
// Immutable once computed: a document's item list is replaced wholesale on
// update, never patched in place. Total is stamped by ComputeTotals and
// stored baked-in, not recomputed on read.
type LineItem struct {
	Description string      `json:"description,omitempty"`
	Quantity    int64       `json:"quantity"`
	UnitPrice   types.Money `json:"price"`
	Total       types.Money `json:"total"`
}

// Items is a document's full item list. Stored as a single JSONB column;
// replaced wholesale on update.
type Items []LineItem

// Totals holds document-level monetary fields.
// Total = Subtotal + Tax - Discount. A discount larger than subtotal+tax
// produces a negative total; the value is stored as computed.
type Totals struct {
	Subtotal types.Money `json:"subtotal"`
	Tax      types.Money `json:"tax"`
	Discount types.Money `json:"discount"`
	Total    types.Money `json:"total"`
}

// ZeroTotals returns all-zero totals.
func ZeroTotals() Totals {
	return Totals{
		Subtotal: types.Zero(),
		Tax:      types.Zero(),
		Discount: types.Zero(),
		Total:    types.Zero(),
	}
}

// Overrides carries caller-supplied totals fields. A nil field means "not
// supplied": the computed (or zero) value is used. An explicitly supplied
// zero wins over the computed value.
type Overrides struct {
	Subtotal *types.Money
	Tax      *types.Money
	Discount *types.Money
}

// ComputeTotals validates items, stamps per-item totals and derives the
// document totals.
//
// Rules:
//   - items must be non-empty, every Quantity > 0, every UnitPrice >= 0;
//     anything else is rejected with an INVALID_ITEMS error, never coerced
//   - subtotal = override when supplied, else the sum of line totals
//   - tax and discount = override when supplied, else zero
//   - total = subtotal + tax - discount
//
// The input slice is not mutated; the returned slice carries the stamped
// line totals. The same contract applies on update: a new item list is fully
// recomputed, an update that does not touch items keeps prior totals.
func ComputeTotals(items []LineItem, ov Overrides) (Totals, []LineItem, error) {
	if len(items) == 0 {
		return Totals{}, nil, apperror.NewInvalidItems("at least one item is required")
	}

	stamped := make([]LineItem, len(items))
	subtotal := types.Zero()

	for i, item := range items {
		if item.Quantity <= 0 {
			return Totals{}, nil, apperror.NewInvalidItems("item quantity must be positive").
				WithDetail("index", i).
				WithDetail("quantity", item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return Totals{}, nil, apperror.NewInvalidItems("item price must not be negative").
				WithDetail("index", i).
				WithDetail("price", item.UnitPrice.String())
		}

		item.Total = item.UnitPrice.Mul(types.NewMoneyFromInt(item.Quantity))
		stamped[i] = item
		subtotal = subtotal.Add(item.Total)
	}

	totals := Totals{
		Subtotal: subtotal,
		Tax:      types.Zero(),
		Discount: types.Zero(),
	}
	if ov.Subtotal != nil {
		totals.Subtotal = *ov.Subtotal
	}
	if ov.Tax != nil {
		totals.Tax = *ov.Tax
	}
	if ov.Discount != nil {
		totals.Discount = *ov.Discount
	}
	totals.Total = totals.Subtotal.Add(totals.Tax).Sub(totals.Discount)

	return totals, stamped, nil
}
