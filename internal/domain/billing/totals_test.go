package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdesk/internal/core/apperror"
	"opsdesk/internal/core/types"
)

func items(rows ...LineItem) []LineItem { return rows }

func TestComputeTotals_FromItems(t *testing.T) {
	totals, stamped, err := ComputeTotals(items(
		LineItem{Quantity: 2, UnitPrice: types.NewMoney(10)},
		LineItem{Quantity: 1, UnitPrice: types.NewMoney(5)},
	), Overrides{})
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(types.NewMoney(25)), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.Total.Equal(types.NewMoney(25)), "total = %s", totals.Total)

	require.Len(t, stamped, 2)
	assert.True(t, stamped[0].Total.Equal(types.NewMoney(20)))
	assert.True(t, stamped[1].Total.Equal(types.NewMoney(5)))
}

func TestComputeTotals_OverridePrecedence(t *testing.T) {
	totals, _, err := ComputeTotals(items(
		LineItem{Quantity: 2, UnitPrice: types.NewMoney(10)},
		LineItem{Quantity: 1, UnitPrice: types.NewMoney(5)},
	), Overrides{Subtotal: types.MoneyPtr(types.NewMoney(30))})
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(types.NewMoney(30)))
	assert.True(t, totals.Total.Equal(types.NewMoney(30)))
}

func TestComputeTotals_TaxAndDiscount(t *testing.T) {
	totals, _, err := ComputeTotals(items(
		LineItem{Quantity: 4, UnitPrice: types.NewMoney(25)},
	), Overrides{
		Tax:      types.MoneyPtr(types.NewMoney(20)),
		Discount: types.MoneyPtr(types.NewMoney(15)),
	})
	require.NoError(t, err)

	// 100 + 20 - 15
	assert.True(t, totals.Total.Equal(types.NewMoney(105)), "total = %s", totals.Total)
}

func TestComputeTotals_ExplicitZeroOverrideWins(t *testing.T) {
	// An explicit zero subtotal must not fall through to the computed value.
	totals, _, err := ComputeTotals(items(
		LineItem{Quantity: 3, UnitPrice: types.NewMoney(10)},
	), Overrides{Subtotal: types.MoneyPtr(types.Zero())})
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_DiscountNotClamped(t *testing.T) {
	totals, _, err := ComputeTotals(items(
		LineItem{Quantity: 1, UnitPrice: types.NewMoney(10)},
	), Overrides{Discount: types.MoneyPtr(types.NewMoney(25))})
	require.NoError(t, err)

	assert.True(t, totals.Total.Equal(types.NewMoney(-15)), "total = %s", totals.Total)
}

func TestComputeTotals_InvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
	}{
		{"empty list", nil},
		{"zero quantity", items(LineItem{Quantity: 0, UnitPrice: types.NewMoney(5)})},
		{"negative quantity", items(LineItem{Quantity: -1, UnitPrice: types.NewMoney(5)})},
		{"negative price", items(LineItem{Quantity: 1, UnitPrice: types.NewMoney(-5)})},
		{"bad row after good row", items(
			LineItem{Quantity: 1, UnitPrice: types.NewMoney(5)},
			LineItem{Quantity: 0, UnitPrice: types.NewMoney(5)},
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ComputeTotals(tt.items, Overrides{})
			require.Error(t, err)
			assert.True(t, apperror.IsInvalidItems(err), "expected INVALID_ITEMS, got %v", err)
		})
	}
}

func TestComputeTotals_InputNotMutated(t *testing.T) {
	src := items(LineItem{Quantity: 2, UnitPrice: types.NewMoney(10)})
	_, stamped, err := ComputeTotals(src, Overrides{})
	require.NoError(t, err)

	assert.True(t, src[0].Total.IsZero(), "input slice must not be stamped in place")
	assert.True(t, stamped[0].Total.Equal(types.NewMoney(20)))
}

func TestComputeTotals_UnitPriceZeroAllowed(t *testing.T) {
	totals, _, err := ComputeTotals(items(
		LineItem{Quantity: 5, UnitPrice: types.Zero()},
	), Overrides{})
	require.NoError(t, err)
	assert.True(t, totals.Total.IsZero())
}
