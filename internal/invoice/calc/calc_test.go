package calc

import (
	"testing"

	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals_SingleItem(t *testing.T) {
	totals, err := Totals([]domain.LineItem{
		{Description: "Widget", Quantity: 2, UnitPrice: 10.00},
	})
	require.NoError(t, err)

	assert.InDelta(t, 20.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 3.60, totals.Tax, 1e-9)
	assert.InDelta(t, 23.60, totals.GrandTotal, 1e-9)
}

func TestTotals_MultipleItems(t *testing.T) {
	totals, err := Totals([]domain.LineItem{
		{Description: "A", Quantity: 1, UnitPrice: 5},
		{Description: "B", Quantity: 3, UnitPrice: 2.5},
	})
	require.NoError(t, err)

	assert.InDelta(t, 12.50, totals.Subtotal, 1e-9)
	assert.InDelta(t, 2.25, totals.Tax, 1e-9)
	assert.InDelta(t, 14.75, totals.GrandTotal, 1e-9)
}

func TestTotals_Invariant(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 0.5, UnitPrice: 19.99},
		{Quantity: 7, UnitPrice: 0.01},
		{Quantity: 3, UnitPrice: 1234.56},
	}
	totals, err := Totals(items)
	require.NoError(t, err)

	assert.InDelta(t, totals.Subtotal+totals.Tax, totals.GrandTotal, 1e-9)
	assert.InDelta(t, totals.Subtotal*domain.TaxRate, totals.Tax, 1e-9)
	assert.GreaterOrEqual(t, totals.Subtotal, 0.0)
	assert.GreaterOrEqual(t, totals.Tax, 0.0)
	assert.GreaterOrEqual(t, totals.GrandTotal, 0.0)
}

func TestTotals_Empty(t *testing.T) {
	_, err := Totals(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)

	_, err = Totals([]domain.LineItem{})
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)
}

func TestLineItem_Total(t *testing.T) {
	cases := []struct {
		qty, price, want float64
	}{
		{0, 0, 0},
		{1, 9.99, 9.99},
		{2.5, 4, 10},
		{10, 0.1, 1},
	}
	for _, tc := range cases {
		li := domain.LineItem{Quantity: tc.qty, UnitPrice: tc.price}
		assert.InDelta(t, tc.want, li.Total(), 1e-9)
	}
}
