// Package calc computes invoice totals.
package calc

import (
	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
)

// Totals aggregates an ordered sequence of line items into subtotal, flat-rate
// tax, and grand total.
//
// This function is PURE:
// - No side effects
// - No rounding; display formatting rounds at the edge
// - Fully deterministic
//
// An empty sequence is an error, not a zero invoice: callers must block PDF
// generation when there is nothing to bill.
func Totals(items []domain.LineItem) (domain.Totals, error) {
	if len(items) == 0 {
		return domain.Totals{}, domain.ErrEmptyInvoice
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Total()
	}

	tax := subtotal * domain.TaxRate
	return domain.Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}, nil
}
