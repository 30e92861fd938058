// Package format holds pure display formatting for invoices.
package format

import (
	"strconv"
	"strings"

	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
)

// DescriptionRuneLimit is the widest description the item table renders.
// Longer descriptions are cut and marked with an ellipsis so the fixed
// column width holds for every row.
const DescriptionRuneLimit = 40

// Money renders a monetary value with the currency symbol and two decimals.
func Money(currency domain.Currency, amount float64) string {
	return currency.Symbol() + strconv.FormatFloat(amount, 'f', 2, 64)
}

// Amount renders a monetary value with two decimals and no symbol. Used for
// the history log columns.
func Amount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// Quantity renders a quantity with the shortest exact representation.
func Quantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Description enforces the fixed-width description policy: at most
// DescriptionRuneLimit runes, with a trailing ellipsis when cut.
func Description(raw string) string {
	value := strings.TrimSpace(raw)
	runes := []rune(value)
	if len(runes) <= DescriptionRuneLimit {
		return value
	}
	return string(runes[:DescriptionRuneLimit-1]) + "…"
}
