// Package domain contains the invoicing data model.
package domain

import (
	"strings"
	"time"
)

// TaxRate is the flat GST rate applied to every invoice subtotal.
const TaxRate = 0.18

// MaxLineItems bounds the number of rows accepted on a single invoice.
const MaxLineItems = 10

// Currency is the enumerated set of supported invoice currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

// ParseCurrency maps a form selector value to a Currency. The selector is
// matched by substring ("USD ($)" and "INR (₹)" are the canonical options).
func ParseCurrency(raw string) (Currency, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(value, string(CurrencyUSD)):
		return CurrencyUSD, nil
	case strings.Contains(value, string(CurrencyINR)):
		return CurrencyINR, nil
	default:
		return "", ErrInvalidCurrency
	}
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	if c == CurrencyINR {
		return "₹"
	}
	return "$"
}

// LineItem is one row of an invoice. Items are immutable once submitted for
// a computation; they carry no identity beyond their position.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Total derives the line total.
func (li LineItem) Total() float64 {
	return li.Quantity * li.UnitPrice
}

// Invoice is a single invoice submission.
type Invoice struct {
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	Items       []LineItem `json:"items"`
	Currency    Currency   `json:"currency"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Totals aggregates an invoice. GrandTotal = Subtotal + Tax always holds;
// Tax = Subtotal * TaxRate.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

// HistoryDateLayout is the external date format of the history log.
const HistoryDateLayout = "2006-01-02 15:04:05"

// HistoryRecord is the flattened snapshot of one invoice appended to the
// history log. Written once, never mutated or deleted.
type HistoryRecord struct {
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	Date        time.Time `json:"date"`
	Subtotal    float64   `json:"subtotal"`
	Tax         float64   `json:"tax"`
	GrandTotal  float64   `json:"grand_total"`
}
