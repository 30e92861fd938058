package domain

import (
	"context"
	"errors"
)

// LineItemInput is one raw form row.
type LineItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// InvoiceRequest carries the raw form values for one invoice.
type InvoiceRequest struct {
	ClientName  string          `json:"client_name"`
	ClientEmail string          `json:"client_email"`
	Currency    string          `json:"currency"`
	Items       []LineItemInput `json:"items"`
}

// GenerateResponse is the result of a successful invoice generation.
type GenerateResponse struct {
	Invoice  Invoice
	Totals   Totals
	PDF      []byte
	Filename string
}

type Service interface {
	// Preview validates the request and computes totals without side effects.
	Preview(ctx context.Context, req InvoiceRequest) (Totals, error)
	// Generate renders the PDF and appends one history record.
	Generate(ctx context.Context, req InvoiceRequest) (GenerateResponse, error)
	// History returns every history record in file order.
	History(ctx context.Context) ([]HistoryRecord, error)
}

var (
	ErrEmptyInvoice      = errors.New("empty_invoice")
	ErrTooManyItems      = errors.New("too_many_items")
	ErrInvalidCurrency   = errors.New("invalid_currency")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInvalidUnitPrice  = errors.New("invalid_unit_price")
	ErrGlyphUnsupported  = errors.New("glyph_unsupported")
	ErrRendererNotReady  = errors.New("renderer_not_configured")
	ErrHistoryUnwritable = errors.New("history_unwritable")
)
