// Package render serializes invoices into single-page PDF documents.
package render

import (
	"fmt"
	"unicode"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	appconfig "github.com/smallbiznis/quickinvoice/internal/config"
	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	invoiceformat "github.com/smallbiznis/quickinvoice/internal/invoice/format"
	"go.uber.org/zap"
)

const fontFamily = "dejavu"

// Renderer draws the fixed invoice layout. A UTF-8 font is loaded from disk
// so the rupee symbol renders; without it the built-in core fonts only cover
// ASCII, and rendering a non-ASCII currency is refused instead of producing
// corrupt glyphs.
type Renderer struct {
	log         *zap.Logger
	customFonts []*entity.CustomFont
}

func NewRenderer(cfg appconfig.Config, log *zap.Logger) *Renderer {
	r := &Renderer{log: log.Named("invoice.render")}

	fonts, err := repository.New().
		AddUTF8Font(fontFamily, fontstyle.Normal, cfg.PDFFontPath).
		AddUTF8Font(fontFamily, fontstyle.Bold, cfg.PDFFontPath).
		Load()
	if err != nil {
		r.log.Warn("pdf font unavailable, non-ASCII currencies will be refused",
			zap.String("font_path", cfg.PDFFontPath),
			zap.Error(err),
		)
		return r
	}

	r.customFonts = fonts
	return r
}

// Render produces the PDF bytes for one invoice. It has no side effects;
// download and persistence belong to the caller.
func (r *Renderer) Render(inv domain.Invoice, totals domain.Totals) ([]byte, error) {
	if len(inv.Items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}

	symbol := inv.Currency.Symbol()
	if !isASCII(symbol) && r.customFonts == nil {
		return nil, fmt.Errorf("currency symbol %q: %w", symbol, domain.ErrGlyphUnsupported)
	}

	builder := config.NewBuilder()
	if r.customFonts != nil {
		builder = builder.
			WithCustomFonts(r.customFonts).
			WithDefaultFont(&props.Font{Family: fontFamily})
	}
	m := maroto.New(builder.Build())

	m.AddRow(12,
		text.NewCol(12, "INVOICE", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(8, text.NewCol(12, "Client: "+inv.ClientName, props.Text{Size: 11}))
	m.AddRow(8, text.NewCol(12, "Email: "+inv.ClientEmail, props.Text{Size: 11}))
	m.AddRow(6, col.New(12))

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 10, Left: 1}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1}),
		text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1}),
	).WithStyle(&props.Cell{BorderType: border.Full})

	for _, item := range inv.Items {
		m.AddRow(8,
			text.NewCol(6, invoiceformat.Description(item.Description), props.Text{Size: 10, Left: 1}),
			text.NewCol(2, invoiceformat.Quantity(item.Quantity), props.Text{Size: 10, Align: align.Right, Right: 1}),
			text.NewCol(2, invoiceformat.Money(inv.Currency, item.UnitPrice), props.Text{Size: 10, Align: align.Right, Right: 1}),
			text.NewCol(2, invoiceformat.Money(inv.Currency, item.Total()), props.Text{Size: 10, Align: align.Right, Right: 1}),
		).WithStyle(&props.Cell{BorderType: border.Full})
	}

	m.AddRow(5, col.New(12))

	taxLabel := fmt.Sprintf("GST (%.0f%%)", domain.TaxRate*100)
	summary := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal", totals.Subtotal, false},
		{taxLabel, totals.Tax, false},
		{"Grand Total", totals.GrandTotal, true},
	}
	for _, line := range summary {
		style := fontstyle.Normal
		if line.bold {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(6),
			text.NewCol(3, line.label, props.Text{Size: 10, Style: style}),
			text.NewCol(3, invoiceformat.Money(inv.Currency, line.value), props.Text{Size: 10, Style: style, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
