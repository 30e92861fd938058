package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gosimple/slug"
	"github.com/smallbiznis/quickinvoice/internal/archive"
	"github.com/smallbiznis/quickinvoice/internal/history"
	"github.com/smallbiznis/quickinvoice/internal/invoice/calc"
	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	"github.com/smallbiznis/quickinvoice/internal/obs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Renderer turns a computed invoice into PDF bytes.
type Renderer interface {
	Render(inv domain.Invoice, totals domain.Totals) ([]byte, error)
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Renderer Renderer
	History  *history.Store
	Archive  *archive.Store `optional:"true"`
	Metrics  *obs.Metrics   `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	renderer Renderer
	history  *history.Store
	archive  *archive.Store
	metrics  *obs.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		renderer: p.Renderer,
		history:  p.History,
		archive:  p.Archive,
		metrics:  p.Metrics,
	}
}

// Preview validates the form values and computes totals. No side effects.
func (s *Service) Preview(ctx context.Context, req domain.InvoiceRequest) (domain.Totals, error) {
	inv, err := buildInvoice(req, time.Now().UTC())
	if err != nil {
		return domain.Totals{}, err
	}
	return calc.Totals(inv.Items)
}

// Generate computes totals, renders the PDF, and persists one history record
// (plus the archive snapshot when enabled). The record is appended only after
// the PDF rendered successfully.
func (s *Service) Generate(ctx context.Context, req domain.InvoiceRequest) (domain.GenerateResponse, error) {
	inv, err := buildInvoice(req, time.Now().UTC())
	if err != nil {
		s.countFailure("validation")
		return domain.GenerateResponse{}, err
	}

	totals, err := calc.Totals(inv.Items)
	if err != nil {
		s.countFailure("validation")
		return domain.GenerateResponse{}, err
	}

	if s.renderer == nil {
		s.countFailure("render")
		return domain.GenerateResponse{}, domain.ErrRendererNotReady
	}

	pdf, err := s.renderer.Render(inv, totals)
	if err != nil {
		s.countFailure("render")
		s.log.Error("invoice render failed", zap.Error(err))
		return domain.GenerateResponse{}, err
	}

	rec := domain.HistoryRecord{
		ClientName:  inv.ClientName,
		ClientEmail: inv.ClientEmail,
		Date:        inv.CreatedAt,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		GrandTotal:  totals.GrandTotal,
	}
	if err := s.history.Append(rec); err != nil {
		// The invoice itself is computed and rendered; only persistence
		// failed. Surface it so the caller can retry.
		s.countFailure("history")
		s.log.Error("history append failed", zap.Error(err))
		return domain.GenerateResponse{}, errors.Join(domain.ErrHistoryUnwritable, err)
	}

	if s.archive.Enabled() {
		if err := s.archive.Insert(ctx, inv, totals); err != nil {
			// Archive rows are supplemental; the history log already has
			// the record, so a failed insert only logs.
			s.countFailure("archive")
			s.log.Warn("archive insert failed", zap.Error(err))
		}
	}

	if s.metrics != nil {
		s.metrics.InvoicesGenerated.WithLabelValues(string(inv.Currency)).Inc()
		s.metrics.HistoryAppends.Inc()
		s.metrics.PDFBytes.Add(float64(len(pdf)))
	}

	s.log.Info("invoice generated",
		zap.String("client", inv.ClientName),
		zap.String("currency", string(inv.Currency)),
		zap.Float64("grand_total", totals.GrandTotal),
		zap.Int("pdf_bytes", len(pdf)),
	)

	return domain.GenerateResponse{
		Invoice:  inv,
		Totals:   totals,
		PDF:      pdf,
		Filename: pdfFilename(inv.ClientName),
	}, nil
}

// History returns every record in file order.
func (s *Service) History(ctx context.Context) ([]domain.HistoryRecord, error) {
	_ = ctx
	return s.history.LoadAll()
}

func (s *Service) countFailure(kind string) {
	if s.metrics != nil {
		s.metrics.GenerateFailures.WithLabelValues(kind).Inc()
	}
}

func buildInvoice(req domain.InvoiceRequest, now time.Time) (domain.Invoice, error) {
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return domain.Invoice{}, err
	}

	if len(req.Items) == 0 {
		return domain.Invoice{}, domain.ErrEmptyInvoice
	}
	if len(req.Items) > domain.MaxLineItems {
		return domain.Invoice{}, domain.ErrTooManyItems
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		if !validAmount(item.Quantity) {
			return domain.Invoice{}, domain.ErrInvalidQuantity
		}
		if !validAmount(item.UnitPrice) {
			return domain.Invoice{}, domain.ErrInvalidUnitPrice
		}
		items = append(items, domain.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return domain.Invoice{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Items:       items,
		Currency:    currency,
		CreatedAt:   now,
	}, nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func pdfFilename(clientName string) string {
	name := slug.Make(clientName)
	if name == "" {
		return "invoice.pdf"
	}
	return "invoice-" + name + ".pdf"
}
