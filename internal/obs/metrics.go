// Package obs exposes application metrics on the default prometheus registry.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

// Metrics counts invoice activity. Served on /metrics by the HTTP server.
type Metrics struct {
	InvoicesGenerated *prometheus.CounterVec
	GenerateFailures  *prometheus.CounterVec
	HistoryAppends    prometheus.Counter
	PDFBytes          prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		InvoicesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "quickinvoice_invoices_generated_total",
			Help: "Invoices successfully rendered, by currency.",
		}, []string{"currency"}),
		GenerateFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "quickinvoice_generate_failures_total",
			Help: "Failed invoice generations, by failure kind.",
		}, []string{"kind"}),
		HistoryAppends: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quickinvoice_history_appends_total",
			Help: "Records appended to the history log.",
		}),
		PDFBytes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quickinvoice_pdf_bytes_total",
			Help: "Total bytes of generated PDF documents.",
		}),
	}
}

var Module = fx.Module("obs",
	fx.Provide(New),
)
