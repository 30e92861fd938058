// Package history persists invoice summaries in an append-only CSV log.
package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	invoiceformat "github.com/smallbiznis/quickinvoice/internal/invoice/format"
	"go.uber.org/zap"
)

// Header is the external column contract of the history file.
var Header = []string{"Client Name", "Client Email", "Date", "Subtotal", "GST", "Grand Total"}

// Store appends invoice summary rows to a flat CSV file and reads them back.
// Existing rows are never rewritten or reordered. The file is assumed to have
// a single writer; a process-local mutex serializes appends.
type Store struct {
	path string
	log  *zap.Logger

	mu sync.Mutex
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{
		path: path,
		log:  log.Named("history.store"),
	}
}

// Append writes one record, creating the file with its header row on first use.
func (s *Store) Append(rec domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write history header: %w", err)
		}
	}

	row := []string{
		rec.ClientName,
		rec.ClientEmail,
		rec.Date.Format(domain.HistoryDateLayout),
		invoiceformat.Amount(rec.Subtotal),
		invoiceformat.Amount(rec.Tax),
		invoiceformat.Amount(rec.GrandTotal),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write history row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush history file: %w", err)
	}

	s.log.Info("history record appended", zap.String("client", rec.ClientName))
	return nil
}

// LoadAll reads every record in file order. A missing file is an empty
// history, not an error.
func (s *Store) LoadAll() ([]domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return []domain.HistoryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	records := make([]domain.HistoryRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("history row %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (domain.HistoryRecord, error) {
	if len(row) != len(Header) {
		return domain.HistoryRecord{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(row))
	}

	date, err := time.Parse(domain.HistoryDateLayout, row[2])
	if err != nil {
		return domain.HistoryRecord{}, err
	}

	subtotal, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return domain.HistoryRecord{}, err
	}
	tax, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return domain.HistoryRecord{}, err
	}
	grandTotal, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return domain.HistoryRecord{}, err
	}

	return domain.HistoryRecord{
		ClientName:  row[0],
		ClientEmail: row[1],
		Date:        date,
		Subtotal:    subtotal,
		Tax:         tax,
		GrandTotal:  grandTotal,
	}, nil
}
