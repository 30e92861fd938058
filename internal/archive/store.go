package archive

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store persists archived invoices. A Store with no database is disabled and
// ignores writes.
type Store struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

func NewStore(db *gorm.DB, log *zap.Logger, genID *snowflake.Node) (*Store, error) {
	if db != nil {
		if err := db.AutoMigrate(&Invoice{}, &InvoiceItem{}); err != nil {
			return nil, err
		}
	}
	return &Store{
		db:    db,
		log:   log.Named("archive.store"),
		genID: genID,
	}, nil
}

// Enabled reports whether archiving is configured.
func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

// Insert archives one generated invoice with its items.
func (s *Store) Insert(ctx context.Context, inv domain.Invoice, totals domain.Totals) error {
	if !s.Enabled() {
		return nil
	}

	row := Invoice{
		ID:          s.genID.Generate(),
		ClientName:  inv.ClientName,
		ClientEmail: inv.ClientEmail,
		Currency:    string(inv.Currency),
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		GrandTotal:  totals.GrandTotal,
		CreatedAt:   inv.CreatedAt.UTC(),
	}
	for i, item := range inv.Items {
		row.Items = append(row.Items, InvoiceItem{
			ID:          s.genID.Generate(),
			InvoiceID:   row.ID,
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total(),
		})
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	s.log.Info("invoice archived",
		zap.String("invoice_id", row.ID.String()),
		zap.Int("items", len(row.Items)),
	)
	return nil
}

// List returns archived invoices with items, oldest first.
func (s *Store) List(ctx context.Context) ([]Invoice, error) {
	if !s.Enabled() {
		return []Invoice{}, nil
	}

	var rows []Invoice
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// touchTimeout bounds the startup connectivity probe.
const touchTimeout = 5 * time.Second

// Touch verifies the database is usable. Called once at startup.
func (s *Store) Touch(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, touchTimeout)
	defer cancel()

	var n int64
	return s.db.WithContext(ctx).Model(&Invoice{}).Count(&n).Error
}
