// Package archive keeps full invoice snapshots in an embedded database. The
// CSV history log stays the external contract; the archive holds the item
// detail the flat file cannot represent.
package archive

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Invoice is one archived invoice.
type Invoice struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	ClientName  string       `gorm:"type:text;not null"`
	ClientEmail string       `gorm:"type:text;not null"`
	Currency    string       `gorm:"type:text;not null"`
	Subtotal    float64      `gorm:"not null"`
	Tax         float64      `gorm:"not null"`
	GrandTotal  float64      `gorm:"not null"`
	CreatedAt   time.Time    `gorm:"not null"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is a line on an archived invoice. Position preserves form row
// order.
type InvoiceItem struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	InvoiceID   snowflake.ID `gorm:"not null;index"`
	Position    int          `gorm:"not null"`
	Description string       `gorm:"type:text"`
	Quantity    float64      `gorm:"not null"`
	UnitPrice   float64      `gorm:"not null"`
	Total       float64      `gorm:"not null"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }
