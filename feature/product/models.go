package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is one catalog entry, both as stored in the products table and as
// delivered by the supplier feed.
type Product struct {
	ID          uuid.UUID     `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	SKU         string        `gorm:"column:sku;size:64" json:"sku"`
	Name        string        `gorm:"column:name;size:255" json:"name"`
	Description *string       `gorm:"column:description;type:text" json:"description,omitempty"`
	PriceCents  int64         `gorm:"column:price_cents" json:"price_cents"`
	Stock       int           `gorm:"column:stock" json:"stock"`
	Active      bool          `gorm:"column:active" json:"active"`
	LeadTime    time.Duration `gorm:"column:lead_time" json:"lead_time"`
	UpdatedAt   time.Time     `gorm:"column:updated_at" json:"updated_at"`

	// Tags are feed-only metadata and never stored or compared.
	Tags []string `gorm:"-" json:"tags,omitempty"`
}

// TableName overrides the table name used by Product to `products`.
func (Product) TableName() string {
	return "products"
}

// Columns lists the columns the repository reads and writes.
var Columns = []string{
	"id", "sku", "name", "description", "price_cents",
	"stock", "active", "lead_time", "updated_at",
}

// Label returns a short human readable identifier for logs and reports.
func (p *Product) Label() string {
	if p.SKU != "" {
		return p.SKU
	}
	if p.ID != uuid.Nil {
		return p.ID.String()
	}
	return p.Name
}
