package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"record-merger/core/database"
)

// ErrNoDatabase is returned when the service was started without a database.
var ErrNoDatabase = errors.New("database not connected")

// batchSize bounds the rows per INSERT statement.
const batchSize = 200

// Repository reads and writes the products table.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db. A nil db yields ErrNoDatabase
// from every method.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// VerifySchema fails when the products table lacks any column of Product.
func (r *Repository) VerifySchema(ctx context.Context) error {
	if r.db == nil {
		return ErrNoDatabase
	}
	missing, err := database.MissingColumns(r.db.WithContext(ctx), Product{}.TableName(), Columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v", Product{}.TableName(), missing)
	}
	return nil
}

// List returns every stored product ordered by SKU.
func (r *Repository) List(ctx context.Context) ([]*Product, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}
	var products []*Product
	if err := r.db.WithContext(ctx).Order("sku").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// SaveAll upserts products by ID in a single transaction.
func (r *Repository) SaveAll(ctx context.Context, products []*Product) error {
	if r.db == nil {
		return ErrNoDatabase
	}
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
			CreateInBatches(products, batchSize).Error
		if err != nil {
			return fmt.Errorf("failed to save products: %w", err)
		}
		return nil
	})
}

// Create inserts new products, assigning IDs to those without one.
func (r *Repository) Create(ctx context.Context, products []*Product) error {
	if r.db == nil {
		return ErrNoDatabase
	}
	if len(products) == 0 {
		return nil
	}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
	}
	if err := r.db.WithContext(ctx).CreateInBatches(products, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}
	return nil
}

// DeleteByIDs removes the given products and returns the number of rows deleted.
func (r *Repository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if r.db == nil {
		return 0, ErrNoDatabase
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Product{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete products: %w", res.Error)
	}
	return res.RowsAffected, nil
}
