package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
)

type SQLCatalogRepository struct {
	db *sql.DB
}

func NewSQLCatalogRepository(db *sql.DB) *SQLCatalogRepository {
	return &SQLCatalogRepository{db: db}
}

func (r *SQLCatalogRepository) CreateCategory(ctx context.Context, category *domain.ProductCategory) error {
	query := `INSERT INTO product_category (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, query, category.Name)
	if err != nil {
		return fmt.Errorf("insert category %q: %w", category.Name, classify(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert category %q: %w", category.Name, classify(err))
	}
	category.ID = id
	return nil
}

// CreateProduct does not check that the seller or category exist; that is
// left to the engine's foreign keys, if it enforces them.
func (r *SQLCatalogRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `
        INSERT INTO product (name, description, start_bid_amount, min_bid_increment, seller_id, category_id)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.StartBidAmount,
		product.MinBidIncrement, product.SellerID, product.CategoryID)
	if err != nil {
		return fmt.Errorf("insert product %q: %w", product.Name, classify(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert product %q: %w", product.Name, classify(err))
	}
	product.ID = id
	return nil
}
