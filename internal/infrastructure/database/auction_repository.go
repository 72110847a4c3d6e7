package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
)

type SQLAuctionRepository struct {
	db *sql.DB
}

func NewSQLAuctionRepository(db *sql.DB) *SQLAuctionRepository {
	return &SQLAuctionRepository{db: db}
}

func (r *SQLAuctionRepository) CreateAuction(ctx context.Context, auction *domain.Auction) error {
	query := `
        INSERT INTO auction (start_date, close_date, reserve_price, item_id)
        VALUES (?, ?, ?, ?)
    `
	res, err := r.db.ExecContext(ctx, query,
		auction.StartDate.Format(domain.DateLayout),
		auction.CloseDate.Format(domain.DateLayout),
		auction.ReservePrice, auction.ProductID)
	if err != nil {
		return fmt.Errorf("insert auction for product %d: %w", auction.ProductID, classify(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert auction for product %d: %w", auction.ProductID, classify(err))
	}
	auction.ID = id
	return nil
}

// ListAuctions returns every auction whose product exists, in whatever
// order the engine yields them.
func (r *SQLAuctionRepository) ListAuctions(ctx context.Context) ([]*domain.AuctionListing, error) {
	query := `
        SELECT auction.auction_id, product.name, auction.reserve_price,
               auction.start_date, auction.close_date
        FROM auction
        INNER JOIN product ON auction.item_id = product.product_id
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", classify(err))
	}
	defer rows.Close()

	auctions := []*domain.AuctionListing{}
	for rows.Next() {
		var listing domain.AuctionListing
		var reserve sql.NullFloat64
		err := rows.Scan(&listing.AuctionID, &listing.ProductName, &reserve,
			&listing.StartDate, &listing.CloseDate)
		if err != nil {
			return nil, fmt.Errorf("list auctions: %w", classify(err))
		}
		// SQLite stores NaN as NULL; such rows list with a zero reserve.
		listing.ReservePrice = reserve.Float64
		auctions = append(auctions, &listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list auctions: %w", classify(err))
	}

	return auctions, nil
}
