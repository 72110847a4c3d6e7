package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
)

type SQLBidRepository struct {
	db *sql.DB
}

func NewSQLBidRepository(db *sql.DB) *SQLBidRepository {
	return &SQLBidRepository{db: db}
}

// ResolveAuctionItem finds the product and seller behind an auction. Both
// a missing auction and an auction whose product is gone are ErrNotFound.
func (r *SQLBidRepository) ResolveAuctionItem(ctx context.Context, auctionID int64) (*domain.AuctionItem, error) {
	query := `
        SELECT auction.item_id, product.seller_id
        FROM auction
        INNER JOIN product ON auction.item_id = product.product_id
        WHERE auction.auction_id = ?
    `

	item := domain.AuctionItem{AuctionID: auctionID}
	err := r.db.QueryRowContext(ctx, query, auctionID).Scan(&item.ProductID, &item.SellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("auction %d: %w", auctionID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve auction %d: %w", auctionID, classify(err))
	}
	return &item, nil
}

func (r *SQLBidRepository) CreateBid(ctx context.Context, bid *domain.Bid) error {
	query := `
        INSERT INTO bid (item_id, price, bid_time, bid_date, bidder_id, seller_id, auction_id)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	res, err := r.db.ExecContext(ctx, query,
		bid.ProductID, bid.Price, bid.Time, bid.Date.Format(domain.DateLayout),
		bid.BidderID, bid.SellerID, bid.AuctionID)
	if err != nil {
		return fmt.Errorf("insert bid on auction %d: %w", bid.AuctionID, classify(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert bid on auction %d: %w", bid.AuctionID, classify(err))
	}
	bid.ID = id
	return nil
}

func (r *SQLBidRepository) ListBids(ctx context.Context, auctionID int64) ([]*domain.Bid, error) {
	query := `
        SELECT bid_number, item_id, price, bid_time, bid_date, bidder_id, seller_id, auction_id
        FROM bid WHERE auction_id = ?
        ORDER BY bid_number ASC
    `

	rows, err := r.db.QueryContext(ctx, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list bids for auction %d: %w", auctionID, classify(err))
	}
	defer rows.Close()

	bids := []*domain.Bid{}
	for rows.Next() {
		var bid domain.Bid
		var price sql.NullFloat64
		err := rows.Scan(&bid.ID, &bid.ProductID, &price, &bid.Time, &bid.Date,
			&bid.BidderID, &bid.SellerID, &bid.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("list bids for auction %d: %w", auctionID, classify(err))
		}
		bid.Price = price.Float64
		bids = append(bids, &bid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bids for auction %d: %w", auctionID, classify(err))
	}

	return bids, nil
}
