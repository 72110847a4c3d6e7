package services

import (
	"context"
	"errors"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/utils"
)

type BidService struct {
	repo     domain.BidRepository
	eventPub domain.EventPublisher
	log      logger.Logger
	now      func() time.Time
}

// NewBidService wires the bid writer. eventPub may be nil.
func NewBidService(repo domain.BidRepository, eventPub domain.EventPublisher, log logger.Logger) *BidService {
	return &BidService{
		repo:     repo,
		eventPub: publisherOrNop(eventPub),
		log:      log,
		now:      time.Now,
	}
}

// PlaceBid records a bid on auctionID at price for bidderID. The product
// and seller are taken from the auction. Price is not checked against the
// reserve, the increment or earlier bids, and sellers may bid on their own
// items.
func (s *BidService) PlaceBid(ctx context.Context, auctionID int64, price float64, bidderID int64) (*domain.Bid, error) {
	s.log.Info("Placing bid", "auction_id", auctionID, "bidder_id", bidderID, "amount", price)

	item, err := s.repo.ResolveAuctionItem(ctx, auctionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("Bid rejected, auction or product not found", "auction_id", auctionID)
		} else {
			s.log.Error("Failed to resolve auction", "auction_id", auctionID, "error", err)
		}
		return nil, err
	}

	now := s.now()
	bid := &domain.Bid{
		ProductID: item.ProductID,
		Price:     price,
		Time:      now.Format(domain.TimeOfDayLayout),
		Date:      domain.DateOf(now),
		BidderID:  bidderID,
		SellerID:  item.SellerID,
		AuctionID: auctionID,
	}
	if err := s.repo.CreateBid(ctx, bid); err != nil {
		s.log.Error("Failed to record bid", "auction_id", auctionID, "error", err)
		return nil, err
	}

	s.log.Info("Bid placed", "bid_id", bid.ID, "auction_id", auctionID, "product_id", item.ProductID)

	event := &domain.AuctionEvent{
		ID:        utils.GenerateID("event"),
		Type:      domain.EventBidPlaced,
		AuctionID: auctionID,
		ProductID: item.ProductID,
		UserID:    bidderID,
		SellerID:  item.SellerID,
		Amount:    price,
		Timestamp: now,
	}
	if err := s.eventPub.PublishAuctionEvent(ctx, event); err != nil {
		s.log.Warn("Failed to publish bid event", "bid_id", bid.ID, "error", err)
	}

	return bid, nil
}
