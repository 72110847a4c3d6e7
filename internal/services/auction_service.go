package services

import (
	"context"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/utils"
)

type AuctionService struct {
	repo     domain.AuctionRepository
	eventPub domain.EventPublisher
	log      logger.Logger
	now      func() time.Time
}

// NewAuctionService wires the auction writer. eventPub may be nil.
func NewAuctionService(repo domain.AuctionRepository, eventPub domain.EventPublisher, log logger.Logger) *AuctionService {
	return &AuctionService{
		repo:     repo,
		eventPub: publisherOrNop(eventPub),
		log:      log,
		now:      time.Now,
	}
}

// AddAuction records an auction for productID. Dates are kept as calendar
// dates. Close-before-start, negative reserves and unknown products are
// all accepted.
func (s *AuctionService) AddAuction(ctx context.Context, startDate, closeDate time.Time, reservePrice float64, productID int64) (*domain.Auction, error) {
	auction := &domain.Auction{
		StartDate:    domain.DateOf(startDate),
		CloseDate:    domain.DateOf(closeDate),
		ReservePrice: reservePrice,
		ProductID:    productID,
	}

	if err := s.repo.CreateAuction(ctx, auction); err != nil {
		s.log.Error("Failed to add auction", "product_id", productID, "error", err)
		return nil, err
	}

	s.log.Info("Auction added", "auction_id", auction.ID, "product_id", productID)

	event := &domain.AuctionEvent{
		ID:        utils.GenerateID("event"),
		Type:      domain.EventAuctionCreated,
		AuctionID: auction.ID,
		ProductID: productID,
		Amount:    reservePrice,
		Timestamp: s.now(),
	}
	if err := s.eventPub.PublishAuctionEvent(ctx, event); err != nil {
		s.log.Warn("Failed to publish auction event", "auction_id", auction.ID, "error", err)
	}

	return auction, nil
}

// AddAuctionFor opens an auction today that closes after duration.
func (s *AuctionService) AddAuctionFor(ctx context.Context, duration time.Duration, reservePrice float64, productID int64) (*domain.Auction, error) {
	start := s.now()
	return s.AddAuction(ctx, start, start.Add(duration), reservePrice, productID)
}
