package services

import (
	"context"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"
)

// ReportService answers read-only queries.
type ReportService struct {
	auctions domain.AuctionRepository
	bids     domain.BidRepository
	log      logger.Logger
}

func NewReportService(auctions domain.AuctionRepository, bids domain.BidRepository, log logger.Logger) *ReportService {
	return &ReportService{auctions: auctions, bids: bids, log: log}
}

// ListAuctions never returns a nil slice on success.
func (s *ReportService) ListAuctions(ctx context.Context) ([]*domain.AuctionListing, error) {
	auctions, err := s.auctions.ListAuctions(ctx)
	if err != nil {
		s.log.Error("Failed to list auctions", "error", err)
		return nil, err
	}
	if auctions == nil {
		auctions = []*domain.AuctionListing{}
	}
	return auctions, nil
}

func (s *ReportService) ListBids(ctx context.Context, auctionID int64) ([]*domain.Bid, error) {
	bids, err := s.bids.ListBids(ctx, auctionID)
	if err != nil {
		s.log.Error("Failed to list bids", "auction_id", auctionID, "error", err)
		return nil, err
	}
	if bids == nil {
		bids = []*domain.Bid{}
	}
	return bids, nil
}
