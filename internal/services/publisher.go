package services

import (
	"context"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
)

// nopPublisher is used when no event transport is configured.
type nopPublisher struct{}

func (nopPublisher) PublishAuctionEvent(context.Context, *domain.AuctionEvent) error {
	return nil
}

func publisherOrNop(p domain.EventPublisher) domain.EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
