package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"

	"github.com/go-redis/redis/v8"
)

// EventPublisherImpl publishes auction events as JSON on a pub/sub channel.
type EventPublisherImpl struct {
	client  *redis.Client
	channel string
}

func NewEventPublisher(client *redis.Client, channel string) *EventPublisherImpl {
	return &EventPublisherImpl{client: client, channel: channel}
}

func (r *EventPublisherImpl) PublishAuctionEvent(ctx context.Context, event *domain.AuctionEvent) error {
	payload, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	return nil
}

func encodeEvent(event *domain.AuctionEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return string(data), nil
}

// decodeEvent parses a payload produced by PublishAuctionEvent.
func decodeEvent(payload string) (*domain.AuctionEvent, error) {
	var event domain.AuctionEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, fmt.Errorf("invalid event payload: %w", err)
	}
	return &event, nil
}
