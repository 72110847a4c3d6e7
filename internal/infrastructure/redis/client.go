package redis

import (
	"context"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/config"

	"github.com/go-redis/redis/v8"
)

// Connect builds a client from cfg and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Address, err)
	}
	return rdb, nil
}
