package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/config"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"

	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         filepath.Join(t.TempDir(), "auction.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		Auction: config.AuctionConfig{DefaultDuration: 7 * 24 * time.Hour},
	}
}

func TestNew_SQLiteWithoutRedis(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, sqliteConfig(t), logger.NewNop())
	require.NoError(t, err)
	defer a.Close()

	require.Nil(t, a.Redis)

	_, err = a.Credentials.Register(ctx, domain.PrincipalUser, domain.Registration{
		FirstName: "Ann",
		Email:     "ann@example.com",
		Password:  "pw",
	})
	require.NoError(t, err)

	seller, err := a.Credentials.Login(ctx, domain.PrincipalUser, "ann@example.com", "pw")
	require.NoError(t, err)

	category, err := a.Catalog.AddCategory(ctx, "Books")
	require.NoError(t, err)
	product, err := a.Catalog.AddProduct(ctx, domain.Product{
		Name:       "Atlas",
		SellerID:   seller.ID,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	auction, err := a.Auctions.AddAuctionFor(ctx, 7*24*time.Hour, 50, product.ID)
	require.NoError(t, err)

	_, err = a.Bids.PlaceBid(ctx, auction.ID, 60, seller.ID)
	require.NoError(t, err)

	listings, err := a.Reports.ListAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "Atlas", listings[0].ProductName)

	bids, err := a.Reports.ListBids(ctx, auction.ID)
	require.NoError(t, err)
	require.Len(t, bids, 1)
}

func TestNew_SchemaSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)

	first, err := New(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	_, err = first.Catalog.AddCategory(ctx, "Art")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	defer second.Close()

	var n int
	require.NoError(t, second.DB.QueryRow("SELECT COUNT(*) FROM product_category").Scan(&n))
	require.Equal(t, 1, n)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Database.Driver = "oracle"

	_, err := New(context.Background(), cfg, logger.NewNop())
	require.Error(t, err)
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Redis = config.RedisConfig{Enabled: true, Address: "127.0.0.1:1", Channel: "auction_events"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, cfg, logger.NewNop())
	require.Error(t, err)
}
