package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSQLBidRepository_ResolveAuctionItem(t *testing.T) {
	repos := newFixtureRepos(t)
	ctx := context.Background()

	seller, product, auction := seedAuction(t, ctx, repos)

	item, err := repos.bids.ResolveAuctionItem(ctx, auction.ID)
	require.NoError(t, err)
	require.Equal(t, &domain.AuctionItem{AuctionID: auction.ID, ProductID: product.ID, SellerID: seller.ID}, item)
}

func TestSQLBidRepository_ResolveMissingAuction(t *testing.T) {
	repos := newFixtureRepos(t)

	item, err := repos.bids.ResolveAuctionItem(context.Background(), 12345)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, item)
}

func TestSQLBidRepository_ResolveAuctionWithoutProduct(t *testing.T) {
	repos := newFixtureRepos(t)
	ctx := context.Background()

	auction := &domain.Auction{StartDate: date(2024, 1, 1), CloseDate: date(2024, 1, 8), ProductID: 77}
	require.NoError(t, repos.auctions.CreateAuction(ctx, auction))

	_, err := repos.bids.ResolveAuctionItem(ctx, auction.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLBidRepository_CreateAndListBids(t *testing.T) {
	repos := newFixtureRepos(t)
	ctx := context.Background()

	seller, product, auction := seedAuction(t, ctx, repos)

	prices := []float64{300, 0, -15.25}
	for _, price := range prices {
		bid := &domain.Bid{
			ProductID: product.ID,
			Price:     price,
			Time:      "14:30:05",
			Date:      date(2024, time.March, 2),
			BidderID:  seller.ID,
			SellerID:  seller.ID,
			AuctionID: auction.ID,
		}
		require.NoError(t, repos.bids.CreateBid(ctx, bid))
		require.NotZero(t, bid.ID)
	}

	bids, err := repos.bids.ListBids(ctx, auction.ID)
	require.NoError(t, err)
	require.Len(t, bids, len(prices))
	for i, bid := range bids {
		require.Equal(t, prices[i], bid.Price)
		require.Equal(t, product.ID, bid.ProductID)
		require.Equal(t, seller.ID, bid.SellerID)
		require.Equal(t, "14:30:05", bid.Time)
		require.Equal(t, "2024-03-02", bid.Date.Format(domain.DateLayout))
	}

	other, err := repos.bids.ListBids(ctx, auction.ID+1)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestSQLFeedbackRepository_CreateFeedback(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLFeedbackRepository(db)

	feedback := &domain.Feedback{
		Time:               "09:15:00",
		Date:               time.Date(2024, time.April, 4, 0, 0, 0, 0, time.UTC),
		SatisfactionRating: 5,
		ShippingDelivery:   "on time",
		SellerCooperation:  4,
		OverallRating:      5,
		SellerID:           1,
		BuyerID:            2,
	}
	require.NoError(t, repo.CreateFeedback(context.Background(), feedback))
	require.NotZero(t, feedback.ID)

	var shipping string
	var overall int
	err := db.QueryRow(`SELECT shipping_delivery, overall_rating FROM feedback WHERE feedback_id = ?`, feedback.ID).
		Scan(&shipping, &overall)
	require.NoError(t, err)
	require.Equal(t, "on time", shipping)
	require.Equal(t, 5, overall)
}

func TestRepositories_ClosedDatabase(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = NewSQLCatalogRepository(db).CreateCategory(context.Background(), newCategory("x"))
	require.ErrorIs(t, err, domain.ErrDatabase)

	_, err = NewSQLAuctionRepository(db).ListAuctions(context.Background())
	require.ErrorIs(t, err, domain.ErrDatabase)
}
