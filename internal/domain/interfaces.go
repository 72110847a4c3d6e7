package domain

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Repository interfaces
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	FindUserByCredentials(ctx context.Context, email, passwordHash string) (*User, error)
}

type AdministratorRepository interface {
	CreateAdministrator(ctx context.Context, admin *Administrator) error
	FindAdministratorByCredentials(ctx context.Context, email, passwordHash string) (*Administrator, error)
}

type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *ProductCategory) error
	CreateProduct(ctx context.Context, product *Product) error
}

type AuctionRepository interface {
	CreateAuction(ctx context.Context, auction *Auction) error
	ListAuctions(ctx context.Context) ([]*AuctionListing, error)
}

type BidRepository interface {
	ResolveAuctionItem(ctx context.Context, auctionID int64) (*AuctionItem, error)
	CreateBid(ctx context.Context, bid *Bid) error
	ListBids(ctx context.Context, auctionID int64) ([]*Bid, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *Feedback) error
}

// Event interfaces
type EventPublisher interface {
	PublishAuctionEvent(ctx context.Context, event *AuctionEvent) error
}
