package domain

import (
	"fmt"
	"time"
)

type PrincipalKind int

const (
	PrincipalUser PrincipalKind = iota
	PrincipalAdministrator
)

func (k PrincipalKind) String() string {
	switch k {
	case PrincipalUser:
		return "user"
	case PrincipalAdministrator:
		return "administrator"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name so JSON carries "user" or
// "administrator".
func (k PrincipalKind) MarshalText() ([]byte, error) {
	switch k {
	case PrincipalUser, PrincipalAdministrator:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown principal kind %d", int(k))
	}
}

// UnmarshalText accepts "user", "admin" and "administrator". An empty
// value means a user.
func (k *PrincipalKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "user":
		*k = PrincipalUser
	case "admin", "administrator":
		*k = PrincipalAdministrator
	default:
		return fmt.Errorf("unknown principal kind %q", text)
	}
	return nil
}

// Principal is an authenticated user or administrator.
type Principal struct {
	Kind      PrincipalKind `json:"kind"`
	ID        int64         `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
}

// Registration carries the fields collected when a principal signs up.
// Address and phone are ignored for administrators.
type Registration struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	StreetNo   string `json:"street_no"`
	StreetName string `json:"street_name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zipcode    string `json:"zipcode"`
	Country    string `json:"country"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
}

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	StreetNo     string
	StreetName   string
	City         string
	State        string
	Zipcode      string
	Country      string
	Email        string
	Phone        string
	PasswordHash string
}

type Administrator struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	StartBidAmount  float64 `json:"start_bid_amount"`
	MinBidIncrement float64 `json:"min_bid_increment"`
	SellerID        int64   `json:"seller_id"`
	CategoryID      int64   `json:"category_id"`
}

// Auction rows also carry payment date, winner name and payment amount
// columns; nothing writes them.
type Auction struct {
	ID           int64     `json:"id"`
	StartDate    time.Time `json:"start_date"`
	CloseDate    time.Time `json:"close_date"`
	ReservePrice float64   `json:"reserve_price"`
	ProductID    int64     `json:"product_id"`
}

// AuctionItem is what a bid needs to know about the auctioned product.
type AuctionItem struct {
	AuctionID int64
	ProductID int64
	SellerID  int64
}

type Bid struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Price     float64   `json:"price"`
	Time      string    `json:"time"`
	Date      time.Time `json:"date"`
	BidderID  int64     `json:"bidder_id"`
	SellerID  int64     `json:"seller_id"`
	AuctionID int64     `json:"auction_id"`
}

type Feedback struct {
	ID                 int64     `json:"id"`
	Time               string    `json:"time"`
	Date               time.Time `json:"date"`
	SatisfactionRating int       `json:"satisfaction_rating"`
	ShippingDelivery   string    `json:"shipping_delivery"`
	SellerCooperation  int       `json:"seller_cooperation"`
	OverallRating      int       `json:"overall_rating"`
	SellerID           int64     `json:"seller_id"`
	BuyerID            int64     `json:"buyer_id"`
}

// AuctionListing is one row of the auction report.
type AuctionListing struct {
	AuctionID    int64     `json:"auction_id"`
	ProductName  string    `json:"product_name"`
	ReservePrice float64   `json:"reserve_price"`
	StartDate    time.Time `json:"start_date"`
	CloseDate    time.Time `json:"close_date"`
}

type EventType string

const (
	EventAuctionCreated EventType = "auction_created"
	EventBidPlaced      EventType = "bid_placed"
)

type AuctionEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	AuctionID int64     `json:"auction_id"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id,omitempty"`
	SellerID  int64     `json:"seller_id,omitempty"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Time-of-day and date layouts used for bid and feedback rows.
const (
	TimeOfDayLayout = "15:04:05"
	DateLayout      = "2006-01-02"
)

// DateOf returns the calendar date of t as midnight UTC, which is how
// DATE columns read back.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
