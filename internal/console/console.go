package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/utils"
)

type CredentialStore interface {
	Register(ctx context.Context, kind domain.PrincipalKind, reg domain.Registration) (*domain.Principal, error)
	Login(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error)
}

type Catalog interface {
	AddCategory(ctx context.Context, name string) (*domain.ProductCategory, error)
	AddProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type AuctionWriter interface {
	AddAuctionFor(ctx context.Context, duration time.Duration, reservePrice float64, productID int64) (*domain.Auction, error)
}

type BidPlacer interface {
	PlaceBid(ctx context.Context, auctionID int64, price float64, bidderID int64) (*domain.Bid, error)
}

type FeedbackWriter interface {
	AddFeedback(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error)
}

type AuctionLister interface {
	ListAuctions(ctx context.Context) ([]*domain.AuctionListing, error)
}

// Services bundles everything the menus dispatch to.
type Services struct {
	Credentials CredentialStore
	Catalog     Catalog
	Auctions    AuctionWriter
	Bids        BidPlacer
	Feedback    FeedbackWriter
	Reports     AuctionLister
}

// errInputClosed ends the session when stdin reaches EOF.
var errInputClosed = errors.New("input closed")

// Console is the interactive text front end. It runs one operation per
// main-menu round and never stops on an operation failure.
type Console struct {
	in              *bufio.Scanner
	out             io.Writer
	svc             Services
	auctionDuration time.Duration
	log             logger.Logger
}

func New(in io.Reader, out io.Writer, svc Services, auctionDuration time.Duration, log logger.Logger) *Console {
	return &Console{
		in:              bufio.NewScanner(in),
		out:             out,
		svc:             svc,
		auctionDuration: auctionDuration,
		log:             log,
	}
}

// Run shows the main menu until the user picks Exit or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.log = c.log.With("session_id", utils.GenerateID("session"))
	c.log.Info("Console session started")

	for {
		c.println("Main Menu:")
		c.println("1. Admin")
		c.println("2. User")
		c.println("3. Exit")

		choice, err := c.prompt("Choose an option: ")
		if err == nil {
			switch choice {
			case "1":
				err = c.adminSession(ctx)
			case "2":
				err = c.userSession(ctx)
			case "3":
				c.println("Exiting...")
				c.log.Info("Console session ended")
				return nil
			default:
				c.println("Invalid option.")
			}
		}

		if errors.Is(err, errInputClosed) {
			c.println("Exiting...")
			c.log.Info("Console session ended", "reason", "eof")
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Console) adminSession(ctx context.Context) error {
	email, err := c.prompt("Enter admin email: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter admin password: ")
	if err != nil {
		return err
	}

	admin, err := c.loginOrRegister(ctx, domain.PrincipalAdministrator, email, password)
	if err != nil || admin == nil {
		return err
	}

	c.println("Admin Menu:")
	c.println("1. Add Product")
	c.println("2. Add Auction")
	c.println("3. Add Product Category")
	c.println("4. View All Auctions")

	choice, err := c.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return c.addProduct(ctx)
	case "2":
		return c.addAuction(ctx)
	case "3":
		return c.addCategory(ctx)
	case "4":
		c.viewAuctions(ctx)
	default:
		c.println("Invalid option.")
	}
	return nil
}

func (c *Console) userSession(ctx context.Context) error {
	email, err := c.prompt("Enter your email: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter your password: ")
	if err != nil {
		return err
	}

	user, err := c.loginOrRegister(ctx, domain.PrincipalUser, email, password)
	if err != nil || user == nil {
		return err
	}

	c.println("User Menu:")
	c.println("1. View All Auctions")
	c.println("2. Place a Bid")
	c.println("3. Leave Feedback")

	choice, err := c.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		c.viewAuctions(ctx)
	case "2":
		return c.placeBid(ctx, user)
	case "3":
		return c.addFeedback(ctx, user)
	default:
		c.println("Invalid option.")
	}
	return nil
}

// loginOrRegister logs the principal in, registering it first when no
// account matches. A nil principal with a nil error means the attempt
// failed and was reported.
func (c *Console) loginOrRegister(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error) {
	principal, err := c.svc.Credentials.Login(ctx, kind, email, password)
	if err == nil {
		return principal, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		c.printf("Error: Could not log in. Details: %v\n", err)
		return nil, nil
	}

	reg := domain.Registration{Email: email, Password: password}
	if kind == domain.PrincipalAdministrator {
		c.println("Admin not found. Please register.")
		if err := c.promptAll(
			field{"Enter your first name: ", &reg.FirstName},
			field{"Enter your last name: ", &reg.LastName},
		); err != nil {
			return nil, err
		}
	} else {
		c.println("User not found. Please register.")
		if err := c.promptAll(
			field{"Enter your first name: ", &reg.FirstName},
			field{"Enter your last name: ", &reg.LastName},
			field{"Enter your street number: ", &reg.StreetNo},
			field{"Enter your street name: ", &reg.StreetName},
			field{"Enter your city: ", &reg.City},
			field{"Enter your state: ", &reg.State},
			field{"Enter your zipcode: ", &reg.Zipcode},
			field{"Enter your country: ", &reg.Country},
			field{"Enter your phone number: ", &reg.Phone},
		); err != nil {
			return nil, err
		}
	}

	if _, err := c.svc.Credentials.Register(ctx, kind, reg); err != nil {
		c.reportFailure("register", err)
		if kind == domain.PrincipalAdministrator {
			c.println("Failed to create admin.")
		}
		return nil, nil
	}
	if kind == domain.PrincipalAdministrator {
		c.println("Admin registered successfully.")
	} else {
		c.println("User registered successfully.")
	}

	principal, err = c.svc.Credentials.Login(ctx, kind, email, password)
	if err != nil {
		c.reportFailure("log in", err)
		return nil, nil
	}
	return principal, nil
}

func (c *Console) addProduct(ctx context.Context) error {
	var product domain.Product
	var err error

	if product.Name, err = c.prompt("Enter product name: "); err != nil {
		return err
	}
	if product.Description, err = c.prompt("Enter product description: "); err != nil {
		return err
	}
	if product.StartBidAmount, err = c.promptFloat("Enter starting bid amount: "); err != nil {
		return c.inputError(err)
	}
	if product.MinBidIncrement, err = c.promptFloat("Enter minimum bid increment: "); err != nil {
		return c.inputError(err)
	}
	if product.SellerID, err = c.promptID("Enter seller user ID: "); err != nil {
		return c.inputError(err)
	}
	if product.CategoryID, err = c.promptID("Enter product category ID: "); err != nil {
		return c.inputError(err)
	}

	created, err := c.svc.Catalog.AddProduct(ctx, product)
	if err != nil {
		c.reportFailure("add product", err)
		return nil
	}
	c.printf("Product added successfully. Product ID: %d\n", created.ID)
	return nil
}

func (c *Console) addAuction(ctx context.Context) error {
	productID, err := c.promptID("Enter the product ID for the auction: ")
	if err != nil {
		return c.inputError(err)
	}
	reserve, err := c.promptFloat("Enter reserve price: ")
	if err != nil {
		return c.inputError(err)
	}

	auction, err := c.svc.Auctions.AddAuctionFor(ctx, c.auctionDuration, reserve, productID)
	if err != nil {
		c.reportFailure("add auction", err)
		return nil
	}
	c.printf("Auction added successfully. Auction ID: %d\n", auction.ID)
	return nil
}

func (c *Console) addCategory(ctx context.Context) error {
	name, err := c.prompt("Enter category name: ")
	if err != nil {
		return err
	}

	category, err := c.svc.Catalog.AddCategory(ctx, name)
	if err != nil {
		c.reportFailure("add product category", err)
		return nil
	}
	c.printf("Product category added successfully. Category ID: %d\n", category.ID)
	return nil
}

func (c *Console) placeBid(ctx context.Context, bidder *domain.Principal) error {
	auctionID, err := c.promptID("Enter auction ID: ")
	if err != nil {
		return c.inputError(err)
	}
	price, err := c.promptFloat("Enter your bid price: ")
	if err != nil {
		return c.inputError(err)
	}

	if _, err := c.svc.Bids.PlaceBid(ctx, auctionID, price, bidder.ID); err != nil {
		c.reportFailure("place bid", err)
		return nil
	}
	c.println("Bid placed successfully.")
	return nil
}

func (c *Console) addFeedback(ctx context.Context, buyer *domain.Principal) error {
	feedback := domain.Feedback{BuyerID: buyer.ID}
	var err error

	if feedback.SellerID, err = c.promptID("Enter seller user ID: "); err != nil {
		return c.inputError(err)
	}
	if feedback.SatisfactionRating, err = c.promptInt("Enter satisfaction rating: "); err != nil {
		return c.inputError(err)
	}
	if feedback.ShippingDelivery, err = c.prompt("Describe shipping and delivery: "); err != nil {
		return err
	}
	if feedback.SellerCooperation, err = c.promptInt("Enter seller cooperation rating: "); err != nil {
		return c.inputError(err)
	}
	if feedback.OverallRating, err = c.promptInt("Enter overall rating: "); err != nil {
		return c.inputError(err)
	}

	if _, err := c.svc.Feedback.AddFeedback(ctx, feedback); err != nil {
		c.reportFailure("add feedback", err)
		return nil
	}
	c.println("Feedback added successfully.")
	return nil
}

func (c *Console) viewAuctions(ctx context.Context) {
	auctions, err := c.svc.Reports.ListAuctions(ctx)
	if err != nil {
		c.reportFailure("list auctions", err)
		return
	}
	if len(auctions) == 0 {
		c.println("No auctions available.")
		return
	}

	for _, a := range auctions {
		c.printf("Auction ID: %d\n", a.AuctionID)
		c.printf("Product: %s\n", a.ProductName)
		c.printf("Reserve Price: %.2f\n", a.ReservePrice)
		c.printf("Start Date: %s\n", a.StartDate.Format(domain.DateLayout))
		c.printf("Close Date: %s\n", a.CloseDate.Format(domain.DateLayout))
		c.println("")
	}
}

// reportFailure prints a user-facing message for err.
func (c *Console) reportFailure(action string, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.println("Error: Email already in use or unique constraint violated.")
	case errors.Is(err, domain.ErrNotFound) && action == "place bid":
		c.println("Error: Auction or product not found.")
	default:
		c.printf("Error: Could not %s. Details: %v\n", action, err)
	}
}

// inputError reports a malformed number and returns to the main menu.
// End of input is passed through.
func (c *Console) inputError(err error) error {
	if errors.Is(err, errInputClosed) {
		return err
	}
	c.printf("Error: %v\n", err)
	return nil
}

type field struct {
	label string
	dest  *string
}

func (c *Console) promptAll(fields ...field) error {
	for _, f := range fields {
		v, err := c.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dest = v
	}
	return nil
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptFloat(label string) (float64, error) {
	s, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func (c *Console) promptInt(label string) (int, error) {
	s, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return v, nil
}

func (c *Console) promptID(label string) (int64, error) {
	s, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid ID", s)
	}
	return v, nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
