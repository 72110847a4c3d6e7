package console

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/app"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/config"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"

	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         filepath.Join(t.TempDir(), "console.db"),
			MaxOpenConns: 1,
		},
	}
	a, err := app.New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func servicesOf(a *app.App) Services {
	return Services{
		Credentials: a.Credentials,
		Catalog:     a.Catalog,
		Auctions:    a.Auctions,
		Bids:        a.Bids,
		Feedback:    a.Feedback,
		Reports:     a.Reports,
	}
}

// run feeds lines to a fresh console and returns everything it printed.
func run(t *testing.T, a *app.App, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	c := New(in, &out, servicesOf(a), week, logger.NewNop())
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func countRows(t *testing.T, a *app.App, table string) int {
	t.Helper()

	var n int
	require.NoError(t, a.DB.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

var adminSignup = []string{"1", "boss@example.com", "pw", "Bea", "Boss"}

func TestConsole_ExitAndEOF(t *testing.T) {
	a := newTestApp(t)

	out := run(t, a, "3")
	require.Contains(t, out, "Main Menu:")
	require.Contains(t, out, "Exiting...")

	var buf bytes.Buffer
	c := New(strings.NewReader(""), &buf, servicesOf(a), week, logger.NewNop())
	require.NoError(t, c.Run(context.Background()))
	require.Contains(t, buf.String(), "Exiting...")
}

func TestConsole_InvalidMainOption(t *testing.T) {
	out := run(t, newTestApp(t), "9", "3")
	require.Contains(t, out, "Invalid option.")
	require.Equal(t, 2, strings.Count(out, "Main Menu:"))
}

func TestConsole_AdminRegistersAndAddsCategory(t *testing.T) {
	a := newTestApp(t)

	script := append(append([]string{}, adminSignup...), "3", "Books", "3")
	out := run(t, a, script...)

	require.Contains(t, out, "Admin not found. Please register.")
	require.Contains(t, out, "Admin registered successfully.")
	require.Contains(t, out, "Admin Menu:")
	require.Contains(t, out, "Product category added successfully. Category ID: 1")
	require.Equal(t, 1, countRows(t, a, "administrator"))
	require.Equal(t, 1, countRows(t, a, "product_category"))

	// Logging in again goes straight to the menu.
	out = run(t, a, "1", "boss@example.com", "pw", "4", "3")
	require.NotContains(t, out, "Please register")
	require.Contains(t, out, "No auctions available.")
	require.Equal(t, 1, countRows(t, a, "administrator"))
}

func TestConsole_UserRegistrationAndDuplicate(t *testing.T) {
	a := newTestApp(t)
	signup := []string{"2", "ann@example.com", "pw", "Ann", "Lee", "12", "Main St", "Springfield", "IL", "62701", "USA", "555-0100"}

	out := run(t, a, append(signup, "1", "3")...)
	require.Contains(t, out, "User not found. Please register.")
	require.Contains(t, out, "User registered successfully.")
	require.Contains(t, out, "User Menu:")
	require.Contains(t, out, "No auctions available.")

	// A wrong password looks like an unknown account and the signup
	// collides with the existing email.
	wrong := append([]string{}, signup...)
	wrong[2] = "nope"
	out = run(t, a, append(wrong, "3")...)
	require.Contains(t, out, "Error: Email already in use or unique constraint violated.")
	require.NotContains(t, out, "User Menu:")
	require.Equal(t, 1, countRows(t, a, "users"))
}

func TestConsole_FullAuctionFlow(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	seller, err := a.Credentials.Register(ctx, domain.PrincipalUser, domain.Registration{
		FirstName: "Sam", Email: "sam@example.com", Password: "pw",
	})
	require.NoError(t, err)
	_, err = a.Credentials.Register(ctx, domain.PrincipalUser, domain.Registration{
		FirstName: "Ann", Email: "ann@example.com", Password: "pw",
	})
	require.NoError(t, err)
	_, err = a.Credentials.Register(ctx, domain.PrincipalAdministrator, domain.Registration{
		FirstName: "Bea", Email: "boss@example.com", Password: "pw",
	})
	require.NoError(t, err)
	_, err = a.Catalog.AddCategory(ctx, "Art")
	require.NoError(t, err)

	out := run(t, a,
		"1", "boss@example.com", "pw", "1", "Vase", "Ming", "100", "5", "1", "1",
		"1", "boss@example.com", "pw", "2", "1", "250",
		"2", "ann@example.com", "pw", "2", "1", "300",
		"2", "ann@example.com", "pw", "3", "1", "5", "Fast", "4", "5",
		"2", "ann@example.com", "pw", "1",
		"3",
	)

	require.Contains(t, out, "Product added successfully. Product ID: 1")
	require.Contains(t, out, "Auction added successfully. Auction ID: 1")
	require.Contains(t, out, "Bid placed successfully.")
	require.Contains(t, out, "Feedback added successfully.")

	today := time.Now().Format(domain.DateLayout)
	closing := time.Now().Add(week).Format(domain.DateLayout)
	require.Contains(t, out, "Auction ID: 1\nProduct: Vase\nReserve Price: 250.00\nStart Date: "+today+"\nClose Date: "+closing+"\n")

	bids, err := a.Reports.ListBids(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, 300.0, bids[0].Price)
	require.Equal(t, seller.ID, bids[0].SellerID)

	var feedbackSeller, buyer int64
	require.NoError(t, a.DB.QueryRow("SELECT seller_id, buyer_id FROM feedback").Scan(&feedbackSeller, &buyer))
	require.Equal(t, seller.ID, feedbackSeller)
	require.Equal(t, int64(2), buyer)
}

func TestConsole_BidOnMissingAuction(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Credentials.Register(context.Background(), domain.PrincipalUser, domain.Registration{
		Email: "ann@example.com", Password: "pw",
	})
	require.NoError(t, err)

	out := run(t, a, "2", "ann@example.com", "pw", "2", "42", "10", "3")
	require.Contains(t, out, "Error: Auction or product not found.")
	require.Equal(t, 0, countRows(t, a, "bid"))
	require.Contains(t, out, "Exiting...")
}

func TestConsole_MalformedNumberReturnsToMainMenu(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Credentials.Register(context.Background(), domain.PrincipalAdministrator, domain.Registration{
		Email: "boss@example.com", Password: "pw",
	})
	require.NoError(t, err)

	out := run(t, a, "1", "boss@example.com", "pw", "2", "abc", "3")
	require.Contains(t, out, `Error: "abc" is not a valid ID`)
	require.Equal(t, 0, countRows(t, a, "auction"))
	require.Contains(t, out, "Exiting...")
}

func TestConsole_EOFMidOperation(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	c := New(strings.NewReader("1\nboss@example.com\n"), &out, servicesOf(a), week, logger.NewNop())
	require.NoError(t, c.Run(context.Background()))
	require.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
	require.Equal(t, 0, countRows(t, a, "administrator"))
}

type failingReports struct{}

func (failingReports) ListAuctions(context.Context) ([]*domain.AuctionListing, error) {
	return nil, domain.ErrDatabase
}

func TestConsole_ReportFailureKeepsRunning(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Credentials.Register(context.Background(), domain.PrincipalUser, domain.Registration{
		Email: "ann@example.com", Password: "pw",
	})
	require.NoError(t, err)

	svc := servicesOf(a)
	svc.Reports = failingReports{}

	in := strings.NewReader("2\nann@example.com\npw\n1\n3\n")
	var out bytes.Buffer
	require.NoError(t, New(in, &out, svc, week, logger.NewNop()).Run(context.Background()))
	require.Contains(t, out.String(), "Error: Could not list auctions. Details: "+domain.ErrDatabase.Error())
	require.Contains(t, out.String(), "Exiting...")
}

func TestConsole_CancelledContext(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(strings.NewReader("9\n9\n"), &out, servicesOf(a), week, logger.NewNop()).Run(ctx)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestConsole_NonFiniteAmountsAreRejected(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	seller, err := a.Credentials.Register(ctx, domain.PrincipalUser, domain.Registration{
		Email: "sam@example.com", Password: "pw",
	})
	require.NoError(t, err)
	_, err = a.Credentials.Register(ctx, domain.PrincipalAdministrator, domain.Registration{
		Email: "boss@example.com", Password: "pw",
	})
	require.NoError(t, err)
	product, err := a.Catalog.AddProduct(ctx, domain.Product{Name: "Vase", SellerID: seller.ID})
	require.NoError(t, err)
	auction, err := a.Auctions.AddAuctionFor(ctx, week, 250, product.ID)
	require.NoError(t, err)

	out := run(t, a,
		"1", "boss@example.com", "pw", "2", "1", "NaN",
		"1", "boss@example.com", "pw", "2", "1", "+Inf",
		"2", "sam@example.com", "pw", "2", "1", "NaN",
		"2", "sam@example.com", "pw", "1",
		"3",
	)

	require.Contains(t, out, `Error: "NaN" is not a number`)
	require.Contains(t, out, `Error: "+Inf" is not a number`)
	require.NotContains(t, out, "Auction added successfully.")
	require.NotContains(t, out, "Bid placed successfully.")
	require.Contains(t, out, "Auction ID: 1\nProduct: Vase\nReserve Price: 250.00\n")
	require.Equal(t, 1, countRows(t, a, "auction"))
	require.Equal(t, 0, countRows(t, a, "bid"))

	listings, err := a.Reports.ListAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)

	bids, err := a.Reports.ListBids(ctx, auction.ID)
	require.NoError(t, err)
	require.Empty(t, bids)
}
