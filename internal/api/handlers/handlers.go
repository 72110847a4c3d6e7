package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"

	"github.com/labstack/echo/v4"
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
	AddAuction(ctx context.Context, startDate, closeDate time.Time, reservePrice float64, productID int64) (*domain.Auction, error)
	AddAuctionFor(ctx context.Context, duration time.Duration, reservePrice float64, productID int64) (*domain.Auction, error)
}

type BidPlacer interface {
	PlaceBid(ctx context.Context, auctionID int64, price float64, bidderID int64) (*domain.Bid, error)
}

type FeedbackWriter interface {
	AddFeedback(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error)
}

type Reports interface {
	ListAuctions(ctx context.Context) ([]*domain.AuctionListing, error)
	ListBids(ctx context.Context, auctionID int64) ([]*domain.Bid, error)
}

type Services struct {
	Credentials CredentialStore
	Catalog     Catalog
	Auctions    AuctionWriter
	Bids        BidPlacer
	Feedback    FeedbackWriter
	Reports     Reports
}

// AuctionHandler serves the JSON API.
type AuctionHandler struct {
	svc             Services
	auctionDuration time.Duration
	log             logger.Logger
}

func NewAuctionHandler(svc Services, auctionDuration time.Duration, log logger.Logger) *AuctionHandler {
	return &AuctionHandler{
		svc:             svc,
		auctionDuration: auctionDuration,
		log:             log,
	}
}

// Register mounts every route on e.
func (h *AuctionHandler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/users", h.RegisterUser)
	api.POST("/admins", h.RegisterAdmin)
	api.POST("/login", h.Login)
	api.POST("/categories", h.CreateCategory)
	api.POST("/products", h.CreateProduct)
	api.POST("/auctions", h.CreateAuction)
	api.GET("/auctions", h.ListAuctions)
	api.POST("/auctions/:id/bids", h.PlaceBid)
	api.GET("/auctions/:id/bids", h.ListBids)
	api.POST("/feedback", h.CreateFeedback)
}

type LoginRequest struct {
	Kind     domain.PrincipalKind `json:"kind"`
	Email    string               `json:"email"`
	Password string               `json:"password"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateAuctionRequest dates are YYYY-MM-DD. Without them the auction
// opens today and runs for the configured default duration.
type CreateAuctionRequest struct {
	ProductID    int64   `json:"product_id"`
	ReservePrice float64 `json:"reserve_price"`
	StartDate    string  `json:"start_date"`
	CloseDate    string  `json:"close_date"`
}

type PlaceBidRequest struct {
	BidderID int64   `json:"bidder_id"`
	Price    float64 `json:"price"`
}

func (h *AuctionHandler) RegisterUser(c echo.Context) error {
	return h.register(c, domain.PrincipalUser)
}

func (h *AuctionHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, domain.PrincipalAdministrator)
}

func (h *AuctionHandler) register(c echo.Context, kind domain.PrincipalKind) error {
	var req domain.Registration
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}

	principal, err := h.svc.Credentials.Register(c.Request().Context(), kind, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, principal)
}

func (h *AuctionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}

	principal, err := h.svc.Credentials.Login(c.Request().Context(), req.Kind, req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, principal)
}

func (h *AuctionHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}

	category, err := h.svc.Catalog.AddCategory(c.Request().Context(), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *AuctionHandler) CreateProduct(c echo.Context) error {
	var req domain.Product
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}

	product, err := h.svc.Catalog.AddProduct(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *AuctionHandler) CreateAuction(c echo.Context) error {
	var req CreateAuctionRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}

	ctx := c.Request().Context()
	if req.StartDate == "" && req.CloseDate == "" {
		auction, err := h.svc.Auctions.AddAuctionFor(ctx, h.auctionDuration, req.ReservePrice, req.ProductID)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(http.StatusCreated, auction)
	}

	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return h.badRequest(c, err)
	}
	closeDate, err := time.Parse(domain.DateLayout, req.CloseDate)
	if err != nil {
		return h.badRequest(c, err)
	}

	auction, err := h.svc.Auctions.AddAuction(ctx, start, closeDate, req.ReservePrice, req.ProductID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, auction)
}

func (h *AuctionHandler) ListAuctions(c echo.Context) error {
	auctions, err := h.svc.Reports.ListAuctions(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, auctions)
}

func (h *AuctionHandler) PlaceBid(c echo.Context) error {
	auctionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.badRequest(c, err)
	}

	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}

	bid, err := h.svc.Bids.PlaceBid(c.Request().Context(), auctionID, req.Price, req.BidderID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, bid)
}

func (h *AuctionHandler) ListBids(c echo.Context) error {
	auctionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.badRequest(c, err)
	}

	bids, err := h.svc.Reports.ListBids(c.Request().Context(), auctionID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, bids)
}

func (h *AuctionHandler) CreateFeedback(c echo.Context) error {
	var req domain.Feedback
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}

	feedback, err := h.svc.Feedback.AddFeedback(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, feedback)
}

func (h *AuctionHandler) badRequest(c echo.Context, err error) error {
	h.log.Warn("Rejected request", "path", c.Path(), "error", err)
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
}

// fail maps a service error onto a status code.
func (h *AuctionHandler) fail(c echo.Context, err error) error {
	status, msg := http.StatusInternalServerError, "Internal error"
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		status, msg = http.StatusConflict, "Email already in use"
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrConstraintViolation):
		status, msg = http.StatusConflict, "Constraint violated"
	}

	if status == http.StatusInternalServerError {
		h.log.Error("Request failed", "path", c.Path(), "error", err)
	}
	return c.JSON(status, map[string]string{"error": msg})
}

// Health reports liveness.
func Health(service string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   service,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
