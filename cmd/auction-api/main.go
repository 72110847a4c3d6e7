package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/api/handlers"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/api/middleware"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/app"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/config"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	pflag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	log = logger.NewWithLevel(cfg.Log.Level)
	defer log.Sync()

	log.Info("Starting auction API", "config", cfg.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	a, err := app.New(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to initialize", "error", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("Failed to close connections", "error", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e, log)

	handlers.NewAuctionHandler(handlers.Services{
		Credentials: a.Credentials,
		Catalog:     a.Catalog,
		Auctions:    a.Auctions,
		Bids:        a.Bids,
		Feedback:    a.Feedback,
		Reports:     a.Reports,
	}, cfg.Auction.DefaultDuration, log).Register(e)
	e.GET("/health", handlers.Health("auction-api"))

	serverAddr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	log.Info("Starting server", "address", serverAddr)

	go func() {
		if err := e.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down auction API...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Auction API stopped")
}
