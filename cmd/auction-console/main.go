package main

import (
	"context"
	"os"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/app"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/config"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/console"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"

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

	log.Info("Starting auction console", "config", cfg.String())

	ctx := context.Background()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize", "error", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("Failed to close connections", "error", err)
		}
	}()

	c := console.New(os.Stdin, os.Stdout, console.Services{
		Credentials: a.Credentials,
		Catalog:     a.Catalog,
		Auctions:    a.Auctions,
		Bids:        a.Bids,
		Feedback:    a.Feedback,
		Reports:     a.Reports,
	}, cfg.Auction.DefaultDuration, log)

	if err := c.Run(ctx); err != nil {
		log.Error("Console stopped", "error", err)
	}
}
