package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/config"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/infrastructure/database"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/infrastructure/redis"
	"github.com/AnushkaAn/Online-Auction-Platform/internal/services"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"

	redisClient "github.com/go-redis/redis/v8"
)

// App holds the opened connections and the services built on them.
type App struct {
	DB    *sql.DB
	Redis *redisClient.Client

	Credentials *services.CredentialService
	Catalog     *services.CatalogService
	Auctions    *services.AuctionService
	Bids        *services.BidService
	Feedback    *services.FeedbackService
	Reports     *services.ReportService

	log logger.Logger
}

// New opens the database, ensures the schema and wires every service.
// Redis is connected only when enabled; without it events are dropped.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	dialect, err := database.DialectFor(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("Connected to database", "driver", cfg.Database.Driver)

	var schema domain.SchemaManager = database.NewSQLSchemaManager(db, dialect)
	if err := schema.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	log.Info("Schema ready", "tables", len(database.TableNames()))

	a := &App{DB: db, log: log}

	var publisher domain.EventPublisher
	if cfg.Redis.Enabled {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("Connected to Redis", "address", cfg.Redis.Address, "channel", cfg.Redis.Channel)
		a.Redis = rdb
		publisher = redis.NewEventPublisher(rdb, cfg.Redis.Channel)
	}

	auctionRepo := database.NewSQLAuctionRepository(db)
	bidRepo := database.NewSQLBidRepository(db)

	a.Credentials = services.NewCredentialService(
		database.NewSQLUserRepository(db),
		database.NewSQLAdministratorRepository(db),
		log,
	)
	a.Catalog = services.NewCatalogService(database.NewSQLCatalogRepository(db), log)
	a.Auctions = services.NewAuctionService(auctionRepo, publisher, log)
	a.Bids = services.NewBidService(bidRepo, publisher, log)
	a.Feedback = services.NewFeedbackService(database.NewSQLFeedbackRepository(db), log)
	a.Reports = services.NewReportService(auctionRepo, bidRepo, log)

	return a, nil
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if err := a.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if len(errs) == 0 {
		a.log.Info("Connections closed")
	}
	return errors.Join(errs...)
}
