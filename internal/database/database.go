// Package database contains the logic for establishing
// the connection to the MongoDB document store.
//
// It handles:
//   - building the connection string from config
//   - creating the mongo.Client (which owns its own connection pool)
//   - wiring command logging (zerolog) and optional New Relic instrumentation (nrmongo)
//   - ensuring the indexes the read paths rely on
package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/deppfellow/blogs-server/internal/config"
	loggerConfig "github.com/deppfellow/blogs-server/internal/logger"
)

// Collection names.
const (
	BlogsCollection    = "blogs"
	CommentsCollection = "comments"
	WishlistCollection = "wishlist"
)

// DatabasePingTimeout is the number of seconds to wait for the startup ping
// before considering the store unreachable.
const DatabasePingTimeout = 10

// Database wraps the mongo client, the selected database and a logger.
// It is created once at startup and passed around through server.Server.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// URI assembles the MongoDB connection string from its parts.
//
// User and password are percent-encoded by url.UserPassword, so characters
// like '@' or ':' in a password do not break the URI.
func URI(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   cfg.Scheme,
		Host:     cfg.Host,
		Path:     "/",
		RawQuery: cfg.Options,
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	return u.String()
}

// New connects to MongoDB with instrumentation.
//
// Behavior:
//   - Build the URI from config
//   - Attach a zerolog command monitor (verbose in "local" env, slow commands always)
//   - Wrap it with the New Relic monitor if New Relic is running
//   - Connect, ping the primary, and return Database
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var slowThreshold time.Duration
	if cfg.Observability != nil {
		slowThreshold = cfg.Observability.Logging.SlowQueryThreshold
	}

	monitor := loggerConfig.NewCommandMonitor(
		logger.With().Str("component", "mongo").Logger(),
		cfg.Primary.Env == "local",
		slowThreshold,
	)

	// nrmongo chains the original monitor, so both run for every command.
	if loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}

	clientOptions := options.Client().
		ApplyURI(URI(cfg.Database)).
		SetMonitor(monitor).
		SetWriteConcern(writeconcern.Majority())

	if cfg.Database.AppName != "" {
		clientOptions.SetAppName(cfg.Database.AppName)
	}
	if cfg.Database.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.Database.MaxPoolSize)
	}
	if cfg.Database.ConnectTimeout > 0 {
		clientOptions.SetConnectTimeout(cfg.Database.ConnectTimeout)
		clientOptions.SetServerSelectionTimeout(cfg.Database.ConnectTimeout)
	}

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	database := &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}

	// Ping with a timeout so startup fails fast if the store is down.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = database.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	return database, nil
}

// Ping checks the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to the named collection.
func (db *Database) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// Close disconnects the client and releases its pool.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}
