// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - MongoDB client
//   - redis client (optional)
//   - background job service (asynq, optional)
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/config"
	"github.com/deppfellow/blogs-server/internal/database"
	"github.com/deppfellow/blogs-server/internal/lib/job"
	loggerPkg "github.com/deppfellow/blogs-server/internal/logger"
)

const redisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; that is the unexported httpServer,
// configured in SetupHTTPServer and started in Start.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	// DB is the MongoDB client and database handle.
	DB *database.Database

	// Redis is nil when redis.address is not configured.
	Redis *redis.Client

	// Job is nil unless comment notifications are fully configured.
	// Handlers are registered and the worker started by the caller.
	Job *job.JobService

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// A MongoDB connection failure is fatal. A Redis ping failure is logged and
// startup continues; the status endpoint will report it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if cfg.Redis.Enabled() {
		server.Redis = newRedisClient(cfg, logger, loggerService)
	} else {
		logger.Info().Msg("redis address not set, background jobs disabled")
	}

	if cfg.NotificationsEnabled() {
		server.Job = job.NewJobService(logger, cfg)
	}

	return server, nil
}

func newRedisClient(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService != nil && loggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Redis.Address).Msg("failed to connect to redis, continuing")
	}

	return client
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires, then releases the job worker, redis and the store client.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if err := s.DB.Close(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
