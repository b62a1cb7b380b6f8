package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/blogs-server/internal/config"
	"github.com/deppfellow/blogs-server/internal/database"
	"github.com/deppfellow/blogs-server/internal/handler"
	"github.com/deppfellow/blogs-server/internal/logger"
	"github.com/deppfellow/blogs-server/internal/repository"
	"github.com/deppfellow/blogs-server/internal/router"
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/service"
)

const (
	shutdownTimeout = 30 * time.Second
	indexTimeout    = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the application and blocks until a signal or a server failure.
// Every deferred cleanup, including the New Relic flush, runs before it returns.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	shutdown := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), indexTimeout)
	if err := database.EnsureIndexes(indexCtx, &log, srv.DB); err != nil {
		log.Error().Err(err).Msg("failed to ensure indexes, continuing")
	}
	cancelIndex()

	policy, err := cfg.AccessPolicy()
	if err != nil {
		log.Error().Err(err).Msg("invalid access policy")
		return errors.Join(err, shutdown())
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos, policy)
	handlers := handler.NewHandlers(srv, services)

	r, err := router.NewRouter(srv, handlers, services)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize router")
		return errors.Join(err, shutdown())
	}

	if srv.Job != nil {
		srv.Job.InitHandlers(cfg, &log, repos.Blog)
		if err := srv.Job.Start(); err != nil {
			log.Error().Err(err).Msg("failed to start job server")
			return errors.Join(err, shutdown())
		}
	}

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	case err := <-serveErr:
		log.Error().Err(err).Msg("server stopped unexpectedly")
		runErr = err
	}

	if err := shutdown(); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return errors.Join(runErr, err)
	}
	if runErr != nil {
		return runErr
	}

	log.Info().Msg("server exited properly")
	return nil
}
