package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"example.com/fittrack/internal/api"
	"example.com/fittrack/internal/backend"
	"example.com/fittrack/internal/config"
	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/logging"
	"example.com/fittrack/internal/store"
	httptransport "example.com/fittrack/internal/transport/http"
)

func main() {
	cfg := config.Load()
	logger := logging.NewStderr(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("fittrack api stopped with error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	medium, closeMedium, err := backend.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s medium: %w", cfg.Backend, err)
	}
	defer func() {
		if err := closeMedium(); err != nil {
			logger.Warn().Err(err).Msg("closing store medium")
		}
	}()

	opts, err := backend.StoreOptions(cfg, logging.Component(logger, "store"))
	if err != nil {
		return err
	}
	records := store.New(medium, opts...)
	service := domain.NewService(records.Runs, records.Workouts)

	handler := api.NewHandler(service, logging.Component(logger, "api"))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	server := httptransport.NewServer(httptransport.DefaultServerConfig(cfg.HTTPAddress),
		httptransport.Chain(mux,
			httptransport.RequestID(),
			httptransport.AccessLog(logging.Component(logger, "http")),
			httptransport.CORS(cfg.CORSOrigin),
		))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("address", cfg.HTTPAddress).Str("backend", cfg.Backend).Msg("fittrack api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
