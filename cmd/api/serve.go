package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/harentsoaR/doctors-portal/internal/handlers"
	"github.com/harentsoaR/doctors-portal/internal/metrics"
	"github.com/harentsoaR/doctors-portal/internal/middleware"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"github.com/harentsoaR/doctors-portal/internal/services"
	"github.com/harentsoaR/doctors-portal/internal/utils"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, logger, client, err := bootstrap(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}
	defer disconnect(client, logger)

	db := client.Database(cfg.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		logger.Error().Err(err).Msg("failed to create indexes")
		return err
	}
	store := repository.NewMongoStore(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	notifier := services.NewNotificationService(cfg.TextbeltAPIKey, cfg.TextbeltURL, logger)
	defer notifier.Wait()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
	defer limiter.Stop()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	h := handlers.NewHandler(store, utils.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL), notifier, collector)
	router := handlers.NewRouter(h, handlers.RouterConfig{
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		RateLimiter: limiter,
		Collector:   collector,
		Gatherer:    reg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Doctors Portal app listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server failed")
			return err
		}
	case <-quit:
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
