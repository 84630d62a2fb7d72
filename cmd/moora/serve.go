package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Moora/internal/api"
	"github.com/MikeSquared-Agency/Moora/internal/config"
	"github.com/MikeSquared-Agency/Moora/internal/events"
	"github.com/MikeSquared-Agency/Moora/internal/metrics"
	"github.com/MikeSquared-Agency/Moora/internal/ranking"
	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, metrics server and NATS request subscriber",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := cfg.Logging.NewLogger(os.Stdout)
	logger.Info("configuration loaded", "criteria", len(cfg.Criteria), "frontier", cfg.Scoring.FrontierEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		nc, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to nats, running without events", "error", err)
		} else {
			eventsClient = nc
			defer nc.Close()
			logger.Info("connected to nats")
		}
	}

	engine := scoring.NewEngine(cfg.Scoring.WeightTolerance, cfg.Scoring.FrontierEnabled, logger)
	recorder := metrics.New(prometheus.DefaultRegisterer)
	svc := ranking.NewService(engine, cfg.Criteria, eventsClient, recorder, logger)

	if err := svc.SetupSubscriptions(); err != nil {
		logger.Warn("failed to subscribe to ranking requests", "error", err)
	}

	// API server
	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           api.NewRouter(svc, cfg.Server, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           api.NewMetricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
	return nil
}
