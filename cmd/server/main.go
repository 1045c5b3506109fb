package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/web3-frozen/penumbra-analytics/internal/aggregator"
	"github.com/web3-frozen/penumbra-analytics/internal/config"
	"github.com/web3-frozen/penumbra-analytics/internal/handler"
	"github.com/web3-frozen/penumbra-analytics/internal/metrics"
	"github.com/web3-frozen/penumbra-analytics/internal/middleware"
	"github.com/web3-frozen/penumbra-analytics/internal/notify"
	"github.com/web3-frozen/penumbra-analytics/internal/scheduler"
	"github.com/web3-frozen/penumbra-analytics/internal/source"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		"rpc", cfg.RPCEndpoint,
		"indexer_configured", cfg.IndexerDSN != "",
		"update_interval", cfg.UpdateInterval.String(),
		"notify_interval", cfg.NotifyInterval.String(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Source adapters and aggregation pipeline
	node := source.NewNodeClient(cfg.RPCEndpoint, logger)
	indexer := source.NewIndexerClient(cfg.IndexerDSN, cfg.IndexerCACert, logger)
	agg := aggregator.New(node, indexer, source.NewTxEstimator(), logger)

	// Notification channel and last-sent state (Redis-backed when configured)
	discord := notify.NewDiscord(cfg.DiscordWebhookURL, logger)
	sendState, err := notify.NewSendState(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		logger.Error("failed to connect to redis for send state", "error", err)
		os.Exit(1)
	}
	defer sendState.Close()

	sched := scheduler.New(agg, metrics.NewExporter(), discord, sendState,
		cfg.UpdateInterval, cfg.NotifyInterval, logger)
	go sched.Run(ctx)

	// HTTP routes
	r := chi.NewRouter()
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.FrontendOrigin))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", handler.Health())
	r.Get("/readyz", handler.Ready(sched))
	r.Get("/api/stats", handler.Stats(sched))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gracefully")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
