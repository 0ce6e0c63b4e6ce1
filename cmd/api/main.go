// Command api is the FIFA 4x4 Predictor API server.
//
// Usage:
//
//	predictor-api
//	API_PORT=5000 predictor-api

// @title FIFA 4x4 Predictor API
// @version 1.0.0
// @description Match-outcome prediction API for the FIFA 4x4 Telegram Mini App: ranked scorelines, winner verdicts, and goal-line recommendations per period, plus team list and subscription check endpoints.
// @host localhost:5000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/fifa4x4/predictor-api/internal/api"
	"github.com/fifa4x4/predictor-api/internal/cache"
	"github.com/fifa4x4/predictor-api/internal/config"
	"github.com/fifa4x4/predictor-api/internal/db"
	"github.com/fifa4x4/predictor-api/internal/engine"
	"github.com/fifa4x4/predictor-api/internal/remote"
	"github.com/fifa4x4/predictor-api/internal/subscription"
	"github.com/fifa4x4/predictor-api/internal/teams"

	_ "github.com/fifa4x4/predictor-api/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Database is optional; without it the built-in team list is served.
	var pool *db.Pool
	if cfg.DatabaseURL != "" {
		logger.Info("Connecting to database...")
		pool, err = db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
	} else {
		logger.Info("No DATABASE_URL set, serving built-in team list")
	}

	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Prediction engine over the built-in reference tables. Unrated
	// teams get a randomized bounded default in production.
	eng, err := engine.New(engine.Default(), engine.RandomRating())
	if err != nil {
		logger.Error("Defective reference tables", "error", err)
		os.Exit(1)
	}

	var store *teams.Store
	if pool != nil {
		store = teams.NewStore(pool.Pool)
	} else {
		store = teams.NewStore(nil)
	}
	resolver := teams.NewResolver(store, teams.Builtin(), logger)
	predictor := remote.New(cfg.RemotePredictURL, eng, resolver, logger)
	if cfg.RemotePredictURL != "" {
		logger.Info("Proxying predictions with local fallback", "upstream", cfg.RemotePredictURL)
	}

	checker := subscription.NewChecker(cfg.TelegramBotToken, cfg.TelegramChannelID, appCache, logger)
	if !checker.IsConfigured() {
		logger.Info("Subscription check disabled (no TELEGRAM_BOT_TOKEN/TELEGRAM_CHANNEL_ID), granting access")
	}

	router := api.NewRouter(api.Deps{
		Pool:      pool,
		Cache:     appCache,
		Config:    cfg,
		Predictor: predictor,
		Store:     store,
		Checker:   checker,
		Logger:    logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting FIFA 4x4 Predictor API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
