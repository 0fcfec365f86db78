package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avelichko/linksense/app/analytics"
	"github.com/avelichko/linksense/app/api"
	"github.com/avelichko/linksense/app/auth"
	"github.com/avelichko/linksense/app/cfg"
	"github.com/avelichko/linksense/app/classifier"
	"github.com/avelichko/linksense/app/content"
	"github.com/avelichko/linksense/app/database"
	"github.com/avelichko/linksense/app/pipeline"
	"github.com/avelichko/linksense/app/subscription"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting LinkSense server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Connected to database")

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Migrations applied", "version", version, "dirty", dirty)

	categoryRepo := database.NewCategoryRepository(db)
	linkRepo := database.NewLinkRepository(db)
	subscriptionRepo := database.NewSubscriptionRepository(db)

	telemetry, err := analytics.NewClient(appCfg.PostHogAPIKey, appCfg.PostHogHost)
	if err != nil {
		slog.Error("Failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer telemetry.Close()

	// The HTTP client and classifier client are shared, long-lived resources;
	// everything per-request flows through the pipeline.
	httpClient := &http.Client{}
	fetcher := content.NewFetcher(httpClient, appCfg.UserAgent)
	extractor := content.NewExtractor()
	contentClassifier := classifier.NewClassifier(appCfg.OpenAIAPIKey, categoryRepo)
	classifyPipeline := pipeline.NewPipeline(fetcher, extractor, contentClassifier, categoryRepo, linkRepo)

	oracle := subscription.NewOracle(subscriptionRepo, appCfg.TokenSecret)
	verifier := auth.NewVerifier(appCfg.TokenSecret)

	handler := api.NewHandler(classifyPipeline, oracle, telemetry, verifier)
	server := api.NewServer(handler, verifier, appCfg.AllowedOrigins)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Telemetry and database are closed via defer
	slog.Info("Shutdown complete")
}
