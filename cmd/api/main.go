package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scambait-lab/internal/api"
	"scambait-lab/internal/api/handlers"
	"scambait-lab/internal/config"
	"scambait-lab/internal/domain/services"
	"scambait-lab/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting ScamBait Lab")

	if cfg.Auth.APIKey == "" {
		log.Warn().Msg("no API key configured, honeypot endpoint will reject all requests")
	}

	// Initialize services
	store := services.NewSessionStore()
	classifier := services.NewClassifier(cfg.Honeypot.Keywords)
	extractor := services.NewExtractor()

	var reporter services.ReportSink
	if cfg.Reporter.Enabled {
		reporter = services.NewReporter(cfg.Reporter, log)
		log.Info().
			Str("url", cfg.Reporter.URL).
			Dur("timeout", cfg.Reporter.Timeout).
			Msg("intelligence reporter initialized")
	} else {
		log.Warn().Msg("reporter disabled, scam intelligence will not be delivered")
	}

	engine := services.NewEngine(store, classifier, extractor, reporter, cfg.Honeypot, log)

	// Initialize handlers
	h := handlers.NewHandlers(handlers.Dependencies{
		Engine:     engine,
		Store:      store,
		Classifier: classifier,
		Extractor:  extractor,
		Version:    cfg.App.Version,
		Logger:     log,
	})

	// Create router
	router := api.NewRouter(*cfg, h, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	// Graceful shutdown with timeout. In-flight report deliveries are
	// best-effort and not awaited; session state is process-scoped and
	// discarded on exit.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
