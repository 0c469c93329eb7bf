package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "net/http/pprof"

	"github.com/saludarte/saludarte-api/catalog"
	"github.com/saludarte/saludarte-api/config"
	"github.com/saludarte/saludarte-api/data"
	"github.com/saludarte/saludarte-api/handlers"
	"github.com/saludarte/saludarte-api/health"
	"github.com/saludarte/saludarte-api/logging"
	"github.com/saludarte/saludarte-api/recommender"
	"github.com/saludarte/saludarte-api/scheduler"
	"github.com/saludarte/saludarte-api/server"
	"github.com/saludarte/saludarte-api/validation"
)

func loadEnvFile() {
	// Try the working directory first, then the executable directory
	if err := godotenv.Load(); err != nil {
		ex, err := os.Executable()
		if err != nil {
			logging.Error("Failed to get executable path", "error", err)
			os.Exit(1)
		}

		exPath := filepath.Dir(ex)
		if err := os.Chdir(exPath); err != nil {
			logging.Error("Failed to change directory", "error", err)
			os.Exit(1)
		}

		// Best effort: a missing .env file is fine when variables come
		// from the environment itself
		_ = godotenv.Load()
	}
}

func main() {
	loadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs")

	// Data container shared by the scheduler and the HTTP handlers
	dataContainer := data.NewDataContainer()
	dataContainer.SetServerStartTime(time.Now())

	parser := catalog.NewTSVParser(cfg.CatalogPath)

	// Catalog loading and daily reloads
	sched := scheduler.NewScheduler(dataContainer, parser)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start the catalog scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// Recommendation pipeline
	lexicon := recommender.DefaultLexicon()
	service := recommender.NewService(lexicon, recommender.NewRotationCounter(),
		cfg.MaxSymptoms, cfg.MinPerSymptom, cfg.MaxPerSymptom)

	validator := validation.NewDataValidator()
	healthChecker := health.NewHealthChecker(dataContainer)
	handler := handlers.NewHTTPHandler(dataContainer, validator, service, healthChecker, lexicon)

	srv := server.NewServer(cfg, handler)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
		os.Exit(1)
	}
}
