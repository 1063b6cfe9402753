package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Akshat3144/safespace-api/config"
	"github.com/Akshat3144/safespace-api/internal/api"
	"github.com/Akshat3144/safespace-api/internal/database"
	"github.com/Akshat3144/safespace-api/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := cfg.NewLogger()

	store, closeStore, err := openStorage(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize storage")
	}
	defer closeStore()

	if cfg.Storage.SeedSampleData {
		if err := storage.Seed(store, logger); err != nil {
			logger.WithError(err).Fatal("Failed to seed sample data")
		}
	}

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewRouter(store, logger, cfg.Server.AllowOrigins),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
}

// openStorage returns the configured backend and a function releasing it.
func openStorage(cfg *config.Config, logger *logrus.Logger) (storage.Storage, func(), error) {
	if cfg.Storage.Driver != config.StorageSQLite {
		logger.Info("Using in-memory storage")
		return storage.NewMemStorage(), func() {}, nil
	}

	logger.Infof("Using database at: %s", cfg.Storage.DatabasePath)
	db, err := database.NewDatabase(cfg.Storage.DatabasePath, logger)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("Failed to close database")
		}
	}, nil
}
