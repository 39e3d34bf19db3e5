// main.go
package main

import (
	"log"
	"time"

	"marine-booking/cmd"
	"marine-booking/internal/data/repository"
	"marine-booking/internal/wire"
	"marine-booking/pkg/store"
	"marine-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Select the record store backend once, at wiring time
	recordStore := newStore(config, logger)

	// Initialize all repositories
	repos := repository.NewRepository(recordStore, config.Store.FetchLimit, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func newStore(config *utils.Config, logger *zap.Logger) store.Store {
	if config.Store.Backend == "memory" {
		logger.Warn("Using in-memory record store; data will not persist")
		return store.NewMemory()
	}

	timeout := time.Duration(config.Store.TimeoutSeconds) * time.Second
	return store.NewClient(config.Store.BaseURL, config.Store.APIKey, timeout, logger)
}
