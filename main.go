// main.go
package main

import (
	"context"
	"log"

	"github.com/vladHotelverse/hotel-upsell/cmd"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/internal/wire"
	"github.com/vladHotelverse/hotel-upsell/pkg/database"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

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

	// Load guest-facing labels. A broken labels file is a deploy error, not
	// something to paper over at runtime.
	labels, err := utils.LoadLabels(config.App.LabelsPath)
	if err != nil {
		logger.Fatal("Failed to load labels", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Start the row-change listener; it reconnects on its own until the
	// context is cancelled.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := realtime.NewListener(db.Pool(), logger)
	go listener.Run(ctx)

	// Wire all dependencies
	app := wire.Wiring(repos, config, labels, listener, logger)
	defer app.Bridge.UnsubscribeAll()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
