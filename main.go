package main

import (
	"context"
	"log"

	"github.com/AliHsynvv/airen-media-sub002/cmd"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/wire"
	"github.com/AliHsynvv/airen-media-sub002/internal/worker"
	"github.com/AliHsynvv/airen-media-sub002/pkg/cache"
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"
	"github.com/AliHsynvv/airen-media-sub002/pkg/queue"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis is optional; without it every read goes straight to Postgres
	redisClient := cache.NewRedisClient(config.Redis)
	if redisClient == nil {
		logger.Warn("Redis unavailable, content caching disabled")
	}
	contentCache := cache.NewContentCache(redisClient, config.Redis.CacheTTL, logger)

	// The broker is optional too; without it events are dropped and the
	// notification worker stays off
	var publisher *queue.Publisher
	if config.Queue.Enabled {
		publisher, err = queue.NewPublisher(config.Queue.URL, logger)
		if err != nil {
			logger.Warn("Message broker unavailable, events disabled", zap.Error(err))
			publisher = nil
		}
	}
	defer publisher.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, contentCache, publisher, logger)

	// Start notification consumers
	if publisher != nil {
		notificationWorker := worker.NewNotificationWorker(repos, config.Queue.URL, logger)
		notificationWorker.Run(context.Background())
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
