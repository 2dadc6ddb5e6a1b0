package app

import (
	"accura_backend/internal/config"
	"accura_backend/internal/handlers"
	"accura_backend/internal/imageprocessor"
	"accura_backend/internal/logger"
	"accura_backend/internal/middleware"
	"accura_backend/internal/routes"
	"accura_backend/internal/storage"
	"accura_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

func Run() {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := validator.New().Validate(cfg); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The upload directory is created here, before the listener starts.
	storageInstance, err := NewStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type, "location", storageInstance.Location(""))

	ginRouter := SetupRouter(cfg, storageInstance)

	address := cfg.Address()
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// NewStorage builds the storage backend named in cfg.
func NewStorage(cfg *config.Config) (storage.Storage, error) {
	return storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
}

// SetupRouter wires handlers and middleware onto a new engine.
func SetupRouter(cfg *config.Config, storageInstance storage.Storage) *gin.Engine {
	appHandlers := initializeHandlers(cfg, storageInstance)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(cfg *config.Config, storageInstance storage.Storage) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler()
	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	return &handlers.AppHandlers{
		UploadHandler: handlers.NewUploadHandler(baseHandler, storageInstance, processor, handlers.UploadOptions{
			MaxMemory:         cfg.Upload.MaxMemory,
			SanitizeFilenames: cfg.Upload.SanitizeFilenames,
			ThumbnailSize:     cfg.Upload.ThumbnailSize,
			MaxPixels:         cfg.Upload.MaxPixels,
		}),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxMemory
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	return router
}
