package routes

import (
	"accura_backend/internal/handlers"
	"accura_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// The accura client posts to the server root, so there is no /api prefix.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	appHandlers.UploadHandler.RegisterRoutes(ginRouter)

	logger.Debug("Routes registered", "count", len(ginRouter.Routes()))
}
