package handlers

import (
	"accura_backend/internal/logger"
	"accura_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================================================
// Базовая структура обработчика
// ============================================================================

type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// HandleServiceError logs err and renders it through apperrors.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode < 500 {
		logger.CtxWarn(ctx, "Client error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	}

	apperrors.HandleError(c, err)
}
