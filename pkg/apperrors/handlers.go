package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError renders err on c and aborts the chain.
//
// Client errors (4xx) get {"error": message}. Server errors are attached to
// the gin context for the access log and answered with a bare status code:
// no diagnostic detail leaves the server.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		_ = c.Error(appErr)
		c.AbortWithStatus(appErr.HTTPCode)
		return
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr.Message})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
