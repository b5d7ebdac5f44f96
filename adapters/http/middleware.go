package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

// ErrorMiddleware turns errors handlers attach via c.Error into JSON
// responses, keeping status mapping in one place.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
