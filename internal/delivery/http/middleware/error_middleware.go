package middleware

import (
	"context"
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// StatusClientClosedRequest is reported when the caller went away first
const StatusClientClosedRequest = 499

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(string(domain.KeyRequestID))

		if appErr, ok := apperror.As(err); ok {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "request_id", requestID, "path", c.FullPath(), "error", err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		switch {
		case errors.Is(err, context.DeadlineExceeded):
			response.Error(c, http.StatusGatewayTimeout, "The request timed out", nil)
		case errors.Is(err, context.Canceled):
			response.Error(c, StatusClientClosedRequest, "The request was canceled", nil)
		default:
			// Never expose internal error details to clients
			logger.Log.Error("Internal server error", "request_id", requestID, "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
