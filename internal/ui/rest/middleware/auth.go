package middleware

import (
	"errors"
	"net/http"

	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/auth"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authorize gates the route group with the given authorizer.
// Denials abort with 401 (or 403 for auth.ErrForbidden) and a JSON body.
func Authorize(a auth.Authorizer, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		err := a.Authorize(c.Request)
		if err == nil {
			c.Next()
			return
		}

		status, reason := http.StatusUnauthorized, "invalid"
		switch {
		case errors.Is(err, auth.ErrForbidden):
			status, reason = http.StatusForbidden, "forbidden"
		case errors.Is(err, auth.ErrMissingCredentials):
			reason = "missing"
		}
		metrics.AuthorizationDenied.WithLabelValues(reason).Inc()

		logger.Warn("request denied",
			zap.String("component", "auth"),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)

		if status == http.StatusUnauthorized {
			c.Header("WWW-Authenticate", `Bearer realm="values-api"`)
		}
		c.AbortWithStatusJSON(status, gin.H{
			"error":   http.StatusText(status),
			"message": err.Error(),
		})
	}
}
