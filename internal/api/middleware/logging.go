package middleware

import (
	"time"

	"github.com/aspireai/aspire-site/internal/api/constants"
	"github.com/aspireai/aspire-site/internal/logging"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request. It is a no-op unless request
// logging was enabled in the logger configuration.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	if !logger.RequestsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			c.ClientIP(),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
