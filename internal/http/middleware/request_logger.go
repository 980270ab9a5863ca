package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/twofasvc/internal/logger"
)

// RequestLogger logs one structured line per request. Bodies are never
// logged: every authentication request carries a password or a code.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
