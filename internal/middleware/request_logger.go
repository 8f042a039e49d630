package middleware

import (
	"time"

	"github.com/agentgenesis/api/internal/agentgen"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// probePaths are polled by orchestrators and scrapers; successful hits log at debug.
var probePaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLogger logs one entry per request, leveled by response status.
// Failed generations also carry the error kind recorded by RespondGenerationError.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", GetRequestID(c)),
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if last := c.Errors.Last(); last != nil {
			fields = append(fields,
				zap.String("error_kind", agentgen.KindOf(last.Err).String()),
				zap.String("errors", c.Errors.String()),
			)
		}

		switch {
		case status >= 500:
			logger.Error("request failed", fields...)
		case status >= 400:
			logger.Warn("client error", fields...)
		case probePaths[path]:
			logger.Debug("probe", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
