package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pfrederiksen/dtu-calendar/internal/logger"
)

// Logger logs one line per request and records request counts and latency
// in metrics. metrics may be nil.
func Logger(log *zap.Logger, metrics *logger.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", statusCode),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
			zap.String("request_id", GetRequestID(c)),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		if metrics != nil {
			metrics.IncrCounter("http.requests")
			metrics.RecordTiming("http.request", latency)
			if statusCode >= 500 {
				metrics.IncrCounter("http.errors")
			}
		}

		if statusCode >= 500 {
			log.Error("request failed", fields...)
		} else if statusCode >= 400 {
			log.Warn("client error", fields...)
		} else {
			log.Info("request completed", fields...)
		}
	}
}
