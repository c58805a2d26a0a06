package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// MiddlewareConfig tunes the request logger.
type MiddlewareConfig struct {
	// SkipPaths are matched exactly and logged at debug only.
	SkipPaths []string
}

// GinMiddleware assigns a request id and writes one access log line
// per request with masked headers.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, requestID)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		log := FromContext(c.Request.Context()).With(
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", elapsed),
			zap.Any("headers", MaskHeaders(c.Request.Header)),
		)
		if _, ok := skip[c.Request.URL.Path]; ok {
			log.Debug("request")
			return
		}
		if c.Writer.Status() >= 500 {
			log.Error("request")
			return
		}
		log.Info("request")
	}
}
