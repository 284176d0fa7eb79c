package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafaelleal24/ecommerce/internal/core/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func levelForStatus(statusCode int) logger.LogLevel {
	switch {
	case statusCode >= 500:
		return logger.LogLevelError
	case statusCode >= 400:
		return logger.LogLevelWarn
	default:
		return logger.LogLevelInfo
	}
}

func logHTTPRequest(ctx context.Context, c *gin.Context, requestID string, duration time.Duration) {
	attrs := map[string]any{
		"http.method":      c.Request.Method,
		"http.path":        c.Request.URL.Path,
		"http.route":       c.FullPath(),
		"http.status_code": c.Writer.Status(),
		"http.duration_ms": duration.Milliseconds(),
		"http.client_ip":   c.ClientIP(),
		"http.request_id":  requestID,
	}
	if c.Request.ContentLength > 0 {
		attrs["http.request_size"] = c.Request.ContentLength
	}
	if size := c.Writer.Size(); size > 0 {
		attrs["http.response_size"] = size
	}
	if len(c.Errors) > 0 {
		attrs["http.errors"] = c.Errors.String()
	}

	logger.Log(ctx, logger.LogEntry{
		Level:      levelForStatus(c.Writer.Status()),
		Message:    "HTTP Request",
		Attributes: attrs,
		Timestamp:  time.Now(),
	})
}

// RequestID returns the id assigned to the current request by LogRequest.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LogRequest emits one log entry per request and echoes an X-Request-ID
// header, generating one when the client did not send it.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		logHTTPRequest(c.Request.Context(), c, requestID, time.Since(start))
	}
}
