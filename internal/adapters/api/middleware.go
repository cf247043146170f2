package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"weatherlookup.app/internal/ports"
)

const (
	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// scopedLogger is a logger that can stamp fields on every record it writes
type scopedLogger interface {
	With(fields ...ports.Field) ports.Logger
}

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLoggerMiddleware scopes a logger to the request id for the handlers
// downstream and logs one line per request after it completes.
// It must run after RequestIDMiddleware.
func RequestLoggerMiddleware(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := withRequestID(logger, requestID(c))
		c.Set(loggerKey, reqLogger)
		c.Next()

		reqLogger.Info("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}

func withRequestID(logger ports.Logger, id string) ports.Logger {
	if scoped, ok := logger.(scopedLogger); ok {
		return scoped.With(ports.F(requestIDKey, id))
	}
	return logger
}

// requestLogger returns the logger scoped by RequestLoggerMiddleware, or
// fallback when the request did not pass through it
func requestLogger(c *gin.Context, fallback ports.Logger) ports.Logger {
	if value, ok := c.Get(loggerKey); ok {
		if logger, ok := value.(ports.Logger); ok {
			return logger
		}
	}
	return fallback
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
