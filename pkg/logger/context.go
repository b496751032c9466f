package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Context keys and header shared with the request-ID middleware, so
// both sides read and write the same slots.
const (
	ContextKeyLogger    = "logger"
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
)

// FromContext returns the request-scoped logger the middleware stored
// on the context. When the middleware did not run it falls back to the
// global logger tagged with whatever request ID it can find.
func FromContext(c echo.Context) *zap.Logger {
	if log, ok := c.Get(ContextKeyLogger).(*zap.Logger); ok {
		return log
	}

	requestID, ok := c.Get(ContextKeyRequestID).(string)
	if !ok {
		requestID = c.Request().Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = "unknown"
		}
	}
	return GetLogger().With(zap.String(ContextKeyRequestID, requestID))
}
