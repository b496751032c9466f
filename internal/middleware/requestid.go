package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/pkg/logger"
)

// RequestIDMiddleware tags every request with an ID and stores a
// logger carrying it where logger.FromContext expects one. An inbound
// X-Request-ID header is kept so callers can correlate their own IDs.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(logger.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response().Header().Set(logger.HeaderRequestID, requestID)
		c.Set(logger.ContextKeyRequestID, requestID)

		log := logger.GetLogger().With(zap.String(logger.ContextKeyRequestID, requestID))
		c.Set(logger.ContextKeyLogger, log)

		return next(c)
	}
}
