package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EchoMiddleware creates request logging middleware for Echo
func EchoMiddleware(logger *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get user ID if available
			userID := c.Get("user_id")
			userIDStr := "anonymous"
			if userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			fields := logrus.Fields{
				"status":     statusCode,
				"method":     method,
				"path":       path,
				"client_ip":  clientIP,
				"latency_ms": latency.Milliseconds(),
				"user_id":    userIDStr,
				"request_id": requestID,
			}

			if err != nil {
				fields["error"] = err.Error()
				logger.WithFields(fields).Error("request failed")
				return err
			}

			switch {
			case statusCode >= 500:
				logger.WithFields(fields).Error("request completed")
			case statusCode >= 400:
				logger.WithFields(fields).Warn("request completed")
			default:
				logger.WithFields(fields).Info("request completed")
			}

			return nil
		}
	}
}
