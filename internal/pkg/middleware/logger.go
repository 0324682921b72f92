package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			principal := "anonymous"
			if rc := GetRequestContext(c); rc != nil {
				switch {
				case rc.User != nil:
					principal = "user:" + rc.User.Login
				case rc.Merchant != nil:
					principal = "merchant:" + rc.Merchant.MerchantID
				}
			}

			entry := logger.WithFields(logrus.Fields{
				"status":     statusCode,
				"latency":    latency.String(),
				"client_ip":  c.RealIP(),
				"method":     c.Request().Method,
				"path":       path,
				"principal":  principal,
				"request_id": c.Response().Header().Get("X-Request-ID"),
			})

			if statusCode >= 500 {
				entry.Error("Server error")
			} else if statusCode >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set("X-Request-ID", requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}
