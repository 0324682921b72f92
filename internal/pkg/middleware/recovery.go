package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/creditco/cupa/internal/utils"
)

// RecoveryMiddleware recovers from handler panics, logs the stack and turns
// the failure into a generic 500 so the connection is never dropped mid
// response.
func RecoveryMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.WithFields(logrus.Fields{
						"panic":  fmt.Sprintf("%v", r),
						"method": c.Request().Method,
						"path":   c.Request().URL.Path,
						"stack":  string(debug.Stack()),
					}).Error("Recovered from panic")

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "")
					}
				}
			}()

			return next(c)
		}
	}
}
