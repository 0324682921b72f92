package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/creditco/cupa/internal/pkg/jwt"
	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/internal/utils"
)

const identityUserKey = "identity_user"

// IdentityMiddleware authenticates back-office callers by bearer token. A
// request without an Authorization header passes through unauthenticated;
// a present but invalid token is rejected outright.
func IdentityMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			user, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(identityUserKey, user)
			return next(c)
		}
	}
}

// AdminOnly rejects any caller that is not an admin identity.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(identityUserKey).(*models.User)
			if !ok || user == nil {
				return utils.UnauthorizedResponse(c, "")
			}
			if !user.Admin {
				return utils.ForbiddenResponse(c, "Admin access required")
			}
			return next(c)
		}
	}
}
