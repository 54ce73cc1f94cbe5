package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/core/ports"
)

// Auth validates the bearer token and injects the resolved user into the
// request context. Verification is delegated to the auth service so every
// failure mode (missing header, bad signature, expired token, unknown or
// inactive subject) collapses into the same 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.VerifyToken(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user", user)
			c.Set("user_id", user.ID)
			c.Set("tenant_id", user.TenantID)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}
