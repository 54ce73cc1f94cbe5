package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// ctxTenant extracts the tenant id injected by the Auth middleware. A request
// that reached a protected handler without a tenant id carries an unusable
// identity and is rejected with 401 before any service call.
func ctxTenant(c echo.Context) (string, error) {
	tenantID, _ := c.Get("tenant_id").(string)
	if tenantID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return tenantID, nil
}

// ctxUser extracts the full user injected by the Auth middleware.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
