package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/core/ports"
)

// parsePage reads the skip/limit query parameters. Unparseable or missing
// values fall back to skip=0, limit=100. The limit is not capped.
func parsePage(c echo.Context) ports.Page {
	page := ports.Page{Limit: ports.DefaultPageLimit}
	if v, err := strconv.ParseInt(c.QueryParam("skip"), 10, 64); err == nil && v >= 0 {
		page.Skip = v
	}
	if v, err := strconv.ParseInt(c.QueryParam("limit"), 10, 64); err == nil && v > 0 {
		page.Limit = v
	}
	return page
}
