package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/api/metrics"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// MachineryHandler handles HTTP requests for machinery operations, including
// the health endpoints (stats, alerts, horometer).
type MachineryHandler struct {
	service ports.MachineryService
}

func NewMachineryHandler(service ports.MachineryService) *MachineryHandler {
	return &MachineryHandler{service: service}
}

// Create handles POST /api/v1/machinery.
//
// @Summary      Create machinery
// @Tags         machinery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMachineryRequest  true  "Machinery details"
// @Success      201   {object}  domain.Machinery
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/machinery [post]
func (h *MachineryHandler) Create(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	var req createMachineryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	machinery, err := h.service.Create(c.Request().Context(), tenantID, toCreateMachineryInput(req))
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("machinery").Inc()
	return c.JSON(http.StatusCreated, machinery)
}

// List handles GET /api/v1/machinery. Filters are conjunctive;
// needs_maintenance is tri-state (absent, true, false).
//
// @Summary      List machinery
// @Tags         machinery
// @Produce      json
// @Security     BearerAuth
// @Param        skip               query     int     false  "Rows to skip"  default(0)
// @Param        limit              query     int     false  "Max rows"      default(100)
// @Param        machinery_type     query     string  false  "Filter by type"
// @Param        status             query     string  false  "Filter by status"
// @Param        needs_maintenance  query     bool    false  "Filter by maintenance-due state"
// @Success      200                {array}   domain.Machinery
// @Router       /api/v1/machinery [get]
func (h *MachineryHandler) List(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	filter := ports.MachineryFilter{
		MachineryType: c.QueryParam("machinery_type"),
		Status:        c.QueryParam("status"),
	}
	if raw := c.QueryParam("needs_maintenance"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "needs_maintenance must be a boolean")
		}
		filter.NeedsMaintenance = &v
	}

	machinery, err := h.service.List(c.Request().Context(), tenantID, filter, parsePage(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, machinery)
}

// Stats handles GET /api/v1/machinery/stats.
//
// @Summary      Machinery statistics
// @Tags         machinery
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.MachineryStats
// @Router       /api/v1/machinery/stats [get]
func (h *MachineryHandler) Stats(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Alerts handles GET /api/v1/machinery/alerts: one alert per machine due for
// maintenance, most-overdue first.
//
// @Summary      Maintenance alerts
// @Tags         machinery
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.MachineryAlert
// @Router       /api/v1/machinery/alerts [get]
func (h *MachineryHandler) Alerts(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	alerts, err := h.service.Alerts(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}

	for _, a := range alerts {
		metrics.MaintenanceAlertsTotal.WithLabelValues(a.AlertLevel).Inc()
	}
	return c.JSON(http.StatusOK, alerts)
}

// Get handles GET /api/v1/machinery/:id.
func (h *MachineryHandler) Get(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	machinery, err := h.service.Get(c.Request().Context(), tenantID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, machinery)
}

// Update handles PUT /api/v1/machinery/:id. Only fields present in the
// payload change.
func (h *MachineryHandler) Update(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	var req updateMachineryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	machinery, err := h.service.Update(c.Request().Context(), tenantID, c.Param("id"), toUpdateMachineryInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, machinery)
}

// UpdateHorometer handles PATCH /api/v1/machinery/:id/horometer.
//
// @Summary      Update horometer reading
// @Tags         machinery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Machinery id"
// @Param        body  body      horometerRequest  true  "New reading"
// @Success      200   {object}  domain.Machinery
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/machinery/{id}/horometer [patch]
func (h *MachineryHandler) UpdateHorometer(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	var req horometerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	machinery, err := h.service.UpdateHorometer(c.Request().Context(), tenantID, c.Param("id"), req.Horometer, req.OperatorName)
	if err != nil {
		return err
	}

	metrics.HorometerUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, machinery)
}

// Delete handles DELETE /api/v1/machinery/:id (soft delete).
func (h *MachineryHandler) Delete(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), tenantID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "machinery deleted"})
}
