package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/api/metrics"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type createCustomerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email,omitempty"   validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type updateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"   validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Create handles POST /api/v1/customers.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Create(c.Request().Context(), tenantID, ports.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("customer").Inc()
	return c.JSON(http.StatusCreated, customer)
}

// List handles GET /api/v1/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Rows to skip"    default(0)
// @Param        limit  query     int  false  "Max rows"        default(100)
// @Success      200    {array}   domain.Customer
// @Router       /api/v1/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	customers, err := h.service.List(c.Request().Context(), tenantID, parsePage(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get handles GET /api/v1/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	customer, err := h.service.Get(c.Request().Context(), tenantID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update handles PUT /api/v1/customers/:id. Only fields present in the
// payload change; omitted fields keep their stored values.
func (h *CustomerHandler) Update(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Update(c.Request().Context(), tenantID, c.Param("id"), ports.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /api/v1/customers/:id (hard delete).
func (h *CustomerHandler) Delete(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), tenantID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "customer deleted"})
}
