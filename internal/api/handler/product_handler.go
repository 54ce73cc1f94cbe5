package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/api/metrics"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	SKU          string  `json:"sku"  validate:"required"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"`
	Price        float64 `json:"price"`
	Cost         float64 `json:"cost"`
	StockMin     int     `json:"stock_min"`
	StockMax     int     `json:"stock_max"`
	StockCurrent int     `json:"stock_current"`
}

type updateProductRequest struct {
	Name         *string  `json:"name,omitempty"`
	SKU          *string  `json:"sku,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	StockMin     *int     `json:"stock_min,omitempty"`
	StockMax     *int     `json:"stock_max,omitempty"`
	StockCurrent *int     `json:"stock_current,omitempty"`
}

// Create handles POST /api/v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), tenantID, ports.CreateProductInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Cost:         req.Cost,
		StockMin:     req.StockMin,
		StockMax:     req.StockMax,
		StockCurrent: req.StockCurrent,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("product").Inc()
	return c.JSON(http.StatusCreated, product)
}

// List handles GET /api/v1/products with an optional category filter.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        skip      query     int     false  "Rows to skip"  default(0)
// @Param        limit     query     int     false  "Max rows"      default(100)
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {array}   domain.Product
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), tenantID, c.QueryParam("category"), parsePage(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListLowStock handles GET /api/v1/products/low-stock: products at or below
// their minimum stock level.
//
// @Summary      List low-stock products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /api/v1/products/low-stock [get]
func (h *ProductHandler) ListLowStock(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	products, err := h.service.ListLowStock(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), tenantID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.service.Update(c.Request().Context(), tenantID, c.Param("id"), ports.UpdateProductInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Cost:         req.Cost,
		StockMin:     req.StockMin,
		StockMax:     req.StockMax,
		StockCurrent: req.StockCurrent,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/v1/products/:id (hard delete).
func (h *ProductHandler) Delete(c echo.Context) error {
	tenantID, err := ctxTenant(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), tenantID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}
