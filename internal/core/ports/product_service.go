package ports

import (
	"context"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// CreateProductInput carries the client-supplied product fields. Price and
// cost are non-negative by convention only; the schema layer does not reject
// negatives.
type CreateProductInput struct {
	Name         string
	SKU          string
	Description  string
	Category     string
	Price        float64
	Cost         float64
	StockMin     int
	StockMax     int
	StockCurrent int
}

// UpdateProductInput is a partial update: nil pointers mean "leave the field
// untouched".
type UpdateProductInput struct {
	Name         *string
	SKU          *string
	Description  *string
	Category     *string
	Price        *float64
	Cost         *float64
	StockMin     *int
	StockMax     *int
	StockCurrent *int
}

// ProductService defines tenant-scoped product operations.
type ProductService interface {
	Create(ctx context.Context, tenantID string, input CreateProductInput) (*domain.Product, error)
	// List returns the tenant's products, optionally restricted to a category.
	List(ctx context.Context, tenantID, category string, page Page) ([]*domain.Product, error)
	// ListLowStock returns products with stock_current <= stock_min.
	ListLowStock(ctx context.Context, tenantID string) ([]*domain.Product, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Product, error)
	Update(ctx context.Context, tenantID, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, tenantID, id string) error
}
