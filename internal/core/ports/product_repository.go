package ports

import (
	"context"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// ProductRepository defines persistence for products. Every query is filtered
// by tenant id. SKU is globally unique; inserting or updating to a taken SKU
// returns domain.ErrDuplicateSKU.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) error
	List(ctx context.Context, tenantID, category string, page Page) ([]*domain.Product, error)
	ListLowStock(ctx context.Context, tenantID string) ([]*domain.Product, error)
	FindByID(ctx context.Context, tenantID, id string) (*domain.Product, error)
	Update(ctx context.Context, tenantID, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, tenantID, id string) error
}
