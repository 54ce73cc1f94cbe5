package ports

import (
	"context"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// CustomerRepository defines persistence for customers. Every query is
// filtered by tenant id; a cross-tenant id yields domain.ErrCustomerNotFound.
type CustomerRepository interface {
	Insert(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context, tenantID string, page Page) ([]*domain.Customer, error)
	FindByID(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	// Update applies the non-nil fields of input and returns the updated row.
	Update(ctx context.Context, tenantID, id string, input UpdateCustomerInput) (*domain.Customer, error)
	// Delete removes the row. Deleting a missing or cross-tenant id returns
	// domain.ErrCustomerNotFound.
	Delete(ctx context.Context, tenantID, id string) error
}
