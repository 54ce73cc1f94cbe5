package ports

import (
	"context"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// CreateCustomerInput carries the client-supplied customer fields. The owning
// tenant is never part of the payload; it is injected from the caller's
// session.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateCustomerInput is a partial update: nil pointers mean "leave the field
// untouched".
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// CustomerService defines tenant-scoped customer operations. An id belonging
// to another tenant behaves exactly like a nonexistent id.
type CustomerService interface {
	Create(ctx context.Context, tenantID string, input CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context, tenantID string, page Page) ([]*domain.Customer, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	Update(ctx context.Context, tenantID, id string, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, tenantID, id string) error
}
