package ports

import (
	"context"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Email lookups are
// global, not tenant-scoped: email is unique across all tenants.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// CreateWithTenant persists a new tenant and its first user atomically:
	// either both rows exist afterwards or neither does.
	CreateWithTenant(ctx context.Context, tenant *domain.Tenant, user *domain.User) error
}

// TenantRepository defines persistence for tenants.
type TenantRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)
}
