package ports

import (
	"context"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// MachineryRepository defines persistence for machinery. Every query is
// filtered by tenant id and is_active=true; soft-deleted rows are invisible
// to all reads. Code is globally unique; a taken code returns
// domain.ErrDuplicateCode.
type MachineryRepository interface {
	Insert(ctx context.Context, m *domain.Machinery) error
	List(ctx context.Context, tenantID string, filter MachineryFilter, page Page) ([]*domain.Machinery, error)
	FindByID(ctx context.Context, tenantID, id string) (*domain.Machinery, error)
	Update(ctx context.Context, tenantID, id string, input UpdateMachineryInput) (*domain.Machinery, error)
	UpdateHorometer(ctx context.Context, tenantID, id string, horometer float64, operatorName string) (*domain.Machinery, error)
	// SoftDelete sets is_active=false. A missing, cross-tenant or already
	// deleted id returns domain.ErrMachineryNotFound.
	SoftDelete(ctx context.Context, tenantID, id string) error
	// Stats aggregates counts and total horometer hours over the tenant's
	// active machinery in a single round-trip.
	Stats(ctx context.Context, tenantID string) (*MachineryStats, error)
	// FindDueMaintenance returns active machines at or past their threshold.
	FindDueMaintenance(ctx context.Context, tenantID string) ([]*domain.Machinery, error)
}
