package ports

import (
	"context"
	"time"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// CreateMachineryInput carries the client-supplied machinery fields. The
// owning tenant is injected from the caller's session. Status defaults to
// operational and the maintenance interval to 250 hours when unset.
type CreateMachineryInput struct {
	Name                     string
	Code                     string
	Brand                    string
	Model                    string
	SerialNumber             string
	Year                     int
	MachineryType            domain.MachineryType
	Status                   domain.MachineryStatus
	CurrentLocation          string
	CurrentProject           string
	Horometer                float64
	Odometer                 float64
	OperatorName             string
	OperatorID               string
	NextMaintenanceHours     *float64
	MaintenanceIntervalHours float64
	LastMaintenanceDate      *time.Time
	AcquisitionCost          float64
	HourlyRate               float64
	FuelConsumptionRate      float64
	Capacity                 string
	EnginePower              string
	Weight                   float64
	PlateNumber              string
	IsAvailable              *bool
}

// UpdateMachineryInput is a partial update: nil pointers mean "leave the
// field untouched".
type UpdateMachineryInput struct {
	Name                     *string
	Code                     *string
	Brand                    *string
	Model                    *string
	SerialNumber             *string
	Year                     *int
	MachineryType            *domain.MachineryType
	Status                   *domain.MachineryStatus
	CurrentLocation          *string
	CurrentProject           *string
	Horometer                *float64
	Odometer                 *float64
	OperatorName             *string
	OperatorID               *string
	NextMaintenanceHours     *float64
	MaintenanceIntervalHours *float64
	LastMaintenanceDate      *time.Time
	AcquisitionCost          *float64
	HourlyRate               *float64
	FuelConsumptionRate      *float64
	Capacity                 *string
	EnginePower              *string
	Weight                   *float64
	PlateNumber              *string
	IsAvailable              *bool
}

// MachineryFilter narrows machinery list queries. All filters are conjunctive
// and always combined with the tenant scope and is_active=true.
type MachineryFilter struct {
	MachineryType string
	Status        string
	// NeedsMaintenance: nil = no filter, true = only machines at or past
	// their maintenance threshold, false = only machines below it (or
	// without a threshold).
	NeedsMaintenance *bool
}

// MachineryStats aggregates a tenant's active machinery.
type MachineryStats struct {
	Total            int64   `json:"total"`
	Operational      int64   `json:"operational"`
	InMaintenance    int64   `json:"in_maintenance"`
	NeedsMaintenance int64   `json:"needs_maintenance"`
	TotalHours       float64 `json:"total_hours"`
}

// MachineryAlert flags one machine due for maintenance.
// HoursUntilMaintenance is negative when the machine is overdue.
type MachineryAlert struct {
	MachineryID           string  `json:"machinery_id"`
	MachineryName         string  `json:"machinery_name"`
	MachineryCode         string  `json:"machinery_code"`
	CurrentHours          float64 `json:"current_hours"`
	NextMaintenanceHours  float64 `json:"next_maintenance_hours"`
	HoursUntilMaintenance float64 `json:"hours_until_maintenance"`
	AlertLevel            string  `json:"alert_level"`
}

// MachineryService defines tenant-scoped machinery operations and the
// maintenance health engine.
type MachineryService interface {
	Create(ctx context.Context, tenantID string, input CreateMachineryInput) (*domain.Machinery, error)
	List(ctx context.Context, tenantID string, filter MachineryFilter, page Page) ([]*domain.Machinery, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Machinery, error)
	Update(ctx context.Context, tenantID, id string, input UpdateMachineryInput) (*domain.Machinery, error)
	// Delete soft-deletes: the row stays in storage with is_active=false.
	Delete(ctx context.Context, tenantID, id string) error
	Stats(ctx context.Context, tenantID string) (*MachineryStats, error)
	// Alerts returns one alert per machine due for maintenance, ordered by
	// overdue hours descending with id as the tie-break.
	Alerts(ctx context.Context, tenantID string) ([]MachineryAlert, error)
	// UpdateHorometer overwrites the horometer reading unconditionally (a
	// lower value than the current one is accepted) and optionally updates
	// the operator name.
	UpdateHorometer(ctx context.Context, tenantID, id string, horometer float64, operatorName string) (*domain.Machinery, error)
}
