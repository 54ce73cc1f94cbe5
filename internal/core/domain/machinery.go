package domain

import "time"

// MachineryType classifies a piece of heavy equipment.
type MachineryType string

const (
	TypeExcavator MachineryType = "excavator"
	TypeLoader    MachineryType = "loader"
	TypeBulldozer MachineryType = "bulldozer"
	TypeBackhoe   MachineryType = "backhoe"
	TypeCrane     MachineryType = "crane"
	TypeCompactor MachineryType = "compactor"
	TypeGrader    MachineryType = "grader"
	TypeDumpTruck MachineryType = "dump_truck"
	TypeDrill     MachineryType = "drill"
	TypeOther     MachineryType = "other"
)

// MachineryStatus is the operational state of a machine.
type MachineryStatus string

const (
	StatusOperational   MachineryStatus = "operational"
	StatusInMaintenance MachineryStatus = "in_maintenance"
	StatusOutOfService  MachineryStatus = "out_of_service"
	StatusInRepair      MachineryStatus = "in_repair"
)

// Alert severity levels for maintenance alerts.
const (
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

// criticalOverdueHours is how many hours past the maintenance threshold a
// machine must be before its alert escalates from warning to critical.
// Exactly 50 hours overdue is still a warning.
const criticalOverdueHours = 50.0

// Machinery is a piece of heavy equipment. Code is unique across all tenants,
// not per tenant. Machinery is soft-deleted: IsActive flips to false and the
// row stays in storage, excluded from all list, stat and alert queries.
type Machinery struct {
	ID                       string          `json:"id" bson:"_id"`
	Name                     string          `json:"name" bson:"name"`
	Code                     string          `json:"code" bson:"code"`
	Brand                    string          `json:"brand,omitempty" bson:"brand,omitempty"`
	Model                    string          `json:"model,omitempty" bson:"model,omitempty"`
	SerialNumber             string          `json:"serial_number,omitempty" bson:"serial_number,omitempty"`
	Year                     int             `json:"year,omitempty" bson:"year,omitempty"`
	MachineryType            MachineryType   `json:"machinery_type" bson:"machinery_type"`
	Status                   MachineryStatus `json:"status" bson:"status"`
	CurrentLocation          string          `json:"current_location,omitempty" bson:"current_location,omitempty"`
	CurrentProject           string          `json:"current_project,omitempty" bson:"current_project,omitempty"`
	Horometer                float64         `json:"horometer" bson:"horometer"`
	Odometer                 float64         `json:"odometer" bson:"odometer"`
	OperatorName             string          `json:"operator_name,omitempty" bson:"operator_name,omitempty"`
	OperatorID               string          `json:"operator_id,omitempty" bson:"operator_id,omitempty"`
	NextMaintenanceHours     *float64        `json:"next_maintenance_hours,omitempty" bson:"next_maintenance_hours,omitempty"`
	MaintenanceIntervalHours float64         `json:"maintenance_interval_hours" bson:"maintenance_interval_hours"`
	LastMaintenanceDate      *time.Time      `json:"last_maintenance_date,omitempty" bson:"last_maintenance_date,omitempty"`
	AcquisitionCost          float64         `json:"acquisition_cost" bson:"acquisition_cost"`
	HourlyRate               float64         `json:"hourly_rate" bson:"hourly_rate"`
	FuelConsumptionRate      float64         `json:"fuel_consumption_rate" bson:"fuel_consumption_rate"`
	Capacity                 string          `json:"capacity,omitempty" bson:"capacity,omitempty"`
	EnginePower              string          `json:"engine_power,omitempty" bson:"engine_power,omitempty"`
	Weight                   float64         `json:"weight,omitempty" bson:"weight,omitempty"`
	PlateNumber              string          `json:"plate_number,omitempty" bson:"plate_number,omitempty"`
	IsAvailable              bool            `json:"is_available" bson:"is_available"`
	IsActive                 bool            `json:"is_active" bson:"is_active"`
	TenantID                 string          `json:"tenant_id" bson:"tenant_id"`
}

// DefaultMaintenanceInterval is applied when a machine is created without an
// explicit maintenance interval.
const DefaultMaintenanceInterval = 250.0

// validTypes and validStatuses back the IsValid helpers used by the schema layer.
var validTypes = map[MachineryType]struct{}{
	TypeExcavator: {}, TypeLoader: {}, TypeBulldozer: {}, TypeBackhoe: {},
	TypeCrane: {}, TypeCompactor: {}, TypeGrader: {}, TypeDumpTruck: {},
	TypeDrill: {}, TypeOther: {},
}

var validStatuses = map[MachineryStatus]struct{}{
	StatusOperational: {}, StatusInMaintenance: {}, StatusOutOfService: {}, StatusInRepair: {},
}

func (t MachineryType) IsValid() bool {
	_, ok := validTypes[t]
	return ok
}

func (s MachineryStatus) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// MaintenanceDue reports whether the machine has reached its next-maintenance
// threshold. Machines without a threshold are never due.
func (m *Machinery) MaintenanceDue() bool {
	return m.NextMaintenanceHours != nil && m.Horometer >= *m.NextMaintenanceHours
}

// OverdueHours is how far past the threshold the horometer has run. Only
// meaningful when MaintenanceDue is true.
func (m *Machinery) OverdueHours() float64 {
	if m.NextMaintenanceHours == nil {
		return 0
	}
	return m.Horometer - *m.NextMaintenanceHours
}

// AlertLevel classifies an overdue machine: critical when overdue by more
// than criticalOverdueHours, warning otherwise.
func (m *Machinery) AlertLevel() string {
	if m.OverdueHours() > criticalOverdueHours {
		return AlertCritical
	}
	return AlertWarning
}
