package handler

import "time"

// Machinery request types. Enum fields validate against the domain's type and
// status sets; the tenant id never appears in a payload.

type createMachineryRequest struct {
	Name                     string     `json:"name" validate:"required"`
	Code                     string     `json:"code" validate:"required"`
	Brand                    string     `json:"brand,omitempty"`
	Model                    string     `json:"model,omitempty"`
	SerialNumber             string     `json:"serial_number,omitempty"`
	Year                     int        `json:"year,omitempty"`
	MachineryType            string     `json:"machinery_type" validate:"required,oneof=excavator loader bulldozer backhoe crane compactor grader dump_truck drill other"`
	Status                   string     `json:"status,omitempty" validate:"omitempty,oneof=operational in_maintenance out_of_service in_repair"`
	CurrentLocation          string     `json:"current_location,omitempty"`
	CurrentProject           string     `json:"current_project,omitempty"`
	Horometer                float64    `json:"horometer,omitempty"`
	Odometer                 float64    `json:"odometer,omitempty"`
	OperatorName             string     `json:"operator_name,omitempty"`
	OperatorID               string     `json:"operator_id,omitempty"`
	NextMaintenanceHours     *float64   `json:"next_maintenance_hours,omitempty"`
	MaintenanceIntervalHours float64    `json:"maintenance_interval_hours,omitempty"`
	LastMaintenanceDate      *time.Time `json:"last_maintenance_date,omitempty"`
	AcquisitionCost          float64    `json:"acquisition_cost,omitempty"`
	HourlyRate               float64    `json:"hourly_rate,omitempty"`
	FuelConsumptionRate      float64    `json:"fuel_consumption_rate,omitempty"`
	Capacity                 string     `json:"capacity,omitempty"`
	EnginePower              string     `json:"engine_power,omitempty"`
	Weight                   float64    `json:"weight,omitempty"`
	PlateNumber              string     `json:"plate_number,omitempty"`
	IsAvailable              *bool      `json:"is_available,omitempty"`
}

type updateMachineryRequest struct {
	Name                     *string    `json:"name,omitempty"`
	Code                     *string    `json:"code,omitempty"`
	Brand                    *string    `json:"brand,omitempty"`
	Model                    *string    `json:"model,omitempty"`
	SerialNumber             *string    `json:"serial_number,omitempty"`
	Year                     *int       `json:"year,omitempty"`
	MachineryType            *string    `json:"machinery_type,omitempty" validate:"omitempty,oneof=excavator loader bulldozer backhoe crane compactor grader dump_truck drill other"`
	Status                   *string    `json:"status,omitempty" validate:"omitempty,oneof=operational in_maintenance out_of_service in_repair"`
	CurrentLocation          *string    `json:"current_location,omitempty"`
	CurrentProject           *string    `json:"current_project,omitempty"`
	Horometer                *float64   `json:"horometer,omitempty"`
	Odometer                 *float64   `json:"odometer,omitempty"`
	OperatorName             *string    `json:"operator_name,omitempty"`
	OperatorID               *string    `json:"operator_id,omitempty"`
	NextMaintenanceHours     *float64   `json:"next_maintenance_hours,omitempty"`
	MaintenanceIntervalHours *float64   `json:"maintenance_interval_hours,omitempty"`
	LastMaintenanceDate      *time.Time `json:"last_maintenance_date,omitempty"`
	AcquisitionCost          *float64   `json:"acquisition_cost,omitempty"`
	HourlyRate               *float64   `json:"hourly_rate,omitempty"`
	FuelConsumptionRate      *float64   `json:"fuel_consumption_rate,omitempty"`
	Capacity                 *string    `json:"capacity,omitempty"`
	EnginePower              *string    `json:"engine_power,omitempty"`
	Weight                   *float64   `json:"weight,omitempty"`
	PlateNumber              *string    `json:"plate_number,omitempty"`
	IsAvailable              *bool      `json:"is_available,omitempty"`
}

type horometerRequest struct {
	Horometer    float64 `json:"horometer" validate:"gte=0"`
	OperatorName string  `json:"operator_name,omitempty"`
}
