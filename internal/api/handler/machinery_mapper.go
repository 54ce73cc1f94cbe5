package handler

import (
	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// Mapping between transport schemas and service inputs. Kept separate from
// the handler so the JSON contract and the service contract can evolve
// independently.

func toCreateMachineryInput(req createMachineryRequest) ports.CreateMachineryInput {
	return ports.CreateMachineryInput{
		Name:                     req.Name,
		Code:                     req.Code,
		Brand:                    req.Brand,
		Model:                    req.Model,
		SerialNumber:             req.SerialNumber,
		Year:                     req.Year,
		MachineryType:            domain.MachineryType(req.MachineryType),
		Status:                   domain.MachineryStatus(req.Status),
		CurrentLocation:          req.CurrentLocation,
		CurrentProject:           req.CurrentProject,
		Horometer:                req.Horometer,
		Odometer:                 req.Odometer,
		OperatorName:             req.OperatorName,
		OperatorID:               req.OperatorID,
		NextMaintenanceHours:     req.NextMaintenanceHours,
		MaintenanceIntervalHours: req.MaintenanceIntervalHours,
		LastMaintenanceDate:      req.LastMaintenanceDate,
		AcquisitionCost:          req.AcquisitionCost,
		HourlyRate:               req.HourlyRate,
		FuelConsumptionRate:      req.FuelConsumptionRate,
		Capacity:                 req.Capacity,
		EnginePower:              req.EnginePower,
		Weight:                   req.Weight,
		PlateNumber:              req.PlateNumber,
		IsAvailable:              req.IsAvailable,
	}
}

func toUpdateMachineryInput(req updateMachineryRequest) ports.UpdateMachineryInput {
	input := ports.UpdateMachineryInput{
		Name:                     req.Name,
		Code:                     req.Code,
		Brand:                    req.Brand,
		Model:                    req.Model,
		SerialNumber:             req.SerialNumber,
		Year:                     req.Year,
		CurrentLocation:          req.CurrentLocation,
		CurrentProject:           req.CurrentProject,
		Horometer:                req.Horometer,
		Odometer:                 req.Odometer,
		OperatorName:             req.OperatorName,
		OperatorID:               req.OperatorID,
		NextMaintenanceHours:     req.NextMaintenanceHours,
		MaintenanceIntervalHours: req.MaintenanceIntervalHours,
		LastMaintenanceDate:      req.LastMaintenanceDate,
		AcquisitionCost:          req.AcquisitionCost,
		HourlyRate:               req.HourlyRate,
		FuelConsumptionRate:      req.FuelConsumptionRate,
		Capacity:                 req.Capacity,
		EnginePower:              req.EnginePower,
		Weight:                   req.Weight,
		PlateNumber:              req.PlateNumber,
		IsAvailable:              req.IsAvailable,
	}
	if req.MachineryType != nil {
		t := domain.MachineryType(*req.MachineryType)
		input.MachineryType = &t
	}
	if req.Status != nil {
		s := domain.MachineryStatus(*req.Status)
		input.Status = &s
	}
	return input
}
