package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// StatsCache abstracts the short-lived per-tenant stats cache (Redis).
// Get returns (nil, nil) on a cache miss. Cache failures are never fatal:
// the service falls back to the store and logs a warning.
type StatsCache interface {
	Get(ctx context.Context, tenantID string) (*ports.MachineryStats, error)
	Set(ctx context.Context, tenantID string, stats *ports.MachineryStats) error
	Invalidate(ctx context.Context, tenantID string) error
}

// MachineryService implements tenant-scoped machinery CRUD and the
// maintenance health engine: aggregate stats and ranked maintenance alerts
// derived from horometer readings.
type MachineryService struct {
	repo   ports.MachineryRepository
	cache  StatsCache
	logger zerolog.Logger
}

// NewMachineryService returns a MachineryService. cache may be nil, in which
// case stats are always computed from the store.
func NewMachineryService(repo ports.MachineryRepository, cache StatsCache, logger zerolog.Logger) *MachineryService {
	return &MachineryService{repo: repo, cache: cache, logger: logger}
}

func (s *MachineryService) Create(ctx context.Context, tenantID string, input ports.CreateMachineryInput) (*domain.Machinery, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusOperational
	}
	interval := input.MaintenanceIntervalHours
	if interval <= 0 {
		interval = domain.DefaultMaintenanceInterval
	}
	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	machinery := &domain.Machinery{
		ID:                       newID("mach"),
		Name:                     input.Name,
		Code:                     input.Code,
		Brand:                    input.Brand,
		Model:                    input.Model,
		SerialNumber:             input.SerialNumber,
		Year:                     input.Year,
		MachineryType:            input.MachineryType,
		Status:                   status,
		CurrentLocation:          input.CurrentLocation,
		CurrentProject:           input.CurrentProject,
		Horometer:                input.Horometer,
		Odometer:                 input.Odometer,
		OperatorName:             input.OperatorName,
		OperatorID:               input.OperatorID,
		NextMaintenanceHours:     input.NextMaintenanceHours,
		MaintenanceIntervalHours: interval,
		LastMaintenanceDate:      input.LastMaintenanceDate,
		AcquisitionCost:          input.AcquisitionCost,
		HourlyRate:               input.HourlyRate,
		FuelConsumptionRate:      input.FuelConsumptionRate,
		Capacity:                 input.Capacity,
		EnginePower:              input.EnginePower,
		Weight:                   input.Weight,
		PlateNumber:              input.PlateNumber,
		IsAvailable:              available,
		IsActive:                 true,
		TenantID:                 tenantID,
	}

	if err := s.repo.Insert(ctx, machinery); err != nil {
		s.logger.Error().Err(err).Str("tenant_id", tenantID).Str("code", input.Code).Msg("failed to create machinery")
		return nil, err
	}

	s.invalidateStats(ctx, tenantID)
	s.logger.Info().Str("machinery_id", machinery.ID).Str("tenant_id", tenantID).Msg("machinery created")
	return machinery, nil
}

func (s *MachineryService) List(ctx context.Context, tenantID string, filter ports.MachineryFilter, page ports.Page) ([]*domain.Machinery, error) {
	return s.repo.List(ctx, tenantID, filter, page.Normalized())
}

func (s *MachineryService) Get(ctx context.Context, tenantID, id string) (*domain.Machinery, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *MachineryService) Update(ctx context.Context, tenantID, id string, input ports.UpdateMachineryInput) (*domain.Machinery, error) {
	machinery, err := s.repo.Update(ctx, tenantID, id, input)
	if err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, tenantID)
	return machinery, nil
}

// Delete soft-deletes: the row survives with is_active=false and disappears
// from every list, stat and alert query.
func (s *MachineryService) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.SoftDelete(ctx, tenantID, id); err != nil {
		return err
	}
	s.invalidateStats(ctx, tenantID)
	s.logger.Info().Str("machinery_id", id).Str("tenant_id", tenantID).Msg("machinery deactivated")
	return nil
}

// Stats returns aggregate counts over the tenant's active machinery, served
// from the cache when a fresh entry exists.
func (s *MachineryService) Stats(ctx context.Context, tenantID string) (*ports.MachineryStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tenantID)
		if err != nil {
			s.logger.Warn().Err(err).Str("tenant_id", tenantID).Msg("stats cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.Stats(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tenantID, stats); err != nil {
			s.logger.Warn().Err(err).Str("tenant_id", tenantID).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

// Alerts emits one alert per machine at or past its maintenance threshold,
// ordered most-overdue first with id as the tie-break. A machine overdue by
// more than 50 hours is critical; at exactly 50 it is still a warning.
func (s *MachineryService) Alerts(ctx context.Context, tenantID string) ([]ports.MachineryAlert, error) {
	due, err := s.repo.FindDueMaintenance(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	alerts := make([]ports.MachineryAlert, 0, len(due))
	for _, m := range due {
		alerts = append(alerts, ports.MachineryAlert{
			MachineryID:           m.ID,
			MachineryName:         m.Name,
			MachineryCode:         m.Code,
			CurrentHours:          m.Horometer,
			NextMaintenanceHours:  *m.NextMaintenanceHours,
			HoursUntilMaintenance: -m.OverdueHours(),
			AlertLevel:            m.AlertLevel(),
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		oi := alerts[i].CurrentHours - alerts[i].NextMaintenanceHours
		oj := alerts[j].CurrentHours - alerts[j].NextMaintenanceHours
		if oi != oj {
			return oi > oj
		}
		return alerts[i].MachineryID < alerts[j].MachineryID
	})

	return alerts, nil
}

// UpdateHorometer overwrites the horometer reading. There is no monotonicity
// check: a lower reading than the current one is accepted silently, which
// allows correcting a mis-entered value.
func (s *MachineryService) UpdateHorometer(ctx context.Context, tenantID, id string, horometer float64, operatorName string) (*domain.Machinery, error) {
	machinery, err := s.repo.UpdateHorometer(ctx, tenantID, id, horometer, operatorName)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, tenantID)
	s.logger.Info().
		Str("machinery_id", id).
		Str("tenant_id", tenantID).
		Float64("horometer", horometer).
		Msg("horometer updated")
	return machinery, nil
}

func (s *MachineryService) invalidateStats(ctx context.Context, tenantID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, tenantID); err != nil {
		s.logger.Warn().Err(err).Str("tenant_id", tenantID).Msg("stats cache invalidation failed")
	}
}
