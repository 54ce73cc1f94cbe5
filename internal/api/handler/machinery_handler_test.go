package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

type stubMachineryService struct {
	createFn          func(ctx context.Context, tenantID string, input ports.CreateMachineryInput) (*domain.Machinery, error)
	listFn            func(ctx context.Context, tenantID string, filter ports.MachineryFilter, page ports.Page) ([]*domain.Machinery, error)
	statsFn           func(ctx context.Context, tenantID string) (*ports.MachineryStats, error)
	alertsFn          func(ctx context.Context, tenantID string) ([]ports.MachineryAlert, error)
	updateHorometerFn func(ctx context.Context, tenantID, id string, horometer float64, operatorName string) (*domain.Machinery, error)
}

func (s *stubMachineryService) Create(ctx context.Context, tenantID string, input ports.CreateMachineryInput) (*domain.Machinery, error) {
	return s.createFn(ctx, tenantID, input)
}

func (s *stubMachineryService) List(ctx context.Context, tenantID string, filter ports.MachineryFilter, page ports.Page) ([]*domain.Machinery, error) {
	return s.listFn(ctx, tenantID, filter, page)
}

func (s *stubMachineryService) Get(context.Context, string, string) (*domain.Machinery, error) {
	return nil, domain.ErrMachineryNotFound
}

func (s *stubMachineryService) Update(context.Context, string, string, ports.UpdateMachineryInput) (*domain.Machinery, error) {
	return nil, domain.ErrMachineryNotFound
}

func (s *stubMachineryService) Delete(context.Context, string, string) error {
	return domain.ErrMachineryNotFound
}

func (s *stubMachineryService) Stats(ctx context.Context, tenantID string) (*ports.MachineryStats, error) {
	return s.statsFn(ctx, tenantID)
}

func (s *stubMachineryService) Alerts(ctx context.Context, tenantID string) ([]ports.MachineryAlert, error) {
	return s.alertsFn(ctx, tenantID)
}

func (s *stubMachineryService) UpdateHorometer(ctx context.Context, tenantID, id string, horometer float64, operatorName string) (*domain.Machinery, error) {
	return s.updateHorometerFn(ctx, tenantID, id, horometer, operatorName)
}

func TestMachineryHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubMachineryService{
		createFn: func(_ context.Context, tenantID string, input ports.CreateMachineryInput) (*domain.Machinery, error) {
			if tenantID != "tenant-1" {
				t.Fatalf("unexpected tenant: %s", tenantID)
			}
			if input.MachineryType != domain.TypeExcavator {
				t.Fatalf("unexpected type: %s", input.MachineryType)
			}
			return &domain.Machinery{ID: "mach-00000001", Name: input.Name, Code: input.Code, TenantID: tenantID}, nil
		},
	}
	handler := NewMachineryHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/api/v1/machinery",
		`{"name":"CAT 320","code":"EXC-001","machinery_type":"excavator"}`)
	c.Set("tenant_id", "tenant-1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestMachineryHandler_Create_InvalidType(t *testing.T) {
	e := newTestEcho()
	stub := &stubMachineryService{
		createFn: func(context.Context, string, ports.CreateMachineryInput) (*domain.Machinery, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMachineryHandler(stub)

	c, _ := newTestContext(e, http.MethodPost, "/api/v1/machinery",
		`{"name":"Mystery","code":"X-1","machinery_type":"hovercraft"}`)
	c.Set("tenant_id", "tenant-1")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %v", err)
	}
}

func TestMachineryHandler_Create_NoTenant(t *testing.T) {
	e := newTestEcho()
	handler := NewMachineryHandler(&stubMachineryService{})

	c, _ := newTestContext(e, http.MethodPost, "/api/v1/machinery",
		`{"name":"CAT 320","code":"EXC-001","machinery_type":"excavator"}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without tenant in context, got %v", err)
	}
}

func TestMachineryHandler_List_NeedsMaintenanceFilter(t *testing.T) {
	e := newTestEcho()
	stub := &stubMachineryService{
		listFn: func(_ context.Context, _ string, filter ports.MachineryFilter, _ ports.Page) ([]*domain.Machinery, error) {
			if filter.NeedsMaintenance == nil || !*filter.NeedsMaintenance {
				t.Fatalf("expected needs_maintenance=true, got %+v", filter.NeedsMaintenance)
			}
			return nil, nil
		},
	}
	handler := NewMachineryHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/api/v1/machinery?needs_maintenance=true", "")
	c.Set("tenant_id", "tenant-1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMachineryHandler_List_BadMaintenanceFilter(t *testing.T) {
	e := newTestEcho()
	handler := NewMachineryHandler(&stubMachineryService{})

	c, _ := newTestContext(e, http.MethodGet, "/api/v1/machinery?needs_maintenance=maybe", "")
	c.Set("tenant_id", "tenant-1")

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-boolean filter, got %v", err)
	}
}

func TestMachineryHandler_Stats(t *testing.T) {
	e := newTestEcho()
	stub := &stubMachineryService{
		statsFn: func(_ context.Context, tenantID string) (*ports.MachineryStats, error) {
			if tenantID != "tenant-1" {
				t.Fatalf("unexpected tenant: %s", tenantID)
			}
			return &ports.MachineryStats{Total: 3, Operational: 2, InMaintenance: 1, NeedsMaintenance: 1, TotalHours: 1000}, nil
		},
	}
	handler := NewMachineryHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/api/v1/machinery/stats", "")
	c.Set("tenant_id", "tenant-1")

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(3) || resp["total_hours"] != float64(1000) {
		t.Fatalf("unexpected stats payload: %+v", resp)
	}
}

func TestMachineryHandler_Alerts(t *testing.T) {
	e := newTestEcho()
	stub := &stubMachineryService{
		alertsFn: func(context.Context, string) ([]ports.MachineryAlert, error) {
			return []ports.MachineryAlert{
				{MachineryID: "mach-1", CurrentHours: 475, NextMaintenanceHours: 400, HoursUntilMaintenance: -75, AlertLevel: domain.AlertCritical},
			}, nil
		},
	}
	handler := NewMachineryHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/api/v1/machinery/alerts", "")
	c.Set("tenant_id", "tenant-1")

	if err := handler.Alerts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["alert_level"] != domain.AlertCritical {
		t.Fatalf("unexpected alerts payload: %+v", resp)
	}
	if resp[0]["hours_until_maintenance"] != float64(-75) {
		t.Fatalf("expected negative hours for overdue machine: %+v", resp[0])
	}
}

func TestMachineryHandler_UpdateHorometer(t *testing.T) {
	e := newTestEcho()
	stub := &stubMachineryService{
		updateHorometerFn: func(_ context.Context, tenantID, id string, horometer float64, operatorName string) (*domain.Machinery, error) {
			if id != "mach-1" || horometer != 1250.5 || operatorName != "Pedro" {
				t.Fatalf("unexpected args: %s %v %s", id, horometer, operatorName)
			}
			return &domain.Machinery{ID: id, Horometer: horometer, OperatorName: operatorName, TenantID: tenantID}, nil
		},
	}
	handler := NewMachineryHandler(stub)

	c, rec := newTestContext(e, http.MethodPatch, "/api/v1/machinery/mach-1/horometer",
		`{"horometer":1250.5,"operator_name":"Pedro"}`)
	c.Set("tenant_id", "tenant-1")
	c.SetParamNames("id")
	c.SetParamValues("mach-1")

	if err := handler.UpdateHorometer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMachineryHandler_UpdateHorometer_Negative(t *testing.T) {
	e := newTestEcho()
	handler := NewMachineryHandler(&stubMachineryService{})

	c, _ := newTestContext(e, http.MethodPatch, "/api/v1/machinery/mach-1/horometer",
		`{"horometer":-5}`)
	c.Set("tenant_id", "tenant-1")
	c.SetParamNames("id")
	c.SetParamValues("mach-1")

	err := handler.UpdateHorometer(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative horometer, got %v", err)
	}
}
