package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) Insert(_ context.Context, c *domain.Customer) error {
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) List(_ context.Context, tenantID string, page ports.Page) ([]*domain.Customer, error) {
	var out []*domain.Customer
	for _, c := range r.customers {
		if c.TenantID == tenantID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if page.Skip > 0 && page.Skip < int64(len(out)) {
		out = out[page.Skip:]
	}
	if page.Limit > 0 && page.Limit < int64(len(out)) {
		out = out[:page.Limit]
	}
	return out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, tenantID, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, tenantID, id string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return nil, domain.ErrCustomerNotFound
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.Address != nil {
		c.Address = *input.Address
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, tenantID, id string) error {
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func str(v string) *string { return &v }

func TestCustomerService_Create(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	c, err := svc.Create(context.Background(), "tenant-1", ports.CreateCustomerInput{
		Name:  "Constructora Norte",
		Email: "contact@norte.example",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !strings.HasPrefix(c.ID, "cust-") {
		t.Fatalf("expected cust- id prefix, got %q", c.ID)
	}
	if c.TenantID != "tenant-1" {
		t.Fatalf("expected tenant id to be injected, got %q", c.TenantID)
	}
}

func TestCustomerService_Update_Partial(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())
	repo.customers["cust-1"] = &domain.Customer{ID: "cust-1", Name: "Old Name", Phone: "555-1234", TenantID: "tenant-1"}

	c, err := svc.Update(context.Background(), "tenant-1", "cust-1", ports.UpdateCustomerInput{Name: str("New Name")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if c.Name != "New Name" {
		t.Fatalf("expected name to change, got %q", c.Name)
	}
	if c.Phone != "555-1234" {
		t.Fatalf("omitted field must stay untouched, got %q", c.Phone)
	}
}

func TestCustomerService_CrossTenantIsNotFound(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())
	repo.customers["cust-1"] = &domain.Customer{ID: "cust-1", Name: "Hidden", TenantID: "tenant-1"}

	if _, err := svc.Get(context.Background(), "tenant-2", "cust-1"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound for cross-tenant get, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "tenant-2", "cust-1", ports.UpdateCustomerInput{Name: str("X")}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound for cross-tenant update, got %v", err)
	}
	if err := svc.Delete(context.Background(), "tenant-2", "cust-1"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound for cross-tenant delete, got %v", err)
	}

	// The row is still there for its owner.
	if _, err := svc.Get(context.Background(), "tenant-1", "cust-1"); err != nil {
		t.Fatalf("owner should still see the customer: %v", err)
	}
}

func TestCustomerService_Delete(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())
	repo.customers["cust-1"] = &domain.Customer{ID: "cust-1", Name: "Gone Soon", TenantID: "tenant-1"}

	if err := svc.Delete(context.Background(), "tenant-1", "cust-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), "tenant-1", "cust-1"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on second delete, got %v", err)
	}
}

func TestCustomerService_List_Pagination(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())
	for _, id := range []string{"cust-a", "cust-b", "cust-c"} {
		repo.customers[id] = &domain.Customer{ID: id, Name: id, TenantID: "tenant-1"}
	}

	page, err := svc.List(context.Background(), "tenant-1", ports.Page{Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page) != 1 || page[0].ID != "cust-b" {
		t.Fatalf("expected the middle row, got %+v", page)
	}
}
