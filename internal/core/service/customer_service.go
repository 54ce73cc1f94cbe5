package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// CustomerService implements tenant-scoped customer CRUD.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, tenantID string, input ports.CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:       newID("cust"),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		TenantID: tenantID,
	}

	if err := s.repo.Insert(ctx, customer); err != nil {
		s.logger.Error().Err(err).Str("tenant_id", tenantID).Msg("failed to create customer")
		return nil, err
	}

	s.logger.Info().Str("customer_id", customer.ID).Str("tenant_id", tenantID).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, tenantID string, page ports.Page) ([]*domain.Customer, error) {
	return s.repo.List(ctx, tenantID, page.Normalized())
}

func (s *CustomerService) Get(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *CustomerService) Update(ctx context.Context, tenantID, id string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	return s.repo.Update(ctx, tenantID, id, input)
}

func (s *CustomerService) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	s.logger.Info().Str("customer_id", id).Str("tenant_id", tenantID).Msg("customer deleted")
	return nil
}
