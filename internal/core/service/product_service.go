package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// ProductService implements tenant-scoped product CRUD and low-stock listing.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, tenantID string, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		ID:           newID("prod"),
		Name:         input.Name,
		SKU:          input.SKU,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		Cost:         input.Cost,
		StockMin:     input.StockMin,
		StockMax:     input.StockMax,
		StockCurrent: input.StockCurrent,
		TenantID:     tenantID,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("tenant_id", tenantID).Str("sku", input.SKU).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("tenant_id", tenantID).Msg("product created")
	return product, nil
}

func (s *ProductService) List(ctx context.Context, tenantID, category string, page ports.Page) ([]*domain.Product, error) {
	return s.repo.List(ctx, tenantID, category, page.Normalized())
}

func (s *ProductService) ListLowStock(ctx context.Context, tenantID string) ([]*domain.Product, error) {
	return s.repo.ListLowStock(ctx, tenantID)
}

func (s *ProductService) Get(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *ProductService) Update(ctx context.Context, tenantID, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.repo.Update(ctx, tenantID, id, input)
}

func (s *ProductService) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Str("tenant_id", tenantID).Msg("product deleted")
	return nil
}
