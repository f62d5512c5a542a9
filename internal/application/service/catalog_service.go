package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/repository"
	"github.com/matospos/checkout-api/pkg/apperror"
	"github.com/matospos/checkout-api/pkg/pagination"
)

// CatalogService exposes the product catalog to the register UI.
type CatalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ListProducts returns a filtered, paginated catalog page.
func (s *CatalogService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params == nil {
		params = &repository.ProductFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, meta), nil
}

// GetProduct fetches one product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByBarcode resolves a scanned barcode to a product.
func (s *CatalogService) GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// Categories returns the distinct catalog categories, sorted.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}
