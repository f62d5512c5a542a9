package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/pkg/pagination"
)

// ProductRepository defines the interface for catalog lookups. The catalog is
// an external collaborator of the checkout engine: read-only once seeded.
type ProductRepository interface {
	Seed(ctx context.Context, products []entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
}

// ProductFilterParams contains filtering parameters for catalog queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches name (case-insensitive) or barcode
	Category   string
}
