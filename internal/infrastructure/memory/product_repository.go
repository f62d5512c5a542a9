package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/repository"
)

// ProductRepository is an in-memory catalog. The checkout engine owns no
// durable data, so the catalog lives in process memory and is seeded once at
// startup.
type ProductRepository struct {
	mu        sync.RWMutex
	products  []entity.Product
	byID      map[uuid.UUID]int
	byBarcode map[string]int
}

// NewProductRepository creates an empty in-memory catalog.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID:      make(map[uuid.UUID]int),
		byBarcode: make(map[string]int),
	}
}

// Seed loads the catalog. Products without an ID get one assigned.
func (r *ProductRepository) Seed(ctx context.Context, products []entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		idx := len(r.products)
		r.products = append(r.products, p)
		r.byID[p.ID] = idx
		r.byBarcode[p.Barcode] = idx
	}
	return nil
}

// GetByID returns the product with the given ID, or nil when absent.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	p := r.products[idx]
	return &p, nil
}

// GetByBarcode returns the product with the given barcode, or nil when absent.
func (r *ProductRepository) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byBarcode[barcode]
	if !ok {
		return nil, nil
	}
	p := r.products[idx]
	return &p, nil
}

// List returns a page of products matching the search term and category.
func (r *ProductRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(params.Search)
	matched := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(p.Barcode, search) {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	page := paginate(matched, params.Pagination)
	return page, total, nil
}

// Categories returns the distinct categories present in the catalog, sorted.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var categories []string
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}
