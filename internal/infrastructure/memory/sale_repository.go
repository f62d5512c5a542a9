package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/repository"
	"github.com/matospos/checkout-api/pkg/apperror"
	"github.com/matospos/checkout-api/pkg/pagination"
)

// SaleRepository is the in-memory append-only sales history. Sales survive
// for the lifetime of the process only.
type SaleRepository struct {
	mu          sync.RWMutex
	sales       []entity.Sale
	byID        map[uuid.UUID]int
	byInvoiceNo map[string]int
}

// NewSaleRepository creates an empty history.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{
		byID:        make(map[uuid.UUID]int),
		byInvoiceNo: make(map[string]int),
	}
}

// Append records a finalized sale. Duplicate IDs or invoice numbers are
// rejected; the finalizer guarantees they never occur in normal operation.
func (r *SaleRepository) Append(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[sale.ID]; exists {
		return apperror.NewConflictError("Sale already recorded")
	}
	if _, exists := r.byInvoiceNo[sale.InvoiceNo]; exists {
		return apperror.NewConflictError("Invoice number already issued")
	}

	idx := len(r.sales)
	r.sales = append(r.sales, *sale)
	r.byID[sale.ID] = idx
	r.byInvoiceNo[sale.InvoiceNo] = idx
	return nil
}

// GetByID returns the sale with the given ID, or nil when absent.
func (r *SaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	s := r.sales[idx]
	return &s, nil
}

// GetByInvoiceNo returns the sale carrying the given invoice number.
func (r *SaleRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byInvoiceNo[invoiceNo]
	if !ok {
		return nil, nil
	}
	s := r.sales[idx]
	return &s, nil
}

// List returns a page of sales, most recent first.
func (r *SaleRepository) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Sale, 0, len(r.sales))
	// Walk backwards so newest sales come first.
	for i := len(r.sales) - 1; i >= 0; i-- {
		s := r.sales[i]
		if params.Method != nil && s.PaymentMethod != *params.Method {
			continue
		}
		if params.StartDate != nil && s.Timestamp.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && s.Timestamp.After(*params.EndDate) {
			continue
		}
		matched = append(matched, s)
	}

	total := int64(len(matched))
	page := paginate(matched, params.Pagination)
	return page, total, nil
}

// Stats computes the reductions shown on the reports screen.
func (r *SaleRepository) Stats(ctx context.Context) (*repository.SaleStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &repository.SaleStats{TotalSales: int64(len(r.sales))}
	for _, s := range r.sales {
		stats.GrossRevenue += s.Total
	}
	if stats.TotalSales > 0 {
		stats.AverageTicket = stats.GrossRevenue / stats.TotalSales
	}
	return stats, nil
}

// paginate slices a fully materialized result set down to the requested page.
func paginate[T any](items []T, params *pagination.PaginationParams) []T {
	if params == nil {
		return items
	}
	params.Validate()
	offset := params.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + params.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
