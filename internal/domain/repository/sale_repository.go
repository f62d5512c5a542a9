package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/enum"
	"github.com/matospos/checkout-api/pkg/pagination"
)

// SaleRepository defines the append-only sales history. Sales are never
// updated or deleted once appended.
type SaleRepository interface {
	Append(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	Stats(ctx context.Context) (*SaleStats, error)
}

// SaleFilterParams contains filtering parameters for history queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Method     *enum.PaymentMethod
	StartDate  *time.Time
	EndDate    *time.Time
}

// SaleStats are trivial reductions over the history used by the reports view.
// Amounts are in cents; the service layer converts to decimals for responses.
type SaleStats struct {
	TotalSales    int64
	GrossRevenue  int64
	AverageTicket int64
}
