package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/config"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/repository"
	"github.com/matospos/checkout-api/pkg/apperror"
	"github.com/matospos/checkout-api/pkg/pagination"
)

// SaleService exposes the append-only sales history: listing, lookups,
// invoice documents and the reports view.
type SaleService struct {
	saleRepo repository.SaleRepository
	store    config.StoreConfig
}

func NewSaleService(saleRepo repository.SaleRepository, store config.StoreConfig) *SaleService {
	return &SaleService{saleRepo: saleRepo, store: store}
}

// ListSales returns a filtered, paginated page of the history, newest first.
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params == nil {
		params = &repository.SaleFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, meta), nil
}

// GetSale fetches one sale by ID.
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// GetSaleByInvoiceNo fetches one sale by its invoice number.
func (s *SaleService) GetSaleByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// BuildInvoice composes the invoice document for a sale. The document is
// derived on demand; the sale stays the record of truth.
func (s *SaleService) BuildInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]entity.InvoiceItem, 0, len(sale.Items))
	for _, line := range sale.Items {
		items = append(items, entity.InvoiceItem{
			Barcode:   line.Product.Barcode,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Unit:      line.Product.Unit.String(),
			UnitPrice: line.Product.GetPriceDecimal(),
			Total:     float64(line.Subtotal) / 100,
		})
	}

	invoice := &entity.Invoice{
		Header: entity.InvoiceHeader{
			StoreName: s.store.Name,
			TaxID:     s.store.TaxID,
			Address:   s.store.Address,
			Phone:     s.store.Phone,
		},
		Number:        sale.InvoiceNo,
		Date:          sale.Timestamp.Format("02/01/2006 15:04:05"),
		Cashier:       sale.Cashier,
		Customer:      sale.Customer,
		Items:         items,
		SubTotal:      sale.GetTotalDecimal(),
		Total:         sale.GetTotalDecimal(),
		PaymentMethod: sale.PaymentMethod.String(),
	}
	if sale.CashReceived != nil {
		v := float64(*sale.CashReceived) / 100
		invoice.CashReceived = &v
	}
	if sale.Change != nil {
		v := float64(*sale.Change) / 100
		invoice.Change = &v
	}
	return invoice, nil
}

// SalesReport is the reports view over the whole history.
type SalesReport struct {
	TotalSales    int64   `json:"total_sales"`
	GrossRevenue  float64 `json:"gross_revenue"`
	AverageTicket float64 `json:"average_ticket"`
}

// GetStats reduces the history into the reports view.
func (s *SaleService) GetStats(ctx context.Context) (*SalesReport, error) {
	stats, err := s.saleRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &SalesReport{
		TotalSales:    stats.TotalSales,
		GrossRevenue:  float64(stats.GrossRevenue) / 100,
		AverageTicket: float64(stats.AverageTicket) / 100,
	}, nil
}
