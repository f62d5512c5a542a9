package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/enum"
	"github.com/matospos/checkout-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSale(n int, method enum.PaymentMethod, total int64, ts time.Time) *entity.Sale {
	return &entity.Sale{
		ID:            uuid.New(),
		InvoiceNo:     fmt.Sprintf("NF-20260831120000-%06d", n),
		Total:         total,
		PaymentMethod: method,
		Timestamp:     ts,
		Cashier:       "Operator",
		Customer:      entity.Customer{Name: "Ana Souza", TaxID: "12345678901", Phone: "11987654321"},
	}
}

func TestSaleRepositoryAppendAndLookups(t *testing.T) {
	repo := NewSaleRepository()
	ctx := context.Background()

	sale := testSale(1, enum.PaymentMethodCash, 2000, time.Now())
	require.NoError(t, repo.Append(ctx, sale))

	byID, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, sale.InvoiceNo, byID.InvoiceNo)

	byInvoice, err := repo.GetByInvoiceNo(ctx, sale.InvoiceNo)
	require.NoError(t, err)
	require.NotNil(t, byInvoice)
	assert.Equal(t, sale.ID, byInvoice.ID)

	missing, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaleRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewSaleRepository()
	ctx := context.Background()

	sale := testSale(1, enum.PaymentMethodCash, 2000, time.Now())
	require.NoError(t, repo.Append(ctx, sale))

	// Same ID
	assert.Error(t, repo.Append(ctx, sale))

	// Same invoice number, fresh ID
	dup := testSale(1, enum.PaymentMethodDebitCard, 3000, time.Now())
	assert.Error(t, repo.Append(ctx, dup))
}

func TestSaleRepositoryListNewestFirstWithFilters(t *testing.T) {
	repo := NewSaleRepository()
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, testSale(1, enum.PaymentMethodCash, 1000, base)))
	require.NoError(t, repo.Append(ctx, testSale(2, enum.PaymentMethodDebitCard, 2000, base.Add(time.Hour))))
	require.NoError(t, repo.Append(ctx, testSale(3, enum.PaymentMethodCash, 3000, base.Add(2*time.Hour))))

	sales, total, err := repo.List(ctx, &repository.SaleFilterParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, sales, 3)
	assert.Equal(t, int64(3000), sales[0].Total)
	assert.Equal(t, int64(1000), sales[2].Total)

	cash := enum.PaymentMethodCash
	sales, total, err = repo.List(ctx, &repository.SaleFilterParams{Method: &cash})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, s := range sales {
		assert.Equal(t, enum.PaymentMethodCash, s.PaymentMethod)
	}

	start := base.Add(30 * time.Minute)
	end := base.Add(90 * time.Minute)
	sales, total, err = repo.List(ctx, &repository.SaleFilterParams{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(2000), sales[0].Total)
}

func TestSaleRepositoryStats(t *testing.T) {
	repo := NewSaleRepository()
	ctx := context.Background()

	// Empty history
	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalSales)
	assert.Equal(t, int64(0), stats.AverageTicket)

	now := time.Now()
	require.NoError(t, repo.Append(ctx, testSale(1, enum.PaymentMethodCash, 1000, now)))
	require.NoError(t, repo.Append(ctx, testSale(2, enum.PaymentMethodCreditCard, 3000, now)))

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalSales)
	assert.Equal(t, int64(4000), stats.GrossRevenue)
	assert.Equal(t, int64(2000), stats.AverageTicket)
}
