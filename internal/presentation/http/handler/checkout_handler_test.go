package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matospos/checkout-api/internal/application/service"
	"github.com/matospos/checkout-api/internal/config"
	"github.com/matospos/checkout-api/internal/infrastructure/memory"
	"github.com/matospos/checkout-api/internal/infrastructure/qrcode"
	"github.com/matospos/checkout-api/internal/presentation/http/handler"
	"github.com/matospos/checkout-api/internal/presentation/http/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "checkout-api", Env: "test", Port: "0"},
		Store: config.StoreConfig{
			Name:  "Supermercado MATOS",
			TaxID: "12.345.678/0001-90",
		},
		Checkout:  config.CheckoutConfig{Cashier: "Operator", Tick: time.Millisecond},
		QR:        config.QRConfig{Size: 128, Level: "M"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}

	productRepo := memory.NewProductRepository()
	saleRepo := memory.NewSaleRepository()
	require.NoError(t, memory.SeedDefaultCatalog(productRepo))

	checkoutService := service.NewCheckoutService(
		productRepo, saleRepo, service.NewInvoiceSequence(),
		cfg.Checkout.Cashier, cfg.Checkout.Tick,
	)

	handlers := &routes.Handlers{
		Product: handler.NewProductHandler(service.NewCatalogService(productRepo)),
		Checkout: handler.NewCheckoutHandler(
			checkoutService,
			service.NewCustomerService(),
			qrcode.NewGenerator(cfg.QR.Size, cfg.QR.Level),
		),
		Sale: handler.NewSaleHandler(service.NewSaleService(saleRepo, cfg.Store)),
	}
	return routes.Setup(handlers, cfg)
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/products?search=milk", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data struct {
		Items []struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Whole Milk 1L", data.Items[0].Name)
	assert.Equal(t, 5.29, data.Items[0].Price)
}

func TestCashCheckoutOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Scan one item twice: Rice 5kg at 24.90
	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodPost, "/api/v1/checkout/cart/scan", gin.H{"barcode": "7891000100103"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/v1/checkout/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &cart))
	assert.Equal(t, 49.80, cart.Total)

	// Bind the customer
	w = doJSON(router, http.MethodPut, "/api/v1/checkout/customer", gin.H{
		"name":   "Ana Souza",
		"tax_id": "123.456.789-01",
		"phone":  "(11) 98765-4321",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Pay cash with 50.00
	w = doJSON(router, http.MethodPost, "/api/v1/checkout/payment", gin.H{
		"method":      "cash",
		"cash_amount": 50.00,
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	// Poll until the sale finalizes and the slot returns to selection
	var status struct {
		State       string   `json:"state"`
		LastInvoice *string  `json:"last_invoice_no"`
		Change      *float64 `json:"change"`
	}
	require.Eventually(t, func() bool {
		w := doJSON(router, http.MethodGet, "/api/v1/checkout/payment", nil)
		if w.Code != http.StatusOK {
			return false
		}
		status = struct {
			State       string   `json:"state"`
			LastInvoice *string  `json:"last_invoice_no"`
			Change      *float64 `json:"change"`
		}{}
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &status); err != nil {
			return false
		}
		return status.State == "selection" && status.LastInvoice != nil
	}, 2*time.Second, 5*time.Millisecond)

	// History has exactly one sale carrying the change
	w = doJSON(router, http.MethodGet, "/api/v1/sales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sales struct {
		Items []struct {
			InvoiceNo string  `json:"invoice_no"`
			Total     float64 `json:"total"`
			Change    float64 `json:"change"`
			ID        string  `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &sales))
	require.Len(t, sales.Items, 1)
	assert.Equal(t, *status.LastInvoice, sales.Items[0].InvoiceNo)
	assert.Equal(t, 49.80, sales.Items[0].Total)
	assert.Equal(t, 0.20, sales.Items[0].Change)

	// The invoice document carries the store header
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/sales/%s/invoice", sales.Items[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var invoice struct {
		Header struct {
			StoreName string `json:"store_name"`
		} `json:"header"`
		Number string `json:"number"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &invoice))
	assert.Equal(t, "Supermercado MATOS", invoice.Header.StoreName)
	assert.Equal(t, sales.Items[0].InvoiceNo, invoice.Number)
}

func TestStartPaymentRejectsEmptyCart(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/checkout/payment", gin.H{"method": "cash", "cash_amount": 10.0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBindCustomerValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/checkout/cart/scan", gin.H{"barcode": "7891000100103"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/checkout/customer", gin.H{
		"name":   "Ana Souza",
		"tax_id": "12345",
		"phone":  "(11) 98765-4321",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
}

func TestInstantTransferQREndpoint(t *testing.T) {
	router := newTestRouter(t)

	// QR is only available while an instant-transfer charge is processing
	w := doJSON(router, http.MethodGet, "/api/v1/checkout/payment/qr", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/checkout/cart/scan", gin.H{"barcode": "7891000100103"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPut, "/api/v1/checkout/customer", gin.H{
		"name":   "Ana Souza",
		"tax_id": "12345678901",
		"phone":  "11987654321",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/checkout/payment", gin.H{"method": "instant_transfer"})
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/checkout/payment/qr", nil)
	if w.Code == http.StatusOK {
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.NotEmpty(t, w.Body.Bytes())
	} else {
		// The 5-tick processing window may already have elapsed.
		assert.Equal(t, http.StatusConflict, w.Code)
	}
}
