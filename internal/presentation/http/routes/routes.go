package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matospos/checkout-api/internal/config"
	"github.com/matospos/checkout-api/internal/presentation/http/handler"
	"github.com/matospos/checkout-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product  *handler.ProductHandler
	Checkout *handler.CheckoutHandler
	Sale     *handler.SaleHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerProductRoutes(v1, h)
		registerCheckoutRoutes(v1, h)
		registerSaleRoutes(v1, h)
	}

	return router
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/categories", h.Product.Categories)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:id", h.Product.Get)
	}
}

func registerCheckoutRoutes(v1 *gin.RouterGroup, h *Handlers) {
	checkout := v1.Group("/checkout")
	{
		checkout.GET("/cart", h.Checkout.GetCart)
		checkout.POST("/cart/items", h.Checkout.AddItem)
		checkout.POST("/cart/scan", h.Checkout.ScanItem)
		checkout.PUT("/cart/items/:product_id", h.Checkout.UpdateQuantity)
		checkout.DELETE("/cart/items/:product_id", h.Checkout.RemoveItem)
		checkout.DELETE("/cart", h.Checkout.ClearCart)

		checkout.GET("/customer", h.Checkout.GetCustomer)
		checkout.PUT("/customer", h.Checkout.BindCustomer)

		checkout.POST("/payment", h.Checkout.StartPayment)
		checkout.GET("/payment", h.Checkout.PaymentStatus)
		checkout.DELETE("/payment", h.Checkout.CancelPayment)
		checkout.GET("/payment/qr", h.Checkout.PaymentQR)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/invoice/:invoice_no", h.Sale.GetByInvoiceNo)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/invoice", h.Sale.Invoice)
		sales.GET("/:id/export", h.Sale.Export)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/sales", h.Sale.Stats)
	}
}
