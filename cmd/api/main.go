package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/matospos/checkout-api/internal/application/service"
	"github.com/matospos/checkout-api/internal/config"
	"github.com/matospos/checkout-api/internal/infrastructure/memory"
	"github.com/matospos/checkout-api/internal/infrastructure/qrcode"
	"github.com/matospos/checkout-api/internal/presentation/http/handler"
	"github.com/matospos/checkout-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize repositories and seed the catalog
	productRepo := memory.NewProductRepository()
	saleRepo := memory.NewSaleRepository()
	if err := memory.SeedDefaultCatalog(productRepo); err != nil {
		log.Fatalf("Failed to seed product catalog: %v", err)
	}

	categories, err := productRepo.Categories(context.Background())
	if err == nil {
		log.Printf("Catalog seeded with %d categories", len(categories))
	}

	// Initialize the QR generator for instant-transfer charges
	qrGenerator := qrcode.NewGenerator(cfg.QR.Size, cfg.QR.Level)

	// Initialize services
	invoiceSeq := service.NewInvoiceSequence()
	catalogService := service.NewCatalogService(productRepo)
	customerService := service.NewCustomerService()
	checkoutService := service.NewCheckoutService(
		productRepo,
		saleRepo,
		invoiceSeq,
		cfg.Checkout.Cashier,
		cfg.Checkout.Tick,
	)
	saleService := service.NewSaleService(saleRepo, cfg.Store)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:  handler.NewProductHandler(catalogService),
		Checkout: handler.NewCheckoutHandler(checkoutService, customerService, qrGenerator),
		Sale:     handler.NewSaleHandler(saleService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
