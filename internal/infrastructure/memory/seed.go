package memory

import (
	"context"
	"log"

	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/enum"
)

// DefaultProducts returns the demo catalog loaded when the register starts.
func DefaultProducts() []entity.Product {
	return []entity.Product{
		{Name: "Rice 5kg", Barcode: "7891000100103", Price: 2490, Category: "Grocery", Stock: 120, Unit: enum.UnitEach},
		{Name: "Black Beans 1kg", Barcode: "7891000100110", Price: 890, Category: "Grocery", Stock: 200, Unit: enum.UnitEach},
		{Name: "Soybean Oil 900ml", Barcode: "7891000100127", Price: 749, Category: "Grocery", Stock: 150, Unit: enum.UnitEach},
		{Name: "Whole Milk 1L", Barcode: "7891000100134", Price: 529, Category: "Dairy", Stock: 300, Unit: enum.UnitVolume},
		{Name: "Mozzarella Cheese", Barcode: "7891000100141", Price: 4590, Category: "Dairy", Stock: 40, Unit: enum.UnitWeight},
		{Name: "French Bread", Barcode: "7891000100158", Price: 1590, Category: "Bakery", Stock: 80, Unit: enum.UnitWeight},
		{Name: "Banana", Barcode: "7891000100165", Price: 649, Category: "Produce", Stock: 90, Unit: enum.UnitWeight},
		{Name: "Tomato", Barcode: "7891000100172", Price: 899, Category: "Produce", Stock: 70, Unit: enum.UnitWeight},
		{Name: "Chicken Breast", Barcode: "7891000100189", Price: 1890, Category: "Meat", Stock: 60, Unit: enum.UnitWeight},
		{Name: "Ground Beef", Barcode: "7891000100196", Price: 3290, Category: "Meat", Stock: 50, Unit: enum.UnitWeight},
		{Name: "Cola 2L", Barcode: "7891000100202", Price: 999, Category: "Beverages", Stock: 180, Unit: enum.UnitVolume},
		{Name: "Orange Juice 1L", Barcode: "7891000100219", Price: 1190, Category: "Beverages", Stock: 110, Unit: enum.UnitVolume},
		{Name: "Laundry Detergent 1L", Barcode: "7891000100226", Price: 1390, Category: "Cleaning", Stock: 95, Unit: enum.UnitVolume},
		{Name: "Dish Soap 500ml", Barcode: "7891000100233", Price: 329, Category: "Cleaning", Stock: 140, Unit: enum.UnitEach},
		{Name: "Toilet Paper 12pk", Barcode: "7891000100240", Price: 2190, Category: "Cleaning", Stock: 75, Unit: enum.UnitEach},
	}
}

// SeedDefaultCatalog loads the demo catalog into the repository.
func SeedDefaultCatalog(repo *ProductRepository) error {
	products := DefaultProducts()
	if err := repo.Seed(context.Background(), products); err != nil {
		return err
	}
	log.Printf("Seeded catalog with %d products", len(products))
	return nil
}
