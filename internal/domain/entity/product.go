package entity

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/enum"
)

// Product represents a catalog item. The catalog is read-only at checkout:
// products are loaded once at startup and never mutated by a sale. Stock is
// advisory only and is not decremented when a sale completes.
type Product struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Barcode  string           `json:"barcode"`
	Price    int64            `json:"-"` // Stored in cents, marshaled as decimal
	Category string           `json:"category"`
	Stock    int              `json:"stock"`
	Unit     enum.ProductUnit `json:"unit"`
}

// GetPriceDecimal returns the unit price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price*100 + 0.5)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.GetPriceDecimal(),
	})
}
