package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CartLine is one product plus a quantity in the cart. The subtotal is always
// derived from quantity and unit price so it can never go stale.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns quantity x unit price in cents.
func (l *CartLine) Subtotal() int64 {
	return int64(l.Quantity) * l.Product.Price
}

// MarshalJSON adds the derived subtotal as a decimal
func (l CartLine) MarshalJSON() ([]byte, error) {
	type Alias CartLine
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
	}{
		Alias:    Alias(l),
		Subtotal: float64(l.Subtotal()) / 100,
	})
}

// Cart holds the in-progress transaction's line items, at most one line per
// product ID. It is not safe for concurrent use; the transaction slot that
// owns it serializes access.
type Cart struct {
	lines []*CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID uuid.UUID) *CartLine {
	for _, line := range c.lines {
		if line.Product.ID == productID {
			return line
		}
	}
	return nil
}

// AddItem adds quantity of product to the cart, merging into the existing
// line when the product is already present. Non-positive quantities are
// ignored.
func (c *Cart) AddItem(product Product, quantity int) {
	if quantity <= 0 {
		return
	}
	if line := c.find(product.ID); line != nil {
		line.Quantity += quantity
		return
	}
	c.lines = append(c.lines, &CartLine{Product: product, Quantity: quantity})
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. Unknown product IDs are a no-op.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if line := c.find(productID); line != nil {
		line.Quantity = quantity
	}
}

// RemoveItem deletes the line for productID if present.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total returns the sum of line subtotals in cents. It is recomputed on every
// call rather than cached.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Lines returns a shallow copy of the cart lines for rendering.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}

// Snapshot deep-copies the cart into immutable sale lines. Later cart
// mutation cannot affect the returned slice.
func (c *Cart) Snapshot() []SaleLine {
	out := make([]SaleLine, len(c.lines))
	for i, line := range c.lines {
		out[i] = SaleLine{
			Product:  line.Product,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		}
	}
	return out
}

// MarshalJSON renders the cart as its lines plus the derived total
func (c Cart) MarshalJSON() ([]byte, error) {
	lines := c.Lines()
	if lines == nil {
		lines = []CartLine{}
	}
	return json.Marshal(&struct {
		Items []CartLine `json:"items"`
		Total float64    `json:"total"`
	}{
		Items: lines,
		Total: float64(c.Total()) / 100,
	})
}
