package request

// AddItemRequest adds a product to the cart by ID.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// ScanItemRequest adds one unit of a product resolved by barcode.
type ScanItemRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// UpdateQuantityRequest sets the quantity of an existing cart line.
// Zero removes the line, so no minimum is enforced here.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CustomerRequest binds buyer identification to the transaction. Field rules
// run in the service after normalization, not here.
type CustomerRequest struct {
	Name  string  `json:"name"`
	TaxID string  `json:"tax_id"`
	Phone string  `json:"phone"`
	Email *string `json:"email"`
}

// StartPaymentRequest begins the payment sequence. CashAmount is the decimal
// amount tendered and is required for the cash method only.
type StartPaymentRequest struct {
	Method     string   `json:"method" binding:"required"`
	CashAmount *float64 `json:"cash_amount"`
}
