package entity

// InvoiceHeader holds the store identity printed at the top of an invoice.
type InvoiceHeader struct {
	StoreName string `json:"store_name"`
	TaxID     string `json:"tax_id,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// InvoiceItem represents a single line on an invoice.
type InvoiceItem struct {
	Barcode   string  `json:"barcode"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Invoice is a value object composed from a Sale at display time.
// It is not stored anywhere; the Sale remains the record of truth.
type Invoice struct {
	Header        InvoiceHeader `json:"header"`
	Number        string        `json:"number"`
	Date          string        `json:"date"`
	Cashier       string        `json:"cashier"`
	Customer      Customer      `json:"customer"`
	Items         []InvoiceItem `json:"items"`
	SubTotal      float64       `json:"sub_total"`
	Total         float64       `json:"total"`
	PaymentMethod string        `json:"payment_method"`
	CashReceived  *float64      `json:"cash_received,omitempty"`
	Change        *float64      `json:"change,omitempty"`
}
