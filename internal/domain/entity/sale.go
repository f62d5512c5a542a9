package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/enum"
)

// SaleLine is an immutable snapshot of a cart line taken at finalization.
// Unlike CartLine the subtotal is stored, not derived: the snapshot must
// record exactly what was charged.
type SaleLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal int64   `json:"-"` // Stored in cents, marshaled as decimal
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l SaleLine) MarshalJSON() ([]byte, error) {
	type Alias SaleLine
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
	}{
		Alias:    Alias(l),
		Subtotal: float64(l.Subtotal) / 100,
	})
}

// PaymentOutcome captures the resolved payment once the state machine reaches
// finalization-ready. CashReceived and Change are set only for cash.
type PaymentOutcome struct {
	Method       enum.PaymentMethod `json:"method"`
	CashReceived *int64             `json:"cash_received,omitempty"`
	Change       *int64             `json:"change,omitempty"`
}

// NewOutcome builds the outcome for the card and instant-transfer methods.
func NewOutcome(method enum.PaymentMethod) PaymentOutcome {
	return PaymentOutcome{Method: method}
}

// NewCashOutcome builds the cash outcome. The caller guarantees
// tendered >= total; change is derived, never supplied.
func NewCashOutcome(tendered, total int64) PaymentOutcome {
	change := tendered - total
	return PaymentOutcome{
		Method:       enum.PaymentMethodCash,
		CashReceived: &tendered,
		Change:       &change,
	}
}

// Sale is the immutable record of a completed transaction. It is created
// only by the sale finalizer and never mutated afterwards.
type Sale struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNo     string             `json:"invoice_no"`
	Items         []SaleLine         `json:"items"`
	Total         int64              `json:"-"` // Stored in cents, marshaled as decimal
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Timestamp     time.Time          `json:"timestamp"`
	Cashier       string             `json:"cashier"`
	Customer      Customer           `json:"customer"`
	CashReceived  *int64             `json:"-"` // Cash only, in cents
	Change        *int64             `json:"-"` // Cash only, in cents
}

// GetTotalDecimal returns the total as a decimal
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.Total) / 100
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	out := &struct {
		Alias
		Total        float64  `json:"total"`
		CashReceived *float64 `json:"cash_received,omitempty"`
		Change       *float64 `json:"change,omitempty"`
	}{
		Alias: Alias(s),
		Total: s.GetTotalDecimal(),
	}
	if s.CashReceived != nil {
		v := float64(*s.CashReceived) / 100
		out.CashReceived = &v
	}
	if s.Change != nil {
		v := float64(*s.Change) / 100
		out.Change = &v
	}
	return json.Marshal(out)
}
