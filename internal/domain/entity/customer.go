package entity

import "strings"

// Customer holds the buyer identification collected before payment. Once
// accepted it is immutable and bound to at most one in-progress transaction.
type Customer struct {
	Name  string  `json:"name" validate:"required"`
	TaxID string  `json:"tax_id" validate:"required,len=11,numeric"`
	Phone string  `json:"phone" validate:"required,min=10,max=11,numeric"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// NormalizeDigits strips everything but decimal digits from a formatted
// document or phone number.
func NormalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize cleans formatted input in place: tax ID and phone keep digits
// only, name and email are trimmed.
func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = NormalizeDigits(c.TaxID)
	c.Phone = NormalizeDigits(c.Phone)
	if c.Email != nil {
		trimmed := strings.TrimSpace(*c.Email)
		if trimmed == "" {
			c.Email = nil
		} else {
			c.Email = &trimmed
		}
	}
}
