package service

import (
	"fmt"
	"sync"
	"time"
)

// InvoiceSequence issues invoice numbers for finalized sales. Numbers are
// unique for the lifetime of the process and sort with issuance time:
// NF-<yyyymmddHHMMSS>-<counter>. No cross-process guarantee is made — sales
// are not persisted, so neither are invoice numbers.
type InvoiceSequence struct {
	mu   sync.Mutex
	next uint64
	now  func() time.Time
}

// NewInvoiceSequence creates a sequence starting at 1.
func NewInvoiceSequence() *InvoiceSequence {
	return &InvoiceSequence{next: 1, now: time.Now}
}

// Generate returns the next invoice number.
func (s *InvoiceSequence) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	s.next++
	return fmt.Sprintf("NF-%s-%06d", s.now().Format("20060102150405"), n)
}
