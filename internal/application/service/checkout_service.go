package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/enum"
	"github.com/matospos/checkout-api/internal/domain/repository"
	"github.com/matospos/checkout-api/pkg/apperror"
)

// CheckoutService owns the single transaction slot of the register: the cart,
// the bound customer and the payment machine. Only one transaction is in
// flight at a time; all access to the slot goes through this service's lock.
type CheckoutService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	seq         *InvoiceSequence
	machine     *PaymentMachine
	cashier     string

	mu       sync.Mutex
	cart     *entity.Cart
	customer *entity.Customer
	lastSale *entity.Sale
	fault    string
}

// NewCheckoutService creates the register's transaction slot. tick sets the
// real duration of one simulated payment time unit.
func NewCheckoutService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	seq *InvoiceSequence,
	cashier string,
	tick time.Duration,
) *CheckoutService {
	s := &CheckoutService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		seq:         seq,
		machine:     NewPaymentMachine(tick),
		cashier:     cashier,
		cart:        entity.NewCart(),
	}
	s.machine.OnApproved(func(gen uint64, outcome entity.PaymentOutcome) {
		if _, err := s.completeSale(gen, outcome); err != nil {
			log.Printf("Checkout: finalization refused: %v", err)
		}
	})
	return s
}

// CartView is the cart rendered for the register UI.
type CartView struct {
	Items []entity.CartLine `json:"items"`
	Total float64           `json:"total"`
}

// Cart returns a copy of the current cart contents.
func (s *CheckoutService) Cart() *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Lines()
	if items == nil {
		items = []entity.CartLine{}
	}
	return &CartView{
		Items: items,
		Total: float64(s.cart.Total()) / 100,
	}
}

// requireUnlocked rejects cart mutation while a payment is in flight. The
// total is fixed at payment entry, so the cart must not drift under it.
func (s *CheckoutService) requireUnlocked() error {
	if s.machine.InFlight() {
		return apperror.NewPreconditionError("Cart is locked while a payment is in progress")
	}
	return nil
}

// AddItem puts quantity of the given product into the cart, merging with an
// existing line for the same product.
func (s *CheckoutService) AddItem(ctx context.Context, productID uuid.UUID, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be a positive integer")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	s.cart.AddItem(*product, quantity)
	return s.cartViewLocked(), nil
}

// AddItemByBarcode resolves a scanned barcode and adds one unit. An unknown
// barcode leaves the cart untouched and reports a not-found notice.
func (s *CheckoutService) AddItemByBarcode(ctx context.Context, barcode string) (*CartView, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	s.cart.AddItem(*product, 1)
	return s.cartViewLocked(), nil
}

// UpdateQuantity sets the quantity of an existing line; zero or less removes
// it. Unknown product IDs are a no-op.
func (s *CheckoutService) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	s.cart.UpdateQuantity(productID, quantity)
	return s.cartViewLocked(), nil
}

// RemoveItem deletes a line from the cart.
func (s *CheckoutService) RemoveItem(ctx context.Context, productID uuid.UUID) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	s.cart.RemoveItem(productID)
	return s.cartViewLocked(), nil
}

// ClearCart discards every line of the in-progress transaction.
func (s *CheckoutService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	s.cart.Clear()
	return nil
}

func (s *CheckoutService) cartViewLocked() *CartView {
	items := s.cart.Lines()
	if items == nil {
		items = []entity.CartLine{}
	}
	return &CartView{Items: items, Total: float64(s.cart.Total()) / 100}
}

// BindCustomer attaches a validated customer to the transaction. The cart
// must already have items; at most one customer binds to the slot.
func (s *CheckoutService) BindCustomer(ctx context.Context, customer entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUnlocked(); err != nil {
		return err
	}
	if s.cart.IsEmpty() {
		return apperror.NewPreconditionError("Cart is empty")
	}
	s.customer = &customer
	return nil
}

// Customer returns the currently bound customer, or nil.
func (s *CheckoutService) Customer() *entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return nil
	}
	c := *s.customer
	return &c
}

// StartPayment fixes the total and begins the acknowledgment sequence for the
// chosen method. cashTendered is in cents and only meaningful for cash.
func (s *CheckoutService) StartPayment(ctx context.Context, method enum.PaymentMethod, cashTendered *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return apperror.NewPreconditionError("Cart is empty")
	}
	if s.customer == nil {
		return apperror.NewPreconditionError("No customer bound to the transaction")
	}

	if err := s.machine.Start(method, s.cart.Total(), cashTendered); err != nil {
		return err
	}
	s.fault = ""
	return nil
}

// PaymentStatus is the payment dialog's view of the machine plus the result
// of the most recent finalization.
type PaymentStatus struct {
	State        enum.PaymentState   `json:"state"`
	Method       *enum.PaymentMethod `json:"method,omitempty"`
	Message      string              `json:"message,omitempty"`
	Total        float64             `json:"total"`
	CashReceived *float64            `json:"cash_received,omitempty"`
	Change       *float64            `json:"change,omitempty"`
	LastSaleID   *uuid.UUID          `json:"last_sale_id,omitempty"`
	LastInvoice  *string             `json:"last_invoice_no,omitempty"`
	Fault        string              `json:"fault,omitempty"`
}

// PaymentStatus returns the state the payment dialog renders.
func (s *CheckoutService) PaymentStatus() *PaymentStatus {
	state, method, message, total, tendered := s.machine.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	status := &PaymentStatus{
		State:   state,
		Message: message,
		Total:   float64(total) / 100,
		Fault:   s.fault,
	}
	if state != enum.PaymentStateSelection {
		m := method
		status.Method = &m
	}
	if tendered != nil {
		received := float64(*tendered) / 100
		change := float64(*tendered-total) / 100
		status.CashReceived = &received
		status.Change = &change
	}
	if s.lastSale != nil {
		id := s.lastSale.ID
		invoiceNo := s.lastSale.InvoiceNo
		status.LastSaleID = &id
		status.LastInvoice = &invoiceNo
	}
	return status
}

// ChargeQR returns the charge identity rendered as the instant-transfer QR
// code, valid only while that payment is processing.
func (s *CheckoutService) ChargeQR() (uuid.UUID, int64, error) {
	return s.machine.ChargeInfo()
}

// CancelPayment abandons the in-flight payment and returns the dialog to
// method selection. Pending transitions are discarded; no Sale is produced.
func (s *CheckoutService) CancelPayment(ctx context.Context) {
	s.machine.Reset()
}

// completeSale is the sale finalizer. It runs when the machine signals
// finalization-ready; Claim makes the signal single-fire and rejects runs
// that were reset after their timer fired.
func (s *CheckoutService) completeSale(gen uint64, outcome entity.PaymentOutcome) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.machine.Claim(gen) {
		return nil, nil
	}

	lockedTotal := s.machine.Total()

	if s.cart.IsEmpty() || s.customer == nil {
		s.fault = "transaction state lost before finalization"
		s.machine.Reset()
		return nil, apperror.NewLogicFaultError(s.fault)
	}

	items := s.cart.Snapshot()
	var total int64
	for _, line := range items {
		total += line.Subtotal
	}
	if total != lockedTotal {
		// The cart-lock invariant was violated; refuse rather than pick a side.
		s.fault = "cart total changed between payment entry and finalization"
		s.machine.Reset()
		return nil, apperror.NewLogicFaultError(s.fault)
	}

	sale := &entity.Sale{
		ID:            uuid.New(),
		InvoiceNo:     s.seq.Generate(),
		Items:         items,
		Total:         total,
		PaymentMethod: outcome.Method,
		Timestamp:     time.Now(),
		Cashier:       s.cashier,
		Customer:      *s.customer,
		CashReceived:  outcome.CashReceived,
		Change:        outcome.Change,
	}

	if err := s.saleRepo.Append(context.Background(), sale); err != nil {
		s.fault = "failed to record sale: " + err.Error()
		s.machine.Reset()
		return nil, err
	}

	s.lastSale = sale
	s.cart = entity.NewCart()
	s.customer = nil
	s.fault = ""
	s.machine.Reset()
	return sale, nil
}
