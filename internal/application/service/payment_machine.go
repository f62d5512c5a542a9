package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/enum"
	"github.com/matospos/checkout-api/pkg/apperror"
)

// Display messages shown by the payment dialog while the simulated
// acknowledgment sequence runs.
const (
	MsgPresentCard         = "PRESENT CARD"
	MsgScanQRCode          = "SCAN QR CODE"
	MsgPaymentConfirmed    = "PAYMENT CONFIRMED"
	MsgTransactionApproved = "TRANSACTION APPROVED"
)

// methodScript is the prompt and timing profile of one payment method.
// Card and instant-transfer flows simulate a device handshake followed by
// network settlement as two timed phases; cash settles immediately and only
// waits a short confirmation delay.
type methodScript struct {
	prompt       string
	promptTicks  int // ticks in processing before approval; 0 approves immediately
	approveTicks int // ticks in approved before finalization-ready
}

var methodScripts = map[enum.PaymentMethod]methodScript{
	enum.PaymentMethodDebitCard:       {prompt: MsgPresentCard, promptTicks: 5, approveTicks: 5},
	enum.PaymentMethodCreditCard:      {prompt: MsgPresentCard, promptTicks: 5, approveTicks: 5},
	enum.PaymentMethodInstantTransfer: {prompt: MsgScanQRCode, promptTicks: 5, approveTicks: 2},
	enum.PaymentMethodCash:            {prompt: MsgPaymentConfirmed, promptTicks: 0, approveTicks: 2},
}

// ReadyFunc receives the finalization-ready signal. The generation must be
// handed back to Claim before constructing a Sale so that a reset that raced
// with the timer can never finalize.
type ReadyFunc func(generation uint64, outcome entity.PaymentOutcome)

// PaymentMachine drives one payment through selection, processing and
// approved. Delayed transitions are scheduled callbacks guarded by a
// generation counter: Reset bumps the generation, turning any pending
// callback into a no-op.
type PaymentMachine struct {
	mu         sync.Mutex
	tick       time.Duration
	state      enum.PaymentState
	method     enum.PaymentMethod
	message    string
	total      int64
	tendered   *int64
	chargeID   uuid.UUID
	generation uint64
	pending    *time.Timer
	onReady    ReadyFunc
}

// NewPaymentMachine creates a machine in the selection state. tick sets the
// real duration of one simulated time unit.
func NewPaymentMachine(tick time.Duration) *PaymentMachine {
	return &PaymentMachine{
		tick:  tick,
		state: enum.PaymentStateSelection,
	}
}

// OnApproved registers the finalization-ready callback. It fires exactly once
// per run that reaches the end of the approved delay.
func (m *PaymentMachine) OnApproved(fn ReadyFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReady = fn
}

// Start begins the acknowledgment sequence for the chosen method. The total
// is fixed here; the caller locks the cart for the duration of the payment.
// Cash requires tendered and tendered >= total before the transition can
// begin at all.
func (m *PaymentMachine) Start(method enum.PaymentMethod, total int64, tendered *int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != enum.PaymentStateSelection {
		return apperror.NewPreconditionError("A payment is already in progress")
	}
	script, ok := methodScripts[method]
	if !ok {
		return apperror.NewBadRequestError("Unknown payment method")
	}

	if method == enum.PaymentMethodCash {
		if tendered == nil {
			return apperror.NewPreconditionError("Cash payment requires the tendered amount")
		}
		if *tendered < total {
			return apperror.NewPreconditionError("Tendered amount is below the sale total")
		}
	} else {
		tendered = nil
	}

	m.generation++
	gen := m.generation
	m.method = method
	m.total = total
	m.tendered = tendered
	m.chargeID = uuid.New()

	if script.promptTicks == 0 {
		// Cash: no external settlement to wait for.
		m.state = enum.PaymentStateApproved
		m.message = script.prompt
		m.schedule(script.approveTicks, func() { m.fireReady(gen) })
		return nil
	}

	m.state = enum.PaymentStateProcessing
	m.message = script.prompt
	m.schedule(script.promptTicks, func() { m.approve(gen, script.approveTicks) })
	return nil
}

// schedule arms the pending timer for n ticks. Caller holds m.mu.
func (m *PaymentMachine) schedule(n int, fn func()) {
	m.pending = time.AfterFunc(time.Duration(n)*m.tick, fn)
}

// approve moves processing to approved, unless the run was reset meanwhile.
func (m *PaymentMachine) approve(gen uint64, approveTicks int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		return
	}
	m.state = enum.PaymentStateApproved
	m.message = MsgTransactionApproved
	m.schedule(approveTicks, func() { m.fireReady(gen) })
}

// fireReady emits the finalization-ready signal, unless the run was reset.
// The callback is invoked without holding the lock; the receiver revalidates
// through Claim.
func (m *PaymentMachine) fireReady(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.state != enum.PaymentStateApproved {
		m.mu.Unlock()
		return
	}
	var outcome entity.PaymentOutcome
	if m.method == enum.PaymentMethodCash {
		outcome = entity.NewCashOutcome(*m.tendered, m.total)
	} else {
		outcome = entity.NewOutcome(m.method)
	}
	cb := m.onReady
	m.mu.Unlock()

	if cb != nil {
		cb(gen, outcome)
	}
}

// Claim atomically verifies that the given run is still the current approved
// one and, if so, invalidates it so the signal can authorize at most one
// finalization. Returns false when the run was reset or already claimed.
func (m *PaymentMachine) Claim(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation || m.state != enum.PaymentStateApproved {
		return false
	}
	m.generation++
	return true
}

// Reset abandons the in-flight payment and returns to selection. Any pending
// delayed transition is discarded.
func (m *PaymentMachine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	m.generation++
	m.state = enum.PaymentStateSelection
	m.message = ""
	m.total = 0
	m.tendered = nil
	m.chargeID = uuid.Nil
}

// InFlight reports whether a payment has left the selection state.
func (m *PaymentMachine) InFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state != enum.PaymentStateSelection
}

// Total returns the total fixed at payment entry.
func (m *PaymentMachine) Total() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// Snapshot returns the current state for the payment dialog.
func (m *PaymentMachine) Snapshot() (state enum.PaymentState, method enum.PaymentMethod, message string, total int64, tendered *int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.method, m.message, m.total, m.tendered
}

// ChargeInfo returns the charge identity for the instant-transfer QR code.
// Only valid while the instant-transfer payment is processing.
func (m *PaymentMachine) ChargeInfo() (uuid.UUID, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.method != enum.PaymentMethodInstantTransfer || m.state != enum.PaymentStateProcessing {
		return uuid.Nil, 0, apperror.NewPreconditionError("No instant-transfer charge is awaiting payment")
	}
	return m.chargeID, m.total, nil
}
