package enum

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a sale is paid for
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodDebitCard
	PaymentMethodCreditCard
	PaymentMethodInstantTransfer
)

var paymentMethodNames = [...]string{"cash", "debit_card", "credit_card", "instant_transfer"}

func (m PaymentMethod) String() string {
	if int(m) < 0 || int(m) >= len(paymentMethodNames) {
		return "unknown"
	}
	return paymentMethodNames[m]
}

// IsValid reports whether the method is one of the supported payment methods.
func (m PaymentMethod) IsValid() bool {
	return int(m) >= 0 && int(m) < len(paymentMethodNames)
}

// IsCard reports whether the method goes through the card acquirer handshake.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodDebitCard || m == PaymentMethodCreditCard
}

// ParsePaymentMethod converts a wire name into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for i, name := range paymentMethodNames {
		if name == s {
			return PaymentMethod(i), nil
		}
	}
	return 0, fmt.Errorf("unknown payment method %q", s)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
