package enum

import "encoding/json"

// PaymentState represents where a payment sits in its approval sequence
type PaymentState int

const (
	PaymentStateSelection PaymentState = iota
	PaymentStateProcessing
	PaymentStateApproved
)

func (s PaymentState) String() string {
	return [...]string{"selection", "processing", "approved"}[s]
}

func (s PaymentState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentState(i)
		return nil
	}
	switch str {
	case "selection":
		*s = PaymentStateSelection
	case "processing":
		*s = PaymentStateProcessing
	case "approved":
		*s = PaymentStateApproved
	}
	return nil
}
