package enum

import "encoding/json"

// PaymentMethod represents how an order is settled. QR settlement happens
// outside the system; it is recorded here as a flag only.
type PaymentMethod int

const (
	PaymentMethodUnset PaymentMethod = 0
	PaymentMethodCash  PaymentMethod = 1
	PaymentMethodQR    PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	names := [...]string{"", "Cash", "QR"}
	if m < 0 || int(m) >= len(names) {
		return "Unknown"
	}
	return names[m]
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
	switch str {
	case "Cash":
		*m = PaymentMethodCash
	case "QR":
		*m = PaymentMethodQR
	default:
		*m = PaymentMethodUnset
	}
	return nil
}
