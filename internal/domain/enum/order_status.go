package enum

import "encoding/json"

// OrderStatus represents the lifecycle status of an order. Transitions are
// monotonic: Open -> Closed or Open -> Void, nothing leaves a terminal state.
type OrderStatus int

const (
	OrderStatusOpen   OrderStatus = 0
	OrderStatusClosed OrderStatus = 1
	OrderStatusVoid   OrderStatus = 2
)

func (s OrderStatus) String() string {
	names := [...]string{"Open", "Closed", "Void"}
	if s < 0 || int(s) >= len(names) {
		return "Unknown"
	}
	return names[s]
}

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusClosed || s == OrderStatusVoid
}

// CanTransitionTo enforces the monotonic lifecycle.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	return s == OrderStatusOpen && to.Terminal()
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = OrderStatusOpen
	case "Closed":
		*s = OrderStatusClosed
	case "Void":
		*s = OrderStatusVoid
	}
	return nil
}
