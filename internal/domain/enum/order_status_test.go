package enum

import (
	"encoding/json"
	"testing"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusOpen, OrderStatusClosed, true},
		{OrderStatusOpen, OrderStatusVoid, true},
		{OrderStatusOpen, OrderStatusOpen, false},
		{OrderStatusClosed, OrderStatusOpen, false},
		{OrderStatusClosed, OrderStatusVoid, false},
		{OrderStatusVoid, OrderStatusOpen, false},
		{OrderStatusVoid, OrderStatusClosed, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestOrderStatusJSON(t *testing.T) {
	data, err := json.Marshal(OrderStatusClosed)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Closed"` {
		t.Errorf("marshal = %s, want %q", data, "Closed")
	}

	var s OrderStatus
	if err := json.Unmarshal([]byte(`"Void"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != OrderStatusVoid {
		t.Errorf("unmarshal string = %v", s)
	}

	// legacy numeric form still round-trips
	if err := json.Unmarshal([]byte(`1`), &s); err != nil {
		t.Fatal(err)
	}
	if s != OrderStatusClosed {
		t.Errorf("unmarshal int = %v", s)
	}
}

func TestPaymentMethodJSON(t *testing.T) {
	data, _ := json.Marshal(PaymentMethodUnset)
	if string(data) != `""` {
		t.Errorf("unset should marshal as empty string, got %s", data)
	}

	var m PaymentMethod
	if err := json.Unmarshal([]byte(`"QR"`), &m); err != nil {
		t.Fatal(err)
	}
	if m != PaymentMethodQR {
		t.Errorf("unmarshal = %v", m)
	}
	if err := json.Unmarshal([]byte(`""`), &m); err != nil {
		t.Fatal(err)
	}
	if m != PaymentMethodUnset {
		t.Errorf("empty string should be unset, got %v", m)
	}
}

func TestStringToleratesOutOfRangeValues(t *testing.T) {
	// Legacy blobs can carry any integer through the numeric unmarshal
	// fallback; String must stay total so export and receipt rendering
	// never panic on them.
	var s OrderStatus
	if err := json.Unmarshal([]byte(`7`), &s); err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "Unknown" {
		t.Errorf("OrderStatus(7).String() = %q, want Unknown", got)
	}
	if got := OrderStatus(-1).String(); got != "Unknown" {
		t.Errorf("OrderStatus(-1).String() = %q, want Unknown", got)
	}
	if got := PaymentMethod(9).String(); got != "Unknown" {
		t.Errorf("PaymentMethod(9).String() = %q, want Unknown", got)
	}
	if got := FxCurrency(9).String(); got != "Unknown" {
		t.Errorf("FxCurrency(9).String() = %q, want Unknown", got)
	}
	if got := Category(9).String(); got != "Other" {
		t.Errorf("Category(9).String() = %q, want Other", got)
	}
}
