package entity

import "testing"

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		subtotal, discount, want int64
	}{
		{100000, 0, 100000},
		{100000, 5000, 95000},
		{5000, 5000, 0},
		{5000, 10000, 0},
	}
	for _, tt := range tests {
		if got := ComputeTotal(tt.subtotal, tt.discount); got != tt.want {
			t.Errorf("ComputeTotal(%d, %d) = %d, want %d", tt.subtotal, tt.discount, got, tt.want)
		}
	}
}

func TestPaymentBasis(t *testing.T) {
	total := int64(45000)
	negative := int64(-100)

	tests := []struct {
		name  string
		order Order
		want  int64
	}{
		{"uses stored total", Order{Subtotal: 50000, Total: &total}, 45000},
		{"legacy order falls back to subtotal", Order{Subtotal: 50000}, 50000},
		{"negative total clamps to zero", Order{Subtotal: 50000, Total: &negative}, 0},
		{"zero everything", Order{}, 0},
	}
	for _, tt := range tests {
		if got := tt.order.PaymentBasis(); got != tt.want {
			t.Errorf("%s: PaymentBasis() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestNewReceiptProjectsOrder(t *testing.T) {
	total := int64(65000)
	o := Order{
		ID:             "20260115-12345-abc",
		Items:          []CartLine{{MenuItem: MenuItem{ID: "a", Name: "Hot latte", Price: 35000}, Qty: 2}},
		Subtotal:       70000,
		Total:          &total,
		DiscountName:   "ADDP",
		DiscountAmount: 5000,
		CashReceived:   100000,
		Change:         35000,
	}
	r := NewReceipt("Minnano Café", &o)
	if r.ShopName != "Minnano Café" || r.OrderID != o.ID {
		t.Errorf("header wrong: %+v", r)
	}
	if len(r.Items) != 1 || r.Items[0].Total != 70000 {
		t.Errorf("items wrong: %+v", r.Items)
	}
	if r.Total != 65000 || r.Change != 35000 {
		t.Errorf("amounts wrong: total=%d change=%d", r.Total, r.Change)
	}
}
