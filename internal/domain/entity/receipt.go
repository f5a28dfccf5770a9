package entity

import "time"

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// Receipt is a value object handed to the operator after Finalize.
// It is NOT stored - it is composed from the closed order at issue time,
// so the frozen order cannot be mutated through it.
type Receipt struct {
	ShopName       string        `json:"shop_name"`
	OrderID        string        `json:"order_id"`
	IssuedAt       time.Time     `json:"issued_at"`
	Items          []ReceiptItem `json:"items"`
	Subtotal       int64         `json:"subtotal"`
	DiscountName   string        `json:"discount_name,omitempty"`
	DiscountAmount int64         `json:"discount_amount,omitempty"`
	Total          int64         `json:"total"`
	PaymentMethod  string        `json:"payment_method"`
	CashReceived   int64         `json:"cash_received,omitempty"`
	Change         int64         `json:"change,omitempty"`
	Note           string        `json:"note,omitempty"`
}

// NewReceipt projects a closed order into its printable view.
func NewReceipt(shopName string, o *Order) *Receipt {
	items := make([]ReceiptItem, len(o.Items))
	for i, l := range o.Items {
		items[i] = ReceiptItem{
			Name:      l.Name,
			Qty:       l.Qty,
			UnitPrice: l.Price,
			Total:     l.LineTotal(),
		}
	}
	return &Receipt{
		ShopName:       shopName,
		OrderID:        o.ID,
		IssuedAt:       o.CreatedAt,
		Items:          items,
		Subtotal:       o.Subtotal,
		DiscountName:   o.DiscountName,
		DiscountAmount: o.DiscountAmount,
		Total:          o.PaymentBasis(),
		PaymentMethod:  o.PaymentMethod.String(),
		CashReceived:   o.CashReceived,
		Change:         o.Change,
		Note:           o.Note,
	}
}
