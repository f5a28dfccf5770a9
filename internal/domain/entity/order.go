package entity

import (
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
)

// Order is a lifecycle-tracked record of a sale. Identity is immutable once
// created; the ledger never deletes orders, it only transitions their status.
// All Kip amounts are whole smallest units.
//
// Total is a pointer because orders persisted before the discount field
// existed carry no total; PaymentBasis falls back to the subtotal for those.
type Order struct {
	ID             string             `json:"id"`
	CreatedAt      time.Time          `json:"createdAt"`
	Items          []CartLine         `json:"items"`
	Subtotal       int64              `json:"subtotal"`
	Total          *int64             `json:"total,omitempty"`
	PaymentMethod  enum.PaymentMethod `json:"paymentMethod"`
	CashReceived   int64              `json:"cashReceived,omitempty"`
	Change         int64              `json:"change,omitempty"`
	Status         enum.OrderStatus   `json:"status"`
	Note           string             `json:"note,omitempty"`
	DiscountName   string             `json:"discountName,omitempty"`
	DiscountAmount int64              `json:"discountAmount,omitempty"`
	KipCashAmount  int64              `json:"kipCashAmount,omitempty"`
	FxAmount       float64            `json:"fxAmount,omitempty"`
	FxRate         float64            `json:"fxRate,omitempty"`
	FxCurrency     enum.FxCurrency    `json:"fxCurrency,omitempty"`
}

// ComputeTotal derives max(0, subtotal - discount) for storage on the order.
func ComputeTotal(subtotal, discount int64) int64 {
	t := subtotal - discount
	if t < 0 {
		return 0
	}
	return t
}

// PaymentBasis is the amount a payment must cover: the stored total, or the
// subtotal for legacy orders without one, never negative.
func (o *Order) PaymentBasis() int64 {
	basis := o.Subtotal
	if o.Total != nil {
		basis = *o.Total
	}
	if basis < 0 {
		return 0
	}
	return basis
}

// IsOpen reports whether the order can still be edited or paid.
func (o *Order) IsOpen() bool {
	return o.Status == enum.OrderStatusOpen
}
