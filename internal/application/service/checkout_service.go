package service

import (
	"errors"
	"math"

	"github.com/sumashijiru045-dot/pos-app/internal/application/state"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
)

// CheckoutService drives an order through payment: Open -> Closed on a
// successful finalize, Open -> Void on cancellation. Nothing ever leaves a
// terminal state.
type CheckoutService struct {
	state    *state.AppState
	shopName string
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(st *state.AppState, shopName string) *CheckoutService {
	return &CheckoutService{state: st, shopName: shopName}
}

// OpenOrders lists Open orders, newest first (ledger order).
func (s *CheckoutService) OpenOrders() []entity.Order {
	var open []entity.Order
	for _, o := range s.state.Orders() {
		if o.IsOpen() {
			open = append(open, o)
		}
	}
	return open
}

// History lists Closed and Void orders.
func (s *CheckoutService) History() []entity.Order {
	var done []entity.Order
	for _, o := range s.state.Orders() {
		if !o.IsOpen() {
			done = append(done, o)
		}
	}
	return done
}

// GetOrder retrieves an order by ID
func (s *CheckoutService) GetOrder(id string) (entity.Order, error) {
	o, ok := s.state.FindOrder(id)
	if !ok {
		return entity.Order{}, apperror.NewNotFoundError("Order")
	}
	return o, nil
}

// OpenForCheckout makes the order the active payment target.
func (s *CheckoutService) OpenForCheckout(id string) (entity.Order, error) {
	o, ok := s.state.FindOrder(id)
	if !ok {
		return entity.Order{}, apperror.NewNotFoundError("Order")
	}
	s.state.SetActiveOrderID(id)
	return o, nil
}

// ActiveOrder returns the order currently being paid.
func (s *CheckoutService) ActiveOrder() (entity.Order, error) {
	id := s.state.ActiveOrderID()
	if id == "" {
		return entity.Order{}, apperror.NewNotFoundError("Active order")
	}
	return s.GetOrder(id)
}

// ClearActive ends the checkout session without touching the order.
func (s *CheckoutService) ClearActive() {
	s.state.SetActiveOrderID("")
}

// SetPaymentMethod records Cash or QR on an Open order.
func (s *CheckoutService) SetPaymentMethod(orderID string, method enum.PaymentMethod) (entity.Order, error) {
	if method != enum.PaymentMethodCash && method != enum.PaymentMethodQR {
		return entity.Order{}, apperror.NewValidationError("Payment method must be Cash or QR")
	}
	err := s.state.MutateOrder(orderID, func(o *entity.Order) error {
		if !o.IsOpen() {
			return apperror.NewValidationError("Order is not open")
		}
		o.PaymentMethod = method
		return nil
	})
	if err != nil {
		return entity.Order{}, mapOrderErr(err)
	}
	o, _ := s.state.FindOrder(orderID)
	return o, nil
}

// RecomputeCash is the single source of truth for change. It converts the
// tendered amounts (domestic Kip plus foreign cash at the operator-entered
// rate) into the cash-received total and the change due, and stores the full
// audit trail on the order in one step. Negative tender is floored to zero,
// never rejected; calling twice with the same arguments stores the same
// fields. Callers re-derive the currently held Kip amount before calling, so
// switching currency or editing the rate never discards entered cash.
func (s *CheckoutService) RecomputeCash(orderID string, kip int64, fxAmount, fxRate float64, fxCurrency enum.FxCurrency) (entity.Order, error) {
	if kip < 0 {
		kip = 0
	}
	if fxAmount < 0 {
		fxAmount = 0
	}
	if fxRate < 0 {
		fxRate = 0
	}
	foreignEquivalent := int64(math.Round(fxAmount * fxRate))

	err := s.state.MutateOrder(orderID, func(o *entity.Order) error {
		if !o.IsOpen() {
			return apperror.NewValidationError("Order is not open")
		}
		cashReceived := kip + foreignEquivalent
		change := cashReceived - o.PaymentBasis()
		if change < 0 {
			change = 0
		}
		o.CashReceived = cashReceived
		o.Change = change
		o.KipCashAmount = kip
		o.FxAmount = fxAmount
		o.FxRate = fxRate
		o.FxCurrency = fxCurrency
		return nil
	})
	if err != nil {
		return entity.Order{}, mapOrderErr(err)
	}
	o, _ := s.state.FindOrder(orderID)
	return o, nil
}

// Finalize accepts the payment and closes the order. Guards: a payment
// method must be selected, and Cash must cover the payment basis. QR is
// settled externally and carries no numeric guard. On success the order
// freezes and the caller is handed the read-only receipt.
func (s *CheckoutService) Finalize(orderID string) (*entity.Receipt, error) {
	var receipt *entity.Receipt
	err := s.state.MutateOrder(orderID, func(o *entity.Order) error {
		if !o.IsOpen() {
			return apperror.NewValidationError("Order is not open")
		}
		switch o.PaymentMethod {
		case enum.PaymentMethodUnset:
			return apperror.ErrNoPaymentMethod
		case enum.PaymentMethodCash:
			if o.CashReceived < o.PaymentBasis() {
				return apperror.ErrInsufficientCash
			}
		}
		o.Status = enum.OrderStatusClosed
		receipt = entity.NewReceipt(s.shopName, o)
		return nil
	})
	if err != nil {
		return nil, mapOrderErr(err)
	}
	return receipt, nil
}

// VoidOrder cancels an Open order. Void is terminal.
func (s *CheckoutService) VoidOrder(orderID string) error {
	err := s.state.MutateOrder(orderID, func(o *entity.Order) error {
		if !o.Status.CanTransitionTo(enum.OrderStatusVoid) {
			return apperror.NewValidationError("Order is not open")
		}
		o.Status = enum.OrderStatusVoid
		return nil
	})
	if err != nil {
		return mapOrderErr(err)
	}
	if s.state.ActiveOrderID() == orderID {
		s.state.SetActiveOrderID("")
	}
	return nil
}

// EditOrder loads an Open order back into the cart. Editing a Closed or Void
// order is rejected, not undefined.
func (s *CheckoutService) EditOrder(orderID string) (entity.Cart, error) {
	if err := s.state.LoadOrderIntoCart(orderID); err != nil {
		return entity.Cart{}, mapOrderErr(err)
	}
	return s.state.CartView(), nil
}

func mapOrderErr(err error) error {
	switch {
	case errors.Is(err, state.ErrOrderNotFound):
		return apperror.NewNotFoundError("Order")
	case errors.Is(err, state.ErrOrderNotOpen):
		return apperror.NewValidationError("Order is not open")
	default:
		return err
	}
}
