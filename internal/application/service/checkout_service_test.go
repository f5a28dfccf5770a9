package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/application/event"
	"github.com/sumashijiru045-dot/pos-app/internal/application/state"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/blobstore"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/repository"
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
	"github.com/sumashijiru045-dot/pos-app/pkg/orderid"
)

func newTestState(t *testing.T) *state.AppState {
	t.Helper()
	st := state.New(repository.NewSnapshotRepository(blobstore.NewMemoryStore()), event.NopSink{})
	st.Load(context.Background())
	return st
}

func newTestServices(t *testing.T) (*state.AppState, *CartService, *CheckoutService) {
	t.Helper()
	st := newTestState(t)
	idgen := orderid.NewGeneratorAt(func() time.Time {
		return time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	}, 1)
	return st, NewCartService(st, idgen), NewCheckoutService(st, "Minnano Café")
}

// openOrderWith commits a one-line cart totalling the given amount and
// returns the resulting Open order.
func openOrderWith(t *testing.T, st *state.AppState, cart *CartService, total int64) entity.Order {
	t.Helper()
	st.AddMenuItem(entity.MenuItem{ID: "test_item", Name: "Set menu", Price: total, Category: enum.CategoryFood})
	if _, err := cart.AddItem("test_item"); err != nil {
		t.Fatal(err)
	}
	order, err := cart.Commit("")
	if err != nil {
		t.Fatal(err)
	}
	return order
}

func TestRecomputeCashCombinesKipAndForeign(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 300000)

	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodCash); err != nil {
		t.Fatal(err)
	}

	// 10 USD at 25,000 plus 5,000 Kip tenders 255,000 against 300,000.
	got, err := checkout.RecomputeCash(order.ID, 5000, 10, 25000, enum.FxCurrencyUSD)
	if err != nil {
		t.Fatal(err)
	}
	if got.CashReceived != 255000 {
		t.Errorf("cashReceived = %d, want 255000", got.CashReceived)
	}
	if got.Change != 0 {
		t.Errorf("change = %d, want 0 (insufficient cash never goes negative)", got.Change)
	}
	if got.KipCashAmount != 5000 || got.FxAmount != 10 || got.FxRate != 25000 || got.FxCurrency != enum.FxCurrencyUSD {
		t.Errorf("audit fields wrong: %+v", got)
	}

	// Short tender blocks finalize and the order stays Open.
	if _, err := checkout.Finalize(order.ID); !errors.Is(err, apperror.ErrInsufficientCash) {
		t.Fatalf("Finalize err = %v, want ErrInsufficientCash", err)
	}
	after, _ := checkout.GetOrder(order.ID)
	if !after.IsOpen() {
		t.Error("failed finalize must leave the order Open")
	}
}

func TestRecomputeCashExactTenderFinalizes(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 300000)

	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodCash); err != nil {
		t.Fatal(err)
	}

	// 10 USD at 25,000 plus 50,000 Kip tenders exactly 300,000.
	got, err := checkout.RecomputeCash(order.ID, 50000, 10, 25000, enum.FxCurrencyUSD)
	if err != nil {
		t.Fatal(err)
	}
	if got.CashReceived != 300000 {
		t.Errorf("cashReceived = %d, want 300000", got.CashReceived)
	}
	if got.Change != 0 {
		t.Errorf("change = %d, want 0 for exact tender", got.Change)
	}

	receipt, err := checkout.Finalize(order.ID)
	if err != nil {
		t.Fatalf("exact tender must finalize, got %v", err)
	}
	if receipt.CashReceived != 300000 || receipt.Change != 0 {
		t.Errorf("receipt = %+v", receipt)
	}
	after, _ := checkout.GetOrder(order.ID)
	if after.Status != enum.OrderStatusClosed {
		t.Errorf("status = %v, want Closed", after.Status)
	}
}

func TestRecomputeCashChangeAndFinalize(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 40000)

	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodCash); err != nil {
		t.Fatal(err)
	}
	got, err := checkout.RecomputeCash(order.ID, 50000, 0, 0, enum.FxCurrencyNone)
	if err != nil {
		t.Fatal(err)
	}
	if got.CashReceived != 50000 || got.Change != 10000 {
		t.Errorf("cash=%d change=%d, want 50000/10000", got.CashReceived, got.Change)
	}

	receipt, err := checkout.Finalize(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if receipt.ShopName != "Minnano Café" || receipt.Total != 40000 || receipt.Change != 10000 {
		t.Errorf("receipt = %+v", receipt)
	}
	after, _ := checkout.GetOrder(order.ID)
	if after.Status != enum.OrderStatusClosed {
		t.Errorf("status = %v, want Closed", after.Status)
	}
}

func TestRecomputeCashIsIdempotent(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 100000)
	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodCash); err != nil {
		t.Fatal(err)
	}

	first, err := checkout.RecomputeCash(order.ID, 60000, 2, 25000, enum.FxCurrencyUSD)
	if err != nil {
		t.Fatal(err)
	}
	second, err := checkout.RecomputeCash(order.ID, 60000, 2, 25000, enum.FxCurrencyUSD)
	if err != nil {
		t.Fatal(err)
	}
	if first.CashReceived != second.CashReceived || first.Change != second.Change {
		t.Errorf("recompute not idempotent: %d/%d vs %d/%d",
			first.CashReceived, first.Change, second.CashReceived, second.Change)
	}
}

func TestRecomputeCashFloorsNegativeTender(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 10000)
	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodCash); err != nil {
		t.Fatal(err)
	}
	got, err := checkout.RecomputeCash(order.ID, -500, -3, -25000, enum.FxCurrencyUSD)
	if err != nil {
		t.Fatal(err)
	}
	if got.CashReceived != 0 || got.KipCashAmount != 0 || got.FxAmount != 0 || got.FxRate != 0 {
		t.Errorf("negative tender must floor to zero: %+v", got)
	}
}

func TestFinalizeRequiresPaymentMethod(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 10000)

	if _, err := checkout.Finalize(order.ID); !errors.Is(err, apperror.ErrNoPaymentMethod) {
		t.Fatalf("err = %v, want ErrNoPaymentMethod", err)
	}
	after, _ := checkout.GetOrder(order.ID)
	if !after.IsOpen() {
		t.Error("failed finalize must leave the order Open")
	}
}

func TestFinalizeQRSkipsCashGuard(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 75000)

	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodQR); err != nil {
		t.Fatal(err)
	}
	receipt, err := checkout.Finalize(order.ID)
	if err != nil {
		t.Fatalf("QR finalize should not require cash: %v", err)
	}
	if receipt.PaymentMethod != "QR" {
		t.Errorf("receipt method = %s", receipt.PaymentMethod)
	}
}

func TestFinalizeClosedOrderRejected(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 10000)
	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodQR); err != nil {
		t.Fatal(err)
	}
	if _, err := checkout.Finalize(order.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := checkout.Finalize(order.ID); !apperror.IsValidation(err) {
		t.Errorf("double finalize err = %v, want validation error", err)
	}
}

func TestSetPaymentMethodRejectsUnset(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 10000)
	if _, err := checkout.SetPaymentMethod(order.ID, enum.PaymentMethodUnset); !apperror.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestVoidOrder(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 10000)

	if _, err := checkout.OpenForCheckout(order.ID); err != nil {
		t.Fatal(err)
	}
	if err := checkout.VoidOrder(order.ID); err != nil {
		t.Fatal(err)
	}
	after, _ := checkout.GetOrder(order.ID)
	if after.Status != enum.OrderStatusVoid {
		t.Errorf("status = %v", after.Status)
	}
	if st.ActiveOrderID() != "" {
		t.Error("voiding the active order must clear the checkout session")
	}
	// Void is terminal.
	if err := checkout.VoidOrder(order.ID); !apperror.IsValidation(err) {
		t.Errorf("double void err = %v, want validation error", err)
	}
}

func TestOpenOrdersAndHistorySplit(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	a := openOrderWith(t, st, cart, 10000)
	if _, err := cart.AddItem("test_item"); err != nil {
		t.Fatal(err)
	}
	b, err := cart.Commit("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := checkout.SetPaymentMethod(b.ID, enum.PaymentMethodQR); err != nil {
		t.Fatal(err)
	}
	if _, err := checkout.Finalize(b.ID); err != nil {
		t.Fatal(err)
	}

	open := checkout.OpenOrders()
	if len(open) != 1 || open[0].ID != a.ID {
		t.Errorf("open = %v", open)
	}
	history := checkout.History()
	if len(history) != 1 || history[0].ID != b.ID {
		t.Errorf("history = %v", history)
	}
}

func TestEditOrderLoadsCart(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 10000)

	view, err := checkout.EditOrder(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 1 || view.Lines[0].ID != "test_item" {
		t.Errorf("cart = %+v", view)
	}

	// Editing a terminal order is rejected.
	if err := checkout.VoidOrder(order.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := checkout.EditOrder(order.ID); !apperror.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestActiveOrderLifecycle(t *testing.T) {
	st, cart, checkout := newTestServices(t)
	order := openOrderWith(t, st, cart, 10000)

	if _, err := checkout.ActiveOrder(); err == nil {
		t.Fatal("no active order yet, want error")
	}
	if _, err := checkout.OpenForCheckout(order.ID); err != nil {
		t.Fatal(err)
	}
	active, err := checkout.ActiveOrder()
	if err != nil {
		t.Fatal(err)
	}
	if active.ID != order.ID {
		t.Errorf("active = %s", active.ID)
	}
	checkout.ClearActive()
	if _, err := checkout.ActiveOrder(); err == nil {
		t.Error("cleared session must have no active order")
	}
}
