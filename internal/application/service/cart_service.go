package service

import (
	"errors"
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/application/state"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
	"github.com/sumashijiru045-dot/pos-app/pkg/orderid"
)

// CartService is the cart engine: it assembles lines for the active editing
// session and materializes them into the ledger on commit.
type CartService struct {
	state *state.AppState
	idgen *orderid.Generator
	now   func() time.Time
}

// NewCartService creates a new cart service
func NewCartService(st *state.AppState, idgen *orderid.Generator) *CartService {
	return &CartService{
		state: st,
		idgen: idgen,
		now:   time.Now,
	}
}

// AddItem puts one unit of a menu item into the cart. An existing line for
// the same id has its quantity incremented instead of a second line being
// appended. Emits the transient "item added" event for UI feedback.
func (s *CartService) AddItem(itemID string) (entity.Cart, error) {
	item, ok := s.state.FindMenuItem(itemID)
	if !ok {
		return entity.Cart{}, apperror.NewNotFoundError("Menu item")
	}
	s.state.MutateCart(func(c *entity.Cart) {
		c.Add(item)
	})
	s.state.Sink().ItemAdded(item.ID, item.Name)
	return s.state.CartView(), nil
}

// IncrementLine raises a line's quantity by one.
func (s *CartService) IncrementLine(itemID string) entity.Cart {
	s.state.MutateCart(func(c *entity.Cart) {
		c.Increment(itemID)
	})
	return s.state.CartView()
}

// DecrementLine lowers a line's quantity by one; reaching zero removes the
// line, a quantity below one is never stored.
func (s *CartService) DecrementLine(itemID string) entity.Cart {
	s.state.MutateCart(func(c *entity.Cart) {
		c.Decrement(itemID)
	})
	return s.state.CartView()
}

// RemoveLine drops a line unconditionally.
func (s *CartService) RemoveLine(itemID string) entity.Cart {
	s.state.MutateCart(func(c *entity.Cart) {
		c.Remove(itemID)
	})
	return s.state.CartView()
}

// SetNote attaches a free-form note to the cart.
func (s *CartService) SetNote(text string) entity.Cart {
	s.state.MutateCart(func(c *entity.Cart) {
		c.Note = text
	})
	return s.state.CartView()
}

// SetDiscount records a named discount. The amount is stored as given; the
// order total clamps at read time, so an oversized discount yields total 0
// rather than an error here.
func (s *CartService) SetDiscount(name string, amount int64) entity.Cart {
	s.state.MutateCart(func(c *entity.Cart) {
		c.DiscountName = name
		c.DiscountAmount = amount
	})
	return s.state.CartView()
}

// ClearDiscount removes any applied discount.
func (s *CartService) ClearDiscount() entity.Cart {
	s.state.MutateCart(func(c *entity.Cart) {
		c.DiscountName = ""
		c.DiscountAmount = 0
	})
	return s.state.CartView()
}

// View returns the current cart with derived subtotal and total.
func (s *CartService) View() entity.Cart {
	return s.state.CartView()
}

// Commit materializes the cart. With an existingOrderID resolving to an Open
// order the order is overwritten in place (edit path); otherwise a fresh
// order is created and prepended to the ledger. Either way the cart is
// cleared atomically with the commit.
func (s *CartService) Commit(existingOrderID string) (entity.Order, error) {
	makeID := func(exists func(string) bool) string {
		return s.idgen.New(exists)
	}
	order, err := s.state.CommitCart(existingOrderID, makeID, s.now())
	if err != nil {
		if errors.Is(err, state.ErrEmptyCart) {
			return entity.Order{}, apperror.NewValidationError("Cart is empty")
		}
		return entity.Order{}, err
	}
	return order, nil
}
