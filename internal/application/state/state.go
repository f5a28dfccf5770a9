// Package state holds the process-wide application state: catalog, cart,
// ledger and active order id. The original kept these as top-level globals;
// here they live in one struct injected into every service, guarded by a
// single mutex. In-memory state is authoritative for the session; the blob
// store is written best-effort after every mutation.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/application/event"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	domainRepo "github.com/sumashijiru045-dot/pos-app/internal/domain/repository"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderNotOpen  = errors.New("order is not open")
)

const persistTimeout = 5 * time.Second

// AppState owns the durable structures and the ephemeral cart.
type AppState struct {
	mu   sync.Mutex
	repo domainRepo.SnapshotRepository
	sink event.Sink

	catalog        []entity.MenuItem
	cart           entity.Cart
	orders         []entity.Order
	activeOrderID  string
	editingOrderID string
}

// New creates an empty state bound to its snapshot repository and event sink.
func New(repo domainRepo.SnapshotRepository, sink event.Sink) *AppState {
	return &AppState{repo: repo, sink: sink}
}

// Load reads the three snapshots. Fallbacks (absent keys, parse failures)
// leave defaults in place and report through the sink; Load itself never
// fails the startup.
func (s *AppState) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.repo.LoadCatalog(ctx)
	if err != nil {
		s.sink.PersistenceWarning(domainRepo.KeyMenu, err)
	}
	s.catalog = catalog

	orders, err := s.repo.LoadLedger(ctx)
	if err != nil {
		s.sink.PersistenceWarning(domainRepo.KeyOrders, err)
	}
	s.orders = orders

	active, err := s.repo.LoadActiveOrderID(ctx)
	if err != nil {
		s.sink.PersistenceWarning(domainRepo.KeyActiveOrder, err)
	}
	s.activeOrderID = active
}

// persist helpers run the store write outside the lock and swallow the
// error into the sink. A failed write leaves memory authoritative.

func (s *AppState) persistCatalogLocked() {
	items := make([]entity.MenuItem, len(s.catalog))
	copy(items, s.catalog)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.repo.SaveCatalog(ctx, items); err != nil {
			s.sink.PersistenceWarning(domainRepo.KeyMenu, err)
		}
	}()
}

func (s *AppState) persistLedgerLocked() {
	orders := make([]entity.Order, len(s.orders))
	copy(orders, s.orders)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.repo.SaveLedger(ctx, orders); err != nil {
			s.sink.PersistenceWarning(domainRepo.KeyOrders, err)
		}
	}()
}

func (s *AppState) persistActiveLocked() {
	id := s.activeOrderID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.repo.SaveActiveOrderID(ctx, id); err != nil {
			s.sink.PersistenceWarning(domainRepo.KeyActiveOrder, err)
		}
	}()
}

// --- catalog ---

// Catalog returns a copy of the menu.
func (s *AppState) Catalog() []entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.MenuItem, len(s.catalog))
	copy(items, s.catalog)
	return items
}

// FindMenuItem looks an item up by id using structural string equality.
func (s *AppState) FindMenuItem(id string) (entity.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.catalog {
		if m.ID == id {
			return m, true
		}
	}
	return entity.MenuItem{}, false
}

// AddMenuItem appends a catalog entry and persists the menu.
func (s *AppState) AddMenuItem(item entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = append(s.catalog, item)
	s.persistCatalogLocked()
}

// UpdateMenuItem applies fn to the matching item. Identity stays immutable:
// fn receives the item with its id already set and cannot change it.
func (s *AppState) UpdateMenuItem(id string, fn func(*entity.MenuItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			fn(&s.catalog[i])
			s.catalog[i].ID = id
			s.persistCatalogLocked()
			return true
		}
	}
	return false
}

// RemoveMenuItem deletes a catalog entry and persists the menu.
func (s *AppState) RemoveMenuItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			s.catalog = append(s.catalog[:i], s.catalog[i+1:]...)
			s.persistCatalogLocked()
			return true
		}
	}
	return false
}

// --- cart ---

// MutateCart runs fn against the live cart under the lock. The cart is
// ephemeral and never persisted.
func (s *AppState) MutateCart(fn func(*entity.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cart)
}

// CartView returns a deep copy of the cart for read-only use.
func (s *AppState) CartView() entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.cart
	view.Lines = s.cart.Snapshot()
	return view
}

// CommitCart materializes the cart into the ledger and clears it, in one
// critical section so no partial state is observable. When existingID names
// an Open order its items, subtotal, total, note and discount are overwritten
// in place; any other existingID (stale, closed, empty) falls through to the
// create path. makeID receives a ledger-existence check for collision retry.
func (s *AppState) CommitCart(existingID string, makeID func(exists func(string) bool) string, now time.Time) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return entity.Order{}, ErrEmptyCart
	}

	subtotal := s.cart.Subtotal()
	total := entity.ComputeTotal(subtotal, s.cart.DiscountAmount)

	if existingID != "" {
		for i := range s.orders {
			if s.orders[i].ID == existingID && s.orders[i].IsOpen() {
				o := &s.orders[i]
				o.Items = s.cart.Snapshot()
				o.Subtotal = subtotal
				o.Total = &total
				o.Note = s.cart.Note
				o.DiscountName = s.cart.DiscountName
				o.DiscountAmount = s.cart.DiscountAmount
				committed := *o
				s.cart.Clear()
				s.editingOrderID = ""
				s.persistLedgerLocked()
				return committed, nil
			}
		}
	}

	id := makeID(func(candidate string) bool {
		for i := range s.orders {
			if s.orders[i].ID == candidate {
				return true
			}
		}
		return false
	})

	order := entity.Order{
		ID:             id,
		CreatedAt:      now,
		Items:          s.cart.Snapshot(),
		Subtotal:       subtotal,
		Total:          &total,
		Note:           s.cart.Note,
		DiscountName:   s.cart.DiscountName,
		DiscountAmount: s.cart.DiscountAmount,
	}
	// Newest first, so the Open view lists recent orders on top.
	s.orders = append([]entity.Order{order}, s.orders...)
	s.cart.Clear()
	s.editingOrderID = ""
	s.persistLedgerLocked()
	return order, nil
}

// LoadOrderIntoCart copies an Open order back into the cart for editing and
// records the editing session. Non-Open orders are rejected.
func (s *AppState) LoadOrderIntoCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !s.orders[i].IsOpen() {
			return ErrOrderNotOpen
		}
		o := &s.orders[i]
		lines := make([]entity.CartLine, len(o.Items))
		copy(lines, o.Items)
		s.cart.Lines = lines
		s.cart.Note = o.Note
		s.cart.DiscountName = o.DiscountName
		s.cart.DiscountAmount = o.DiscountAmount
		s.editingOrderID = id
		return nil
	}
	return ErrOrderNotFound
}

// --- ledger ---

// Orders returns a copy of the whole ledger in storage order.
func (s *AppState) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]entity.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// FindOrder returns a copy of the order with the given id.
func (s *AppState) FindOrder(id string) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i], true
		}
	}
	return entity.Order{}, false
}

// MutateOrder applies fn to the stored order under the lock. fn returning an
// error aborts the mutation and nothing is persisted; on ErrOrderNotFound fn
// never ran.
func (s *AppState) MutateOrder(id string, fn func(*entity.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			if err := fn(&s.orders[i]); err != nil {
				return err
			}
			s.persistLedgerLocked()
			return nil
		}
	}
	return ErrOrderNotFound
}

// --- active / editing session ---

func (s *AppState) ActiveOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeOrderID
}

func (s *AppState) SetActiveOrderID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeOrderID = id
	s.persistActiveLocked()
}

func (s *AppState) EditingOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingOrderID
}

// Sink exposes the event sink so services emit through the same channel.
func (s *AppState) Sink() event.Sink {
	return s.sink
}
