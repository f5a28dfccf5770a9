package service

import (
	"github.com/sumashijiru045-dot/pos-app/internal/application/state"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
	"github.com/sumashijiru045-dot/pos-app/pkg/utils"
)

// CatalogService manages the menu. Item identity is immutable; everything
// else is mutable through Update.
type CatalogService struct {
	state *state.AppState
}

// NewCatalogService creates a new catalog service
func NewCatalogService(st *state.AppState) *CatalogService {
	return &CatalogService{state: st}
}

// List returns the catalog, optionally filtered by category name. An empty
// or "All" filter returns everything.
func (s *CatalogService) List(category string) []entity.MenuItem {
	items := s.state.Catalog()
	if category == "" || category == "All" {
		return items
	}
	want := enum.ParseCategory(category)
	filtered := make([]entity.MenuItem, 0, len(items))
	for _, m := range items {
		if m.Category == want {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// Get retrieves a menu item by ID
func (s *CatalogService) Get(id string) (entity.MenuItem, error) {
	item, ok := s.state.FindMenuItem(id)
	if !ok {
		return entity.MenuItem{}, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// Create appends a blank item with a generated id, mirroring the "Add Menu
// Item" settings action.
func (s *CatalogService) Create() entity.MenuItem {
	item := entity.MenuItem{
		ID:       utils.GenerateItemID(),
		Name:     "New Item",
		Price:    0,
		Category: enum.CategoryDrink,
	}
	s.state.AddMenuItem(item)
	return item
}

// UpdateMenuItemInput carries the mutable fields; nil means leave unchanged.
type UpdateMenuItemInput struct {
	Name     *string
	Price    *int64
	Category *string
	ImageRef *string
}

// Update patches a menu item. Price is floored at zero.
func (s *CatalogService) Update(id string, input UpdateMenuItemInput) (entity.MenuItem, error) {
	ok := s.state.UpdateMenuItem(id, func(m *entity.MenuItem) {
		if input.Name != nil {
			m.Name = *input.Name
		}
		if input.Price != nil {
			p := *input.Price
			if p < 0 {
				p = 0
			}
			m.Price = p
		}
		if input.Category != nil {
			m.Category = enum.ParseCategory(*input.Category)
		}
		if input.ImageRef != nil {
			m.ImageRef = *input.ImageRef
		}
	})
	if !ok {
		return entity.MenuItem{}, apperror.NewNotFoundError("Menu item")
	}
	item, _ := s.state.FindMenuItem(id)
	return item, nil
}

// SetImage stores an encoded image reference verbatim. The image pipeline
// that produced it (resize, encode) is an external collaborator; the catalog
// treats the reference as an opaque string.
func (s *CatalogService) SetImage(id, ref string) (entity.MenuItem, error) {
	refCopy := ref
	return s.Update(id, UpdateMenuItemInput{ImageRef: &refCopy})
}

// Delete removes a menu item from the catalog. Existing order lines keep
// their snapshot of the item.
func (s *CatalogService) Delete(id string) error {
	if !s.state.RemoveMenuItem(id) {
		return apperror.NewNotFoundError("Menu item")
	}
	return nil
}
