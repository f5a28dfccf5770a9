package service

import (
	"strings"
	"testing"

	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
)

func strp(s string) *string { return &s }
func intp(v int64) *int64   { return &v }

func TestListFiltersByCategory(t *testing.T) {
	st := newTestState(t)
	svc := NewCatalogService(st)

	all := svc.List("")
	if len(all) == 0 {
		t.Fatal("default catalog is empty")
	}
	if got := svc.List("All"); len(got) != len(all) {
		t.Errorf(`List("All") = %d items, want %d`, len(got), len(all))
	}

	drinks := svc.List("Drink")
	if len(drinks) == 0 || len(drinks) == len(all) {
		t.Fatalf("drink filter looks wrong: %d of %d", len(drinks), len(all))
	}
	for _, m := range drinks {
		if m.Category != enum.CategoryDrink {
			t.Errorf("non-drink in filtered list: %+v", m)
		}
	}
}

func TestCreateBlankItem(t *testing.T) {
	st := newTestState(t)
	svc := NewCatalogService(st)
	before := len(svc.List(""))

	item := svc.Create()
	if !strings.HasPrefix(item.ID, "item_") {
		t.Errorf("generated id = %q", item.ID)
	}
	if item.Name != "New Item" || item.Price != 0 || item.Category != enum.CategoryDrink {
		t.Errorf("blank item = %+v", item)
	}
	if len(svc.List("")) != before+1 {
		t.Error("item not appended")
	}
}

func TestUpdatePatchesFields(t *testing.T) {
	st := newTestState(t)
	svc := NewCatalogService(st)
	st.AddMenuItem(entity.MenuItem{ID: "x", Name: "Tea", Price: 30000, Category: enum.CategoryDrink})

	item, err := svc.Update("x", UpdateMenuItemInput{Name: strp("Green tea"), Price: intp(32000)})
	if err != nil {
		t.Fatal(err)
	}
	if item.Name != "Green tea" || item.Price != 32000 {
		t.Errorf("item = %+v", item)
	}
	if item.Category != enum.CategoryDrink {
		t.Error("untouched field changed")
	}

	// Negative price floors to zero.
	item, err = svc.Update("x", UpdateMenuItemInput{Price: intp(-500)})
	if err != nil {
		t.Fatal(err)
	}
	if item.Price != 0 {
		t.Errorf("price = %d, want 0", item.Price)
	}

	if _, err := svc.Update("missing", UpdateMenuItemInput{}); apperror.GetAppError(err).Code != 404 {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestSetImageStoresVerbatim(t *testing.T) {
	st := newTestState(t)
	svc := NewCatalogService(st)
	st.AddMenuItem(entity.MenuItem{ID: "x", Name: "Tea", Price: 30000, Category: enum.CategoryDrink})

	ref := "data:image/jpeg;base64,/9j/4AAQ=="
	item, err := svc.SetImage("x", ref)
	if err != nil {
		t.Fatal(err)
	}
	if item.ImageRef != ref {
		t.Errorf("image ref = %q", item.ImageRef)
	}
}

func TestDeleteItem(t *testing.T) {
	st := newTestState(t)
	svc := NewCatalogService(st)
	st.AddMenuItem(entity.MenuItem{ID: "x", Name: "Tea", Price: 30000, Category: enum.CategoryDrink})

	if err := svc.Delete("x"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get("x"); err == nil {
		t.Error("deleted item still found")
	}
	if err := svc.Delete("x"); apperror.GetAppError(err).Code != 404 {
		t.Errorf("err = %v, want not found", err)
	}
}
