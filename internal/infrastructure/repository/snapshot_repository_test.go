package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	domainRepo "github.com/sumashijiru045-dot/pos-app/internal/domain/repository"
	"github.com/sumashijiru045-dot/pos-app/internal/infrastructure/blobstore"
)

func newRepo() (domainRepo.SnapshotRepository, domainRepo.BlobStore) {
	store := blobstore.NewMemoryStore()
	return NewSnapshotRepository(store), store
}

func TestLoadCatalogDefaultsOnAbsentKey(t *testing.T) {
	repo, _ := newRepo()
	items, err := repo.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("absent key is not a failure: %v", err)
	}
	if len(items) != len(entity.DefaultMenu()) {
		t.Errorf("got %d items, want the default menu", len(items))
	}
}

func TestLoadCatalogDefaultsOnGarbage(t *testing.T) {
	repo, store := newRepo()
	ctx := context.Background()
	if err := store.Put(ctx, domainRepo.KeyMenu, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	items, err := repo.LoadCatalog(ctx)
	if err == nil {
		t.Error("parse failure should surface as a warning-worthy error")
	}
	if len(items) != len(entity.DefaultMenu()) {
		t.Error("parse failure must fall back to the default menu")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	want := []entity.MenuItem{{ID: "x", Name: "Tea", Price: 30000, Category: enum.CategoryDrink}}
	if err := repo.SaveCatalog(ctx, want); err != nil {
		t.Fatal(err)
	}
	got, err := repo.LoadCatalog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %+v", got)
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()

	empty, err := repo.LoadLedger(ctx)
	if err != nil || len(empty) != 0 {
		t.Fatalf("fresh store: orders=%v err=%v", empty, err)
	}

	total := int64(45000)
	want := []entity.Order{{
		ID:            "20260115-12345-abc",
		CreatedAt:     time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Items:         []entity.CartLine{{MenuItem: entity.MenuItem{ID: "x", Name: "Tea", Price: 45000}, Qty: 1}},
		Subtotal:      45000,
		Total:         &total,
		PaymentMethod: enum.PaymentMethodCash,
		Status:        enum.OrderStatusClosed,
		CashReceived:  50000,
		Change:        5000,
		KipCashAmount: 50000,
	}}
	if err := repo.SaveLedger(ctx, want); err != nil {
		t.Fatal(err)
	}
	got, err := repo.LoadLedger(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d orders", len(got))
	}
	o := got[0]
	if o.ID != want[0].ID || o.Status != enum.OrderStatusClosed || o.PaymentMethod != enum.PaymentMethodCash {
		t.Errorf("order = %+v", o)
	}
	if o.Total == nil || *o.Total != 45000 {
		t.Errorf("total = %v", o.Total)
	}
	if !o.CreatedAt.Equal(want[0].CreatedAt) {
		t.Errorf("createdAt = %v", o.CreatedAt)
	}
}

func TestLegacyOrderWithoutTotalSurvives(t *testing.T) {
	repo, store := newRepo()
	ctx := context.Background()
	// An order persisted before the discount era has no total field.
	legacy := `[{"id":"old-1","createdAt":"2025-06-01T09:00:00Z","items":[],"subtotal":30000,"status":"Open"}]`
	if err := store.Put(ctx, domainRepo.KeyOrders, []byte(legacy)); err != nil {
		t.Fatal(err)
	}
	got, err := repo.LoadLedger(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Total != nil {
		t.Fatalf("got %+v", got)
	}
	if got[0].PaymentBasis() != 30000 {
		t.Errorf("legacy basis = %d, want subtotal", got[0].PaymentBasis())
	}
}

func TestActiveOrderIDLifecycle(t *testing.T) {
	repo, store := newRepo()
	ctx := context.Background()

	id, err := repo.LoadActiveOrderID(ctx)
	if err != nil || id != "" {
		t.Fatalf("fresh store: id=%q err=%v", id, err)
	}

	if err := repo.SaveActiveOrderID(ctx, "ord-1"); err != nil {
		t.Fatal(err)
	}
	id, err = repo.LoadActiveOrderID(ctx)
	if err != nil || id != "ord-1" {
		t.Fatalf("id=%q err=%v", id, err)
	}

	// Clearing removes the key entirely.
	if err := repo.SaveActiveOrderID(ctx, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, domainRepo.KeyActiveOrder); err == nil {
		t.Error("cleared active id should delete the key")
	}
}
