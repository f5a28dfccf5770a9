package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	domainRepo "github.com/sumashijiru045-dot/pos-app/internal/domain/repository"
)

type snapshotRepository struct {
	store domainRepo.BlobStore
}

// NewSnapshotRepository creates the snapshot repository over a blob store.
func NewSnapshotRepository(store domainRepo.BlobStore) domainRepo.SnapshotRepository {
	return &snapshotRepository{store: store}
}

// LoadCatalog returns the stored menu, or the built-in default catalog when
// the key is absent or the blob does not parse. The returned error is non-nil
// only on a fallback the caller should surface as a persistence warning;
// a simply-absent key is not a failure.
func (r *snapshotRepository) LoadCatalog(ctx context.Context) ([]entity.MenuItem, error) {
	data, err := r.store.Get(ctx, domainRepo.KeyMenu)
	if err != nil {
		var notFound *domainRepo.ErrKeyNotFound
		if errors.As(err, &notFound) {
			return entity.DefaultMenu(), nil
		}
		return entity.DefaultMenu(), err
	}
	var items []entity.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return entity.DefaultMenu(), err
	}
	return items, nil
}

func (r *snapshotRepository) SaveCatalog(ctx context.Context, items []entity.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, domainRepo.KeyMenu, data)
}

// LoadLedger returns the stored orders, or an empty ledger on absence or
// parse failure, with the same error convention as LoadCatalog.
func (r *snapshotRepository) LoadLedger(ctx context.Context) ([]entity.Order, error) {
	data, err := r.store.Get(ctx, domainRepo.KeyOrders)
	if err != nil {
		var notFound *domainRepo.ErrKeyNotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	var orders []entity.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *snapshotRepository) SaveLedger(ctx context.Context, orders []entity.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, domainRepo.KeyOrders, data)
}

// LoadActiveOrderID returns the stored active order id, or "" when none is
// set. The value is stored as a bare string, not JSON.
func (r *snapshotRepository) LoadActiveOrderID(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, domainRepo.KeyActiveOrder)
	if err != nil {
		var notFound *domainRepo.ErrKeyNotFound
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// SaveActiveOrderID stores the id, deleting the key when it is cleared.
func (r *snapshotRepository) SaveActiveOrderID(ctx context.Context, id string) error {
	if id == "" {
		return r.store.Delete(ctx, domainRepo.KeyActiveOrder)
	}
	return r.store.Put(ctx, domainRepo.KeyActiveOrder, []byte(id))
}
