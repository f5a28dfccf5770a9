package repository

import (
	"context"

	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
)

// SnapshotRepository loads and saves the three durable structures: the menu
// catalog, the order ledger and the active order id. Loads fall back to
// defaults on absence or parse failure; saves are best-effort and report
// failures through the caller's event sink rather than returning them.
type SnapshotRepository interface {
	LoadCatalog(ctx context.Context) ([]entity.MenuItem, error)
	SaveCatalog(ctx context.Context, items []entity.MenuItem) error
	LoadLedger(ctx context.Context) ([]entity.Order, error)
	SaveLedger(ctx context.Context, orders []entity.Order) error
	LoadActiveOrderID(ctx context.Context) (string, error)
	SaveActiveOrderID(ctx context.Context, id string) error
}
