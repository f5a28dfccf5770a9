package blobstore

import (
	"context"
	"errors"
	"time"

	domainRepo "github.com/sumashijiru045-dot/pos-app/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is the single-table schema backing the postgres driver. The value is
// stored as an uninterpreted byte string.
type Blob struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Data      []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for the Blob model
func (Blob) TableName() string {
	return "blobs"
}

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a blob store backed by the blobs table.
func NewPostgresStore(db *gorm.DB) domainRepo.BlobStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob Blob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domainRepo.ErrKeyNotFound{Key: key}
	}
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

func (s *postgresStore) Put(ctx context.Context, key string, data []byte) error {
	blob := Blob{Key: key, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&blob).Error
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Blob{}, "key = ?", key).Error
}
