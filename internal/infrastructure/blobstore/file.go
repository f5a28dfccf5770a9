package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	domainRepo "github.com/sumashijiru045-dot/pos-app/internal/domain/repository"
)

// fileStore keeps one file per key under a directory. Writes go through a
// temp file and rename so a crash cannot leave a half-written blob.
type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a blob store rooted at dir, creating it if needed.
func NewFileStore(dir string) (domainRepo.BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	// Keys contain dots, never path separators.
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_") + ".json"
	return filepath.Join(s.dir, name)
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, &domainRepo.ErrKeyNotFound{Key: key}
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *fileStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
