package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalAssetStore writes assets to a directory served by the HTTP layer
// under /assets.
type LocalAssetStore struct {
	Dir     string
	BaseURL string
}

func NewLocalAssetStore(dir, baseURL string) (*LocalAssetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory %s: %w", dir, err)
	}
	return &LocalAssetStore{Dir: dir, BaseURL: baseURL}, nil
}

func (s *LocalAssetStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write asset %s: %w", name, err)
	}
	return s.BaseURL + "/" + name, nil
}
