package storage

import "context"

// AssetStore persists rendered ticket assets and returns a reference the
// client can download or share.
type AssetStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}
