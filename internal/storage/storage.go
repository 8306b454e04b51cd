// Package storage abstracts the blob store holding property documents behind
// a narrow Put interface, with a disk-backed implementation and a bounded
// worker pool for batch uploads.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Storage is the narrow blob-store interface the application depends on.
// Put stores data under key with the given content type and returns the
// public URL of the stored object.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// DiskStorage implements Storage on the local filesystem, serving as the
// blob store in development and tests.
type DiskStorage struct {
	dir     string
	baseURL string
}

// NewDiskStorage creates a DiskStorage rooted at dir. Returned URLs join
// baseURL with the object key.
func NewDiskStorage(dir, baseURL string) (*DiskStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
	}
	return &DiskStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes data to dir/key and returns its URL. Keys may contain path
// separators; parent directories are created as needed. Keys escaping the
// root are rejected.
func (s *DiskStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", errors.New("storage key is empty")
	}
	target := filepath.Join(s.dir, filepath.FromSlash(clean))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write object %q: %w", key, err)
	}

	return s.baseURL + clean, nil
}
