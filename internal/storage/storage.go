package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Storage defines the interface for content-store operations. The catalog
// stores image assets here and keeps only the returned key in the database.
// Implementations can use the local filesystem or any other backend.
type Storage interface {
	// Put stores a file under key and returns the public URL/path for it.
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)

	// Get retrieves a file by its key.
	// Returns an io.ReadCloser that must be closed by the caller.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by its key.
	// Returns nil if the file doesn't exist (idempotent).
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for accessing a stored file.
	URL(key string) string

	// Exists checks if a file exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// Key builds a collision-resistant storage key for an uploaded file:
// "<dir>/<unix-nanos>_<sanitized-basename>". The original filename is kept
// recognizable for operators browsing the store.
func Key(dir, filename string) string {
	base := path.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if base == "" || base == "." {
		base = "file"
	}
	return fmt.Sprintf("%s/%d_%s", dir, time.Now().UnixNano(), base)
}
