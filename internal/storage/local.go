package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps assets on the local filesystem under root and
// reports URLs under baseURL, which the HTTP server maps to root via a
// static file route.
type LocalStorage struct {
	root    string
	baseURL string
}

var _ Storage = (*LocalStorage)(nil)

// NewLocalStorage creates root if needed and returns the store.
func NewLocalStorage(root, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return &LocalStorage{root: root, baseURL: baseURL}, nil
}

func (s *LocalStorage) filePath(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// Put writes the content to a temp file in the destination directory and
// renames it into place, so readers never observe partial writes.
func (s *LocalStorage) Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	dest := s.filePath(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file for %s: %w", key, err)
	}

	_, err = io.Copy(tmp, content)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), dest)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing %s: %w", key, err)
	}

	return s.URL(key), nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(s.filePath(key))
	if os.IsNotExist(err) {
		return nil, ErrFileNotFound(key)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", key, err)
	}
	return f, nil
}

// Delete removes the file; a missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.filePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) URL(key string) string {
	return s.baseURL + "/" + key
}

func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(s.filePath(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", key, err)
	}
	return true, nil
}
