package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MockStorage is an in-memory Storage for tests. It records every Put and
// Delete so tests can assert on content-store side effects, and can be made
// to fail on demand.
type MockStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	Deletes []string

	// PutErr, when set, is returned by every Put call.
	PutErr error
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{files: make(map[string][]byte)}
}

func (s *MockStorage) Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	if s.PutErr != nil {
		return "", s.PutErr
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = data
	return s.URL(key), nil
}

func (s *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[key]
	if !ok {
		return nil, ErrFileNotFound(key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *MockStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.files, key)
	s.Deletes = append(s.Deletes, key)
	return nil
}

func (s *MockStorage) URL(key string) string {
	return "/uploads/" + key
}

func (s *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.files[key]
	return ok, nil
}

// Len returns the number of stored files.
func (s *MockStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
