package storage

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockFileStorage is an in-memory FileStorage for tests
type MockFileStorage struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMockFileStorage creates an empty in-memory file storage
func NewMockFileStorage() *MockFileStorage {
	return &MockFileStorage{files: make(map[string][]byte)}
}

// Store implements FileStorage.Store
func (m *MockFileStorage) Store(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return NewStorageError("Store", key, ErrInvalidKey)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = append([]byte(nil), data...)
	return nil
}

// Retrieve implements FileStorage.Retrieve
func (m *MockFileStorage) Retrieve(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[key]
	if !ok {
		return nil, NewStorageError("Retrieve", key, ErrFileNotFound)
	}
	return append([]byte(nil), data...), nil
}

// Exists implements FileStorage.Exists
func (m *MockFileStorage) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[key]
	return ok, nil
}

// List implements FileStorage.List
func (m *MockFileStorage) List(ctx context.Context, prefix string) ([]FileMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var files []FileMetadata
	for key, data := range m.files {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		files = append(files, FileMetadata{
			Key:      key,
			Size:     int64(len(data)),
			StoredAt: time.Now(),
		})
	}
	return files, nil
}
