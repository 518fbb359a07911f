package mocks

import (
	"context"
	"io"
	"time"
)

// MockMediaStore implements domain.MediaStore for testing
type MockMediaStore struct {
	PutFunc        func(ctx context.Context, key, contentType string, size int64, r io.Reader) error
	DeleteFunc     func(ctx context.Context, key string) error
	PresignGetFunc func(ctx context.Context, key string, expires time.Duration) (string, error)
}

// NewMockMediaStore creates a new MockMediaStore with default behaviors
func NewMockMediaStore() *MockMediaStore {
	return &MockMediaStore{}
}

// Put stores an object
func (m *MockMediaStore) Put(ctx context.Context, key, contentType string, size int64, r io.Reader) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, contentType, size, r)
	}
	return nil
}

// Delete removes an object
func (m *MockMediaStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

// PresignGet returns a time-limited download URL
func (m *MockMediaStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	if m.PresignGetFunc != nil {
		return m.PresignGetFunc(ctx, key, expires)
	}
	return "https://example.test/" + key, nil
}
