package mocks

import (
	"context"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockSearchRepository implements domain.SearchRepository for testing
type MockSearchRepository struct {
	AppendFunc      func(ctx context.Context, entry *domain.SearchEntry) error
	LastByUserFunc  func(ctx context.Context, userID string) (*domain.SearchEntry, error)
	ListByUserFunc  func(ctx context.Context, userID string, limit int) ([]*domain.SearchEntry, error)
	ClearByUserFunc func(ctx context.Context, userID string) error
}

// NewMockSearchRepository creates a new MockSearchRepository with default behaviors
func NewMockSearchRepository() *MockSearchRepository {
	return &MockSearchRepository{}
}

// Append stores a search history entry
func (m *MockSearchRepository) Append(ctx context.Context, entry *domain.SearchEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

// LastByUser returns the most recent entry for a user
func (m *MockSearchRepository) LastByUser(ctx context.Context, userID string) (*domain.SearchEntry, error) {
	if m.LastByUserFunc != nil {
		return m.LastByUserFunc(ctx, userID)
	}
	return nil, nil
}

// ListByUser lists history entries for a user
func (m *MockSearchRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.SearchEntry, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

// ClearByUser removes all history entries for a user
func (m *MockSearchRepository) ClearByUser(ctx context.Context, userID string) error {
	if m.ClearByUserFunc != nil {
		return m.ClearByUserFunc(ctx, userID)
	}
	return nil
}
