package mocks

import (
	"context"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockSearchService implements domain.SearchService for testing
type MockSearchService struct {
	SearchUsersFunc  func(ctx context.Context, userID, query string, limit int) ([]*domain.PublicUser, error)
	HistoryFunc      func(ctx context.Context, userID string, limit int) ([]*domain.SearchEntry, error)
	ClearHistoryFunc func(ctx context.Context, userID string) error
}

// NewMockSearchService creates a new MockSearchService with default behaviors
func NewMockSearchService() *MockSearchService {
	return &MockSearchService{}
}

// SearchUsers matches users against a query
func (m *MockSearchService) SearchUsers(ctx context.Context, userID, query string, limit int) ([]*domain.PublicUser, error) {
	if m.SearchUsersFunc != nil {
		return m.SearchUsersFunc(ctx, userID, query, limit)
	}
	return nil, nil
}

// History reads the caller's search history
func (m *MockSearchService) History(ctx context.Context, userID string, limit int) ([]*domain.SearchEntry, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID, limit)
	}
	return nil, nil
}

// ClearHistory wipes the caller's search history
func (m *MockSearchService) ClearHistory(ctx context.Context, userID string) error {
	if m.ClearHistoryFunc != nil {
		return m.ClearHistoryFunc(ctx, userID)
	}
	return nil
}
