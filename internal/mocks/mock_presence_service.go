package mocks

import (
	"context"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockPresenceService implements domain.PresenceService for testing
type MockPresenceService struct {
	PingFunc    func(ctx context.Context, userID string, status domain.PresenceStatus) error
	GetFunc     func(ctx context.Context, userID string) (domain.PresenceStatus, error)
	GetManyFunc func(ctx context.Context, userIDs []string) (map[string]domain.PresenceStatus, error)
}

// NewMockPresenceService creates a new MockPresenceService with default behaviors
func NewMockPresenceService() *MockPresenceService {
	return &MockPresenceService{}
}

// Ping refreshes the presence marker
func (m *MockPresenceService) Ping(ctx context.Context, userID string, status domain.PresenceStatus) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx, userID, status)
	}
	return nil
}

// Get reads a user's presence
func (m *MockPresenceService) Get(ctx context.Context, userID string) (domain.PresenceStatus, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return domain.PresenceOffline, nil
}

// GetMany reads presence for a batch of users
func (m *MockPresenceService) GetMany(ctx context.Context, userIDs []string) (map[string]domain.PresenceStatus, error) {
	if m.GetManyFunc != nil {
		return m.GetManyFunc(ctx, userIDs)
	}
	statuses := make(map[string]domain.PresenceStatus, len(userIDs))
	for _, id := range userIDs {
		statuses[id] = domain.PresenceOffline
	}
	return statuses, nil
}
