package mocks

import (
	"context"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockPresenceRepository implements domain.PresenceRepository for testing
type MockPresenceRepository struct {
	SetFunc     func(ctx context.Context, userID string, status domain.PresenceStatus, ttl time.Duration) error
	GetFunc     func(ctx context.Context, userID string) (domain.PresenceStatus, error)
	GetManyFunc func(ctx context.Context, userIDs []string) (map[string]domain.PresenceStatus, error)
}

// NewMockPresenceRepository creates a new MockPresenceRepository with default behaviors
func NewMockPresenceRepository() *MockPresenceRepository {
	return &MockPresenceRepository{}
}

// Set stores a presence marker
func (m *MockPresenceRepository) Set(ctx context.Context, userID string, status domain.PresenceStatus, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, userID, status, ttl)
	}
	return nil
}

// Get returns the presence marker for a user
func (m *MockPresenceRepository) Get(ctx context.Context, userID string) (domain.PresenceStatus, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return domain.PresenceOffline, nil
}

// GetMany returns presence markers for a batch of users
func (m *MockPresenceRepository) GetMany(ctx context.Context, userIDs []string) (map[string]domain.PresenceStatus, error) {
	if m.GetManyFunc != nil {
		return m.GetManyFunc(ctx, userIDs)
	}
	statuses := make(map[string]domain.PresenceStatus, len(userIDs))
	for _, id := range userIDs {
		statuses[id] = domain.PresenceOffline
	}
	return statuses, nil
}
