package mocks

import (
	"context"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockMessageRepository implements domain.MessageRepository for testing
type MockMessageRepository struct {
	CreateFunc     func(ctx context.Context, msg *domain.Message) error
	ListByChatFunc func(ctx context.Context, chatID string, limit int, before time.Time) ([]*domain.Message, error)
}

// NewMockMessageRepository creates a new MockMessageRepository with default behaviors
func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{}
}

// Create creates a message
func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

// ListByChat lists messages in a chat
func (m *MockMessageRepository) ListByChat(ctx context.Context, chatID string, limit int, before time.Time) ([]*domain.Message, error) {
	if m.ListByChatFunc != nil {
		return m.ListByChatFunc(ctx, chatID, limit, before)
	}
	return nil, nil
}
