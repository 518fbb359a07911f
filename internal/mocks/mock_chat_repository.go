package mocks

import (
	"context"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockChatRepository implements domain.ChatRepository for testing
type MockChatRepository struct {
	CreateFunc             func(ctx context.Context, chat *domain.Chat) error
	FindByIDFunc           func(ctx context.Context, id string) (*domain.Chat, error)
	FindByParticipantsFunc func(ctx context.Context, a, b string) (*domain.Chat, error)
	ListByUserFunc         func(ctx context.Context, userID string) ([]*domain.Chat, error)
	TouchFunc              func(ctx context.Context, chatID, lastMessage string, at time.Time) error
}

// NewMockChatRepository creates a new MockChatRepository with default behaviors
func NewMockChatRepository() *MockChatRepository {
	return &MockChatRepository{}
}

// Create creates a chat
func (m *MockChatRepository) Create(ctx context.Context, chat *domain.Chat) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, chat)
	}
	return nil
}

// FindByID finds a chat by ID
func (m *MockChatRepository) FindByID(ctx context.Context, id string) (*domain.Chat, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrChatNotFound
}

// FindByParticipants finds the chat between two users
func (m *MockChatRepository) FindByParticipants(ctx context.Context, a, b string) (*domain.Chat, error) {
	if m.FindByParticipantsFunc != nil {
		return m.FindByParticipantsFunc(ctx, a, b)
	}
	return nil, domain.ErrChatNotFound
}

// ListByUser lists the chats a user participates in
func (m *MockChatRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Chat, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// Touch updates the chat preview fields
func (m *MockChatRepository) Touch(ctx context.Context, chatID, lastMessage string, at time.Time) error {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, chatID, lastMessage, at)
	}
	return nil
}
