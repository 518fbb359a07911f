package mocks

import (
	"context"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockMediaRepository implements domain.MediaRepository for testing
type MockMediaRepository struct {
	CreateFunc   func(ctx context.Context, media *domain.Media) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Media, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

// NewMockMediaRepository creates a new MockMediaRepository with default behaviors
func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{}
}

// Create creates a media record
func (m *MockMediaRepository) Create(ctx context.Context, media *domain.Media) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, media)
	}
	return nil
}

// FindByID finds a media record by ID
func (m *MockMediaRepository) FindByID(ctx context.Context, id string) (*domain.Media, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrMediaNotFound
}

// Delete deletes a media record
func (m *MockMediaRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
