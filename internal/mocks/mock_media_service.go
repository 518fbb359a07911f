package mocks

import (
	"context"
	"io"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockMediaService implements domain.MediaService for testing
type MockMediaService struct {
	UploadFunc     func(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (*domain.Media, string, error)
	DeleteFunc     func(ctx context.Context, userID, mediaID string) error
	PresignGetFunc func(ctx context.Context, userID, mediaID string) (string, error)
}

// NewMockMediaService creates a new MockMediaService with default behaviors
func NewMockMediaService() *MockMediaService {
	return &MockMediaService{}
}

// Upload stores an object and its metadata
func (m *MockMediaService) Upload(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (*domain.Media, string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, userID, filename, contentType, size, r)
	}
	media := &domain.Media{ID: "media1", OwnerID: userID, Filename: filename, ContentType: contentType, Size: size}
	return media, "https://example.test/media1", nil
}

// Delete removes a media object and record
func (m *MockMediaService) Delete(ctx context.Context, userID, mediaID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, mediaID)
	}
	return nil
}

// PresignGet returns a download URL for the owner
func (m *MockMediaService) PresignGet(ctx context.Context, userID, mediaID string) (string, error) {
	if m.PresignGetFunc != nil {
		return m.PresignGetFunc(ctx, userID, mediaID)
	}
	return "https://example.test/" + mediaID, nil
}
