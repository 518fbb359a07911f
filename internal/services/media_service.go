package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/MEDWEDU/Lettera/domain"
)

// presignValidity is how long a generated download URL stays usable.
const presignValidity = 15 * time.Minute

// allowedMediaTypes maps accepted content types to the stored extension.
var allowedMediaTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
	"video/mp4":       ".mp4",
}

// MediaServiceImpl implements domain.MediaService.
type MediaServiceImpl struct {
	mediaRepo  domain.MediaRepository
	mediaStore domain.MediaStore
	maxSize    int64
}

// NewMediaService creates a new media service with a maximum object size.
func NewMediaService(mediaRepo domain.MediaRepository, mediaStore domain.MediaStore, maxSize int64) domain.MediaService {
	return &MediaServiceImpl{
		mediaRepo:  mediaRepo,
		mediaStore: mediaStore,
		maxSize:    maxSize,
	}
}

// Upload implements domain.MediaService. It validates type and size, stores
// the object, persists the metadata record and returns a presigned GET URL.
func (s *MediaServiceImpl) Upload(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (*domain.Media, string, error) {
	ext, ok := allowedMediaTypes[contentType]
	if !ok {
		return nil, "", domain.ErrValidation.WithDetails(fmt.Sprintf("content type %q is not allowed", contentType))
	}
	if size <= 0 || size > s.maxSize {
		return nil, "", domain.ErrValidation.WithDetails(fmt.Sprintf("file size must be between 1 byte and %d bytes", s.maxSize))
	}

	key := path.Join("media", userID, uuid.NewString()+ext)
	if err := s.mediaStore.Put(ctx, key, contentType, size, r); err != nil {
		return nil, "", fmt.Errorf("failed to store object: %w", err)
	}

	media := &domain.Media{
		OwnerID:     userID,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		StorageKey:  key,
	}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		// Keep storage and metadata consistent when the record write fails.
		_ = s.mediaStore.Delete(ctx, key)
		return nil, "", fmt.Errorf("failed to persist media record: %w", err)
	}

	url, err := s.mediaStore.PresignGet(ctx, key, presignValidity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to presign media url: %w", err)
	}
	return media, url, nil
}

// Delete implements domain.MediaService, owner-gated.
func (s *MediaServiceImpl) Delete(ctx context.Context, userID, mediaID string) error {
	media, err := s.mediaRepo.FindByID(ctx, mediaID)
	if err != nil {
		return err
	}
	if media.OwnerID != userID {
		return domain.ErrForbidden
	}

	if err := s.mediaStore.Delete(ctx, media.StorageKey); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return s.mediaRepo.Delete(ctx, mediaID)
}

// PresignGet implements domain.MediaService, owner-gated.
func (s *MediaServiceImpl) PresignGet(ctx context.Context, userID, mediaID string) (string, error) {
	media, err := s.mediaRepo.FindByID(ctx, mediaID)
	if err != nil {
		return "", err
	}
	if media.OwnerID != userID {
		return "", domain.ErrForbidden
	}
	return s.mediaStore.PresignGet(ctx, media.StorageKey, presignValidity)
}
