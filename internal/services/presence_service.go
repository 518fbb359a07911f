package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
)

// maxPresenceBatch bounds a single batch presence lookup.
const maxPresenceBatch = 100

// PresenceServiceImpl implements domain.PresenceService. Presence is
// poll-based: clients ping while active and the marker expires on its own.
type PresenceServiceImpl struct {
	presenceRepo domain.PresenceRepository
	ttl          time.Duration
}

// NewPresenceService creates a presence service with the given marker TTL.
func NewPresenceService(presenceRepo domain.PresenceRepository, ttl time.Duration) domain.PresenceService {
	return &PresenceServiceImpl{presenceRepo: presenceRepo, ttl: ttl}
}

// Ping implements domain.PresenceService
func (s *PresenceServiceImpl) Ping(ctx context.Context, userID string, status domain.PresenceStatus) error {
	if status != domain.PresenceOnline && status != domain.PresenceAway {
		return domain.ErrValidation.WithDetails("status must be online or away")
	}
	if err := s.presenceRepo.Set(ctx, userID, status, s.ttl); err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	return nil
}

// Get implements domain.PresenceService
func (s *PresenceServiceImpl) Get(ctx context.Context, userID string) (domain.PresenceStatus, error) {
	return s.presenceRepo.Get(ctx, userID)
}

// GetMany implements domain.PresenceService
func (s *PresenceServiceImpl) GetMany(ctx context.Context, userIDs []string) (map[string]domain.PresenceStatus, error) {
	if len(userIDs) == 0 {
		return nil, domain.ErrValidation.WithDetails("at least one user id is required")
	}
	if len(userIDs) > maxPresenceBatch {
		return nil, domain.ErrValidation.WithDetails(fmt.Sprintf("at most %d user ids per request", maxPresenceBatch))
	}
	statuses, err := s.presenceRepo.GetMany(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read presence: %w", err)
	}
	return statuses, nil
}
