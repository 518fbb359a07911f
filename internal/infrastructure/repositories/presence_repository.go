package repositories

import (
	"context"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/cache"
)

// PresenceRepositoryImpl implements domain.PresenceRepository on the
// ephemeral store. Absence of the key means offline; expiry is the only way
// a user goes offline (logout does not clear presence).
type PresenceRepositoryImpl struct {
	store  cache.Store
	prefix string
}

// NewPresenceRepository creates a presence repository.
func NewPresenceRepository(store cache.Store) domain.PresenceRepository {
	return &PresenceRepositoryImpl{store: store, prefix: "presence:"}
}

// Set implements domain.PresenceRepository
func (r *PresenceRepositoryImpl) Set(ctx context.Context, userID string, status domain.PresenceStatus, ttl time.Duration) error {
	return r.store.Set(ctx, r.prefix+userID, string(status), ttl)
}

// Get implements domain.PresenceRepository
func (r *PresenceRepositoryImpl) Get(ctx context.Context, userID string) (domain.PresenceStatus, error) {
	val, ok, err := r.store.Get(ctx, r.prefix+userID)
	if err != nil {
		return domain.PresenceOffline, err
	}
	if !ok {
		return domain.PresenceOffline, nil
	}
	switch domain.PresenceStatus(val) {
	case domain.PresenceOnline, domain.PresenceAway:
		return domain.PresenceStatus(val), nil
	default:
		return domain.PresenceOffline, nil
	}
}

// GetMany implements domain.PresenceRepository. Every requested ID appears
// in the result; absent markers come back offline.
func (r *PresenceRepositoryImpl) GetMany(ctx context.Context, userIDs []string) (map[string]domain.PresenceStatus, error) {
	statuses := make(map[string]domain.PresenceStatus, len(userIDs))
	for _, id := range userIDs {
		status, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		statuses[id] = status
	}
	return statuses, nil
}
