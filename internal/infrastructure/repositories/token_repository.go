package repositories

import (
	"context"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/cache"
)

// TokenRepositoryImpl implements domain.TokenRepository on the ephemeral
// store. The backing structure is set-shaped, but issuance always replaces
// the set with a single member: the most recent refresh token is the only
// session of record.
type TokenRepositoryImpl struct {
	store  cache.Store
	prefix string
}

// NewTokenRepository creates a refresh credential repository.
func NewTokenRepository(store cache.Store) domain.TokenRepository {
	return &TokenRepositoryImpl{store: store, prefix: "refresh:"}
}

// Replace implements domain.TokenRepository. The TTL restarts on every
// rotation.
func (r *TokenRepositoryImpl) Replace(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
	return r.store.ReplaceMembers(ctx, r.prefix+userID, refreshToken, ttl)
}

// Contains implements domain.TokenRepository. A token absent from the set is
// invalid even if cryptographically well-formed and unexpired.
func (r *TokenRepositoryImpl) Contains(ctx context.Context, userID, refreshToken string) (bool, error) {
	members, err := r.store.ListMembers(ctx, r.prefix+userID)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m == refreshToken {
			return true, nil
		}
	}
	return false, nil
}

// RevokeAll implements domain.TokenRepository. Revoking nothing is not an
// error.
func (r *TokenRepositoryImpl) RevokeAll(ctx context.Context, userID string) error {
	return r.store.RemoveAll(ctx, r.prefix+userID)
}
