package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// FailoverStore tries every operation against the primary store and, on any
// error, re-executes it against the fallback and reports the fallback
// result. Verification codes and refresh tokens are loss-tolerant, so a
// single-instance degraded mode beats failing the request. Callers must not
// assume cross-instance consistency while degraded.
type FailoverStore struct {
	primary  Store
	fallback Store
	logger   zerolog.Logger
}

// NewFailoverStore wraps a primary store with an in-process fallback.
func NewFailoverStore(primary, fallback Store, logger zerolog.Logger) *FailoverStore {
	return &FailoverStore{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With().Str("component", "cache").Logger(),
	}
}

func (s *FailoverStore) degraded(op string, err error) {
	s.logger.Warn().Err(err).Str("op", op).Msg("primary cache unavailable, using in-process fallback")
}

// Set implements Store.
func (s *FailoverStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.primary.Set(ctx, key, value, ttl); err != nil {
		s.degraded("set", err)
		return s.fallback.Set(ctx, key, value, ttl)
	}
	return nil
}

// Get implements Store.
func (s *FailoverStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, ok, err := s.primary.Get(ctx, key)
	if err != nil {
		s.degraded("get", err)
		return s.fallback.Get(ctx, key)
	}
	return val, ok, nil
}

// GetDel implements Store.
func (s *FailoverStore) GetDel(ctx context.Context, key string) (string, bool, error) {
	val, ok, err := s.primary.GetDel(ctx, key)
	if err != nil {
		s.degraded("getdel", err)
		return s.fallback.GetDel(ctx, key)
	}
	return val, ok, nil
}

// Delete implements Store.
func (s *FailoverStore) Delete(ctx context.Context, key string) error {
	if err := s.primary.Delete(ctx, key); err != nil {
		s.degraded("delete", err)
		return s.fallback.Delete(ctx, key)
	}
	return nil
}

// AddMember implements Store.
func (s *FailoverStore) AddMember(ctx context.Context, key, member string, ttl time.Duration) error {
	if err := s.primary.AddMember(ctx, key, member, ttl); err != nil {
		s.degraded("sadd", err)
		return s.fallback.AddMember(ctx, key, member, ttl)
	}
	return nil
}

// ReplaceMembers implements Store.
func (s *FailoverStore) ReplaceMembers(ctx context.Context, key, member string, ttl time.Duration) error {
	if err := s.primary.ReplaceMembers(ctx, key, member, ttl); err != nil {
		s.degraded("replace", err)
		return s.fallback.ReplaceMembers(ctx, key, member, ttl)
	}
	return nil
}

// ListMembers implements Store.
func (s *FailoverStore) ListMembers(ctx context.Context, key string) ([]string, error) {
	members, err := s.primary.ListMembers(ctx, key)
	if err != nil {
		s.degraded("smembers", err)
		return s.fallback.ListMembers(ctx, key)
	}
	return members, nil
}

// RemoveAll implements Store.
func (s *FailoverStore) RemoveAll(ctx context.Context, key string) error {
	if err := s.primary.RemoveAll(ctx, key); err != nil {
		s.degraded("removeall", err)
		return s.fallback.RemoveAll(ctx, key)
	}
	return nil
}

// Ping implements Store. It reports primary reachability only; the fallback
// never participates in health checks.
func (s *FailoverStore) Ping(ctx context.Context) error {
	return s.primary.Ping(ctx)
}
