// Package cache provides the ephemeral TTL key-value store used for
// short-lived secrets and session state: a Redis-backed implementation, an
// in-process fallback with the same contract, and a failover wrapper that
// degrades from the former to the latter when Redis is unreachable.
package cache

import (
	"context"
	"time"
)

// Store is the ephemeral key-value contract. Values are strings; keys carry
// a TTL and disappear when it lapses. Member operations back the refresh
// credential sets.
type Store interface {
	// Set writes a value with a TTL, replacing any existing value.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// GetDel atomically reads and removes the key.
	GetDel(ctx context.Context, key string) (string, bool, error)

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// AddMember adds a member to the set at key and refreshes the TTL.
	AddMember(ctx context.Context, key, member string, ttl time.Duration) error

	// ReplaceMembers replaces the whole set with a single member.
	ReplaceMembers(ctx context.Context, key, member string, ttl time.Duration) error

	// ListMembers returns all members of the set at key.
	ListMembers(ctx context.Context, key string) ([]string, error)

	// RemoveAll deletes the set at key.
	RemoveAll(ctx context.Context, key string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
