package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/cache"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, cache.Store) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, cache.NewRedisStore(client)
}

func TestTokenRepositoryImpl_ReplaceRotatesSingleCredential(t *testing.T) {
	_, store := newTestStore(t)
	repo := NewTokenRepository(store)
	ctx := context.Background()

	if err := repo.Replace(ctx, "u1", "token-a", time.Hour); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	ok, err := repo.Contains(ctx, "u1", "token-a")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if !ok {
		t.Fatal("expected installed token to be live")
	}

	// Rotation kills the predecessor.
	if err := repo.Replace(ctx, "u1", "token-b", time.Hour); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if ok, _ := repo.Contains(ctx, "u1", "token-a"); ok {
		t.Error("expected rotated-out token to be dead")
	}
	if ok, _ := repo.Contains(ctx, "u1", "token-b"); !ok {
		t.Error("expected current token to be live")
	}
}

func TestTokenRepositoryImpl_RevokeAll(t *testing.T) {
	_, store := newTestStore(t)
	repo := NewTokenRepository(store)
	ctx := context.Background()

	if err := repo.Replace(ctx, "u1", "token-a", time.Hour); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := repo.RevokeAll(ctx, "u1"); err != nil {
		t.Fatalf("RevokeAll failed: %v", err)
	}

	if ok, _ := repo.Contains(ctx, "u1", "token-a"); ok {
		t.Error("expected revoked token to be dead")
	}

	// Revoking an already-empty set is not an error.
	if err := repo.RevokeAll(ctx, "u1"); err != nil {
		t.Fatalf("repeated RevokeAll failed: %v", err)
	}
}

func TestTokenRepositoryImpl_CredentialExpires(t *testing.T) {
	mr, store := newTestStore(t)
	repo := NewTokenRepository(store)
	ctx := context.Background()

	if err := repo.Replace(ctx, "u1", "token-a", time.Minute); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if ok, _ := repo.Contains(ctx, "u1", "token-a"); ok {
		t.Error("expected expired credential to be dead")
	}
}

func TestTokenRepositoryImpl_UsersAreIsolated(t *testing.T) {
	_, store := newTestStore(t)
	repo := NewTokenRepository(store)
	ctx := context.Background()

	if err := repo.Replace(ctx, "u1", "token-a", time.Hour); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := repo.Replace(ctx, "u2", "token-b", time.Hour); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if err := repo.RevokeAll(ctx, "u1"); err != nil {
		t.Fatalf("RevokeAll failed: %v", err)
	}

	if ok, _ := repo.Contains(ctx, "u2", "token-b"); !ok {
		t.Error("expected other user's credential to survive")
	}
}

var _ domain.TokenRepository = (*TokenRepositoryImpl)(nil)
