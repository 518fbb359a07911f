package services

import (
	"context"
	"errors"
	"testing"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/mocks"
)

func TestSearchServiceImpl_SearchUsers(t *testing.T) {
	t.Run("records query and returns public profiles", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.SearchFunc = func(ctx context.Context, query string, limit int) ([]*domain.User, error) {
			return []*domain.User{createVerifiedUser(t)}, nil
		}
		searchRepo := mocks.NewMockSearchRepository()
		var appended *domain.SearchEntry
		searchRepo.AppendFunc = func(ctx context.Context, entry *domain.SearchEntry) error {
			appended = entry
			return nil
		}

		svc := NewSearchService(userRepo, searchRepo)

		results, err := svc.SearchUsers(createTestContext(t), "u1", "test", 20)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].Email != "test@example.com" {
			t.Errorf("unexpected result %+v", results[0])
		}
		if appended == nil || appended.Query != "test" || appended.UserID != "u1" {
			t.Errorf("expected history entry for the query, got %+v", appended)
		}
	})

	t.Run("repeated query not recorded twice", func(t *testing.T) {
		searchRepo := mocks.NewMockSearchRepository()
		searchRepo.LastByUserFunc = func(ctx context.Context, userID string) (*domain.SearchEntry, error) {
			return &domain.SearchEntry{UserID: userID, Query: "test"}, nil
		}
		searchRepo.AppendFunc = func(ctx context.Context, entry *domain.SearchEntry) error {
			t.Error("Append must not run for a repeated query")
			return nil
		}

		svc := NewSearchService(mocks.NewMockUserRepository(), searchRepo)

		if _, err := svc.SearchUsers(createTestContext(t), "u1", "test", 20); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("changed query recorded again", func(t *testing.T) {
		searchRepo := mocks.NewMockSearchRepository()
		searchRepo.LastByUserFunc = func(ctx context.Context, userID string) (*domain.SearchEntry, error) {
			return &domain.SearchEntry{UserID: userID, Query: "old"}, nil
		}
		appended := false
		searchRepo.AppendFunc = func(ctx context.Context, entry *domain.SearchEntry) error {
			appended = true
			return nil
		}

		svc := NewSearchService(mocks.NewMockUserRepository(), searchRepo)

		if _, err := svc.SearchUsers(createTestContext(t), "u1", "new", 20); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !appended {
			t.Error("expected new query to be recorded")
		}
	})

	t.Run("blank query rejected", func(t *testing.T) {
		svc := NewSearchService(mocks.NewMockUserRepository(), mocks.NewMockSearchRepository())

		_, err := svc.SearchUsers(createTestContext(t), "u1", "   ", 20)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("results carry no password hash", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.SearchFunc = func(ctx context.Context, query string, limit int) ([]*domain.User, error) {
			return []*domain.User{createVerifiedUser(t)}, nil
		}

		svc := NewSearchService(userRepo, mocks.NewMockSearchRepository())

		results, err := svc.SearchUsers(createTestContext(t), "u1", "test", 20)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if results[0].ID == "" || results[0].FirstName == "" {
			t.Errorf("expected public fields populated, got %+v", results[0])
		}
	})
}

func TestSearchServiceImpl_ClearHistory(t *testing.T) {
	searchRepo := mocks.NewMockSearchRepository()
	var cleared string
	searchRepo.ClearByUserFunc = func(ctx context.Context, userID string) error {
		cleared = userID
		return nil
	}

	svc := NewSearchService(mocks.NewMockUserRepository(), searchRepo)

	if err := svc.ClearHistory(createTestContext(t), "u1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cleared != "u1" {
		t.Errorf("expected history cleared for u1, got %q", cleared)
	}
}
