package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/MEDWEDU/Lettera/domain"
)

// SearchServiceImpl implements domain.SearchService.
type SearchServiceImpl struct {
	userRepo   domain.UserRepository
	searchRepo domain.SearchRepository
}

// NewSearchService creates a new search service.
func NewSearchService(userRepo domain.UserRepository, searchRepo domain.SearchRepository) domain.SearchService {
	return &SearchServiceImpl{userRepo: userRepo, searchRepo: searchRepo}
}

// SearchUsers implements domain.SearchService. Each query is recorded in the
// caller's history unless it repeats the immediately preceding one.
func (s *SearchServiceImpl) SearchUsers(ctx context.Context, userID, query string, limit int) ([]*domain.PublicUser, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrValidation.WithDetails("query must not be empty")
	}

	last, err := s.searchRepo.LastByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	if last == nil || last.Query != query {
		entry := &domain.SearchEntry{UserID: userID, Query: query}
		if err := s.searchRepo.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to record search: %w", err)
		}
	}

	users, err := s.userRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	results := make([]*domain.PublicUser, 0, len(users))
	for _, u := range users {
		results = append(results, u.PublicProfile())
	}
	return results, nil
}

// History implements domain.SearchService
func (s *SearchServiceImpl) History(ctx context.Context, userID string, limit int) ([]*domain.SearchEntry, error) {
	return s.searchRepo.ListByUser(ctx, userID, limit)
}

// ClearHistory implements domain.SearchService
func (s *SearchServiceImpl) ClearHistory(ctx context.Context, userID string) error {
	return s.searchRepo.ClearByUser(ctx, userID)
}
