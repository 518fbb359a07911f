package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	tokenRepo domain.TokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	verificationSvc domain.VerificationService,
	mailerSvc domain.MailerService) domain.AuthService {
	t.Helper()

	// Use provided mocks or create defaults
	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if tokenRepo == nil {
		tokenRepo = mocks.NewMockTokenRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if verificationSvc == nil {
		verificationSvc = mocks.NewMockVerificationService()
	}
	if mailerSvc == nil {
		mailerSvc = mocks.NewMockMailerService()
	}

	return NewAuthService(userRepo, tokenRepo, passwordSvc, tokenSvc, verificationSvc, mailerSvc, zerolog.Nop())
}

// createVerifiedUser creates a verified user entity for testing
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           "665f1c2ab3d4e5f6a7b8c9d0",
		Email:        "test@example.com",
		PasswordHash: "hashed:Password1!",
		Verified:     true,
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}
}

// createPendingUser creates an unverified user entity for testing
func createPendingUser(t *testing.T) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.Verified = false
	return user
}

// createTestContext creates a context with timeout for testing
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
