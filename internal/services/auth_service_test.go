package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/mocks"
)

func TestAuthServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockVerificationService, *mocks.MockMailerService)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name:     "successful registration",
			email:    "NewUser@Example.com",
			password: "Password1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = "665f1c2ab3d4e5f6a7b8c9d0"
					return nil
				}
			},
			expectedError: nil,
			validateUser: func(t *testing.T, user *domain.User) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Email != "newuser@example.com" {
					t.Errorf("expected lowercased email, got %s", user.Email)
				}
				if user.Verified {
					t.Error("expected user to start unverified")
				}
				if user.PasswordHash != "hashed:Password1!" {
					t.Errorf("expected password hash %s, got %s", "hashed:Password1!", user.PasswordHash)
				}
			},
		},
		{
			name:     "email already registered",
			email:    "existing@example.com",
			password: "Password1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrEmailExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when email exists")
				}
			},
		},
		{
			name:          "weak password rejected",
			email:         "newuser@example.com",
			password:      "short",
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockVerificationService, *mocks.MockMailerService) {},
			expectedError: domain.ErrWeakPassword,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil on weak password")
				}
			},
		},
		{
			name:     "duplicate key race on create",
			email:    "newuser@example.com",
			password: "Password1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrEmailExists
				}
			},
			expectedError: domain.ErrEmailExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil on duplicate create")
				}
			},
		},
		{
			name:     "user creation fails",
			email:    "newuser@example.com",
			password: "Password1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("database error")
				}
			},
			expectedError: fmt.Errorf("failed to create user: %w", errors.New("database error")),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when creation fails")
				}
			},
		},
		{
			name:     "email dispatch fails but account survives",
			email:    "newuser@example.com",
			password: "Password1!",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = "665f1c2ab3d4e5f6a7b8c9d0"
					return nil
				}
				mailerSvc.SendVerificationEmailFunc = func(to, code string) error {
					return errors.New("smtp unavailable")
				}
			},
			expectedError: domain.ErrEmailDispatchFailed,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected no user returned when dispatch fails")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			verificationSvc := mocks.NewMockVerificationService()
			mailerSvc := mocks.NewMockMailerService()

			tt.setupMocks(userRepo, verificationSvc, mailerSvc)

			authService := createAuthServiceForTest(t, userRepo, nil, nil, nil, verificationSvc, mailerSvc)
			ctx := createTestContext(t)

			user, err := authService.Register(ctx, tt.email, tt.password, "Test", "User")

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				var domainErr *domain.Error
				if errors.As(tt.expectedError, &domainErr) {
					if !errors.Is(err, tt.expectedError) {
						t.Errorf("expected error %v, got %v", tt.expectedError, err)
					}
				} else if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateUser(t, user)
		})
	}
}

func TestAuthServiceImpl_VerifyEmail(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		code           string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockVerificationService, *mocks.MockTokenRepository)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name:  "successful verification issues session",
			email: "test@example.com",
			code:  "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, tokenRepo *mocks.MockTokenRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createPendingUser(t), nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
				if result.AccessToken == "" || result.RefreshToken == "" {
					t.Error("expected both tokens to be issued")
				}
				if !result.User.Verified {
					t.Error("expected user to be verified in result")
				}
				if result.ExpiresIn != int64((15 * 60)) {
					t.Errorf("expected expiresIn 900, got %d", result.ExpiresIn)
				}
			},
		},
		{
			name:          "unknown email",
			email:         "ghost@example.com",
			code:          "123456",
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockVerificationService, *mocks.MockTokenRepository) {},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:  "already verified account",
			email: "test@example.com",
			code:  "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, tokenRepo *mocks.MockTokenRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrAlreadyVerified,
		},
		{
			name:  "wrong code passes through",
			email: "test@example.com",
			code:  "000000",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, tokenRepo *mocks.MockTokenRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createPendingUser(t), nil
				}
				verificationSvc.ConsumeFunc = func(ctx context.Context, email, code string) error {
					return domain.ErrInvalidCode
				}
			},
			expectedError: domain.ErrInvalidCode,
		},
		{
			name:  "expired code passes through",
			email: "test@example.com",
			code:  "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, tokenRepo *mocks.MockTokenRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createPendingUser(t), nil
				}
				verificationSvc.ConsumeFunc = func(ctx context.Context, email, code string) error {
					return domain.ErrCodeExpired
				}
			},
			expectedError: domain.ErrCodeExpired,
		},
		{
			name:  "refresh credential stored with refresh ttl",
			email: "test@example.com",
			code:  "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, tokenRepo *mocks.MockTokenRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createPendingUser(t), nil
				}
				tokenRepo.ReplaceFunc = func(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
					if ttl != 168*time.Hour {
						t.Errorf("expected refresh ttl 168h, got %v", ttl)
					}
					return nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			verificationSvc := mocks.NewMockVerificationService()
			tokenRepo := mocks.NewMockTokenRepository()

			tt.setupMocks(userRepo, verificationSvc, tokenRepo)

			authService := createAuthServiceForTest(t, userRepo, tokenRepo, nil, nil, verificationSvc, nil)
			ctx := createTestContext(t)

			result, err := authService.VerifyEmail(ctx, tt.email, tt.code)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if result != nil {
					t.Error("expected nil result on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tt.validateResult != nil {
				tt.validateResult(t, result)
			}
		})
	}
}

func TestAuthServiceImpl_ResendVerification(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockVerificationService, *mocks.MockMailerService)
		expectedError error
	}{
		{
			name:  "successful resend",
			email: "test@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createPendingUser(t), nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "unknown email",
			email:         "ghost@example.com",
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockVerificationService, *mocks.MockMailerService) {},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:  "already verified account",
			email: "test@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrEmailAlreadyVerified,
		},
		{
			name:  "dispatch failure surfaces",
			email: "test@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, verificationSvc *mocks.MockVerificationService, mailerSvc *mocks.MockMailerService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createPendingUser(t), nil
				}
				mailerSvc.SendVerificationEmailFunc = func(to, code string) error {
					return errors.New("smtp unavailable")
				}
			},
			expectedError: domain.ErrEmailDispatchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			verificationSvc := mocks.NewMockVerificationService()
			mailerSvc := mocks.NewMockMailerService()

			tt.setupMocks(userRepo, verificationSvc, mailerSvc)

			authService := createAuthServiceForTest(t, userRepo, nil, nil, nil, verificationSvc, mailerSvc)
			ctx := createTestContext(t)

			err := authService.ResendVerification(ctx, tt.email)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestAuthServiceImpl_Refresh(t *testing.T) {
	validClaims := &domain.TokenClaims{
		UserID:    "665f1c2ab3d4e5f6a7b8c9d0",
		TokenType: domain.TokenTypeRefresh,
	}

	tests := []struct {
		name           string
		refreshToken   string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockTokenRepository, *mocks.MockTokenService)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name:         "successful rotation",
			refreshToken: "refresh-old",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenRepo *mocks.MockTokenRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return validClaims, nil
				}
				tokenSvc.GenerateRefreshTokenFunc = func(userID string) (string, error) {
					return "refresh-new", nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
				if result.RefreshToken != "refresh-new" {
					t.Errorf("expected rotated refresh token, got %s", result.RefreshToken)
				}
			},
		},
		{
			name:          "forged token",
			refreshToken:  "garbage",
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockTokenRepository, *mocks.MockTokenService) {},
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name:         "rotated-out token rejected",
			refreshToken: "refresh-stale",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenRepo *mocks.MockTokenRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return validClaims, nil
				}
				tokenRepo.ContainsFunc = func(ctx context.Context, userID, refreshToken string) (bool, error) {
					return false, nil
				}
			},
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name:         "revoked after logout",
			refreshToken: "refresh-revoked",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenRepo *mocks.MockTokenRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return validClaims, nil
				}
				tokenRepo.ContainsFunc = func(ctx context.Context, userID, refreshToken string) (bool, error) {
					return false, nil
				}
			},
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name:         "access token presented as refresh token",
			refreshToken: "access-token",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenRepo *mocks.MockTokenRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrWrongTokenType
				}
			},
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name:         "user deleted since issuance",
			refreshToken: "refresh-orphan",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenRepo *mocks.MockTokenRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return validClaims, nil
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tokenRepo := mocks.NewMockTokenRepository()
			tokenSvc := mocks.NewMockTokenService()

			tt.setupMocks(userRepo, tokenRepo, tokenSvc)

			authService := createAuthServiceForTest(t, userRepo, tokenRepo, nil, tokenSvc, nil, nil)
			ctx := createTestContext(t)

			result, err := authService.Refresh(ctx, tt.refreshToken)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tt.validateResult != nil {
				tt.validateResult(t, result)
			}
		})
	}
}

func TestAuthServiceImpl_RefreshRotationInstallsNewToken(t *testing.T) {
	// Rotation must replace the stored credential so the old token dies.
	var replaced string
	tokenRepo := mocks.NewMockTokenRepository()
	tokenRepo.ReplaceFunc = func(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
		replaced = refreshToken
		return nil
	}

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: "665f1c2ab3d4e5f6a7b8c9d0", TokenType: domain.TokenTypeRefresh}, nil
	}
	tokenSvc.GenerateRefreshTokenFunc = func(userID string) (string, error) {
		return "refresh-next", nil
	}

	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
		return createVerifiedUser(t), nil
	}

	authService := createAuthServiceForTest(t, userRepo, tokenRepo, nil, tokenSvc, nil, nil)

	result, err := authService.Refresh(createTestContext(t), "refresh-prev")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if replaced != "refresh-next" {
		t.Errorf("expected stored credential to be the rotated token, got %q", replaced)
	}
	if result.RefreshToken != replaced {
		t.Errorf("returned token %q does not match stored credential %q", result.RefreshToken, replaced)
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	t.Run("revokes refresh credentials", func(t *testing.T) {
		var revoked string
		tokenRepo := mocks.NewMockTokenRepository()
		tokenRepo.RevokeAllFunc = func(ctx context.Context, userID string) error {
			revoked = userID
			return nil
		}

		authService := createAuthServiceForTest(t, nil, tokenRepo, nil, nil, nil, nil)

		if err := authService.Logout(createTestContext(t), "665f1c2ab3d4e5f6a7b8c9d0"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if revoked != "665f1c2ab3d4e5f6a7b8c9d0" {
			t.Errorf("expected revocation for user, got %q", revoked)
		}
	})

	t.Run("idempotent on empty session set", func(t *testing.T) {
		authService := createAuthServiceForTest(t, nil, nil, nil, nil, nil, nil)

		if err := authService.Logout(createTestContext(t), "665f1c2ab3d4e5f6a7b8c9d0"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := authService.Logout(createTestContext(t), "665f1c2ab3d4e5f6a7b8c9d0"); err != nil {
			t.Fatalf("expected repeated logout to succeed, got %v", err)
		}
	})
}

func TestAuthServiceImpl_Authenticate(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockTokenService)
		expectedError error
	}{
		{
			name:  "valid token of verified user",
			token: "access-good",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: "665f1c2ab3d4e5f6a7b8c9d0", TokenType: domain.TokenTypeAccess}, nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "invalid token",
			token:         "garbage",
			setupMocks:    func(*mocks.MockUserRepository, *mocks.MockTokenService) {},
			expectedError: domain.ErrInvalidToken,
		},
		{
			name:  "expired token",
			token: "access-expired",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedError: domain.ErrTokenExpired,
		},
		{
			name:  "pending account rejected",
			token: "access-pending",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: "665f1c2ab3d4e5f6a7b8c9d0", TokenType: domain.TokenTypeAccess}, nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return createPendingUser(t), nil
				}
			},
			expectedError: domain.ErrEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tokenSvc := mocks.NewMockTokenService()

			tt.setupMocks(userRepo, tokenSvc)

			authService := createAuthServiceForTest(t, userRepo, nil, nil, tokenSvc, nil, nil)

			user, err := authService.Authenticate(createTestContext(t), tt.token)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if user != nil {
					t.Error("expected nil user on error")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if user == nil {
					t.Fatal("expected user, got nil")
				}
			}
		})
	}
}

func TestAuthServiceImpl_UpdateProfile(t *testing.T) {
	t.Run("nil fields left unchanged", func(t *testing.T) {
		stored := createVerifiedUser(t)
		stored.Position = "Engineer"
		stored.Company = "Acme"

		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
			return stored, nil
		}
		var updated *domain.User
		userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			updated = user
			return nil
		}

		authService := createAuthServiceForTest(t, userRepo, nil, nil, nil, nil, nil)

		newFirst := "Changed"
		user, err := authService.UpdateProfile(createTestContext(t), stored.ID, domain.ProfileUpdate{FirstName: &newFirst})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.FirstName != "Changed" {
			t.Errorf("expected first name updated, got %s", user.FirstName)
		}
		if user.Position != "Engineer" || user.Company != "Acme" {
			t.Error("expected untouched fields to keep their values")
		}
		if updated == nil {
			t.Fatal("expected Update to be called")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		authService := createAuthServiceForTest(t, nil, nil, nil, nil, nil, nil)

		_, err := authService.UpdateProfile(createTestContext(t), "ghost", domain.ProfileUpdate{})
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
