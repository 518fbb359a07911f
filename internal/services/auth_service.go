package services

import (
	"errors"
	"fmt"
	"strings"

	"context"

	"github.com/rs/zerolog"

	"github.com/MEDWEDU/Lettera/domain"
)

// AuthServiceImpl implements domain.AuthService. It exclusively owns the
// verified-flag transition on identity records and all writes to the
// verification code and refresh credential keys.
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	tokenRepo       domain.TokenRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	verificationSvc domain.VerificationService
	mailerSvc       domain.MailerService
	logger          zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo domain.UserRepository,
	tokenRepo domain.TokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	verificationSvc domain.VerificationService,
	mailerSvc domain.MailerService,
	logger zerolog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		verificationSvc: verificationSvc,
		mailerSvc:       mailerSvc,
		logger:          logger.With().Str("component", "auth").Logger(),
	}
}

// Register implements domain.AuthService. The identity record is created in
// the unverified state; a failed email dispatch does not roll it back since
// the stored code stays valid and resend is available.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailExists
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if err := checkPasswordPolicy(password); err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Verified:     false,
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	code, err := s.verificationSvc.Issue(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}

	if err := s.mailerSvc.SendVerificationEmail(email, code); err != nil {
		// The account and code survive; the client can resend.
		s.logger.Error().Err(err).Str("email", email).Msg("verification email dispatch failed")
		return nil, domain.ErrEmailDispatchFailed
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", email).Msg("user registered, verification pending")
	return user, nil
}

// VerifyEmail implements domain.AuthService. The verified flag flips once; a
// consumed code is gone, so retrying it reports expiry rather than mismatch.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.Verified {
		return nil, domain.ErrAlreadyVerified
	}

	if err := s.verificationSvc.Consume(ctx, email, code); err != nil {
		return nil, err
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}
	user.Verified = true

	result, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("email verified, session issued")
	return result, nil
}

// ResendVerification implements domain.AuthService. A fresh code overwrites
// the previous one, making it unusable even if unexpired.
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.Verified {
		return domain.ErrEmailAlreadyVerified
	}

	code, err := s.verificationSvc.Issue(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to issue verification code: %w", err)
	}

	if err := s.mailerSvc.SendVerificationEmail(email, code); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("verification email dispatch failed")
		return domain.ErrEmailDispatchFailed
	}

	return nil
}

// Refresh implements domain.AuthService: rotation-on-use. Revoked, rotated
// and forged tokens all fail the same way so the response leaks nothing.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	live, err := s.tokenRepo.Contains(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh credential: %w", err)
	}
	if !live {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.Verified {
		return nil, domain.ErrUserNotFound
	}

	result, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Logout implements domain.AuthService. Idempotent: revoking an empty set is
// not an error. Presence is left to expire on its own TTL.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := s.tokenRepo.RevokeAll(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh credentials: %w", err)
	}
	s.logger.Info().Str("user_id", userID).Msg("logged out")
	return nil
}

// Authenticate implements domain.AuthService. Verification status is
// re-checked against the store on every request; the token alone is not
// trusted for it.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokenSvc.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.Verified {
		return nil, domain.ErrEmailNotVerified
	}

	return user, nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService. Only the owner reaches this
// path; nil fields are left unchanged.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Position != nil {
		user.Position = *update.Position
	}
	if update.Company != nil {
		user.Company = *update.Company
	}
	if update.Category != nil {
		user.Category = *update.Category
	}
	if update.Skills != nil {
		user.Skills = update.Skills
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// issueTokenPair signs a fresh access/refresh pair and installs the refresh
// token as the single session of record, replacing any predecessor.
func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Replace(ctx, user.ID, refreshToken, s.tokenSvc.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("failed to store refresh credential: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}
