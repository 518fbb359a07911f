package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/cache"
)

// VerificationServiceImpl implements domain.VerificationService on the
// ephemeral store.
type VerificationServiceImpl struct {
	store  cache.Store
	config VerificationConfig
}

// VerificationConfig holds one-time code parameters.
type VerificationConfig struct {
	Length int
	TTL    time.Duration
}

// DefaultVerificationConfig matches the account verification contract:
// 6-digit codes valid for 10 minutes.
func DefaultVerificationConfig() VerificationConfig {
	return VerificationConfig{Length: 6, TTL: 10 * time.Minute}
}

// NewVerificationService creates a new verification code service.
func NewVerificationService(store cache.Store, config VerificationConfig) domain.VerificationService {
	return &VerificationServiceImpl{store: store, config: config}
}

func (s *VerificationServiceImpl) key(email string) string {
	return "verify:" + email
}

// Issue implements domain.VerificationService. Issuing overwrites any prior
// code for the email, so a resend makes the old code unusable even when it
// has not yet expired.
func (s *VerificationServiceImpl) Issue(ctx context.Context, email string) (string, error) {
	code, err := s.generateSecureCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.store.Set(ctx, s.key(email), code, s.config.TTL); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}

	return code, nil
}

// Consume implements domain.VerificationService. A matching code is deleted
// atomically, so a second submission of the same code fails as expired, not
// as a mismatch. A wrong code leaves the stored one consumable until its TTL.
func (s *VerificationServiceImpl) Consume(ctx context.Context, email, code string) error {
	stored, ok, err := s.store.Get(ctx, s.key(email))
	if err != nil {
		return fmt.Errorf("failed to read verification code: %w", err)
	}
	if !ok {
		return domain.ErrCodeExpired
	}

	if stored != code {
		return domain.ErrInvalidCode
	}

	// Consume exactly once. GetDel re-reads atomically: if another request
	// raced us here and won, the code is already gone and this attempt loses.
	// A resend landing between the read above and this delete is burned the
	// same way; the user must request another code.
	consumed, ok, err := s.store.GetDel(ctx, s.key(email))
	if err != nil {
		return fmt.Errorf("failed to consume verification code: %w", err)
	}
	if !ok || consumed != code {
		return domain.ErrCodeExpired
	}

	return nil
}

// generateSecureCode draws each digit from crypto/rand, uniform over
// 000000-999999. Leading zeros are allowed.
func (s *VerificationServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
