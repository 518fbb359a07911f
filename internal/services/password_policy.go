package services

import (
	"strings"
	"unicode"

	"github.com/MEDWEDU/Lettera/domain"
)

const passwordSpecialChars = `!@#$%^&*()_+-=[]{};':"|,.<>/?`

const passwordMinLength = 8

// checkPasswordPolicy validates the registration password policy and returns
// every violated rule, not just the first.
func checkPasswordPolicy(password string) error {
	var violations []string

	if len(password) < passwordMinLength {
		violations = append(violations, "password must be at least 8 characters long")
	}

	hasDigit := false
	hasSpecial := false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
		}
		if strings.ContainsRune(passwordSpecialChars, r) {
			hasSpecial = true
		}
	}

	if !hasDigit {
		violations = append(violations, "password must contain at least one digit")
	}
	if !hasSpecial {
		violations = append(violations, "password must contain at least one special character")
	}

	if len(violations) > 0 {
		return domain.ErrWeakPassword.WithDetails(violations...)
	}
	return nil
}
