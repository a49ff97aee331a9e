// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"carmarket/config"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 8

// bcrypt ignores everything past 72 bytes.
const bcryptMaxPasswordLength = 72

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "123456"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost  int
	rules config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	rules := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg.PasswordStrength != nil {
		rules = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, rules)
}

func newBcryptHasher(cost int, rules config.PasswordStrengthConfig) *bcryptHasher {
	if rules.MinLength <= 0 {
		rules.MinLength = defaultMinPasswordLength
	}
	if rules.MaxLength <= 0 || rules.MaxLength > bcryptMaxPasswordLength {
		rules.MaxLength = bcryptMaxPasswordLength
	}

	return &bcryptHasher{cost: cost, rules: rules}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured rules in order and reports the first failure.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))

	switch {
	case length < h.rules.MinLength:
		return weakPassword("must be at least %d characters long", h.rules.MinLength)
	case len(password) > h.rules.MaxLength:
		return weakPassword("must be at most %d bytes long", h.rules.MaxLength)
	case h.rules.RequireLowercase && !h.hasLowercase(password):
		return weakPassword("must contain at least one lowercase letter")
	case h.rules.RequireUppercase && !h.hasUppercase(password):
		return weakPassword("must contain at least one uppercase letter")
	case h.rules.RequireNumbers && !h.hasNumbers(password):
		return weakPassword("must contain at least one number")
	case h.rules.RequireSpecial && !h.hasSpecialChars(password):
		return weakPassword("must contain at least one special character")
	case h.containsForbiddenWords(password, forbiddenPasswordWords):
		return weakPassword("contains forbidden words")
	}

	return nil
}

func weakPassword(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails("password " + fmt.Sprintf(format, args...))
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}

	return false
}
