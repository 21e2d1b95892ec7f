package security

import (
	"errors"
	"fmt"
	"strings"
)

const MinSecretLength = 32

var (
	ErrSecretMissing     = errors.New("signing secret is required")
	ErrSecretPlaceholder = errors.New("signing secret uses an example placeholder")
	ErrSecretTooShort    = fmt.Errorf("signing secret must be at least %d characters", MinSecretLength)
)

var placeholderSecrets = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"changeme":                                   {},
	"secret":                                     {},
}

// ValidateSigningSecret rejects secrets that would make bearer tokens forgeable.
func ValidateSigningSecret(secret string) error {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return ErrSecretMissing
	}
	if _, ok := placeholderSecrets[strings.ToLower(trimmed)]; ok {
		return ErrSecretPlaceholder
	}
	if len(trimmed) < MinSecretLength {
		return ErrSecretTooShort
	}
	return nil
}
