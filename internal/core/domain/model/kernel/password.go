package kernel

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMinLength is the shortest accepted plain text password.
const PasswordMinLength = 6

// PasswordHash stores a bcrypt hash. The plain text never leaves HashPassword.
type PasswordHash struct {
	hash string
}

func HashPassword(plain string) (PasswordHash, error) {
	if plain == "" {
		return PasswordHash{}, errs.NewValueIsRequiredError("password")
	}
	if len(plain) < PasswordMinLength {
		return PasswordHash{}, errs.NewValueIsInvalidErrorWithCause(
			"password", fmt.Errorf("must be at least %d characters", PasswordMinLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return PasswordHash{}, errs.NewValueIsInvalidErrorWithCause("password", err)
		}
		return PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return PasswordHash{hash: string(hash)}, nil
}

// RestorePasswordHash wraps a hash read from storage.
func RestorePasswordHash(hash string) (PasswordHash, error) {
	if hash == "" {
		return PasswordHash{}, errs.NewValueIsRequiredError("password hash")
	}
	return PasswordHash{hash: hash}, nil
}

func (p PasswordHash) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

func (p PasswordHash) Hash() string {
	return p.hash
}
