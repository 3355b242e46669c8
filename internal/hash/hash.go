// Package hash wraps bcrypt password hashing. The cost is fixed at 10
// rounds; every call salts freshly and the salt travels inside the encoded
// hash. Plaintext passwords are never logged here or anywhere else.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"fruitscan-backend/internal/models"
)

const cost = 10

// Password hashes a plaintext password with a fresh random salt.
func Password(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: password is required", models.ErrInvalidRequest)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the encoded hash. The comparison
// is constant time inside bcrypt. A mismatch is a negative result, not an
// error; errors are reserved for empty arguments and malformed hashes.
func Verify(plaintext, hashed string) (bool, error) {
	if plaintext == "" || hashed == "" {
		return false, fmt.Errorf("%w: password and hash are required", models.ErrInvalidRequest)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case err == bcrypt.ErrMismatchedHashAndPassword:
		return false, nil
	default:
		return false, fmt.Errorf("password verification failed: %w", err)
	}
}
