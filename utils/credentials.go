package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"math/big"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomToken generates a secure random token of the given length, base32
// encoded without padding. Used for CSRF cookie values.
func RandomToken(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(token) > length {
		token = token[:length]
	}
	return token, nil
}

// GenerateTemporaryPassword produces a 14-character alphanumeric password
// for a newly created employee.
func GenerateTemporaryPassword() (string, error) {
	const length = 14
	password := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range password {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		password[i] = passwordAlphabet[idx.Int64()]
	}
	return string(password), nil
}

// GenerateEmployeeID produces a human-readable employee id of the form
// EMP-123456. The numeric part is always six digits.
func GenerateEmployeeID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate employee id: %w", err)
	}
	return fmt.Sprintf("EMP-%d", 100000+n.Int64()), nil
}
