package utils

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword accepts either a bcrypt hash or, for documents written before
// hashing was introduced, the stored plaintext.
func CheckPassword(hash, legacyPlain, password string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	if legacyPlain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(legacyPlain), []byte(password)) == 1
}
