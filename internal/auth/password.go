package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// bcrypt ignores everything past 72 bytes and newer library versions
// reject longer inputs outright, so both hashing and verification work
// on the truncated prefix.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}

// HashPassword hashes a plain password with bcrypt. Oversized input is
// truncated, never rejected.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plain password with a bcrypt hash. Any
// verification error reads as a mismatch.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
