package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptHashLength = 60
	// bcrypt ignores input past this length and GenerateFromPassword rejects it.
	bcryptMaxPasswordLength = 72
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// bcryptInput maps passwords longer than bcrypt accepts onto a fixed-size digest.
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxPasswordLength {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// IsPasswordHash reports whether stored looks like a bcrypt hash.
func IsPasswordHash(stored string) bool {
	if len(stored) != bcryptHashLength {
		return false
	}
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

// CheckPasswordHash verifies password against a stored value. Documents written
// through the bulk endpoints may hold plaintext, which is compared in constant time.
func CheckPasswordHash(password, stored string) bool {
	if stored == "" {
		return false
	}
	if IsPasswordHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
