package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, IsPasswordHash(hash))
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("S3cret", hash))
}

func TestCheckPasswordHashPlaintext(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		stored   string
		expected bool
	}{
		{name: "match", password: "p1", stored: "p1", expected: true},
		{name: "mismatch", password: "p1", stored: "p2", expected: false},
		{name: "prefix only", password: "p", stored: "p1", expected: false},
		{name: "empty stored value", password: "", stored: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CheckPasswordHash(tc.password, tc.stored))
		})
	}
}

func TestHashPasswordLongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("a", 73)

	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash(long, hash))
	// the 72 byte prefix must not unlock a longer password
	assert.False(t, CheckPasswordHash(long[:72], hash))
	assert.False(t, CheckPasswordHash(long+"a", hash))
}

func TestCheckPasswordHashPlaintextWithBcryptPrefix(t *testing.T) {
	assert.False(t, IsPasswordHash("$2a$short"))
	assert.True(t, CheckPasswordHash("$2a$short", "$2a$short"))
	assert.False(t, CheckPasswordHash("other", "$2a$short"))
}
