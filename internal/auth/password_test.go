package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, CheckPassword("pw123456", hash))
	assert.False(t, CheckPassword("wrongpassword", hash))
}

func TestHashPasswordOversizedInput(t *testing.T) {
	long := strings.Repeat("a", 100)

	// Hashing must not fail past bcrypt's 72 byte limit.
	hash, err := HashPassword(long)
	require.NoError(t, err)

	// Everything past 72 bytes is ignored, so the 72 byte prefix and any
	// extension of it verify against the same hash.
	assert.True(t, CheckPassword(long, hash))
	assert.True(t, CheckPassword(strings.Repeat("a", 72), hash))
	assert.True(t, CheckPassword(strings.Repeat("a", 200), hash))
	assert.False(t, CheckPassword(strings.Repeat("b", 72), hash))
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}
