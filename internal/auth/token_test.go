package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(t *testing.T) *Tokens {
	t.Helper()
	tokens, err := NewTokens("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	return tokens
}

func TestTokensRoundtrip(t *testing.T) {
	tokens := newTestTokens(t)

	signed, err := tokens.Issue("user-123", "alice")
	require.NoError(t, err)

	identity, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestTokensExpired(t *testing.T) {
	tokens := newTestTokens(t)

	signed, err := tokens.IssueWithTTL("user-123", "alice", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensWrongSecret(t *testing.T) {
	tokens := newTestTokens(t)
	other, err := NewTokens("other-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	signed, err := other.Issue("user-123", "alice")
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensMissingSubject(t *testing.T) {
	tokens := newTestTokens(t)

	claims := jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensGarbage(t *testing.T) {
	tokens := newTestTokens(t)

	_, err := tokens.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokensUnknownAlgorithm(t *testing.T) {
	_, err := NewTokens("secret", "bogus", time.Minute)
	assert.Error(t, err)
}
