package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, 1)
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, -time.Minute, 1)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
