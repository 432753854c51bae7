package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("donor@example.com", time.Hour)
	require.NoError(t, err)

	email, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "donor@example.com", email)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("donor@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("donor@example.com", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenTTL(t *testing.T) {
	t.Setenv("EXPIRES_IN", "1h")
	assert.Equal(t, time.Hour, TokenTTL())

	t.Setenv("EXPIRES_IN", "not-a-duration")
	assert.Equal(t, 24*time.Hour, TokenTTL())

	t.Setenv("EXPIRES_IN", "")
	assert.Equal(t, 24*time.Hour, TokenTTL())
}
