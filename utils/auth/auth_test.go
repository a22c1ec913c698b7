package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.Nil(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)
	assert.True(t, CheckPassword("hunter2hunter2", hash))
	assert.False(t, CheckPassword("wrong password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", "user@example.com", secret)
	require.Nil(t, err)

	claims, err := ValidateToken(token, secret)
	require.Nil(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", []byte("secret-a"))
	require.Nil(t, err)

	_, err = ValidateToken(token, []byte("secret-b"))
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", []byte("secret"))
	assert.Equal(t, ErrInvalidToken, err)
}
