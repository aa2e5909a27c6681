package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)

	token, err := tm.Generate(7, "mike", "Mike")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "mike", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", 15).Generate(7, "mike", "Mike")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 15).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -1)

	token, err := tm.Generate(7, "mike", "Mike")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
