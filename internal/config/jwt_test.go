package config

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, claims, err := issuer.GenerateToken(7, "Ops", "ops@example.com", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	got, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, claims.ID, got.ID)
}

func TestTokenIDsAreUnique(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	_, a, err := issuer.GenerateToken(1, "a", "a@example.com", "admin")
	require.NoError(t, err)
	_, b, err := issuer.GenerateToken(1, "a", "a@example.com", "admin")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestValidateTokenRejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewTokenIssuer("other", time.Hour).GenerateToken(1, "a", "a@example.com", "admin")
		require.NoError(t, err)
		_, err = issuer.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := NewTokenIssuer("test-secret", time.Nanosecond).GenerateToken(1, "a", "a@example.com", "admin")
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)
		_, err = issuer.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("no secret configured", func(t *testing.T) {
		_, _, err := NewTokenIssuer("", time.Hour).GenerateToken(1, "a", "a@example.com", "admin")
		assert.ErrorIs(t, err, ErrNoSecret)
	})
}
