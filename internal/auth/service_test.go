package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techstore/internal/config"
)

func testService() *Service {
	return NewService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
		Issuer:        "techstore-test",
		BcryptCost:    4,
	})
}

func TestPasswordHashing(t *testing.T) {
	s := testService()

	hash, err := s.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, s.CheckPassword("secret1", hash))
	assert.False(t, s.CheckPassword("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	s := testService()

	token, expiresAt, err := s.GenerateToken(7, "ana@example.com", "customer")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "techstore-test", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	s := testService()
	other := NewService(config.AuthConfig{
		JWTSecret:     "different-secret",
		TokenDuration: time.Hour,
	})

	token, _, err := other.GenerateToken(7, "ana@example.com", "customer")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestScope(t *testing.T) {
	t.Run("anonymous carries no identity and no role", func(t *testing.T) {
		scope := Anonymous()
		assert.True(t, scope.IsAnonymous())
		assert.False(t, scope.HasRole("customer", "admin"))
	})

	t.Run("identified matches its own role only", func(t *testing.T) {
		scope := Identified(7, "customer")
		assert.False(t, scope.IsAnonymous())
		assert.True(t, scope.HasRole("customer"))
		assert.True(t, scope.HasRole("customer", "admin"))
		assert.False(t, scope.HasRole("admin"))
	})
}
