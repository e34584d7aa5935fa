package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret-with-enough-length"

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	t.Run("AccessToken", func(t *testing.T) {
		token, err := mgr.GenerateAccessToken(42, 7, "user@example.com")
		assert.NoError(t, err)

		claims, err := mgr.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, int32(7), claims.TenantID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
		assert.Equal(t, "aris-backend", claims.Issuer)
	})

	t.Run("RefreshToken", func(t *testing.T) {
		token, err := mgr.GenerateRefreshToken(42, 7, "user@example.com")
		assert.NoError(t, err)

		claims, err := mgr.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mgr := NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	other := NewTokenManager("a-completely-different-signing-secret", time.Hour, 24*time.Hour)

	token, err := mgr.GenerateAccessToken(42, 7, "user@example.com")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	mgr := NewTokenManager(testSecret, -time.Minute, 24*time.Hour)

	token, err := mgr.GenerateAccessToken(42, 7, "user@example.com")
	assert.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	mgr := NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	_, err := mgr.ValidateToken("definitely not a jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
