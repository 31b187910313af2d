package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestJWTManager() *JWTManager {
	return &JWTManager{secret: "test-secret"}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	manager := newTestJWTManager()

	token, err := manager.GenerateAccessJWT("user-1", defaultJWTDuration)
	assert.NoError(t, err)

	userID, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestAccessToken_ExpiredRejected(t *testing.T) {
	manager := newTestJWTManager()

	token, err := manager.GenerateAccessJWT("user-1", -time.Minute)
	assert.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestAccessToken_GarbageRejected(t *testing.T) {
	manager := newTestJWTManager()

	_, err := manager.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshToken_BoundToHashToken(t *testing.T) {
	manager := newTestJWTManager()

	token, err := manager.GenerateRefreshJWT("user-1", "hash-token-v1", defaultJWTRefreshDuration)
	assert.NoError(t, err)

	assert.NoError(t, manager.ValidateRefreshToken(token, "hash-token-v1"))

	userID, err := manager.ExtractUserIDFromRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// rotating the hash token revokes tokens issued against the old one
	err = manager.ValidateRefreshToken(token, "hash-token-v2")
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestRefreshToken_WrongSecretRejected(t *testing.T) {
	manager := newTestJWTManager()
	other := &JWTManager{secret: "another-secret"}

	token, err := manager.GenerateRefreshJWT("user-1", "hash-token-v1", defaultJWTRefreshDuration)
	assert.NoError(t, err)

	assert.Error(t, other.ValidateRefreshToken(token, "hash-token-v1"))
}
