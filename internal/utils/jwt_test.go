package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := GenerateJWT(userID, time.Minute, secret)
	require.NoError(t, err)

	claims, err := VerifyJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), time.Minute, []byte("one secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(token, []byte("another secret"))
	assert.Error(t, err)
}

func TestVerifyJWTRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateJWT(uuid.New(), -time.Minute, secret)
	require.NoError(t, err)

	_, err = VerifyJWT(token, secret)
	assert.Error(t, err)
}
