package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(string(hashed), "correct horse battery staple"))
	assert.Error(t, VerifyPassword(string(hashed), "wrong password"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same password")
	require.NoError(t, err)
	second, err := Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, string(first), string(second))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("not-a-hash", "anything"))
	assert.Error(t, VerifyPassword("a$b$c$d$e", "anything"))
}
