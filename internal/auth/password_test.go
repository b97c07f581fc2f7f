package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("SecurePass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "SecurePass123!", hash)

	assert.True(t, CheckPassword("SecurePass123!", hash))
	assert.False(t, CheckPassword("WrongPass123!", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("SecurePass123!")
	require.NoError(t, err)
	second, err := HashPassword("SecurePass123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}
