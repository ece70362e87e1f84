package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBcryptHash(t *testing.T) {
	assert.True(t, IsBcryptHash("$2a$12$abcdefghijklmnopqrstuv"))
	assert.True(t, IsBcryptHash("$2b$12$abcdefghijklmnopqrstuv"))
	assert.True(t, IsBcryptHash("$2y$10$abcdefghijklmnopqrstuv"))
	assert.False(t, IsBcryptHash("rahasia123"))
	assert.False(t, IsBcryptHash(""))
}

func TestVerifyPassword_Bcrypt(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	require.True(t, IsBcryptHash(hash))

	assert.True(t, VerifyPassword("rahasia123", hash))
	assert.False(t, VerifyPassword("salah", hash))
}

func TestVerifyPassword_LegacyPlaintext(t *testing.T) {
	// Password lama yang belum dimigrasi dibandingkan apa adanya.
	assert.True(t, VerifyPassword("rahasia123", "rahasia123"))
	assert.False(t, VerifyPassword("rahasia123", "beda"))
}
