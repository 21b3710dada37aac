package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	// Fails closed instead of erroring on garbage hashes
	assert.False(t, CheckPasswordHash("secret123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("secret123", ""))
}
