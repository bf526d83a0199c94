package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_SaltVaries(t *testing.T) {
	first, err := HashPassword("secret1")
	assert.NoError(t, err)
	second, err := HashPassword("secret1")
	assert.NoError(t, err)

	// Different salts, different outputs, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret1", first))
	assert.True(t, CheckPassword("secret1", second))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("secret2", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-hash"))
}
