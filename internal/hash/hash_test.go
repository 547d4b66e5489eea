package hash_test

import (
	"testing"

	"storefront/internal/hash"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	digest, err := hash.HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "password123", digest)

	assert.True(t, hash.CheckPassword(digest, "password123"))
}

func TestCheckPasswordMismatch(t *testing.T) {
	digest, err := hash.HashPassword("correct-password")
	assert.NoError(t, err)

	assert.False(t, hash.CheckPassword(digest, "wrong-password"))
	assert.False(t, hash.CheckPassword(digest, ""))
	assert.False(t, hash.CheckPassword("not-a-digest", "correct-password"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := hash.HashPassword("same-input")
	assert.NoError(t, err)
	second, err := hash.HashPassword("same-input")
	assert.NoError(t, err)

	// bcrypt salts every digest, so equal inputs produce distinct digests
	// that both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hash.CheckPassword(first, "same-input"))
	assert.True(t, hash.CheckPassword(second, "same-input"))
}
