package hasher_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"authportal/pkg/hasher"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := hasher.NewBcrypt()

	hash, err := h.Hash("securepass")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "securepass", hash)

	assert.True(t, h.Verify("securepass", hash))
	assert.False(t, h.Verify("wrongpass", hash))
}

func TestBcrypt_Salted(t *testing.T) {
	h := hasher.NewBcrypt()

	first, err := h.Hash("samepass")
	assert.NoError(t, err)
	second, err := h.Hash("samepass")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("samepass", first))
	assert.True(t, h.Verify("samepass", second))
}

func TestBcrypt_TooLongPassword(t *testing.T) {
	h := hasher.NewBcrypt()

	// bcrypt rejects passwords over 72 bytes
	hash, err := h.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestBcrypt_VerifyGarbageHash(t *testing.T) {
	h := hasher.NewBcrypt()

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}
