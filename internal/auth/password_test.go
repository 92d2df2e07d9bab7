package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "pw123"

	hash, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	// A second hash uses a fresh salt, so the digests differ but both
	// verify.
	hash2, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	for _, h := range []string{hash, hash2} {
		ok, err := CheckPassword(h, password)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestCheckPassword(t *testing.T) {
	password := "correct-horse-battery-staple"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	t.Run("correct password, repeated calls", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			ok, err := CheckPassword(hash, password)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, err := CheckPassword(hash, "wrong-password")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty password", func(t *testing.T) {
		ok, err := CheckPassword(hash, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed digest is an error, not a mismatch", func(t *testing.T) {
		ok, err := CheckPassword("not-a-bcrypt-digest", password)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
