package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasher() *PasswordHasher {
	return NewPasswordHasher(Params{Time: 1, MemoryKB: 1024, Threads: 1})
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := testHasher()

	digest, err := h.Hash("secretpass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))
	assert.NotContains(t, digest, "secretpass")

	ok, err := h.Verify(digest, "secretpass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(digest, "wrongpass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltPerCall(t *testing.T) {
	h := testHasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPasswordHasher_LegacyBcrypt(t *testing.T) {
	h := testHasher()

	legacy, err := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := h.Verify(string(legacy), "oldpass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(string(legacy), "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, h.NeedsRehash(string(legacy)))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := testHasher()

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "plain text", digest: "invalidhash"},
		{name: "broken argon2", digest: "$argon2id$v=19$garbage"},
		{name: "broken bcrypt", digest: "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify(tt.digest, "secretpass")
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}

func TestPasswordHasher_NeedsRehash(t *testing.T) {
	h := testHasher()

	digest, err := h.Hash("x")
	require.NoError(t, err)
	assert.False(t, h.NeedsRehash(digest))
}
