package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMatchesKnownVector(t *testing.T) {
	t.Parallel()

	h := NewPBKDF2Hasher(1)
	h.salt = func() string { return "salt" }

	got, err := h.Hash("password")
	require.NoError(t, err)
	// PBKDF2-HMAC-SHA256("password", "salt", 1 iteration, 32 bytes).
	require.Equal(t, "pbkdf2_sha256$1$salt$Eg+2z/z4syxD5yJSVsT4N6hlSMkszDVICAWYfLcL4Xs=", got)
}

func TestHashRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPBKDF2Hasher(1000)
	encoded, err := h.Hash("company123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "pbkdf2_sha256$1000$"))

	ok, err := Verify("company123", encoded)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Verify("user123", encoded)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashUsesFreshSalt(t *testing.T) {
	t.Parallel()

	h := NewPBKDF2Hasher(10)
	first, err := h.Hash("user123")
	require.NoError(t, err)
	second, err := h.Hash("user123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.Len(t, strings.Split(first, "$")[2], saltLength)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	_, err := Verify("x", "md5$abc")
	require.ErrorIs(t, err, ErrMalformedHash)

	_, err = Verify("x", "pbkdf2_sha256$zero$salt$key")
	require.ErrorIs(t, err, ErrMalformedHash)
}

func TestNewPBKDF2HasherDefaultsIterations(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultIterations, NewPBKDF2Hasher(0).iterations)
}
