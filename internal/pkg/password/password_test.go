package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("rahasia123")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia123", hash)

	require.True(t, Verify("rahasia123", hash))
	require.False(t, Verify("salah123", hash))
}

func TestHashToken(t *testing.T) {
	a := HashToken("token-a")
	b := HashToken("token-b")
	require.NotEqual(t, a, b)
	require.Equal(t, a, HashToken("token-a"))
	require.Len(t, a, 64) // hex-encoded sha256
}

func TestValidatePassword(t *testing.T) {
	require.False(t, ValidatePassword("pendek"))
	require.True(t, ValidatePassword("cukuppanjang"))
}
