package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(7, "budi@bps.go.id", "pegawai", "secret", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "budi@bps.go.id", claims.Email)
	require.Equal(t, "pegawai", claims.Role)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(7, "budi@bps.go.id", "pegawai", "secret", 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(7, "budi@bps.go.id", "pegawai", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "secret")
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id", "refresh-secret", 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, "refresh-secret")
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "token-id", claims.TokenID)

	// Access and refresh tokens are not interchangeable.
	_, err = ValidateRefreshToken(token, "secret")
	require.Error(t, err)
}
