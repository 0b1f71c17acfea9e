package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.GenerateAccessToken(42, "ann@x.com")
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	refresh, err := j.GenerateRefreshToken(42, "ann@x.com")
	require.NoError(t, err)

	got, err := j.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)
}

func TestJWT_Claims(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	j := NewJWT("secret", WithClock(func() time.Time { return now }))

	access, err := j.GenerateAccessToken(5, "bob@x.com")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(access, claims)
	require.NoError(t, err)
	require.Equal(t, "5", claims.Subject)
	require.Equal(t, "bob@x.com", claims.Email)
	require.Equal(t, typeAccess, claims.TokenType)
	require.NotEmpty(t, claims.ID)
	require.Equal(t, now.Add(DefaultAccessTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestJWT_PairsAreDistinct(t *testing.T) {
	j := NewJWT("secret")

	first, err := j.GenerateRefreshToken(1, "a@x.com")
	require.NoError(t, err)
	second, err := j.GenerateRefreshToken(1, "a@x.com")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.GenerateAccessToken(1, "a@x.com")
	require.NoError(t, err)
	_, err = j.ParseRefreshToken(access)
	require.Error(t, err)

	refresh, err := j.GenerateRefreshToken(1, "a@x.com")
	require.NoError(t, err)
	_, err = j.ParseAccessToken(refresh)
	require.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	access, err := NewJWT("secret").GenerateAccessToken(1, "a@x.com")
	require.NoError(t, err)

	_, err = NewJWT("other").ParseAccessToken(access)
	require.Error(t, err)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	issuer := NewJWT("secret", WithTTL(time.Hour, time.Hour), WithClock(func() time.Time { return issued }))

	access, err := issuer.GenerateAccessToken(1, "a@x.com")
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(1, "a@x.com")
	require.NoError(t, err)

	verifier := NewJWT("secret")
	_, err = verifier.ParseAccessToken(access)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
	_, err = verifier.ParseRefreshToken(refresh)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    1,
		TokenType: typeAccess,
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseAccessToken(unsigned)
	require.Error(t, err)
}
