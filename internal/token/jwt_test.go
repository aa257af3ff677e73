package token

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.GenerateAccessToken(42, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, access)

	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)
}

func TestJWT_AccessToken_Claims(t *testing.T) {
	j := &JWT{secretKey: "secret"}

	access, err := j.GenerateAccessToken(7, "a@b.com")
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(access, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(7, 10), claims.Subject)
	require.Equal(t, "a@b.com", claims.Email)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	other := NewJWT("different")

	access, err := j.GenerateAccessToken(1, "a@b.com")
	require.NoError(t, err)

	_, err = other.ParseAccessToken(access)
	require.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
		Email: "a@b.com",
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	j := NewJWT("secret")
	_, err = j.ParseAccessToken(signed)
	require.Error(t, err)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	j := NewJWT("secret")
	_, err = j.ParseAccessToken(signed)
	require.Error(t, err)
}

func TestJWT_NonNumericSubject(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	j := NewJWT("secret")
	_, err = j.ParseAccessToken(signed)
	require.Error(t, err)
}
