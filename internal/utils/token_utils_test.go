package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Minute, "qrt-closure")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "qrt-closure", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Minute, "qrt-closure")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, err := GenerateJWT("user-1", "secret", -time.Minute, "qrt-closure")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGenerateJWT_EmptyUser(t *testing.T) {
	_, err := GenerateJWT("", "secret", time.Minute, "qrt-closure")
	assert.Error(t, err)
}
