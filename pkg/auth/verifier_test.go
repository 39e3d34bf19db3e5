package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tokenStr := signToken(t, testSecret, Claims{
		UserID: "rec00000000000001",
		Role:   "moderator",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "rec00000000000001", claims.UserID)
	assert.Equal(t, "moderator", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tokenStr := signToken(t, "other-secret", Claims{UserID: "rec00000000000001"})

	_, err := v.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tokenStr := signToken(t, testSecret, Claims{
		UserID: "rec00000000000001",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := v.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	v := NewJWTVerifier(testSecret)

	_, err := v.Verify("not.a.token")
	assert.Error(t, err)
}
