package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.GenerateToken(42)
	require.NoError(t, err)

	id, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestValidateTokenRejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	valid, err := m.GenerateToken(7)
	require.NoError(t, err)

	expired := NewTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(7)
	require.NoError(t, err)

	otherSecret, err := NewTokenManager("other", time.Hour).GenerateToken(7)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, OperatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7", Issuer: tokenIssuer},
	})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, OperatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "expired", token: expiredToken},
		{name: "other_secret", token: otherSecret},
		{name: "alg_none", token: noneToken},
		{name: "wrong_issuer", token: wrongIssuer},
		{name: "truncated", token: valid[:len(valid)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
