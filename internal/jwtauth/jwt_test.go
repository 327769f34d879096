package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "stakepool/pkg/domain-errors"
)

const testSigningKey = "test-signing-key"

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testSigningKey, "stakepool")

	token, err := svc.GenerateAccessToken("alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Address)
	assert.Equal(t, "stakepool", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "every token carries a unique jti")
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(testSigningKey, "stakepool")

	token, err := svc.GenerateAccessToken("alice", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	svc := NewJWTService(testSigningKey, "stakepool")
	other := NewJWTService("some-other-key", "stakepool")

	token, err := other.GenerateAccessToken("alice", time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(testSigningKey, "stakepool")

	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := svc.ValidateToken(token)
		require.Error(t, err, "token %q", token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	}
}

func TestValidateTokenRejectsMissingAddress(t *testing.T) {
	svc := NewJWTService(testSigningKey, "stakepool")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "stakepool",
		},
	})
	token, err := raw.SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Contains(t, err.Error(), "no address")
}

func TestAdapterBridgesClaims(t *testing.T) {
	svc := NewJWTService(testSigningKey, "stakepool")
	adapter := NewJWTServiceAdapter(svc)

	token, err := svc.GenerateAccessToken("bob", time.Hour)
	require.NoError(t, err)

	claims, err := adapter.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Address)
	assert.NotEmpty(t, claims.JTI)
}
