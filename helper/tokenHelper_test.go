package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTripPreservesClaims(t *testing.T) {
	SECRET_KEY = "test-secret"

	token, refreshToken, err := GenerateAllTokens("asha@example.com", "Asha", "u1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)

	claims, msg := ValidateToken(token)
	require.Empty(t, msg)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "u1", claims.Uid)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SECRET_KEY = "test-secret"

	claims, msg := ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	SECRET_KEY = "test-secret"
	token, _, err := GenerateAllTokens("asha@example.com", "Asha", "u1", "user")
	require.NoError(t, err)

	SECRET_KEY = "different-secret"
	claims, msg := ValidateToken(token)
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}
