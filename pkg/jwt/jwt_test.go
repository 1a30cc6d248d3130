package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("usr_42", "admin", "test-secret", 1)
	require.NoError(t, err)

	claims, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "usr_42", claims.UserId)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.IssuedAt)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("usr_42", "user", "test-secret", 1)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("usr_42", "user", "test-secret", -1)
	require.NoError(t, err)

	_, err = ParseToken(token, "test-secret")
	assert.Error(t, err)
}
