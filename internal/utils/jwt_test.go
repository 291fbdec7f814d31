package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("cadence", 123, time.Hour, "secret-key")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "cadence", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("cadence", 456, 5*time.Minute, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("cadence", 456, -time.Second, "key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(valid.SignedString, "key", "cadence")
	require.NoError(t, err)
	assert.Equal(t, int64(456), parsed.UserID)

	_, err = ValidateAndParseJWTToken(valid.SignedString, "wrong-key", "cadence")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ValidateAndParseJWTToken(valid.SignedString, "key", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ValidateAndParseJWTToken(expired.SignedString, "key", "cadence")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ValidateAndParseJWTToken("not.a.token", "key", "cadence")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(bad)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationValue, bad)
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("cadence", 77, time.Hour, "key")
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)

	_, err = ParseUserIDFromJWT("garbage")
	assert.Error(t, err)
}
