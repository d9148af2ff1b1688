package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("library-client", "session-1", time.Hour, "secret-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ValidateAndParseJWTToken(token, "secret-key", "library-client")
	require.NoError(t, err)
	assert.Equal(t, "session-1", subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "s", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "s", 0, "key"},
		{"empty key", "iss", "s", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	token, err := GenerateJWTToken("issuer", "s", time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token, "wrong-key", "issuer")
	assert.Error(t, err)

	_, err = ValidateAndParseJWTToken(token, "key", "other-issuer")
	assert.Error(t, err)

	_, err = ValidateAndParseJWTToken("garbage", "key", "issuer")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("issuer", "s", time.Nanosecond, "key")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(token, "key", "issuer")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(h)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader, h)
	}
}
