package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	id, ok := GetRequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-1", id)
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRequestIDFromContext(context.WithValue(context.Background(), RequestIDCtxKey, 42))
	assert.False(t, ok)
}

func TestEnsureRequestID(t *testing.T) {
	ctx, id := EnsureRequestID(context.Background())
	require.NotEmpty(t, id)

	_, again := EnsureRequestID(ctx)
	assert.Equal(t, id, again)
}
