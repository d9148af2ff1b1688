// Package utils holds small helpers shared by the transports, the services
// and the observability server: request ids carried through context,
// HMAC body signatures, JWT bearer tokens, JSON response writing, the resty
// client wrapper and display formatting.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so string keys from other
// packages never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey stores the id correlating one command call across the
// client log, the transport header and the executor.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request id stored in ctx, if any.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// EnsureRequestID returns ctx and its request id, minting one when absent.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := NewRequestID()
	return WithRequestID(ctx, id), id
}
