package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered UUIDv7, falling back to v4.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
