package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant is returned when a union tag or sentinel does not
	// belong to the union family being decoded.
	ErrUnknownVariant = errors.New("unknown union variant")
	// ErrMalformedVariant is returned when a union value is neither a string
	// sentinel nor an object with exactly one key.
	ErrMalformedVariant = errors.New("malformed union variant")
)

// marshalVariant encodes a union value in the executor's externally tagged
// form: a bare string for payload-less variants, a single-key object otherwise.
func marshalVariant(tag string, payload any) ([]byte, error) {
	if payload == nil {
		return json.Marshal(tag)
	}
	return json.Marshal(map[string]any{tag: payload})
}

// unmarshalVariant splits an externally tagged union value into its tag and
// raw payload. Sentinel strings come back with a nil payload.
func unmarshalVariant(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil, ErrMalformedVariant
	}

	if data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedVariant, err)
		}
		return tag, nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedVariant, err)
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("%w: expected exactly one key, got %d", ErrMalformedVariant, len(obj))
	}

	for tag, payload := range obj {
		return tag, payload, nil
	}
	return "", nil, ErrMalformedVariant
}

func decodePayload(tag string, payload json.RawMessage, v any) error {
	if payload == nil {
		return fmt.Errorf("%w: %s requires a payload", ErrMalformedVariant, tag)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", tag, err)
	}
	return nil
}
