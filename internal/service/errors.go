package service

import (
	"errors"
	"fmt"
)

var (
	ErrBlankValue     = errors.New("value is blank")
	ErrDuplicateValue = errors.New("value already present")
	ErrInvalidForm    = errors.New("form is invalid")
)

// ValidationError is a local input failure; nothing was sent to the executor.
type ValidationError struct {
	Field  string
	Value  string
	Reason error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ResyncError means the mutation was applied by the executor but the
// follow-up refetch failed, so the cache is stale until the next reload.
type ResyncError struct {
	Op  string
	Err error
}

func (e *ResyncError) Error() string {
	return fmt.Sprintf("%s applied, resync failed: %v", e.Op, e.Err)
}

func (e *ResyncError) Unwrap() error {
	return e.Err
}

// PathResolutionError wraps the executor error for a path that could not be
// resolved.
type PathResolutionError struct {
	Path string
	Err  error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("resolve path %q: %v", e.Path, e.Err)
}

func (e *PathResolutionError) Unwrap() error {
	return e.Err
}

// IsResync reports whether err carries a ResyncError.
func IsResync(err error) bool {
	var rerr *ResyncError
	return errors.As(err, &rerr)
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
