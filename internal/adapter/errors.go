package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("executor internal error")
	ErrUnavailable         = errors.New("executor unavailable")
	ErrUnknownTransport    = errors.New("unknown transport")
)

// CommandError reports a failed executor command. Err keeps the transport
// sentinel reachable through errors.Is.
type CommandError struct {
	Op        string
	RequestID string
	Err       error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// OpOf returns the command name carried by err, or "".
func OpOf(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Op
	}
	return ""
}
