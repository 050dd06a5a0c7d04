package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized     = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected response")
)

// StatusError carries a non-2xx response the client has no dedicated sentinel for.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected response %d", e.Code)
	}
	return fmt.Sprintf("unexpected response %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }
