package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required key is absent from a submitted record.
	ErrMissingField = errors.New("missing field")
	// ErrMalformedRequest is returned when a body does not match the expected shape.
	ErrMalformedRequest = errors.New("malformed request")
)

// MissingField wraps ErrMissingField with the JSON path of the absent key.
func MissingField(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}

// MalformedRequest wraps ErrMalformedRequest with the decoder's reason.
func MalformedRequest(reason error) error {
	return fmt.Errorf("%w: %v", ErrMalformedRequest, reason)
}

// ErrorCode returns the client-facing code for a request error, or "" when
// err is not one of the request error kinds.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "MissingField"
	case errors.Is(err, ErrMalformedRequest):
		return "MalformedRequest"
	default:
		return ""
	}
}
