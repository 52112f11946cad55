package exception

import (
	"errors"
	"fmt"
)

// ApplicationError is an error with an HTTP status attached. The transport
// layer maps it to its status code; Message is what the caller sees.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches two application errors by message and cause, so sentinel
// errors compare equal regardless of wrapping.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Message == targetErr.Message &&
		e.Cause == targetErr.Cause
}

// ErrorCode returns the HTTP status for this error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
