package services

import (
	"errors"
	"fmt"
)

// ErrEmptyAnswer indicates the model replied without any usable text
var ErrEmptyAnswer = errors.New("empty model response")

// InvocationError wraps a transport or service failure from the model provider
type InvocationError struct {
	Err error
}

func (e *InvocationError) Error() string {
	return e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the model reply could not be read
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsEmptyAnswer returns true if err signals a structurally valid but empty reply
func IsEmptyAnswer(err error) bool {
	return errors.Is(err, ErrEmptyAnswer)
}

// IsInvocationError returns true if err is a provider transport or service failure
func IsInvocationError(err error) bool {
	var invocationErr *InvocationError
	return errors.As(err, &invocationErr)
}

// IsMalformedResponse returns true if err indicates an unreadable model reply
func IsMalformedResponse(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}
