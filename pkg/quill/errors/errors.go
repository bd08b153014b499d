package errors

import (
	"errors"
	"fmt"
)

// Common error types for the generation client and the scriptorium
var (
	// ErrMissingCredential indicates no API key is configured for the model backend
	ErrMissingCredential = errors.New("API Key is missing. Please check your environment configuration")

	// ErrEmptyResponse indicates the model returned no text at all
	ErrEmptyResponse = errors.New("the spirit of the quill was silent (No response)")

	// ErrMalformedResponse indicates the model reply could not be parsed as the expected JSON
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrBusy indicates a generation is already outstanding for this workspace
	ErrBusy = errors.New("a generation is already in progress")
)

// OperationError records which generation operation failed
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new operation error
func NewOperationError(op string, err error) *OperationError {
	return &OperationError{
		Op:  op,
		Err: err,
	}
}

// IsMissingCredential checks if an error is the missing-credential precondition
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsEmptyResponse checks if an error is due to a silent model
func IsEmptyResponse(err error) bool {
	return errors.Is(err, ErrEmptyResponse)
}

// IsMalformed checks if an error is due to an unparsable model reply
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
