package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("wireletter: invalid configuration")

// MissingFieldError reports the first required field absent from a submission.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// RenderError wraps a failure while producing the PDF.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render letter: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// DispatchError wraps a failure of the delivery channel.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch letter: %v", e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// IsClientError reports whether err was caused by the submitted data.
func IsClientError(err error) bool {
	var missing *MissingFieldError
	var decode *DecodeError
	return errors.As(err, &missing) || errors.As(err, &decode)
}

// DecodeError reports a record that passed presence checks but could not be
// mapped onto a WireTransferRequest (e.g. a non-numeric amount).
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode request: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
