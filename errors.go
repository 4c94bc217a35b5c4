package ask

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrCanceled is returned when the user presses Esc (or Ctrl+D on an empty input).
	ErrCanceled = errors.New("operation canceled by user")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("operation interrupted by user")
)

// InvalidConfigError is returned before any terminal interaction when a prompt
// was configured with values it can never satisfy.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

func invalidConfig(format string, args ...any) error {
	return &InvalidConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IOError wraps a failure of the terminal or of a spawned process.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "io error: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CustomError wraps an error returned by a user supplied callback
// (validator, suggester, completer or parser).
type CustomError struct {
	Err error
}

func (e *CustomError) Error() string {
	return e.Err.Error()
}

func (e *CustomError) Unwrap() error {
	return e.Err
}
