// internal/cli/errors.go
package cli

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

// CodedError carries the process exit code for err.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }
func (e *CodedError) Unwrap() error { return e.Err }

func usageErrorf(format string, a ...any) error {
	return &CodedError{Code: ExitUsage, Err: fmt.Errorf(format, a...)}
}

func inputError(err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: ExitUsage, Err: err}
}

func writeError(err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: ExitWrite, Err: err}
}

// Code returns the exit code carried by err, ExitFailure for other errors
// and ExitOK for nil.
func Code(err error) int {
	if err == nil {
		return ExitOK
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ExitFailure
}
