package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the relnotes CLI.
// These codes let release pipelines tell usage mistakes from provider failures.
const (
	// ExitSuccess indicates the document was written.
	ExitSuccess = 0

	// ExitProviderFailed indicates the changelog provider failed.
	ExitProviderFailed = 1

	// ExitInvalidArguments indicates missing or invalid command arguments.
	ExitInvalidArguments = 3

	// ExitConfigInvalid indicates configuration could not be loaded.
	ExitConfigInvalid = 4

	// ExitTimeout indicates the changelog fetch timed out.
	ExitTimeout = 5
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with an exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the carried
// code for an ExitError, ExitProviderFailed otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitProviderFailed
}
