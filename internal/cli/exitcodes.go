package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, failed snapshot writes, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or a reset without --force.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown card ids and unknown column names.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a stored snapshot that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: moving past the first or last column, negative positions.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command.
// The message has already been printed by the formatter when it is returned.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CommandError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}
