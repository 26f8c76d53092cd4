package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/timesheet/internal/logger"
)

// Exit codes returned by Report
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks a bad command-line value, such as an unparseable date.
type UsageError struct {
	Arg   string
	Value string
	Err   error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Arg, e.Value, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// Usage builds a UsageError for arg.
func Usage(arg, value string, err error) error {
	return &UsageError{Arg: arg, Value: value, Err: err}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Report logs err, prints it to w and returns the exit code the process should use.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(w, Format(err))

	var usage *UsageError
	if stderrors.As(err, &usage) {
		return ExitUsage
	}
	return ExitError
}

// Fatal reports err on stderr and exits. A nil error is a no-op.
func Fatal(err error) {
	if err != nil {
		os.Exit(Report(os.Stderr, err))
	}
}
