package cli

import (
	"errors"
	"fmt"
	"io"
)

// PreflightError is a user-facing failure that stops a run before a report.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
	Err      error
}

func (e *PreflightError) Error() string {
	return e.Message
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

func printError(w io.Writer, err error) {
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Error: %s\n", preflight.Message)
	if preflight.Hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", preflight.Hint)
	}
	if preflight.NextStep != "" {
		fmt.Fprintf(w, "Next: %s\n", preflight.NextStep)
	}
}
