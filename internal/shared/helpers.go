// Package shared provides common utility functions used across multiple
// packages in the pyboot codebase.
package shared

import (
	"errors"
	"fmt"
	"strings"
)

// NormalizePipName lowercases a Python package name and replaces
// underscores and dots with hyphens, following PEP 503 normalization.
func NormalizePipName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	replacer := strings.NewReplacer("_", "-", ".", "-")
	return replacer.Replace(lower)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}

// ExitError carries the exit code of a failed subprocess so the CLI can
// propagate it as pyboot's own exit code.
type ExitError struct {
	Step string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s exited with code %d", e.Step, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeOf extracts a subprocess exit code from an error chain.
// Returns 0, false when no ExitError is present.
func ExitCodeOf(err error) (int, bool) {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code, true
	}
	return 0, false
}
