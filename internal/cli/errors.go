// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling and exit codes for levdiff commands.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never just print and return nil)
//   - Let the caller decide how to display errors
//   - Use structured error types for better error handling
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/levdiff/internal/edit"
	"github.com/jeranaias/levdiff/internal/input"
)

// =============================================================================
// EXIT CODES
// =============================================================================

// Exit codes follow the diff(1) convention: 0 identical, 1 different,
// 2 and up for trouble.
const (
	// ExitSuccess indicates inputs were identical (or an informational command succeeded)
	ExitSuccess = 0
	// ExitDifferences indicates the comparison completed and the inputs differ
	ExitDifferences = 1
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 2
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 3
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 4
	// ExitNotFoundError indicates an input file was not found
	ExitNotFoundError = 5
	// ExitResourceError indicates an input too large for the configured limits
	ExitResourceError = 6
)

// ErrFilesDiffer reports a successful comparison whose inputs differ.
// It flows through the normal error path solely to select exit code 1;
// it is not printed.
var ErrFilesDiffer = errors.New("files differ")

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError represents invalid command usage.
type UsageError struct {
	Message string
	Hint    string // Optional "did you mean ...?" suggestion
}

func (e *UsageError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (did you mean %q?)", e.Message, e.Hint)
	}
	return e.Message
}

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "diff", "config")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Command, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Command, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// ExitCodeForError maps an error returned by a command handler to the
// process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	switch {
	case errors.Is(err, ErrFilesDiffer):
		return ExitDifferences
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.Is(err, input.ErrInputTooLarge), errors.Is(err, edit.ErrMatrixTooLarge):
		return ExitResourceError
	case errors.Is(err, os.ErrNotExist):
		return ExitNotFoundError
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Command == "config" {
		return ExitConfigError
	}

	return ExitGeneralError
}
