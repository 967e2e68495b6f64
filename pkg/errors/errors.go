// Package errors provides structured error handling for whichchain.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input
	ExitNotFound = 4 // Resource not found
)

// Error is the structured error type for whichchain.
type Error struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *Error) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for Error.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &Error{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	// ErrInvalidInput is the only call-terminating identification error:
	// the input could not be classified, or no candidate survived validation.
	ErrInvalidInput = &Error{
		Code:     "INVALID_INPUT",
		Message:  "unable to identify input",
		ExitCode: ExitInput,
	}

	// Per-candidate errors. These are always recovered locally by discarding
	// the candidate; they never terminate an identification call.
	ErrInvalidChecksum = &Error{
		Code:     "INVALID_CHECKSUM",
		Message:  "checksum verification failed",
		ExitCode: ExitInput,
	}

	ErrInvalidEncoding = &Error{
		Code:     "INVALID_ENCODING",
		Message:  "malformed encoding",
		ExitCode: ExitInput,
	}

	ErrInvalidKey = &Error{
		Code:     "INVALID_KEY",
		Message:  "invalid public key",
		ExitCode: ExitInput,
	}

	ErrUnknownPipeline = &Error{
		Code:     "UNKNOWN_PIPELINE",
		Message:  "unknown derivation pipeline",
		ExitCode: ExitNotFound,
	}

	ErrUnknownChain = &Error{
		Code:     "UNKNOWN_CHAIN",
		Message:  "chain not found in registry",
		ExitCode: ExitNotFound,
	}

	ErrRegistryLoad = &Error{
		Code:     "REGISTRY_LOAD",
		Message:  "failed to load chain definitions",
		ExitCode: ExitGeneral,
	}
)

// New creates a new Error with the given code and message.
func New(code, message string, exitCode int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
	}
}

// Wrap wraps an error with a sentinel, preserving the cause chain.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		Suggestion: sentinel.Suggestion,
		Cause:      cause,
		ExitCode:   sentinel.ExitCode,
	}
}

// WithDetails returns a copy of the sentinel with the given details attached.
func WithDetails(sentinel *Error, details map[string]string) *Error {
	merged := make(map[string]string, len(sentinel.Details)+len(details))
	for k, v := range sentinel.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &Error{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    merged,
		Suggestion: sentinel.Suggestion,
		Cause:      sentinel.Cause,
		ExitCode:   sentinel.ExitCode,
	}
}

// WithSuggestion returns a copy of the sentinel with an actionable suggestion.
func WithSuggestion(sentinel *Error, suggestion string) *Error {
	return &Error{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		Suggestion: suggestion,
		Cause:      sentinel.Cause,
		ExitCode:   sentinel.ExitCode,
	}
}

// InvalidInput builds the terminal identification error, carrying the
// offending input for diagnostics.
func InvalidInput(input string) *Error {
	return WithDetails(ErrInvalidInput, map[string]string{"input": input})
}

// ExitCode returns the appropriate process exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode
	}
	return ExitGeneral
}
