// Package errors provides sentinel errors and error types for the farce engine.
// Two classes are kept apart: recoverable parse errors (bad FEN, bad move
// text, bad command arguments) and contract violations, which mean a caller
// broke an invariant of a trusted primitive. Both wrap a sentinel so they can
// be told apart with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates move text that is not UCI long algebraic.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrInvalidCommand indicates a recognized command with unusable arguments.
	ErrInvalidCommand = errors.New("invalid command arguments")

	// ErrContractViolation indicates a caller broke the contract of a
	// primitive, e.g. moving from an empty square.
	ErrContractViolation = errors.New("invariant violated by caller")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWorkerClosed indicates a message sent to a worker that has shut down.
	ErrWorkerClosed = errors.New("worker closed")

	// ErrWorkerBusy indicates the worker's inbound queue is full.
	ErrWorkerBusy = errors.New("worker inbound queue full")

	// ErrQuit is returned by the command loop when the GUI sends "quit".
	ErrQuit = errors.New("quit requested")
)

// ParseError represents a failure to decode text input, such as a FEN
// string, a move or a command argument.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // Which part of the input was bad (e.g. "rank 3")
	Column   int    // 1-based offset into Input (0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Column > 0 {
			loc += fmt.Sprintf(" (column %d)", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ContractError reports that a trusted primitive was called with arguments
// that violate its contract. It indicates a bug upstream (move generator or
// protocol client), not bad user input.
type ContractError struct {
	Err    error  // Usually ErrContractViolation
	Op     string // The primitive that was called (e.g. "apply move")
	Square string // Square involved, in algebraic notation (if any)
	Reason string // Human readable description
}

// Error returns a formatted error message.
func (e *ContractError) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
	}
	if e.Square != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.Square)
	}
	if e.Reason != "" {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		if sb.Len() > 0 {
			return fmt.Sprintf("%s: %v", sb.String(), e.Err)
		}
		return e.Err.Error()
	}
	if sb.Len() == 0 {
		return ErrContractViolation.Error()
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// IsContractViolation reports whether err is (or wraps) a contract violation.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContractViolation)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is, As and New re-export the standard library functions so callers need
// only one errors import.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)
