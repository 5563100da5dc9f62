// Package perrors provides structured error types for the pathway map
// toolchain.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across ingest, generation, and layout
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Usage
//
//	err := perrors.New(perrors.CodeUnknownAction, "unknown action: %s", name)
//	if perrors.Is(err, perrors.CodeUnknownAction) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := perrors.Wrap(perrors.CodeReadFailure, origErr, "reading %s", path)
package perrors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, one per failure mode named by the adaptation-pathways
// error taxonomy.
const (
	// CodeMalformedLine marks a textual ingest line that does not match
	// any recognized grammar.
	CodeMalformedLine Code = "MALFORMED_LINE"

	// CodeAmbiguousCombination marks an ingest line that mentions an action
	// with components inconsistent with an earlier mention of it.
	CodeAmbiguousCombination Code = "AMBIGUOUS_COMBINATION"

	// CodeDuplicateCombinationComponent marks a combination that names the
	// same action edition more than once.
	CodeDuplicateCombinationComponent Code = "DUPLICATE_COMBINATION_COMPONENT"

	// CodeUnknownAction marks a reference to an action that was never
	// declared.
	CodeUnknownAction Code = "UNKNOWN_ACTION"

	// CodeBadColor marks a malformed color literal in a style line.
	CodeBadColor Code = "BAD_COLOR"

	// CodeEmpty marks an operation attempted on an empty graph where a
	// root node is required.
	CodeEmpty Code = "EMPTY"

	// CodeMultipleRoots marks a graph with more than one root node.
	CodeMultipleRoots Code = "MULTIPLE_ROOTS"

	// CodeCycleDetected marks a graph construction that would introduce a
	// cycle.
	CodeCycleDetected Code = "CYCLE_DETECTED"

	// CodeNonMonotonicTippingPoints marks a sequence whose tipping points
	// decrease somewhere along the path from root to leaf.
	CodeNonMonotonicTippingPoints Code = "NON_MONOTONIC_TIPPING_POINTS"

	// CodeEvalTypeMismatch marks criterion evaluation over a mix of
	// numeric and non-numeric metric values.
	CodeEvalTypeMismatch Code = "EVAL_TYPE_MISMATCH"

	// CodeFilterTypeMismatch marks a numeric filter applied to a
	// non-numeric metric value.
	CodeFilterTypeMismatch Code = "FILTER_TYPE_MISMATCH"

	// CodeNoScenario marks a tipping-point lookup that requires a scenario
	// but none was supplied.
	CodeNoScenario Code = "NO_SCENARIO"

	// CodeNoTimeSeries marks a scenario that has no recorded time series
	// for a requested metric.
	CodeNoTimeSeries Code = "NO_TIME_SERIES"

	// CodeOutOfRange marks a value outside the domain the caller
	// supplied data for (e.g. time outside a scenario's recorded range).
	CodeOutOfRange Code = "OUT_OF_RANGE"

	// CodeReadFailure marks a failure reading an input artifact.
	CodeReadFailure Code = "READ_FAILURE"

	// CodeWriteFailure marks a failure writing an output artifact.
	CodeWriteFailure Code = "WRITE_FAILURE"

	// CodeInvalidInput is a catch-all for malformed arguments not covered
	// by a more specific code above.
	CodeInvalidInput Code = "INVALID_INPUT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// OutOfRangeError carries the bounds a value was checked against, for
// callers that want to report them without parsing the message string.
type OutOfRangeError struct {
	Subject string  // what was out of range, e.g. a metric name
	Value   float64 // the offending value
	Low     float64 // lower bound of the valid domain
	High    float64 // upper bound of the valid domain
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %g is out of range [%g, %g]", e.Subject, e.Value, e.Low, e.High)
}

// Code returns the error code for this error type.
func (e *OutOfRangeError) Code() Code {
	return CodeOutOfRange
}
