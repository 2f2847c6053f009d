// Package errors provides structured error types for raagpile.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - Typed payloads for parse and validation failures
//
// # Error Codes
//
//   - INVALID_CONFIGURATION: bad group presentation (unknown generator in a
//     commuting pair, unsupported group type, duplicate generator)
//   - PARSE_ERROR: malformed word text
//   - UNKNOWN_GENERATOR: a word references a generator the group lacks
//   - INVALID_INPUT, NOT_FOUND, INTERNAL_ERROR: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfiguration, "unsupported group type %q", tag)
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // Handle configuration error
//	}
//
//	var pe *errors.ParseError
//	if stderrors.As(err, &pe) {
//	    fmt.Println(pe.Input, pe.Offset)
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeConfiguration    Code = "INVALID_CONFIGURATION"
	ErrCodeParse            Code = "PARSE_ERROR"
	ErrCodeUnknownGenerator Code = "UNKNOWN_GENERATOR"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeInternal         Code = "INTERNAL_ERROR"
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

// coder is implemented by typed errors that carry their own code.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It walks the error chain and matches the first *Error or typed error
// that reports a code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For a top-level *Error, returns the message and cause without the code
// prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e == err {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// ParseError reports malformed word text. Offset is the rune index into
// Input at which parsing could not continue.
type ParseError struct {
	Input  string
	Offset int
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse expression %q starting from position %d", e.Input, e.Offset)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Code returns the error code for this error type.
func (e *ParseError) Code() Code {
	return ErrCodeParse
}

// UnknownGeneratorError reports a generator outside the declared set.
type UnknownGeneratorError struct {
	Generator string
	Known     []string
}

// Error implements the error interface.
func (e *UnknownGeneratorError) Error() string {
	return fmt.Sprintf("unknown generator %q (known: %s)", e.Generator, strings.Join(e.Known, ", "))
}

// Code returns the error code for this error type.
func (e *UnknownGeneratorError) Code() Code {
	return ErrCodeUnknownGenerator
}
