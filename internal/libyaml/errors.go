// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for YAML parsing and emitting.
// Provides structured error reporting with line/column information.

package libyaml

import (
	"errors"
	"fmt"
	"strings"
)

type MarkedYAMLError struct {
	// optional context
	ContextMark    Mark
	ContextMessage string

	Mark    Mark
	Message string
}

func (e MarkedYAMLError) Error() string {
	var builder strings.Builder
	builder.WriteString("yaml: ")
	if len(e.ContextMessage) > 0 {
		fmt.Fprintf(&builder, "%s at %s: ", e.ContextMessage, e.ContextMark)
	}
	if len(e.ContextMessage) == 0 || e.ContextMark != e.Mark {
		fmt.Fprintf(&builder, "%s: ", e.Mark)
	}
	builder.WriteString(e.Message)
	return builder.String()
}

type ParserError MarkedYAMLError

func (e ParserError) Error() string {
	return MarkedYAMLError(e).Error()
}

type ScannerError MarkedYAMLError

func (e ScannerError) Error() string {
	return MarkedYAMLError(e).Error()
}

// ComposerError reports problems found while composing the event stream into
// node graphs, such as undefined aliases or duplicate anchors. The context
// mark cites the related earlier occurrence when there is one.
type ComposerError MarkedYAMLError

func (e ComposerError) Error() string {
	return MarkedYAMLError(e).Error()
}

type ReaderError struct {
	Name   string
	Offset int
	Value  int
	Err    error
}

func (e ReaderError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("yaml: %q offset %d: %s", e.Name, e.Offset, e.Err)
	}
	return fmt.Sprintf("yaml: offset %d: %s", e.Offset, e.Err)
}

func (e ReaderError) Unwrap() error {
	return e.Err
}

type EmitterError struct {
	Message string
}

func (e EmitterError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Message)
}

// SerializerError reports misuse of the serializer lifecycle, such as
// serializing into a closed serializer.
type SerializerError struct {
	Message string
}

func (e SerializerError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Message)
}

type WriterError struct {
	Err error
}

func (e WriterError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Err)
}

func (e WriterError) Unwrap() error {
	return e.Err
}

// ConstructError represents a single, non-fatal error that occurred during
// the constructing of a YAML document into a Go value.
type ConstructError struct {
	Err    error
	Line   int
	Column int
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *ConstructError) Unwrap() error {
	return e.Err
}

// LoadErrors is returned when one or more fields cannot be properly
// constructed into the target value. Construction continues past these
// errors, so a single load can report several of them.
type LoadErrors struct {
	Errors []*ConstructError
}

func (e *LoadErrors) Error() string {
	var b strings.Builder
	b.WriteString("yaml: construct errors:")
	for _, err := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns all errors for compatibility with errors.As/Is.
// This allows callers to unwrap LoadErrors and examine individual
// ConstructErrors.
// Implements the Go 1.20+ multiple error unwrapping interface.
func (e *LoadErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// As allows LoadErrors to match against *ConstructError targets by returning
// the first error in the list, and against the legacy *TypeError shape by
// converting every error to its message string.
func (e *LoadErrors) As(target any) bool {
	if len(e.Errors) == 0 {
		return false
	}
	switch t := target.(type) {
	case **ConstructError:
		*t = e.Errors[0]
		return true
	case **TypeError:
		*t = &TypeError{Errors: e.Strings()}
		return true
	}
	return false
}

// Is checks if any wrapped error matches the target error.
func (e *LoadErrors) Is(target error) bool {
	for _, err := range e.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Strings returns the error messages as a string slice.
//
// This method is provided for compatibility with code migrating from v3,
// where TypeError.Errors was []string. New code should access the Errors
// field directly to get structured error information including line and
// column numbers.
func (e *LoadErrors) Strings() []string {
	result := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		result[i] = err.Error()
	}
	return result
}

// TypeError is the legacy v3 error shape holding plain message strings.
// It is produced on demand through [LoadErrors.As].
type TypeError struct {
	Errors []string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("yaml: unmarshal errors:\n  %s", strings.Join(e.Errors, "\n  "))
}

// YAMLError is an internal error wrapper type.
type YAMLError struct {
	Err error
}

func (e *YAMLError) Error() string {
	return e.Err.Error()
}

// Fail panics with the given error wrapped so that handleErr recovers it at
// the public API boundary.
func Fail(err error) {
	panic(&YAMLError{err})
}

func failf(format string, args ...any) {
	panic(&YAMLError{fmt.Errorf("yaml: "+format, args...)})
}

// handleErr turns panics raised through Fail/failf into error returns.
// Other panics are passed through.
func handleErr(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(*YAMLError); ok {
			*err = e.Err
		} else {
			panic(v)
		}
	}
}
