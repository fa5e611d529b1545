// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for error types: formatting, unwrapping, and errors.As/Is matching.

package libyaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaml/pyyaml/internal/testutil/assert"
)

func TestErrors(t *testing.T) {
	RunTestCases(t, "errors.yaml", map[string]TestHandler{
		"marked-error":    runMarkedErrorTest(func(e MarkedYAMLError) error { return e }),
		"parser-error":    runMarkedErrorTest(func(e MarkedYAMLError) error { return ParserError(e) }),
		"scanner-error":   runMarkedErrorTest(func(e MarkedYAMLError) error { return ScannerError(e) }),
		"reader-error":    runReaderYAMLErrorTest,
		"emitter-error":   runEmitterYAMLErrorTest,
		"writer-error":    runWriterYAMLErrorTest,
		"construct-error": runConstructYAMLErrorTest,
		"load-errors":     runLoadErrorsTest,
		"load-errors-as":  runLoadErrorsAsTest,
		"load-errors-is":  runLoadErrorsIsTest,
		"type-error":      runTypeYAMLErrorTest,
	})
}

// fromSpec extracts the error description from a case's 'from' field.
func fromSpec(t *testing.T, tc TestCase) map[string]any {
	t.Helper()
	spec, ok := tc.From.(map[string]any)
	assert.Truef(t, ok, "from should be map[string]any, got %T", tc.From)
	return spec
}

func wantMessage(t *testing.T, tc TestCase) string {
	t.Helper()
	want, ok := tc.Want.(string)
	assert.Truef(t, ok, "want should be string, got %T", tc.Want)
	return want
}

// checkUnwrap verifies Unwrap() when the case asks for it with 'also: unwrap'.
func checkUnwrap(t *testing.T, tc TestCase, err interface{ Unwrap() error }, message string) {
	t.Helper()
	if tc.Also != "unwrap" {
		return
	}
	unwrapped := err.Unwrap()
	assert.NotNilf(t, unwrapped, "Unwrap() should return non-nil")
	assert.Equalf(t, message, unwrapped.Error(), "Unwrap() error message mismatch")
}

// runMarkedErrorTest covers MarkedYAMLError and its ParserError/ScannerError
// wrappers, which only differ in the prefix wrap adds.
func runMarkedErrorTest(wrap func(MarkedYAMLError) error) TestHandler {
	return func(t *testing.T, tc TestCase) {
		t.Helper()

		err := wrap(buildMarkedError(t, fromSpec(t, tc)))
		assert.Equalf(t, wantMessage(t, tc), err.Error(), "error message mismatch")
	}
}

func runReaderYAMLErrorTest(t *testing.T, tc TestCase) {
	t.Helper()

	spec := fromSpec(t, tc)
	message := getString(t, spec, "message")
	err := ReaderError{
		Offset: getInt(t, spec, "offset"),
		Value:  getInt(t, spec, "value"),
		Err:    errors.New(message),
	}

	assert.Equalf(t, wantMessage(t, tc), err.Error(), "error message mismatch")
	checkUnwrap(t, tc, err, message)
}

func runEmitterYAMLErrorTest(t *testing.T, tc TestCase) {
	t.Helper()

	err := EmitterError{Message: getString(t, fromSpec(t, tc), "message")}
	assert.Equalf(t, wantMessage(t, tc), err.Error(), "error message mismatch")
}

func runWriterYAMLErrorTest(t *testing.T, tc TestCase) {
	t.Helper()

	message := getString(t, fromSpec(t, tc), "message")
	err := WriterError{Err: errors.New(message)}

	assert.Equalf(t, wantMessage(t, tc), err.Error(), "error message mismatch")
	checkUnwrap(t, tc, err, message)
}

func runConstructYAMLErrorTest(t *testing.T, tc TestCase) {
	t.Helper()

	spec := fromSpec(t, tc)
	message := getString(t, spec, "message")
	err := &ConstructError{
		Line: getInt(t, spec, "line"),
		Err:  errors.New(message),
	}

	assert.Equalf(t, wantMessage(t, tc), err.Error(), "error message mismatch")
	checkUnwrap(t, tc, err, message)
}

func runLoadErrorsTest(t *testing.T, tc TestCase) {
	t.Helper()

	err := &LoadErrors{Errors: buildConstructErrorList(t, fromSpec(t, tc))}

	got := strings.TrimSpace(err.Error())
	want := strings.TrimSpace(wantMessage(t, tc))
	assert.Equalf(t, want, got, "error message mismatch")
}

func runLoadErrorsAsTest(t *testing.T, tc TestCase) {
	t.Helper()

	err := &LoadErrors{Errors: buildConstructErrorList(t, fromSpec(t, tc))}

	switch tc.As {
	case "ConstructError":
		var target *ConstructError
		gotAs := errors.As(err, &target)
		assert.Equalf(t, tc.WantAs, gotAs, "errors.As result mismatch")

		if tc.WantAs && target != nil {
			assert.Equalf(t, tc.WantLine, target.Line, "ConstructError.Line mismatch")
			assert.Equalf(t, tc.WantMessage, target.Err.Error(), "ConstructError.Err message mismatch")
		}

	case "TypeError":
		var target *TypeError
		gotAs := errors.As(err, &target)
		assert.Equalf(t, tc.WantAs, gotAs, "errors.As result mismatch")

		if tc.WantAs && target != nil {
			assert.Equalf(t, len(tc.WantMessages), len(target.Errors), "TypeError.Errors length mismatch")
			for i, wantMsg := range tc.WantMessages {
				wantStr, ok := wantMsg.(string)
				assert.Truef(t, ok, "want_messages[%d] should be string, got %T", i, wantMsg)
				assert.Equalf(t, wantStr, target.Errors[i], "TypeError.Errors[%d] mismatch", i)
			}
		}

	default:
		t.Fatalf("unknown as type: %s", tc.As)
	}
}

func runLoadErrorsIsTest(t *testing.T, tc TestCase) {
	t.Helper()

	err := &LoadErrors{Errors: buildConstructErrorList(t, fromSpec(t, tc))}

	gotIs := false
	for _, cerr := range err.Errors {
		if cerr.Err != nil && cerr.Err.Error() == tc.Is {
			gotIs = true
			break
		}
	}

	assert.Equalf(t, tc.WantIs, gotIs, "errors.Is result mismatch")
}

func runTypeYAMLErrorTest(t *testing.T, tc TestCase) {
	t.Helper()

	err := &TypeError{Errors: getStringSlice(t, fromSpec(t, tc), "errors")}

	got := strings.TrimSpace(err.Error())
	want := strings.TrimSpace(wantMessage(t, tc))
	assert.Equalf(t, want, got, "error message mismatch")
}

func buildMarkedError(t *testing.T, spec map[string]any) MarkedYAMLError {
	t.Helper()

	err := MarkedYAMLError{
		Mark:    buildMark(t, spec, "mark"),
		Message: getString(t, spec, "message"),
	}

	if contextMsg, ok := spec["context_message"].(string); ok {
		err.ContextMessage = contextMsg
		err.ContextMark = buildMark(t, spec, "context_mark")
	}

	return err
}

func buildMark(t *testing.T, spec map[string]any, key string) Mark {
	t.Helper()

	markSpec, ok := spec[key].(map[string]any)
	if !ok {
		return Mark{}
	}

	return Mark{
		Line:   getInt(t, markSpec, "line"),
		Column: getInt(t, markSpec, "column"),
		Index:  getInt(t, markSpec, "index"),
	}
}

func buildConstructErrorList(t *testing.T, spec map[string]any) []*ConstructError {
	t.Helper()

	errorsSpec, ok := spec["errors"].([]any)
	if !ok {
		return nil
	}

	var result []*ConstructError
	for _, errSpec := range errorsSpec {
		errMap, ok := errSpec.(map[string]any)
		assert.Truef(t, ok, "error spec should be map[string]any")

		result = append(result, &ConstructError{
			Line: getInt(t, errMap, "line"),
			Err:  errors.New(getString(t, errMap, "message")),
		})
	}

	return result
}

func getString(t *testing.T, spec map[string]any, key string) string {
	t.Helper()
	v, ok := spec[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	assert.Truef(t, ok, "%s should be string, got %T", key, v)
	return s
}

func getInt(t *testing.T, spec map[string]any, key string) int {
	t.Helper()
	v, ok := spec[key]
	if !ok {
		return 0
	}
	i, ok := v.(int)
	assert.Truef(t, ok, "%s should be int, got %T", key, v)
	return i
}

func getStringSlice(t *testing.T, spec map[string]any, key string) []string {
	t.Helper()
	v, ok := spec[key]
	if !ok {
		return nil
	}
	slice, ok := v.([]any)
	assert.Truef(t, ok, "%s should be []any, got %T", key, v)

	var result []string
	for i, item := range slice {
		s, ok := item.(string)
		assert.Truef(t, ok, "%s[%d] should be string, got %T", key, i, item)
		result = append(result, s)
	}
	return result
}
