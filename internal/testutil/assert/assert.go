// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert holds the small set of test assertions this module uses.
// It exists so the tests do not pull in an assertion framework; a YAML
// library at the bottom of many dependency graphs should stay light.
//
// Each assertion has a plain form and an f form that appends a formatted
// message to the failure output.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
)

// miniTB is the part of testing.TB the assertions need. Taking an
// interface keeps the package testable with a fake.
type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

// failf reports a failure, appending the optional formatted message.
func failf(tb miniTB, msgFormat string, msgArgs []any, format string, args ...any) {
	tb.Helper()
	if msgFormat != "" {
		format += " - " + fmt.Sprintf(msgFormat, msgArgs...)
	}
	tb.Fatalf(format, args...)
}

// Equal asserts want == got. Use it for comparable types; for slices,
// maps, and structs containing them, use [DeepEqual].
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	Equalf(tb, want, got, "")
}

func Equalf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if got != want {
		failf(tb, msgFormat, args, "got %v; want %v", got, want)
	}
}

// DeepEqual asserts reflect.DeepEqual(want, got).
func DeepEqual(tb miniTB, want, got any) {
	tb.Helper()
	DeepEqualf(tb, want, got, "")
}

func DeepEqualf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if !reflect.DeepEqual(got, want) {
		failf(tb, msgFormat, args, "got %+v; want %+v", got, want)
	}
}

// NoError asserts err is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	NoErrorf(tb, err, "")
}

func NoErrorf(tb miniTB, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err != nil {
		failf(tb, msgFormat, args, "unexpected error: %v", err)
	}
}

// ErrorMatches asserts that err is non-nil and its message matches the
// regular expression pattern.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	ErrorMatchesf(tb, pattern, err, "")
}

func ErrorMatchesf(tb miniTB, pattern string, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err == nil {
		failf(tb, msgFormat, args, "got nil; want error matching %q", pattern)
		return
	}
	matchf(tb, pattern, err.Error(), "error", msgFormat, args)
}

// ErrorIs asserts errors.Is(got, want).
func ErrorIs(tb miniTB, got, want error) {
	tb.Helper()
	if !errors.Is(got, want) {
		tb.Fatalf("got %#v; want %#v", got, want)
	}
}

// ErrorAs asserts that errors.As can assign err to target. target must be
// a pointer to an error type, as errors.As requires; a bad target fails
// the test instead of panicking.
func ErrorAs(tb miniTB, err error, target any) {
	tb.Helper()

	ok, panicErr := errorAs(err, target)
	if panicErr != nil {
		tb.Fatalf("%s", panicErr)
		return
	}
	if ok {
		return
	}

	targetType := reflect.TypeOf(target)
	if targetType.Kind() != reflect.Pointer {
		tb.Fatalf("a pointer was expected: got: %s; want: ptr", targetType.Kind())
		return
	}
	tb.Fatalf("got %#v; want %s", err, targetType.Elem())
}

// errorAs wraps errors.As, converting its panics on invalid targets into
// an error return.
func errorAs(err error, target any) (ok bool, panicErr error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			panicErr = fmt.Errorf("panic: %v", r)
		}
	}()
	return errors.As(err, target), nil
}

// IsNil asserts that v is nil, including typed nil pointers, slices,
// maps, channels, and functions.
func IsNil(tb miniTB, v any) {
	tb.Helper()
	IsNilf(tb, v, "")
}

func IsNilf(tb miniTB, v any, msgFormat string, args ...any) {
	tb.Helper()
	if !isNil(v) {
		failf(tb, msgFormat, args, "got non-nil (type %T): %#v", v, v)
	}
}

// NotNil asserts that v is not nil.
func NotNil(tb miniTB, v any) {
	tb.Helper()
	NotNilf(tb, v, "")
}

func NotNilf(tb miniTB, v any, msgFormat string, args ...any) {
	tb.Helper()
	if isNil(v) {
		failf(tb, msgFormat, args, "got nil; want non-nil")
	}
}

// True asserts got.
func True(tb miniTB, got bool) {
	tb.Helper()
	Truef(tb, got, "")
}

func Truef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if !got {
		failf(tb, msgFormat, args, "got false; want true")
	}
}

// False asserts !got.
func False(tb miniTB, got bool) {
	tb.Helper()
	Falsef(tb, got, "")
}

func Falsef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if got {
		failf(tb, msgFormat, args, "got true; want false")
	}
}

// PanicMatches asserts that f panics with a message matching pattern.
func PanicMatches(tb miniTB, pattern string, f func()) {
	tb.Helper()
	PanicMatchesf(tb, pattern, f, "")
}

func PanicMatchesf(tb miniTB, pattern string, f func(), msgFormat string, args ...any) {
	tb.Helper()
	var pan any
	func() {
		defer func() { pan = recover() }()
		f()
	}()
	if pan == nil {
		failf(tb, msgFormat, args, "function did not panic; want panic matching %q", pattern)
		return
	}

	var pmsg string
	switch x := pan.(type) {
	case error:
		pmsg = x.Error()
	case string:
		pmsg = x
	default:
		pmsg = fmt.Sprint(x)
	}
	matchf(tb, pattern, pmsg, "panic", msgFormat, args)
}

// matchf checks a message against a pattern, reporting both compile
// failures and mismatches through tb.
func matchf(tb miniTB, pattern, msg, what string, msgFormat string, args []any) {
	tb.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		failf(tb, msgFormat, args, "invalid regexp %q: %v", pattern, err)
		return
	}
	if !re.MatchString(msg) {
		failf(tb, msgFormat, args, "%s %q does not match %q", what, msg, pattern)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
