// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import "fmt"

// Converter types with a FromValue method take over their own decoding
// when UnmarshalStruct fills a case struct, so test YAML can use flexible
// shapes (a constant name where an int goes, a scalar where a list goes).

// IntOrStr holds an int that test data may spell either as a literal or
// as a constant name resolved through Registry.
type IntOrStr struct {
	Value    int
	Registry *ConstantRegistry
}

func (ios *IntOrStr) FromValue(v any) error {
	switch val := v.(type) {
	case int:
		ios.Value = val
	case string:
		if ios.Registry == nil {
			return fmt.Errorf("no constant registry available for resolving %q", val)
		}
		resolved, ok := ios.Registry.Resolve(val)
		if !ok {
			return fmt.Errorf("unknown constant name: %s", val)
		}
		ios.Value = resolved
	default:
		return fmt.Errorf("IntOrStr value must be int or string, got %T", v)
	}
	return nil
}

// ByteInput is raw input spelled as a string, a single byte value, or a
// sequence of byte values. The numeric forms let tests express input that
// is not valid UTF-8.
type ByteInput []byte

func (bi *ByteInput) FromValue(v any) error {
	switch val := v.(type) {
	case string:
		*bi = []byte(val)
		return nil
	case int:
		if val < 0 || val > 255 {
			return fmt.Errorf("byte value out of range [0-255]: %d", val)
		}
		*bi = []byte{byte(val)}
		return nil
	case []any:
		bytes := make([]byte, len(val))
		for i, item := range val {
			b, ok := item.(int)
			if !ok {
				return fmt.Errorf("byte array element must be int, got %T", item)
			}
			if b < 0 || b > 255 {
				return fmt.Errorf("byte value out of range [0-255]: %d", b)
			}
			bytes[i] = byte(b)
		}
		*bi = bytes
		return nil
	}
	return fmt.Errorf("input must be a string, int, or sequence of integers, got %T", v)
}

// Args is a method argument list. A bare scalar in the test data becomes
// a one-element list.
type Args []any

func (a *Args) FromValue(v any) error {
	if arrVal, ok := v.([]any); ok {
		*a = arrVal
	} else {
		*a = []any{v}
	}
	return nil
}
