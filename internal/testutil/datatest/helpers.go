// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// HexToBytes decodes a hex string, failing the test on malformed input.
// Test files use it to spell binary data that YAML cannot hold directly.
func HexToBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex string: %s: %v", s, err)
	}
	return b
}

// GetField reads a struct field by name through reflection, following one
// level of pointer indirection.
func GetField(t *testing.T, obj any, fieldName string) any {
	t.Helper()
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	field := v.FieldByName(fieldName)
	if !field.IsValid() {
		t.Fatalf("field %s not found in %T", fieldName, obj)
	}
	return field.Interface()
}

// CallMethod invokes a named method with the given arguments and returns
// the raw reflect.Value results; callers unwrap them with Interface,
// Int, Bool, and so on.
func CallMethod(t *testing.T, obj any, methodName string, args []any) []reflect.Value {
	t.Helper()
	method := reflect.ValueOf(obj).MethodByName(methodName)
	if !method.IsValid() {
		t.Fatalf("method %s not found on %T", methodName, obj)
	}

	argValues := make([]reflect.Value, 0, len(args))
	for _, arg := range args {
		argValues = append(argValues, reflect.ValueOf(arg))
	}
	return method.Call(argValues)
}

// WantBool reads a boolean expectation from a case's want field, falling
// back to defaultVal when the field is absent.
func WantBool(t *testing.T, want any, defaultVal bool) bool {
	t.Helper()
	if want == nil {
		return defaultVal
	}
	boolVal, ok := want.(bool)
	if !ok {
		t.Fatalf("want should be bool, got %T", want)
	}
	return boolVal
}

// GenerateData expands a generator spec into bytes. Plain strings pass
// through; maps describe repetition:
//
//	{loop: [value, count]}                   value repeated count times
//	{join: [{text: s}, {loop: [v, n]}, ...]} parts concatenated
//	{join: [...], loop: count}               the joined result repeated
//
// Tests use this for inputs too large to paste into the YAML file, such
// as documents that overflow buffer or depth limits.
func GenerateData(spec any) ([]byte, error) {
	specMap, ok := spec.(map[string]any)
	if !ok {
		if str, ok := spec.(string); ok {
			return []byte(str), nil
		}
		return nil, fmt.Errorf("data spec must be map or string, got %T", spec)
	}

	loopVal, hasLoop := specMap["loop"]
	joinVal, hasJoin := specMap["join"]

	if hasLoop && !hasJoin {
		return generateLoop(loopVal)
	}

	if hasJoin {
		result, err := generateJoin(joinVal)
		if err != nil {
			return nil, err
		}
		if hasLoop {
			count, ok := loopVal.(int)
			if !ok {
				return nil, fmt.Errorf("loop count must be int, got %T", loopVal)
			}
			return []byte(strings.Repeat(string(result), count)), nil
		}
		return result, nil
	}

	return nil, fmt.Errorf("data spec must have 'loop' or 'join' field")
}

func generateLoop(loopVal any) ([]byte, error) {
	loopArr, ok := loopVal.([]any)
	if !ok || len(loopArr) != 2 {
		return nil, fmt.Errorf("loop must be a 2-element array [value, count], got %v", loopVal)
	}
	value, ok := loopArr[0].(string)
	if !ok {
		return nil, fmt.Errorf("loop value must be string, got %T", loopArr[0])
	}
	count, ok := loopArr[1].(int)
	if !ok {
		return nil, fmt.Errorf("loop count must be int, got %T", loopArr[1])
	}
	return []byte(strings.Repeat(value, count)), nil
}

func generateJoin(joinVal any) ([]byte, error) {
	joinList, ok := joinVal.([]any)
	if !ok {
		return nil, fmt.Errorf("join must be array, got %T", joinVal)
	}

	var result strings.Builder
	for i, item := range joinList {
		itemMap, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("join item %d must be map, got %T", i, item)
		}
		if text, ok := itemMap["text"]; ok {
			textStr, ok := text.(string)
			if !ok {
				return nil, fmt.Errorf("join item %d text must be string, got %T", i, text)
			}
			result.WriteString(textStr)
			continue
		}
		if loopVal, ok := itemMap["loop"]; ok {
			loopData, err := generateLoop(loopVal)
			if err != nil {
				return nil, fmt.Errorf("join item %d: %w", i, err)
			}
			result.Write(loopData)
			continue
		}
		return nil, fmt.Errorf("join item %d must have 'text' or 'loop' field", i)
	}
	return []byte(result.String()), nil
}
