// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package datatest drives data-driven tests from YAML files. Test cases
// are loaded as raw maps so packages can bind them to their own case
// structs with UnmarshalStruct, and dispatched to handlers by test type.
package datatest

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

// LoadYAMLFunc parses YAML bytes into a generic value. The calling package
// supplies it so datatest does not depend on a particular YAML entry point.
type LoadYAMLFunc func([]byte) (any, error)

// LoadTestCasesFromFile reads a YAML test file and returns its cases as
// maps, with the type-as-key shorthand normalized away.
func LoadTestCasesFromFile(filename string, loadYAML LoadYAMLFunc) ([]map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	rawData, err := loadYAML(data)
	if err != nil {
		return nil, err
	}

	rawCases, ok := rawData.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a sequence of test cases, got %T", rawData)
	}

	result := make([]map[string]any, 0, len(rawCases))
	for _, item := range rawCases {
		rawCase, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, NormalizeTypeAsKey(rawCase))
	}
	return result, nil
}

// NormalizeTypeAsKey rewrites the shorthand {test-type: {...}} into
// {type: test-type, ...}. A "type" key inside the shorthand body would
// collide with the test type, so it is preserved as "output_type".
func NormalizeTypeAsKey(itemMap map[string]any) map[string]any {
	if len(itemMap) != 1 {
		return itemMap
	}
	if _, hasType := itemMap["type"]; hasType {
		return itemMap
	}
	for key, value := range itemMap {
		if !IsTypeConstant(key) {
			continue
		}
		subMap, ok := value.(map[string]any)
		if !ok {
			continue
		}
		newMap := map[string]any{"type": key}
		for k, v := range subMap {
			if k == "type" {
				newMap["output_type"] = v
			} else {
				newMap[k] = v
			}
		}
		return newMap
	}
	return itemMap
}

// IsTypeConstant reports whether s looks like a test type name:
// UPPERCASE_WITH_UNDERSCORES or lowercase-with-hyphens.
func IsTypeConstant(s string) bool {
	if s == "" {
		return false
	}
	hasLetter := false
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
			hasLetter = true
		case c == '_', c == '-', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return hasLetter
}

// UnmarshalStruct populates a struct from a case map using the struct's
// yaml tags. Fields whose types implement FromValue(any) error convert
// themselves; everything else goes through reflection with the usual
// numeric overflow checks.
func UnmarshalStruct(target any, data map[string]any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be pointer to struct, got %T", target)
	}

	v = v.Elem()
	t := v.Type()

	// Several fields may share a yaml tag; the first one that accepts
	// the value wins.
	fieldMap := make(map[string][]int)
	for i := 0; i < t.NumField(); i++ {
		yamlTag := t.Field(i).Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}
		if idx := strings.Index(yamlTag, ","); idx != -1 {
			yamlTag = yamlTag[:idx]
		}
		fieldMap[yamlTag] = append(fieldMap[yamlTag], i)
	}

	for key, value := range data {
		fieldIndices, ok := fieldMap[key]
		if !ok {
			continue
		}

		var lastErr error
		for _, fieldIdx := range fieldIndices {
			field := v.Field(fieldIdx)
			if !field.CanSet() {
				continue
			}
			if err := setField(field, value); err != nil {
				lastErr = err
				continue
			}
			lastErr = nil
			break
		}
		if lastErr != nil {
			return fmt.Errorf("field %s: %w", key, lastErr)
		}
	}
	return nil
}

// fromValuer is implemented by converter types like IntOrStr and ByteInput.
type fromValuer interface {
	FromValue(any) error
}

func setField(field reflect.Value, value any) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	fieldType := field.Type()

	if field.CanAddr() {
		if converter, ok := field.Addr().Interface().(fromValuer); ok {
			return converter.FromValue(value)
		}
	}

	valueRefl := reflect.ValueOf(value)
	if valueRefl.Type().AssignableTo(fieldType) {
		field.Set(valueRefl)
		return nil
	}
	if valueRefl.CanConvert(fieldType) {
		field.Set(valueRefl.Convert(fieldType))
		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		if str, ok := value.(string); ok {
			field.SetString(str)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !valueRefl.CanInt() {
			return fmt.Errorf("field type %v expects an integer value, but got %T", fieldType, value)
		}
		i64 := valueRefl.Int()
		if field.OverflowInt(i64) {
			return fmt.Errorf("value %v overflows %v", value, fieldType)
		}
		field.SetInt(i64)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if valueRefl.CanInt() && valueRefl.Int() < 0 {
			return fmt.Errorf("field type %v expects an unsigned integer, but got negative value %v", fieldType, value)
		}
		if !valueRefl.CanUint() {
			return fmt.Errorf("field type %v expects an unsigned integer value, but got %T", fieldType, value)
		}
		u64 := valueRefl.Uint()
		if field.OverflowUint(u64) {
			return fmt.Errorf("value %v overflows %v", value, fieldType)
		}
		field.SetUint(u64)
		return nil
	case reflect.Bool:
		if valueRefl.Kind() != reflect.Bool {
			return fmt.Errorf("field type %v expects a boolean value, but got %T", fieldType, value)
		}
		field.SetBool(valueRefl.Bool())
		return nil
	case reflect.Float32, reflect.Float64:
		if !valueRefl.CanFloat() {
			return fmt.Errorf("field type %v expects a floating-point value, but got %T", fieldType, value)
		}
		f64 := valueRefl.Float()
		if field.OverflowFloat(f64) {
			return fmt.Errorf("value %f overflows %v", f64, fieldType)
		}
		field.SetFloat(f64)
		return nil
	case reflect.Slice:
		return setSliceField(field, value)
	case reflect.Map:
		return setMapField(field, value)
	case reflect.Struct:
		if m, ok := value.(map[string]any); ok {
			if !field.CanAddr() {
				return fmt.Errorf("cannot take address of field for nested struct")
			}
			return UnmarshalStruct(field.Addr().Interface(), m)
		}
	case reflect.Interface:
		field.Set(valueRefl)
		return nil
	case reflect.Ptr:
		if fieldType.Elem().Kind() == reflect.Struct {
			m, ok := value.(map[string]any)
			if !ok {
				return fmt.Errorf("expected map for struct pointer, got %T", value)
			}
			newStruct := reflect.New(fieldType.Elem())
			if err := UnmarshalStruct(newStruct.Interface(), m); err != nil {
				return err
			}
			field.Set(newStruct)
			return nil
		}
		ptr := reflect.New(fieldType.Elem())
		if err := setField(ptr.Elem(), value); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	return fmt.Errorf("cannot convert %T to %v", value, fieldType)
}

func setSliceField(field reflect.Value, value any) error {
	sliceVal, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected sequence for slice, got %T", value)
	}

	elemType := field.Type().Elem()
	newSlice := reflect.MakeSlice(field.Type(), len(sliceVal), len(sliceVal))

	for i, item := range sliceVal {
		elem := newSlice.Index(i)

		if elemType.Kind() == reflect.Struct {
			var m map[string]any
			// A bare string is shorthand for {type: string}.
			if strVal, ok := item.(string); ok {
				m = map[string]any{"type": strVal}
			} else {
				m, ok = item.(map[string]any)
				if !ok {
					return fmt.Errorf("slice element %d: expected map for struct, got %T", i, item)
				}
				m = NormalizeTypeAsKey(m)
			}
			if err := UnmarshalStruct(elem.Addr().Interface(), m); err != nil {
				return fmt.Errorf("slice element %d: %w", i, err)
			}
			continue
		}

		if err := setField(elem, item); err != nil {
			return fmt.Errorf("slice element %d: %w", i, err)
		}
	}

	field.Set(newSlice)
	return nil
}

func setMapField(field reflect.Value, value any) error {
	mapVal, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected mapping, got %T", value)
	}

	mapType := field.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("only string keys supported for maps")
	}

	newMap := reflect.MakeMap(mapType)
	valueType := mapType.Elem()

	for k, v := range mapVal {
		valueRefl := reflect.New(valueType).Elem()

		if valueType.Kind() == reflect.Struct {
			m, ok := v.(map[string]any)
			if !ok {
				return fmt.Errorf("map value for key %s: expected map for struct, got %T", k, v)
			}
			if err := UnmarshalStruct(valueRefl.Addr().Interface(), m); err != nil {
				return fmt.Errorf("map value for key %s: %w", k, err)
			}
		} else if err := setField(valueRefl, v); err != nil {
			return fmt.Errorf("map value for key %s: %w", k, err)
		}

		newMap.SetMapIndex(reflect.ValueOf(k), valueRefl)
	}

	field.Set(newMap)
	return nil
}
