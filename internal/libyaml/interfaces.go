// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Interfaces a type can implement to take over its own YAML conversion.

package libyaml

import "reflect"

// Marshaler is implemented by types that want to provide their own value
// for marshaling into a YAML document.
type Marshaler interface {
	MarshalYAML() (any, error)
}

// Unmarshaler is implemented by types that want to populate themselves
// from the node being unmarshaled.
type Unmarshaler interface {
	UnmarshalYAML(value *Node) error
}

// obsoleteUnmarshaler receives a construction callback instead of the node
// itself. Kept for compatibility with pre-Node unmarshalers.
type obsoleteUnmarshaler interface {
	UnmarshalYAML(unmarshal func(any) error) error
}

// IsZeroer lets a type decide what counts as its zero value for the
// ,omitempty flag. time.Time is a notable implementation.
type IsZeroer interface {
	IsZero() bool
}

// FromYAMLNode is the preferred unmarshaling interface for new code: the
// receiver populates itself from the node in place.
type FromYAMLNode interface {
	FromYAMLNode(*Node) error
}

// ToYAMLNode is the preferred marshaling interface for new code: the value
// produces its node tree directly.
type ToYAMLNode interface {
	ToYAMLNode() (*Node, error)
}

// isZero reports whether v is its type's zero value for omitempty
// purposes, deferring to IsZeroer when implemented. A struct is zero when
// all of its exported fields are.
func isZero(v reflect.Value) bool {
	kind := v.Kind()
	if z, ok := v.Interface().(IsZeroer); ok {
		if (kind == reflect.Pointer || kind == reflect.Interface) && v.IsNil() {
			return true
		}
		return z.IsZero()
	}
	switch kind {
	case reflect.String:
		return len(v.String()) == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Struct:
		vt := v.Type()
		for i := v.NumField() - 1; i >= 0; i-- {
			if vt.Field(i).PkgPath != "" {
				continue // unexported
			}
			if !isZero(v.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}
