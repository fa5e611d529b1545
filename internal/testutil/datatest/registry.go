// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"fmt"
	"reflect"
)

// ConstantRegistry resolves symbolic constant names in test data to their
// integer values, so YAML files can say SCALAR_EVENT instead of a number.
type ConstantRegistry struct {
	constants map[string]int
}

func NewConstantRegistry() *ConstantRegistry {
	return &ConstantRegistry{constants: make(map[string]int)}
}

// Register binds a constant name to its value.
func (r *ConstantRegistry) Register(name string, value int) {
	r.constants[name] = value
}

// Resolve looks up a constant by name.
func (r *ConstantRegistry) Resolve(name string) (int, bool) {
	val, ok := r.constants[name]
	return val, ok
}

// TypeRegistry lets YAML test data name the Go type a case should
// unmarshal into. Types are registered either from an exemplar value or
// from a factory for parameterized types like maps and slices.
type TypeRegistry struct {
	types     map[string]reflect.Type
	factories map[string]func() any
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:     make(map[string]reflect.Type),
		factories: make(map[string]func() any),
	}
}

// Register binds a type name to the type of the given exemplar value.
func (r *TypeRegistry) Register(name string, exemplar any) {
	r.types[name] = reflect.TypeOf(exemplar)
}

// RegisterFactory binds a type name to a constructor. The factory result
// also records the type, so NewPointerInstance works for factory types.
func (r *TypeRegistry) RegisterFactory(name string, factory func() any) {
	r.factories[name] = factory
	if instance := factory(); instance != nil {
		r.types[name] = reflect.TypeOf(instance)
	}
}

// NewPointerInstance returns a pointer to a fresh instance of the named
// type, suitable as an unmarshal target.
func (r *TypeRegistry) NewPointerInstance(name string) (any, error) {
	if factory, ok := r.factories[name]; ok {
		instance := factory()
		ptr := reflect.New(reflect.TypeOf(instance))
		ptr.Elem().Set(reflect.ValueOf(instance))
		return ptr.Interface(), nil
	}

	typ, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("type %q not registered", name)
	}
	return reflect.New(typ).Interface(), nil
}

// ValueRegistry substitutes named constants of any type into test data,
// for values YAML cannot express directly ("NaN", "-0", "MaxInt64").
type ValueRegistry struct {
	values map[string]any
}

func NewValueRegistry() *ValueRegistry {
	return &ValueRegistry{values: make(map[string]any)}
}

// Register binds a name to a replacement value.
func (r *ValueRegistry) Register(name string, value any) {
	r.values[name] = value
}

// Resolve walks a decoded test value and replaces any string that names a
// registered constant. Maps and slices are resolved recursively; map keys
// are resolved as well.
func (r *ValueRegistry) Resolve(value any) any {
	switch v := value.(type) {
	case string:
		if constVal, ok := r.values[v]; ok {
			return constVal
		}
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, item := range v {
			result[k] = r.Resolve(item)
		}
		return result
	case map[any]any:
		result := make(map[any]any, len(v))
		for k, item := range v {
			result[r.Resolve(k)] = r.Resolve(item)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = r.Resolve(item)
		}
		return result
	}
	return value
}
