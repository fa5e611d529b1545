// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"fmt"
	"io"
	"strings"
)

// LoadYAML parses YAML data with the native Parser into generic Go values:
// map[string]any for mappings, []any for sequences, and scalars resolved by
// coerceScalar (quoted scalars and mapping keys stay strings). It exists so
// the data-driven test harness can read its case files without going through
// the full load pipeline it is testing.
func LoadYAML(data []byte) (any, error) {
	parser := NewParser()
	parser.SetInputString(data)
	defer parser.Delete()

	type frame struct {
		container any    // map[string]any or []any
		key       string // pending mapping key
	}

	var stack []frame
	var root any

	// attach stores a completed value in the innermost open container, or
	// makes it the root when none is open.
	attach := func(v any) {
		if len(stack) == 0 {
			root = v
			return
		}
		top := &stack[len(stack)-1]
		switch c := top.container.(type) {
		case map[string]any:
			c[top.key] = v
			top.key = ""
		case []any:
			top.container = append(c, v)
		}
	}

	for {
		var event Event
		if err := parser.Parse(&event); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("parse error: %w", err)
		}

		switch event.Type {
		case STREAM_END_EVENT:
			return root, nil

		case MAPPING_START_EVENT:
			stack = append(stack, frame{container: make(map[string]any)})

		case SEQUENCE_START_EVENT:
			stack = append(stack, frame{container: make([]any, 0)})

		case MAPPING_END_EVENT, SEQUENCE_END_EVENT:
			if len(stack) == 0 {
				break
			}
			done := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			attach(done.container)

		case SCALAR_EVENT:
			value := string(event.Value)
			plain := event.ScalarStyle() == PLAIN_SCALAR_STYLE

			// Mapping keys stay strings.
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if _, ok := top.container.(map[string]any); ok && top.key == "" {
					top.key = value
					continue
				}
			}
			if plain {
				attach(coerceScalar(value))
			} else {
				attach(value)
			}

		case STREAM_START_EVENT, DOCUMENT_START_EVENT, DOCUMENT_END_EVENT:
			// structural markers

		case ALIAS_EVENT:
			// aliases do not occur in case files
		}
	}

	return root, nil
}

// coerceScalar resolves a plain scalar to bool, nil, int (decimal or 0x hex),
// float, or falls back to string.
func coerceScalar(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}

	var intVal int
	if _, err := fmt.Sscanf(strings.ToLower(value), "0x%x", &intVal); err == nil {
		return intVal
	}

	// Floats before ints: %d would read "1.5" as 1.
	if strings.Contains(value, ".") {
		var floatVal float64
		if _, err := fmt.Sscanf(value, "%f", &floatVal); err == nil {
			return floatVal
		}
	}

	if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
		return intVal
	}

	return value
}
