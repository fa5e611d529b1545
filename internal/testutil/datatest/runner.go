// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import "testing"

// TestHandler runs one test case given as a raw map.
type TestHandler func(t *testing.T, tc map[string]any)

// RunTestCases loads cases with loadFunc and runs each as a subtest,
// dispatched to the handler registered for its "type" field. A case with
// no name runs as "unnamed"; a case with no type or an unregistered type
// fails the whole test.
func RunTestCases(t *testing.T, loadFunc func() ([]map[string]any, error), handlers map[string]TestHandler) {
	t.Helper()

	cases, err := loadFunc()
	if err != nil {
		t.Fatalf("Failed to load test cases: %v", err)
	}

	for _, tc := range cases {
		name, _ := tc["name"].(string)
		if name == "" {
			name = "unnamed"
		}

		testType, _ := tc["type"].(string)
		if testType == "" {
			t.Fatalf("Test case %q missing 'type' field", name)
		}

		t.Run(name, func(t *testing.T) {
			handler, ok := handlers[testType]
			if !ok {
				t.Fatalf("Unknown test type: %s", testType)
			}
			handler(t, tc)
		})
	}
}

// GetString reads an optional string field from a case map.
func GetString(tc map[string]any, key string) (string, bool) {
	val, ok := tc[key]
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// RequireString reads a string field, failing the test when it is missing
// or has the wrong type.
func RequireString(t *testing.T, tc map[string]any, key string) string {
	t.Helper()
	val, ok := GetString(tc, key)
	if !ok {
		t.Fatalf("Required field %q missing or not a string", key)
	}
	return val
}
