// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	yaml "github.com/yaml/pyyaml"
)

// TestCase represents a single test case from a test file. Each non-empty
// output field runs the matching subcommand with Text on stdin.
type TestCase struct {
	Name   string `yaml:"name"`
	Text   string `yaml:"text"`
	Tokens string `yaml:"tokens,omitempty"`
	Events string `yaml:"events,omitempty"`
	Node   string `yaml:"node,omitempty"`
	Fmt    string `yaml:"fmt,omitempty"`
	JSON   string `yaml:"json,omitempty"`
}

// TestSuite is a sequence of test cases.
type TestSuite []TestCase

func TestCLI(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.yaml")
	if err != nil {
		t.Fatalf("Failed to find test files: %v", err)
	}
	if len(testFiles) == 0 {
		t.Skip("No test files found in testdata/")
	}

	binaryPath := filepath.Join(t.TempDir(), "pyyaml")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build pyyaml: %v\n%s", err, output)
	}

	for _, testFile := range testFiles {
		t.Run(filepath.Base(testFile), func(t *testing.T) {
			runTestFile(t, testFile, binaryPath)
		})
	}
}

func runTestFile(t *testing.T, testFile, binaryPath string) {
	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read test file %s: %v", testFile, err)
	}

	var suite TestSuite
	if err := yaml.Load(data, &suite); err != nil {
		t.Fatalf("Failed to parse test file %s: %v", testFile, err)
	}

	for _, testCase := range suite {
		t.Run(testCase.Name, func(t *testing.T) {
			runTestCase(t, testCase, binaryPath)
		})
	}
}

func runTestCase(t *testing.T, tc TestCase, binaryPath string) {
	tests := []struct {
		subcommand string
		expected   string
	}{
		{"tokens", tc.Tokens},
		{"events", tc.Events},
		{"node", tc.Node},
		{"fmt", tc.Fmt},
		{"json", tc.JSON},
	}

	for _, test := range tests {
		if test.expected == "" {
			continue
		}

		t.Run(test.subcommand, func(t *testing.T) {
			cmd := exec.Command(binaryPath, test.subcommand)
			cmd.Stdin = strings.NewReader(tc.Text)

			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			if err := cmd.Run(); err != nil {
				t.Fatalf("Command failed: %v\nStderr: %s", err, stderr.String())
			}

			actual := normalizeOutput(stdout.String())
			expected := normalizeOutput(test.expected)

			if actual != expected {
				t.Errorf("Output mismatch for subcommand %s\nExpected:\n%s\n\nActual:\n%s",
					test.subcommand, expected, actual)
			}
		})
	}
}

// normalizeOutput trims whitespace and ensures consistent line endings.
func normalizeOutput(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, "\r\n", "\n")
}
