// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Dumps the same document at several indent widths. An optional argument
// picks a single width (2-9) instead of the comparison.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/yaml/pyyaml"
)

type manifest struct {
	Name     string            `yaml:"name"`
	Version  string            `yaml:"version"`
	Runtime  runtime           `yaml:"runtime"`
	Mounts   []string          `yaml:"mounts,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

type runtime struct {
	Image  string `yaml:"image"`
	Memory string `yaml:"memory"`
	Debug  bool   `yaml:"debug"`
}

func render(m *manifest, opts ...yaml.Option) string {
	var buf bytes.Buffer
	dumper, err := yaml.NewDumper(&buf, opts...)
	if err != nil {
		fatal(err)
	}
	if err := dumper.Dump(m); err != nil {
		fatal(err)
	}
	if err := dumper.Close(); err != nil {
		fatal(err)
	}
	return buf.String()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func main() {
	m := &manifest{
		Name:    "worker",
		Version: "2.3.1",
		Runtime: runtime{Image: "worker:2.3.1", Memory: "512Mi", Debug: false},
		Mounts:  []string{"/data", "/cache"},
		Metadata: map[string]string{
			"owner": "batch-team",
			"tier":  "background",
		},
	}

	if len(os.Args) > 1 {
		indent, err := strconv.Atoi(os.Args[1])
		if err != nil || indent < 2 || indent > 9 {
			fmt.Fprintf(os.Stderr, "Error: indent must be a number between 2 and 9, got %q\n", os.Args[1])
			os.Exit(1)
		}
		fmt.Printf("%d-space indent:\n%s", indent, render(m, yaml.WithIndent(indent)))
		return
	}

	for _, indent := range []int{2, 4, 8} {
		fmt.Printf("--- %d spaces ---\n%s\n", indent, render(m, yaml.WithIndent(indent)))
	}
	fmt.Printf("--- default ---\n%s", render(m))
}
