// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Renders one value under each version preset so the indentation and
// sequence-style differences are visible side by side.
package main

import (
	"fmt"
	"log"

	"github.com/yaml/pyyaml"
)

type pipeline struct {
	Name   string   `yaml:"name"`
	Stages []string `yaml:"stages"`
}

func render(label string, opts ...yaml.Option) {
	p := pipeline{
		Name:   "ingest",
		Stages: []string{"fetch", "validate", "store"},
	}

	out, err := yaml.Dump(&p, opts...)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("=== %s ===\n%s", label, out)
}

func main() {
	render("yaml.V2: 2-space indent, non-compact sequences", yaml.V2)
	render("yaml.V3: 4-space indent, non-compact sequences", yaml.V3)
	render("yaml.V4: 2-space indent, compact sequences", yaml.V4)
	render("yaml.V4 overridden by WithIndent(3)", yaml.V4, yaml.WithIndent(3))

	fmt.Println("\nPresets are plain option lists; later options win, so any")
	fmt.Println("preset field can be overridden by appending a With* option.")
}
