// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Shows the difference between a custom unmarshaler that calls Node.Load
// without options (unknown keys slide through) and one that passes
// WithKnownFields (unknown keys are rejected).
package main

import (
	"fmt"

	"github.com/yaml/pyyaml"
)

type queue struct {
	Name  string `yaml:"name"`
	Depth int    `yaml:"depth"`
}

type lenientQueue struct {
	queue
}

func (q *lenientQueue) UnmarshalYAML(node *yaml.Node) error {
	type plain lenientQueue
	return node.Load((*plain)(q))
}

type strictQueue struct {
	queue
}

func (q *strictQueue) UnmarshalYAML(node *yaml.Node) error {
	type plain strictQueue
	return node.Load((*plain)(q), yaml.WithKnownFields())
}

const input = `
name: jobs
depth: 100
dpeth: 200
`

func main() {
	var lenient lenientQueue
	if err := yaml.Load([]byte(input), &lenient); err != nil {
		fmt.Printf("lenient: unexpected error: %v\n", err)
	} else {
		fmt.Printf("lenient: misspelled key ignored, got %+v\n", lenient.queue)
	}

	var strict strictQueue
	if err := yaml.Load([]byte(input), &strict); err != nil {
		fmt.Printf("strict: rejected as expected: %v\n", err)
	} else {
		fmt.Println("strict: expected an unknown-field error")
	}
}
