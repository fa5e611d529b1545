// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// A custom unmarshaler that enforces known fields through Node.Load, so
// misspelled keys are reported instead of silently dropped.
package main

import (
	"fmt"
	"log"

	"github.com/yaml/pyyaml"
)

type listener struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (l *listener) UnmarshalYAML(node *yaml.Node) error {
	// The plain alias avoids recursing into this method.
	type plain listener
	return node.Load((*plain)(l), yaml.WithKnownFields())
}

func main() {
	var ok listener
	if err := yaml.Load([]byte("name: api\nport: 8080\n"), &ok); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("loaded: %+v\n", ok)

	// "prot" is a typo for "port"; strict loading rejects it.
	var bad listener
	err := yaml.Load([]byte("name: api\nprot: 8080\n"), &bad)
	if err == nil {
		log.Fatal("expected an unknown-field error")
	}
	fmt.Printf("rejected: %v\n", err)
}
