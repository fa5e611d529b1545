// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Combines WithSingleDocument and WithKnownFields on one loader: strict
// field checking plus stopping after the first document.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/yaml/pyyaml"
)

type app struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Tags    []string `yaml:"tags,omitempty"`
}

func newStrictLoader(input string) *yaml.Loader {
	loader, err := yaml.NewLoader(
		strings.NewReader(input),
		yaml.WithSingleDocument(),
		yaml.WithKnownFields(),
	)
	if err != nil {
		log.Fatal(err)
	}
	return loader
}

func main() {
	// An unknown field in the first document fails the strict load.
	bad := newStrictLoader(`---
name: app1
version: 1.0.0
vesrion: oops
---
name: app2
version: 2.0.0
`)
	var rejected app
	if err := bad.Load(&rejected); err != nil {
		fmt.Printf("unknown field rejected: %v\n", err)
	} else {
		fmt.Println("expected an unknown-field error")
	}

	// A clean first document loads; the second is cut off by
	// WithSingleDocument.
	good := newStrictLoader(`---
name: app1
version: 1.0.0
tags:
  - stable
---
name: app2
version: 2.0.0
`)
	var first app
	if err := good.Load(&first); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("first document: %+v\n", first)

	var second app
	if err := good.Load(&second); errors.Is(err, io.EOF) {
		fmt.Println("second Load returned io.EOF")
	} else {
		fmt.Printf("unexpected result: %v\n", err)
	}
}
