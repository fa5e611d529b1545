// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Uses WithSingleDocument so the loader stops after the first document of
// a multi-document stream.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/yaml/pyyaml"
)

const stream = `---
host: db1.internal
role: primary
---
host: db2.internal
role: replica
`

type endpoint struct {
	Host string `yaml:"host"`
	Role string `yaml:"role"`
}

func main() {
	loader, err := yaml.NewLoader(strings.NewReader(stream), yaml.WithSingleDocument())
	if err != nil {
		log.Fatal(err)
	}

	var first endpoint
	if err := loader.Load(&first); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("first document: %+v\n", first)

	// The remaining documents are not consumed.
	var rest endpoint
	switch err := loader.Load(&rest); {
	case errors.Is(err, io.EOF):
		fmt.Println("second Load returned io.EOF")
	default:
		fmt.Printf("unexpected result: %v\n", err)
	}
}
