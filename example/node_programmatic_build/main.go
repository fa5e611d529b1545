// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Builds a node tree from a Go value with Node.Dump, renders it, and
// loads it back.
package main

import (
	"fmt"
	"log"

	"github.com/yaml/pyyaml"
)

func main() {
	stages := map[string]any{
		"build": map[string]any{
			"image": "golang:1.24",
			"cache": true,
		},
		"deploy": map[string]any{
			"image": "alpine:3.20",
			"cache": false,
		},
	}

	var node yaml.Node
	err := node.Dump(stages,
		yaml.WithIndent(2),
		yaml.WithCompactSeqIndent(),
		yaml.WithExplicitStart(),
	)
	if err != nil {
		log.Fatal(err)
	}

	rendered, err := yaml.Dump(&node)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("rendered:\n%s\n", rendered)

	var back map[string]any
	if err := node.Load(&back); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("loaded back: %+v\n", back)
}
