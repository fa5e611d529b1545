// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Loads a document into a node tree under the default v4 preset, then dumps
// it back under v4 and v3 to show the preset governing the output shape.
package main

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/yaml/pyyaml"
)

const document = `name: scheduler
version: 2.3.1
server:
  host: 0.0.0.0
  port: 9090
  debug: false
tags:
  - batch
  - cron
metadata:
  owner: infra-team
  env: staging
`

func loadNode() *yaml.Node {
	loader, err := yaml.NewLoader(strings.NewReader(document))
	if err != nil {
		log.Fatal(err)
	}

	var node yaml.Node
	if err := loader.Load(&node); err != nil {
		log.Fatal(err)
	}
	return &node
}

func dumpNode(node *yaml.Node, opts ...yaml.Option) string {
	var buf bytes.Buffer
	dumper, err := yaml.NewDumper(&buf, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if err := dumper.Dump(node); err != nil {
		log.Fatal(err)
	}
	if err := dumper.Close(); err != nil {
		log.Fatal(err)
	}
	return buf.String()
}

func main() {
	node := loadNode()

	doc := node.Content[0]
	fmt.Printf("loaded mapping: %d keys, first key %q at line %d\n\n",
		len(doc.Content)/2, doc.Content[0].Value, doc.Content[0].Line)

	fmt.Printf("--- default output (v4: 2-space indent, compact sequences) ---\n%s\n", dumpNode(node))
	fmt.Printf("--- yaml.V3 output (4-space indent, non-compact sequences) ---\n%s", dumpNode(node, yaml.V3))
}
