// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Loads a document into a yaml.Node tree, walks it with positions intact,
// edits the tree, and dumps the result.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/yaml/pyyaml"
)

const input = `service: billing
owner: payments-team
limits:
  cpu: 2
  memory: 512Mi
regions:
  - us-east-1
  - eu-central-1
`

func describe(key, value *yaml.Node) {
	fmt.Printf("%q (line %d, column %d):\n", key.Value, key.Line, key.Column)

	switch value.Kind {
	case yaml.ScalarNode:
		fmt.Printf("  scalar %s %q\n", value.Tag, value.Value)
	case yaml.MappingNode:
		for i := 0; i < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			fmt.Printf("  %s: %s (%s)\n", k.Value, v.Value, v.Tag)
		}
	case yaml.SequenceNode:
		for i, item := range value.Content {
			fmt.Printf("  [%d] %s\n", i, item.Value)
		}
	}
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func main() {
	loader, err := yaml.NewLoader(strings.NewReader(input))
	if err != nil {
		log.Fatal(err)
	}

	var node yaml.Node
	if err := loader.Load(&node); err != nil {
		log.Fatal(err)
	}

	doc := node.Content[0]
	fmt.Printf("document mapping with %d keys:\n\n", len(doc.Content)/2)
	for i := 0; i < len(doc.Content); i += 2 {
		describe(doc.Content[i], doc.Content[i+1])
	}

	// The tree is plain data: appending a key/value pair of scalar nodes
	// adds a field to the mapping.
	doc.Content = append(doc.Content, scalar("tier"), scalar("gold"))

	out, err := yaml.Dump(&node)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nafter adding 'tier':\n%s", out)
}
