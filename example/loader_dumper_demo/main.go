// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// A tour of the Loader and Dumper APIs: single documents, streams, the
// WithSingleDocument option, and dump-side options.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/yaml/pyyaml"
)

type deployment struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Zones   []string `yaml:"zones,omitempty"`
}

const oneDoc = `name: search
version: 4.1.0
zones:
  - eu-west
  - us-east
`

const threeDocs = `---
name: search
version: 4.1.0
---
name: index
version: 4.0.2
zones:
  - eu-west
---
name: crawl
version: 3.9.0
`

func main() {
	loadSingle()
	loadStream()
	loadFirstOnly()
	dumpSingle()
	dumpStream()
	dumpIndented()
}

func mustLoader(input string, opts ...yaml.Option) *yaml.Loader {
	loader, err := yaml.NewLoader(strings.NewReader(input), opts...)
	if err != nil {
		log.Fatal(err)
	}
	return loader
}

func mustDump(values []deployment, opts ...yaml.Option) string {
	var buf bytes.Buffer
	dumper, err := yaml.NewDumper(&buf, opts...)
	if err != nil {
		log.Fatal(err)
	}
	for i := range values {
		if err := dumper.Dump(&values[i]); err != nil {
			log.Fatal(err)
		}
	}
	if err := dumper.Close(); err != nil {
		log.Fatal(err)
	}
	return buf.String()
}

func loadSingle() {
	var d deployment
	if err := mustLoader(oneDoc).Load(&d); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("single document: %+v\n\n", d)
}

func loadStream() {
	loader := mustLoader(threeDocs)
	fmt.Println("document stream:")
	for n := 1; ; n++ {
		var d deployment
		if err := loader.Load(&d); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			log.Fatal(err)
		}
		fmt.Printf("  %d: %+v\n", n, d)
	}
	fmt.Println()
}

func loadFirstOnly() {
	loader := mustLoader(threeDocs, yaml.WithSingleDocument())
	var first deployment
	if err := loader.Load(&first); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("with WithSingleDocument: %+v\n", first)

	var second deployment
	if errors.Is(loader.Load(&second), io.EOF) {
		fmt.Println("  next Load returned io.EOF")
	}
	fmt.Println()
}

func dumpSingle() {
	out := mustDump([]deployment{
		{Name: "search", Version: "4.1.0", Zones: []string{"eu-west"}},
	})
	fmt.Printf("dumped single document:\n%s\n", out)
}

func dumpStream() {
	out := mustDump([]deployment{
		{Name: "search", Version: "4.1.0"},
		{Name: "index", Version: "4.0.2", Zones: []string{"eu-west"}},
		{Name: "crawl", Version: "3.9.0"},
	})
	fmt.Printf("dumped document stream:\n%s\n", out)
}

func dumpIndented() {
	out := mustDump([]deployment{
		{Name: "search", Version: "4.1.0", Zones: []string{"a", "b", "c"}},
	}, yaml.WithIndent(4))
	fmt.Printf("dumped with 4-space indent:\n%s", out)
}
