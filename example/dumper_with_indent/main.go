// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Dumps with a wider indent than the default two spaces.
package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/yaml/pyyaml"
)

func main() {
	var buf bytes.Buffer
	dumper, err := yaml.NewDumper(&buf, yaml.WithIndent(4))
	if err != nil {
		log.Fatal(err)
	}

	inventory := map[string]any{
		"warehouse": "north",
		"items": map[string]int{
			"bolts": 1200,
			"nuts":  900,
		},
	}

	if err := dumper.Dump(inventory); err != nil {
		log.Fatal(err)
	}
	if err := dumper.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("4-space indent:\n%s", buf.String())
}
