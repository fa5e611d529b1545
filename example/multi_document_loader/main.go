// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Reads every document from a multi-document stream with repeated Load
// calls until io.EOF.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/yaml/pyyaml"
)

type migration struct {
	ID      int    `yaml:"id"`
	Table   string `yaml:"table"`
	Applied bool   `yaml:"applied"`
}

const stream = `---
id: 1
table: users
applied: true
---
id: 2
table: orders
applied: true
---
id: 3
table: invoices
applied: false
`

func main() {
	loader, err := yaml.NewLoader(strings.NewReader(stream))
	if err != nil {
		log.Fatal(err)
	}

	for {
		var m migration
		if err := loader.Load(&m); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			log.Fatal(err)
		}
		fmt.Printf("migration %d on %s (applied=%v)\n", m.ID, m.Table, m.Applied)
	}
}
