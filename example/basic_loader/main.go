// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Loads one YAML document from a reader into a struct.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/yaml/pyyaml"
)

type service struct {
	Name     string   `yaml:"name"`
	Replicas int      `yaml:"replicas"`
	Ports    []int    `yaml:"ports,omitempty"`
	Labels   []string `yaml:"labels,omitempty"`
}

const document = `name: frontend
replicas: 3
ports:
  - 80
  - 443
labels:
  - edge
`

func main() {
	loader, err := yaml.NewLoader(strings.NewReader(document))
	if err != nil {
		log.Fatal(err)
	}

	var svc service
	if err := loader.Load(&svc); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("name=%s replicas=%d ports=%v labels=%v\n",
		svc.Name, svc.Replicas, svc.Ports, svc.Labels)
}
