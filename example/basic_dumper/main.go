// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Dumps a struct as a YAML document to a writer.
package main

import (
	"log"
	"os"

	"github.com/yaml/pyyaml"
)

type backup struct {
	Target   string   `yaml:"target"`
	Schedule string   `yaml:"schedule"`
	Keep     int      `yaml:"keep"`
	Exclude  []string `yaml:"exclude,omitempty"`
}

func main() {
	dumper, err := yaml.NewDumper(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	job := backup{
		Target:   "/var/lib/data",
		Schedule: "0 3 * * *",
		Keep:     14,
		Exclude:  []string{"*.tmp"},
	}

	if err := dumper.Dump(&job); err != nil {
		log.Fatal(err)
	}
	if err := dumper.Close(); err != nil {
		log.Fatal(err)
	}
}
