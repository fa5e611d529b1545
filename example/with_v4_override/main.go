// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Options apply left to right, so an option after a preset overrides it
// and a preset after an option wins instead.
package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/yaml/pyyaml"
)

type site struct {
	Name   string            `yaml:"name"`
	Server map[string]string `yaml:"server"`
	Tags   []string          `yaml:"tags"`
}

func dumpWith(cfg *site, opts ...yaml.Option) string {
	var buf bytes.Buffer
	dumper, err := yaml.NewDumper(&buf, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if err := dumper.Dump(cfg); err != nil {
		log.Fatal(err)
	}
	if err := dumper.Close(); err != nil {
		log.Fatal(err)
	}
	return buf.String()
}

func main() {
	cfg := &site{
		Name:   "docs",
		Server: map[string]string{"host": "127.0.0.1", "port": "8080"},
		Tags:   []string{"web", "static"},
	}

	fmt.Println("V4 alone (2-space indent):")
	fmt.Print(dumpWith(cfg, yaml.V4))

	fmt.Println("\nV4 then WithIndent(3) (override wins):")
	fmt.Print(dumpWith(cfg, yaml.V4, yaml.WithIndent(3)))

	fmt.Println("\nWithIndent(5) then V4 (preset wins):")
	fmt.Print(dumpWith(cfg, yaml.WithIndent(5), yaml.V4))
}
