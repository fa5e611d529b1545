// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Renders the same value into node trees under different option sets and
// prints each rendering.
package main

import (
	"fmt"
	"log"

	"github.com/yaml/pyyaml"
)

type proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	TLS  bool   `yaml:"tls"`
}

func main() {
	cfg := proxy{Host: "gateway.local", Port: 8443, TLS: true}

	cases := []struct {
		label string
		opts  []yaml.Option
	}{
		{"defaults", nil},
		{"4-space indent", []yaml.Option{yaml.WithIndent(4)}},
		{"v3 preset", []yaml.Option{yaml.V3}},
		{"explicit start marker", []yaml.Option{yaml.WithIndent(2), yaml.WithExplicitStart()}},
	}

	for _, c := range cases {
		var node yaml.Node
		if err := node.Dump(&cfg, c.opts...); err != nil {
			log.Fatal(err)
		}
		rendered, err := yaml.Dump(&node)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s:\n%s\n", c.label, rendered)
	}
}
