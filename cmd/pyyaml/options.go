// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	yaml "github.com/yaml/pyyaml"
)

// optionSpec defines metadata for an option accepted by -o/--option.
type optionSpec struct {
	typ     string // "preset", "bool", "int", "string", "multi"
	handler func(value string) ([]yaml.Option, error)
}

// optionRegistry maps option names (including short aliases) to their specs.
var optionRegistry = map[string]optionSpec{
	// Version presets
	"v2": {typ: "preset", handler: func(string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.V2}, nil
	}},
	"v3": {typ: "preset", handler: func(string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.V3}, nil
	}},
	"v4": {typ: "preset", handler: func(string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.V4}, nil
	}},

	// Formatting options
	"indent": {typ: "int", handler: func(value string) ([]yaml.Option, error) {
		var val int
		if _, err := fmt.Sscanf(value, "%d", &val); err != nil {
			return nil, fmt.Errorf("indent requires integer value (2-9)")
		}
		if val < 2 || val > 9 {
			return nil, fmt.Errorf("indent must be between 2 and 9")
		}
		return []yaml.Option{yaml.WithIndent(val)}, nil
	}},
	"compact-seq-indent": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithCompactSeqIndent(value == "true")}, nil
	}},
	"compact": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithCompactSeqIndent(value == "true")}, nil
	}},
	"line-width": {typ: "int", handler: func(value string) ([]yaml.Option, error) {
		var val int
		if _, err := fmt.Sscanf(value, "%d", &val); err != nil {
			return nil, fmt.Errorf("line-width requires integer value")
		}
		return []yaml.Option{yaml.WithLineWidth(val)}, nil
	}},
	"width": {typ: "int", handler: func(value string) ([]yaml.Option, error) {
		var val int
		if _, err := fmt.Sscanf(value, "%d", &val); err != nil {
			return nil, fmt.Errorf("width requires integer value")
		}
		return []yaml.Option{yaml.WithLineWidth(val)}, nil
	}},
	"unicode": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithUnicode(value == "true")}, nil
	}},
	"unique-keys": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithUniqueKeys(value == "true")}, nil
	}},
	"unique": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithUniqueKeys(value == "true")}, nil
	}},
	"canonical": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithCanonical(value == "true")}, nil
	}},
	"line-break": {typ: "string", handler: func(value string) ([]yaml.Option, error) {
		var lb yaml.LineBreak
		switch value {
		case "ln":
			lb = yaml.LineBreakLN
		case "cr":
			lb = yaml.LineBreakCR
		case "crln":
			lb = yaml.LineBreakCRLN
		default:
			return nil, fmt.Errorf("line-break must be ln, cr, or crln")
		}
		return []yaml.Option{yaml.WithLineBreak(lb)}, nil
	}},
	"explicit-start": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithExplicitStart(value == "true")}, nil
	}},
	"explicit-end": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithExplicitEnd(value == "true")}, nil
	}},
	"explicit": {typ: "multi", handler: func(value string) ([]yaml.Option, error) {
		val := value == "true"
		return []yaml.Option{yaml.WithExplicitStart(val), yaml.WithExplicitEnd(val)}, nil
	}},
	"flow-simple-coll": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithFlowSimpleCollections(value == "true")}, nil
	}},

	// Loading options
	"known-fields": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithKnownFields(value == "true")}, nil
	}},
	"single-document": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithSingleDocument(value == "true")}, nil
	}},
	"single": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithSingleDocument(value == "true")}, nil
	}},
	"all-documents": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithAllDocuments(value == "true")}, nil
	}},
	"all": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithAllDocuments(value == "true")}, nil
	}},
	"stream-nodes": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithStreamNodes(value == "true")}, nil
	}},
	"stream": {typ: "bool", handler: func(value string) ([]yaml.Option, error) {
		return []yaml.Option{yaml.WithStreamNodes(value == "true")}, nil
	}},
}

// parseOneOption parses a single option (name=value, name, no-name, or a
// v2/v3/v4 preset).
func parseOneOption(s string) ([]yaml.Option, error) {
	if s == "help" || s == "?" {
		printAvailableOptions()
		os.Exit(0)
	}

	if s == "v2" || s == "v3" || s == "v4" {
		return optionRegistry[s].handler("")
	}

	// "no-" prefix means boolean false
	if name, found := strings.CutPrefix(s, "no-"); found {
		spec, ok := optionRegistry[name]
		if !ok {
			return nil, fmt.Errorf("unknown option: %s", name)
		}
		if spec.typ != "bool" && spec.typ != "multi" {
			return nil, fmt.Errorf("option %s is not boolean, cannot use no- prefix", name)
		}
		return spec.handler("false")
	}

	if name, value, found := strings.Cut(s, "="); found {
		spec, ok := optionRegistry[name]
		if !ok {
			return nil, fmt.Errorf("unknown option: %s", name)
		}
		if spec.typ == "bool" || spec.typ == "multi" {
			if value != "true" && value != "false" {
				return nil, fmt.Errorf("option %s requires true or false value", name)
			}
		}
		return spec.handler(value)
	}

	// "name" alone means boolean true
	spec, ok := optionRegistry[s]
	if !ok {
		return nil, fmt.Errorf("unknown option: %s", s)
	}
	if spec.typ != "bool" && spec.typ != "multi" && spec.typ != "preset" {
		return nil, fmt.Errorf("option %s requires a value (use %s=value)", s, s)
	}
	return spec.handler("true")
}

// parseOptionFlags parses a comma-separated options string.
func parseOptionFlags(s string) ([]yaml.Option, error) {
	var opts []yaml.Option
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		opt, err := parseOneOption(trimmed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt...)
	}
	return opts, nil
}

// printAvailableOptions prints the list of available options for -o/--option.
func printAvailableOptions() {
	fmt.Print(`Available options for -o/--option:

Version presets:
  v2                    V2 defaults (indent:2, no compact-seq-indent)
  v3                    V3 defaults (indent:4, no compact-seq-indent)
  v4                    V4 defaults (indent:2, compact-seq-indent) [default]

Formatting options:
  indent=NUM            Indentation spaces (2-9)
  compact-seq-indent    '- ' counts as indentation (short: compact)
  line-width=NUM        Preferred line width, -1=unlimited (short: width)
  unicode               Allow non-ASCII in output
  canonical             Canonical YAML output format
  line-break=TYPE       Line ending: ln, cr, or crln
  explicit-start        Always emit '---' marker
  explicit-end          Always emit '...' marker
  explicit              Both explicit-start and explicit-end
  flow-simple-coll      Flow style for simple collections

Loading options:
  unique-keys           Duplicate key detection (short: unique)
  known-fields          Strict field checking
  single-document       Only process first document (short: single)
  all-documents         Multi-document mode (short: all)
  stream-nodes          Enable stream boundary nodes (short: stream)

Boolean options: use 'name' for true, 'no-name' for false
Multiple options: comma-separated or repeat -o flag

Examples:
  pyyaml fmt -o indent=4,canonical
  pyyaml fmt -o v3,width=120,explicit
  pyyaml fmt -o no-unicode,no-compact
`)
}

// buildOptions creates the yaml.Option slice from the config file and
// -o flags. The V4 preset is the base; the config file and then the -o
// flags override it in order.
func buildOptions() ([]yaml.Option, error) {
	opts := []yaml.Option{yaml.V4}

	if configFile != "" {
		configData, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		configOpts, err := yaml.OptsYAML(string(configData))
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		opts = append(opts, configOpts)
	}

	for _, optStr := range optionFlags {
		parsedOpts, err := parseOptionFlags(optStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parsedOpts...)
	}

	return opts, nil
}
