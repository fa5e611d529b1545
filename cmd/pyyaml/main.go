// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Command pyyaml inspects how the YAML engine handles input at each stage
// of the pipeline: scanner tokens, parser events, composed nodes, and the
// final dump or JSON conversion. It is a tool for testing and debugging
// the library.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is the current version of the pyyaml CLI tool.
const version = "0.9.0"

var (
	optionFlags []string
	configFile  string
)

var rootCmd = &cobra.Command{
	Use:     "pyyaml",
	Short:   "Inspect and convert YAML documents",
	Version: version,
	Long: `pyyaml shows how the github.com/yaml/pyyaml library handles YAML
internally and externally. It reads YAML from a file argument or stdin and
writes results to stdout.

Each subcommand exposes one pipeline stage:

  tokens   scanner token stream
  events   parser event stream (yaml-test-suite notation)
  node     composed node structure
  fmt      reformat through the load/dump pipeline
  json     convert to JSON

Load and dump behavior is controlled with -o/--option flags or a YAML
config file (-C). Use '-o help' to list the available options.`,
	SilenceUsage: true,
}

func init() {
	// Accept underscore spellings of flag names (--line_width) alongside
	// the canonical hyphenated forms.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	rootCmd.PersistentFlags().StringArrayVarP(&optionFlags, "option", "o", nil,
		"set option (name=value, name, no-name); 'help' lists options")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "C", "",
		"load options from a YAML config file")
	rootCmd.AddCommand(tokensCmd, eventsCmd, nodeCmd, fmtCmd, jsonCmd)
}

// openInput returns the input stream for a command: the named file, or
// stdin when no argument (or "-") is given.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
