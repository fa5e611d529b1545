// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	yaml "github.com/yaml/pyyaml"
)

var jsonPretty bool

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Convert YAML to JSON",
	Long: `Load the input and write each document as a line of JSON. Mappings
with non-string keys cannot be represented in JSON and fail the
conversion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		opts, err := buildOptions()
		if err != nil {
			return err
		}
		return convertJSON(cmd.OutOrStdout(), in, jsonPretty, opts)
	},
}

func init() {
	jsonCmd.Flags().BoolVarP(&jsonPretty, "pretty", "p", false,
		"indent the JSON output")
}

func convertJSON(w io.Writer, r io.Reader, pretty bool, opts []yaml.Option) error {
	loader, err := yaml.NewLoader(r, opts...)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	for {
		var data any
		err := loader.Load(&data)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to load YAML: %w", err)
		}
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	}
	return nil
}
