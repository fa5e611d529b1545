// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	yaml "github.com/yaml/pyyaml"
)

var fmtPreserve bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat YAML through the load/dump pipeline",
	Long: `Load the input and dump it back out with the configured options.
By default values are loaded into plain Go values, so styles from the
input are discarded and the dump options decide the presentation. With
--preserve the input is loaded into node trees instead and scalar
styles, tags, and anchors survive the round trip.`,
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
		return reformat(cmd.OutOrStdout(), in, fmtPreserve, opts)
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtPreserve, "preserve", "p", false,
		"preserve scalar styles, tags, and anchors")
}

func reformat(w io.Writer, r io.Reader, preserve bool, opts []yaml.Option) error {
	loader, err := yaml.NewLoader(r, opts...)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}
	dumper, err := yaml.NewDumper(w, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dumper: %w", err)
	}

	loadOne := func() (any, error) {
		if preserve {
			var node yaml.Node
			if err := loader.Load(&node); err != nil {
				return nil, err
			}
			return &node, nil
		}
		var value any
		if err := loader.Load(&value); err != nil {
			return nil, err
		}
		return value, nil
	}

	for {
		value, err := loadOne()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to load YAML: %w", err)
		}
		if err := dumper.Dump(value); err != nil {
			dumper.Close()
			return fmt.Errorf("failed to dump YAML: %w", err)
		}
	}
	return dumper.Close()
}
