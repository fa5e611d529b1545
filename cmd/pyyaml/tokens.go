// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaml/pyyaml/internal/libyaml"
)

var tokensVerbose bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the scanner token stream",
	Long: `Print the token stream produced by the scanner, one token per line.
With --verbose each line also carries the token's start and end position
as [line:column-line:column].`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()
		return printTokens(cmd.OutOrStdout(), in, tokensVerbose)
	},
}

func init() {
	tokensCmd.Flags().BoolVarP(&tokensVerbose, "verbose", "v", false,
		"include token positions")
}

func printTokens(w io.Writer, r io.Reader, verbose bool) error {
	parser := libyaml.NewParser()
	defer parser.Delete()
	parser.SetInputReader(r)

	for {
		var tok libyaml.Token
		if err := parser.Scan(&tok); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, formatToken(&tok, verbose)); err != nil {
			return err
		}
		if tok.Type == libyaml.STREAM_END_TOKEN {
			return nil
		}
	}
}

func formatToken(tok *libyaml.Token, verbose bool) string {
	var b strings.Builder
	b.WriteString(tok.Type.String())
	switch tok.Type {
	case libyaml.SCALAR_TOKEN:
		fmt.Fprintf(&b, " %s %q", strings.ToLower(tok.Style.String()), tok.Value)
	case libyaml.ANCHOR_TOKEN:
		fmt.Fprintf(&b, " &%s", tok.Value)
	case libyaml.ALIAS_TOKEN:
		fmt.Fprintf(&b, " *%s", tok.Value)
	case libyaml.TAG_TOKEN:
		fmt.Fprintf(&b, " %s%s", tok.Value, tok.GetSuffix())
	case libyaml.VERSION_DIRECTIVE_TOKEN:
		fmt.Fprintf(&b, " %d.%d", tok.GetMajor(), tok.GetMinor())
	case libyaml.TAG_DIRECTIVE_TOKEN:
		fmt.Fprintf(&b, " %s %s", tok.Value, tok.GetPrefix())
	}
	if verbose {
		fmt.Fprintf(&b, "  [%d:%d-%d:%d]",
			tok.StartMark.Line+1, tok.StartMark.Column+1,
			tok.EndMark.Line+1, tok.EndMark.Column+1)
	}
	return b.String()
}
