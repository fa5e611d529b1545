// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	yaml "github.com/yaml/pyyaml"
	"github.com/yaml/pyyaml/internal/libyaml"
)

var eventsVerbose bool

var eventsCmd = &cobra.Command{
	Use:   "events [file]",
	Short: "Print the parser event stream",
	Long: `Print the event stream produced by the parser in yaml-test-suite
notation (+STR, +DOC, +MAP, =VAL, ...). With --verbose each line also
carries the event's start and end position.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		input, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if !eventsVerbose {
			events, err := yaml.ParserGetEvents(input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), events)
			return err
		}
		return printEventsVerbose(cmd.OutOrStdout(), input)
	},
}

func init() {
	eventsCmd.Flags().BoolVarP(&eventsVerbose, "verbose", "v", false,
		"include event positions")
}

func printEventsVerbose(w io.Writer, input []byte) error {
	parser := libyaml.NewParser()
	defer parser.Delete()
	parser.SetInputString(input)

	for {
		var ev libyaml.Event
		if err := parser.Parse(&ev); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, formatEventLine(&ev)); err != nil {
			return err
		}
		if ev.Type == libyaml.STREAM_END_EVENT {
			return nil
		}
	}
}

// formatEventLine renders one event in yaml-test-suite notation with the
// event's marks appended.
func formatEventLine(e *libyaml.Event) string {
	var b strings.Builder
	switch e.Type {
	case libyaml.STREAM_START_EVENT:
		b.WriteString("+STR")
	case libyaml.STREAM_END_EVENT:
		b.WriteString("-STR")
	case libyaml.DOCUMENT_START_EVENT:
		b.WriteString("+DOC")
		if !e.Implicit {
			b.WriteString(" ---")
		}
	case libyaml.DOCUMENT_END_EVENT:
		b.WriteString("-DOC")
		if !e.Implicit {
			b.WriteString(" ...")
		}
	case libyaml.ALIAS_EVENT:
		fmt.Fprintf(&b, "=ALI *%s", e.Anchor)
	case libyaml.SCALAR_EVENT:
		b.WriteString("=VAL")
		writeEventProps(&b, e.Anchor, e.Tag)
		switch e.ScalarStyle() {
		case libyaml.LITERAL_SCALAR_STYLE:
			b.WriteString(" |")
		case libyaml.FOLDED_SCALAR_STYLE:
			b.WriteString(" >")
		case libyaml.SINGLE_QUOTED_SCALAR_STYLE:
			b.WriteString(" '")
		case libyaml.DOUBLE_QUOTED_SCALAR_STYLE:
			b.WriteString(` "`)
		default:
			b.WriteString(" :")
		}
		b.WriteString(escapeEventValue(string(e.Value)))
	case libyaml.SEQUENCE_START_EVENT:
		b.WriteString("+SEQ")
		writeEventProps(&b, e.Anchor, e.Tag)
		if e.SequenceStyle() == libyaml.FLOW_SEQUENCE_STYLE {
			b.WriteString(" []")
		}
	case libyaml.SEQUENCE_END_EVENT:
		b.WriteString("-SEQ")
	case libyaml.MAPPING_START_EVENT:
		b.WriteString("+MAP")
		writeEventProps(&b, e.Anchor, e.Tag)
		if e.MappingStyle() == libyaml.FLOW_MAPPING_STYLE {
			b.WriteString(" {}")
		}
	case libyaml.MAPPING_END_EVENT:
		b.WriteString("-MAP")
	}
	fmt.Fprintf(&b, "  [%d:%d-%d:%d]",
		e.StartMark.Line+1, e.StartMark.Column+1,
		e.EndMark.Line+1, e.EndMark.Column+1)
	return b.String()
}

func writeEventProps(b *strings.Builder, anchor, tag []byte) {
	if len(anchor) > 0 {
		fmt.Fprintf(b, " &%s", anchor)
	}
	if len(tag) > 0 {
		fmt.Fprintf(b, " <%s>", tag)
	}
}

func escapeEventValue(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		"\n", `\n`,
		"\t", `\t`,
	).Replace(s)
}
