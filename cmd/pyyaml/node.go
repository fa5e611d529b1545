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

var nodeVerbose bool

var nodeCmd = &cobra.Command{
	Use:   "node [file]",
	Short: "Print the composed node structure",
	Long: `Load the input into node trees and print their structure as YAML.
The compact form unwraps document nodes and keys each scalar by its
style ("plain", "double", ...). With --verbose every node is rendered
with its kind, tag, and style spelled out.`,
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
		return printNodes(cmd.OutOrStdout(), in, nodeVerbose, opts)
	},
}

func init() {
	nodeCmd.Flags().BoolVarP(&nodeVerbose, "verbose", "v", false,
		"show kind, tag, and style for every node")
}

func printNodes(w io.Writer, r io.Reader, verbose bool, opts []yaml.Option) error {
	loader, err := yaml.NewLoader(r, opts...)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	var docs []any
	for {
		var node yaml.Node
		err := loader.Load(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to load node: %w", err)
		}
		if verbose {
			docs = append(docs, formatNode(node))
		} else {
			docs = append(docs, formatNodeCompact(node))
		}
	}

	var output any
	if len(docs) == 1 {
		output = docs[0]
	} else {
		output = docs
	}

	dumper, err := yaml.NewDumper(w)
	if err != nil {
		return fmt.Errorf("failed to create dumper: %w", err)
	}
	if err := dumper.Dump(output); err != nil {
		dumper.Close()
		return fmt.Errorf("failed to dump node info: %w", err)
	}
	return dumper.Close()
}

// MapItem is a single item in a MapSlice.
type MapItem struct {
	Key   string
	Value any
}

// MapSlice is a slice of MapItems that preserves order when marshaled to YAML.
type MapSlice []MapItem

// MarshalYAML builds a mapping node directly so key order survives dumping.
func (ms MapSlice) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
	}
	for _, item := range ms {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: item.Key,
		}
		valueBytes, err := yaml.Marshal(item.Value)
		if err != nil {
			return nil, err
		}
		var docNode yaml.Node
		if err := yaml.Unmarshal(valueBytes, &docNode); err != nil {
			return nil, err
		}
		valueNode := &docNode
		if docNode.Kind == yaml.DocumentNode && len(docNode.Content) > 0 {
			valueNode = docNode.Content[0]
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// NodeInfo is the verbose rendering of a node.
type NodeInfo struct {
	Kind    string      `yaml:"kind"`
	Style   string      `yaml:"style,omitempty"`
	Tag     string      `yaml:"tag,omitempty"`
	Anchor  string      `yaml:"anchor,omitempty"`
	Text    string      `yaml:"text,omitempty"`
	Content []*NodeInfo `yaml:"content,omitempty"`
}

func formatNode(n yaml.Node) *NodeInfo {
	info := &NodeInfo{
		Kind: formatNodeKind(n.Kind),
	}
	if n.Kind != yaml.DocumentNode {
		info.Style = formatNodeStyle(n.Style, true)
	}
	if n.Anchor != "" {
		info.Anchor = n.Anchor
	}
	info.Tag = n.Tag
	if n.Kind == yaml.ScalarNode || n.Kind == yaml.AliasNode {
		info.Text = n.Value
	} else if n.Content != nil {
		info.Content = make([]*NodeInfo, len(n.Content))
		for i, node := range n.Content {
			info.Content[i] = formatNode(*node)
		}
	}
	return info
}

func formatNodeKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "Document"
	case yaml.SequenceNode:
		return "Sequence"
	case yaml.MappingNode:
		return "Mapping"
	case yaml.ScalarNode:
		return "Scalar"
	case yaml.AliasNode:
		return "Alias"
	case yaml.StreamNode:
		return "Stream"
	default:
		return "Unknown"
	}
}

func formatNodeStyle(s yaml.Style, verbose bool) string {
	switch s &^ yaml.TaggedStyle {
	case yaml.DoubleQuotedStyle:
		return "Double"
	case yaml.SingleQuotedStyle:
		return "Single"
	case yaml.LiteralStyle:
		return "Literal"
	case yaml.FoldedStyle:
		return "Folded"
	case yaml.FlowStyle:
		return "Flow"
	default:
		if verbose {
			return "Plain"
		}
		return ""
	}
}

// formatNodeStyleName returns the lowercase style name used as the scalar
// key in the compact form. Style 0 is "plain".
func formatNodeStyleName(s yaml.Style) string {
	switch s &^ yaml.TaggedStyle {
	case yaml.DoubleQuotedStyle:
		return "double"
	case yaml.SingleQuotedStyle:
		return "single"
	case yaml.LiteralStyle:
		return "literal"
	case yaml.FoldedStyle:
		return "folded"
	case yaml.FlowStyle:
		return "flow"
	default:
		return "plain"
	}
}

// formatNodeTag hides the default tags that the resolver attaches to every
// node unless they were explicit in the input.
func formatNodeTag(tag string, style yaml.Style) string {
	switch tag {
	case "!!str", "!!map", "!!seq", "!!int", "!!float", "!!bool", "!!null":
		if style&yaml.TaggedStyle != 0 {
			return tag
		}
		return ""
	}
	return tag
}

// formatNodeCompact converts a node into the compact representation.
// Document nodes without properties return their content directly.
func formatNodeCompact(n yaml.Node) any {
	props := func() MapSlice {
		var result MapSlice
		if tag := formatNodeTag(n.Tag, n.Style); tag != "" {
			result = append(result, MapItem{Key: "tag", Value: tag})
		}
		if n.Anchor != "" {
			result = append(result, MapItem{Key: "anchor", Value: n.Anchor})
		}
		return result
	}

	switch n.Kind {
	case yaml.DocumentNode:
		result := props()
		if len(result) == 0 {
			if len(n.Content) > 0 {
				return formatNodeCompact(*n.Content[0])
			}
			return nil
		}
		if len(n.Content) > 0 {
			if contentMap, ok := formatNodeCompact(*n.Content[0]).(MapSlice); ok {
				result = append(result, contentMap...)
			}
		}
		return result

	case yaml.MappingNode:
		var content []any
		for _, node := range n.Content {
			content = append(content, formatNodeCompact(*node))
		}
		return append(props(), MapItem{Key: "mapping", Value: content})

	case yaml.SequenceNode:
		var content []any
		for _, node := range n.Content {
			content = append(content, formatNodeCompact(*node))
		}
		return append(props(), MapItem{Key: "sequence", Value: content})

	case yaml.ScalarNode:
		return append(props(), MapItem{Key: formatNodeStyleName(n.Style), Value: n.Value})

	case yaml.AliasNode:
		return MapSlice{{Key: "alias", Value: n.Value}}

	default:
		return nil
	}
}
