// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for the Serializer stage

package libyaml

import (
	"bytes"
	"testing"

	"github.com/yaml/pyyaml/internal/testutil/assert"
)

// buildNodeFromSpec recursively builds a Node from a NodeSpec
func buildNodeFromSpec(spec map[string]any) *Node {
	node := &Node{}

	// Set kind
	if kindStr, ok := spec["kind"].(string); ok {
		switch kindStr {
		case "Document":
			node.Kind = DocumentNode
		case "Scalar":
			node.Kind = ScalarNode
		case "Sequence":
			node.Kind = SequenceNode
		case "Mapping":
			node.Kind = MappingNode
		case "Alias":
			node.Kind = AliasNode
		}
	}

	// Set value
	if value, ok := spec["value"].(string); ok {
		node.Value = value
	}

	// Set tag
	if tag, ok := spec["tag"].(string); ok {
		node.Tag = tag
	}

	// Set anchor
	if anchor, ok := spec["anchor"].(string); ok {
		node.Anchor = anchor
	}

	// Set style
	if styleStr, ok := spec["style"].(string); ok {
		switch styleStr {
		case "Single":
			node.Style = SingleQuotedStyle
		case "Double":
			node.Style = DoubleQuotedStyle
		case "Literal":
			node.Style = LiteralStyle
		case "Folded":
			node.Style = FoldedStyle
		case "Flow":
			node.Style = FlowStyle
		}
	}

	// Set content (recursive)
	if contentData, ok := spec["content"].([]any); ok {
		for _, item := range contentData {
			if itemMap, ok := item.(map[string]any); ok {
				child := buildNodeFromSpec(itemMap)
				node.Content = append(node.Content, child)
			}
		}
	}

	return node
}

// buildDocFromCase wraps the node specs of a test case in a DocumentNode.
func buildDocFromCase(t *testing.T, tc TestCase) *Node {
	t.Helper()

	nodeData, ok := tc.Node.Content.([]any)
	if !ok || len(nodeData) == 0 {
		t.Fatal("expected content in node spec")
	}

	doc := &Node{Kind: DocumentNode}
	for _, item := range nodeData {
		if itemMap, ok := item.(map[string]any); ok {
			doc.Content = append(doc.Content, buildNodeFromSpec(itemMap))
		}
	}
	return doc
}

// serializeStream runs one open-serialize-close cycle capturing panics
// raised through the Fail funnel.
func serializeStream(f func()) (err error) {
	defer handleErr(&err)
	f()
	return nil
}

func TestSerializer(t *testing.T) {
	serialize := func(t *testing.T, tc TestCase) {
		t.Helper()

		doc := buildDocFromCase(t, tc)

		opts := DefaultOptions
		if tc.Indent > 0 {
			opts.Indent = tc.Indent
		}

		var buf bytes.Buffer
		s := NewSerializer(&buf, opts)
		s.Open()
		s.Serialize(doc)
		s.Close()

		assert.Equal(t, tc.Want.(string), buf.String())
	}

	RunTestCases(t, "serializer.yaml", map[string]TestHandler{
		"serialize-scalar":     serialize,
		"serialize-collection": serialize,
		"serialize-style":      serialize,
	})
}

func TestSerializerLifecycle(t *testing.T) {
	scalar := &Node{Kind: ScalarNode, Tag: "!!str", Value: "x"}

	var buf bytes.Buffer
	s := NewSerializer(&buf, DefaultOptions)

	err := serializeStream(func() { s.Serialize(scalar) })
	assert.ErrorMatchesf(t, "serializer is not opened", err, "serialize before open: %v", err)

	err = serializeStream(func() { s.Close() })
	assert.ErrorMatchesf(t, "serializer is not opened", err, "close before open: %v", err)

	s.Open()
	err = serializeStream(func() { s.Open() })
	assert.ErrorMatchesf(t, "serializer is already opened", err, "second open: %v", err)

	s.Serialize(scalar)
	s.Close()
	// A second close has no effect.
	s.Close()

	err = serializeStream(func() { s.Serialize(scalar) })
	assert.ErrorMatchesf(t, "serializer is closed", err, "serialize after close: %v", err)

	err = serializeStream(func() { s.Open() })
	assert.ErrorMatchesf(t, "serializer is closed", err, "open after close: %v", err)

	assert.Equal(t, "x\n", buf.String())
}

func TestSerializerSharedNode(t *testing.T) {
	leaf := &Node{Kind: ScalarNode, Tag: "!!int", Value: "1"}
	seq := &Node{Kind: SequenceNode, Tag: "!!seq", Content: []*Node{leaf, leaf}}

	var buf bytes.Buffer
	s := NewSerializer(&buf, DefaultOptions)
	s.Open()
	s.Serialize(seq)
	s.Close()

	// The shared leaf serializes once with a generated anchor and
	// aliases after.
	assert.Equal(t, "- &id001 1\n- *id001\n", buf.String())
}

func TestSerializerCycle(t *testing.T) {
	seq := &Node{Kind: SequenceNode, Tag: "!!seq"}
	seq.Content = []*Node{{Kind: AliasNode, Value: "A", Alias: seq}}

	var buf bytes.Buffer
	s := NewSerializer(&buf, DefaultOptions)
	s.Open()
	s.Serialize(seq)
	s.Close()

	assert.Equal(t, "&id001\n- *id001\n", buf.String())
}

func TestSerializerKeepsNodeAnchor(t *testing.T) {
	leaf := &Node{Kind: ScalarNode, Tag: "!!str", Value: "x", Anchor: "base"}
	seq := &Node{Kind: SequenceNode, Tag: "!!seq", Content: []*Node{
		leaf,
		{Kind: AliasNode, Value: "base", Alias: leaf},
	}}

	var buf bytes.Buffer
	s := NewSerializer(&buf, DefaultOptions)
	s.Open()
	s.Serialize(seq)
	s.Close()

	assert.Equal(t, "- &base x\n- *base\n", buf.String())
}

func TestSerializerMultiDocument(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(&buf, DefaultOptions)
	s.Open()
	s.Serialize(&Node{Kind: ScalarNode, Tag: "!!str", Value: "a"})
	s.Serialize(&Node{Kind: ScalarNode, Tag: "!!str", Value: "b"})
	s.Close()

	assert.Equal(t, "a\n---\nb\n", buf.String())
}

func TestSerializerExplicitMarkers(t *testing.T) {
	opts := DefaultOptions
	opts.ExplicitStart = true
	opts.ExplicitEnd = true

	var buf bytes.Buffer
	s := NewSerializer(&buf, opts)
	s.Open()
	s.Serialize(&Node{Kind: ScalarNode, Tag: "!!str", Value: "a"})
	s.Close()

	assert.Equal(t, "---\na\n...\n", buf.String())
}

func TestSerializerQuotesMistypedString(t *testing.T) {
	// A plain "123" tagged !!str would read back as an int.
	node := &Node{Kind: ScalarNode, Tag: "!!str", Value: "123"}

	var buf bytes.Buffer
	s := NewSerializer(&buf, DefaultOptions)
	s.Open()
	s.Serialize(node)
	s.Close()

	assert.Equal(t, "'123'\n", buf.String())
}
