// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for node.go functions and methods.

package libyaml

import (
	"reflect"
	"testing"

	"github.com/yaml/pyyaml/internal/testutil/assert"
	"github.com/yaml/pyyaml/internal/testutil/datatest"
)

func TestNode(t *testing.T) {
	RunTestCases(t, "node.yaml", map[string]TestHandler{
		"isZero":            runIsZeroTest,
		"set-string":        runSetStringTest,
		"set-string-binary": runSetStringBinaryTest,
		"short-tag":         runShortTagTest,
		"long-tag":          runLongTagTest,
		"node-is-zero":      runNodeIsZeroTest,
		"should-literal":    runShouldLiteralTest,
	})
}

func runIsZeroTest(t *testing.T, tc TestCase) {
	t.Helper()

	var v reflect.Value

	// 'also' selects typed-nil wrapping so nil slices and maps are
	// distinguishable from a plain nil interface.
	switch tc.Also {
	case "slice":
		if tc.From == nil {
			v = reflect.ValueOf(([]int)(nil))
		} else if slice, ok := tc.From.([]any); ok {
			v = reflect.ValueOf(slice)
		} else {
			t.Fatalf("expected slice, got %T", tc.From)
		}
	case "map":
		if tc.From == nil {
			v = reflect.ValueOf((map[string]any)(nil))
		} else if m, ok := tc.From.(map[string]any); ok {
			v = reflect.ValueOf(m)
		} else {
			t.Fatalf("expected map, got %T", tc.From)
		}
	default:
		v = reflect.ValueOf(tc.From)
	}

	got := isZero(v)
	want := datatest.WantBool(t, tc.Want, false)

	assert.Equalf(t, want, got, "isZero() = %v, want %v", got, want)
}

// checkNodeWant compares the node fields named by the want map, leaving
// unmentioned fields unchecked.
func checkNodeWant(t *testing.T, node *Node, want any) map[string]any {
	t.Helper()

	wantMap, ok := want.(map[string]any)
	if !ok {
		t.Fatalf("want should be a map, got %T", want)
	}

	if wantKind, ok := wantMap["kind"].(string); ok {
		gotKind := kindToString(node.Kind)
		assert.Equalf(t, wantKind, gotKind, "Kind = %v, want %v", gotKind, wantKind)
	}
	if wantTag, ok := wantMap["tag"].(string); ok {
		assert.Equalf(t, wantTag, node.Tag, "Tag = %v, want %v", node.Tag, wantTag)
	}
	if wantStyle, ok := wantMap["style"].(string); ok {
		gotStyle := styleToString(node.Style)
		assert.Equalf(t, wantStyle, gotStyle, "Style = %v, want %v", gotStyle, wantStyle)
	}
	return wantMap
}

func runSetStringTest(t *testing.T, tc TestCase) {
	t.Helper()

	str, ok := tc.From.(string)
	if !ok {
		t.Fatalf("from should be string, got %T", tc.From)
	}

	node := &Node{}
	node.SetString(str)

	wantMap := checkNodeWant(t, node, tc.Want)
	if wantValue, ok := wantMap["value"].(string); ok {
		assert.Equalf(t, wantValue, node.Value, "Value = %v, want %v", node.Value, wantValue)
	}
}

func runSetStringBinaryTest(t *testing.T, tc TestCase) {
	t.Helper()

	input := HexToBytes(t, tc.InputHex)

	node := &Node{}
	node.SetString(string(input))

	checkNodeWant(t, node, tc.Want)

	// Non-UTF-8 input must come out base64 encoded under the binary tag;
	// the exact encoding is covered elsewhere.
	if node.Tag == binaryTag {
		assert.Truef(t, len(node.Value) > 0, "binary value should not be empty")
	}
}

func runShortTagTest(t *testing.T, tc TestCase) {
	t.Helper()

	node := nodeFromSpec(t, tc.Node)
	got := node.ShortTag()
	want, ok := tc.Want.(string)
	if !ok {
		t.Fatalf("want should be string, got %T", tc.Want)
	}

	assert.Equalf(t, want, got, "ShortTag() = %v, want %v", got, want)
}

func runLongTagTest(t *testing.T, tc TestCase) {
	t.Helper()

	node := nodeFromSpec(t, tc.Node)
	got := node.LongTag()
	want, ok := tc.Want.(string)
	if !ok {
		t.Fatalf("want should be string, got %T", tc.Want)
	}

	assert.Equalf(t, want, got, "LongTag() = %v, want %v", got, want)
}

func runNodeIsZeroTest(t *testing.T, tc TestCase) {
	t.Helper()

	node := nodeFromSpec(t, tc.Node)
	got := node.IsZero()
	want := datatest.WantBool(t, tc.Want, false)

	assert.Equalf(t, want, got, "Node.IsZero() = %v, want %v", got, want)
}

func runShouldLiteralTest(t *testing.T, tc TestCase) {
	t.Helper()

	str, ok := tc.From.(string)
	if !ok {
		t.Fatalf("from should be string, got %T", tc.From)
	}

	got := shouldUseLiteralStyle(str)
	want := datatest.WantBool(t, tc.Want, false)

	assert.Equalf(t, want, got, "shouldUseLiteralStyle() = %v, want %v", got, want)
}

// nodeFromSpec creates a Node from a NodeSpec.
func nodeFromSpec(t *testing.T, spec NodeSpec) *Node {
	t.Helper()

	node := &Node{Tag: spec.Tag, Value: spec.Value}
	if spec.Kind != "" {
		node.Kind = parseKind(t, spec.Kind)
	}
	if spec.Style != "" {
		node.Style = parseStyle(t, spec.Style)
	}
	return node
}

// Case files name kinds with short names on input and the Go constant names
// in expectations.
var kindByName = map[string]Kind{
	"Document": DocumentNode,
	"Sequence": SequenceNode,
	"Mapping":  MappingNode,
	"Scalar":   ScalarNode,
	"Alias":    AliasNode,
	"Stream":   StreamNode,
}

var kindNames = map[Kind]string{
	DocumentNode: "DocumentNode",
	SequenceNode: "SequenceNode",
	MappingNode:  "MappingNode",
	ScalarNode:   "ScalarNode",
	AliasNode:    "AliasNode",
	StreamNode:   "StreamNode",
	0:            "",
}

func parseKind(t *testing.T, s string) Kind {
	t.Helper()
	if s == "" {
		return 0
	}
	k, ok := kindByName[s]
	if !ok {
		t.Fatalf("unknown kind: %s", s)
	}
	return k
}

func kindToString(k Kind) string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Case files use both the constant-like names and the short forms the other
// stage fixtures use.
var styleByName = map[string]Style{
	"Tagged":       TaggedStyle,
	"DoubleQuoted": DoubleQuotedStyle,
	"SingleQuoted": SingleQuotedStyle,
	"Double":       DoubleQuotedStyle,
	"Single":       SingleQuotedStyle,
	"Literal":      LiteralStyle,
	"Folded":       FoldedStyle,
	"Flow":         FlowStyle,
}

var styleNames = map[Style]string{
	TaggedStyle:       "tagged",
	DoubleQuotedStyle: "double-quoted",
	SingleQuotedStyle: "single-quoted",
	LiteralStyle:      "literal",
	FoldedStyle:       "folded",
	FlowStyle:         "flow",
	0:                 "plain",
}

func parseStyle(t *testing.T, s string) Style {
	t.Helper()
	if s == "" {
		return 0
	}
	st, ok := styleByName[s]
	if !ok {
		t.Fatalf("unknown style: %s", s)
	}
	return st
}

func styleToString(s Style) string {
	name, ok := styleNames[s]
	if !ok {
		return "unknown"
	}
	return name
}
