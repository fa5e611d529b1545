// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind defines whether a Node is a document, mapping, sequence, scalar,
// alias, or stream.
type Kind uint32

const (
	DocumentNode Kind = 1 << iota
	SequenceNode
	MappingNode
	ScalarNode
	AliasNode
	StreamNode
)

// Style describes the style of a Node.
type Style uint32

const (
	TaggedStyle Style = 1 << iota
	DoubleQuotedStyle
	SingleQuotedStyle
	LiteralStyle
	FoldedStyle
	FlowStyle
)

// Node represents an element in the YAML document hierarchy. While documents
// are typically encoded and decoded into higher level types, such as structs
// and maps, Node is an intermediate representation that allows detailed
// control over the content being decoded or encoded.
//
// It's worth noting that although Node offers access into details such as
// anchors, tags, and styles, decoding into a Node will still decode the whole
// stream: aliases are followed and their targets shared in Content, and the
// resolved tag is filled in even when the source text carried none.
//
// The zero value of a Node behaves as a null value, which is convenient when
// building nodes by hand.
type Node struct {
	// Kind defines whether the node is a document, a mapping, a sequence,
	// a scalar value, or an alias to another node. The specific data type of
	// scalar nodes may be obtained via the ShortTag and LongTag methods.
	Kind Kind

	// Style allows customizing the appearance of the node in the tree.
	Style Style

	// Tag holds the YAML tag defining the data type for the value.
	// When decoding, this field will always be set to the resolved tag,
	// even when it wasn't explicitly provided in the YAML content.
	// When encoding, if this field is unset the value type will be
	// implied from the node properties, and if it is set, it will only
	// be serialized into the representation if TaggedStyle is used or
	// the implicit tag diverges from the provided one.
	Tag string

	// Value holds the unmarshaled value of a scalar node.
	Value string

	// Anchor holds the anchor name for this node, which allows aliases to point to it.
	Anchor string

	// Alias holds the node that this alias points to. Only valid when Kind is AliasNode.
	Alias *Node

	// Content holds contained nodes for documents, mappings, and sequences.
	Content []*Node

	// Line and Column hold the node position in the decoded YAML text.
	// These fields are not respected when encoding the node.
	Line   int
	Column int
}

// IsZero returns whether the node has all of its fields unset.
func (n *Node) IsZero() bool {
	return n.Kind == 0 && n.Style == 0 && n.Tag == "" && n.Value == "" && n.Anchor == "" &&
		n.Alias == nil && n.Content == nil && n.Line == 0 && n.Column == 0
}

// LongTag returns the long form of the tag that indicates the data type for
// the node. If the Tag field isn't explicitly defined, one will be computed
// based on the node properties.
func (n *Node) LongTag() string {
	return longTag(n.ShortTag())
}

// ShortTag returns the short form of the YAML tag that indicates data type for
// the node. If the Tag field isn't explicitly defined, one will be computed
// based on the node properties.
func (n *Node) ShortTag() string {
	if n.indicatedString() {
		return strTag
	}
	if n.Tag == "" || n.Tag == "!" {
		switch n.Kind {
		case MappingNode:
			return mapTag
		case SequenceNode:
			return seqTag
		case AliasNode:
			if n.Alias != nil {
				return n.Alias.ShortTag()
			}
		case ScalarNode:
			tag, _ := resolve("", n.Value)
			return tag
		case 0:
			// Special case to make the zero value convenient.
			if n.IsZero() {
				return nullTag
			}
		}
		return ""
	}
	return shortTag(n.Tag)
}

func (n *Node) indicatedString() bool {
	return n.Kind == ScalarNode &&
		(shortTag(n.Tag) == strTag ||
			(n.Tag == "" || n.Tag == "!") && n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) != 0)
}

// SetString is a convenience function that sets the node to a string value
// and defines its style in a pleasant way depending on its content. Note that
// if the provided value isn't UTF-8 valid it will be base64 encoded and the
// binary tag set on the node.
func (n *Node) SetString(s string) {
	n.Kind = ScalarNode
	if utf8.ValidString(s) {
		n.Value = s
		n.Tag = strTag
	} else {
		n.Value = encodeBase64(s)
		n.Tag = binaryTag
	}
	if shouldUseLiteralStyle(n.Value) {
		n.Style = LiteralStyle
	}
}

// shouldUseLiteralStyle reports whether a multiline string may be rendered
// in literal block style. Literal style cannot represent trailing spaces,
// spaces before a line break, or control characters other than tab, so
// such values fall back to a quoted style. A string made entirely of
// whitespace is quoted too, since a block scalar holding nothing but
// spaces and breaks is barely readable.
func shouldUseLiteralStyle(s string) bool {
	if !strings.Contains(s, "\n") {
		return false
	}
	if strings.HasSuffix(s, " ") || strings.Contains(s, " \n") {
		return false
	}
	hasContent := false
	for _, r := range s {
		if r != '\n' && r != '\t' && (r < 0x20 || r == 0x7F) {
			return false
		}
		if !unicode.IsSpace(r) {
			hasContent = true
		}
	}
	return hasContent
}

// Load constructs the Go value pointed to by out from the node tree.
//
// The node is resolved first, so nodes built by hand may leave Tag unset
// and have the implicit rules fill it in. Accepts the same options as the
// package-level Load function.
func (n *Node) Load(out any, opts ...Option) (err error) {
	defer handleErr(&err)
	o, err := ApplyOptions(opts...)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("yaml: load target must be a non-nil pointer")
	}
	NewResolver(o).Resolve(n)
	c := NewConstructor(o)
	c.Construct(n, rv.Elem())
	if len(c.TypeErrors) > 0 {
		return &LoadErrors{Errors: c.TypeErrors}
	}
	return nil
}

// Decode constructs the Go value pointed to by out from the node tree
// using default options.
func (n *Node) Decode(out any) error {
	return n.Load(out)
}

// Dump replaces the node contents with the representation of in. The value
// runs through the dump pipeline and is composed back, so the resulting
// tree carries the tags and styles that loading the rendered text would
// produce. Accepts the same options as the package-level Dump function.
func (n *Node) Dump(in any, opts ...Option) (err error) {
	defer handleErr(&err)
	o, err := ApplyOptions(opts...)
	if err != nil {
		return err
	}
	text, err := Dump(in, func(opts *Options) error {
		*opts = *o
		return nil
	})
	if err != nil {
		return err
	}
	c := NewComposer(text, o)
	c.Textless = true
	defer c.Destroy()
	doc := c.ComposeSingle()
	if doc == nil || len(doc.Content) == 0 {
		*n = Node{}
		return nil
	}
	*n = *doc.Content[0]
	return nil
}

// Encode replaces the node contents with the representation of in using
// default options.
func (n *Node) Encode(in any) error {
	return n.Dump(in)
}
