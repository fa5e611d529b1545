// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Serializer stage: Converts representation tree (Nodes) to event stream.
// Walks the node tree and produces events for the emitter, assigning
// anchors to nodes that are referenced more than once.

package libyaml

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Serializer turns Node trees into an event stream for the emitter. A
// stream is opened once, carries any number of documents, and is closed
// once; using the serializer outside that lifecycle raises a
// SerializerError.
type Serializer struct {
	Emitter Emitter

	resolver *Resolver

	encoding              Encoding
	explicitStart         bool
	explicitEnd           bool
	flowSimpleCollections bool
	lineWidth             int
	version               *VersionDirective
	tagDirectives         []TagDirective

	// Anchor assignment is keyed by node identity so that a node shared
	// between two places in the graph serializes once and aliases after.
	anchors      map[*Node]string
	serialized   map[*Node]bool
	lastAnchorID int

	opened bool
	closed bool
}

// NewSerializer creates a new Serializer writing to w with the given
// options.
func NewSerializer(w io.Writer, opts Options) *Serializer {
	emitter := NewEmitter()
	emitter.CompactSequenceIndent = opts.CompactSeqIndent
	emitter.QuotePreference = opts.QuotePreference
	emitter.SetWidth(opts.LineWidth)
	emitter.SetUnicode(opts.Unicode)
	emitter.SetCanonical(opts.Canonical)
	emitter.SetLineBreak(opts.LineBreak)

	// Set indentation (defaults to 2 if not specified)
	indent := opts.Indent
	if indent == 0 {
		indent = 2
	}
	emitter.BestIndent = indent

	if w != nil {
		emitter.SetOutputWriter(w)
	}

	return &Serializer{
		Emitter:               emitter,
		resolver:              NewResolver(&opts),
		encoding:              opts.Encoding,
		explicitStart:         opts.ExplicitStart,
		explicitEnd:           opts.ExplicitEnd,
		flowSimpleCollections: opts.FlowSimpleCollections && opts.DefaultFlowStyle != FlowBlock,
		lineWidth:             opts.LineWidth,
		version:               opts.Version,
		tagDirectives:         opts.TagDirectives,
		anchors:               make(map[*Node]string),
		serialized:            make(map[*Node]bool),
	}
}

// Open starts the YAML stream. It must be called once before the first
// Serialize call.
func (s *Serializer) Open() {
	if s.closed {
		Fail(SerializerError{Message: "serializer is closed"})
	}
	if s.opened {
		Fail(SerializerError{Message: "serializer is already opened"})
	}
	s.emit(NewStreamStartEvent(s.encoding))
	s.opened = true
}

// Close ends the YAML stream and flushes the remaining output. Closing
// an already closed serializer has no effect.
func (s *Serializer) Close() {
	if !s.opened {
		Fail(SerializerError{Message: "serializer is not opened"})
	}
	if !s.closed {
		s.Emitter.OpenEnded = false
		s.emit(NewStreamEndEvent())
		s.closed = true
	}
}

func (s *Serializer) emit(event Event) {
	s.must(s.Emitter.Emit(&event))
}

func (s *Serializer) must(err error) {
	if err != nil {
		Fail(err)
	}
}

// Serialize writes node to the stream as one document, framed by
// DOCUMENT-START and DOCUMENT-END events. A StreamNode serializes as one
// document per child.
func (s *Serializer) Serialize(node *Node) {
	if !s.opened {
		Fail(SerializerError{Message: "serializer is not opened"})
	}
	if s.closed {
		Fail(SerializerError{Message: "serializer is closed"})
	}

	if node != nil && node.Kind == StreamNode {
		for _, doc := range node.Content {
			s.Serialize(doc)
		}
		return
	}

	content := []*Node{node}
	if node != nil && node.Kind == DocumentNode {
		content = node.Content
		if len(content) == 0 {
			content = []*Node{nil}
		}
	}

	s.emit(NewDocumentStartEvent(s.version, s.tagDirectives, !s.explicitStart))
	for _, n := range content {
		s.anchorNode(n)
	}
	for _, n := range content {
		s.serializeNode(n)
	}
	s.emit(NewDocumentEndEvent(!s.explicitEnd))

	// Anchors do not carry across documents.
	s.anchors = make(map[*Node]string)
	s.serialized = make(map[*Node]bool)
	s.lastAnchorID = 0
}

// anchorNode walks the node graph assigning anchors before serialization
// starts. A node keeps the anchor it already carries; a node referenced
// more than once without one is assigned a generated anchor in
// first-visit order.
func (s *Serializer) anchorNode(node *Node) {
	if node == nil {
		return
	}
	if node.Kind == AliasNode {
		if node.Alias == nil {
			return
		}
		node = node.Alias
	}
	if anchor, ok := s.anchors[node]; ok {
		if anchor == "" {
			s.anchors[node] = s.generateAnchor()
		}
		return
	}
	s.anchors[node] = node.Anchor
	switch node.Kind {
	case DocumentNode, SequenceNode, MappingNode:
		for _, child := range node.Content {
			s.anchorNode(child)
		}
	}
}

// generateAnchor returns the next anchor name in the id001, id002, ...
// sequence.
func (s *Serializer) generateAnchor() string {
	s.lastAnchorID++
	return fmt.Sprintf("id%03d", s.lastAnchorID)
}

// serializeNode emits the events for one node. A node whose identity was
// already serialized in this document emits an alias to its anchor
// instead, which is what keeps cyclic graphs from recursing forever.
func (s *Serializer) serializeNode(node *Node) {
	// Zero nodes behave as nil.
	if node == nil || node.Kind == 0 && node.IsZero() {
		s.emitScalar("null", "", "", PLAIN_SCALAR_STYLE, true, true)
		return
	}

	if node.Kind == AliasNode {
		if node.Alias == nil {
			// A hand-built alias referencing its anchor by name.
			s.emit(NewAliasEvent([]byte(node.Value)))
			return
		}
		node = node.Alias
	}
	if s.serialized[node] {
		s.emit(NewAliasEvent([]byte(s.anchors[node])))
		return
	}
	s.serialized[node] = true
	anchor := s.anchors[node]

	switch node.Kind {
	case SequenceNode:
		style := BLOCK_SEQUENCE_STYLE
		if node.Style&FlowStyle != 0 || s.isSimpleCollection(node) {
			style = FLOW_SEQUENCE_STYLE
		}
		tag := node.Tag
		implicit := tag == "" || shortTag(tag) == seqTag && node.Style&TaggedStyle == 0
		s.emit(NewSequenceStartEvent([]byte(anchor), []byte(longTag(tag)), implicit, style))
		for _, item := range node.Content {
			s.serializeNode(item)
		}
		s.emit(NewSequenceEndEvent())

	case MappingNode:
		style := BLOCK_MAPPING_STYLE
		if node.Style&FlowStyle != 0 || s.isSimpleCollection(node) {
			style = FLOW_MAPPING_STYLE
		}
		tag := node.Tag
		implicit := tag == "" || shortTag(tag) == mapTag && node.Style&TaggedStyle == 0
		s.emit(NewMappingStartEvent([]byte(anchor), []byte(longTag(tag)), implicit, style))
		for i := 0; i+1 < len(node.Content); i += 2 {
			s.serializeNode(node.Content[i])
			s.serializeNode(node.Content[i+1])
		}
		s.emit(NewMappingEndEvent())

	case ScalarNode:
		value := node.Value
		tag := node.Tag
		if !utf8.ValidString(value) {
			stag := shortTag(tag)
			if stag == binaryTag {
				failf("explicitly tagged !!binary data must be base64-encoded")
			}
			if stag != "" {
				failf("cannot marshal invalid UTF-8 data as %s", stag)
			}
			// It can't be represented directly as YAML so use a binary tag
			// and represent it as base64.
			tag = binaryTag
			value = encodeBase64(value)
		}

		style := PLAIN_SCALAR_STYLE
		switch {
		case node.Style&DoubleQuotedStyle != 0:
			style = DOUBLE_QUOTED_SCALAR_STYLE
		case node.Style&SingleQuotedStyle != 0:
			style = SINGLE_QUOTED_SCALAR_STYLE
		case node.Style&LiteralStyle != 0:
			style = LITERAL_SCALAR_STYLE
		case node.Style&FoldedStyle != 0:
			style = FOLDED_SCALAR_STYLE
		case strings.Contains(value, "\n"):
			style = LITERAL_SCALAR_STYLE
		}

		// The implicit flags tell the emitter whether a plain or a quoted
		// rendering of the value reads back with the same tag. A plain
		// "123" tagged !!str would read back as an int, so it comes out
		// quoted instead of explicitly tagged. A tag the user forced via
		// TaggedStyle is always printed.
		forced := node.Style&TaggedStyle != 0 && tag != ""
		plainImplicit := !forced && (tag == "" || shortTag(tag) == s.resolver.resolveTag(value, true))
		quotedImplicit := !forced && (tag == "" || shortTag(tag) == s.resolver.resolveTag(value, false))
		s.emitScalar(value, anchor, longTag(tag), style, plainImplicit, quotedImplicit)

	default:
		failf("cannot serialize node with unknown kind %d", node.Kind)
	}
}

func (s *Serializer) emitScalar(value, anchor, tag string, style ScalarStyle, plainImplicit, quotedImplicit bool) {
	s.emit(NewScalarEvent([]byte(anchor), []byte(tag), []byte(value), plainImplicit, quotedImplicit, style))
}

// isSimpleCollection checks if a node contains only scalar values and would
// fit within the line width when rendered in flow style.
func (s *Serializer) isSimpleCollection(node *Node) bool {
	if !s.flowSimpleCollections {
		return false
	}
	if node.Kind != SequenceNode && node.Kind != MappingNode {
		return false
	}
	// Check all children are scalars
	for _, child := range node.Content {
		if child.Kind != ScalarNode {
			return false
		}
	}
	// Estimate flow style length
	estimatedLen := s.estimateFlowLength(node)
	width := s.lineWidth
	if width <= 0 {
		width = 80 // Default width if not set
	}
	return estimatedLen > 0 && estimatedLen <= width
}

// estimateFlowLength estimates the character length of a node in flow style.
func (s *Serializer) estimateFlowLength(node *Node) int {
	if node.Kind == SequenceNode {
		// [item1, item2, ...] = 2 + sum(len(items)) + 2*(len-1)
		length := 2 // []
		for i, child := range node.Content {
			if i > 0 {
				length += 2 // ", "
			}
			length += len(child.Value)
		}
		return length
	}
	if node.Kind == MappingNode {
		// {key1: val1, key2: val2} = 2 + sum(key: val) + 2*(pairs-1)
		length := 2 // {}
		for i := 0; i < len(node.Content); i += 2 {
			if i > 0 {
				length += 2 // ", "
			}
			length += len(node.Content[i].Value) + 2 + len(node.Content[i+1].Value) // "key: val"
		}
		return length
	}
	return 0
}
