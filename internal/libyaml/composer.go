// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Composer stage: Builds a node tree from a libyaml event stream.
// Handles document structure, anchors, and aliases.

package libyaml

import (
	"fmt"
	"io"
)

// Composer produces a node tree out of a libyaml event stream.
type Composer struct {
	Parser      Parser
	event       Event
	anchors     map[string]*Node
	anchorMarks map[string]Mark
	resolver    *Resolver
	docMark     Mark
	doneInit    bool
	Textless    bool
	encoding    Encoding // stream encoding from STREAM_START
}

// NewComposer creates a new composer from a byte slice. A nil opts uses
// DefaultOptions.
func NewComposer(b []byte, opts *Options) *Composer {
	p := Composer{
		Parser:   NewParser(),
		resolver: NewResolver(opts),
	}
	if len(b) == 0 {
		b = []byte{'\n'}
	}
	p.Parser.SetInputString(b)
	return &p
}

// NewComposerFromReader creates a new composer from an io.Reader.
func NewComposerFromReader(r io.Reader, opts *Options) *Composer {
	p := Composer{
		Parser:   NewParser(),
		resolver: NewResolver(opts),
	}
	p.Parser.SetInputReader(r)
	return &p
}

func (p *Composer) init() {
	if p.doneInit {
		return
	}
	p.anchors = make(map[string]*Node)
	p.anchorMarks = make(map[string]Mark)
	// Peek to get the encoding from STREAM_START_EVENT
	if p.peek() == STREAM_START_EVENT {
		p.encoding = p.event.GetEncoding()
	}
	p.expect(STREAM_START_EVENT)
	p.doneInit = true
}

func (p *Composer) Destroy() {
	if p.event.Type != NO_EVENT {
		p.event.Delete()
	}
	p.Parser.Delete()
}

// expect consumes an event from the event stream and
// checks that it's of the expected type.
func (p *Composer) expect(e EventType) {
	if p.event.Type == NO_EVENT {
		if err := p.Parser.Parse(&p.event); err != nil {
			p.fail(err)
		}
	}
	if p.event.Type == STREAM_END_EVENT {
		failf("attempted to go past the end of stream; corrupted value?")
	}
	if p.event.Type != e {
		p.fail(fmt.Errorf("expected %s event but got %s", e, p.event.Type))
	}
	p.event.Delete()
	p.event.Type = NO_EVENT
}

// peek peeks at the next event in the event stream,
// puts the results into p.event and returns the event type.
func (p *Composer) peek() EventType {
	if p.event.Type != NO_EVENT {
		return p.event.Type
	}
	if err := p.Parser.Parse(&p.event); err != nil {
		p.fail(err)
	}
	return p.event.Type
}

func (p *Composer) fail(err error) {
	Fail(err)
}

// anchor binds the anchor carried by the current event to n. Binding the
// node before its children are composed is what allows aliases inside a
// collection to refer back to the collection itself.
func (p *Composer) anchor(n *Node, anchor []byte) {
	if anchor == nil {
		return
	}
	name := string(anchor)
	if first, ok := p.anchorMarks[name]; ok {
		Fail(ComposerError{
			ContextMessage: fmt.Sprintf("found duplicate anchor '%s'; first occurrence", name),
			ContextMark:    first,
			Message:        "second occurrence",
			Mark:           p.event.StartMark,
		})
	}
	n.Anchor = name
	p.anchors[name] = n
	p.anchorMarks[name] = p.event.StartMark
}

// Compose composes the next node from the event stream. At the top level
// this produces one DocumentNode per call, and nil once the stream ends.
func (p *Composer) Compose() *Node {
	p.init()

	switch p.peek() {
	case SCALAR_EVENT:
		return p.scalar()
	case ALIAS_EVENT:
		return p.alias()
	case MAPPING_START_EVENT:
		return p.mapping()
	case SEQUENCE_START_EVENT:
		return p.sequence()
	case DOCUMENT_START_EVENT:
		return p.document()
	case STREAM_END_EVENT:
		// Happens when attempting to compose an empty stream.
		return nil
	default:
		panic("internal error: attempted to compose unknown event (please report): " + p.event.Type.String())
	}
}

// ComposeSingle composes the only document in the stream. It fails when the
// stream holds more than one document.
func (p *Composer) ComposeSingle() *Node {
	p.init()

	var doc *Node
	if p.peek() != STREAM_END_EVENT {
		doc = p.Compose()
	}
	// Ensure that the stream contains no more documents.
	if p.peek() != STREAM_END_EVENT {
		Fail(ComposerError{
			ContextMessage: "expected a single document in the stream",
			ContextMark:    p.docMark,
			Message:        "but found another document",
			Mark:           p.event.StartMark,
		})
	}
	return doc
}

// ComposeStream composes every document in the stream under a single
// StreamNode recording the input encoding.
func (p *Composer) ComposeStream() *Node {
	p.init()

	stream := &Node{Kind: StreamNode}
	if !p.Textless {
		stream.Line = 1
		stream.Column = 1
	}
	for p.peek() != STREAM_END_EVENT {
		doc := p.Compose()
		if doc == nil {
			break
		}
		stream.Content = append(stream.Content, doc)
	}
	return stream
}

func (p *Composer) node(kind Kind, defaultTag, tag, value string) *Node {
	var style Style
	if tag != "" && tag != "!" {
		// Normalize tag to short form (e.g., tag:yaml.org,2002:str -> !!str)
		tag = shortTag(tag)
		style = TaggedStyle
	} else if defaultTag != "" {
		tag = defaultTag
	} else if kind == ScalarNode {
		tag = p.resolver.resolveTag(value, true)
	}
	n := &Node{
		Kind:  kind,
		Tag:   tag,
		Value: value,
		Style: style,
	}
	if !p.Textless {
		n.Line = p.event.StartMark.Line + 1
		n.Column = p.event.StartMark.Column + 1
	}
	return n
}

func (p *Composer) parseChild(parent *Node) *Node {
	child := p.Compose()
	parent.Content = append(parent.Content, child)
	return child
}

func (p *Composer) document() *Node {
	n := p.node(DocumentNode, "", "", "")
	p.expect(DOCUMENT_START_EVENT)
	p.peek()
	p.docMark = p.event.StartMark
	p.parseChild(n)
	p.expect(DOCUMENT_END_EVENT)
	// Anchors do not carry across documents.
	p.anchors = make(map[string]*Node)
	p.anchorMarks = make(map[string]Mark)
	return n
}

func (p *Composer) alias() *Node {
	n := p.node(AliasNode, "", "", string(p.event.Anchor))
	n.Alias = p.anchors[n.Value]
	if n.Alias == nil {
		Fail(ComposerError{
			Message: fmt.Sprintf("found undefined alias '%s'", n.Value),
			Mark:    p.event.StartMark,
		})
	}
	p.expect(ALIAS_EVENT)
	return n
}

func (p *Composer) scalar() *Node {
	parsedStyle := p.event.ScalarStyle()
	var nodeStyle Style
	switch {
	case parsedStyle&DOUBLE_QUOTED_SCALAR_STYLE != 0:
		nodeStyle = DoubleQuotedStyle
	case parsedStyle&SINGLE_QUOTED_SCALAR_STYLE != 0:
		nodeStyle = SingleQuotedStyle
	case parsedStyle&LITERAL_SCALAR_STYLE != 0:
		nodeStyle = LiteralStyle
	case parsedStyle&FOLDED_SCALAR_STYLE != 0:
		nodeStyle = FoldedStyle
	}
	nodeValue := string(p.event.Value)
	nodeTag := string(p.event.Tag)
	var defaultTag string
	if nodeStyle != 0 {
		defaultTag = strTag
	}
	n := p.node(ScalarNode, defaultTag, nodeTag, nodeValue)
	n.Style |= nodeStyle
	p.anchor(n, p.event.Anchor)
	p.expect(SCALAR_EVENT)
	return n
}

func (p *Composer) sequence() *Node {
	n := p.node(SequenceNode, seqTag, string(p.event.Tag), "")
	if p.event.SequenceStyle()&FLOW_SEQUENCE_STYLE != 0 {
		n.Style |= FlowStyle
	}
	p.anchor(n, p.event.Anchor)
	p.expect(SEQUENCE_START_EVENT)
	for p.peek() != SEQUENCE_END_EVENT {
		p.parseChild(n)
	}
	p.expect(SEQUENCE_END_EVENT)
	return n
}

func (p *Composer) mapping() *Node {
	n := p.node(MappingNode, mapTag, string(p.event.Tag), "")
	if p.event.MappingStyle()&FLOW_MAPPING_STYLE != 0 {
		n.Style |= FlowStyle
	}
	p.anchor(n, p.event.Anchor)
	p.expect(MAPPING_START_EVENT)
	for p.peek() != MAPPING_END_EVENT {
		p.parseChild(n)
		p.parseChild(n)
	}
	p.expect(MAPPING_END_EVENT)
	return n
}
