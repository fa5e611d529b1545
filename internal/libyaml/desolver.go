// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Desolver stage: Removes inferrable tags from YAML nodes.
// This is the inverse of the Resolver. It walks a tagged node tree and
// removes the tags the resolver would assign again on its own, so that
// the output carries type annotations only where they change meaning.

package libyaml

// Desolver strips resolvable tags from node trees before serialization.
type Desolver struct {
	opts *Options
}

// NewDesolver creates a new Desolver with the given options. A nil opts
// selects the default quoting preference.
func NewDesolver(opts *Options) *Desolver {
	return &Desolver{opts: opts}
}

// Desolve walks the node tree and removes tags that can be inferred.
//
// For scalar nodes: if the value would resolve to the same tag when
// parsed, the tag is removed. For strings that would resolve differently,
// the tag is removed and a quoting style is set to preserve the string
// type.
//
// For collection nodes, the default !!map and !!seq tags are removed
// since they are implied by the structure.
func (d *Desolver) Desolve(n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case ScalarNode:
		d.desolveScalar(n)
	case StreamNode, DocumentNode, SequenceNode, MappingNode:
		d.desolveCollection(n)
		for _, child := range n.Content {
			d.Desolve(child)
		}
	case AliasNode:
		// Alias nodes carry no tag of their own.
	}
}

// desolveScalar removes the tag from a scalar node when the resolver
// would infer it back.
func (d *Desolver) desolveScalar(n *Node) {
	// An explicit user tag stays.
	if n.Style&TaggedStyle != 0 {
		return
	}
	if n.Tag == "" {
		return
	}

	stag := shortTag(n.Tag)
	switch stag {
	case nullTag, boolTag, strTag, intTag, floatTag, timestampTag:
	default:
		// Custom and special tags (!!binary, !!merge) are kept as
		// explicit type information.
		return
	}

	// What tag would this value resolve to?
	rtag, _ := resolve("", n.Value)

	switch {
	case rtag == stag:
		n.Tag = ""
	case stag == strTag:
		// The value reads back as some other type when plain, so strip
		// the tag and quote instead. This covers numbers, YAML 1.1
		// booleans like "yes" and "n", and sexagesimal lookalikes such
		// as "12:34".
		n.Tag = ""
		if n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) == 0 {
			if d.opts != nil && d.opts.QuotePreference.ScalarStyle() == DOUBLE_QUOTED_SCALAR_STYLE {
				n.Style |= DoubleQuotedStyle
			} else {
				n.Style |= SingleQuotedStyle
			}
		}
	case stag == floatTag || stag == intTag:
		// Numeric mismatches such as float64(1) rendering as "1" elide
		// the tag and let the value resolve naturally.
		n.Tag = ""
	}
	// Other standard tags with mismatches keep the tag to preserve the
	// type.
}

// desolveCollection removes default tags from collection nodes.
func (d *Desolver) desolveCollection(n *Node) {
	if n.Style&TaggedStyle != 0 {
		return
	}

	stag := shortTag(n.Tag)
	switch n.Kind {
	case MappingNode:
		if stag == mapTag {
			n.Tag = ""
		}
	case SequenceNode:
		if stag == seqTag {
			n.Tag = ""
		}
	case StreamNode, DocumentNode:
		// Stream and document nodes never carry tags in output.
		n.Tag = ""
	}
}

// DesolveNode is a convenience function that creates a Desolver and calls
// Desolve.
func DesolveNode(n *Node) {
	d := NewDesolver(nil)
	d.Desolve(n)
}
