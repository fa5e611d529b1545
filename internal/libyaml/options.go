// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"errors"
	"fmt"
)

// QuoteStyle selects which quoting style the emitter prefers when a scalar
// cannot be written plain.
type QuoteStyle int

const (
	// QuoteLegacy keeps the historical behavior of preferring double
	// quotes over single quotes.
	QuoteLegacy QuoteStyle = iota
	// QuoteSingle prefers single quoted scalars, falling back to double
	// quotes only when the value contains characters single quotes cannot
	// represent.
	QuoteSingle
	// QuoteDouble prefers double quoted scalars.
	QuoteDouble
)

// ScalarStyle returns the scalar style this preference selects where the
// representer or desolver forces quoting. QuoteLegacy historically used
// double quotes on that side.
func (q QuoteStyle) ScalarStyle() ScalarStyle {
	if q == QuoteDouble || q == QuoteLegacy {
		return DOUBLE_QUOTED_SCALAR_STYLE
	}
	return SINGLE_QUOTED_SCALAR_STYLE
}

// FlowDefault selects how collections that carry no explicit style are
// laid out when representing Go values.
type FlowDefault int

const (
	// FlowAuto leaves the layout to per-node judgment: block unless a
	// field tag or FlowSimpleCollections asks for flow.
	FlowAuto FlowDefault = iota
	// FlowBlock lays out every collection in block style.
	FlowBlock
	// FlowFlow lays out every collection in flow style.
	FlowFlow
)

// AliasingRestrictionFunction decides whether construction may continue
// given the number of values produced through alias expansion and the total
// number of values constructed so far. Returning false aborts construction
// of the document.
type AliasingRestrictionFunction func(aliasCount int, constructCount int) bool

// Options collects the configuration shared by the loading and dumping
// pipelines. The zero value is usable but DefaultOptions is the recommended
// starting point.
type Options struct {
	// Indent is the number of spaces used for one indentation level
	// when emitting. Values outside 2 through 9 fall back to 2.
	Indent int

	// CompactSeqIndent controls whether the '- ' of a block sequence
	// entry counts as indentation. When true, sequences nested in
	// mappings are emitted without additional indentation.
	CompactSeqIndent bool

	// KnownFields makes construction fail when the input contains a
	// mapping key with no corresponding field in the target struct.
	KnownFields bool

	// SingleDocument makes loading fail when the stream contains more
	// than one document.
	SingleDocument bool

	// StreamNodes makes loading produce a StreamNode wrapping the
	// document nodes instead of unwrapping the single document.
	StreamNodes bool

	// AllDocuments makes loading return every document in the stream.
	AllDocuments bool

	// LineWidth is the preferred line width for emitted output.
	// A negative value means unlimited.
	LineWidth int

	// Unicode allows non-ASCII characters to appear unescaped in the
	// output. When false they are written as escape sequences.
	Unicode bool

	// UniqueKeys makes construction fail when a mapping contains the
	// same key more than once.
	UniqueKeys bool

	// Canonical makes the emitter produce the canonical form of the
	// document, with explicit tags and document markers.
	Canonical bool

	// LineBreak selects the line break style used in emitted output.
	LineBreak LineBreak

	// ExplicitStart forces a '---' marker before every document.
	ExplicitStart bool

	// ExplicitEnd forces a '...' marker after every document.
	ExplicitEnd bool

	// FlowSimpleCollections emits collections that contain no nested
	// collections in flow style.
	FlowSimpleCollections bool

	// QuotePreference selects the quoting style used for scalars that
	// cannot be written plain.
	QuotePreference QuoteStyle

	// DefaultScalarStyle is applied when representing scalars whose
	// content does not force a style. The zero value leaves them plain.
	DefaultScalarStyle Style

	// DefaultFlowStyle selects the layout of represented collections
	// that carry no explicit style.
	DefaultFlowStyle FlowDefault

	// AliasingRestrictionFunction guards against documents whose alias
	// expansion is far larger than their explicit content. A nil value
	// falls back to DefaultAliasingRestrictions.
	AliasingRestrictionFunction AliasingRestrictionFunction

	// ResolveNode, when set, runs before implicit tag resolution. It is
	// called for every mapping, sequence, and scalar node, receiving the
	// node, the path of mapping keys and sequence indexes leading to it,
	// its parent, and the document root. Nodes the function leaves
	// untagged resolve through the implicit rules as usual.
	ResolveNode func(node *Node, path []string, parent, root *Node) error

	// Encoding is the character encoding used for emitted output.
	// The zero value means UTF-8.
	Encoding Encoding

	// Version, when set, is emitted as a %YAML directive before each
	// document.
	Version *VersionDirective

	// TagDirectives are emitted as %TAG directives before each document.
	TagDirectives []TagDirective

	// FromLegacy marks calls coming through the legacy Unmarshal entry
	// point, which ignores trailing documents instead of rejecting them.
	FromLegacy bool
}

// DefaultOptions holds the settings used when no option overrides them.
var DefaultOptions = Options{
	Indent:                      2,
	CompactSeqIndent:            true,
	LineWidth:                   80,
	UniqueKeys:                  true,
	LineBreak:                   LN_BREAK,
	QuotePreference:             QuoteSingle,
	AliasingRestrictionFunction: DefaultAliasingRestrictions,
}

// Option configures an Options value and reports invalid settings.
type Option func(*Options) error

// ApplyOptions builds an Options value by applying the given options on top
// of the defaults.
func ApplyOptions(opts ...Option) (*Options, error) {
	options := DefaultOptions
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, err
		}
	}
	return &options, nil
}

// optionalBool interprets the argument list of a boolean option. Calling
// such an option with no argument is equivalent to passing true.
func optionalBool(name string, value []bool) (bool, error) {
	switch len(value) {
	case 0:
		return true, nil
	case 1:
		return value[0], nil
	}
	return false, fmt.Errorf("yaml: %s accepts at most one argument, got %d", name, len(value))
}

// WithIndent sets the number of spaces to use for indentation when
// emitting YAML content.
//
// A negative indent value or a value above 9 will result in an error.
// 0 can be used to reset the default indentation level.
func WithIndent(indent int) Option {
	return func(o *Options) error {
		if indent < 0 {
			return errors.New("yaml: cannot indent to a negative number of spaces")
		}
		if indent > 9 {
			return errors.New("yaml: indent must be at most 9 spaces")
		}
		o.Indent = indent
		return nil
	}
}

// WithCompactSeqIndent configures whether the sequence indicator '- ' is
// considered part of the indentation when emitting YAML content.
func WithCompactSeqIndent(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithCompactSeqIndent", value)
		if err != nil {
			return err
		}
		o.CompactSeqIndent = v
		return nil
	}
}

// WithKnownFields enables or disables strict field checking during
// construction. When enabled, construction fails if the input contains
// mapping keys with no corresponding field in the target struct.
func WithKnownFields(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithKnownFields", value)
		if err != nil {
			return err
		}
		o.KnownFields = v
		return nil
	}
}

// WithSingleDocument makes loading fail when the stream contains more than
// one document.
func WithSingleDocument(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithSingleDocument", value)
		if err != nil {
			return err
		}
		o.SingleDocument = v
		return nil
	}
}

// WithStreamNodes makes loading produce a StreamNode wrapping the document
// nodes instead of unwrapping the single document.
func WithStreamNodes(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithStreamNodes", value)
		if err != nil {
			return err
		}
		o.StreamNodes = v
		return nil
	}
}

// WithAllDocuments makes loading return every document in the stream.
func WithAllDocuments(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithAllDocuments", value)
		if err != nil {
			return err
		}
		o.AllDocuments = v
		return nil
	}
}

// WithLineWidth sets the preferred line width for emitted output. A negative
// width means unlimited.
func WithLineWidth(width int) Option {
	return func(o *Options) error {
		o.LineWidth = width
		return nil
	}
}

// WithUnicode allows non-ASCII characters to appear unescaped in the output.
func WithUnicode(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithUnicode", value)
		if err != nil {
			return err
		}
		o.Unicode = v
		return nil
	}
}

// WithUniqueKeys makes construction fail when a mapping contains the same
// key more than once.
func WithUniqueKeys(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithUniqueKeys", value)
		if err != nil {
			return err
		}
		o.UniqueKeys = v
		return nil
	}
}

// WithCanonical makes the emitter produce the canonical form of the
// document, with explicit tags and document markers.
func WithCanonical(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithCanonical", value)
		if err != nil {
			return err
		}
		o.Canonical = v
		return nil
	}
}

// WithLineBreak selects the line break style used in emitted output.
func WithLineBreak(lineBreak LineBreak) Option {
	return func(o *Options) error {
		o.LineBreak = lineBreak
		return nil
	}
}

// WithExplicitStart forces a '---' marker before every emitted document.
func WithExplicitStart(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithExplicitStart", value)
		if err != nil {
			return err
		}
		o.ExplicitStart = v
		return nil
	}
}

// WithExplicitEnd forces a '...' marker after every emitted document.
func WithExplicitEnd(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithExplicitEnd", value)
		if err != nil {
			return err
		}
		o.ExplicitEnd = v
		return nil
	}
}

// WithFlowSimpleCollections emits collections that contain no nested
// collections in flow style.
func WithFlowSimpleCollections(value ...bool) Option {
	return func(o *Options) error {
		v, err := optionalBool("WithFlowSimpleCollections", value)
		if err != nil {
			return err
		}
		o.FlowSimpleCollections = v
		return nil
	}
}

// WithQuotePreference selects the quoting style used for scalars that
// cannot be written plain.
func WithQuotePreference(style QuoteStyle) Option {
	return func(o *Options) error {
		switch style {
		case QuoteLegacy, QuoteSingle, QuoteDouble:
			o.QuotePreference = style
			return nil
		}
		return fmt.Errorf("yaml: unknown quote preference: %d", style)
	}
}

// WithAliasingRestrictionFunction installs a custom guard deciding whether
// construction may continue as aliases are expanded.
func WithAliasingRestrictionFunction(fn AliasingRestrictionFunction) Option {
	return func(o *Options) error {
		if fn == nil {
			return errors.New("yaml: aliasing restriction function must not be nil")
		}
		o.AliasingRestrictionFunction = fn
		return nil
	}
}

// WithDefaultScalarStyle sets the style applied to scalars whose content
// does not force one. The zero value leaves such scalars plain.
func WithDefaultScalarStyle(style Style) Option {
	return func(o *Options) error {
		switch style {
		case 0, SingleQuotedStyle, DoubleQuotedStyle, LiteralStyle, FoldedStyle:
			o.DefaultScalarStyle = style
			return nil
		}
		return fmt.Errorf("yaml: invalid default scalar style %d", style)
	}
}

// WithDefaultFlowStyle sets how collections that carry no explicit style
// are laid out.
func WithDefaultFlowStyle(style FlowDefault) Option {
	return func(o *Options) error {
		switch style {
		case FlowAuto, FlowBlock, FlowFlow:
			o.DefaultFlowStyle = style
			return nil
		}
		return fmt.Errorf("yaml: invalid default flow style %d", style)
	}
}

// WithEncoding sets the character encoding of the output. UTF-16 output
// is written with a byte order mark.
func WithEncoding(encoding Encoding) Option {
	return func(o *Options) error {
		switch encoding {
		case ANY_ENCODING, UTF8_ENCODING, UTF16LE_ENCODING, UTF16BE_ENCODING:
			o.Encoding = encoding
			return nil
		}
		return fmt.Errorf("yaml: invalid encoding %d", encoding)
	}
}

// WithVersion emits a %YAML directive with the given version before each
// document. The emitter accepts version 1.1 only.
func WithVersion(major, minor int) Option {
	return func(o *Options) error {
		if major < 1 || minor < 0 {
			return fmt.Errorf("yaml: invalid YAML version %d.%d", major, minor)
		}
		o.Version = &VersionDirective{major: int8(major), minor: int8(minor)}
		return nil
	}
}

// WithTagDirective emits a %TAG directive mapping handle to prefix before
// each document. The handle must begin and end with '!'.
func WithTagDirective(handle, prefix string) Option {
	return func(o *Options) error {
		if handle == "" || prefix == "" {
			return errors.New("yaml: tag directive handle and prefix must not be empty")
		}
		o.TagDirectives = append(o.TagDirectives, TagDirective{
			handle: []byte(handle),
			prefix: []byte(prefix),
		})
		return nil
	}
}

// CombineOptions merges several options into a single one. Later options
// override earlier ones.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

const (
	alias_ratio_range_low  = 400000
	alias_ratio_range_high = 4000000
	alias_ratio_range      = float64(alias_ratio_range_high - alias_ratio_range_low)
)

func allowedAliasRatio(constructCount int) float64 {
	switch {
	case constructCount <= alias_ratio_range_low:
		// allow 99% of constructed values to come from alias expansion.
		return 0.99
	case constructCount >= alias_ratio_range_high:
		// allow 10% of constructed values to come from alias expansion.
		return 0.10
	default:
		// Scale the allowed ratio from 99% down to 10% as the amount
		// of constructed content grows.
		return 0.99 - 0.89*(float64(constructCount)-alias_ratio_range_low)/alias_ratio_range
	}
}

// DefaultAliasingRestrictions is the aliasing guard installed by
// DefaultOptions. It refuses documents whose alias expansion grows far
// beyond the amount of explicit content, which blocks exponential
// expansion attacks while leaving ordinary documents unaffected.
func DefaultAliasingRestrictions(aliasCount, constructCount int) bool {
	if aliasCount <= 100 || constructCount <= 1000 {
		return true
	}
	return float64(aliasCount)/float64(constructCount) <= allowedAliasRatio(constructCount)
}
