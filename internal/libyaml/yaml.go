// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Shared data model for the engine: tokens, events, marks, styles, and the
// yaml.org tag constants, used by every pipeline stage.

package libyaml

import (
	"fmt"
	"strings"
)

// VersionDirective holds a %YAML directive's version numbers.
type VersionDirective struct {
	major int8
	minor int8
}

// Major returns the major version number.
func (v *VersionDirective) Major() int { return int(v.major) }

// Minor returns the minor version number.
func (v *VersionDirective) Minor() int { return int(v.minor) }

// TagDirective holds a %TAG directive's handle and prefix.
type TagDirective struct {
	handle []byte
	prefix []byte
}

// GetHandle returns the tag handle.
func (t *TagDirective) GetHandle() string { return string(t.handle) }

// GetPrefix returns the tag prefix.
func (t *TagDirective) GetPrefix() string { return string(t.prefix) }

// Encoding identifies the character encoding of a stream.
type Encoding int

const (
	ANY_ENCODING     Encoding = iota // Detect from the BOM, default UTF-8.
	UTF8_ENCODING                    // UTF-8.
	UTF16LE_ENCODING                 // UTF-16 little-endian with BOM.
	UTF16BE_ENCODING                 // UTF-16 big-endian with BOM.
)

// String returns a human-readable encoding name.
func (e Encoding) String() string {
	switch e {
	case UTF8_ENCODING:
		return "utf-8"
	case UTF16LE_ENCODING:
		return "utf-16-le"
	case UTF16BE_ENCODING:
		return "utf-16-be"
	}
	return "any"
}

// LineBreak selects the newline convention used on output.
type LineBreak int

const (
	ANY_BREAK  LineBreak = iota // Emitter picks, which means LN.
	CR_BREAK                    // CR (classic Mac).
	LN_BREAK                    // LN (Unix).
	CRLN_BREAK                  // CR LN (DOS).
)

// ErrorType records which pipeline stage an error came from.
type ErrorType int

const (
	NO_ERROR       ErrorType = iota
	MEMORY_ERROR             // Cannot allocate memory.
	READER_ERROR             // Cannot read or decode the input stream.
	SCANNER_ERROR            // Cannot scan the input stream.
	PARSER_ERROR             // Cannot parse the input stream.
	COMPOSER_ERROR           // Cannot compose a YAML document.
	WRITER_ERROR             // Cannot write to the output stream.
	EMITTER_ERROR            // Cannot emit a YAML stream.
)

var errorTypeStrings = []string{
	NO_ERROR:       "no error",
	MEMORY_ERROR:   "memory error",
	READER_ERROR:   "reader error",
	SCANNER_ERROR:  "scanner error",
	PARSER_ERROR:   "parser error",
	COMPOSER_ERROR: "composer error",
	WRITER_ERROR:   "writer error",
	EMITTER_ERROR:  "emitter error",
}

// String returns the stage name for an [ErrorType].
func (e ErrorType) String() string {
	if e < 0 || int(e) >= len(errorTypeStrings) {
		return fmt.Sprintf("unknown error %d", int(e))
	}
	return errorTypeStrings[e]
}

// Mark holds a position in the input or output stream.
// Index, Line and Column are zero-based; String renders them one-based the
// way they are conventionally shown to people.
type Mark struct {
	Name   string // The name of the stream, if it has one.
	Index  int    // The position index.
	Line   int    // The position line.
	Column int    // The position column.
}

func (m Mark) String() string {
	var builder strings.Builder
	if m.Name != "" {
		fmt.Fprintf(&builder, "in %q, ", m.Name)
	}
	fmt.Fprintf(&builder, "line %d, column %d", m.Line+1, m.Column+1)
	return builder.String()
}

// Node styles. Scalar styles are distinct bits so they can share the Style
// field with sequence and mapping styles.

type styleInt int8

type ScalarStyle styleInt

const (
	ANY_SCALAR_STYLE ScalarStyle = 0 // Emitter picks.

	PLAIN_SCALAR_STYLE ScalarStyle = 1 << iota
	SINGLE_QUOTED_SCALAR_STYLE
	DOUBLE_QUOTED_SCALAR_STYLE
	LITERAL_SCALAR_STYLE
	FOLDED_SCALAR_STYLE
)

// String returns a string representation of a [ScalarStyle].
func (style ScalarStyle) String() string {
	switch style {
	case PLAIN_SCALAR_STYLE:
		return "Plain"
	case SINGLE_QUOTED_SCALAR_STYLE:
		return "Single"
	case DOUBLE_QUOTED_SCALAR_STYLE:
		return "Double"
	case LITERAL_SCALAR_STYLE:
		return "Literal"
	case FOLDED_SCALAR_STYLE:
		return "Folded"
	default:
		return ""
	}
}

type SequenceStyle styleInt

const (
	ANY_SEQUENCE_STYLE SequenceStyle = iota // Emitter picks.
	BLOCK_SEQUENCE_STYLE
	FLOW_SEQUENCE_STYLE
)

type MappingStyle styleInt

const (
	ANY_MAPPING_STYLE MappingStyle = iota // Emitter picks.
	BLOCK_MAPPING_STYLE
	FLOW_MAPPING_STYLE
)

// Tokens

type TokenType int

const (
	NO_TOKEN TokenType = iota

	STREAM_START_TOKEN
	STREAM_END_TOKEN

	VERSION_DIRECTIVE_TOKEN
	TAG_DIRECTIVE_TOKEN
	DOCUMENT_START_TOKEN
	DOCUMENT_END_TOKEN

	BLOCK_SEQUENCE_START_TOKEN
	BLOCK_MAPPING_START_TOKEN
	BLOCK_END_TOKEN

	FLOW_SEQUENCE_START_TOKEN
	FLOW_SEQUENCE_END_TOKEN
	FLOW_MAPPING_START_TOKEN
	FLOW_MAPPING_END_TOKEN

	BLOCK_ENTRY_TOKEN
	FLOW_ENTRY_TOKEN
	KEY_TOKEN
	VALUE_TOKEN

	ALIAS_TOKEN
	ANCHOR_TOKEN
	TAG_TOKEN
	SCALAR_TOKEN
)

var tokenTypeStrings = []string{
	NO_TOKEN:                   "NO_TOKEN",
	STREAM_START_TOKEN:         "STREAM_START_TOKEN",
	STREAM_END_TOKEN:           "STREAM_END_TOKEN",
	VERSION_DIRECTIVE_TOKEN:    "VERSION_DIRECTIVE_TOKEN",
	TAG_DIRECTIVE_TOKEN:        "TAG_DIRECTIVE_TOKEN",
	DOCUMENT_START_TOKEN:       "DOCUMENT_START_TOKEN",
	DOCUMENT_END_TOKEN:         "DOCUMENT_END_TOKEN",
	BLOCK_SEQUENCE_START_TOKEN: "BLOCK_SEQUENCE_START_TOKEN",
	BLOCK_MAPPING_START_TOKEN:  "BLOCK_MAPPING_START_TOKEN",
	BLOCK_END_TOKEN:            "BLOCK_END_TOKEN",
	FLOW_SEQUENCE_START_TOKEN:  "FLOW_SEQUENCE_START_TOKEN",
	FLOW_SEQUENCE_END_TOKEN:    "FLOW_SEQUENCE_END_TOKEN",
	FLOW_MAPPING_START_TOKEN:   "FLOW_MAPPING_START_TOKEN",
	FLOW_MAPPING_END_TOKEN:     "FLOW_MAPPING_END_TOKEN",
	BLOCK_ENTRY_TOKEN:          "BLOCK_ENTRY_TOKEN",
	FLOW_ENTRY_TOKEN:           "FLOW_ENTRY_TOKEN",
	KEY_TOKEN:                  "KEY_TOKEN",
	VALUE_TOKEN:                "VALUE_TOKEN",
	ALIAS_TOKEN:                "ALIAS_TOKEN",
	ANCHOR_TOKEN:               "ANCHOR_TOKEN",
	TAG_TOKEN:                  "TAG_TOKEN",
	SCALAR_TOKEN:               "SCALAR_TOKEN",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenTypeStrings) {
		return "<unknown token>"
	}
	return tokenTypeStrings[tt]
}

// Token is one unit of scanner output. Most fields only carry data for
// particular token types, noted per field.
type Token struct {
	Type TokenType

	StartMark, EndMark Mark

	// Stream encoding, for STREAM_START_TOKEN.
	encoding Encoding

	// Alias, anchor or scalar value, or the tag/tag-directive handle, for
	// ALIAS_TOKEN, ANCHOR_TOKEN, SCALAR_TOKEN, TAG_TOKEN and
	// TAG_DIRECTIVE_TOKEN.
	Value []byte

	// Tag suffix, for TAG_TOKEN.
	suffix []byte

	// Tag directive prefix, for TAG_DIRECTIVE_TOKEN.
	prefix []byte

	// Scalar style, for SCALAR_TOKEN.
	Style ScalarStyle

	// Version directive numbers, for VERSION_DIRECTIVE_TOKEN.
	major, minor int8
}

// GetEncoding returns the stream encoding (for STREAM_START_TOKEN).
func (t *Token) GetEncoding() Encoding { return t.encoding }

// GetSuffix returns the tag suffix (for TAG_TOKEN).
func (t *Token) GetSuffix() string { return string(t.suffix) }

// GetPrefix returns the tag directive prefix (for TAG_DIRECTIVE_TOKEN).
func (t *Token) GetPrefix() string { return string(t.prefix) }

// GetMajor returns the version directive major number (for VERSION_DIRECTIVE_TOKEN).
func (t *Token) GetMajor() int { return int(t.major) }

// GetMinor returns the version directive minor number (for VERSION_DIRECTIVE_TOKEN).
func (t *Token) GetMinor() int { return int(t.minor) }

// Events

type EventType int8

const (
	NO_EVENT EventType = iota

	STREAM_START_EVENT
	STREAM_END_EVENT
	DOCUMENT_START_EVENT
	DOCUMENT_END_EVENT
	ALIAS_EVENT
	SCALAR_EVENT
	SEQUENCE_START_EVENT
	SEQUENCE_END_EVENT
	MAPPING_START_EVENT
	MAPPING_END_EVENT
)

var eventStrings = []string{
	NO_EVENT:             "none",
	STREAM_START_EVENT:   "stream start",
	STREAM_END_EVENT:     "stream end",
	DOCUMENT_START_EVENT: "document start",
	DOCUMENT_END_EVENT:   "document end",
	ALIAS_EVENT:          "alias",
	SCALAR_EVENT:         "scalar",
	SEQUENCE_START_EVENT: "sequence start",
	SEQUENCE_END_EVENT:   "sequence end",
	MAPPING_START_EVENT:  "mapping start",
	MAPPING_END_EVENT:    "mapping end",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventStrings) {
		return fmt.Sprintf("unknown event %d", e)
	}
	return eventStrings[e]
}

// Event is one unit of parser output, and the emitter's input. As with
// Token, fields carry data only for particular event types.
type Event struct {
	Type EventType

	StartMark, EndMark Mark

	// Stream encoding, for STREAM_START_EVENT.
	encoding Encoding

	// Directives, for DOCUMENT_START_EVENT.
	version_directive *VersionDirective
	tag_directives    []TagDirective

	// Anchor name, for node events and ALIAS_EVENT.
	Anchor []byte

	// Tag, for SCALAR_EVENT, SEQUENCE_START_EVENT and MAPPING_START_EVENT.
	Tag []byte

	// Scalar value, for SCALAR_EVENT.
	Value []byte

	// Whether the document marker, or the tag in plain style, may be left
	// out of the output.
	Implicit bool

	// Whether the tag may be left out in any non-plain style, for
	// SCALAR_EVENT.
	quoted_implicit bool

	// Node style, for SCALAR_EVENT, SEQUENCE_START_EVENT and
	// MAPPING_START_EVENT.
	Style Style
}

func (e *Event) ScalarStyle() ScalarStyle     { return ScalarStyle(e.Style) }
func (e *Event) SequenceStyle() SequenceStyle { return SequenceStyle(e.Style) }
func (e *Event) MappingStyle() MappingStyle   { return MappingStyle(e.Style) }

// GetEncoding returns the stream encoding (for STREAM_START_EVENT).
func (e *Event) GetEncoding() Encoding { return e.encoding }

// GetVersionDirective returns the version directive (for DOCUMENT_START_EVENT).
func (e *Event) GetVersionDirective() *VersionDirective { return e.version_directive }

// GetTagDirectives returns the tag directives (for DOCUMENT_START_EVENT).
func (e *Event) GetTagDirectives() []TagDirective { return e.tag_directives }

// Full forms of the yaml.org shorthand tags.
const (
	NULL_TAG      = "tag:yaml.org,2002:null"      // !!null
	BOOL_TAG      = "tag:yaml.org,2002:bool"      // !!bool
	STR_TAG       = "tag:yaml.org,2002:str"       // !!str
	INT_TAG       = "tag:yaml.org,2002:int"       // !!int
	FLOAT_TAG     = "tag:yaml.org,2002:float"     // !!float
	TIMESTAMP_TAG = "tag:yaml.org,2002:timestamp" // !!timestamp

	SEQ_TAG = "tag:yaml.org,2002:seq" // !!seq
	MAP_TAG = "tag:yaml.org,2002:map" // !!map

	BINARY_TAG = "tag:yaml.org,2002:binary" // !!binary
	MERGE_TAG  = "tag:yaml.org,2002:merge"  // !!merge

	// Fallbacks applied by the resolver when a node carries no tag.
	DEFAULT_SCALAR_TAG   = STR_TAG
	DEFAULT_SEQUENCE_TAG = SEQ_TAG
	DEFAULT_MAPPING_TAG  = MAP_TAG
)
