// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yaml/pyyaml/internal/testutil/assert"
)

func TestNewParser(t *testing.T) {
	parser := NewParser()

	assert.NotNilf(t, parser.raw_buffer, "NewParser() should initialize raw_buffer")
	assert.Equalf(t, input_raw_buffer_size, cap(parser.raw_buffer), "NewParser() raw_buffer capacity = %d, want %d", cap(parser.raw_buffer), input_raw_buffer_size)

	assert.NotNilf(t, parser.buffer, "NewParser() should initialize buffer")
	assert.Equalf(t, input_buffer_size, cap(parser.buffer), "NewParser() buffer capacity = %d, want %d", cap(parser.buffer), input_buffer_size)
}

func TestParserDelete(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("test"))

	parser.Delete()

	assert.Equalf(t, 0, len(parser.input), "Parser.Delete() should clear input")
	assert.Equalf(t, 0, len(parser.buffer), "Parser.Delete() should clear buffer")
}

func TestParserSetInput(t *testing.T) {
	t.Run("string source", func(t *testing.T) {
		parser := NewParser()
		input := []byte("key: value")

		parser.SetInputString(input)

		assert.Truef(t, bytes.Equal(parser.input, input), "SetInputString() input = %q, want %q", parser.input, input)
		assert.Equalf(t, 0, parser.input_pos, "SetInputString() input_pos = %d, want 0", parser.input_pos)
		assert.NotNilf(t, parser.read_handler, "SetInputString() should set read_handler")
	})

	t.Run("reader source", func(t *testing.T) {
		parser := NewParser()

		parser.SetInputReader(strings.NewReader("key: value"))

		assert.NotNilf(t, parser.input_reader, "SetInputReader() should set input_reader")
		assert.NotNilf(t, parser.read_handler, "SetInputReader() should set read_handler")
	})
}

// Input sources and encodings can be configured once only.
func TestParserSetupPanics(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pattern string
		setup   func(p *Parser)
		again   func(p *Parser)
	}{
		{
			name:    "input string twice",
			pattern: "must set the input source only once",
			setup:   func(p *Parser) { p.SetInputString([]byte("first")) },
			again:   func(p *Parser) { p.SetInputString([]byte("second")) },
		},
		{
			name:    "input reader twice",
			pattern: "must set the input source only once",
			setup:   func(p *Parser) { p.SetInputReader(strings.NewReader("first")) },
			again:   func(p *Parser) { p.SetInputReader(strings.NewReader("second")) },
		},
		{
			name:    "encoding twice",
			pattern: "must set the encoding only once",
			setup:   func(p *Parser) { p.SetEncoding(UTF8_ENCODING) },
			again:   func(p *Parser) { p.SetEncoding(UTF16LE_ENCODING) },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			parser := NewParser()
			tc.setup(&parser)
			assert.PanicMatchesf(t, tc.pattern, func() {
				tc.again(&parser)
			}, "second call should panic")
		})
	}
}

func TestParserSetEncoding(t *testing.T) {
	parser := NewParser()

	parser.SetEncoding(UTF8_ENCODING)

	assert.Equalf(t, UTF8_ENCODING, parser.encoding, "SetEncoding() encoding = %v, want %v", parser.encoding, UTF8_ENCODING)
}

func TestNewEmitter(t *testing.T) {
	emitter := NewEmitter()

	assert.NotNilf(t, emitter.buffer, "NewEmitter() should initialize buffer")
	assert.Equalf(t, output_buffer_size, len(emitter.buffer), "NewEmitter() buffer length = %d, want %d", len(emitter.buffer), output_buffer_size)
	assert.NotNilf(t, emitter.raw_buffer, "NewEmitter() should initialize raw_buffer")
	assert.NotNilf(t, emitter.states, "NewEmitter() should initialize states")
	assert.NotNilf(t, emitter.events, "NewEmitter() should initialize events")
	assert.Equalf(t, -1, emitter.best_width, "NewEmitter() best_width = %d, want -1", emitter.best_width)
}

func TestEmitterDelete(t *testing.T) {
	emitter := NewEmitter()
	var output []byte
	emitter.SetOutputString(&output)

	emitter.Delete()

	assert.IsNilf(t, emitter.output_buffer, "Emitter.Delete() should clear output_buffer")
	assert.Equalf(t, 0, len(emitter.buffer), "Emitter.Delete() should clear buffer")
}

func TestEmitterSetOutput(t *testing.T) {
	t.Run("string target", func(t *testing.T) {
		emitter := NewEmitter()
		var output []byte

		emitter.SetOutputString(&output)

		assert.Equalf(t, &output, emitter.output_buffer, "SetOutputString() should set output_buffer")
		assert.NotNilf(t, emitter.write_handler, "SetOutputString() should set write_handler")
	})

	t.Run("writer target", func(t *testing.T) {
		emitter := NewEmitter()
		var buf bytes.Buffer

		emitter.SetOutputWriter(&buf)

		assert.NotNilf(t, emitter.output_writer, "SetOutputWriter() should set output_writer")
		assert.NotNilf(t, emitter.write_handler, "SetOutputWriter() should set write_handler")
	})
}

// Output targets and encodings can be configured once only.
func TestEmitterSetupPanics(t *testing.T) {
	var out1, out2 []byte
	var buf1, buf2 bytes.Buffer

	for _, tc := range []struct {
		name    string
		pattern string
		setup   func(e *Emitter)
		again   func(e *Emitter)
	}{
		{
			name:    "output string twice",
			pattern: "must set the output target only once",
			setup:   func(e *Emitter) { e.SetOutputString(&out1) },
			again:   func(e *Emitter) { e.SetOutputString(&out2) },
		},
		{
			name:    "output writer twice",
			pattern: "must set the output target only once",
			setup:   func(e *Emitter) { e.SetOutputWriter(&buf1) },
			again:   func(e *Emitter) { e.SetOutputWriter(&buf2) },
		},
		{
			name:    "encoding twice",
			pattern: "must set the output encoding only once",
			setup:   func(e *Emitter) { e.SetEncoding(UTF8_ENCODING) },
			again:   func(e *Emitter) { e.SetEncoding(UTF16LE_ENCODING) },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			emitter := NewEmitter()
			tc.setup(&emitter)
			assert.PanicMatchesf(t, tc.pattern, func() {
				tc.again(&emitter)
			}, "second call should panic")
		})
	}
}

func TestEmitterSetCanonical(t *testing.T) {
	emitter := NewEmitter()

	emitter.SetCanonical(true)
	assert.Truef(t, emitter.canonical, "SetCanonical(true) should set canonical to true")

	emitter.SetCanonical(false)
	assert.Falsef(t, emitter.canonical, "SetCanonical(false) should set canonical to false")
}

// Out-of-range indents fall back to the default of 2.
func TestEmitterSetIndent(t *testing.T) {
	for _, tc := range []struct {
		input int
		want  int
	}{
		{2, 2},
		{5, 5},
		{9, 9},
		{1, 2},
		{10, 2},
		{-1, 2},
	} {
		emitter := NewEmitter()
		emitter.SetIndent(tc.input)

		assert.Equalf(t, tc.want, emitter.BestIndent, "SetIndent(%d) BestIndent = %d, want %d", tc.input, emitter.BestIndent, tc.want)
	}
}

// Non-positive widths mean unlimited and normalize to -1.
func TestEmitterSetWidth(t *testing.T) {
	for _, tc := range []struct {
		input int
		want  int
	}{
		{80, 80},
		{100, 100},
		{-1, -1},
		{-10, -1},
	} {
		emitter := NewEmitter()
		emitter.SetWidth(tc.input)

		assert.Equalf(t, tc.want, emitter.best_width, "SetWidth(%d) best_width = %d, want %d", tc.input, emitter.best_width, tc.want)
	}
}

func TestEmitterSetUnicode(t *testing.T) {
	emitter := NewEmitter()

	emitter.SetUnicode(true)
	assert.Truef(t, emitter.unicode, "SetUnicode(true) should set unicode to true")

	emitter.SetUnicode(false)
	assert.Falsef(t, emitter.unicode, "SetUnicode(false) should set unicode to false")
}

func TestEmitterSetLineBreak(t *testing.T) {
	emitter := NewEmitter()

	emitter.SetLineBreak(LN_BREAK)

	assert.Equalf(t, LN_BREAK, emitter.line_break, "SetLineBreak(LN_BREAK) line_break = %v, want %v", emitter.line_break, LN_BREAK)
}

func checkEventAnchorTag(t *testing.T, event *Event, anchor, tag []byte) {
	t.Helper()
	assert.Truef(t, bytes.Equal(event.Anchor, anchor), "Anchor = %q, want %q", event.Anchor, anchor)
	assert.Truef(t, bytes.Equal(event.Tag, tag), "Tag = %q, want %q", event.Tag, tag)
}

func TestStreamEvents(t *testing.T) {
	start := NewStreamStartEvent(UTF8_ENCODING)
	assert.Equalf(t, STREAM_START_EVENT, start.Type, "NewStreamStartEvent() Type = %v", start.Type)
	assert.Equalf(t, UTF8_ENCODING, start.encoding, "NewStreamStartEvent() encoding = %v", start.encoding)

	end := NewStreamEndEvent()
	assert.Equalf(t, STREAM_END_EVENT, end.Type, "NewStreamEndEvent() Type = %v", end.Type)
}

func TestDocumentEvents(t *testing.T) {
	vd := &VersionDirective{major: 1, minor: 2}
	td := []TagDirective{{handle: []byte("!"), prefix: []byte("!")}}

	start := NewDocumentStartEvent(vd, td, true)
	assert.Equalf(t, DOCUMENT_START_EVENT, start.Type, "NewDocumentStartEvent() Type = %v", start.Type)
	assert.Equalf(t, vd, start.version_directive, "NewDocumentStartEvent() version_directive = %v, want %v", start.version_directive, vd)
	assert.Equalf(t, 1, len(start.tag_directives), "NewDocumentStartEvent() tag_directives length = %d, want 1", len(start.tag_directives))
	assert.Truef(t, start.Implicit, "NewDocumentStartEvent() Implicit should be true")

	end := NewDocumentEndEvent(false)
	assert.Equalf(t, DOCUMENT_END_EVENT, end.Type, "NewDocumentEndEvent() Type = %v", end.Type)
	assert.Falsef(t, end.Implicit, "NewDocumentEndEvent() Implicit should be false")
}

func TestNewAliasEvent(t *testing.T) {
	anchor := []byte("myanchor")
	event := NewAliasEvent(anchor)

	assert.Equalf(t, ALIAS_EVENT, event.Type, "NewAliasEvent() Type = %v", event.Type)
	assert.Truef(t, bytes.Equal(event.Anchor, anchor), "NewAliasEvent() Anchor = %q, want %q", event.Anchor, anchor)
}

func TestNewScalarEvent(t *testing.T) {
	anchor := []byte("anchor")
	tag := []byte("tag")
	value := []byte("value")

	event := NewScalarEvent(anchor, tag, value, true, false, PLAIN_SCALAR_STYLE)

	assert.Equalf(t, SCALAR_EVENT, event.Type, "NewScalarEvent() Type = %v", event.Type)
	checkEventAnchorTag(t, &event, anchor, tag)
	assert.Truef(t, bytes.Equal(event.Value, value), "NewScalarEvent() Value = %q, want %q", event.Value, value)
	assert.Truef(t, event.Implicit, "NewScalarEvent() Implicit should be true")
	assert.Falsef(t, event.quoted_implicit, "NewScalarEvent() quoted_implicit should be false")
	assert.Equalf(t, PLAIN_SCALAR_STYLE, event.ScalarStyle(), "NewScalarEvent() Style = %v, want %v", event.Style, PLAIN_SCALAR_STYLE)
}

func TestCollectionEvents(t *testing.T) {
	anchor := []byte("anchor")
	tag := []byte("tag")

	seq := NewSequenceStartEvent(anchor, tag, true, BLOCK_SEQUENCE_STYLE)
	assert.Equalf(t, SEQUENCE_START_EVENT, seq.Type, "NewSequenceStartEvent() Type = %v", seq.Type)
	checkEventAnchorTag(t, &seq, anchor, tag)
	assert.Truef(t, seq.Implicit, "NewSequenceStartEvent() Implicit should be true")
	assert.Equalf(t, BLOCK_SEQUENCE_STYLE, seq.SequenceStyle(), "NewSequenceStartEvent() Style = %v, want %v", seq.Style, BLOCK_SEQUENCE_STYLE)

	seqEnd := NewSequenceEndEvent()
	assert.Equalf(t, SEQUENCE_END_EVENT, seqEnd.Type, "NewSequenceEndEvent() Type = %v", seqEnd.Type)

	mapping := NewMappingStartEvent(anchor, tag, false, FLOW_MAPPING_STYLE)
	assert.Equalf(t, MAPPING_START_EVENT, mapping.Type, "NewMappingStartEvent() Type = %v", mapping.Type)
	checkEventAnchorTag(t, &mapping, anchor, tag)
	assert.Falsef(t, mapping.Implicit, "NewMappingStartEvent() Implicit should be false")
	assert.Equalf(t, FLOW_MAPPING_STYLE, mapping.MappingStyle(), "NewMappingStartEvent() Style = %v, want %v", mapping.Style, FLOW_MAPPING_STYLE)

	mapEnd := NewMappingEndEvent()
	assert.Equalf(t, MAPPING_END_EVENT, mapEnd.Type, "NewMappingEndEvent() Type = %v", mapEnd.Type)
}

func TestEventDelete(t *testing.T) {
	event := NewScalarEvent([]byte("a"), []byte("t"), []byte("v"), true, false, PLAIN_SCALAR_STYLE)

	event.Delete()

	assert.Equalf(t, NO_EVENT, event.Type, "Event.Delete() should reset Type to NO_EVENT")
	assert.Equalf(t, 0, len(event.Anchor), "Event.Delete() should clear Anchor")
}

func TestParserInsertToken(t *testing.T) {
	t.Run("append", func(t *testing.T) {
		parser := NewParser()
		token := Token{Type: SCALAR_TOKEN, Value: []byte("test")}

		parser.insertToken(-1, &token)

		assert.Equalf(t, 1, len(parser.tokens), "insertToken() tokens length = %d, want 1", len(parser.tokens))
		assert.Equalf(t, SCALAR_TOKEN, parser.tokens[0].Type, "insertToken() token type = %v, want %v", parser.tokens[0].Type, SCALAR_TOKEN)
	})

	t.Run("insert at position", func(t *testing.T) {
		parser := NewParser()

		parser.insertToken(-1, &Token{Type: KEY_TOKEN})
		parser.insertToken(-1, &Token{Type: SCALAR_TOKEN})
		parser.insertToken(1, &Token{Type: VALUE_TOKEN})

		want := []TokenType{KEY_TOKEN, VALUE_TOKEN, SCALAR_TOKEN}
		assert.Equalf(t, len(want), len(parser.tokens), "insertToken() tokens length = %d, want %d", len(parser.tokens), len(want))
		for i, tt := range want {
			assert.Equalf(t, tt, parser.tokens[i].Type, "token[%d] type = %v, want %v", i, parser.tokens[i].Type, tt)
		}
	})
}
