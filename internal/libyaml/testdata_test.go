// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Shared harness for the data-driven stage tests: loads case files from
// testdata/, resolves symbolic constants, and provides the handlers the
// per-stage tests dispatch through.

package libyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/yaml/pyyaml/internal/testutil/assert"
	"github.com/yaml/pyyaml/internal/testutil/datatest"
)

// NodeSpec describes an input node for pipeline stage tests.
// Used in nested test format for representer, desolver, and serializer tests.
type NodeSpec struct {
	Tag     string `yaml:"tag"`     // YAML tag (e.g., "!!int", "!!str")
	Value   string `yaml:"value"`   // Scalar value
	Kind    string `yaml:"kind"`    // Node kind: Scalar, Mapping, Sequence, Document
	Style   string `yaml:"style"`   // Style: Tagged, SingleQuoted, DoubleQuoted, Flow
	Content any    `yaml:"content"` // Nested content for collections
}

// WantSpec describes expected test results for pipeline stage tests.
// Used in nested test format for representer, desolver, and serializer tests.
type WantSpec struct {
	Tag          string `yaml:"tag"`           // Expected tag
	Value        string `yaml:"value"`         // Expected scalar value
	Kind         string `yaml:"kind"`          // Expected node kind
	Quoted       bool   `yaml:"quoted"`        // Whether scalar should be quoted
	ContentCount int    `yaml:"content_count"` // Expected number of content children
	Yaml         string `yaml:"yaml"`          // Expected YAML output
}

// TestCase represents a single test case loaded from YAML
type TestCase struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Common fields
	Yaml       string      `yaml:"yaml"`
	InputHex   string      `yaml:"input_hex"`
	InputBytes string      `yaml:"input_bytes"`
	From       any         `yaml:"from"` // Input data for tests
	Want       any         `yaml:"want"` // Expected output
	Also       string      `yaml:"also"` // Test modifiers (e.g., "unwrap")
	Like       string      `yaml:"like"` // Regex pattern to match error message
	WantSpecs  []EventSpec // Populated from Want for detailed tests

	// scan_tokens_detailed
	WantTokens []TokenSpec // Populated from Want for detailed tests

	// emit tests
	Events       []EventSpec   `yaml:"data"`
	WantContains []string      // Populated from Want for emit tests
	Config       EmitterConfig `yaml:"conf"`

	// style_accessor tests (must come before Checks due to shared yaml:"test" tag)
	StyleTest []any `yaml:"test"` // [Method, STYLE] where Method is string and STYLE is int or string constant

	// api_new tests
	Constructor string       `yaml:"with"`
	Checks      []FieldCheck `yaml:"test"`

	// encoding_detect tests
	WantEncoding string `yaml:"want_encoding"`

	// char_classify tests
	Cases []CharTestCase `yaml:"cases"`

	// yamlprivate tests (char-predicate, char-convert)
	Function string    `yaml:"func"`  // Function to call
	Input    ByteInput `yaml:"data"`  // Can be string or []int (hex bytes)
	Index    int       `yaml:"index"` // Defaults to 0

	// reader tests
	Args Args `yaml:"args"` // Arguments to pass to method (can be scalar or array)

	// writer tests
	Output string `yaml:"output_type"` // Output handler type (string, writer, error-writer)
	Data2  string `yaml:"data2"`       // Second data chunk for multi-flush tests

	// read_handler tests
	Handler  string `yaml:"handler"`
	ReadSize int    `yaml:"read_size"`
	WantData string `yaml:"want_data"`
	WantEOF  bool   `yaml:"want_eof"`

	// enum_string tests
	Enum []any `yaml:"enum"` // [Type, Value] where Type is string and Value is int or string

	// api_method, api_panic, api_delete tests, and reader tests
	Bytes  bool  `yaml:"byte"`
	Method []any `yaml:"call"`
	Setup  any   `yaml:"init"` // Can be []interface{} (api tests) or map[string]interface{} (reader tests)

	// Pipeline stage tests (representer, desolver, serializer) - nested format
	// For representer: use From for input value
	// For desolver: use Node for input node to desolve
	// For serializer: use Node for input node to serialize, Yaml for expected output
	// Note: Want field (type any) is used - cast to map in test handlers for representer/desolver
	Node   NodeSpec `yaml:"node"`   // Input/expected node specification
	Indent int      `yaml:"indent"` // Indentation setting for serializer tests

	// Error test specific fields
	As           string `yaml:"as"`            // Type name for errors.As tests
	Is           string `yaml:"is"`            // Error message for errors.Is tests
	WantAs       bool   `yaml:"want_as"`       // Expected result for errors.As
	WantIs       bool   `yaml:"want_is"`       // Expected result for errors.Is
	WantLine     int    `yaml:"want_line"`     // Expected line for ConstructError
	WantMessage  string `yaml:"want_message"`  // Expected message for ConstructError
	WantMessages []any  `yaml:"want_messages"` // Expected messages for TypeError
}

// constantRegistry holds libyaml-specific constants
var constantRegistry = datatest.NewConstantRegistry()

// constantMap maps symbolic names to integer values for case files that
// reference constants by name. It is derived in init from the typed name
// tables below so the values always track the real constants.
var constantMap = map[string]int{}

func registerConstants[T ~int | ~int8](table map[string]T) {
	for name, value := range table {
		constantMap[name] = int(value)
	}
}

func init() {
	registerConstants(eventTypeNames)
	registerConstants(tokenTypeNames)
	registerConstants(encodingNames)
	registerConstants(scalarStyleNames)
	registerConstants(sequenceStyleNames)
	registerConstants(mappingStyleNames)
	registerConstants(parserStateNames)
	registerConstants(lineBreakNames)
	registerConstants(errorTypeNames)
	for name, value := range constantMap {
		constantRegistry.Register(name, value)
	}
}

// resolveConstant converts a constant name string to its integer value
func resolveConstant(t *testing.T, name string) int {
	t.Helper()
	val, ok := constantMap[name]
	if !ok {
		t.Fatalf("unknown constant name: %s", name)
	}
	return val
}

// IntOrStr wraps the shared datatest.IntOrStr with libyaml's constant registry
type IntOrStr struct {
	datatest.IntOrStr
}

func (ios *IntOrStr) FromValue(v any) error {
	ios.Registry = constantRegistry
	return ios.IntOrStr.FromValue(v)
}

// ByteInput is an alias to the shared datatest.ByteInput
type ByteInput = datatest.ByteInput

// Args is an alias to the shared datatest.Args
type Args = datatest.Args

// EventSpec specifies an event in YAML format
type EventSpec struct {
	Type             string                `yaml:"type"`
	Encoding         string                `yaml:"encoding"`
	Implicit         bool                  `yaml:"implicit"`
	QuotedImplicit   bool                  `yaml:"quoted_implicit"`
	Anchor           string                `yaml:"anchor"`
	Tag              string                `yaml:"tag"`
	Value            string                `yaml:"value"`
	Style            string                `yaml:"style"`
	VersionDirective *VersionDirectiveSpec `yaml:"version-directive"`
	TagDirectives    []TagDirectiveSpec    `yaml:"tag-directives"`
}

// VersionDirectiveSpec specifies a version directive
type VersionDirectiveSpec struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

// TagDirectiveSpec specifies a tag directive
type TagDirectiveSpec struct {
	Handle string `yaml:"handle"`
	Prefix string `yaml:"prefix"`
}

// TokenSpec specifies a token in YAML format
type TokenSpec struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
	Style string `yaml:"style"`
}

// EmitterConfig specifies emitter configuration
type EmitterConfig struct {
	Canonical bool   `yaml:"canonical"`
	Indent    int    `yaml:"indent"`
	Width     int    `yaml:"width"`
	Unicode   bool   `yaml:"unicode"`
	LineBreak string `yaml:"line_break"`
}

// SetupSpec specifies test setup
type SetupSpec struct {
	Constructor string     `yaml:"constructor"`
	Calls       []CallSpec `yaml:"calls"`
}

// CallSpec specifies a method call
type CallSpec struct {
	Method string    `yaml:"method"`
	Args   []ArgSpec `yaml:"args"`
}

// ArgSpec specifies a method argument
type ArgSpec struct {
	Bytes  string `yaml:"bytes"`
	String string `yaml:"string"`
	Int    int    `yaml:"int"`
	Bool   bool   `yaml:"bool"`
	Hex    string `yaml:"hex"`
	Reader bool   `yaml:"reader"` // Creates a strings.Reader from String field
	Writer bool   `yaml:"writer"` // Creates a bytes.Buffer
}

// FieldCheck specifies a field check
type FieldCheck struct {
	Nil   []any `yaml:"nil"`
	Cap   []any `yaml:"cap"`
	Len   []any `yaml:"len"`
	LenGt []any `yaml:"len-gt"` // Length greater than
	Eq    []any `yaml:"eq"`
	Gte   []any `yaml:"gte"` // Greater than or equal
}

// CharTestCase represents a character classification test case
type CharTestCase struct {
	InputHex string `yaml:"input_hex"`
	Pos      int    `yaml:"pos"`
	Want     any    `yaml:"want"` // Can be bool or int
}

// unmarshalTestCases converts raw YAML data to TestCase structs using yamltest
func unmarshalTestCases(data any) ([]TestCase, error) {
	casesSlice, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("expected []interface{}, got %T", data)
	}

	var testCases []TestCase
	for i, item := range casesSlice {
		caseMap, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("test case %d: expected map[string]interface{}, got %T", i, item)
		}

		// Normalize type-as-key format for top-level test cases
		caseMap = datatest.NormalizeTypeAsKey(caseMap)

		var tc TestCase
		if err := datatest.UnmarshalStruct(&tc, caseMap); err != nil {
			return nil, fmt.Errorf("test case %d: %w", i, err)
		}
		testCases = append(testCases, tc)
	}

	return testCases, nil
}

func LoadTestCases(filename string) ([]TestCase, error) {
	// Get the path relative to this file
	_, thisFile, _, _ := runtime.Caller(0)
	dir := filepath.Dir(thisFile)
	path := filepath.Join(dir, "testdata", filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	// Load YAML using LoadAny from loader.go
	rawData, err := LoadAny(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	// Convert to TestCase structs
	cases, err := unmarshalTestCases(rawData)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal test cases from %s: %w", filename, err)
	}

	// Post-process Want into the typed fields the detailed handlers read.
	for i := range cases {
		tc := &cases[i]
		if tc.Want == nil {
			continue
		}

		switch tc.Type {
		case "parse-events-detailed":
			tc.WantSpecs, err = unpackWantSpecs[EventSpec](tc.Name, tc.Want)
			if err != nil {
				return nil, err
			}
		case "scan-tokens-detailed":
			tc.WantTokens, err = unpackWantSpecs[TokenSpec](tc.Name, tc.Want)
			if err != nil {
				return nil, err
			}
		case "emit", "emit-config", "roundtrip", "emit-writer":
			switch v := tc.Want.(type) {
			case string:
				tc.WantContains = []string{v}
			case []any:
				for _, item := range v {
					if str, ok := item.(string); ok {
						tc.WantContains = append(tc.WantContains, str)
					}
				}
			}
		}
	}

	return cases, nil
}

// unpackWantSpecs converts the raw Want sequence of a detailed case into
// typed specs. A bare string entry is shorthand for {type: <string>}.
func unpackWantSpecs[T any](name string, want any) ([]T, error) {
	wantSlice, ok := want.([]any)
	if !ok {
		return nil, fmt.Errorf("test %s: want should be a sequence, got %T", name, want)
	}
	specs := make([]T, len(wantSlice))
	for j, item := range wantSlice {
		var itemMap map[string]any
		if strVal, ok := item.(string); ok {
			itemMap = map[string]any{"type": strVal}
		} else {
			itemMap, ok = item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("test %s: want[%d] should be a map or string, got %T", name, j, item)
			}
			itemMap = datatest.NormalizeTypeAsKey(itemMap)
		}
		if err := datatest.UnmarshalStruct(&specs[j], itemMap); err != nil {
			return nil, fmt.Errorf("test %s: want[%d]: %w", name, j, err)
		}
	}
	return specs, nil
}

// lookupName resolves a symbolic name through one of the tables below,
// failing the test on an unknown name.
func lookupName[T any](t *testing.T, kind string, table map[string]T, s string) T {
	t.Helper()
	v, ok := table[s]
	if !ok {
		t.Fatalf("unknown %s: %s", kind, s)
	}
	return v
}

var eventTypeNames = map[string]EventType{
	"NO_EVENT":             NO_EVENT,
	"STREAM_START_EVENT":   STREAM_START_EVENT,
	"STREAM_END_EVENT":     STREAM_END_EVENT,
	"DOCUMENT_START_EVENT": DOCUMENT_START_EVENT,
	"DOCUMENT_END_EVENT":   DOCUMENT_END_EVENT,
	"ALIAS_EVENT":          ALIAS_EVENT,
	"SCALAR_EVENT":         SCALAR_EVENT,
	"SEQUENCE_START_EVENT": SEQUENCE_START_EVENT,
	"SEQUENCE_END_EVENT":   SEQUENCE_END_EVENT,
	"MAPPING_START_EVENT":  MAPPING_START_EVENT,
	"MAPPING_END_EVENT":    MAPPING_END_EVENT,
}

var tokenTypeNames = map[string]TokenType{
	"NO_TOKEN":                   NO_TOKEN,
	"STREAM_START_TOKEN":         STREAM_START_TOKEN,
	"STREAM_END_TOKEN":           STREAM_END_TOKEN,
	"VERSION_DIRECTIVE_TOKEN":    VERSION_DIRECTIVE_TOKEN,
	"TAG_DIRECTIVE_TOKEN":        TAG_DIRECTIVE_TOKEN,
	"DOCUMENT_START_TOKEN":       DOCUMENT_START_TOKEN,
	"DOCUMENT_END_TOKEN":         DOCUMENT_END_TOKEN,
	"BLOCK_SEQUENCE_START_TOKEN": BLOCK_SEQUENCE_START_TOKEN,
	"BLOCK_MAPPING_START_TOKEN":  BLOCK_MAPPING_START_TOKEN,
	"BLOCK_END_TOKEN":            BLOCK_END_TOKEN,
	"FLOW_SEQUENCE_START_TOKEN":  FLOW_SEQUENCE_START_TOKEN,
	"FLOW_SEQUENCE_END_TOKEN":    FLOW_SEQUENCE_END_TOKEN,
	"FLOW_MAPPING_START_TOKEN":   FLOW_MAPPING_START_TOKEN,
	"FLOW_MAPPING_END_TOKEN":     FLOW_MAPPING_END_TOKEN,
	"BLOCK_ENTRY_TOKEN":          BLOCK_ENTRY_TOKEN,
	"FLOW_ENTRY_TOKEN":           FLOW_ENTRY_TOKEN,
	"KEY_TOKEN":                  KEY_TOKEN,
	"VALUE_TOKEN":                VALUE_TOKEN,
	"ALIAS_TOKEN":                ALIAS_TOKEN,
	"ANCHOR_TOKEN":               ANCHOR_TOKEN,
	"TAG_TOKEN":                  TAG_TOKEN,
	"SCALAR_TOKEN":               SCALAR_TOKEN,
}

var encodingNames = map[string]Encoding{
	"ANY_ENCODING":     ANY_ENCODING,
	"UTF8_ENCODING":    UTF8_ENCODING,
	"UTF16LE_ENCODING": UTF16LE_ENCODING,
	"UTF16BE_ENCODING": UTF16BE_ENCODING,
}

var scalarStyleNames = map[string]ScalarStyle{
	"ANY_SCALAR_STYLE":           ANY_SCALAR_STYLE,
	"PLAIN_SCALAR_STYLE":         PLAIN_SCALAR_STYLE,
	"SINGLE_QUOTED_SCALAR_STYLE": SINGLE_QUOTED_SCALAR_STYLE,
	"DOUBLE_QUOTED_SCALAR_STYLE": DOUBLE_QUOTED_SCALAR_STYLE,
	"LITERAL_SCALAR_STYLE":       LITERAL_SCALAR_STYLE,
	"FOLDED_SCALAR_STYLE":        FOLDED_SCALAR_STYLE,
}

var sequenceStyleNames = map[string]SequenceStyle{
	"ANY_SEQUENCE_STYLE":   ANY_SEQUENCE_STYLE,
	"BLOCK_SEQUENCE_STYLE": BLOCK_SEQUENCE_STYLE,
	"FLOW_SEQUENCE_STYLE":  FLOW_SEQUENCE_STYLE,
}

var mappingStyleNames = map[string]MappingStyle{
	"ANY_MAPPING_STYLE":   ANY_MAPPING_STYLE,
	"BLOCK_MAPPING_STYLE": BLOCK_MAPPING_STYLE,
	"FLOW_MAPPING_STYLE":  FLOW_MAPPING_STYLE,
}

var parserStateNames = map[string]ParserState{
	"PARSE_STREAM_START_STATE":                      PARSE_STREAM_START_STATE,
	"PARSE_IMPLICIT_DOCUMENT_START_STATE":           PARSE_IMPLICIT_DOCUMENT_START_STATE,
	"PARSE_DOCUMENT_START_STATE":                    PARSE_DOCUMENT_START_STATE,
	"PARSE_DOCUMENT_CONTENT_STATE":                  PARSE_DOCUMENT_CONTENT_STATE,
	"PARSE_DOCUMENT_END_STATE":                      PARSE_DOCUMENT_END_STATE,
	"PARSE_BLOCK_NODE_STATE":                        PARSE_BLOCK_NODE_STATE,
	"PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE":        PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE,
	"PARSE_BLOCK_SEQUENCE_ENTRY_STATE":              PARSE_BLOCK_SEQUENCE_ENTRY_STATE,
	"PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE":         PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE,
	"PARSE_BLOCK_MAPPING_FIRST_KEY_STATE":           PARSE_BLOCK_MAPPING_FIRST_KEY_STATE,
	"PARSE_BLOCK_MAPPING_KEY_STATE":                 PARSE_BLOCK_MAPPING_KEY_STATE,
	"PARSE_BLOCK_MAPPING_VALUE_STATE":               PARSE_BLOCK_MAPPING_VALUE_STATE,
	"PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE":         PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE,
	"PARSE_FLOW_SEQUENCE_ENTRY_STATE":               PARSE_FLOW_SEQUENCE_ENTRY_STATE,
	"PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE":   PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE,
	"PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE": PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE,
	"PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE":   PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE,
	"PARSE_FLOW_MAPPING_FIRST_KEY_STATE":            PARSE_FLOW_MAPPING_FIRST_KEY_STATE,
	"PARSE_FLOW_MAPPING_KEY_STATE":                  PARSE_FLOW_MAPPING_KEY_STATE,
	"PARSE_FLOW_MAPPING_VALUE_STATE":                PARSE_FLOW_MAPPING_VALUE_STATE,
	"PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE":          PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE,
	"PARSE_END_STATE":                               PARSE_END_STATE,
}

var lineBreakNames = map[string]LineBreak{
	"ANY_BREAK":  ANY_BREAK,
	"CR_BREAK":   CR_BREAK,
	"LN_BREAK":   LN_BREAK,
	"CRLN_BREAK": CRLN_BREAK,
}

var errorTypeNames = map[string]ErrorType{
	"NO_ERROR":       NO_ERROR,
	"MEMORY_ERROR":   MEMORY_ERROR,
	"READER_ERROR":   READER_ERROR,
	"SCANNER_ERROR":  SCANNER_ERROR,
	"PARSER_ERROR":   PARSER_ERROR,
	"COMPOSER_ERROR": COMPOSER_ERROR,
	"WRITER_ERROR":   WRITER_ERROR,
	"EMITTER_ERROR":  EMITTER_ERROR,
}

// ParseEventType converts a string to EventType
func ParseEventType(t *testing.T, s string) EventType {
	t.Helper()
	return lookupName(t, "event type", eventTypeNames, s)
}

// ParseTokenType converts a string to TokenType
func ParseTokenType(t *testing.T, s string) TokenType {
	t.Helper()
	return lookupName(t, "token type", tokenTypeNames, s)
}

// ParseEncoding converts a string to Encoding
func ParseEncoding(t *testing.T, s string) Encoding {
	t.Helper()
	return lookupName(t, "encoding", encodingNames, s)
}

// ParseScalarStyle converts a string to ScalarStyle
func ParseScalarStyle(t *testing.T, s string) ScalarStyle {
	t.Helper()
	return lookupName(t, "scalar style", scalarStyleNames, s)
}

// ParseSequenceStyle converts a string to SequenceStyle
func ParseSequenceStyle(t *testing.T, s string) SequenceStyle {
	t.Helper()
	return lookupName(t, "sequence style", sequenceStyleNames, s)
}

// ParseMappingStyle converts a string to MappingStyle
func ParseMappingStyle(t *testing.T, s string) MappingStyle {
	t.Helper()
	return lookupName(t, "mapping style", mappingStyleNames, s)
}

// CreateEventFromSpec creates an Event from an EventSpec
func CreateEventFromSpec(t *testing.T, spec EventSpec) Event {
	t.Helper()
	eventType := ParseEventType(t, spec.Type)

	switch eventType {
	case STREAM_START_EVENT:
		encoding := UTF8_ENCODING
		if spec.Encoding != "" {
			encoding = ParseEncoding(t, spec.Encoding)
		}
		return NewStreamStartEvent(encoding)

	case STREAM_END_EVENT:
		return NewStreamEndEvent()

	case DOCUMENT_START_EVENT:
		vd, td := directivesFromSpec(spec)
		return NewDocumentStartEvent(vd, td, spec.Implicit)

	case DOCUMENT_END_EVENT:
		return NewDocumentEndEvent(spec.Implicit)

	case ALIAS_EVENT:
		return NewAliasEvent([]byte(spec.Anchor))

	case SCALAR_EVENT:
		style := PLAIN_SCALAR_STYLE
		if spec.Style != "" {
			style = ParseScalarStyle(t, spec.Style)
		}
		return NewScalarEvent(
			[]byte(spec.Anchor),
			[]byte(spec.Tag),
			[]byte(spec.Value),
			spec.Implicit,
			spec.QuotedImplicit,
			style,
		)

	case SEQUENCE_START_EVENT:
		style := BLOCK_SEQUENCE_STYLE
		if spec.Style != "" {
			style = ParseSequenceStyle(t, spec.Style)
		}
		return NewSequenceStartEvent(
			[]byte(spec.Anchor),
			[]byte(spec.Tag),
			spec.Implicit,
			style,
		)

	case SEQUENCE_END_EVENT:
		return NewSequenceEndEvent()

	case MAPPING_START_EVENT:
		style := BLOCK_MAPPING_STYLE
		if spec.Style != "" {
			style = ParseMappingStyle(t, spec.Style)
		}
		return NewMappingStartEvent(
			[]byte(spec.Anchor),
			[]byte(spec.Tag),
			spec.Implicit,
			style,
		)

	case MAPPING_END_EVENT:
		return NewMappingEndEvent()

	default:
		t.Fatalf("unsupported event type: %v", eventType)
		return Event{}
	}
}

// directivesFromSpec builds the document directives for a DOCUMENT_START_EVENT
// spec.
func directivesFromSpec(spec EventSpec) (*VersionDirective, []TagDirective) {
	var vd *VersionDirective
	if spec.VersionDirective != nil {
		vd = &VersionDirective{
			major: int8(spec.VersionDirective.Major),
			minor: int8(spec.VersionDirective.Minor),
		}
	}
	var td []TagDirective
	for _, tagSpec := range spec.TagDirectives {
		td = append(td, TagDirective{
			handle: []byte(tagSpec.Handle),
			prefix: []byte(tagSpec.Prefix),
		})
	}
	return vd, td
}

// HexToBytes converts a hex string to bytes
// HexToBytes is now provided by the shared datatest package
var HexToBytes = datatest.HexToBytes

// GetField is now provided by the shared datatest package
var GetField = datatest.GetField

// CreateArgValue creates a value from an ArgSpec
func CreateArgValue(t *testing.T, spec ArgSpec) any {
	t.Helper()
	if spec.Bytes != "" {
		return []byte(spec.Bytes)
	}
	if spec.String != "" {
		if spec.Reader {
			return bytes.NewReader([]byte(spec.String))
		}
		return spec.String
	}
	if spec.Hex != "" {
		return HexToBytes(t, spec.Hex)
	}
	if spec.Writer {
		return new(bytes.Buffer)
	}
	// Default to the first non-zero value
	if spec.Int != 0 {
		return spec.Int
	}
	if spec.Bool {
		return spec.Bool
	}
	return nil
}

// CallMethod is now provided by the shared datatest package
var CallMethod = datatest.CallMethod

// CreateObject creates an object using a constructor function
func CreateObject(t *testing.T, constructorName string) any {
	t.Helper()
	switch constructorName {
	case "NewParser":
		return NewParser()
	case "NewEmitter":
		return NewEmitter()
	default:
		t.Fatalf("unknown constructor: %s", constructorName)
		return nil
	}
}

// drainParser collects items from next until it reports the end of the
// stream or fails. io.EOF counts as clean termination.
func drainParser[T any](input string, next func(*Parser) (T, bool, error)) ([]T, bool) {
	parser := NewParser()
	parser.SetInputString([]byte(input))

	var items []T
	for {
		item, last, err := next(&parser)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return items, true
			}
			return nil, false
		}
		items = append(items, item)
		if last {
			return items, true
		}
	}
}

// parseEventsDetailed is a helper to parse input and return full events
func parseEventsDetailed(input string) ([]Event, bool) {
	return drainParser(input, func(p *Parser) (Event, bool, error) {
		var event Event
		err := p.Parse(&event)
		return event, event.Type == STREAM_END_EVENT, err
	})
}

// parseEvents is a helper to parse input and return event types
func parseEvents(input string) ([]EventType, bool) {
	events, ok := parseEventsDetailed(input)
	if !ok {
		return nil, false
	}
	types := make([]EventType, len(events))
	for i := range events {
		types[i] = events[i].Type
	}
	return types, true
}

// scanTokensDetailed is a helper to scan input and return full tokens
func scanTokensDetailed(input string) ([]Token, bool) {
	return drainParser(input, func(p *Parser) (Token, bool, error) {
		var token Token
		err := p.Scan(&token)
		return token, token.Type == STREAM_END_TOKEN, err
	})
}

// scanTokens is a helper to scan input and return token types
func scanTokens(input string) ([]TokenType, bool) {
	tokens, ok := scanTokensDetailed(input)
	if !ok {
		return nil, false
	}
	types := make([]TokenType, len(tokens))
	for i := range tokens {
		types[i] = tokens[i].Type
	}
	return types, true
}

// ConfigureEmitter configures an emitter from an EmitterConfig
func ConfigureEmitter(emitter *Emitter, config EmitterConfig) {
	if config.Canonical {
		emitter.SetCanonical(true)
	}
	if config.Indent > 0 {
		emitter.SetIndent(config.Indent)
	}
	if config.Width != 0 {
		emitter.SetWidth(config.Width)
	}
	if config.Unicode {
		emitter.SetUnicode(true)
	}
	if lb, ok := configLineBreaks[config.LineBreak]; ok {
		emitter.SetLineBreak(lb)
	}
}

var configLineBreaks = map[string]LineBreak{
	"LN":   LN_BREAK,
	"CR":   CR_BREAK,
	"CRLF": CRLN_BREAK,
}

// emitAndCheck pushes the events through a configured emitter and asserts
// every WantContains fragment appears in the output.
func emitAndCheck(t *testing.T, tc TestCase, events []Event, configure bool) {
	t.Helper()

	emitter := NewEmitter()
	var output []byte
	emitter.SetOutputString(&output)
	if configure {
		ConfigureEmitter(&emitter, tc.Config)
	}

	for i := range events {
		err := emitter.Emit(&events[i])
		assert.NoErrorf(t, err, "Emit() error: %v", err)
	}

	for _, expected := range tc.WantContains {
		assert.Truef(t, bytes.Contains(output, []byte(expected)),
			"output should contain %q, got %q", expected, string(output))
	}
}

// RunEmitTest runs an emit or emit-config test case
func RunEmitTest(t *testing.T, tc TestCase) {
	t.Helper()

	var events []Event
	for _, eventSpec := range tc.Events {
		events = append(events, CreateEventFromSpec(t, eventSpec))
	}
	emitAndCheck(t, tc, events, tc.Type == "emit-config")
}

// RunRoundTripTest parses the case input and emits the events back out
func RunRoundTripTest(t *testing.T, tc TestCase) {
	t.Helper()

	events, ok := parseEventsDetailed(tc.Yaml)
	assert.Truef(t, ok, "parseEventsDetailed() = %v, want true", ok)
	emitAndCheck(t, tc, events, false)
}

// GetWriter extracts an [io.Writer] from an interface value
func GetWriter(t *testing.T, v any) io.Writer {
	t.Helper()
	if w, ok := v.(io.Writer); ok {
		return w
	}
	t.Fatalf("value is not an io.Writer: %T", v)
	return nil
}

// GetReader extracts an [io.Reader] from an interface value
func GetReader(t *testing.T, v any) io.Reader {
	t.Helper()
	if r, ok := v.(io.Reader); ok {
		return r
	}
	t.Fatalf("value is not an io.Reader: %T", v)
	return nil
}

// TestHandler is a function that runs a specific test type
type TestHandler func(*testing.T, TestCase)

// RunTestCases loads test cases from a YAML file and runs them using the provided handlers
func RunTestCases(t *testing.T, filename string, handlers map[string]TestHandler) {
	t.Helper()
	cases, err := LoadTestCases(filename)
	assert.NoErrorf(t, err, "Failed to load test cases: %v", err)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			handler, ok := handlers[tc.Type]
			if !ok {
				t.Fatalf("unknown test type: %s", tc.Type)
			}
			handler(t, tc)
		})
	}
}

// WantBool extracts a bool from tc.Want, returning defaultVal if Want is nil
// WantBool is now provided by the shared datatest package
var WantBool = datatest.WantBool

// API test handlers
// These test runner functions are used by both parser and emitter tests

func runAPINewTest(t *testing.T, tc TestCase) {
	t.Helper()

	obj := createObject(t, tc.Constructor)
	runFieldChecks(t, obj, tc.Checks)
}

// runSetup applies the case's setup call, if it has one.
func runSetup(t *testing.T, obj any, tc TestCase) {
	t.Helper()
	if tc.Setup == nil {
		return
	}
	if setupList, ok := tc.Setup.([]any); ok && len(setupList) > 0 {
		callMethodFromList(t, obj, setupList, tc.Bytes)
	}
}

func runAPIMethodTest(t *testing.T, tc TestCase) {
	t.Helper()

	obj := createObject(t, tc.Constructor)
	runSetup(t, obj, tc)
	callMethodFromList(t, obj, tc.Method, tc.Bytes)
	runFieldChecks(t, obj, tc.Checks)
}

func runAPIPanicTest(t *testing.T, tc TestCase) {
	t.Helper()

	obj := createObject(t, tc.Constructor)
	runSetup(t, obj, tc)

	// The main method call should panic
	// Want can be either a string or a single-element sequence
	var wantMsg string
	switch v := tc.Want.(type) {
	case string:
		wantMsg = v
	case []any:
		if len(v) > 0 {
			msg, ok := v[0].(string)
			assert.Truef(t, ok, "Want[0] should be string, got %T", v[0])
			wantMsg = msg
		} else {
			t.Fatalf("Want slice is empty, expected at least one element")
		}
	default:
		t.Fatalf("want must be a string or sequence, got %T", tc.Want)
	}
	assert.PanicMatchesf(t, wantMsg, func() {
		callMethodFromList(t, obj, tc.Method, tc.Bytes)
	}, "Expected panic: %s", wantMsg)
}

func runAPIDeleteTest(t *testing.T, tc TestCase) {
	t.Helper()

	obj := createObject(t, tc.Constructor)
	runSetup(t, obj, tc)

	callMethodFromList(t, obj, []any{"Delete"}, false)
	runFieldChecks(t, obj, tc.Checks)
}

func runAPINewEventTest(t *testing.T, tc TestCase) {
	t.Helper()

	event := createEventFromList(t, tc.Method, tc.Bytes)
	runFieldChecks(t, &event, tc.Checks)
}

// API test helper functions
// These functions support both parser and emitter API tests

// createObject creates a Parser or Emitter based on constructor name
func createObject(t *testing.T, constructor string) any {
	t.Helper()
	switch constructor {
	case "NewParser":
		p := NewParser()
		return &p
	case "NewEmitter":
		e := NewEmitter()
		return &e
	default:
		t.Fatalf("unknown constructor: %s", constructor)
	}
	return nil
}

// createEventFromList creates an Event from a method list [constructor, args...]
// eventConstructors maps constructor names usable from case files to
// builders over the raw argument list.
var eventConstructors = map[string]func(t *testing.T, args []any, useBytes bool) Event{
	"NewStreamStartEvent": func(t *testing.T, args []any, _ bool) Event {
		wantArgCount(t, "NewStreamStartEvent", args, 1)
		return NewStreamStartEvent(Encoding(parseArg(t, args[0])))
	},
	"NewStreamEndEvent": func(t *testing.T, args []any, _ bool) Event {
		wantArgCount(t, "NewStreamEndEvent", args, 0)
		return NewStreamEndEvent()
	},
	"NewDocumentEndEvent": func(t *testing.T, args []any, _ bool) Event {
		wantArgCount(t, "NewDocumentEndEvent", args, 1)
		return NewDocumentEndEvent(parseBoolArg(t, args[0]))
	},
	"NewAliasEvent": func(t *testing.T, args []any, useBytes bool) Event {
		wantArgCount(t, "NewAliasEvent", args, 1)
		return NewAliasEvent([]byte(parseStringArg(t, args[0], useBytes)))
	},
	"NewSequenceEndEvent": func(t *testing.T, args []any, _ bool) Event {
		wantArgCount(t, "NewSequenceEndEvent", args, 0)
		return NewSequenceEndEvent()
	},
	"NewMappingEndEvent": func(t *testing.T, args []any, _ bool) Event {
		wantArgCount(t, "NewMappingEndEvent", args, 0)
		return NewMappingEndEvent()
	},
}

func wantArgCount(t *testing.T, name string, args []any, n int) {
	t.Helper()
	if len(args) != n {
		t.Fatalf("%s expects %d arguments, got %d", name, n, len(args))
	}
}

func createEventFromList(t *testing.T, methodList []any, useBytes bool) Event {
	t.Helper()
	if len(methodList) == 0 {
		t.Fatalf("empty method list")
	}

	constructor, ok := methodList[0].(string)
	if !ok {
		t.Fatalf("constructor should be string, got %T", methodList[0])
	}
	build, ok := eventConstructors[constructor]
	if !ok {
		t.Fatalf("unknown event constructor: %s", constructor)
	}
	return build(t, methodList[1:], useBytes)
}

// callMethodFromList calls a method from a list [methodName, args...]
func callMethodFromList(t *testing.T, obj any, methodList []any, useBytes bool) {
	t.Helper()
	if len(methodList) == 0 {
		t.Fatalf("empty method list")
	}

	methodName, ok := methodList[0].(string)
	if !ok {
		t.Fatalf("method name should be string, got %T", methodList[0])
	}
	args := methodList[1:]

	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	m := v.Addr().MethodByName(methodName)
	if !m.IsValid() {
		t.Fatalf("method not found: %s", methodName)
	}

	methodType := m.Type()
	numParams := methodType.NumIn()

	// Validate argument count
	if len(args) != numParams {
		t.Fatalf("method %s expects %d arguments, got %d", methodName, numParams, len(args))
	}

	// Build argument list
	var callArgs []reflect.Value
	for i, arg := range args {
		paramType := methodType.In(i)

		// Handle different parameter types
		if paramType.Kind() == reflect.Bool {
			val := parseBoolArg(t, arg)
			callArgs = append(callArgs, reflect.ValueOf(val))
		} else if paramType.Kind() == reflect.Slice && paramType.Elem().Kind() == reflect.Uint8 {
			// Byte slice parameter
			str := parseStringArg(t, arg, useBytes)
			callArgs = append(callArgs, reflect.ValueOf([]byte(str)))
		} else {
			// Try parsing as constant/int
			val := parseArg(t, arg)
			convertedVal := reflect.ValueOf(val).Convert(paramType)
			callArgs = append(callArgs, convertedVal)
		}
	}

	// Call the method
	m.Call(callArgs)
}

// parseArg parses an argument which could be int, bool, or string constant
func parseArg(t *testing.T, arg any) int {
	t.Helper()
	switch v := arg.(type) {
	case int:
		return v
	case string:
		if looksLikeConstant(v) {
			return parseConstant(t, v)
		}
		// Try parsing as int
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
		t.Fatalf("cannot parse arg as int: %v", arg)
	default:
		t.Fatalf("unsupported arg type: %T", arg)
	}
	return 0
}

// parseBoolArg parses a boolean argument
func parseBoolArg(t *testing.T, arg any) bool {
	t.Helper()
	switch v := arg.(type) {
	case bool:
		return v
	case string:
		switch v {
		case "true":
			return true
		case "false":
			return false
		default:
			t.Fatalf("cannot parse string as bool (expected 'true' or 'false'): %q", v)
		}
	default:
		t.Fatalf("cannot parse arg as bool: %v (type %T)", arg, arg)
	}
	return false
}

// parseStringArg parses a string argument
func parseStringArg(t *testing.T, arg any, useBytes bool) string {
	t.Helper()
	switch v := arg.(type) {
	case string:
		return v
	default:
		t.Fatalf("cannot parse arg as string: %v (type %T)", arg, arg)
	}
	return ""
}

// looksLikeConstant checks if a string looks like a constant name
func looksLikeConstant(s string) bool {
	if len(s) == 0 {
		return false
	}
	// Check if it's all uppercase letters, digits, and underscores
	for _, c := range s {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}
	return true
}

// parseConstant parses a constant name to its integer value
func parseConstant(t *testing.T, name string) int {
	t.Helper()
	// Handle boolean values
	if name == "true" {
		return 1
	}
	if name == "false" {
		return 0
	}

	// Try parsing as int first
	if val, err := strconv.Atoi(name); err == nil {
		return val
	}

	// Use IntOrStr to parse other constants
	ios := IntOrStr{}
	err := ios.FromValue(name)
	if err != nil {
		t.Fatalf("failed to parse constant %q: %v", name, err)
	}
	return ios.Value
}

// hasLength checks if a slice has exactly the expected length
// Returns true if length matches, false if empty, and fails fatally otherwise
func hasLength(t *testing.T, slice []any, expected int) bool {
	t.Helper()
	if len(slice) == 0 {
		return false
	}
	if len(slice) != expected {
		t.Fatalf("expected exactly %d args, got %d", expected, len(slice))
	}
	return true
}

// runFieldChecks runs field checks on an object
// fieldCheckSpec splits a two-element [field, operand] check. The bool is
// false when the check is absent; malformed entries fail the test.
func fieldCheckSpec(t *testing.T, label string, pair []any) (string, any, bool) {
	t.Helper()
	if !hasLength(t, pair, 2) {
		return "", nil, false
	}
	name, ok := pair[0].(string)
	if !ok {
		t.Fatalf("%s[0] should be string, got %T", label, pair[0])
	}
	return name, pair[1], true
}

func intOperand(t *testing.T, label string, v any) int {
	t.Helper()
	n, ok := v.(int)
	if !ok {
		t.Fatalf("%s[1] should be int, got %T", label, v)
	}
	return n
}

func runFieldChecks(t *testing.T, obj any, checks []FieldCheck) {
	t.Helper()

	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, check := range checks {
		if fieldName, operand, ok := fieldCheckSpec(t, "Nil", check.Nil); ok {
			wantNil, ok := operand.(bool)
			if !ok {
				t.Fatalf("Nil[1] should be bool, got %T", operand)
			}
			field := getField(t, v, fieldName)
			if field.IsValid() && field.IsNil() != wantNil {
				if wantNil {
					t.Errorf("%s should be nil", fieldName)
				} else {
					t.Errorf("%s should not be nil", fieldName)
				}
			}
		}

		if fieldName, operand, ok := fieldCheckSpec(t, "Cap", check.Cap); ok {
			wantCap := intOperand(t, "Cap", operand)
			field := getField(t, v, fieldName)
			if field.IsValid() && wantCap > 0 && field.Cap() != wantCap {
				t.Errorf("%s cap = %d, want %d", fieldName, field.Cap(), wantCap)
			}
		}

		if fieldName, operand, ok := fieldCheckSpec(t, "Len", check.Len); ok {
			wantLen := intOperand(t, "Len", operand)
			field := getField(t, v, fieldName)
			if field.IsValid() && wantLen > 0 && field.Len() != wantLen {
				t.Errorf("%s len = %d, want %d", fieldName, field.Len(), wantLen)
			}
		}

		if fieldName, operand, ok := fieldCheckSpec(t, "LenGt", check.LenGt); ok {
			minLen := intOperand(t, "LenGt", operand)
			field := getField(t, v, fieldName)
			if field.IsValid() && minLen > 0 && field.Len() <= minLen {
				t.Errorf("%s len = %d, want > %d", fieldName, field.Len(), minLen)
			}
		}

		if fieldName, operand, ok := fieldCheckSpec(t, "Eq", check.Eq); ok {
			checkEqual(t, v, fieldName, operand)
		}

		if fieldName, operand, ok := fieldCheckSpec(t, "Gte", check.Gte); ok {
			minValue := intOperand(t, "Gte", operand)
			field := getField(t, v, fieldName)
			if field.IsValid() {
				got := getIntValue(t, field, fieldName)
				if got < minValue {
					t.Errorf("%s = %d, want >= %d", fieldName, got, minValue)
				}
			}
		}
	}
}

// bufferIndexOf parses the buffer-N pseudo field name, returning -1 when the
// name is not of that form.
func bufferIndexOf(t *testing.T, fieldName string) int {
	t.Helper()
	if !strings.HasPrefix(fieldName, "buffer-") {
		return -1
	}
	var bufferIndex int
	if _, err := fmt.Sscanf(fieldName, "buffer-%d", &bufferIndex); err != nil {
		return -1
	}
	if bufferIndex < 0 {
		t.Fatalf("invalid buffer index: %s (index must be non-negative)", fieldName)
	}
	return bufferIndex
}

// getField retrieves a field from a struct, handling special field names
func getField(t *testing.T, v reflect.Value, fieldName string) reflect.Value {
	t.Helper()

	// buffer-N index checks are handled separately
	if bufferIndexOf(t, fieldName) >= 0 {
		return reflect.Value{}
	}

	// Convert hyphenated YAML key to underscored Go field name
	goFieldName := strings.ReplaceAll(fieldName, "-", "_")
	field := v.FieldByName(goFieldName)
	if !field.IsValid() {
		t.Fatalf("field not found: %s (looking for %s)", fieldName, goFieldName)
	}
	return field
}

// getIntValue extracts an integer value from a field
func getIntValue(t *testing.T, field reflect.Value, fieldName string) int {
	t.Helper()

	// Use reflection Kind() instead of type assertions
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(field.Uint())
	default:
		t.Fatalf("%s: expected numeric field, got %s", fieldName, field.Kind())
	}
	return 0
}

// checkBufferByte compares one byte of the buffer field against the expected
// value for a buffer-N check.
func checkBufferByte(t *testing.T, v reflect.Value, fieldName string, bufferIndex int, expectedValue any) {
	t.Helper()

	field := v.FieldByName("buffer")
	if !field.IsValid() {
		t.Fatalf("buffer field not found for %s", fieldName)
	}
	if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.Uint8 {
		t.Errorf("%s: buffer field is not a byte slice", fieldName)
		return
	}
	if bufferIndex >= field.Len() {
		t.Errorf("%s: index %d out of range (buffer len=%d)", fieldName, bufferIndex, field.Len())
		return
	}

	got := int(field.Index(bufferIndex).Uint())
	expected := expectedValue
	if str, ok := expectedValue.(string); ok && looksLikeConstant(str) {
		expected = parseConstant(t, str)
	}
	if got != expected {
		t.Errorf("%s = %v, want %v", fieldName, got, expected)
	}
}

// checkEqual performs an equality check on a field
func checkEqual(t *testing.T, v reflect.Value, fieldName string, expectedValue any) {
	t.Helper()

	if bufferIndex := bufferIndexOf(t, fieldName); bufferIndex >= 0 {
		checkBufferByte(t, v, fieldName, bufferIndex, expectedValue)
		return
	}

	field := getField(t, v, fieldName)
	if !field.IsValid() {
		return
	}

	// Parse constant if it's a string that looks like a constant name
	var expectedInt int
	var hasExpectedInt bool
	expected := expectedValue
	if str, ok := expectedValue.(string); ok && looksLikeConstant(str) {
		expectedInt = parseConstant(t, str)
		hasExpectedInt = true
	} else if intVal, ok := expectedValue.(int); ok {
		expectedInt = intVal
		hasExpectedInt = true
	}

	// Get value based on type (handle unexported fields)
	var got any

	if field.CanInterface() {
		// For exported fields, convert expected to field's type
		if hasExpectedInt {
			expected = reflect.ValueOf(expectedInt).Convert(field.Type()).Interface()
		}
		got = field.Interface()

		// Handle byte slice comparison
		if field.Type().Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.Uint8 {
			if str, ok := expected.(string); ok {
				expected = []byte(str)
			}
		}
	} else {
		// For unexported fields, use type-specific accessors
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			val := field.Int()
			if val > int64(int(^uint(0)>>1)) || val < int64(-int(^uint(0)>>1)-1) {
				t.Errorf("field %s value %d overflows int", fieldName, val)
				return
			}
			got = int(val)
			if hasExpectedInt {
				expected = expectedInt
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			val := field.Uint()
			if val > uint64(int(^uint(0)>>1)) {
				t.Errorf("field %s value %d overflows int", fieldName, val)
				return
			}
			got = int(val)
			if hasExpectedInt {
				expected = expectedInt
			}
		case reflect.Bool:
			got = field.Bool()
		case reflect.String:
			got = field.String()
		case reflect.Slice:
			// Handle byte slice comparison
			if field.Type().Elem().Kind() == reflect.Uint8 {
				got = field.Bytes()
				if str, ok := expected.(string); ok {
					expected = []byte(str)
				}
			}
		default:
			t.Errorf("cannot compare unexported field %s of kind %s", fieldName, field.Kind())
			return
		}
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("%s = %v, want %v", fieldName, got, expected)
	}
}
