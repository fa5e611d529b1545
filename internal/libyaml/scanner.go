// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Scanner stage: Transforms the input stream into a token stream.
//
// The scanner produces the following tokens:
//
//      STREAM-START(encoding)          # The stream start.
//      STREAM-END                      # The stream end.
//      VERSION-DIRECTIVE(major,minor)  # The '%YAML' directive.
//      TAG-DIRECTIVE(handle,prefix)    # The '%TAG' directive.
//      DOCUMENT-START                  # '---'
//      DOCUMENT-END                    # '...'
//      BLOCK-SEQUENCE-START            # Indentation increase denoting a block
//      BLOCK-MAPPING-START             # sequence or a block mapping.
//      BLOCK-END                       # Indentation decrease.
//      FLOW-SEQUENCE-START             # '['
//      FLOW-SEQUENCE-END               # ']'
//      FLOW-MAPPING-START              # '{'
//      FLOW-MAPPING-END                # '}'
//      BLOCK-ENTRY                     # '-'
//      FLOW-ENTRY                      # ','
//      KEY                             # '?' or nothing (simple keys).
//      VALUE                           # ':'
//      ALIAS(anchor)                   # '*anchor'
//      ANCHOR(anchor)                  # '&anchor'
//      TAG(handle,suffix)              # '!handle!suffix'
//      SCALAR(value,style)             # A scalar.
//
// Two aspects of scanning require a bit of cleverness: the beginning of
// block collections, and simple keys.
//
// There are no tokens corresponding to the start of a block sequence or a
// block mapping in the text.  Their starts are detected by watching the
// current indentation level: whenever it increases under a '-' or a key
// position, a BLOCK-SEQUENCE-START or BLOCK-MAPPING-START token is
// produced, and whenever it decreases, matching BLOCK-END tokens are
// produced.  The indentation levels are kept in a stack so that nested
// collections unwind correctly.
//
// A simple key is a mapping key that is not denoted by the '?' indicator,
// such as
//
//      key: value
//
// While scanning 'key' the scanner cannot yet know whether it is a key or
// a plain scalar, so the position where a simple key could have started is
// remembered, and when a ':' indicator is found afterwards a KEY token is
// inserted into the token queue before the tokens produced for the key
// itself.  A simple key must be limited to a single line and at most 1024
// characters; positions violating these restrictions are discarded, which
// is also why the token queue may need to hold more than one token before
// the parser can consume the head.

package libyaml

import (
	"bytes"
	"fmt"
	"io"
)

// Scan gets the next token.
func (parser *Parser) Scan(token *Token) error {
	// Erase the token object.
	*token = Token{}

	if parser.lastError != nil {
		return parser.lastError
	}

	// No tokens after the end of the stream or error.
	if parser.stream_end_produced {
		return io.EOF
	}

	// Ensure that the tokens queue contains enough tokens.
	if !parser.token_available {
		if err := parser.fetchMoreTokens(); err != nil {
			parser.lastError = err
			return err
		}
	}

	// Fetch the next token from the queue.
	*token = parser.tokens[parser.tokens_head]
	parser.tokens_head++
	parser.tokens_parsed++
	parser.token_available = false

	if token.Type == STREAM_END_TOKEN {
		parser.stream_end_produced = true
	}
	return nil
}

// formatScannerError creates a ScannerError with the given problem message
// and mark position.
func formatScannerError(problem string, problem_mark Mark) error {
	return ScannerError{
		Mark:    problem_mark,
		Message: problem,
	}
}

// formatScannerErrorContext creates a ScannerError with both context and
// problem information, each with their own mark positions.
func formatScannerErrorContext(context string, context_mark Mark, problem string, problem_mark Mark) error {
	return ScannerError{
		ContextMark:    context_mark,
		ContextMessage: context,

		Mark:    problem_mark,
		Message: problem,
	}
}

// formatScannerTagError creates a ScannerError for tag scanning problems,
// either inside a %TAG directive or a tag token.
func formatScannerTagError(directive bool, context_mark Mark, problem string, problem_mark Mark) error {
	context := "while parsing a tag"
	if directive {
		context = "while parsing a %TAG directive"
	}
	return formatScannerErrorContext(context, context_mark, problem, problem_mark)
}

// Advance the buffer pointer.
func (parser *Parser) skip() {
	parser.mark.Index++
	parser.mark.Column++
	parser.unread--
	parser.buffer_pos += width(parser.buffer[parser.buffer_pos])
}

// Advance the buffer pointer over a line break.
func (parser *Parser) skipLine() {
	if isCRLF(parser.buffer, parser.buffer_pos) {
		parser.mark.Index += 2
		parser.mark.Column = 0
		parser.mark.Line++
		parser.unread -= 2
		parser.buffer_pos += 2
	} else if isLineBreak(parser.buffer, parser.buffer_pos) {
		parser.mark.Index++
		parser.mark.Column = 0
		parser.mark.Line++
		parser.unread--
		parser.buffer_pos += width(parser.buffer[parser.buffer_pos])
	}
}

// Copy a character to a string buffer and advance pointers.
func (parser *Parser) read(s []byte) []byte {
	w := width(parser.buffer[parser.buffer_pos])
	if w == 0 {
		panic("invalid character sequence")
	}
	if len(s) == 0 {
		s = make([]byte, 0, 32)
	}
	if w == 1 && len(s)+w <= cap(s) {
		s = s[:len(s)+1]
		s[len(s)-1] = parser.buffer[parser.buffer_pos]
		parser.buffer_pos++
	} else {
		s = append(s, parser.buffer[parser.buffer_pos:parser.buffer_pos+w]...)
		parser.buffer_pos += w
	}
	parser.mark.Index++
	parser.mark.Column++
	parser.unread--
	return s
}

// Copy a line break character to a string buffer and advance pointers.
func (parser *Parser) readLine(s []byte) []byte {
	buf := parser.buffer
	pos := parser.buffer_pos
	switch {
	case buf[pos] == '\r' && buf[pos+1] == '\n':
		// CR LF . LF
		s = append(s, '\n')
		parser.buffer_pos += 2
		parser.mark.Index++
		parser.unread--
	case buf[pos] == '\r' || buf[pos] == '\n':
		// CR|LF . LF
		s = append(s, '\n')
		parser.buffer_pos += 1
	case buf[pos] == '\xC2' && buf[pos+1] == '\x85':
		// NEL . LF
		s = append(s, '\n')
		parser.buffer_pos += 2
	case buf[pos] == '\xE2' && buf[pos+1] == '\x80' && (buf[pos+2] == '\xA8' || buf[pos+2] == '\xA9'):
		// LS|PS . LS|PS
		s = append(s, buf[parser.buffer_pos:pos+3]...)
		parser.buffer_pos += 3
	default:
		return s
	}
	parser.mark.Index++
	parser.mark.Column = 0
	parser.mark.Line++
	parser.unread--
	return s
}

// Ensure that the tokens queue contains at least one token which can be
// returned to the parser.
func (parser *Parser) fetchMoreTokens() error {
	// While we need more tokens to fetch, do it.
	for {
		// Check if we really need to fetch more tokens.
		need_more_tokens := false

		if parser.tokens_head == len(parser.tokens) {
			// Queue is empty.
			need_more_tokens = true
		} else {
			// Check if any potential simple key may occupy the head position.
			if err := parser.staleSimpleKeys(); err != nil {
				return err
			}

			if parser.simple_key_possible && parser.simple_key.token_number == parser.tokens_parsed {
				need_more_tokens = true
			} else {
				for i := range parser.simple_key_stack {
					simple_key := &parser.simple_key_stack[i]
					if simple_key.token_number != 0 && simple_key.token_number == parser.tokens_parsed {
						need_more_tokens = true
						break
					}
				}
			}
		}

		// We are finished.
		if !need_more_tokens {
			break
		}
		// Fetch the next token.
		if err := parser.fetchNextToken(); err != nil {
			return err
		}
	}

	parser.token_available = true
	return nil
}

// The dispatcher for token fetchers.
func (parser *Parser) fetchNextToken() error {
	// Ensure that the buffer is initialized.
	if err := parser.cache(1); err != nil {
		return err
	}

	// Check if we just started scanning.  Fetch STREAM-START then.
	if !parser.stream_start_produced {
		return parser.fetchStreamStart()
	}

	// Eat whitespaces and comments until we reach the next token.
	if err := parser.scanToNextToken(); err != nil {
		return err
	}

	// Remove obsolete potential simple keys.
	if err := parser.staleSimpleKeys(); err != nil {
		return err
	}

	// Check the indentation level against the current column.
	parser.unrollIndent(parser.mark.Column)

	// Ensure that the buffer contains at least 4 characters.  4 is the length
	// of the longest indicators ('--- ' and '... ').
	if err := parser.cache(4); err != nil {
		return err
	}

	// Is it the end of the stream?
	if isZeroChar(parser.buffer, parser.buffer_pos) {
		return parser.fetchStreamEnd()
	}

	// Is it a directive?
	if parser.mark.Column == 0 && parser.buffer[parser.buffer_pos] == '%' {
		return parser.fetchDirective()
	}

	buf := parser.buffer
	pos := parser.buffer_pos

	// Is it the document start indicator?
	if parser.mark.Column == 0 && buf[pos] == '-' && buf[pos+1] == '-' && buf[pos+2] == '-' && isBlankOrZero(buf, pos+3) {
		return parser.fetchDocumentIndicator(DOCUMENT_START_TOKEN)
	}

	// Is it the document end indicator?
	if parser.mark.Column == 0 && buf[pos] == '.' && buf[pos+1] == '.' && buf[pos+2] == '.' && isBlankOrZero(buf, pos+3) {
		return parser.fetchDocumentIndicator(DOCUMENT_END_TOKEN)
	}

	// Is it the flow sequence start indicator?
	if buf[pos] == '[' {
		return parser.fetchFlowCollectionStart(FLOW_SEQUENCE_START_TOKEN)
	}

	// Is it the flow mapping start indicator?
	if buf[pos] == '{' {
		return parser.fetchFlowCollectionStart(FLOW_MAPPING_START_TOKEN)
	}

	// Is it the flow sequence end indicator?
	if buf[pos] == ']' {
		return parser.fetchFlowCollectionEnd(FLOW_SEQUENCE_END_TOKEN)
	}

	// Is it the flow mapping end indicator?
	if buf[pos] == '}' {
		return parser.fetchFlowCollectionEnd(FLOW_MAPPING_END_TOKEN)
	}

	// Is it the flow entry indicator?
	if buf[pos] == ',' {
		return parser.fetchFlowEntry()
	}

	// Is it the block entry indicator?
	if buf[pos] == '-' && isBlankOrZero(buf, pos+1) {
		return parser.fetchBlockEntry()
	}

	// Is it the key indicator?
	if buf[pos] == '?' && (parser.flow_level > 0 || isBlankOrZero(buf, pos+1)) {
		return parser.fetchKey()
	}

	// Is it the value indicator?
	if buf[pos] == ':' && (parser.flow_level > 0 || isBlankOrZero(buf, pos+1)) {
		return parser.fetchValue()
	}

	// Is it an alias?
	if buf[pos] == '*' {
		return parser.fetchAnchor(ALIAS_TOKEN)
	}

	// Is it an anchor?
	if buf[pos] == '&' {
		return parser.fetchAnchor(ANCHOR_TOKEN)
	}

	// Is it a tag?
	if buf[pos] == '!' {
		return parser.fetchTag()
	}

	// Is it a literal scalar?
	if buf[pos] == '|' && parser.flow_level == 0 {
		return parser.fetchBlockScalar(true)
	}

	// Is it a folded scalar?
	if buf[pos] == '>' && parser.flow_level == 0 {
		return parser.fetchBlockScalar(false)
	}

	// Is it a single-quoted scalar?
	if buf[pos] == '\'' {
		return parser.fetchFlowScalar(true)
	}

	// Is it a double-quoted scalar?
	if buf[pos] == '"' {
		return parser.fetchFlowScalar(false)
	}

	// Is it a plain scalar?
	//
	// A plain scalar may start with any non-blank characters except
	//
	//      '-', '?', ':', ',', '[', ']', '{', '}',
	//      '#', '&', '*', '!', '|', '>', '\'', '\"',
	//      '%', '@', '`'.
	//
	// In the block context (and, for the '-' indicator, in the flow context
	// too), it may also start with the characters
	//
	//      '-', '?', ':'
	//
	// if it is followed by a non-space character.
	if !(isBlankOrZero(buf, pos) || buf[pos] == '-' ||
		buf[pos] == '?' || buf[pos] == ':' ||
		buf[pos] == ',' || buf[pos] == '[' ||
		buf[pos] == ']' || buf[pos] == '{' ||
		buf[pos] == '}' || buf[pos] == '#' ||
		buf[pos] == '&' || buf[pos] == '*' ||
		buf[pos] == '!' || buf[pos] == '|' ||
		buf[pos] == '>' || buf[pos] == '\'' ||
		buf[pos] == '"' || buf[pos] == '%' ||
		buf[pos] == '@' || buf[pos] == '`') ||
		(buf[pos] == '-' && !isBlank(buf, pos+1)) ||
		(parser.flow_level == 0 &&
			(buf[pos] == '?' || buf[pos] == ':') &&
			!isBlankOrZero(buf, pos+1)) {
		return parser.fetchPlainScalar()
	}

	// If we don't determine the token type so far, it is an error.
	return formatScannerErrorContext(
		"while scanning for the next token", parser.mark,
		"found character that cannot start any token", parser.mark)
}

// Check the list of potential simple keys and remove the positions that
// cannot contain simple keys anymore.
func (parser *Parser) staleSimpleKeys() error {
	// The specification requires that a simple key
	//
	//  - is limited to a single line,
	//  - is shorter than 1024 characters.
	if parser.simple_key_possible {
		simple_key := &parser.simple_key
		if simple_key.mark.Line < parser.mark.Line || simple_key.mark.Index+1024 < parser.mark.Index {
			// Check if the potential simple key to be removed is required.
			if simple_key.required {
				return formatScannerErrorContext(
					"while scanning a simple key", simple_key.mark,
					"could not find expected ':'", parser.mark)
			}
			parser.simple_key_possible = false
		}
	}

	// Check the potential simple keys of the enclosing flow levels.
	for i := range parser.simple_key_stack {
		simple_key := &parser.simple_key_stack[i]
		if simple_key.token_number == 0 {
			continue
		}
		if simple_key.mark.Line < parser.mark.Line || simple_key.mark.Index+1024 < parser.mark.Index {
			if simple_key.required {
				return formatScannerErrorContext(
					"while scanning a simple key", simple_key.mark,
					"could not find expected ':'", parser.mark)
			}
			simple_key.token_number = 0
		}
	}
	return nil
}

// Check if a simple key may start at the current position and save it if
// needed.
func (parser *Parser) saveSimpleKey() error {
	// A simple key is required at the current position if the scanner is in
	// the block context and the current column coincides with the indentation
	// level.
	required := parser.flow_level == 0 && parser.indent == parser.mark.Column

	// A simple key is required only when it is the first token in the current
	// line.  Therefore it is always allowed.  But we add a check anyway.
	if required && !parser.simple_key_allowed {
		panic("should not happen")
	}

	// If the current position may start a simple key, save it.
	if parser.simple_key_allowed {
		simple_key := SimpleKey{
			flow_level:   parser.flow_level,
			required:     required,
			token_number: parser.tokens_parsed + (len(parser.tokens) - parser.tokens_head),
			mark:         parser.mark,
		}

		if err := parser.removeSimpleKey(); err != nil {
			return err
		}
		parser.simple_key = simple_key
		parser.simple_key_possible = true
	}
	return nil
}

// Remove a potential simple key at the current flow level.
func (parser *Parser) removeSimpleKey() error {
	if parser.simple_key_possible {
		// If the key is required, it is an error.
		if parser.simple_key.required {
			return formatScannerErrorContext(
				"while scanning a simple key", parser.simple_key.mark,
				"could not find expected ':'", parser.mark)
		}
		parser.simple_key_possible = false
	}
	return nil
}

// max_flow_level limits the flow_level
const max_flow_level = 10000

// max_indents limits the indents stack size
const max_indents = 10000

// Increase the flow level, saving any potential simple key of the current
// level on the stack.
func (parser *Parser) increaseFlowLevel() error {
	if parser.flow_level >= max_flow_level {
		return formatScannerErrorContext(
			"while increasing flow level", parser.simple_key.mark,
			fmt.Sprintf("exceeded max depth of %d", max_flow_level), parser.mark)
	}

	if parser.simple_key_possible {
		parser.simple_key_stack = append(parser.simple_key_stack, parser.simple_key)
	} else {
		parser.simple_key_stack = append(parser.simple_key_stack, SimpleKey{})
	}
	parser.simple_key = SimpleKey{}
	parser.simple_key_possible = false

	parser.flow_level++
	return nil
}

// Decrease the flow level, restoring the potential simple key of the
// enclosing level.
func (parser *Parser) decreaseFlowLevel() {
	if parser.flow_level > 0 {
		parser.flow_level--
		last := len(parser.simple_key_stack) - 1
		parser.simple_key = parser.simple_key_stack[last]
		parser.simple_key_stack = parser.simple_key_stack[:last]
		parser.simple_key_possible = parser.simple_key.token_number != 0
	}
}

// Push the current indentation level to the stack and set the new level if
// the current column is greater than the indentation level.  In this case,
// append or insert the specified token into the token queue.
func (parser *Parser) rollIndent(column, number int, typ TokenType, mark Mark) error {
	// In the flow context, do nothing.
	if parser.flow_level > 0 {
		return nil
	}

	if parser.indent < column {
		// Push the current indentation level to the stack and set the new
		// indentation level.
		parser.indents = append(parser.indents, parser.indent)
		parser.indent = column
		if len(parser.indents) > max_indents {
			return formatScannerErrorContext(
				"while increasing indent level", parser.simple_key.mark,
				fmt.Sprintf("exceeded max depth of %d", max_indents), parser.mark)
		}

		// Create a token and insert it into the queue.
		token := Token{
			Type:      typ,
			StartMark: mark,
			EndMark:   mark,
		}
		if number > -1 {
			number -= parser.tokens_parsed
		}
		parser.insertToken(number, &token)
	}
	return nil
}

// Pop indentation levels from the indents stack until the current level
// becomes less or equal to the column.  For each indentation level, append
// the BLOCK-END token.
func (parser *Parser) unrollIndent(column int) {
	// In the flow context, do nothing.
	if parser.flow_level > 0 {
		return
	}

	// Loop through the indentation levels in the stack.
	for parser.indent > column {
		// Create a token and append it to the queue.
		token := Token{
			Type:      BLOCK_END_TOKEN,
			StartMark: parser.mark,
			EndMark:   parser.mark,
		}
		parser.insertToken(-1, &token)

		// Pop the indentation level.
		parser.indent = parser.indents[len(parser.indents)-1]
		parser.indents = parser.indents[:len(parser.indents)-1]
	}
}

// Initialize the scanner and produce the STREAM-START token.
func (parser *Parser) fetchStreamStart() error {
	// Set the initial indentation.
	parser.indent = -1

	// A simple key is allowed at the beginning of the stream.
	parser.simple_key_allowed = true

	// We have started.
	parser.stream_start_produced = true

	// Create the STREAM-START token and append it to the queue.
	token := Token{
		Type:      STREAM_START_TOKEN,
		StartMark: parser.mark,
		EndMark:   parser.mark,
		encoding:  parser.encoding,
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the STREAM-END token and shut down the scanner.
func (parser *Parser) fetchStreamEnd() error {
	// Force new line.
	if parser.mark.Column != 0 {
		parser.mark.Column = 0
		parser.mark.Line++
	}

	// Reset the indentation level.
	parser.unrollIndent(-1)

	// Reset simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	parser.simple_key_allowed = false

	// Create the STREAM-END token and append it to the queue.
	token := Token{
		Type:      STREAM_END_TOKEN,
		StartMark: parser.mark,
		EndMark:   parser.mark,
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce a VERSION-DIRECTIVE or TAG-DIRECTIVE token.
func (parser *Parser) fetchDirective() error {
	// Reset the indentation level.
	parser.unrollIndent(-1)

	// Reset simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	parser.simple_key_allowed = false

	// Create the YAML-DIRECTIVE or TAG-DIRECTIVE token.
	token := Token{}
	if err := parser.scanDirective(&token); err != nil {
		return err
	}
	// Unknown directives are consumed without producing a token.
	if token.Type != NO_TOKEN {
		parser.insertToken(-1, &token)
	}
	return nil
}

// Produce the DOCUMENT-START or DOCUMENT-END token.
func (parser *Parser) fetchDocumentIndicator(typ TokenType) error {
	// Reset the indentation level.
	parser.unrollIndent(-1)

	// Reset simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	parser.simple_key_allowed = false

	// Consume the token.
	start_mark := parser.mark

	parser.skip()
	parser.skip()
	parser.skip()

	end_mark := parser.mark

	// Create the DOCUMENT-START or DOCUMENT-END token.
	token := Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	}
	// Append the token to the queue.
	parser.insertToken(-1, &token)
	return nil
}

// Produce the FLOW-SEQUENCE-START or FLOW-MAPPING-START token.
func (parser *Parser) fetchFlowCollectionStart(typ TokenType) error {
	// The indicators '[' and '{' may start a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// Increase the flow level.
	if err := parser.increaseFlowLevel(); err != nil {
		return err
	}

	// A simple key may follow the indicators '[' and '{'.
	parser.simple_key_allowed = true

	// Consume the token.
	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	// Create the FLOW-SEQUENCE-START or FLOW-MAPPING-START token.
	token := Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	}
	// Append the token to the queue.
	parser.insertToken(-1, &token)
	return nil
}

// Produce the FLOW-SEQUENCE-END or FLOW-MAPPING-END token.
func (parser *Parser) fetchFlowCollectionEnd(typ TokenType) error {
	// Reset any potential simple key on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Decrease the flow level.
	parser.decreaseFlowLevel()

	// No simple keys after the indicators ']' and '}'.
	parser.simple_key_allowed = false

	// Consume the token.
	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	// Create the FLOW-SEQUENCE-END or FLOW-MAPPING-END token.
	token := Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	}
	// Append the token to the queue.
	parser.insertToken(-1, &token)
	return nil
}

// Produce the FLOW-ENTRY token.
func (parser *Parser) fetchFlowEntry() error {
	// Reset any potential simple keys on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Simple keys are allowed after ','.
	parser.simple_key_allowed = true

	// Consume the token.
	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	// Create the FLOW-ENTRY token and append it to the queue.
	token := Token{
		Type:      FLOW_ENTRY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the BLOCK-ENTRY token.
func (parser *Parser) fetchBlockEntry() error {
	// Check if the scanner is in the block context.
	if parser.flow_level == 0 {
		// Check if we are allowed to start a new entry.
		if !parser.simple_key_allowed {
			return formatScannerError(
				"block sequence entries are not allowed in this context", parser.mark)
		}
		// Add the BLOCK-SEQUENCE-START token if needed.
		if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_SEQUENCE_START_TOKEN, parser.mark); err != nil {
			return err
		}
	} else {
		// It is an error for the '-' indicator to occur in the flow context,
		// but we let the parser detect and report it, because the parser is
		// able to point to the context.
	}

	// Reset any potential simple keys on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Simple keys are allowed after '-'.
	parser.simple_key_allowed = true

	// Consume the token.
	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	// Create the BLOCK-ENTRY token and append it to the queue.
	token := Token{
		Type:      BLOCK_ENTRY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the KEY token.
func (parser *Parser) fetchKey() error {
	// In the block context, additional checks are required.
	if parser.flow_level == 0 {
		// Check if we are allowed to start a new key (not necessarily simple).
		if !parser.simple_key_allowed {
			return formatScannerError(
				"mapping keys are not allowed in this context", parser.mark)
		}
		// Add the BLOCK-MAPPING-START token if needed.
		if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark); err != nil {
			return err
		}
	}

	// Reset any potential simple keys on the current flow level.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// Simple keys are allowed after '?' in the block context.
	parser.simple_key_allowed = parser.flow_level == 0

	// Consume the token.
	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	// Create the KEY token and append it to the queue.
	token := Token{
		Type:      KEY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the VALUE token.
func (parser *Parser) fetchValue() error {
	// Have we found a simple key?
	if parser.simple_key_possible {
		simple_key := parser.simple_key

		// Create the KEY token and insert it into the queue.
		token := Token{
			Type:      KEY_TOKEN,
			StartMark: simple_key.mark,
			EndMark:   simple_key.mark,
		}
		parser.insertToken(simple_key.token_number-parser.tokens_parsed, &token)

		// In the block context, we may need to add the BLOCK-MAPPING-START token.
		if err := parser.rollIndent(simple_key.mark.Column,
			simple_key.token_number,
			BLOCK_MAPPING_START_TOKEN, simple_key.mark); err != nil {
			return err
		}

		// Remove the simple key.
		parser.simple_key_possible = false

		// A simple key cannot follow another simple key.
		parser.simple_key_allowed = false

	} else {
		// The ':' indicator follows a complex key.

		// In the block context, extra checks are required.
		if parser.flow_level == 0 {
			// Check if we are allowed to start a complex value.
			if !parser.simple_key_allowed {
				return formatScannerError(
					"mapping values are not allowed in this context", parser.mark)
			}

			// Add the BLOCK-MAPPING-START token if needed.
			if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark); err != nil {
				return err
			}
		}

		// Simple keys after ':' are allowed in the block context.
		parser.simple_key_allowed = parser.flow_level == 0
	}

	// Consume the token.
	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	// Create the VALUE token and append it to the queue.
	token := Token{
		Type:      VALUE_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the ALIAS or ANCHOR token.
func (parser *Parser) fetchAnchor(typ TokenType) error {
	// An anchor or an alias could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow an anchor or an alias.
	parser.simple_key_allowed = false

	// Create the ALIAS or ANCHOR token and append it to the queue.
	var token Token
	if err := parser.scanAnchor(&token, typ); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the TAG token.
func (parser *Parser) fetchTag() error {
	// A tag could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow a tag.
	parser.simple_key_allowed = false

	// Create the TAG token and append it to the queue.
	var token Token
	if err := parser.scanTag(&token); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the SCALAR(...,literal) or SCALAR(...,folded) tokens.
func (parser *Parser) fetchBlockScalar(literal bool) error {
	// Remove any potential simple keys.
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	// A simple key may follow a block scalar.
	parser.simple_key_allowed = true

	// Create the SCALAR token and append it to the queue.
	var token Token
	if err := parser.scanBlockScalar(&token, literal); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the SCALAR(...,single-quoted) or SCALAR(...,double-quoted) tokens.
func (parser *Parser) fetchFlowScalar(single bool) error {
	// A quoted scalar could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow a flow scalar.
	parser.simple_key_allowed = false

	// Create the SCALAR token and append it to the queue.
	var token Token
	if err := parser.scanFlowScalar(&token, single); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Produce the SCALAR(...,plain) token.
func (parser *Parser) fetchPlainScalar() error {
	// A plain scalar could be a simple key.
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}

	// A simple key cannot follow a plain scalar.
	parser.simple_key_allowed = false

	// Create the SCALAR token and append it to the queue.
	var token Token
	if err := parser.scanPlainScalar(&token); err != nil {
		return err
	}
	parser.insertToken(-1, &token)
	return nil
}

// Eat whitespaces and comments until the next token is found.
func (parser *Parser) scanToNextToken() error {
	// Until the next token is not found.
	for {
		// Allow the BOM mark to start a line.
		if err := parser.cache(1); err != nil {
			return err
		}
		if parser.mark.Column == 0 && isBOM(parser.buffer, parser.buffer_pos) {
			parser.skip()
		}

		// Eat whitespaces.
		// Tabs are allowed:
		//  - in the flow context
		//  - in the block context, but not at the beginning of the line or
		//  after '-', '?', or ':' (complex value).
		if err := parser.cache(1); err != nil {
			return err
		}

		for parser.buffer[parser.buffer_pos] == ' ' || ((parser.flow_level > 0 || !parser.simple_key_allowed) && parser.buffer[parser.buffer_pos] == '\t') {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}

		// Eat a comment until a line break.
		if parser.buffer[parser.buffer_pos] == '#' {
			for !isBreakOrZero(parser.buffer, parser.buffer_pos) {
				parser.skip()
				if err := parser.cache(1); err != nil {
					return err
				}
			}
		}

		// If it is a line break, eat it.
		if isLineBreak(parser.buffer, parser.buffer_pos) {
			if err := parser.cache(2); err != nil {
				return err
			}
			parser.skipLine()

			// In the block context, a new line may start a simple key.
			if parser.flow_level == 0 {
				parser.simple_key_allowed = true
			}
		} else {
			break // We have found a token.
		}
	}

	return nil
}

// Scan a YAML-DIRECTIVE or TAG-DIRECTIVE token.
//
// Scope:
//      %YAML    1.1    # a comment \n
//      ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
//      %TAG    !yaml!  tag:yaml.org,2002:  \n
//      ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
func (parser *Parser) scanDirective(token *Token) error {
	// Eat '%'.
	start_mark := parser.mark
	parser.skip()

	// Scan the directive name.
	var name []byte
	if err := parser.scanDirectiveName(start_mark, &name); err != nil {
		return err
	}

	// Is it a YAML directive?
	if bytes.Equal(name, []byte("YAML")) {
		// Scan the VERSION directive value.
		var major, minor int8
		if err := parser.scanVersionDirectiveValue(start_mark, &major, &minor); err != nil {
			return err
		}
		end_mark := parser.mark

		// Create a VERSION-DIRECTIVE token.
		*token = Token{
			Type:      VERSION_DIRECTIVE_TOKEN,
			StartMark: start_mark,
			EndMark:   end_mark,
			major:     major,
			minor:     minor,
		}

		// Is it a TAG directive?
	} else if bytes.Equal(name, []byte("TAG")) {
		// Scan the TAG directive value.
		var handle, prefix []byte
		if err := parser.scanTagDirectiveValue(start_mark, &handle, &prefix); err != nil {
			return err
		}
		end_mark := parser.mark

		// Create a TAG-DIRECTIVE token.
		*token = Token{
			Type:      TAG_DIRECTIVE_TOKEN,
			StartMark: start_mark,
			EndMark:   end_mark,
			Value:     handle,
			prefix:    prefix,
		}

		// Unknown directive.
	} else {
		// Consume the rest of the line without producing a token.
		if err := parser.cache(1); err != nil {
			return err
		}
		for !isBreakOrZero(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
	}

	// Eat the rest of the line including any comments.
	if err := parser.cache(1); err != nil {
		return err
	}

	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	if parser.buffer[parser.buffer_pos] == '#' {
		for !isBreakOrZero(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
	}

	// Check if we are at the end of the line.
	if !isBreakOrZero(parser.buffer, parser.buffer_pos) {
		return formatScannerErrorContext(
			"while scanning a directive", start_mark,
			"did not find expected comment or line break", parser.mark)
	}

	// Eat a line break.
	if isLineBreak(parser.buffer, parser.buffer_pos) {
		if err := parser.cache(2); err != nil {
			return err
		}
		parser.skipLine()
	}

	return nil
}

// Scan the directive name.
//
// Scope:
//      %YAML   1.1     # a comment \n
//       ^^^^
//      %TAG    !yaml!  tag:yaml.org,2002:  \n
//       ^^^
func (parser *Parser) scanDirectiveName(start_mark Mark, name *[]byte) error {
	// Consume the directive name.
	if err := parser.cache(1); err != nil {
		return err
	}

	var s []byte
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	// Check if the name is empty.
	if len(s) == 0 {
		return formatScannerErrorContext(
			"while scanning a directive", start_mark,
			"could not find expected directive name", parser.mark)
	}

	// Check for a blank character after the name.
	if !isBlankOrZero(parser.buffer, parser.buffer_pos) {
		return formatScannerErrorContext(
			"while scanning a directive", start_mark,
			"found unexpected non-alphabetical character", parser.mark)
	}
	*name = s
	return nil
}

// Scan the value of VERSION-DIRECTIVE.
//
// Scope:
//      %YAML   1.1     # a comment \n
//           ^^^^^^
func (parser *Parser) scanVersionDirectiveValue(start_mark Mark, major, minor *int8) error {
	// Eat whitespaces.
	if err := parser.cache(1); err != nil {
		return err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	// Consume the major version number.
	if err := parser.scanVersionDirectiveNumber(start_mark, major); err != nil {
		return err
	}

	// Eat '.'.
	if parser.buffer[parser.buffer_pos] != '.' {
		return formatScannerErrorContext(
			"while scanning a %YAML directive", start_mark,
			"did not find expected digit or '.' character", parser.mark)
	}

	parser.skip()

	// Consume the minor version number.
	return parser.scanVersionDirectiveNumber(start_mark, minor)
}

const max_number_length = 2

// Scan the version number of VERSION-DIRECTIVE.
//
// Scope:
//      %YAML   1.1     # a comment \n
//              ^
//      %YAML   1.1     # a comment \n
//                ^
func (parser *Parser) scanVersionDirectiveNumber(start_mark Mark, number *int8) error {
	// Repeat while the next character is digit.
	if err := parser.cache(1); err != nil {
		return err
	}
	var value, length int8
	for isDigit(parser.buffer, parser.buffer_pos) {
		// Check if the number is too long.
		length++
		if length > max_number_length {
			return formatScannerErrorContext(
				"while scanning a %YAML directive", start_mark,
				"found extremely long version number", parser.mark)
		}
		value = value*10 + int8(asDigit(parser.buffer, parser.buffer_pos))
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	// Check if the number was present.
	if length == 0 {
		return formatScannerErrorContext(
			"while scanning a %YAML directive", start_mark,
			"did not find expected version number", parser.mark)
	}
	*number = value
	return nil
}

// Scan the value of a TAG-DIRECTIVE token.
//
// Scope:
//      %TAG    !yaml!  tag:yaml.org,2002:  \n
//          ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
func (parser *Parser) scanTagDirectiveValue(start_mark Mark, handle, prefix *[]byte) error {
	var handle_value, prefix_value []byte

	// Eat whitespaces.
	if err := parser.cache(1); err != nil {
		return err
	}

	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	// Scan a handle.
	if err := parser.scanTagHandle(true, start_mark, &handle_value); err != nil {
		return err
	}

	// Expect a whitespace.
	if err := parser.cache(1); err != nil {
		return err
	}
	if !isBlank(parser.buffer, parser.buffer_pos) {
		return formatScannerErrorContext(
			"while scanning a %TAG directive", start_mark,
			"did not find expected whitespace", parser.mark)
	}

	// Eat whitespaces.
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	// Scan a prefix.
	if err := parser.scanTagURI(true, true, nil, start_mark, &prefix_value); err != nil {
		return err
	}

	// Expect a whitespace or line break.
	if err := parser.cache(1); err != nil {
		return err
	}
	if !isBlankOrZero(parser.buffer, parser.buffer_pos) {
		return formatScannerErrorContext(
			"while scanning a %TAG directive", start_mark,
			"did not find expected whitespace or line break", parser.mark)
	}

	*handle = handle_value
	*prefix = prefix_value
	return nil
}

// Scan an ALIAS or ANCHOR token value.
func (parser *Parser) scanAnchor(token *Token, typ TokenType) error {
	var s []byte

	// Eat the indicator character.
	start_mark := parser.mark
	parser.skip()

	// Consume the value.
	if err := parser.cache(1); err != nil {
		return err
	}

	for isAnchorChar(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	end_mark := parser.mark

	// Check if length of the anchor is greater than 0 and it is followed by
	// a whitespace character or one of the indicators:
	//
	//      '?', ':', ',', ']', '}', '%', '@', '`'.
	if len(s) == 0 ||
		!(isBlankOrZero(parser.buffer, parser.buffer_pos) || parser.buffer[parser.buffer_pos] == '?' ||
			parser.buffer[parser.buffer_pos] == ':' || parser.buffer[parser.buffer_pos] == ',' ||
			parser.buffer[parser.buffer_pos] == ']' || parser.buffer[parser.buffer_pos] == '}' ||
			parser.buffer[parser.buffer_pos] == '%' || parser.buffer[parser.buffer_pos] == '@' ||
			parser.buffer[parser.buffer_pos] == '`') {
		context := "while scanning an alias"
		if typ == ANCHOR_TOKEN {
			context = "while scanning an anchor"
		}
		return formatScannerErrorContext(context, start_mark,
			"did not find expected alphabetic or numeric character", parser.mark)
	}

	// Create a token.
	*token = Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
	}

	return nil
}

// Scan a TAG token.
func (parser *Parser) scanTag(token *Token) error {
	var handle, suffix []byte

	start_mark := parser.mark

	// Check if the tag is in the canonical form.
	if err := parser.cache(2); err != nil {
		return err
	}

	if parser.buffer[parser.buffer_pos+1] == '<' {
		// Keep the handle as ''.

		// Eat '!<'.
		parser.skip()
		parser.skip()

		// Consume the tag value.
		if err := parser.scanTagURI(true, false, nil, start_mark, &suffix); err != nil {
			return err
		}

		// Check for '>' and eat it.
		if parser.buffer[parser.buffer_pos] != '>' {
			return formatScannerErrorContext(
				"while scanning a tag", start_mark,
				"did not find the expected '>'", parser.mark)
		}

		parser.skip()
	} else {
		// The tag has either the '!suffix' or the '!handle!suffix' form.

		// First, try to scan a handle.
		if err := parser.scanTagHandle(false, start_mark, &handle); err != nil {
			return err
		}

		// Check if it is, indeed, a handle.
		if handle[0] == '!' && len(handle) > 1 && handle[len(handle)-1] == '!' {
			// Scan the suffix now.
			if err := parser.scanTagURI(false, false, nil, start_mark, &suffix); err != nil {
				return err
			}
		} else {
			// It wasn't a handle after all.  Scan the rest of the tag.
			if err := parser.scanTagURI(false, false, handle, start_mark, &suffix); err != nil {
				return err
			}

			// Set the handle to '!'.
			handle = []byte{'!'}

			// A special case: the '!' tag.  Set the handle to '' and the
			// suffix to '!'.
			if len(suffix) == 0 {
				handle, suffix = suffix, handle
			}
		}
	}

	// Check the character which ends the tag.
	if err := parser.cache(1); err != nil {
		return err
	}
	if !isBlankOrZero(parser.buffer, parser.buffer_pos) {
		return formatScannerErrorContext(
			"while scanning a tag", start_mark,
			"did not find expected whitespace or line break", parser.mark)
	}

	end_mark := parser.mark

	// Create a token.
	*token = Token{
		Type:      TAG_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     handle,
		suffix:    suffix,
	}
	return nil
}

// Scan a tag handle.
func (parser *Parser) scanTagHandle(directive bool, start_mark Mark, handle *[]byte) error {
	// Check the initial '!' character.
	if err := parser.cache(1); err != nil {
		return err
	}
	if parser.buffer[parser.buffer_pos] != '!' {
		return formatScannerTagError(directive,
			start_mark, "did not find expected '!'", parser.mark)
	}

	var s []byte

	// Copy the '!' character.
	s = parser.read(s)

	// Copy all subsequent alphabetical and numerical characters.
	if err := parser.cache(1); err != nil {
		return err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	// Check if the trailing character is '!' and copy it.
	if parser.buffer[parser.buffer_pos] == '!' {
		s = parser.read(s)
	} else {
		// It's either the '!' tag or not really a tag handle.  If it's a %TAG
		// directive, it's an error.  If it's a tag token, it must be a part
		// of the URI.
		if directive && string(s) != "!" {
			return formatScannerTagError(directive,
				start_mark, "did not find expected '!'", parser.mark)
		}
	}

	*handle = s
	return nil
}

// Scan a tag URI.
func (parser *Parser) scanTagURI(verbatim, directive bool, head []byte, start_mark Mark, uri *[]byte) error {
	var s []byte
	length := len(head)

	// Copy the head if needed.
	//
	// Note that we don't copy the leading '!' character.
	if length > 0 {
		s = append(s, head[1:]...)
	}

	// Scan the tag.
	if err := parser.cache(1); err != nil {
		return err
	}

	// The set of characters that may appear in URI is as follows:
	//
	//      '0'-'9', 'A'-'Z', 'a'-'z', '_', '-', ';', '/', '?', ':', '@', '&',
	//      '=', '+', '$', '.', '!', '~', '*', '\'', '(', ')', '%'.
	//
	// The ',', '[' and ']' characters are accepted only in verbatim tags
	// and %TAG directive prefixes, where no surrounding flow context can
	// terminate the tag early.
	for isTagURIChar(parser.buffer, parser.buffer_pos, verbatim) {
		// Check if it is a URI-escape sequence.
		if parser.buffer[parser.buffer_pos] == '%' {
			if err := parser.scanURIEscapes(directive, start_mark, &s); err != nil {
				return err
			}
		} else {
			s = parser.read(s)
		}
		length++
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	// Check if the tag is non-empty.
	if length == 0 {
		return formatScannerTagError(directive,
			start_mark, "did not find expected tag URI", parser.mark)
	}
	*uri = s
	return nil
}

// Decode a URI-escape sequence corresponding to a single UTF-8 character.
func (parser *Parser) scanURIEscapes(directive bool, start_mark Mark, s *[]byte) error {
	// Decode the required number of characters.
	w := 1024
	for w > 0 {
		// Check for a URI-escaped octet.
		if err := parser.cache(3); err != nil {
			return err
		}

		if !(parser.buffer[parser.buffer_pos] == '%' &&
			isHex(parser.buffer, parser.buffer_pos+1) &&
			isHex(parser.buffer, parser.buffer_pos+2)) {
			return formatScannerTagError(directive,
				start_mark, "did not find URI escaped octet", parser.mark)
		}

		// Get the octet.
		octet := byte((asHex(parser.buffer, parser.buffer_pos+1) << 4) + asHex(parser.buffer, parser.buffer_pos+2))

		// If it is the leading octet, determine the length of the UTF-8 sequence.
		if w == 1024 {
			w = width(octet)
			if w == 0 {
				return formatScannerTagError(directive,
					start_mark, "found an incorrect leading UTF-8 octet", parser.mark)
			}
		} else {
			// Check if the trailing octet is correct.
			if octet&0xC0 != 0x80 {
				return formatScannerTagError(directive,
					start_mark, "found an incorrect trailing UTF-8 octet", parser.mark)
			}
		}

		// Copy the octet and move the pointers.
		*s = append(*s, octet)
		parser.skip()
		parser.skip()
		parser.skip()
		w--
	}
	return nil
}

// Scan a block scalar.
func (parser *Parser) scanBlockScalar(token *Token, literal bool) error {
	// Eat the indicator '|' or '>'.
	start_mark := parser.mark
	parser.skip()

	// Scan the additional block scalar indicators.
	if err := parser.cache(1); err != nil {
		return err
	}

	// Check for a chomping indicator.
	var chomping, increment int
	if parser.buffer[parser.buffer_pos] == '+' || parser.buffer[parser.buffer_pos] == '-' {
		// Set the chomping method and eat the indicator.
		if parser.buffer[parser.buffer_pos] == '+' {
			chomping = +1
		} else {
			chomping = -1
		}
		parser.skip()

		// Check for an indentation indicator.
		if err := parser.cache(1); err != nil {
			return err
		}
		if isDigit(parser.buffer, parser.buffer_pos) {
			// Check that the indentation is greater than 0.
			if parser.buffer[parser.buffer_pos] == '0' {
				return formatScannerErrorContext(
					"while scanning a block scalar", start_mark,
					"found an indentation indicator equal to 0", parser.mark)
			}

			// Get the indentation level and eat the indicator.
			increment = asDigit(parser.buffer, parser.buffer_pos)
			parser.skip()
		}

	} else if isDigit(parser.buffer, parser.buffer_pos) {
		// Do the same as above, but in the opposite order.

		if parser.buffer[parser.buffer_pos] == '0' {
			return formatScannerErrorContext(
				"while scanning a block scalar", start_mark,
				"found an indentation indicator equal to 0", parser.mark)
		}
		increment = asDigit(parser.buffer, parser.buffer_pos)
		parser.skip()

		if err := parser.cache(1); err != nil {
			return err
		}
		if parser.buffer[parser.buffer_pos] == '+' || parser.buffer[parser.buffer_pos] == '-' {
			if parser.buffer[parser.buffer_pos] == '+' {
				chomping = +1
			} else {
				chomping = -1
			}
			parser.skip()
		}
	}

	// Eat whitespaces and comments to the end of the line.
	if err := parser.cache(1); err != nil {
		return err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}
	if parser.buffer[parser.buffer_pos] == '#' {
		for !isBreakOrZero(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
	}

	// Check if we are at the end of the line.
	if !isBreakOrZero(parser.buffer, parser.buffer_pos) {
		return formatScannerErrorContext(
			"while scanning a block scalar", start_mark,
			"did not find expected comment or line break", parser.mark)
	}

	// Eat a line break.
	if isLineBreak(parser.buffer, parser.buffer_pos) {
		if err := parser.cache(2); err != nil {
			return err
		}
		parser.skipLine()
	}

	end_mark := parser.mark

	// Set the indentation level if it was specified.
	var indent int
	if increment > 0 {
		if parser.indent >= 0 {
			indent = parser.indent + increment
		} else {
			indent = increment
		}
	}

	// Scan the leading line breaks and determine the indentation level if needed.
	var s, leading_break, trailing_breaks []byte
	if err := parser.scanBlockScalarBreaks(&indent, &trailing_breaks, start_mark, &end_mark); err != nil {
		return err
	}

	// Scan the block scalar content.
	if err := parser.cache(1); err != nil {
		return err
	}
	var leading_blank, trailing_blank bool
	for parser.mark.Column == indent && !isZeroChar(parser.buffer, parser.buffer_pos) {
		// We are at the beginning of a non-empty line.

		// Is it a trailing whitespace?
		trailing_blank = isBlank(parser.buffer, parser.buffer_pos)

		// Check if we need to fold the leading line break.
		if !literal && !leading_blank && !trailing_blank && len(leading_break) > 0 && leading_break[0] == '\n' {
			// Do we need to join the lines by space?
			if len(trailing_breaks) == 0 {
				s = append(s, ' ')
			}
		} else {
			s = append(s, leading_break...)
		}
		leading_break = leading_break[:0]

		// Append the remaining line breaks.
		s = append(s, trailing_breaks...)
		trailing_breaks = trailing_breaks[:0]

		// Is it a leading whitespace?
		leading_blank = isBlank(parser.buffer, parser.buffer_pos)

		// Consume the current line.
		for !isBreakOrZero(parser.buffer, parser.buffer_pos) {
			s = parser.read(s)
			if err := parser.cache(1); err != nil {
				return err
			}
		}

		// Consume the line break.
		if err := parser.cache(2); err != nil {
			return err
		}

		leading_break = parser.readLine(leading_break)

		// Eat the following indentation spaces and line breaks.
		if err := parser.scanBlockScalarBreaks(&indent, &trailing_breaks, start_mark, &end_mark); err != nil {
			return err
		}
	}

	// Chomp the tail.
	if chomping != -1 {
		s = append(s, leading_break...)
	}
	if chomping == 1 {
		s = append(s, trailing_breaks...)
	}

	// Create a token.
	*token = Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
		Style:     LITERAL_SCALAR_STYLE,
	}
	if !literal {
		token.Style = FOLDED_SCALAR_STYLE
	}
	return nil
}

// Scan indentation spaces and line breaks for a block scalar.  Determine
// the indentation level if needed.
func (parser *Parser) scanBlockScalarBreaks(indent *int, breaks *[]byte, start_mark Mark, end_mark *Mark) error {
	*end_mark = parser.mark

	// Eat the indentation spaces and line breaks.
	max_indent := 0
	for {
		// Eat the indentation spaces.
		if err := parser.cache(1); err != nil {
			return err
		}
		for (*indent == 0 || parser.mark.Column < *indent) && isSpace(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
		if parser.mark.Column > max_indent {
			max_indent = parser.mark.Column
		}

		// Check for a tab character messing the indentation.
		if (*indent == 0 || parser.mark.Column < *indent) && isTab(parser.buffer, parser.buffer_pos) {
			return formatScannerErrorContext(
				"while scanning a block scalar", start_mark,
				"found a tab character where an indentation space is expected", parser.mark)
		}

		// Have we found a non-empty line?
		if !isLineBreak(parser.buffer, parser.buffer_pos) {
			break
		}

		// Consume the line break.
		if err := parser.cache(2); err != nil {
			return err
		}
		*breaks = parser.readLine(*breaks)
		*end_mark = parser.mark
	}

	// Determine the indentation level if needed.
	if *indent == 0 {
		*indent = max_indent
		if *indent < parser.indent+1 {
			*indent = parser.indent + 1
		}
		if *indent < 1 {
			*indent = 1
		}
	}
	return nil
}

// Scan a quoted scalar.
func (parser *Parser) scanFlowScalar(token *Token, single bool) error {
	// Eat the left quote.
	start_mark := parser.mark
	parser.skip()

	// Consume the content of the quoted scalar.
	var s, leading_break, trailing_breaks, whitespaces []byte
	for {
		// Check that there are no document indicators at the beginning of the line.
		if err := parser.cache(4); err != nil {
			return err
		}

		if parser.mark.Column == 0 &&
			((parser.buffer[parser.buffer_pos+0] == '-' &&
				parser.buffer[parser.buffer_pos+1] == '-' &&
				parser.buffer[parser.buffer_pos+2] == '-') ||
				(parser.buffer[parser.buffer_pos+0] == '.' &&
					parser.buffer[parser.buffer_pos+1] == '.' &&
					parser.buffer[parser.buffer_pos+2] == '.')) &&
			isBlankOrZero(parser.buffer, parser.buffer_pos+3) {
			return formatScannerErrorContext(
				"while scanning a quoted scalar", start_mark,
				"found unexpected document indicator", parser.mark)
		}

		// Check for EOF.
		if isZeroChar(parser.buffer, parser.buffer_pos) {
			return formatScannerErrorContext(
				"while scanning a quoted scalar", start_mark,
				"found unexpected end of stream", parser.mark)
		}

		// Consume non-blank characters.
		leading_blanks := false
		for !isBlankOrZero(parser.buffer, parser.buffer_pos) {
			if single && parser.buffer[parser.buffer_pos] == '\'' && parser.buffer[parser.buffer_pos+1] == '\'' {
				// It is an escaped single quote.
				s = append(s, '\'')
				parser.skip()
				parser.skip()

			} else if single && parser.buffer[parser.buffer_pos] == '\'' {
				// It is a right single quote.
				break
			} else if !single && parser.buffer[parser.buffer_pos] == '"' {
				// It is a right double quote.
				break

			} else if !single && parser.buffer[parser.buffer_pos] == '\\' && isLineBreak(parser.buffer, parser.buffer_pos+1) {
				// It is an escaped line break.
				if err := parser.cache(3); err != nil {
					return err
				}
				parser.skip()
				parser.skipLine()
				leading_blanks = true
				break

			} else if !single && parser.buffer[parser.buffer_pos] == '\\' {
				// It is an escape sequence.
				code_length := 0

				// Check the escape character.
				switch parser.buffer[parser.buffer_pos+1] {
				case '0':
					s = append(s, 0)
				case 'a':
					s = append(s, '\x07')
				case 'b':
					s = append(s, '\x08')
				case 't', '\t':
					s = append(s, '\x09')
				case 'n':
					s = append(s, '\x0A')
				case 'v':
					s = append(s, '\x0B')
				case 'f':
					s = append(s, '\x0C')
				case 'r':
					s = append(s, '\x0D')
				case 'e':
					s = append(s, '\x1B')
				case ' ':
					s = append(s, '\x20')
				case '"':
					s = append(s, '"')
				case '\'':
					s = append(s, '\'')
				case '\\':
					s = append(s, '\\')
				case 'N': // NEL (#x85)
					s = append(s, '\xC2')
					s = append(s, '\x85')
				case '_': // #xA0
					s = append(s, '\xC2')
					s = append(s, '\xA0')
				case 'L': // LS (#x2028)
					s = append(s, '\xE2')
					s = append(s, '\x80')
					s = append(s, '\xA8')
				case 'P': // PS (#x2029)
					s = append(s, '\xE2')
					s = append(s, '\x80')
					s = append(s, '\xA9')
				case 'x':
					code_length = 2
				case 'u':
					code_length = 4
				case 'U':
					code_length = 8
				default:
					return formatScannerErrorContext(
						"while parsing a quoted scalar", start_mark,
						"found unknown escape character", parser.mark)
				}

				parser.skip()
				parser.skip()

				// Consume an arbitrary escape code.
				if code_length > 0 {
					var value int

					// Scan the character value.
					if err := parser.cache(code_length); err != nil {
						return err
					}
					for k := 0; k < code_length; k++ {
						if !isHex(parser.buffer, parser.buffer_pos+k) {
							return formatScannerErrorContext(
								"while parsing a quoted scalar", start_mark,
								"did not find expected hexdecimal number", parser.mark)
						}
						value = (value << 4) + asHex(parser.buffer, parser.buffer_pos+k)
					}

					// Check the value and write the character.
					if (value >= 0xD800 && value <= 0xDFFF) || value > 0x10FFFF {
						return formatScannerErrorContext(
							"while parsing a quoted scalar", start_mark,
							"found invalid Unicode character escape code", parser.mark)
					}
					if value <= 0x7F {
						s = append(s, byte(value))
					} else if value <= 0x7FF {
						s = append(s, byte(0xC0+(value>>6)))
						s = append(s, byte(0x80+(value&0x3F)))
					} else if value <= 0xFFFF {
						s = append(s, byte(0xE0+(value>>12)))
						s = append(s, byte(0x80+((value>>6)&0x3F)))
						s = append(s, byte(0x80+(value&0x3F)))
					} else {
						s = append(s, byte(0xF0+(value>>18)))
						s = append(s, byte(0x80+((value>>12)&0x3F)))
						s = append(s, byte(0x80+((value>>6)&0x3F)))
						s = append(s, byte(0x80+(value&0x3F)))
					}

					// Advance the pointer.
					for k := 0; k < code_length; k++ {
						parser.skip()
					}
				}
			} else {
				// It is a non-escaped non-blank character.
				s = parser.read(s)
			}
			if err := parser.cache(2); err != nil {
				return err
			}
		}

		// Check if we are at the end of the scalar.
		if single {
			if parser.buffer[parser.buffer_pos] == '\'' {
				break
			}
		} else {
			if parser.buffer[parser.buffer_pos] == '"' {
				break
			}
		}

		// Consume blank characters.
		if err := parser.cache(1); err != nil {
			return err
		}

		for isBlank(parser.buffer, parser.buffer_pos) || isLineBreak(parser.buffer, parser.buffer_pos) {
			if isBlank(parser.buffer, parser.buffer_pos) {
				// Consume a space or a tab character.
				if !leading_blanks {
					whitespaces = parser.read(whitespaces)
				} else {
					parser.skip()
				}
			} else {
				if err := parser.cache(2); err != nil {
					return err
				}

				// Check if it is a first line break.
				if !leading_blanks {
					whitespaces = whitespaces[:0]
					leading_break = parser.readLine(leading_break)
					leading_blanks = true
				} else {
					trailing_breaks = parser.readLine(trailing_breaks)
				}
			}
			if err := parser.cache(1); err != nil {
				return err
			}
		}

		// Join the whitespaces or fold line breaks.
		if leading_blanks {
			// Do we need to fold line breaks?
			if len(leading_break) > 0 && leading_break[0] == '\n' {
				if len(trailing_breaks) == 0 {
					s = append(s, ' ')
				} else {
					s = append(s, trailing_breaks...)
				}
			} else {
				s = append(s, leading_break...)
				s = append(s, trailing_breaks...)
			}
			trailing_breaks = trailing_breaks[:0]
			leading_break = leading_break[:0]
		} else {
			s = append(s, whitespaces...)
			whitespaces = whitespaces[:0]
		}
	}

	// Eat the right quote.
	parser.skip()
	end_mark := parser.mark

	// Create a token.
	*token = Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
		Style:     SINGLE_QUOTED_SCALAR_STYLE,
	}
	if !single {
		token.Style = DOUBLE_QUOTED_SCALAR_STYLE
	}
	return nil
}

// Scan a plain scalar.
func (parser *Parser) scanPlainScalar(token *Token) error {
	var s, leading_break, trailing_breaks, whitespaces []byte
	var leading_blanks bool
	var indent = parser.indent + 1

	start_mark := parser.mark
	end_mark := parser.mark

	// Consume the content of the plain scalar.
	for {
		// Check for a document indicator.
		if err := parser.cache(4); err != nil {
			return err
		}
		if parser.mark.Column == 0 &&
			((parser.buffer[parser.buffer_pos+0] == '-' &&
				parser.buffer[parser.buffer_pos+1] == '-' &&
				parser.buffer[parser.buffer_pos+2] == '-') ||
				(parser.buffer[parser.buffer_pos+0] == '.' &&
					parser.buffer[parser.buffer_pos+1] == '.' &&
					parser.buffer[parser.buffer_pos+2] == '.')) &&
			isBlankOrZero(parser.buffer, parser.buffer_pos+3) {
			break
		}

		// Check for a comment.
		if parser.buffer[parser.buffer_pos] == '#' {
			break
		}

		// Consume non-blank characters.
		for !isBlankOrZero(parser.buffer, parser.buffer_pos) {
			// Check for 'x:x' in the flow context.
			if parser.flow_level > 0 &&
				parser.buffer[parser.buffer_pos] == ':' &&
				!isBlankOrZero(parser.buffer, parser.buffer_pos+1) {
				return formatScannerErrorContext(
					"while scanning a plain scalar", start_mark,
					"found unexpected ':'", parser.mark)
			}

			// Check for indicators that may end a plain scalar.
			if (parser.buffer[parser.buffer_pos] == ':' && isBlankOrZero(parser.buffer, parser.buffer_pos+1)) ||
				(parser.flow_level > 0 &&
					(parser.buffer[parser.buffer_pos] == ',' || parser.buffer[parser.buffer_pos] == ':' ||
						parser.buffer[parser.buffer_pos] == '?' || parser.buffer[parser.buffer_pos] == '[' ||
						parser.buffer[parser.buffer_pos] == ']' || parser.buffer[parser.buffer_pos] == '{' ||
						parser.buffer[parser.buffer_pos] == '}')) {
				break
			}

			// Check if we need to join whitespaces and breaks.
			if leading_blanks || len(whitespaces) > 0 {
				if leading_blanks {
					// Do we need to fold line breaks?
					if leading_break[0] == '\n' {
						if len(trailing_breaks) == 0 {
							s = append(s, ' ')
						} else {
							s = append(s, trailing_breaks...)
						}
					} else {
						s = append(s, leading_break...)
						s = append(s, trailing_breaks...)
					}
					trailing_breaks = trailing_breaks[:0]
					leading_break = leading_break[:0]
					leading_blanks = false
				} else {
					s = append(s, whitespaces...)
					whitespaces = whitespaces[:0]
				}
			}

			// Copy the character.
			s = parser.read(s)

			end_mark = parser.mark
			if err := parser.cache(2); err != nil {
				return err
			}
		}

		// Is it the end?
		if !(isBlank(parser.buffer, parser.buffer_pos) || isLineBreak(parser.buffer, parser.buffer_pos)) {
			break
		}

		// Consume blank characters.
		if err := parser.cache(1); err != nil {
			return err
		}

		for isBlank(parser.buffer, parser.buffer_pos) || isLineBreak(parser.buffer, parser.buffer_pos) {
			if isBlank(parser.buffer, parser.buffer_pos) {
				// Check for a tab character messing the indentation.
				if leading_blanks && parser.mark.Column < indent && isTab(parser.buffer, parser.buffer_pos) {
					return formatScannerErrorContext(
						"while scanning a plain scalar", start_mark,
						"found a tab character that violates indentation", parser.mark)
				}

				// Consume a space or a tab character.
				if !leading_blanks {
					whitespaces = parser.read(whitespaces)
				} else {
					parser.skip()
				}
			} else {
				if err := parser.cache(2); err != nil {
					return err
				}

				// Check if it is a first line break.
				if !leading_blanks {
					whitespaces = whitespaces[:0]
					leading_break = parser.readLine(leading_break)
					leading_blanks = true
				} else {
					trailing_breaks = parser.readLine(trailing_breaks)
				}
			}
			if err := parser.cache(1); err != nil {
				return err
			}
		}

		// Check indentation level.
		if parser.flow_level == 0 && parser.mark.Column < indent {
			break
		}
	}

	// Create a token.
	*token = Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
		Style:     PLAIN_SCALAR_STYLE,
	}

	// Note that we change the 'simple_key_allowed' flag.
	if leading_blanks {
		parser.simple_key_allowed = true
	}
	return nil
}
