// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Byte classification helpers and buffer sizing shared by the reader,
// scanner and emitter. All predicates operate on a raw byte buffer and an
// index so multi-byte UTF-8 sequences can be inspected in place.

package libyaml

const (
	// The size of the input raw buffer.
	input_raw_buffer_size = 512

	// The size of the input buffer.
	// The input buffer should be large enough to hold the contents of the
	// raw buffer after it has been decoded.
	input_buffer_size = input_raw_buffer_size * 3

	// The size of the output buffer.
	output_buffer_size = 128

	// The size of the output raw buffer.
	// The raw buffer should be able to hold the contents of the output
	// buffer after it has been encoded to UTF-16.
	output_raw_buffer_size = (output_buffer_size*2 + 2)

	// The size of other stacks and queues.
	initial_stack_size  = 16
	initial_queue_size  = 16
	initial_string_size = 16
)

// isAlpha checks if the character at position i is alphanumerical, '_' or '-'.
func isAlpha(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' || b[i] >= 'A' && b[i] <= 'Z' || b[i] >= 'a' && b[i] <= 'z' || b[i] == '_' || b[i] == '-'
}

// isDigit checks if the character at position i is a decimal digit.
func isDigit(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9'
}

// asDigit returns the value of the decimal digit at position i.
func asDigit(b []byte, i int) int {
	return int(b[i]) - '0'
}

// isHex checks if the character at position i is a hex digit.
func isHex(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' || b[i] >= 'A' && b[i] <= 'F' || b[i] >= 'a' && b[i] <= 'f'
}

// asHex returns the value of the hex digit at position i.
func asHex(b []byte, i int) int {
	bi := b[i]
	if bi >= 'A' && bi <= 'F' {
		return int(bi) - 'A' + 10
	}
	if bi >= 'a' && bi <= 'f' {
		return int(bi) - 'a' + 10
	}
	return int(bi) - '0'
}

// isASCII checks if the character at position i is ASCII.
func isASCII(b []byte, i int) bool {
	return b[i] <= 0x7F
}

// isPrintable checks if the character at the start of the buffer can be
// printed unescaped.
func isPrintable(b []byte, i int) bool {
	return ((b[i] == 0x0A) || // . == #x0A
		(b[i] >= 0x20 && b[i] <= 0x7E) || // #x20 <= . <= #x7E
		(b[i] == 0xC2 && b[i+1] >= 0xA0) || // #0xA0 <= . <= #xD7FF
		(b[i] > 0xC2 && b[i] < 0xED) ||
		(b[i] == 0xED && b[i+1] < 0xA0) ||
		(b[i] == 0xEE) ||
		(b[i] == 0xEF && // #xE000 <= . <= #xFFFD
			!(b[i+1] == 0xBB && b[i+2] == 0xBF) && // && . != #xFEFF
			!(b[i+1] == 0xBF && (b[i+2] == 0xBE || b[i+2] == 0xBF))))
}

// isZeroChar checks if the character at position i is NUL.
func isZeroChar(b []byte, i int) bool {
	return b[i] == 0x00
}

// isBOM checks if the beginning of the buffer is a BOM.
func isBOM(b []byte, i int) bool {
	return b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF
}

// isSpace checks if the character at position i is space.
func isSpace(b []byte, i int) bool {
	return b[i] == ' '
}

// isTab checks if the character at position i is tab.
func isTab(b []byte, i int) bool {
	return b[i] == '\t'
}

// isBlank checks if the character at position i is blank (space or tab).
func isBlank(b []byte, i int) bool {
	return b[i] == ' ' || b[i] == '\t'
}

// isLineBreak checks if the character at position i is a line break.
func isLineBreak(b []byte, i int) bool {
	return (b[i] == '\r' || // CR (#xD)
		b[i] == '\n' || // LF (#xA)
		b[i] == 0xC2 && b[i+1] == 0x85 || // NEL (#x85)
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA8 || // LS (#x2028)
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA9) // PS (#x2029)
}

// isCRLF checks if the character at position i is a CR LF pair.
func isCRLF(b []byte, i int) bool {
	return b[i] == '\r' && b[i+1] == '\n'
}

// isBreakOrZero checks if the character at position i is a line break or NUL.
func isBreakOrZero(b []byte, i int) bool {
	return isLineBreak(b, i) || isZeroChar(b, i)
}

// isSpaceOrZero checks if the character at position i is a space, a line
// break or NUL.
func isSpaceOrZero(b []byte, i int) bool {
	return isSpace(b, i) || isBreakOrZero(b, i)
}

// isBlankOrZero checks if the character at position i is a blank, a line
// break or NUL.
func isBlankOrZero(b []byte, i int) bool {
	return isBlank(b, i) || isBreakOrZero(b, i)
}

// isFlowIndicator checks if the character at position i is a flow
// collection indicator.
func isFlowIndicator(b []byte, i int) bool {
	switch b[i] {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

// isColon checks if the character at position i is a colon.
func isColon(b []byte, i int) bool {
	return b[i] == ':'
}

// isAnchorChar checks if the character at position i can appear in an
// anchor or alias name: any printable character except blanks, line breaks,
// flow indicators, ':' and the BOM.
func isAnchorChar(b []byte, i int) bool {
	if isBlankOrZero(b, i) || isFlowIndicator(b, i) || isColon(b, i) || isBOM(b, i) {
		return false
	}
	return isPrintable(b, i)
}

// isTagURIChar checks if the character at position i can appear in a tag
// URI. Verbatim tags are delimited by '<' and '>' and may carry the flow
// indicator characters that a tag shorthand must leave to the surrounding
// context.
func isTagURIChar(b []byte, i int, verbatim bool) bool {
	if isAlpha(b, i) {
		return true
	}
	switch b[i] {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', '.', '!', '~', '*', '\'', '(', ')', '%':
		return true
	case ',', '[', ']':
		return verbatim
	}
	return false
}

// width returns the width of a UTF-8 sequence from its first byte, or 0 for
// an invalid first byte.
func width(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}
