// SPDX-License-Identifier: MIT
package lexer

// REF: strtod(3) for the numeric literal grammar.

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type (
	// Lexer is a byte cursor over an expression.
	//
	// The end of the source & the first NUL byte both read as EndMarker.
	Lexer struct {
		source string
		index  int
	}
)

const (
	// EndMarker is returned by Peek once the source is exhausted.
	EndMarker byte = 0

	contextLimit = 16
)

// Lexing errors.
var (
	ErrMalformedNumber = errors.New("malformed numeric literal")
)

// Improves on performance compared to ORs.
var (
	whitespace = [256]bool{
		' ':  true,
		'\t': true,
		'\n': true,
		'\v': true,
		'\f': true,
		'\r': true,
	}

	digits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
	}

	hexDigits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
		'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true,
	}

	signs = [256]bool{
		'+': true,
		'-': true,
	}

	operators = [256]bool{
		'+': true,
		'-': true,
		'*': true,
		'/': true,
		'^': true,
	}

	specialValues = []string{"infinity", "inf", "nan"}
)

// New creates a Lexer for source.
func New(source string) *Lexer {
	if end := strings.IndexByte(source, EndMarker); end > -1 {
		source = source[:end]
	}

	return &Lexer{source: source}
}

// Pos obtains the byte offset of the cursor.
func (l *Lexer) Pos() int { return l.index }

// Peek returns the byte under the cursor, without updating the index.
func (l *Lexer) Peek() byte {
	if l.index >= len(l.source) {
		return EndMarker
	}

	return l.source[l.index]
}

// Next returns the byte under the cursor & advances past it.
func (l *Lexer) Next() (b byte) {
	b = l.Peek()
	if l.index < len(l.source) {
		l.index++
	}

	return
}

// Skip advances the cursor by one byte.
func (l *Lexer) Skip() { _ = l.Next() }

// Remaining returns up to n bytes from the cursor onwards.
func (l *Lexer) Remaining(n int) string {
	end := l.index + n
	if end > len(l.source) {
		end = len(l.source)
	}

	return l.source[l.index:end]
}

// ScanNumber consumes the longest numeric literal under the cursor.
//
// The cursor is left untouched on error.
func (l *Lexer) ScanNumber() (value float64, err error) {
	rest := l.source[l.index:]

	n := scanFloat(rest)
	if n == 0 {
		err = fmt.Errorf("%w at %d: %q", ErrMalformedNumber, l.index, l.Remaining(contextLimit))
		return
	}

	if value, err = parseFloat(rest[:n]); err != nil {
		err = fmt.Errorf("%w at %d: %v", ErrMalformedNumber, l.index, err)
		return
	}
	l.index += n

	return
}

// IsWhitespace reports whether b is skippable.
func IsWhitespace(b byte) bool { return whitespace[b] }

// IsNumberStart reports whether b can open a numeric literal.
func IsNumberStart(b byte) bool { return digits[b] || signs[b] }

// IsOperator reports whether b is a binary operator.
func IsOperator(b byte) bool { return operators[b] }

// scanFloat returns the length of the longest prefix of s accepted by strtod(3).
func scanFloat(s string) (n int) {
	if n < len(s) && signs[s[n]] {
		n++
	}

	if word := scanSpecial(s[n:]); word > 0 {
		return n + word
	}
	if hex := scanHex(s[n:]); hex > 0 {
		return n + hex
	}

	mantissa := 0
	for n < len(s) && digits[s[n]] {
		n++
		mantissa++
	}

	if n < len(s) && s[n] == '.' {
		end := n + 1
		for end < len(s) && digits[s[end]] {
			end++
			mantissa++
		}
		if mantissa > 0 {
			n = end
		}
	}

	if mantissa == 0 {
		return 0
	}

	return n + scanExponent(s[n:], 'e')
}

// scanHex returns the length of a 0x prefixed literal, 0 when no hexadecimal digit follows the
// prefix.
func scanHex(s string) (n int) {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0
	}
	n = 2

	mantissa := 0
	for n < len(s) && hexDigits[s[n]] {
		n++
		mantissa++
	}

	if n < len(s) && s[n] == '.' {
		end := n + 1
		for end < len(s) && hexDigits[s[end]] {
			end++
			mantissa++
		}
		n = end
	}

	if mantissa == 0 {
		return 0
	}

	return n + scanExponent(s[n:], 'p')
}

// scanExponent returns the length of a decimal exponent introduced by marker, in either case.
//
// The exponent is only consumed when it carries digits.
func scanExponent(s string, marker byte) int {
	if len(s) < 1 || (s[0]|0x20) != marker {
		return 0
	}

	start := 1
	if start < len(s) && signs[s[start]] {
		start++
	}

	end := start
	for end < len(s) && digits[s[end]] {
		end++
	}
	if end == start {
		return 0
	}

	return end
}

// scanSpecial matches the case-insensitive infinity & NaN spellings, including NaN's optional
// parenthesized character sequence.
func scanSpecial(s string) int {
	for _, word := range specialValues {
		if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
			continue
		}

		if word == "nan" {
			return len(word) + scanNaNPayload(s[len(word):])
		}
		return len(word)
	}

	return 0
}

// scanNaNPayload returns the length of a "(n-char-sequence)" suffix, 0 when unterminated.
func scanNaNPayload(s string) int {
	if len(s) < 1 || s[0] != '(' {
		return 0
	}

	for index := 1; index < len(s); index++ {
		switch b := s[index]; {
		case b == ')':
			return index + 1
		case b == '_', digits[b], (b|0x20) >= 'a' && (b|0x20) <= 'z':
		default:
			return 0
		}
	}

	return 0
}

// parseFloat converts a literal accepted by scanFloat.
//
// Out of range magnitudes saturate to ±Inf.
func parseFloat(literal string) (value float64, err error) {
	sign := 1.0
	unsigned := literal
	if signs[literal[0]] {
		if literal[0] == '-' {
			sign = -1
		}
		unsigned = literal[1:]
	}

	switch word := strings.ToLower(unsigned); {
	case strings.HasPrefix(word, "inf"):
		value = math.Inf(int(sign))
		return
	case strings.HasPrefix(word, "nan"):
		value = math.Copysign(math.NaN(), sign)
		return
	case strings.HasPrefix(word, "0x") && !strings.ContainsRune(word, 'p'):
		// ParseFloat requires the binary exponent on hexadecimal literals.
		literal += "p0"
	}

	if value, err = strconv.ParseFloat(literal, 64); err != nil && errors.Is(err, strconv.ErrRange) {
		err = nil
	}

	return
}
