// Package scan provides the lexical primitives shared by every analysis
// operation: word extraction at a cursor position, BASIC line-number
// stripping, and number/string literal scanning. All operations tokenize
// through this package so they agree on what a "word" is.
package scan

import (
	"strconv"
	"strings"
)

// IsWordChar reports whether b can appear inside a BASIC identifier.
// The '$' string-type suffix is part of the identifier; the '%', '!' and
// '#' suffixes of other dialects are not modeled and terminate a word.
func IsWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_' || b == '$'
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// WordAt returns the maximal identifier span containing the byte column
// col, expanding left and right while characters are word characters.
// A col equal to len(line) anchors at end of line. It returns "" with a
// zero span when the column is not inside a word.
func WordAt(line string, col int) (word string, start, end int) {
	if col < 0 {
		return "", 0, 0
	}
	if col > len(line) {
		col = len(line)
	}

	start = col
	for start > 0 && IsWordChar(line[start-1]) {
		start--
	}
	end = col
	for end < len(line) && IsWordChar(line[end]) {
		end++
	}

	if start == end {
		return "", 0, 0
	}
	return line[start:end], start, end
}

// LeadingNumber parses the BASIC line number at the start of a source row:
// the first whitespace-delimited token, when it is a non-negative integer.
func LeadingNumber(line string) (int, bool) {
	first := firstField(strings.TrimLeft(line, " \t"))
	if first == "" {
		return 0, false
	}
	n, err := strconv.Atoi(first)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// StripLineNumber removes a leading BASIC line number from a source row.
// It returns the statement content with leading whitespace removed and the
// byte offset at which that content starts in the original row. Rows
// without a leading number are returned unchanged with offset 0.
func StripLineNumber(line string) (content string, offset int) {
	trimmed := strings.TrimLeft(line, " \t")
	first := firstField(trimmed)
	if first != "" {
		if n, err := strconv.Atoi(first); err == nil && n >= 0 {
			rest := strings.TrimLeft(trimmed[len(first):], " \t")
			return rest, len(line) - len(rest)
		}
	}
	return line, 0
}

// ScanNumber returns the end index of the numeric literal starting at pos.
// Decimal literals may contain '.' and an exponent ('E'/'e' with optional
// sign); hexadecimal literals are prefixed '&H'. pos must be at a digit or
// at the '&' of a hex literal.
func ScanNumber(line string, pos int) int {
	if pos < len(line) && line[pos] == '&' {
		pos += 2 // &H
		for pos < len(line) && isHexDigit(line[pos]) {
			pos++
		}
		return pos
	}

	start := pos
	for pos < len(line) {
		b := line[pos]
		if IsDigit(b) || b == '.' || b == 'E' || b == 'e' {
			pos++
			continue
		}
		// A sign only continues the literal directly after the exponent.
		if (b == '+' || b == '-') && pos > start && (line[pos-1] == 'E' || line[pos-1] == 'e') {
			pos++
			continue
		}
		break
	}
	return pos
}

// ScanString returns the end index (past the closing quote) of the string
// literal starting at the '"' at pos. An unterminated literal extends to
// end of line; there is no escape processing in this dialect.
func ScanString(line string, pos int) int {
	pos++ // opening quote
	for pos < len(line) && line[pos] != '"' {
		pos++
	}
	if pos < len(line) {
		pos++ // closing quote
	}
	return pos
}

// ContainsWord reports whether line contains keyword as a whole token,
// bounded by non-alphanumeric characters. Both arguments are expected in
// the same case; callers pass uppercased text.
func ContainsWord(line, keyword string) bool {
	from := 0
	for {
		i := strings.Index(line[from:], keyword)
		if i < 0 {
			return false
		}
		i += from
		beforeOK := i == 0 || !isAlnum(line[i-1])
		after := i + len(keyword)
		afterOK := after >= len(line) || !isAlnum(line[after])
		if beforeOK && afterOK {
			return true
		}
		from = i + 1
	}
}

func isAlnum(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

func isHexDigit(b byte) bool {
	return IsDigit(b) || b >= 'A' && b <= 'F' || b >= 'a' && b <= 'f'
}

func firstField(s string) string {
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s
	}
	return s[:end]
}
