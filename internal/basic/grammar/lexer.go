// Package grammar is the tokenizer and parser used by diagnostics to
// classify a document as syntactically valid. Only the success/failure
// outcome and the error message leave this package; no syntax tree is
// built. Everything else in the analysis engine scans text directly and
// works even when Parse fails.
package grammar

import (
	"strings"

	"github.com/basil-lang/basil/internal/basic/scan"
)

type TokenKind int

const (
	TokenEOL TokenKind = iota
	TokenNumber
	TokenString
	TokenIdent
	TokenOperator
	TokenEOF
)

// Token carries its source row so the parser can report the BASIC line
// number of the row the error occurred on.
type Token struct {
	Kind TokenKind
	Text string
	Row  int
}

// Lexer splits source text into row-delimited tokens.
type Lexer struct {
	src string
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize scans the whole document. Comments (REM or ') swallow the
// rest of their row; every row ends with an EOL token and the stream
// ends with EOF.
func (l *Lexer) Tokenize() []Token {
	var toks []Token

	for row, line := range strings.Split(l.src, "\n") {
		pos := 0
		for pos < len(line) {
			b := line[pos]

			switch {
			case b == ' ' || b == '\t':
				pos++

			case b == '\'':
				pos = len(line)

			case b == '"':
				end := scan.ScanString(line, pos)
				toks = append(toks, Token{Kind: TokenString, Text: line[pos:end], Row: row})
				pos = end

			case scan.IsDigit(b), b == '&' && pos+1 < len(line) && upperAt(line, pos+1) == 'H':
				end := scan.ScanNumber(line, pos)
				toks = append(toks, Token{Kind: TokenNumber, Text: line[pos:end], Row: row})
				pos = end

			case scan.IsAlpha(b) || b == '_':
				end := pos
				for end < len(line) && scan.IsWordChar(line[end]) {
					end++
				}
				word := strings.ToUpper(line[pos:end])
				if word == "REM" {
					pos = len(line)
					break
				}
				toks = append(toks, Token{Kind: TokenIdent, Text: word, Row: row})
				pos = end

			default:
				toks = append(toks, Token{Kind: TokenOperator, Text: line[pos : pos+1], Row: row})
				pos++
			}
		}
		toks = append(toks, Token{Kind: TokenEOL, Row: row})
	}

	toks = append(toks, Token{Kind: TokenEOF, Row: -1})
	return toks
}

func upperAt(s string, i int) byte {
	b := s[i]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return b
}
