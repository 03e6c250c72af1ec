package lsp

import (
	"context"
	"encoding/json"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/catalog"
	"github.com/basil-lang/basil/internal/basic/scan"
)

func (s *Server) handleSemanticTokensFull(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.SemanticTokensParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc, ok := s.document(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	return &protocol.SemanticTokens{
		Data: semanticTokens(doc.Content),
	}, nil
}

// tokenEncoder accumulates LSP delta-encoded semantic tokens.
type tokenEncoder struct {
	data     []uint32
	prevLine uint32
	prevChar uint32
}

func (e *tokenEncoder) add(line, char, length, tokenType uint32) {
	deltaLine := line - e.prevLine
	deltaStart := char
	if deltaLine == 0 {
		deltaStart = char - e.prevChar
	}
	e.data = append(e.data, deltaLine, deltaStart, length, tokenType, 0)
	e.prevLine = line
	e.prevChar = char
}

// semanticTokens produces the full-document token stream: line numbers
// and literals as numbers, string literals, comments to end of line,
// identifiers classified against the keyword and function catalogs, and
// single-character operators.
func semanticTokens(content string) []uint32 {
	enc := &tokenEncoder{data: []uint32{}}

	for row, line := range docLines(content) {
		upper := strings.ToUpper(line)
		pos := len(line) - len(strings.TrimLeft(line, " \t"))

		// Leading BASIC line number.
		trimmed := line[pos:]
		first := trimmed
		if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
			first = trimmed[:i]
		}
		if first != "" && isInteger(first) {
			enc.add(uint32(row), uint32(pos), uint32(len(first)), tokenNumber)
			pos += len(first)
		}

		// A comment swallows the rest of the row.
		rest := upper[pos:]
		restTrimmed := strings.TrimLeft(rest, " \t")
		if strings.HasPrefix(restTrimmed, "REM") || strings.HasPrefix(restTrimmed, "'") {
			start := pos + len(rest) - len(restTrimmed)
			enc.add(uint32(row), uint32(start), uint32(len(line)-start), tokenComment)
			continue
		}

		tokenizeRow(enc, line, upper, pos, row)
	}

	return enc.data
}

func tokenizeRow(enc *tokenEncoder, line, upper string, pos, row int) {
	for pos < len(line) {
		b := line[pos]

		if b == ' ' || b == '\t' {
			pos++
			continue
		}

		if b == '"' {
			end := scan.ScanString(line, pos)
			enc.add(uint32(row), uint32(pos), uint32(end-pos), tokenString)
			pos = end
			continue
		}

		if scan.IsDigit(b) || (b == '&' && pos+1 < len(line) && upper[pos+1] == 'H') {
			end := scan.ScanNumber(line, pos)
			enc.add(uint32(row), uint32(pos), uint32(end-pos), tokenNumber)
			pos = end
			continue
		}

		if scan.IsAlpha(b) || b == '_' {
			end := pos
			for end < len(line) && scan.IsWordChar(line[end]) {
				end++
			}
			word := upper[pos:end]

			tokenType := uint32(tokenVariable)
			if catalog.IsKeyword(word) {
				tokenType = tokenKeyword
			} else if catalog.IsFunction(word) {
				tokenType = tokenFunction
			}

			enc.add(uint32(row), uint32(pos), uint32(end-pos), tokenType)
			pos = end
			continue
		}

		if isOperatorByte(b) {
			enc.add(uint32(row), uint32(pos), 1, tokenOperator)
		}
		pos++
	}
}

func isOperatorByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '^', '=', '<', '>', '(', ')', ',', ';', ':':
		return true
	}
	return false
}
