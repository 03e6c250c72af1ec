package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/lines"
)

// outlineKeywords are the statement keywords that earn a row an outline
// entry on their own.
var outlineKeywords = map[string]bool{
	"FOR": true, "WHILE": true, "DO": true,
	"SELECT": true, "IF": true, "GOSUB": true, "ON": true,
}

func (s *Server) handleDocumentSymbol(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.DocumentSymbolParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc, ok := s.document(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	return documentSymbols(doc.Content), nil
}

// documentSymbols builds the outline: one entry per numbered row that is
// a subroutine entry point, a comment, a DATA row, a DEF FN, or starts
// with a control-flow keyword.
func documentSymbols(content string) []protocol.DocumentSymbol {
	subTargets := lines.Parse(content).GosubTargets()

	var symbols []protocol.DocumentSymbol
	for row, line := range docLines(content) {
		trimmed := strings.TrimLeft(line, " \t")
		first, _, _ := strings.Cut(trimmed, " ")
		num, err := strconv.Atoi(first)
		if err != nil {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(first):], " \t")
		upperRest := strings.ToUpper(rest)

		var (
			name   string
			kind   protocol.SymbolKind
			detail string
		)
		switch {
		case subTargets[num]:
			name = fmt.Sprintf("%d (SUB)", num)
			kind = protocol.SymbolKindFunction
			detail = "Subroutine"
		case strings.HasPrefix(upperRest, "REM"):
			comment := strings.TrimSpace(rest[3:])
			name = fmt.Sprintf("%d REM %s", num, truncate(comment, 30))
			kind = protocol.SymbolKindString
			detail = "Comment"
		case strings.HasPrefix(rest, "'"):
			comment := strings.TrimSpace(rest[1:])
			name = fmt.Sprintf("%d ' %s", num, truncate(comment, 30))
			kind = protocol.SymbolKindString
			detail = "Comment"
		case strings.HasPrefix(upperRest, "DATA"):
			name = fmt.Sprintf("%d DATA", num)
			kind = protocol.SymbolKindArray
			detail = "Data"
		case strings.HasPrefix(upperRest, "DEF FN"):
			fnName := rest[6:]
			fnName, _, _ = strings.Cut(fnName, "(")
			fnName, _, _ = strings.Cut(fnName, "=")
			name = fmt.Sprintf("%d DEF FN%s", num, strings.TrimSpace(fnName))
			kind = protocol.SymbolKindFunction
			detail = "User function"
		default:
			keyword := strings.ToUpper(firstWord(rest))
			keyword, _, _ = strings.Cut(keyword, "(")
			keyword, _, _ = strings.Cut(keyword, "=")
			if !outlineKeywords[keyword] {
				continue
			}
			name = fmt.Sprintf("%d %s", num, truncate(rest, 40))
			kind = protocol.SymbolKindKey
		}

		rng := protocol.Range{
			Start: protocol.Position{Line: uint32(row), Character: 0},
			End:   protocol.Position{Line: uint32(row), Character: uint32(len(line))},
		}
		sym := protocol.DocumentSymbol{
			Name:           name,
			Kind:           kind,
			Range:          rng,
			SelectionRange: rng,
		}
		if detail != "" {
			sym.Detail = detail
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func firstWord(s string) string {
	w, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	return w
}
