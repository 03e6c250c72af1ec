package lsp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/catalog"
	"github.com/basil-lang/basil/internal/basic/lines"
	"github.com/basil-lang/basil/internal/basic/scan"
	"github.com/basil-lang/basil/internal/basic/vars"
)

// jumpKeywords are the statements whose presence on a row makes an
// integer under the cursor a line-number reference.
var jumpKeywords = []string{"GOTO", "GOSUB", "RESTORE", "THEN"}

func (s *Server) handleDefinition(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.DefinitionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc, ok := s.document(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	rows := docLines(doc.Content)
	row := int(p.Position.Line)
	line := lineAt(rows, row)

	word, _, _ := scan.WordAt(line, int(p.Position.Character))
	if word == "" {
		return nil, nil
	}

	// An integer on a row with a jump statement is a line-number
	// reference; resolve it to the defining row.
	if n, err := strconv.Atoi(word); err == nil && hasJumpKeyword(line) {
		table := lines.Parse(doc.Content)
		target, ok := table.RowFor(n)
		if !ok {
			return nil, nil
		}
		return []protocol.Location{{
			URI: p.TextDocument.URI,
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(target), Character: 0},
				End:   protocol.Position{Line: uint32(target), Character: 0},
			},
		}}, nil
	}

	if catalog.IsReserved(strings.ToUpper(word)) {
		return nil, nil
	}

	// Variables resolve to their first declaration site.
	index := vars.Analyze(doc.Content)
	decls := index.Decls[strings.ToUpper(word)]
	if len(decls) == 0 {
		return nil, nil
	}
	site := decls[0]
	return []protocol.Location{{
		URI: p.TextDocument.URI,
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(site.Row), Character: uint32(site.Start)},
			End:   protocol.Position{Line: uint32(site.Row), Character: uint32(site.End)},
		},
	}}, nil
}

func hasJumpKeyword(line string) bool {
	upper := strings.ToUpper(line)
	for _, kw := range jumpKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}
