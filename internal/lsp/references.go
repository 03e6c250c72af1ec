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
)

func (s *Server) handleReferences(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.ReferenceParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc, ok := s.document(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	rows := docLines(doc.Content)
	line := lineAt(rows, int(p.Position.Line))

	word, _, _ := scan.WordAt(line, int(p.Position.Character))
	if word == "" {
		return nil, nil
	}

	if n, err := strconv.Atoi(word); err == nil {
		return lineNumberReferences(doc.URI, doc.Content, n), nil
	}

	if catalog.IsReserved(strings.ToUpper(word)) {
		return nil, nil
	}

	return variableReferences(doc.URI, rows, word), nil
}

// lineNumberReferences collects the defining row of a BASIC line number
// plus every jump that targets it.
func lineNumberReferences(uri protocol.DocumentURI, content string, n int) []protocol.Location {
	table := lines.Parse(content)

	var locs []protocol.Location
	if row, ok := table.RowFor(n); ok {
		width := table.NumberWidth(n)
		locs = append(locs, protocol.Location{
			URI: uri,
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(row), Character: 0},
				End:   protocol.Position{Line: uint32(row), Character: uint32(width)},
			},
		})
	}

	for _, ref := range table.RefsTo(n) {
		locs = append(locs, protocol.Location{
			URI: uri,
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(ref.Row), Character: uint32(ref.Start)},
				End:   protocol.Position{Line: uint32(ref.Row), Character: uint32(ref.End)},
			},
		})
	}
	return locs
}

// variableReferences finds every occurrence of word, matching case
// insensitively at identifier boundaries.
func variableReferences(uri protocol.DocumentURI, rows []string, word string) []protocol.Location {
	needle := strings.ToUpper(word)

	var locs []protocol.Location
	for row, line := range rows {
		upper := strings.ToUpper(line)
		from := 0
		for {
			idx := strings.Index(upper[from:], needle)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(needle)
			from = start + 1

			if start > 0 {
				b := upper[start-1]
				if isIdentByte(b) || b == '$' {
					continue
				}
			}
			if end < len(upper) && isIdentByte(upper[end]) {
				continue
			}
			// A trailing $ belongs to the matched name.
			if end < len(upper) && upper[end] == '$' {
				end++
			}

			locs = append(locs, protocol.Location{
				URI: uri,
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(row), Character: uint32(start)},
					End:   protocol.Position{Line: uint32(row), Character: uint32(end)},
				},
			})
		}
	}
	return locs
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}
