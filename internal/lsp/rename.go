package lsp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/catalog"
	"github.com/basil-lang/basil/internal/basic/scan"
)

func (s *Server) handlePrepareRename(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.PrepareRenameParams
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

	word, start, end := scan.WordAt(line, int(p.Position.Character))
	if !renameable(word) {
		return nil, nil
	}

	return &protocol.Range{
		Start: protocol.Position{Line: uint32(row), Character: uint32(start)},
		End:   protocol.Position{Line: uint32(row), Character: uint32(end)},
	}, nil
}

func (s *Server) handleRename(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.RenameParams
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
	if !renameable(word) {
		return nil, nil
	}

	edits := renameEdits(rows, word, p.NewName)
	if len(edits) == 0 {
		return nil, nil
	}

	return &protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentURI][]protocol.TextEdit{
			p.TextDocument.URI: edits,
		},
	}, nil
}

// renameable reports whether word is a variable name. Line numbers and
// reserved words cannot be renamed.
func renameable(word string) bool {
	if word == "" {
		return false
	}
	if _, err := strconv.Atoi(word); err == nil {
		return false
	}
	return !catalog.IsReserved(strings.ToUpper(word))
}

// renameEdits builds the edits replacing every occurrence of word. The
// string and numeric variants of a name are renamed together, each
// keeping its own suffix.
func renameEdits(rows []string, word, newName string) []protocol.TextEdit {
	base := strings.ToUpper(strings.TrimSuffix(word, "$"))
	if base == "" {
		return nil
	}

	withSuffix := newName
	if !strings.HasSuffix(withSuffix, "$") {
		withSuffix += "$"
	}
	withoutSuffix := strings.TrimSuffix(newName, "$")

	var edits []protocol.TextEdit
	for row, line := range rows {
		upper := strings.ToUpper(line)
		from := 0
		for {
			idx := strings.Index(upper[from:], base)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(base)
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

			hasSuffix := false
			if end < len(upper) && upper[end] == '$' {
				hasSuffix = true
				end++
			}

			text := withoutSuffix
			if hasSuffix {
				text = withSuffix
			}

			edits = append(edits, protocol.TextEdit{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(row), Character: uint32(start)},
					End:   protocol.Position{Line: uint32(row), Character: uint32(end)},
				},
				NewText: text,
			})
		}
	}
	return edits
}
