package lsp

import (
	"context"
	"encoding/json"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/catalog"
	"github.com/basil-lang/basil/internal/basic/scan"
)

func (s *Server) handleHover(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.HoverParams
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

	text, ok := catalog.Doc(word)
	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}
