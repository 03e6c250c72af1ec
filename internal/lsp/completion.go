package lsp

import (
	"context"
	"encoding/json"
	"sort"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/catalog"
	"github.com/basil-lang/basil/internal/basic/vars"
)

func (s *Server) handleCompletion(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.CompletionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc, ok := s.document(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(catalog.Keywords)+len(catalog.Functions))

	for _, kw := range catalog.Keywords {
		items = append(items, protocol.CompletionItem{
			Label:  kw.Name,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: kw.Detail,
		})
	}

	for _, fn := range catalog.Functions {
		items = append(items, protocol.CompletionItem{
			Label:  fn.Name,
			Kind:   protocol.CompletionItemKindFunction,
			Detail: fn.Detail,
		})
	}

	// Every variable declared anywhere in the document.
	index := vars.Analyze(doc.Content)
	names := make([]string, 0, len(index.Decls))
	for name := range index.Decls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   protocol.CompletionItemKindVariable,
			Detail: "Variable",
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}
