package lsp

import (
	"context"
	"encoding/json"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/catalog"
)

func (s *Server) handleSignatureHelp(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.SignatureHelpParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc, ok := s.document(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	rows := docLines(doc.Content)
	line := lineAt(rows, int(p.Position.Line))

	col := int(p.Position.Character)
	if col > len(line) {
		col = len(line)
	}

	name, open, ok := enclosingCall(line, col)
	if !ok {
		return nil, nil
	}

	sig, ok := catalog.SignatureFor(strings.ToUpper(name))
	if !ok {
		return nil, nil
	}

	active := activeParam(line, open, col)

	info := protocol.SignatureInformation{
		Label: sig.Label,
		Documentation: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: sig.Doc,
		},
	}
	for i := range sig.Params {
		info.Parameters = append(info.Parameters, protocol.ParameterInformation{
			Label: sig.Param(i),
		})
	}

	return &protocol.SignatureHelp{
		Signatures:      []protocol.SignatureInformation{info},
		ActiveSignature: 0,
		ActiveParameter: uint32(active),
	}, nil
}

// enclosingCall walks left from col looking for the unbalanced '(' of
// the call the cursor sits inside, then reads the function name right
// before it.
func enclosingCall(line string, col int) (name string, open int, ok bool) {
	depth := 0
	for i := col - 1; i >= 0; i-- {
		switch line[i] {
		case ')':
			depth++
		case '(':
			if depth > 0 {
				depth--
				continue
			}
			start := i
			for start > 0 && isCallNameByte(line[start-1]) {
				start--
			}
			if start == i {
				return "", 0, false
			}
			return line[start:i], i, true
		}
	}
	return "", 0, false
}

// activeParam counts top-level commas between the opening paren and the
// cursor.
func activeParam(line string, open, col int) int {
	depth := 0
	commas := 0
	for i := open + 1; i < col && i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				commas++
			}
		}
	}
	return commas
}

func isCallNameByte(b byte) bool {
	return isIdentByte(b) || b == '$'
}
