package lsp

import (
	"context"
	"encoding/json"
	"testing"

	"go.lsp.dev/protocol"
)

func referencesAt(t *testing.T, server *Server, uri string, line, char uint32) []protocol.Location {
	t.Helper()

	params, _ := json.Marshal(protocol.ReferenceParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
			Position:     protocol.Position{Line: line, Character: char},
		},
		Context: protocol.ReferenceContext{IncludeDeclaration: true},
	})
	result, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/references",
		ID:     rawID(1),
		Params: params,
	})
	if err != nil {
		t.Fatalf("references failed: %v", err)
	}
	if result == nil {
		return nil
	}
	locs, ok := result.([]protocol.Location)
	if !ok {
		t.Fatalf("result is not []Location: %T", result)
	}
	return locs
}

func TestReferences_LineNumber(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	code := "10 PRINT \"LOOP\"\n20 GOTO 10\n30 GOSUB 10\n"
	openDocument(t, server, "file:///test.bas", code)

	// Cursor on the defining "10".
	locs := referencesAt(t, server, "file:///test.bas", 0, 0)
	if len(locs) != 3 {
		t.Fatalf("got %d locations, want 3 (definition + 2 jumps)", len(locs))
	}

	// Definition row span covers the number token.
	if locs[0].Range.Start.Line != 0 || locs[0].Range.End.Character != 2 {
		t.Errorf("definition span = %+v, want row 0 cols 0..2", locs[0].Range)
	}
	// "20 GOTO 10": target at cols 8..10.
	if locs[1].Range.Start.Line != 1 || locs[1].Range.Start.Character != 8 || locs[1].Range.End.Character != 10 {
		t.Errorf("GOTO ref = %+v, want row 1 cols 8..10", locs[1].Range)
	}
	// "30 GOSUB 10": target at cols 9..11.
	if locs[2].Range.Start.Line != 2 || locs[2].Range.Start.Character != 9 || locs[2].Range.End.Character != 11 {
		t.Errorf("GOSUB ref = %+v, want row 2 cols 9..11", locs[2].Range)
	}
}

func TestReferences_Variable(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	code := "10 LET X = 1\n20 PRINT x\n30 LET AX = X\n"
	openDocument(t, server, "file:///test.bas", code)

	locs := referencesAt(t, server, "file:///test.bas", 0, 7)
	if len(locs) != 3 {
		t.Fatalf("got %d locations, want 3", len(locs))
	}
	// Lowercase x on row 1 matches.
	if locs[1].Range.Start.Line != 1 || locs[1].Range.Start.Character != 9 {
		t.Errorf("ref = %+v, want row 1 col 9", locs[1].Range)
	}
	// Row 2: the X inside AX is not a reference; the trailing X is.
	if locs[2].Range.Start.Line != 2 || locs[2].Range.Start.Character != 12 {
		t.Errorf("ref = %+v, want row 2 col 12", locs[2].Range)
	}
}

func TestReferences_StringVariableSuffix(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	code := "10 LET NAME$ = \"BOB\"\n20 PRINT NAME$\n"
	openDocument(t, server, "file:///test.bas", code)

	locs := referencesAt(t, server, "file:///test.bas", 0, 7)
	if len(locs) != 2 {
		t.Fatalf("got %d locations, want 2", len(locs))
	}
	// Spans include the $ suffix.
	if locs[0].Range.Start.Character != 7 || locs[0].Range.End.Character != 12 {
		t.Errorf("span = %+v, want cols 7..12", locs[0].Range)
	}
}

func TestReferences_Keyword(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	openDocument(t, server, "file:///test.bas", "10 PRINT \"HI\"\n")

	if locs := referencesAt(t, server, "file:///test.bas", 0, 4); locs != nil {
		t.Errorf("keyword references = %v, want nil", locs)
	}
}
