package lsp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func semanticTokensFor(t *testing.T, server *Server, uri string) []uint32 {
	t.Helper()

	params, _ := json.Marshal(protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
	})
	result, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/semanticTokens/full",
		ID:     rawID(1),
		Params: params,
	})
	if err != nil {
		t.Fatalf("semanticTokens/full failed: %v", err)
	}
	tokens, ok := result.(*protocol.SemanticTokens)
	if !ok {
		t.Fatalf("result is not *SemanticTokens: %T", result)
	}
	return tokens.Data
}

func TestSemanticTokens(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	code := "10 PRINT \"HI\"\n20 REM setup\n30 LET X = LEN(A$) + &HFF\n"
	openDocument(t, server, "file:///test.bas", code)

	got := semanticTokensFor(t, server, "file:///test.bas")

	// Each token is [deltaLine, deltaStart, length, type, modifiers].
	want := []uint32{
		0, 0, 2, tokenNumber, 0, // 10
		0, 3, 5, tokenKeyword, 0, // PRINT
		0, 6, 4, tokenString, 0, // "HI"
		1, 0, 2, tokenNumber, 0, // 20
		0, 3, 9, tokenComment, 0, // REM setup
		1, 0, 2, tokenNumber, 0, // 30
		0, 3, 3, tokenKeyword, 0, // LET
		0, 4, 1, tokenVariable, 0, // X
		0, 2, 1, tokenOperator, 0, // =
		0, 2, 3, tokenFunction, 0, // LEN
		0, 3, 1, tokenOperator, 0, // (
		0, 1, 2, tokenVariable, 0, // A$
		0, 2, 1, tokenOperator, 0, // )
		0, 2, 1, tokenOperator, 0, // +
		0, 2, 4, tokenNumber, 0, // &HFF
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestSemanticTokens_ApostropheComment(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	openDocument(t, server, "file:///test.bas", "10 ' whole row\n")

	got := semanticTokensFor(t, server, "file:///test.bas")
	want := []uint32{
		0, 0, 2, tokenNumber, 0, // 10
		0, 3, 11, tokenComment, 0, // ' whole row
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestSemanticTokens_EmptyDocument(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	openDocument(t, server, "file:///test.bas", "")

	if got := semanticTokensFor(t, server, "file:///test.bas"); len(got) != 0 {
		t.Errorf("got %d values for empty document, want 0", len(got))
	}
}
