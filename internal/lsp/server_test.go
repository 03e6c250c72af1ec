package lsp

import (
	"context"
	"encoding/json"
	"testing"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/checker"
)

func TestInitialize(t *testing.T) {
	server := NewServer(nil)

	initParams, _ := json.Marshal(protocol.InitializeParams{
		RootURI: "file:///workspace",
	})
	result, err := server.Handle(context.Background(), &Request{
		Method: "initialize",
		ID:     rawID(1),
		Params: initParams,
	})
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	initResult, ok := result.(*protocol.InitializeResult)
	if !ok {
		t.Fatalf("result is not *InitializeResult: %T", result)
	}

	if initResult.ServerInfo == nil || initResult.ServerInfo.Name != "basills" {
		t.Errorf("ServerInfo = %+v, want name basills", initResult.ServerInfo)
	}
	if initResult.Capabilities.HoverProvider != true {
		t.Error("hover capability not advertised")
	}
	ro, ok := initResult.Capabilities.RenameProvider.(renameOptions)
	if !ok || !ro.PrepareProvider {
		t.Errorf("RenameProvider = %+v, want prepare support", initResult.Capabilities.RenameProvider)
	}
	sto, ok := initResult.Capabilities.SemanticTokensProvider.(semanticTokensOptions)
	if !ok || !sto.Full {
		t.Fatalf("SemanticTokensProvider = %+v, want full support", initResult.Capabilities.SemanticTokensProvider)
	}
	if len(sto.Legend.TokenTypes) != len(tokenTypes) {
		t.Errorf("legend has %d token types, want %d", len(sto.Legend.TokenTypes), len(tokenTypes))
	}
}

func TestNotInitialized(t *testing.T) {
	server := NewServer(nil)

	_, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/hover",
		ID:     rawID(1),
		Params: json.RawMessage("{}"),
	})
	if err == nil {
		t.Fatal("expected error for request before initialization")
	}

	rpcErr, ok := err.(*ResponseError)
	if !ok || rpcErr.Code != CodeInvalidRequest {
		t.Errorf("err = %v, want invalid request", err)
	}
}

func TestShutdown(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	if _, err := server.Handle(context.Background(), &Request{
		Method: "shutdown",
		ID:     rawID(2),
	}); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	// After shutdown only exit is allowed.
	_, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/hover",
		ID:     rawID(3),
		Params: json.RawMessage("{}"),
	})
	if err == nil {
		t.Fatal("expected error for request after shutdown")
	}

	exited := false
	server.onExit = func() { exited = true }
	if _, err := server.Handle(context.Background(), &Request{Method: "exit"}); err != nil {
		t.Fatalf("exit failed: %v", err)
	}
	if !exited {
		t.Error("exit notification did not trigger onExit")
	}
}

func TestUnknownMethod(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)

	_, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/typeDefinition",
		ID:     rawID(1),
		Params: json.RawMessage("{}"),
	})
	if err != ErrMethodNotFound {
		t.Errorf("err = %v, want ErrMethodNotFound", err)
	}

	// Unknown notifications are silently ignored.
	if _, err := server.Handle(context.Background(), &Request{
		Method: "$/setTrace",
		Params: json.RawMessage("{}"),
	}); err != nil {
		t.Errorf("unknown notification returned error: %v", err)
	}
}

func TestDidChangeReplacesContent(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)
	openDocument(t, server, "file:///test.bas", "10 PRINT \"HELLO\"\n")

	changeParams, _ := json.Marshal(protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///test.bas"},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Text: "10 LET X = 1\n20 PRINT X\n"},
		},
	})
	if _, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/didChange",
		Params: changeParams,
	}); err != nil {
		t.Fatalf("didChange failed: %v", err)
	}

	doc, ok := server.document("file:///test.bas")
	if !ok {
		t.Fatal("document missing after didChange")
	}
	if doc.Content != "10 LET X = 1\n20 PRINT X\n" {
		t.Errorf("content = %q after full sync", doc.Content)
	}
	if doc.Version != 2 {
		t.Errorf("version = %d, want 2", doc.Version)
	}
}

func TestDidCloseRemovesDocument(t *testing.T) {
	server := NewServer(nil)
	initializeServer(t, server)
	openDocument(t, server, "file:///test.bas", "10 END\n")

	closeParams, _ := json.Marshal(protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test.bas"},
	})
	if _, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/didClose",
		Params: closeParams,
	}); err != nil {
		t.Fatalf("didClose failed: %v", err)
	}

	if _, ok := server.document("file:///test.bas"); ok {
		t.Error("document still present after didClose")
	}
}

func TestToProtocolDiagnostics(t *testing.T) {
	diags := []checker.Diagnostic{
		{
			Row: 1, StartCol: 8, EndRow: 1, EndCol: 10,
			Severity: checker.SeverityError,
			Message:  "Line 99 is not defined",
		},
		{
			Row: 0, StartCol: 7, EndRow: 0, EndCol: 8,
			Severity:    checker.SeverityHint,
			Message:     "Variable 'Y' is defined but never used",
			Unnecessary: true,
		},
		{
			Row: 2, StartCol: 4, EndRow: 2, EndCol: 5,
			Severity: checker.SeverityWarning,
			Message:  "Variable 'X' may not be defined",
		},
	}

	out := toProtocolDiagnostics(diags)
	if len(out) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(out))
	}

	if out[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v, want error", out[0].Severity)
	}
	if out[0].Source != "basills" {
		t.Errorf("source = %q, want basills", out[0].Source)
	}
	if out[0].Range.Start.Line != 1 || out[0].Range.Start.Character != 8 {
		t.Errorf("range start = %+v", out[0].Range.Start)
	}

	if out[1].Severity != protocol.DiagnosticSeverityHint {
		t.Errorf("severity = %v, want hint", out[1].Severity)
	}
	if len(out[1].Tags) != 1 || out[1].Tags[0] != protocol.DiagnosticTagUnnecessary {
		t.Errorf("tags = %v, want unnecessary", out[1].Tags)
	}

	if out[2].Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("severity = %v, want warning", out[2].Severity)
	}
	if len(out[2].Tags) != 0 {
		t.Errorf("tags = %v, want none", out[2].Tags)
	}
}

func TestUriToPath(t *testing.T) {
	if got := uriToPath("file:///home/user/prog.bas"); got != "/home/user/prog.bas" {
		t.Errorf("uriToPath = %q", got)
	}
}

// Test helpers shared by the feature tests.

func initializeServer(t *testing.T, server *Server) {
	t.Helper()

	initParams, _ := json.Marshal(protocol.InitializeParams{})
	_, err := server.Handle(context.Background(), &Request{
		Method: "initialize",
		ID:     rawID(1),
		Params: initParams,
	})
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	_, err = server.Handle(context.Background(), &Request{
		Method: "initialized",
		Params: json.RawMessage("{}"),
	})
	if err != nil {
		t.Fatalf("initialized failed: %v", err)
	}
}

func openDocument(t *testing.T, server *Server, uri, content string) {
	t.Helper()

	openParams, _ := json.Marshal(protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        protocol.DocumentURI(uri),
			LanguageID: "basic",
			Version:    1,
			Text:       content,
		},
	})
	_, err := server.Handle(context.Background(), &Request{
		Method: "textDocument/didOpen",
		Params: openParams,
	})
	if err != nil {
		t.Fatalf("didOpen failed: %v", err)
	}
}

func rawID(n int) *json.RawMessage {
	raw := json.RawMessage([]byte{byte('0' + n)})
	return &raw
}
