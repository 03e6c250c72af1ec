package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/basil-lang/basil/internal/basic/checker"
	"github.com/basil-lang/basil/internal/version"
)

// diagnosticSource tags every diagnostic the server publishes.
const diagnosticSource = "basills"

// Server implements the BASIC language server.
type Server struct {
	conn *Conn

	mu          sync.RWMutex
	initialized bool
	shutdown    bool
	documents   map[protocol.DocumentURI]*Document
	rootURI     protocol.DocumentURI

	// onExit is called when the client sends the exit notification.
	onExit func()

	// watcher, when set, tracks open file:// documents for on-disk changes.
	watcher *Watcher
}

// Document represents an open text document.
type Document struct {
	URI     protocol.DocumentURI
	Version int32
	Content string
}

// NewServer creates a new BASIC language server. onExit is called when
// the client sends the exit notification; it may be nil.
func NewServer(onExit func()) *Server {
	return &Server{
		documents: make(map[protocol.DocumentURI]*Document),
		onExit:    onExit,
	}
}

// SetConn sets the JSON-RPC connection for sending notifications.
func (s *Server) SetConn(conn *Conn) {
	s.conn = conn
}

// SetWatcher enables on-disk change tracking for open documents.
func (s *Server) SetWatcher(w *Watcher) {
	s.watcher = w
}

// Handle processes an incoming JSON-RPC request.
func (s *Server) Handle(ctx context.Context, req *Request) (any, error) {
	log.Printf("handling method: %s", req.Method)

	s.mu.RLock()
	shutdown := s.shutdown
	initialized := s.initialized
	s.mu.RUnlock()

	if shutdown && req.Method != "exit" {
		return nil, &ResponseError{
			Code:    CodeInvalidRequest,
			Message: "server is shutting down",
		}
	}

	if !initialized {
		switch req.Method {
		case "initialize", "initialized", "shutdown", "exit":
			// allowed before initialization
		default:
			return nil, &ResponseError{
				Code:    CodeInvalidRequest,
				Message: "server not initialized",
			}
		}
	}

	switch req.Method {
	// Lifecycle
	case "initialize":
		return s.handleInitialize(ctx, req.Params)
	case "initialized":
		return s.handleInitialized(ctx)
	case "shutdown":
		return s.handleShutdown(ctx)
	case "exit":
		return s.handleExit(ctx)

	// Text document sync
	case "textDocument/didOpen":
		return s.handleDidOpen(ctx, req.Params)
	case "textDocument/didChange":
		return s.handleDidChange(ctx, req.Params)
	case "textDocument/didClose":
		return s.handleDidClose(ctx, req.Params)
	case "textDocument/didSave":
		return s.handleDidSave(ctx, req.Params)

	// Language features
	case "textDocument/hover":
		return s.handleHover(ctx, req.Params)
	case "textDocument/definition":
		return s.handleDefinition(ctx, req.Params)
	case "textDocument/references":
		return s.handleReferences(ctx, req.Params)
	case "textDocument/prepareRename":
		return s.handlePrepareRename(ctx, req.Params)
	case "textDocument/rename":
		return s.handleRename(ctx, req.Params)
	case "textDocument/completion":
		return s.handleCompletion(ctx, req.Params)
	case "textDocument/documentSymbol":
		return s.handleDocumentSymbol(ctx, req.Params)
	case "textDocument/foldingRange":
		return s.handleFoldingRange(ctx, req.Params)
	case "textDocument/signatureHelp":
		return s.handleSignatureHelp(ctx, req.Params)
	case "textDocument/semanticTokens/full":
		return s.handleSemanticTokensFull(ctx, req.Params)
	default:
		if req.ID == nil {
			// Unknown notifications are ignored per LSP.
			return nil, nil
		}
		return nil, ErrMethodNotFound
	}
}

// renameOptions advertises rename with prepare support. The protocol
// package's RenameOptions lacks the prepareProvider field, so a local
// struct carries it.
type renameOptions struct {
	PrepareProvider bool `json:"prepareProvider"`
}

// semanticTokensOptions advertises the token legend and full-document
// token support.
type semanticTokensOptions struct {
	Legend semanticTokensLegend `json:"legend"`
	Full   bool                 `json:"full"`
}

type semanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

func (s *Server) handleInitialize(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.InitializeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("parsing initialize params: %w", err)
	}

	s.mu.Lock()
	if len(p.WorkspaceFolders) > 0 {
		s.rootURI = protocol.DocumentURI(p.WorkspaceFolders[0].URI)
	} else if p.RootURI != "" {
		s.rootURI = p.RootURI
	}
	s.mu.Unlock()

	log.Printf("initialize: root=%s", s.rootURI)

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
				Save: &protocol.SaveOptions{
					IncludeText: true,
				},
			},
			HoverProvider:      true,
			DefinitionProvider: true,
			ReferencesProvider: true,
			RenameProvider: renameOptions{
				PrepareProvider: true,
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{" "},
			},
			SignatureHelpProvider: &protocol.SignatureHelpOptions{
				TriggerCharacters: []string{"(", ","},
			},
			DocumentSymbolProvider: true,
			FoldingRangeProvider:   true,
			SemanticTokensProvider: semanticTokensOptions{
				Legend: semanticTokensLegend{
					TokenTypes:     tokenTypes,
					TokenModifiers: tokenModifiers,
				},
				Full: true,
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "basills",
			Version: version.Version,
		},
	}, nil
}

func (s *Server) handleInitialized(ctx context.Context) (any, error) {
	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()

	log.Printf("initialized")
	return nil, nil
}

func (s *Server) handleShutdown(ctx context.Context) (any, error) {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()
	return nil, nil
}

func (s *Server) handleExit(ctx context.Context) (any, error) {
	if s.onExit != nil {
		s.onExit()
	}
	return nil, nil
}

func (s *Server) handleDidOpen(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	doc := &Document{
		URI:     p.TextDocument.URI,
		Version: p.TextDocument.Version,
		Content: p.TextDocument.Text,
	}

	s.mu.Lock()
	s.documents[doc.URI] = doc
	s.mu.Unlock()

	log.Printf("opened document: %s (version %d)", doc.URI, doc.Version)

	if s.watcher != nil && isFileURI(doc.URI) {
		s.watcher.Watch(uriToPath(doc.URI))
	}

	s.publishDiagnostics(ctx, doc)
	return nil, nil
}

func (s *Server) handleDidChange(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	if len(p.ContentChanges) == 0 {
		return nil, nil
	}

	// Full sync: the last change carries the whole document.
	content := p.ContentChanges[len(p.ContentChanges)-1].Text

	s.mu.Lock()
	doc, ok := s.documents[p.TextDocument.URI]
	if ok {
		doc.Version = p.TextDocument.Version
		doc.Content = content
	} else {
		doc = &Document{
			URI:     p.TextDocument.URI,
			Version: p.TextDocument.Version,
			Content: content,
		}
		s.documents[doc.URI] = doc
	}
	s.mu.Unlock()

	s.publishDiagnostics(ctx, doc)
	return nil, nil
}

func (s *Server) handleDidClose(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.documents, p.TextDocument.URI)
	s.mu.Unlock()

	if s.watcher != nil && isFileURI(p.TextDocument.URI) {
		s.watcher.Unwatch(uriToPath(p.TextDocument.URI))
	}

	// Clear diagnostics for the closed document.
	if s.conn != nil {
		_ = s.conn.Notify(ctx, "textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
			URI:         p.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil, nil
}

func (s *Server) handleDidSave(ctx context.Context, params json.RawMessage) (any, error) {
	var p protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, err
	}

	s.mu.Lock()
	doc, ok := s.documents[p.TextDocument.URI]
	if ok && p.Text != "" {
		doc.Content = p.Text
	}
	s.mu.Unlock()

	if ok {
		s.publishDiagnostics(ctx, doc)
	}
	return nil, nil
}

// document returns the open document for uri, if any.
func (s *Server) document(uri protocol.DocumentURI) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[uri]
	return doc, ok
}

// publishDiagnostics runs the checker and pushes the results to the
// client. A nil conn (as in tests) turns this into a no-op.
func (s *Server) publishDiagnostics(ctx context.Context, doc *Document) {
	if s.conn == nil {
		return
	}

	diags := checker.Check(doc.Content)

	params := protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: toProtocolDiagnostics(diags),
	}

	if err := s.conn.Notify(ctx, "textDocument/publishDiagnostics", params); err != nil {
		log.Printf("publishing diagnostics for %s: %v", doc.URI, err)
	}
}

// toProtocolDiagnostics converts checker results to LSP diagnostics.
func toProtocolDiagnostics(diags []checker.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		pd := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(d.Row), Character: uint32(d.StartCol)},
				End:   protocol.Position{Line: uint32(d.EndRow), Character: uint32(d.EndCol)},
			},
			Severity: toProtocolSeverity(d.Severity),
			Source:   diagnosticSource,
			Message:  d.Message,
		}
		if d.Unnecessary {
			pd.Tags = []protocol.DiagnosticTag{protocol.DiagnosticTagUnnecessary}
		}
		out = append(out, pd)
	}
	return out
}

func toProtocolSeverity(sev checker.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case checker.SeverityError:
		return protocol.DiagnosticSeverityError
	case checker.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityHint
	}
}

// uriToPath converts a file:// URI to a filesystem path.
func uriToPath(uri protocol.DocumentURI) string {
	return strings.TrimPrefix(string(uri), "file://")
}

// docLines splits document content into rows without trailing newlines.
func docLines(content string) []string {
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

// lineAt returns the row at index, or "" if out of range.
func lineAt(rows []string, row int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	return rows[row]
}
