package lsp

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.lsp.dev/protocol"
)

// Watcher re-runs diagnostics when an open document changes on disk, for
// editors that write files behind the server's back (external formatters,
// generators). Only file:// documents are watched.
type Watcher struct {
	fs     *fsnotify.Watcher
	server *Server
}

// NewWatcher creates a file watcher bound to server.
func NewWatcher(server *Server) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fs: fs, server: server}, nil
}

// Run processes filesystem events until ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload(ctx, event.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("file watcher: %v", err)
		}
	}
}

// Watch starts watching path if it names an existing file.
func (w *Watcher) Watch(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := w.fs.Add(path); err != nil {
		log.Printf("watching %s: %v", path, err)
	}
}

// Unwatch stops watching path.
func (w *Watcher) Unwatch(path string) {
	_ = w.fs.Remove(path)
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// reload refreshes an open document from disk and republishes its
// diagnostics. The editor buffer stays authoritative: documents the
// client no longer has open are ignored.
func (w *Watcher) reload(ctx context.Context, path string) {
	uri := protocol.DocumentURI("file://" + path)

	w.server.mu.RLock()
	doc, ok := w.server.documents[uri]
	w.server.mu.RUnlock()
	if !ok {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("reloading %s: %v", path, err)
		return
	}
	content := string(data)

	w.server.mu.Lock()
	if doc.Content == content {
		w.server.mu.Unlock()
		return
	}
	doc.Content = content
	w.server.mu.Unlock()

	log.Printf("reloaded from disk: %s", path)
	w.server.publishDiagnostics(ctx, doc)
}

// isFileURI reports whether uri uses the file scheme.
func isFileURI(uri protocol.DocumentURI) bool {
	return strings.HasPrefix(string(uri), "file://")
}
