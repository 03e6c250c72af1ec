// Package basills implements the basills command, the BASIC language
// server.
package basills

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/basil-lang/basil/internal/lsp"
	"github.com/basil-lang/basil/internal/version"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
)

// Run executes basills with the given arguments.
func Run(args []string) int {
	return RunWithIO(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}

// RunWithIO allows custom IO for testing.
func RunWithIO(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		versionFlag bool
		verboseFlag bool
		watchFlag   bool
	)

	fs := flag.NewFlagSet("basills", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&versionFlag, "version", false, "print version and exit")
	fs.BoolVar(&verboseFlag, "v", false, "verbose logging to stderr")
	fs.BoolVar(&watchFlag, "watch", false, "watch open files for on-disk changes")

	fs.Usage = func() {
		writeln(stderr, "Usage: basills [flags]")
		writeln(stderr)
		writeln(stderr, "BASIC Language Server Protocol (LSP) implementation.")
		writeln(stderr)
		writeln(stderr, "The server communicates over stdio using JSON-RPC 2.0.")
		writeln(stderr, "Configure your editor to launch this binary as an LSP server.")
		writeln(stderr)
		writeln(stderr, "Features:")
		writeln(stderr, "  - Diagnostics (syntax, variables, unreachable code)")
		writeln(stderr, "  - Go to definition and find references")
		writeln(stderr, "  - Rename variables")
		writeln(stderr, "  - Hover documentation and signature help")
		writeln(stderr, "  - Code completion")
		writeln(stderr, "  - Document symbols and folding")
		writeln(stderr, "  - Semantic highlighting")
		writeln(stderr)
		writeln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitError
	}

	if versionFlag {
		writef(stdout, "basills %s\n", version.String())
		return exitOK
	}

	// The server speaks LSP over stdio; running it interactively in a
	// terminal would just hang waiting for framed input.
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		writeln(stderr, "basills: refusing to run on a terminal; launch it from an editor as an LSP server")
		return exitError
	}

	// Setup logging
	if verboseFlag {
		log.SetOutput(stderr)
		log.SetFlags(log.Ltime | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}

	// Create context with cancellation for clean shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := lsp.NewServer(cancel)

	if watchFlag {
		watcher, err := lsp.NewWatcher(server)
		if err != nil {
			writef(stderr, "basills: starting file watcher: %v\n", err)
			return exitError
		}
		defer watcher.Close()
		server.SetWatcher(watcher)
		go watcher.Run(ctx)
	}

	// Create stdio connection
	rwc := &stdioConn{
		Reader: stdin,
		Writer: stdout,
	}

	conn := lsp.NewConn(rwc, server)
	server.SetConn(conn)

	log.Printf("basills: starting server")

	if err := conn.Run(ctx); err != nil && ctx.Err() == nil {
		writef(stderr, "basills: %v\n", err)
		return exitError
	}

	log.Printf("basills: server stopped")
	return exitOK
}

// stdioConn wraps stdin/stdout as an io.ReadWriteCloser.
type stdioConn struct {
	io.Reader
	io.Writer
}

func (s *stdioConn) Close() error {
	return nil
}

func writef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

func writeln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}
