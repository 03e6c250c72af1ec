package lsp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
)

// mockConn wraps a reader and writer as an io.ReadWriteCloser.
type mockConn struct {
	io.Reader
	io.Writer
}

func (m *mockConn) Close() error { return nil }

func frame(body string) string {
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestReadRequest(t *testing.T) {
	input := frame(`{"jsonrpc":"2.0","id":1,"method":"test","params":{}}`)

	conn := NewConn(&mockConn{
		Reader: strings.NewReader(input),
		Writer: io.Discard,
	}, nil)

	req, err := conn.readRequest()
	if err != nil {
		t.Fatalf("readRequest failed: %v", err)
	}

	if req.Method != "test" {
		t.Errorf("Method = %q, want %q", req.Method, "test")
	}
	if req.ID == nil {
		t.Error("ID should not be nil")
	}
}

func TestReadRequestMissingContentLength(t *testing.T) {
	conn := NewConn(&mockConn{
		Reader: strings.NewReader("X-Other: 1\r\n\r\n{}"),
		Writer: io.Discard,
	}, nil)

	if _, err := conn.readRequest(); err == nil {
		t.Fatal("expected error for missing Content-Length")
	}
}

func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	conn := NewConn(&mockConn{
		Reader: strings.NewReader(""),
		Writer: &buf,
	}, nil)

	id := json.RawMessage(`1`)
	resp := &Response{
		JSONRPC: "2.0",
		ID:      &id,
		Result:  map[string]string{"status": "ok"},
	}

	if err := conn.write(resp); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Content-Length:") {
		t.Error("output should contain Content-Length header")
	}
	if !strings.Contains(output, `"result"`) {
		t.Error("output should contain result field")
	}
}

func TestNotify(t *testing.T) {
	var buf bytes.Buffer
	conn := NewConn(&mockConn{
		Reader: strings.NewReader(""),
		Writer: &buf,
	}, nil)

	err := conn.Notify(context.Background(), "textDocument/publishDiagnostics", map[string]any{
		"uri": "file:///test.bas",
	})
	if err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `"method":"textDocument/publishDiagnostics"`) {
		t.Errorf("output = %q, want method field", output)
	}
	if strings.Contains(output, `"id"`) {
		t.Error("notification should not carry an id")
	}
}

func TestResponseError(t *testing.T) {
	err := &ResponseError{
		Code:    CodeMethodNotFound,
		Message: "method not found",
	}

	if err.Error() != "jsonrpc error -32601: method not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestHandlerFunc(t *testing.T) {
	called := false
	h := HandlerFunc(func(ctx context.Context, req *Request) (any, error) {
		called = true
		return "ok", nil
	})

	result, err := h.Handle(context.Background(), &Request{Method: "test"})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !called {
		t.Error("handler was not called")
	}
	if result != "ok" {
		t.Errorf("result = %v, want ok", result)
	}
}

func TestRunDispatchesAndResponds(t *testing.T) {
	request := frame(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)

	var buf bytes.Buffer
	done := make(chan struct{})
	conn := NewConn(&mockConn{
		Reader: strings.NewReader(request),
		Writer: &syncWriter{w: &buf, done: done},
	}, HandlerFunc(func(ctx context.Context, req *Request) (any, error) {
		if req.Method != "ping" {
			t.Errorf("method = %q, want ping", req.Method)
		}
		return "pong", nil
	}))

	if err := conn.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	<-done

	if !strings.Contains(buf.String(), `"pong"`) {
		t.Errorf("output = %q, want pong result", buf.String())
	}
}

// syncWriter signals done after the response body write. Run handles
// requests on separate goroutines, so the test must wait for the write.
type syncWriter struct {
	w      io.Writer
	writes int
	done   chan struct{}
}

func (s *syncWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.writes++
	if s.writes == 2 { // header then body
		close(s.done)
	}
	return n, err
}
