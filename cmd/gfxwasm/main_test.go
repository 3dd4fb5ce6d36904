package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func Test_handler_serves_build_output_from_memory(t *testing.T) {
	h := &handler{
		wasmExec: []byte("exec"),
		mainWasm: []byte("wasm"),
		files: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("file " + r.URL.Path))
		}),
	}
	tests := []struct {
		path, body, contentType string
	}{
		{"/main.wasm", "wasm", "application/wasm"},
		{"/wasm_exec.js", "exec", "text/javascript"},
		{"/sprite.png", "file /sprite.png", ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
		if rec.Body.String() != tt.body {
			t.Errorf("%s: body %q, want %q", tt.path, rec.Body.String(), tt.body)
		}
		if tt.contentType != "" && rec.Header().Get("Content-Type") != tt.contentType {
			t.Errorf("%s: content type %q", tt.path, rec.Header().Get("Content-Type"))
		}
	}
}

func Test_index_page_has_the_canvas_the_browser_backend_looks_for(t *testing.T) {
	rec := httptest.NewRecorder()
	(&handler{}).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if !strings.Contains(rec.Body.String(), `<canvas id="gameCanvas">`) {
		t.Errorf("index page has no gameCanvas:\n%s", rec.Body.String())
	}
}
