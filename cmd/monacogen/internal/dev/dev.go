// Package dev implements the `monacogen dev` subcommand, a small HTTP
// server that renders generated Rust for a single input on demand. It is
// a preview aid for iterating on .d.ts sources, not a production service.
package dev

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/schema"

	"github.com/b0x-Cub3d/rust-monaco/enumgen"
	"github.com/b0x-Cub3d/rust-monaco/enumgen/rust"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

type Cmd struct {
	Dir  string `help:"Directory containing TypeScript inputs." default:"." short:"d"`
	Port int    `help:"Port to listen on." default:"9000" short:"p"`
}

func (c *Cmd) Run() error {
	srv := &server{dir: c.Dir}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /preview", srv.handlePreview)

	addr := fmt.Sprintf("localhost:%d", c.Port)
	fmt.Printf("monacogen dev listening on http://%s\n", addr)
	return http.ListenAndServe(addr, mux)
}

type server struct {
	dir string
}

// previewParams are the /preview query parameters.
type previewParams struct {
	// File is the input file name, relative to the served directory.
	File string `schema:"file,required"`

	// Indent is the spaces per indent level (default 4).
	Indent int `schema:"indent"`

	// Comments controls doc comment emission (default true).
	Comments *bool `schema:"comments"`
}

// handlePreview renders one input file and returns the generated Rust as
// plain text. Parse and inference failures come back as 422 with the
// error message, so the browser shows exactly what the batch run would
// report.
func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var params previewParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		http.Error(w, "bad query: "+err.Error(), http.StatusBadRequest)
		return
	}

	if filepath.IsAbs(params.File) || filepath.Clean(params.File) != params.File ||
		strings.HasPrefix(params.File, "..") {
		http.Error(w, "file must be a clean relative path", http.StatusBadRequest)
		return
	}

	data, err := os.ReadFile(filepath.Join(s.dir, params.File))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	cfg := rust.DefaultConfig()
	if params.Indent > 0 {
		cfg.IndentSize = params.Indent
	}
	if params.Comments != nil {
		cfg.EmitComments = *params.Comments
	}

	generated, err := enumgen.RenderSource(string(data), cfg)
	if err != nil {
		slog.Error("preview generation failed", "file", params.File, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	slog.Info("preview", "file", params.File, "bytes", len(generated))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, generated)
}
