package endpoints

import (
	"bytes"
	"embed"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/satchelhq/satchel/pkg/server"
)

//go:embed docs/api.md
var docFiles embed.FS

// RegisterDocsEndpoint serves the rendered API reference at /docs.
// Disabled via docs_enabled=false in configuration.
func RegisterDocsEndpoint(s *server.Server) {
	if s.Config != nil && !s.Config.DocsEnabled {
		return
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	source, err := docFiles.ReadFile("docs/api.md")
	if err != nil {
		return
	}

	// Render once at registration; the reference only changes with the
	// binary.
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return
	}
	page := []byte("<!DOCTYPE html><html><head><title>Satchel API</title></head><body>" +
		buf.String() + "</body></html>")

	s.Router.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}).Methods("GET")
}
