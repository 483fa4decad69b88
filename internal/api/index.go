package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

//go:embed static/index.html
var staticFS embed.FS

var indexTemplate = template.Must(template.ParseFS(staticFS, "static/index.html"))

type indexData struct {
	Lang     i18n.Language
	Dir      string
	Theme    string
	Height   float64
	Messages i18n.Messages
}

// showIndex serves the page shell. Direction and language come from the
// stored preference so the first paint is already laid out correctly.
func (s *Server) showIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.sess.Snapshot()
	data := indexData{
		Lang:     snap.Language,
		Dir:      snap.Dir,
		Theme:    string(snap.Theme),
		Height:   s.sess.Viewport().Height,
		Messages: i18n.Catalog(snap.Language),
	}
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
