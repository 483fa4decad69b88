package api

import (
	"net/http"

	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/httputil"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
	"github.com/banshee-data/strategy.canvas/internal/session"
)

type languageResponse struct {
	Language i18n.Language `json:"language"`
	Dir      string        `json:"dir"`
	// Suggested is the browser's best supported match from Accept-Language.
	Suggested i18n.Language `json:"suggested"`
	Messages  i18n.Messages `json:"messages"`
}

type languageRequest struct {
	Language string `json:"language"`
}

type themeRequest struct {
	// An empty theme toggles.
	Theme string `json:"theme"`
}

type gridRequest struct {
	ShowGrid *bool `json:"show_grid"`
}

func (s *Server) describeLanguage(r *http.Request, snap session.Snapshot) languageResponse {
	return languageResponse{
		Language:  snap.Language,
		Dir:       snap.Dir,
		Suggested: i18n.Negotiate(r.Header.Get("Accept-Language")),
		Messages:  i18n.Catalog(snap.Language),
	}
}

func (s *Server) showLanguage(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, s.describeLanguage(r, s.sess.Snapshot()))
}

func (s *Server) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	lang, err := i18n.Parse(req.Language)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	snap, err := s.sess.SetLanguage(r.Context(), lang)
	if err != nil {
		s.writeError(w, err)
		return
	}
	httputil.WriteJSONOK(w, s.describeLanguage(r, snap))
}

func (s *Server) showTheme(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, s.sess.Snapshot())
}

func (s *Server) setTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	if req.Theme == "" {
		httputil.WriteJSONOK(w, s.sess.ToggleTheme())
		return
	}
	theme, err := chart.ParseTheme(req.Theme)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	httputil.WriteJSONOK(w, s.sess.SetTheme(theme))
}

func (s *Server) setGrid(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	if req.ShowGrid == nil {
		httputil.BadRequest(w, "show_grid is required")
		return
	}
	httputil.WriteJSONOK(w, s.sess.SetShowGrid(*req.ShowGrid))
}
