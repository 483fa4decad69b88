package api

import (
	"fmt"
	"net/http"

	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/export"
	"github.com/banshee-data/strategy.canvas/internal/httputil"
)

type statsResponse struct {
	chart.Stats
	Zones map[string]chart.Zone `json:"zones"`
}

func (s *Server) showSVG(w http.ResponseWriter, r *http.Request) {
	body, err := s.sess.SVG()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(body)
}

func (s *Server) downloadPNG(w http.ResponseWriter, r *http.Request) {
	body, err := s.sess.PNG()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	_, _ = w.Write(body)
}

func (s *Server) showPreview(w http.ResponseWriter, r *http.Request) {
	body, err := s.sess.Preview()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) showStats(w http.ResponseWriter, r *http.Request) {
	snap := s.sess.Snapshot()
	zones := make(map[string]chart.Zone, len(snap.Factors))
	for _, f := range snap.Factors {
		zones[f.ID] = chart.ZoneOf(f.Score)
	}
	httputil.WriteJSONOK(w, statsResponse{Stats: snap.Stats, Zones: zones})
}
