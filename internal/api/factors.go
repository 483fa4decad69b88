package api

import (
	"net/http"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/httputil"
	"github.com/banshee-data/strategy.canvas/internal/session"
)

type factorResponse struct {
	Factor canvas.Factor    `json:"factor"`
	State  session.Snapshot `json:"state"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type scoreRequest struct {
	Score *float64 `json:"score"`
}

func (s *Server) listFactors(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, s.sess.Snapshot())
}

func (s *Server) createFactor(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	f, snap, err := s.sess.CreateFactor(req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, factorResponse{Factor: f, State: snap})
}

func (s *Server) renameFactor(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	f, snap, err := s.sess.RenameFactor(r.PathValue("id"), req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	httputil.WriteJSONOK(w, factorResponse{Factor: f, State: snap})
}

func (s *Server) setScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	if req.Score == nil {
		httputil.BadRequest(w, "score is required")
		return
	}
	f, snap, err := s.sess.SetScore(r.PathValue("id"), *req.Score)
	if err != nil {
		s.writeError(w, err)
		return
	}
	httputil.WriteJSONOK(w, factorResponse{Factor: f, State: snap})
}

func (s *Server) removeFactor(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sess.RemoveFactor(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	httputil.WriteJSONOK(w, snap)
}
