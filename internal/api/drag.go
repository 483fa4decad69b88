package api

import (
	"net/http"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/httputil"
	"github.com/banshee-data/strategy.canvas/internal/session"
)

type dragDownRequest struct {
	ID string `json:"id"`
}

// dragMoveRequest carries either the raw pointer and surface positions or
// an offset already measured from the top of the chart.
type dragMoveRequest struct {
	ClientY    *float64 `json:"client_y"`
	SurfaceTop *float64 `json:"surface_top"`
	Y          *float64 `json:"y"`
}

func (req dragMoveRequest) offset() (float64, bool) {
	switch {
	case req.ClientY != nil && req.SurfaceTop != nil:
		return canvas.SurfaceOffset(*req.ClientY, *req.SurfaceTop), true
	case req.Y != nil:
		return *req.Y, true
	}
	return 0, false
}

type dragMoveResponse struct {
	Moved bool             `json:"moved"`
	State session.Snapshot `json:"state"`
}

func (s *Server) dragDown(w http.ResponseWriter, r *http.Request) {
	var req dragDownRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	snap, err := s.sess.PointerDown(req.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	httputil.WriteJSONOK(w, snap)
}

func (s *Server) dragMove(w http.ResponseWriter, r *http.Request) {
	var req dragMoveRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	y, ok := req.offset()
	if !ok {
		httputil.BadRequest(w, "either client_y and surface_top or y is required")
		return
	}
	moved, snap, err := s.sess.PointerMove(y)
	if err != nil {
		s.writeError(w, err)
		return
	}
	httputil.WriteJSONOK(w, dragMoveResponse{Moved: moved, State: snap})
}

func (s *Server) dragUp(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, s.sess.PointerUp())
}

func (s *Server) dragLeave(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, s.sess.PointerLeave())
}
