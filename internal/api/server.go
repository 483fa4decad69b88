// Package api exposes a strategy canvas session over HTTP.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/export"
	"github.com/banshee-data/strategy.canvas/internal/httputil"
	"github.com/banshee-data/strategy.canvas/internal/monitoring"
	"github.com/banshee-data/strategy.canvas/internal/session"
)

var (
	successColor  = color.New(color.FgGreen, color.Bold)
	redirectColor = color.New(color.FgYellow)
	failureColor  = color.New(color.FgRed, color.Bold)
	uriColor      = color.New(color.FgCyan)
)

type Server struct {
	sess *session.Session
}

func NewServer(sess *session.Session) *Server {
	return &Server{sess: sess}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	code := strconv.Itoa(statusCode)
	switch {
	case statusCode >= 200 && statusCode < 300:
		return successColor.Sprint(code)
	case statusCode >= 300 && statusCode < 400:
		return redirectColor.Sprint(code)
	case statusCode >= 400:
		return failureColor.Sprint(code)
	default:
		return code
	}
}

// LoggingMiddleware logs method, path, query, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			uriColor.Sprint(r.RequestURI),
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.showIndex)

	mux.HandleFunc("GET /api/factors", s.listFactors)
	mux.HandleFunc("POST /api/factors", s.createFactor)
	mux.HandleFunc("PATCH /api/factors/{id}", s.renameFactor)
	mux.HandleFunc("PUT /api/factors/{id}/score", s.setScore)
	mux.HandleFunc("DELETE /api/factors/{id}", s.removeFactor)

	mux.HandleFunc("POST /api/drag/down", s.dragDown)
	mux.HandleFunc("POST /api/drag/move", s.dragMove)
	mux.HandleFunc("POST /api/drag/up", s.dragUp)
	mux.HandleFunc("POST /api/drag/leave", s.dragLeave)

	mux.HandleFunc("GET /api/chart.svg", s.showSVG)
	mux.HandleFunc("GET /api/chart.png", s.downloadPNG)
	mux.HandleFunc("GET /api/preview", s.showPreview)
	mux.HandleFunc("GET /api/stats", s.showStats)

	mux.HandleFunc("GET /api/language", s.showLanguage)
	mux.HandleFunc("PUT /api/language", s.setLanguage)
	mux.HandleFunc("GET /api/theme", s.showTheme)
	mux.HandleFunc("PUT /api/theme", s.setTheme)
	mux.HandleFunc("PUT /api/grid", s.setGrid)
	return mux
}

// writeError maps core errors onto status codes. Export failures carry the
// localized message instead of the internal error.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, canvas.ErrValidation):
		httputil.BadRequest(w, err.Error())
	case errors.Is(err, canvas.ErrNotFound):
		httputil.NotFound(w, err.Error())
	case errors.Is(err, export.ErrExport):
		httputil.InternalServerError(w, s.sess.Messages().ExportFailed)
	default:
		monitoring.Logf("request failed: %v", err)
		httputil.InternalServerError(w, err.Error())
	}
}
