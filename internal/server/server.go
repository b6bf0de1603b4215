// Package server exposes the detection engine over a JSON HTTP API.
package server

import (
	"net/http"

	"github.com/storelens/storelens/internal/utils"
	"github.com/storelens/storelens/pkg/detector"
	"github.com/storelens/storelens/pkg/storage"
)

// Server holds the analysis dependencies shared by all handlers.
// History may be nil, in which case analyses are not recorded and the
// history endpoints report the feature as disabled.
type Server struct {
	Analyzer *detector.Analyzer
	History  *storage.DB
}

// New builds a server around the given analyzer and optional history DB.
func New(analyzer *detector.Analyzer, history *storage.DB) *Server {
	return &Server{
		Analyzer: analyzer,
		History:  history,
	}
}

// Handler returns the routed HTTP handler. Exposed separately from Start
// so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/detect", s.handleDetectTheme)
	mux.HandleFunc("POST /api/detect-apps", s.handleDetectApps)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	return mux
}

// Start runs the HTTP server on addr until it fails.
func (s *Server) Start(addr string) error {
	utils.Log.Info("Starting server on ", addr)
	return http.ListenAndServe(addr, s.Handler())
}
