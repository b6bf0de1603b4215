package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/storelens/storelens/internal/utils"
	"github.com/storelens/storelens/pkg/detector"
	"github.com/storelens/storelens/pkg/storage"
)

type detectRequest struct {
	URL string `json:"url"`
}

// themeError mirrors the theme endpoint's failure contract: an explicit
// null theme alongside the error message.
type themeError struct {
	Success bool                      `json:"success"`
	Theme   *detector.ThemeDescriptor `json:"theme"`
	Error   string                    `json:"error"`
}

type appsError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Log.Warn("failed to encode response: ", err)
	}
}

func (s *Server) handleDetectTheme(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, themeError{Error: "Internal server error"})
		return
	}

	report, err := s.Analyzer.AnalyzeTheme(r.Context(), req.URL)
	if err != nil {
		status, msg := themeErrorResponse(err)
		writeJSON(w, status, themeError{Error: msg})
		return
	}

	s.record(r, storage.Analysis{
		StoreURL:     report.StoreURL,
		StoreDomain:  detector.RootDomain(report.StoreURL),
		StoreTitle:   report.StoreTitle,
		Kind:         storage.KindTheme,
		Success:      true,
		ThemeName:    derefString(report.Theme.Name),
		ThemeStoreID: derefInt(report.Theme.ThemeStoreID),
		ThemeType:    report.Theme.Type,
	})

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDetectApps(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, appsError{Error: "Internal server error"})
		return
	}

	report, err := s.Analyzer.AnalyzeApps(r.Context(), req.URL)
	if err != nil {
		status, msg := appsErrorResponse(err)
		writeJSON(w, status, appsError{Error: msg})
		return
	}

	s.record(r, storage.Analysis{
		StoreURL:    report.StoreURL,
		StoreDomain: detector.RootDomain(report.StoreURL),
		StoreTitle:  report.StoreTitle,
		Kind:        storage.KindApps,
		Success:     true,
		TotalApps:   report.TotalApps,
	})

	writeJSON(w, http.StatusOK, report)
}

// themeErrorResponse maps analysis errors to the theme endpoint's
// user-facing messages and statuses.
func themeErrorResponse(err error) (int, string) {
	var fe *detector.FetchError
	switch {
	case errors.Is(err, detector.ErrMissingURL):
		return http.StatusBadRequest, "URL is required"
	case errors.Is(err, detector.ErrInvalidURL):
		return http.StatusBadRequest, "Please enter a valid URL"
	case errors.As(err, &fe):
		if fe.Status != "" {
			return http.StatusBadRequest, "Failed to fetch website: " + fe.Status
		}
		return http.StatusBadRequest, "Failed to fetch website"
	case errors.Is(err, detector.ErrNotShopify):
		return http.StatusBadRequest, "This website is not a Shopify store"
	case errors.Is(err, detector.ErrNoThemeInfo):
		return http.StatusBadRequest, "No theme information detected"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// appsErrorResponse maps analysis errors to the apps endpoint's messages.
func appsErrorResponse(err error) (int, string) {
	var fe *detector.FetchError
	switch {
	case errors.Is(err, detector.ErrMissingURL):
		return http.StatusBadRequest, "URL is required"
	case errors.Is(err, detector.ErrInvalidURL):
		return http.StatusBadRequest, "Invalid URL format"
	case errors.As(err, &fe):
		return http.StatusBadRequest, "Failed to fetch website content"
	case errors.Is(err, detector.ErrNotShopify):
		return http.StatusBadRequest, "This does not appear to be a Shopify store"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// record appends to the history DB when one is configured. Failures are
// logged, never surfaced: history is an observer, not part of the contract.
func (s *Server) record(r *http.Request, a storage.Analysis) {
	if s.History == nil {
		return
	}
	if err := s.History.RecordAnalysis(r.Context(), a); err != nil {
		utils.Log.Warn("failed to record analysis: ", err)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		http.Error(w, "history is not enabled", http.StatusServiceUnavailable)
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	entries, err := s.History.ListRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []storage.Analysis{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		http.Error(w, "history is not enabled", http.StatusServiceUnavailable)
		return
	}
	stats, err := s.History.GetStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
