package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	phraserrors "github.com/phrasplit/phrasplit/core/errors"
	"github.com/phrasplit/phrasplit/core/markup"
	"github.com/phrasplit/phrasplit/core/segment"
	"github.com/phrasplit/phrasplit/core/splitter"
	"github.com/phrasplit/phrasplit/internal/cache"
	"github.com/phrasplit/phrasplit/internal/logging"
)

// maxRequestBody caps request body size at 10 MiB.
const maxRequestBody = 10 << 20

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Timestamp string `json:"timestamp"`
}

// SplitRequest is the request body for /api/split and /ws/split.
type SplitRequest struct {
	Text     string `json:"text"`
	Mode     string `json:"mode,omitempty"`
	Backend  string `json:"backend,omitempty"`
	MaxChars int    `json:"max_chars,omitempty"`
}

// SplitResult is the result of a split operation.
type SplitResult struct {
	Segments []segment.Segment `json:"segments"`
	Count    int               `json:"count"`
	Cached   bool              `json:"cached"`
}

// ValidateRequest is the request body for /api/validate.
type ValidateRequest struct {
	SplitRequest
	Pattern string `json:"pattern"`
}

// ValidateResult is the result of a placeholder validation.
type ValidateResult struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
	Count    int      `json:"count"`
}

// SuggestRequest is the request body for /api/suggest.
type SuggestRequest struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
}

// SuggestResult is the result of a mode suggestion.
type SuggestResult struct {
	Mode string `json:"mode"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"name": "phrasplit API",
		"endpoints": []string{
			"GET /health",
			"POST /api/split",
			"POST /api/validate",
			"POST /api/suggest",
			"GET /api/patterns",
			"WS /ws/split",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"status":             "ok",
		"accurate_available": splitter.AccurateAvailable(),
	})
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	key := cache.Key(req.Text, req.Mode, req.Backend, req.MaxChars)
	if s.cache != nil {
		if segs, ok := s.cache.Get(key); ok {
			respond(w, http.StatusOK, SplitResult{Segments: segs, Count: len(segs), Cached: true})
			return
		}
	}

	start := time.Now()
	segs, err := splitter.Split(req.Text, splitter.Options{
		Mode:     splitter.Mode(req.Mode),
		Backend:  splitter.Backend(req.Backend),
		MaxChars: req.MaxChars,
	})
	if err != nil {
		respondSplitError(w, err)
		return
	}

	logging.SplitRequest(req.Mode, req.Backend, len(req.Text), len(segs), time.Since(start))
	if fellBack(req.Backend, segs) {
		logging.BackendFallback(string(splitter.BackendAuto), string(splitter.BackendFast),
			"sentence model unavailable")
	}

	if s.cache != nil {
		s.cache.Put(key, segs)
	}
	respond(w, http.StatusOK, SplitResult{Segments: segs, Count: len(segs)})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.Pattern == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PATTERN", "pattern is required")
		return
	}

	segs, err := splitter.Split(req.Text, splitter.Options{
		Mode:     splitter.Mode(req.Mode),
		Backend:  splitter.Backend(req.Backend),
		MaxChars: req.MaxChars,
	})
	if err != nil {
		respondSplitError(w, err)
		return
	}

	warnings, err := markup.ValidateNoPlaceholderBreaks(req.Text, segs, resolvePattern(req.Pattern))
	if err != nil {
		respondSplitError(w, err)
		return
	}

	respond(w, http.StatusOK, ValidateResult{
		Valid:    len(warnings) == 0,
		Warnings: warnings,
		Count:    len(segs),
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.Pattern == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PATTERN", "pattern is required")
		return
	}

	mode, err := markup.SuggestSplittingMode(req.Text, resolvePattern(req.Pattern))
	if err != nil {
		respondSplitError(w, err)
		return
	}

	respond(w, http.StatusOK, SuggestResult{Mode: string(mode)})
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	respond(w, http.StatusOK, markup.Patterns)
}

// fellBack reports whether an auto-backend request was served by the
// pattern scanner, meaning the sentence model was unavailable and the
// silent fallback fired. The segments' recorded method is the ground truth
// for which provider actually ran.
func fellBack(backend string, segs []segment.Segment) bool {
	if backend != "" && backend != string(splitter.BackendAuto) {
		return false
	}
	return len(segs) > 0 && segs[0].Meta["method"] == string(splitter.BackendFast)
}

// resolvePattern maps a named markup dialect to its pattern; anything else
// is treated as a raw regular expression.
func resolvePattern(pattern string) string {
	if p, ok := markup.Patterns[pattern]; ok {
		return p
	}
	return pattern
}

// decodeRequest decodes a POST JSON body into dst, writing an error response
// and returning false on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return false
	}

	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	data, err := io.ReadAll(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Failed to read request body")
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON")
		return false
	}
	return true
}

// classifySplitError maps splitting errors to an HTTP status and error code.
// Configuration problems are client errors; a missing backend is a service
// condition.
func classifySplitError(err error) (int, string) {
	switch {
	case errors.Is(err, phraserrors.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE"
	case errors.Is(err, phraserrors.ErrInvalidMode):
		return http.StatusBadRequest, "INVALID_MODE"
	case errors.Is(err, phraserrors.ErrInvalidPattern):
		return http.StatusBadRequest, "INVALID_PATTERN"
	case errors.Is(err, phraserrors.ErrInvalidConfiguration):
		return http.StatusBadRequest, "INVALID_CONFIGURATION"
	case errors.Is(err, phraserrors.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func respondSplitError(w http.ResponseWriter, err error) {
	status, code := classifySplitError(err)
	if status == http.StatusInternalServerError {
		logging.Error("split request failed", "error", err)
		respondError(w, status, code, "Internal server error")
		return
	}
	respondError(w, status, code, err.Error())
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
