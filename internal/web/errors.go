package web

// errors.go provides unified response helpers for the web layer.
// Errors are logged server-side with the request id for correlation and
// returned to clients as a small JSON body.

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/milsabores/storefront/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON response. The body is encoded to a
// buffer first so an encoding failure can still produce a clean 500
// instead of a truncated 200.
func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("response encoding failed",
			"path", r.URL.Path,
			"error", err,
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// respondError logs the failure and writes a JSON error response. The
// logger comes from the request context so the entry carries the
// request id.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	logging.FromContext(r.Context()).Warn("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"message", message,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
