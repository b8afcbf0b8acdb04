package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"openapi-stub-server/internal/version"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Error().Err(err).Msg("Failed to encode response")
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": version.Version,
	})
}

func (s *Server) handleListEndpoints(w http.ResponseWriter, r *http.Request) {
	summaries := s.table.Summaries()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"endpoints": summaries,
		"count":     len(summaries),
	})
}

// handleSpec serves the loaded document verbatim; openapi3.T marshals
// itself back to JSON.
func (s *Server) handleSpec(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.doc)
}

// handleStub resolves any otherwise-unrouted request against the
// endpoint table.
func (s *Server) handleStub(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, r.URL.Path)
}

// handleAPIRedirect dispatches requests made under the /api prefix,
// which is how the docs UI reaches the stubs.
func (s *Server) handleAPIRedirect(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, strings.TrimPrefix(r.URL.Path, "/api"))
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, path string) {
	result, ok := s.table.Dispatch(r.Method, path)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":  "Endpoint not found",
			"path":   path,
			"method": strings.ToLower(r.Method),
		})
		return
	}

	writeJSON(w, result.StatusCode, result.Body)
}
