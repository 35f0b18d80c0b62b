package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleListConfigs lists known configuration keys with their newest versions.
func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	keys, err := s.store.ListConfigKeys(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"configs": keys})
}

// handleGetConfig returns the newest version of one scoring configuration.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	cfg, err := s.store.GetConfig(r.Context(), key)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, cfg)
}

// handleGetOrg returns the reference data for one police service.
func (s *Server) handleGetOrg(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	orgCtx, err := s.store.GetOrgContext(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, orgCtx)
}

// handleGetEvaluation returns one persisted evaluation record.
func (s *Server) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid evaluation ID")
		return
	}

	record, err := s.store.GetEvaluation(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}
