package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/applicant-scorer/internal/engine"
	"github.com/jonathan/applicant-scorer/internal/store"
	"github.com/jonathan/applicant-scorer/internal/types"
)

// batchConcurrency bounds the fan-out of batch evaluations. Evaluation is
// pure and CPU-bound, so the limit only exists to keep one large batch from
// starving other requests.
const batchConcurrency = 8

// evaluateResponse is the wire shape of a single evaluation outcome.
type evaluateResponse struct {
	ID             string                 `json:"id,omitempty"`
	TotalPercent   int                    `json:"totalPercent"`
	Level          string                 `json:"level"`
	Details        []types.CategoryResult `json:"details"`
	Disqualified   bool                   `json:"disqualified"`
	DisqualifierID string                 `json:"disqualifierId,omitempty"`
}

func toEvaluateResponse(result *types.EvaluationResult) evaluateResponse {
	return evaluateResponse{
		TotalPercent:   result.OverallPercent,
		Level:          result.Label,
		Details:        result.PerCategory,
		Disqualified:   result.Disqualified,
		DisqualifierID: result.DisqualifierID,
	}
}

// resolveConfig returns the request's inline config, or loads one from the
// store by key (falling back to the server default key).
func (s *Server) resolveConfig(ctx context.Context, inline *types.ScoringConfig, key string) (*types.ScoringConfig, string, error) {
	if inline != nil {
		return inline, "", nil
	}
	if key == "" {
		key = s.defaultConfigKey
	}
	cfg, err := s.store.GetConfig(ctx, key)
	return cfg, key, err
}

// handleEvaluate scores one profile against a scoring configuration.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	cfg, key, err := s.resolveConfig(r.Context(), req.Config, req.ConfigKey)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := engine.Evaluate(req.Profile, cfg)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := toEvaluateResponse(result)
	if key != "" {
		// Store-resolved evaluations are persisted; inline-config calls are
		// treated as ad hoc and left unrecorded.
		id, err := s.store.SaveEvaluation(r.Context(), key, result)
		if err != nil {
			log.Printf("failed to persist evaluation: %v", err)
		} else {
			response.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleEvaluateBatch scores many profiles against one configuration with
// bounded concurrency, preserving request order in the response.
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	cfg, _, err := s.resolveConfig(r.Context(), req.Config, req.ConfigKey)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Validate once up front so a bad configuration fails the whole batch
	// before any work is fanned out.
	if _, err := engine.ValidateConfig(cfg); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	results := make([]evaluateResponse, len(req.Profiles))
	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)
	for i, profile := range req.Profiles {
		g.Go(func() error {
			result, err := engine.Evaluate(profile, cfg)
			if err != nil {
				return err
			}
			results[i] = toEvaluateResponse(result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// handleListEvaluations lists persisted evaluation records.
func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 200)
	offset := parseQueryInt(r, "offset", 0, 0)

	records, total, err := s.store.ListEvaluations(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if records == nil {
		records = []store.EvaluationRecord{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"evaluations": records,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}
