package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/applicant-scorer/internal/grading"
	"github.com/jonathan/applicant-scorer/internal/types"
)

// handleGrade scores one free-text interview answer. An org id resolves
// reference data for the enrichment bonus; without it the answer is graded
// on the rubric alone.
func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	var req types.GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var orgCtx *types.OrgContext
	if req.OrgID != "" {
		loaded, err := s.store.GetOrgContext(r.Context(), req.OrgID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		orgCtx = loaded
	}

	result, err := grading.GradeByQuestionKey(req.QuestionKey, req.Answer, orgCtx)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
