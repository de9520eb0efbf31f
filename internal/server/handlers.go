package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/placement-readiness/internal/analyzer"
	"github.com/jonathan/placement-readiness/internal/scoring"
	"github.com/jonathan/placement-readiness/internal/types"
)

// AnalyzeResponse wraps a created record with an optional advisory warning.
type AnalyzeResponse struct {
	Analysis *types.AnalysisRecord `json:"analysis"`
	Warning  string                `json:"warning,omitempty"`
}

// ToggleRequest is the body for POST /analyses/{id}/toggle.
type ToggleRequest struct {
	Skill string `json:"skill"`
}

// handleAnalyze runs the analysis pipeline and persists the record.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := s.analyzer.Analyze(req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.Save(r.Context(), record); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis: "+err.Error())
		return
	}

	resp := AnalyzeResponse{Analysis: record}
	if warning, ok := analyzer.ShortJDWarning(req.JDText); ok {
		resp.Warning = warning
	}
	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleListAnalyses returns the history newest first, with the count of
// corrupted entries that were excluded.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	records, corrupted, err := s.store.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses":  records,
		"total":     len(records),
		"corrupted": corrupted,
	})
}

// handleGetAnalysis retrieves one record by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	record, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if record == nil {
		notFound := &ErrRecordNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteAnalysis removes one record by id.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleToggleSkill flips one skill's confidence and recomputes the final
// score, writing the record back in a single read-modify-write cycle.
func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Skill == "" {
		s.errorResponse(w, http.StatusBadRequest, "Field 'skill' is required")
		return
	}

	record, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if record == nil {
		notFound := &ErrRecordNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	updated := scoring.ToggleConfidence(*record, req.Skill)
	stored, err := s.store.Update(r.Context(), &updated)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if stored == nil {
		// Deleted between read and write; surface as missing.
		notFound := &ErrRecordNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
