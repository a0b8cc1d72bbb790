package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/projectdiscovery/gologger"

	"github.com/caseforge/caseforge"
)

// ScenarioRequest is the input of /generate-by-scenario.
type ScenarioRequest struct {
	Scenario string `json:"scenario"`
	Platform string `json:"platform"`
}

// ScenarioResponse is the output of /generate-by-scenario.
type ScenarioResponse struct {
	Scenario  string                    `json:"scenario"`
	Platform  string                    `json:"platform"`
	TestCases []*caseforge.ScenarioCase `json:"test_cases"`
}

// CombinationRequest is the input of /generate-combinations. When
// text_fields/binary_fields are set the scenario library is bypassed.
type CombinationRequest struct {
	Scenario     string   `json:"scenario"`
	Platform     string   `json:"platform"`
	TextFields   []string `json:"text_fields,omitempty"`
	BinaryFields []string `json:"binary_fields,omitempty"`
	Page         int      `json:"page"`
	PageSize     int      `json:"page_size"`
	MaxCases     int      `json:"max_cases"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	cases, err := caseforge.GenerateScenarioCases(req.Scenario, req.Platform)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	platform := req.Platform
	if platform == "" {
		platform = "generic"
	}
	writeJSON(w, http.StatusOK, &ScenarioResponse{
		Scenario:  req.Scenario,
		Platform:  platform,
		TestCases: cases,
	})
}

func (s *Server) handleCombinations(w http.ResponseWriter, r *http.Request) {
	var req CombinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	result, err := s.generate(r, &req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDownloadMarkdown(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &CombinationRequest{
		Scenario: query.Get("scenario"),
		Platform: query.Get("platform"),
		MaxCases: caseforge.DefaultPageSize,
	}
	if raw := query.Get("max_cases"); raw != "" {
		maxCases, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid max_cases: %w", err))
			return
		}
		req.MaxCases = maxCases
	}
	// single page carrying everything the cap allows
	req.PageSize = req.MaxCases
	result, err := s.generate(r, req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	filename := caseforge.FileSlug(req.Scenario) + "_test_cases.md"
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(result.CombinedMarkdown)); err != nil {
		gologger.Error().Msgf("failed to write markdown response got %v", err)
	}
}

func (s *Server) generate(r *http.Request, req *CombinationRequest) (*caseforge.CombinationResult, error) {
	generator, err := caseforge.New(&caseforge.Options{
		Scenario:     req.Scenario,
		Platform:     req.Platform,
		TextFields:   req.TextFields,
		BinaryFields: req.BinaryFields,
		Page:         req.Page,
		PageSize:     req.PageSize,
		MaxCases:     req.MaxCases,
		Library:      s.library,
	})
	if err != nil {
		return nil, err
	}
	return generator.GenerateCombinations(r.Context())
}

// statusFor maps caller input errors to 400, everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, caseforge.ErrUnknownScenario),
		errors.Is(err, caseforge.ErrInvalidPageSize),
		errors.Is(err, caseforge.ErrInvalidMaxCases),
		errors.Is(err, caseforge.ErrInvalidFieldSpec):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		gologger.Error().Msgf("failed to encode response got %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, &errorResponse{Error: err.Error()})
}
