package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caseforge/caseforge"
)

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		bin, err := json.Marshal(body)
		require.Nil(t, err)
		reader = bytes.NewReader(bin)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, New().Handler(), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGenerateByScenario(t *testing.T) {
	rec := doJSON(t, New().Handler(), http.MethodPost, "/generate-by-scenario", &ScenarioRequest{
		Scenario: "bluetooth pairing",
		Platform: "automotive",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScenarioResponse
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.TestCases, 4)
	require.Equal(t, "BLUETOOTH-001", resp.TestCases[0].ID)
	require.Equal(t, "automotive", resp.Platform)
}

func TestGenerateByScenarioEmpty(t *testing.T) {
	rec := doJSON(t, New().Handler(), http.MethodPost, "/generate-by-scenario", &ScenarioRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateCombinations(t *testing.T) {
	rec := doJSON(t, New().Handler(), http.MethodPost, "/generate-combinations", &CombinationRequest{
		Scenario: "bluetooth pairing and reconnection",
		Platform: "automotive",
		Page:     1,
		PageSize: 5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp caseforge.CombinationResult
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "bluetooth", resp.Domain)
	require.EqualValues(t, 972, resp.TotalCombinations.Int64())
	require.Equal(t, 5, resp.ReturnedCount)
	require.Equal(t, "BLUETOOTH-0001", resp.Cases[0].ID)
}

func TestGenerateCombinationsValidation(t *testing.T) {
	handler := New().Handler()

	rec := doJSON(t, handler, http.MethodPost, "/generate-combinations", &CombinationRequest{
		Scenario: "no such scenario anywhere",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "does not match any known domain")

	rec = doJSON(t, handler, http.MethodPost, "/generate-combinations", &CombinationRequest{
		Scenario: "login",
		PageSize: -1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/generate-combinations", &CombinationRequest{
		Scenario: "login",
		MaxCases: -5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateCombinationsEmptyScenario(t *testing.T) {
	// a blank scenario is caller input, it must answer 400 like any other
	// unresolvable scenario, not 500
	handler := New().Handler()
	for _, scenario := range []string{"", "   "} {
		rec := doJSON(t, handler, http.MethodPost, "/generate-combinations", &CombinationRequest{
			Scenario: scenario,
			PageSize: 5,
		})
		require.Equalf(t, http.StatusBadRequest, rec.Code, "scenario %q body %v", scenario, rec.Body.String())
	}
}

func TestGenerateCombinationsExplicitFields(t *testing.T) {
	rec := doJSON(t, New().Handler(), http.MethodPost, "/generate-combinations", &CombinationRequest{
		Scenario:     "totally custom flow",
		TextFields:   []string{"alpha"},
		BinaryFields: []string{"beta"},
		PageSize:     10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp caseforge.CombinationResult
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 6, resp.ReturnedCount)
	require.Equal(t, "TOTALLY-0001", resp.Cases[0].ID)
}

func TestDownloadMarkdown(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/download-markdown?scenario=bluetooth+pairing&platform=automotive&max_cases=3", nil)
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	require.Contains(t, rec.Header().Get("Content-Disposition"), `bluetooth_pairing_test_cases.md`)
	require.Equal(t, 3, strings.Count(rec.Body.String(), "### BLUETOOTH-"))
}

func TestDownloadMarkdownUnknownScenario(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/download-markdown?scenario=unmatched+gibberish", nil)
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerCustomLibrary(t *testing.T) {
	library := &caseforge.Config{Domains: []caseforge.DomainConfig{{
		Name:         "garage",
		Keywords:     []string{"garage"},
		TextFields:   []string{"remote_id"},
		BinaryFields: []string{"is_closed"},
	}}}
	rec := doJSON(t, New(WithLibrary(library)).Handler(), http.MethodPost, "/generate-combinations", &CombinationRequest{
		Scenario: "garage door",
		PageSize: 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp caseforge.CombinationResult
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "garage", resp.Domain)
	require.Equal(t, 6, resp.ReturnedCount)
}
