package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario/scenariotest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type brokenSource struct{}

func (brokenSource) Load(context.Context) ([]mission.Record, error) {
	return nil, errors.New("connection refused")
}

func newTestServer(src mission.Source) *Server {
	return New(Options{
		Catalog:  scenariotest.Catalog(),
		Missions: src,
		GridSize: 4,
		Workers:  2,
	})
}

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func fixtureServer() *Server {
	return newTestServer(mission.StaticSource(scenariotest.Records()))
}

func TestHealthAndCorrelationID(t *testing.T) {
	s := fixtureServer()
	w, body := do(t, s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Correlation-ID"))
}

func TestBases(t *testing.T) {
	w, body := do(t, fixtureServer(), http.MethodGet, "/api/bases", "")
	require.Equal(t, http.StatusOK, w.Code)
	existing, ok := body["existing_bases"].([]any)
	require.True(t, ok)
	assert.Len(t, existing, 3)
}

func TestSimulate(t *testing.T) {
	w, body := do(t, fixtureServer(), http.MethodPost, "/api/scenario/simulate", `{"base_locations":["BANGOR","PORTLAND"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	kpis := body["kpis"].(map[string]any)
	assert.Equal(t, 62.5, kpis["coverage"].(map[string]any)["coverage_rate"])
	assert.Equal(t, 1780000.0, kpis["cost"].(map[string]any)["total_cost"])
	assert.Equal(t, 3285.0, kpis["missions"].(map[string]any)["estimated_capacity"])
}

func TestSimulateReportsRepeatedBase(t *testing.T) {
	w, body := do(t, fixtureServer(), http.MethodPost, "/api/scenario/simulate", `{"base_locations":["BANGOR","bangor"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, body["warnings"], 1)
}

func TestSimulateInvalidParameters(t *testing.T) {
	w, body := do(t, fixtureServer(), http.MethodPost, "/api/scenario/simulate", `{"fleet_size":0,"service_radius_miles":500}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	report := body["validation"].(map[string]any)
	assert.Equal(t, false, report["valid"])
	assert.Len(t, report["errors"], 2)

	w, _ = do(t, fixtureServer(), http.MethodPost, "/api/scenario/simulate", `{"fleet_size":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSourceFailureIsServerError(t *testing.T) {
	w, body := do(t, newTestServer(brokenSource{}), http.MethodPost, "/api/scenario/simulate", `{}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", body["error"])
}

func TestCompare(t *testing.T) {
	s := fixtureServer()
	w, body := do(t, s, http.MethodPost, "/api/scenario/compare", `{"scenarios":[
		{"name":"bangor","params":{"base_locations":["BANGOR"]}},
		{"name":"bangor+portland","params":{"base_locations":["BANGOR","PORTLAND"]}}
	]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cmp := body["comparison"].(map[string]any)
	assert.Equal(t, "bangor", cmp["lowest_cost"].(map[string]any)["scenario_id"])
	assert.Equal(t, "bangor+portland", cmp["best_coverage"].(map[string]any)["scenario_id"])

	w, _ = do(t, s, http.MethodPost, "/api/scenario/compare", `{"scenarios":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPareto(t *testing.T) {
	s := fixtureServer()
	w, body := do(t, s, http.MethodPost, "/api/pareto", `{
		"base_locations":["BANGOR","PORTLAND"],
		"radius":{"min":20,"max":60,"step":20},
		"sla":{"min":10,"max":20,"step":10},
		"weights":{"population":1,"sla":1,"cost":1}
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	meta := body["metadata"].(map[string]any)
	assert.Equal(t, 6.0, meta["n_scenarios"])
	assert.NotNil(t, body["optimal_scenario"])

	w, _ = do(t, s, http.MethodPost, "/api/pareto", `{"radius":{"min":20,"max":60,"step":0}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSiting(t *testing.T) {
	s := fixtureServer()
	w, body := do(t, s, http.MethodPost, "/api/siting", `{"existing_bases":["BANGOR"],"candidate_base":"PORTLAND"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	lift := body["sla_lift"].(map[string]any)
	assert.InDelta(t, 60000.0, lift["cost_per_sla_point"], 1e-6)
	assert.Equal(t, 500000.0, lift["incremental_cost"])

	w, body = do(t, s, http.MethodPost, "/api/siting", `{"existing_bases":["BANGOR"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body["after_scenario"])

	w, body = do(t, s, http.MethodPost, "/api/siting/rank", `{"existing_bases":["BANGOR"],"candidate_bases":["PRESQUE ISLE","PORTLAND"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	ranking := body["ranking"].([]any)
	require.Len(t, ranking, 2)
	assert.Equal(t, "PORTLAND", ranking[0].(map[string]any)["candidate_base"])
}

func TestSpeedsAndAssetType(t *testing.T) {
	s := fixtureServer()
	w, body := do(t, s, http.MethodGet, "/api/siting/speeds", "")
	require.Equal(t, http.StatusOK, w.Code)
	speeds := body["speeds"].(map[string]any)
	assert.Contains(t, speeds, "B-CCT")
	assert.NotContains(t, speeds, "S-CCT")

	w, body = do(t, s, http.MethodGet, "/api/siting/assets/B-CCT?radius=50&expected=20", "")
	require.Equal(t, http.StatusOK, w.Code)
	compliance := body["compliance_stats"].(map[string]any)
	assert.Equal(t, 2.0, compliance["total_tasks"])

	w, _ = do(t, s, http.MethodGet, "/api/siting/assets/B-CCT?radius=-5", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoverageGrid(t *testing.T) {
	s := fixtureServer()
	w, body := do(t, s, http.MethodGet, "/api/coverage/grid?bases=BANGOR,PORTLAND&radius=50&size=5", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, body["grid"], 25)

	w, body = do(t, s, http.MethodGet, "/api/coverage/grid", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["grid"], 16)

	w, _ = do(t, s, http.MethodGet, "/api/coverage/grid?size=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = do(t, s, http.MethodGet, "/api/coverage/grid?bases=NOWHERE", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatchments(t *testing.T) {
	w, body := do(t, fixtureServer(), http.MethodGet, "/api/coverage/catchments?bases=BANGOR&bases=PORTLAND", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, body["catchments"], 2)
}
