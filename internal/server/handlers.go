package server

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/compare"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/coverage"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/pareto"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/siting"
)

// MaxGridSize caps the coverage surface resolution per axis.
const MaxGridSize = 200

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "locations": s.opts.Catalog.Len()})
}

func (s *Server) handleBases(c *gin.Context) {
	c.JSON(http.StatusOK, s.opts.Catalog.Bases(s.opts.Existing, s.opts.Candidates))
}

func (s *Server) existing() []string {
	if len(s.opts.Existing) > 0 {
		return append([]string(nil), s.opts.Existing...)
	}
	return append([]string(nil), catalog.ExistingBases...)
}

func (s *Server) candidates() []string {
	if len(s.opts.Candidates) > 0 {
		return append([]string(nil), s.opts.Candidates...)
	}
	return append([]string(nil), catalog.CandidateSites...)
}

// defaults is the parameter set request bodies are decoded over.
func (s *Server) defaults() scenario.Parameters {
	p := scenario.DefaultParameters().WithBases(s.existing())
	p.Rates = s.opts.Rates
	return p
}

func (s *Server) handleSimulate(c *gin.Context) {
	p := s.defaults()
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid request body: %v", err)
		return
	}
	sim, err := s.simulator(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	b, err := sim.Simulate(p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "kpis": b, "warnings": p.Check().Warnings})
}

type compareRequest struct {
	Scenarios []json.RawMessage `json:"scenarios"`
}

func (s *Server) handleCompare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: %v", err)
		return
	}
	sets := make([]compare.Named, len(req.Scenarios))
	for i, raw := range req.Scenarios {
		sets[i] = compare.Named{Parameters: s.defaults()}
		if err := json.Unmarshal(raw, &sets[i]); err != nil {
			badRequest(c, "scenario %d: %v", i+1, err)
			return
		}
	}
	if len(sets) == 0 {
		fail(c, compare.ErrNoScenarios)
		return
	}
	sim, err := s.simulator(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	cmp, bundles, err := compare.Run(sim, sets)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comparison": cmp, "scenarios": bundles})
}

func (s *Server) handlePareto(c *gin.Context) {
	req := pareto.DefaultRequest()
	req.Rates = s.opts.Rates
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid request body: %v", err)
		return
	}
	req.Workers = s.opts.Workers
	req.Timeout = s.opts.Timeout

	ctx := c.Request.Context()
	sim, err := s.simulator(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	out, err := pareto.Analyze(ctx, sim, s.opts.Catalog, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type sitingRequest struct {
	scenario.Parameters
	ExistingBases []string `json:"existing_bases"`
	CandidateBase string   `json:"candidate_base"`
	Candidates    []string `json:"candidate_bases"`
}

func (s *Server) bindSiting(c *gin.Context) (sitingRequest, bool) {
	req := sitingRequest{
		Parameters:    s.defaults(),
		ExistingBases: s.existing(),
		Candidates:    s.candidates(),
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid request body: %v", err)
		return req, false
	}
	return req, true
}

func (s *Server) handleSiting(c *gin.Context) {
	req, ok := s.bindSiting(c)
	if !ok {
		return
	}
	sim, err := s.simulator(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out, err := siting.EvaluateCandidate(sim, req.ExistingBases, req.CandidateBase, req.Parameters)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleRankSites(c *gin.Context) {
	req, ok := s.bindSiting(c)
	if !ok {
		return
	}
	sim, err := s.simulator(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ranked, err := siting.RankCandidates(sim, req.ExistingBases, req.Candidates, req.Parameters)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"existing_bases": req.ExistingBases, "ranking": ranked})
}

func (s *Server) handleSpeeds(c *gin.Context) {
	records, err := s.opts.Missions.Load(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"speeds": siting.LearnSpeeds(records, s.opts.Catalog)})
}

func (s *Server) handleAssetType(c *gin.Context) {
	radius, ok := queryFloat(c, "radius", 50)
	if !ok {
		return
	}
	expected, ok := queryFloat(c, "expected", 20)
	if !ok {
		return
	}
	records, err := s.opts.Missions.Load(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := siting.EvaluateAssetType(records, s.opts.Catalog, c.Param("asset"), radius, expected, queryList(c, "bases"))
	c.JSON(http.StatusOK, out)
}

// resolveQueryBases reads the bases and radius query parameters shared by
// the coverage endpoints.
func (s *Server) resolveQueryBases(c *gin.Context) ([]catalog.Location, float64, bool) {
	radius, ok := queryFloat(c, "radius", 50)
	if !ok {
		return nil, 0, false
	}
	names := queryList(c, "bases")
	if len(names) == 0 {
		names = s.existing()
	}
	bases := s.opts.Catalog.ResolveBases(names)
	if len(bases) == 0 {
		badRequest(c, "no known base in %v", names)
		return nil, 0, false
	}
	return bases, radius, true
}

func (s *Server) handleCoverageGrid(c *gin.Context) {
	bases, radius, ok := s.resolveQueryBases(c)
	if !ok {
		return
	}
	size := s.opts.GridSize
	if v := c.Query("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > MaxGridSize {
			badRequest(c, "size must be an integer in [1, %d]", MaxGridSize)
			return
		}
		size = n
	}
	cells := coverage.Grid(bases, s.opts.Catalog.Locations(), radius, size, s.opts.Response)
	c.JSON(http.StatusOK, gin.H{
		"bases":      bases,
		"radius":     radius,
		"thresholds": coverage.Thresholds,
		"grid":       cells,
	})
}

func (s *Server) handleCatchments(c *gin.Context) {
	bases, radius, ok := s.resolveQueryBases(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"radius":     radius,
		"catchments": coverage.Catchments(bases, s.opts.Catalog.Locations(), radius),
	})
}

// queryFloat reads a positive number, writing a 400 when it is malformed.
func queryFloat(c *gin.Context, key string, def float64) (float64, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f > 0) || math.IsInf(f, 0) {
		badRequest(c, "%s must be a positive number", key)
		return 0, false
	}
	return f, true
}

func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
