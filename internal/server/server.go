// Package server exposes the planning analyses over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/compare"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/cost"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/geo"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
)

// Options configures a Server. Catalog and Missions are required.
type Options struct {
	Catalog    *catalog.Catalog
	Missions   mission.Source
	Existing   []string
	Candidates []string
	Rates      cost.Rates
	Response   geo.ResponseModel
	GridSize   int
	Workers    int
	Timeout    time.Duration
}

// Server is the HTTP API over the planning analyses. Mission records are
// loaded per request so every request sees the source's current contents.
type Server struct {
	router *gin.Engine
	opts   Options
}

// New builds the router.
func New(opts Options) *Server {
	if opts.Rates == (cost.Rates{}) {
		opts.Rates = cost.DefaultRates()
	}
	if opts.Response.SpeedMPH <= 0 {
		opts.Response = geo.DefaultResponseModel()
	}
	s := &Server{router: gin.New(), opts: opts}
	s.router.Use(gin.Recovery(), correlationMiddleware())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/api/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/bases", s.handleBases)

		api.POST("/scenario/simulate", s.handleSimulate)
		api.POST("/scenario/compare", s.handleCompare)
		api.POST("/pareto", s.handlePareto)

		api.POST("/siting", s.handleSiting)
		api.POST("/siting/rank", s.handleRankSites)
		api.GET("/siting/speeds", s.handleSpeeds)
		api.GET("/siting/assets/:asset", s.handleAssetType)

		api.GET("/coverage/grid", s.handleCoverageGrid)
		api.GET("/coverage/catchments", s.handleCatchments)
	}
}

// Handler returns the router for use with httptest or a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("lifeflight API listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down lifeflight API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func correlationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.Set("correlation_id", correlationID)
		c.Header("X-Correlation-ID", correlationID)
		c.Next()
	}
}

// simulator loads the mission records for one request.
func (s *Server) simulator(ctx context.Context) (*scenario.Simulator, error) {
	records, err := s.opts.Missions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading missions: %w", err)
	}
	return scenario.NewSimulator(s.opts.Catalog, records), nil
}

// fail maps an analysis error onto a status code. Bad input is a 400 with
// the validation report when there is one.
func fail(c *gin.Context, err error) {
	var pe *scenario.ParameterError
	switch {
	case errors.As(err, &pe):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "validation": pe.Report})
	case errors.Is(err, scenario.ErrInvalidParameters), errors.Is(err, compare.ErrNoScenarios):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "analysis timed out"})
	default:
		log.Printf("request %s failed: %v", c.GetString("correlation_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, format string, args ...any) {
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(format, args...)})
}
