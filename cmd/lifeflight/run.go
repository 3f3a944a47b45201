package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nudataviz/project-fall25-lifeflight/internal/server"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/compare"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/coverage"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/pareto"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/siting"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportError prints the validation report behind a parameter error.
func reportError(err error) error {
	var pe *scenario.ParameterError
	if errors.As(err, &pe) {
		printValidationReport(pe.Report)
	}
	return err
}

func runSimulate(ctx context.Context, g *globalFlags, f *scenarioFlags) error {
	e, err := loadEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()

	sim, err := e.simulator(ctx)
	if err != nil {
		return err
	}
	p := e.params(f)
	for _, w := range p.Check().Warnings {
		log.Printf("warning: %s", w.Message)
	}
	b, err := sim.Simulate(p)
	if err != nil {
		return reportError(err)
	}
	if g.jsonOut {
		return printJSON(b)
	}
	printKPIs(b)
	return nil
}

// scenarioFile lists named parameter sets. Each entry is decoded over the
// configured defaults.
type scenarioFile struct {
	Scenarios []yaml.Node `yaml:"scenarios"`
}

func runCompare(ctx context.Context, g *globalFlags, path string) error {
	e, err := loadEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario file: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing scenario file: %w", err)
	}
	sets := make([]compare.Named, len(file.Scenarios))
	for i := range file.Scenarios {
		sets[i] = compare.Named{Parameters: e.params(defaultScenarioFlags())}
		if err := file.Scenarios[i].Decode(&sets[i]); err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}
	}

	sim, err := e.simulator(ctx)
	if err != nil {
		return err
	}
	cmp, bundles, err := compare.Run(sim, sets)
	if err != nil {
		return reportError(err)
	}
	if g.jsonOut {
		return printJSON(map[string]any{"comparison": cmp, "scenarios": bundles})
	}
	printComparison(cmp)
	return nil
}

func defaultScenarioFlags() *scenarioFlags {
	p := scenario.DefaultParameters()
	return &scenarioFlags{
		fleet:     p.FleetSize,
		crews:     p.CrewsPerVehicle,
		perDay:    p.MissionsPerVehiclePerDay,
		radius:    p.ServiceRadiusMiles,
		slaTarget: p.SLATargetMinutes,
	}
}

type paretoOptions struct {
	bases   []string
	radius  []float64
	sla     []float64
	weights []float64
	fleet   int
	crews   int
}

func toRange(name string, v []float64) (pareto.Range, error) {
	if len(v) != 3 {
		return pareto.Range{}, fmt.Errorf("--%s wants min,max,step, got %v", name, v)
	}
	return pareto.Range{Min: v[0], Max: v[1], Step: v[2]}, nil
}

func runPareto(ctx context.Context, g *globalFlags, o paretoOptions) error {
	e, err := loadEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()

	req := pareto.DefaultRequest()
	req.BaseLocations = o.bases
	req.FleetSize = o.fleet
	req.CrewsPerVehicle = o.crews
	req.Rates = e.cfg.Rates
	req.Workers = e.cfg.Grid.Workers
	req.Timeout = e.cfg.Grid.Timeout
	if req.Radius, err = toRange("radius", o.radius); err != nil {
		return err
	}
	if req.SLA, err = toRange("sla", o.sla); err != nil {
		return err
	}
	if len(o.weights) > 0 {
		if len(o.weights) != 3 {
			return fmt.Errorf("--weights wants population,sla,cost, got %v", o.weights)
		}
		req.Weights = &pareto.Weights{Population: o.weights[0], SLA: o.weights[1], Cost: o.weights[2]}
	}

	sim, err := e.simulator(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	out, err := pareto.Analyze(ctx, sim, e.catalog, req)
	if err != nil {
		return reportError(err)
	}
	if g.jsonOut {
		return printJSON(out)
	}
	printPareto(out, time.Since(start))
	return nil
}

func runSiting(ctx context.Context, g *globalFlags, f *scenarioFlags, candidate string, rank bool) error {
	e, err := loadEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()

	sim, err := e.simulator(ctx)
	if err != nil {
		return err
	}
	p := e.params(f)
	if rank {
		ranked, err := siting.RankCandidates(sim, p.BaseLocations, e.cfg.Bases.Candidates, p)
		if err != nil {
			return reportError(err)
		}
		if g.jsonOut {
			return printJSON(ranked)
		}
		printRanking(ranked)
		return nil
	}

	out, err := siting.EvaluateCandidate(sim, p.BaseLocations, candidate, p)
	if err != nil {
		return reportError(err)
	}
	if g.jsonOut {
		return printJSON(out)
	}
	printSiting(out)
	return nil
}

func runSpeeds(ctx context.Context, g *globalFlags) error {
	e, err := loadEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()

	records, err := e.records(ctx)
	if err != nil {
		return err
	}
	speeds := siting.LearnSpeeds(records, e.catalog)
	if g.jsonOut {
		return printJSON(speeds)
	}
	printSpeeds(speeds)
	return nil
}

func runAsset(ctx context.Context, g *globalFlags, asset string, bases []string, radius, expected float64) error {
	e, err := loadEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()

	records, err := e.records(ctx)
	if err != nil {
		return err
	}
	out := siting.EvaluateAssetType(records, e.catalog, asset, radius, expected, bases)
	if g.jsonOut {
		return printJSON(out)
	}
	printAssetType(out, expected)
	return nil
}

func runCoverageGrid(g *globalFlags, names []string, radius float64, size int) error {
	e, err := loadCatalog(g)
	if err != nil {
		return err
	}
	bases, err := e.bases(names)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = e.cfg.Grid.Size
	}
	return printJSON(map[string]any{
		"bases":      bases,
		"radius":     radius,
		"thresholds": coverage.Thresholds,
		"grid":       coverage.Grid(bases, e.catalog.Locations(), radius, size, e.cfg.Response),
	})
}

func runCatchments(g *globalFlags, names []string, radius float64) error {
	e, err := loadCatalog(g)
	if err != nil {
		return err
	}
	bases, err := e.bases(names)
	if err != nil {
		return err
	}
	catchments := coverage.Catchments(bases, e.catalog.Locations(), radius)
	if g.jsonOut {
		return printJSON(catchments)
	}
	printCatchments(catchments)
	return nil
}

func runCatalogFetch(ctx context.Context, g *globalFlags, area, out string) error {
	e, err := loadCatalog(g)
	if err != nil && !errors.Is(err, errNoCatalog) {
		return err
	}
	cfg := e.cfg
	if out == "" {
		out = cfg.Data.Catalog
	}
	fetcher := catalog.NewFetcher(cfg.Data.OverpassEndpoint, cfg.Data.OverpassTimeout)
	cat, err := fetcher.Fetch(ctx, area)
	if err != nil {
		return err
	}
	data, err := cat.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	fmt.Printf("Wrote %d locations for %s to %s\n", cat.Len(), area, out)
	return nil
}

func runServe(ctx context.Context, g *globalFlags, port string) error {
	e, err := loadEnv(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()
	if port != "" {
		e.cfg.Server.Port = port
	}

	srv := server.New(server.Options{
		Catalog:    e.catalog,
		Missions:   e.missions,
		Existing:   e.cfg.Bases.Existing,
		Candidates: e.cfg.Bases.Candidates,
		Rates:      e.cfg.Rates,
		Response:   e.cfg.Response,
		GridSize:   e.cfg.Grid.Size,
		Workers:    e.cfg.Grid.Workers,
		Timeout:    e.cfg.Grid.Timeout,
	})
	return srv.Run(ctx, e.cfg.Addr())
}
