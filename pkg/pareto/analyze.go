package pareto

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/cost"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/validation"
)

// MaxReportedScenarios caps AllScenarios in an Analysis.
const MaxReportedScenarios = 50

// Request configures a sensitivity sweep.
type Request struct {
	BaseLocations            []string      `json:"base_locations,omitempty" yaml:"base_locations"`
	Radius                   Range         `json:"radius" yaml:"radius"`
	SLA                      Range         `json:"sla" yaml:"sla"`
	FleetSize                int           `json:"fleet_size" yaml:"fleet_size"`
	CrewsPerVehicle          int           `json:"crews_per_vehicle" yaml:"crews_per_vehicle"`
	MissionsPerVehiclePerDay int           `json:"missions_per_vehicle_per_day" yaml:"missions_per_vehicle_per_day"`
	Rates                    cost.Rates    `json:"rates" yaml:"rates"`
	Weights                  *Weights      `json:"weights,omitempty" yaml:"weights"`
	Workers                  int           `json:"-" yaml:"workers"`
	Timeout                  time.Duration `json:"-" yaml:"timeout"`
}

// DefaultRequest sweeps 20-100 miles by 10 and 10-30 minutes by 5 for a
// three-vehicle, two-crew fleet.
func DefaultRequest() Request {
	return Request{
		Radius:                   Range{Min: 20, Max: 100, Step: 10},
		SLA:                      Range{Min: 10, Max: 30, Step: 5},
		FleetSize:                3,
		CrewsPerVehicle:          2,
		MissionsPerVehiclePerDay: 3,
		Rates:                    cost.DefaultRates(),
	}
}

// Metadata describes a completed sweep.
type Metadata struct {
	RunID         string     `json:"run_id"`
	NScenarios    int        `json:"n_scenarios"`
	NPareto       int        `json:"n_pareto"`
	NDominated    int        `json:"n_dominated"`
	BaseLocations []string   `json:"base_locations"`
	RadiusRange   [2]float64 `json:"radius_range"`
	SLARange      [2]int     `json:"sla_range"`
}

// Analysis is the result of a sensitivity sweep.
type Analysis struct {
	Frontier     []Point  `json:"pareto_frontier"`
	Dominated    []Point  `json:"dominated_points"`
	Optimal      *Point   `json:"optimal_scenario"`
	OptimalScore *float64 `json:"optimal_score,omitempty"`
	AllScenarios []Point  `json:"all_scenarios"`
	Metadata     Metadata `json:"metadata"`
}

func (r Request) check() error {
	rep := validation.NewReport()
	radii, slas := r.Radius.Count(), r.SLA.Count()
	if radii == 0 {
		rep.Fail(validation.Finding{
			Scope: validation.ScopeGrid, Field: "radius", Got: r.Radius,
			Message: "radius range needs step > 0 and max >= min",
		})
	}
	if slas == 0 {
		rep.Fail(validation.Finding{
			Scope: validation.ScopeGrid, Field: "sla", Got: r.SLA,
			Message: "sla range needs step > 0 and max >= min",
		})
	} else if !r.SLA.Integral() {
		rep.Fail(validation.Finding{
			Scope: validation.ScopeGrid, Field: "sla", Got: r.SLA,
			Message: "sla range needs whole-minute min, max and step",
		})
	}
	for _, axis := range []struct {
		field string
		n     int
	}{{"radius", radii}, {"sla", slas}} {
		if axis.n > MaxGridCells {
			rep.Fail(validation.Finding{
				Scope:   validation.ScopeGrid,
				Field:   axis.field,
				Message: fmt.Sprintf("%s range has more than %d values", axis.field, MaxGridCells),
				Want:    fmt.Sprintf("<= %d", MaxGridCells),
				Hints:   []string{"raise the " + axis.field + " step"},
			})
		}
	}
	if radii <= MaxGridCells && slas <= MaxGridCells && radii*slas > MaxGridCells {
		rep.Fail(validation.Finding{
			Scope:   validation.ScopeGrid,
			Field:   "grid",
			Message: fmt.Sprintf("grid has %d cells, limit is %d", radii*slas, MaxGridCells),
			Got:     radii * slas,
			Want:    fmt.Sprintf("<= %d", MaxGridCells),
			Hints:   []string{"raise the radius or sla step", "narrow the range"},
		})
	}
	if r.Weights != nil {
		if _, ok := r.Weights.Normalized(); !ok {
			rep.Fail(validation.Finding{
				Scope: validation.ScopeParameter, Field: "weights", Got: *r.Weights,
				Message: "weights must be non-negative with a positive sum",
			})
		}
	}
	// Fleet and rate bounds are checked once rather than per cell.
	probe := r.baseParameters([]string{"-"})
	probe.ServiceRadiusMiles = scenario.MinRadiusMiles
	probe.SLATargetMinutes = scenario.MinSLAMinutes
	rep.Merge(probe.Check())
	if !rep.Valid {
		return &scenario.ParameterError{Report: rep}
	}
	return nil
}

func (r Request) baseParameters(bases []string) scenario.Parameters {
	return scenario.Parameters{
		FleetSize:                r.FleetSize,
		CrewsPerVehicle:          r.CrewsPerVehicle,
		MissionsPerVehiclePerDay: r.MissionsPerVehiclePerDay,
		BaseLocations:            bases,
		Rates:                    r.Rates,
	}
}

// DefaultBases returns the first three of the existing and candidate bases.
func DefaultBases(cat *catalog.Catalog) []string {
	all := cat.Bases(nil, nil).All()
	if len(all) > 3 {
		all = all[:3]
	}
	names := make([]string, len(all))
	for i, b := range all {
		names[i] = b.Name
	}
	return names
}

// Analyze runs the sweep, the coverage/response-time frontier and, when
// weights are given, the weighted pick over all cells.
func Analyze(ctx context.Context, sim Simulator, cat *catalog.Catalog, req Request) (Analysis, error) {
	if err := req.check(); err != nil {
		return Analysis{}, err
	}
	bases := req.BaseLocations
	if len(bases) == 0 {
		bases = DefaultBases(cat)
	}
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	radii := req.Radius.Values()
	slas := req.SLA.IntValues()
	meta := Metadata{
		RunID:         uuid.NewString(),
		BaseLocations: bases,
		RadiusRange:   [2]float64{radii[0], radii[len(radii)-1]},
		SLARange:      [2]int{slas[0], slas[len(slas)-1]},
	}

	all, err := BuildGrid(ctx, sim, req.baseParameters(bases), radii, slas, req.Workers)
	if err != nil {
		return Analysis{}, err
	}
	meta.NScenarios = len(all)
	out := Analysis{
		Frontier:     []Point{},
		Dominated:    []Point{},
		AllScenarios: []Point{},
		Metadata:     meta,
	}
	if len(all) == 0 {
		return out, nil
	}

	frontier, dominated := Frontier(all, DefaultObjective())
	out.Frontier = summaries(frontier)
	out.Dominated = summaries(dominated)
	out.Metadata.NPareto = len(frontier)
	out.Metadata.NDominated = len(dominated)

	if req.Weights != nil {
		if best, score, ok := WeightedBest(all, *req.Weights); ok {
			opt := best.Summary()
			opt.ID = "Optimal: " + opt.ID
			out.Optimal = &opt
			out.OptimalScore = &score
		}
	}

	if len(all) > MaxReportedScenarios {
		all = all[:MaxReportedScenarios]
	}
	out.AllScenarios = all
	return out, nil
}

func summaries(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Summary()
	}
	return out
}
