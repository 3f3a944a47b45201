// Package pareto sweeps service radius and SLA target to find the efficient
// trade-offs between coverage and response time.
package pareto

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
)

// MaxGridCells bounds the number of simulations a single sweep may request.
const MaxGridCells = 2500

// Range is an inclusive numeric sweep.
type Range struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// Count returns the number of values in the sweep, 0 when the range is
// malformed. Max is included when it lies on a step. A sweep longer than
// MaxGridCells counts as MaxGridCells+1.
func (r Range) Count() int {
	if !finite(r.Min) || !finite(r.Max) || !finite(r.Step) || r.Step <= 0 || r.Max < r.Min {
		return 0
	}
	n := math.Floor((r.Max-r.Min)/r.Step+1e-9) + 1
	if !(n <= MaxGridCells) {
		return MaxGridCells + 1
	}
	return int(n)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Integral reports whether min, max and step are all whole numbers.
func (r Range) Integral() bool {
	return r.Min == math.Trunc(r.Min) && r.Max == math.Trunc(r.Max) && r.Step == math.Trunc(r.Step)
}

// Values expands the sweep. It returns nil for a malformed or oversized sweep.
func (r Range) Values() []float64 {
	n := r.Count()
	if n == 0 || n > MaxGridCells {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Min + float64(i)*r.Step
	}
	return out
}

// IntValues expands the sweep truncated to integers.
func (r Range) IntValues() []int {
	vals := r.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}

// Point is one grid cell's KPIs tagged with its coordinates.
type Point struct {
	ID              string              `json:"id"`
	Radius          float64             `json:"radius"`
	SLATarget       int                 `json:"sla_target"`
	CoverageRate    float64             `json:"coverage_rate"`
	SLAAttainment   float64             `json:"sla_attainment"`
	AvgResponseTime float64             `json:"avg_response_time"`
	UnmetDemand     float64             `json:"unmet_demand"`
	TotalCost       float64             `json:"total_cost"`
	CitiesCovered   int                 `json:"cities_covered"`
	Result          *scenario.KPIBundle `json:"full_result,omitempty"`
}

// NewPoint flattens a bundle into a grid point.
func NewPoint(b scenario.KPIBundle) Point {
	bundle := b
	return Point{
		ID:              fmt.Sprintf("Radius %.0fmi, SLA %dmin", b.Parameters.ServiceRadiusMiles, b.Parameters.SLATargetMinutes),
		Radius:          b.Parameters.ServiceRadiusMiles,
		SLATarget:       b.Parameters.SLATargetMinutes,
		CoverageRate:    b.Coverage.RatePercent,
		SLAAttainment:   b.SLA.RatePercent,
		AvgResponseTime: b.SLA.AvgResponseMinutes,
		UnmetDemand:     b.Unmet.Missions,
		TotalCost:       b.Cost.Total,
		CitiesCovered:   b.Coverage.CitiesCovered,
		Result:          &bundle,
	}
}

// Summary returns the point without its full result.
func (p Point) Summary() Point {
	p.Result = nil
	return p
}

// Simulator is the subset of scenario.Simulator used by the sweep.
type Simulator interface {
	Simulate(p scenario.Parameters) (scenario.KPIBundle, error)
}

// BuildGrid simulates every (radius, sla) pair with base's other parameters.
// Cells run concurrently on up to workers goroutines (GOMAXPROCS when
// workers <= 0). A cell whose simulation fails is logged and left out; the
// sweep itself fails only when ctx ends. Results are in radius-major order.
func BuildGrid(ctx context.Context, sim Simulator, base scenario.Parameters, radii []float64, slas []int, workers int) ([]Point, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	type cell struct {
		point Point
		ok    bool
	}
	cells := make([]cell, len(radii)*len(slas))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, radius := range radii {
		for j, target := range slas {
			idx := i*len(slas) + j
			radius, target := radius, target
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				p := base
				p.ServiceRadiusMiles = radius
				p.SLATargetMinutes = target
				b, err := simulateCell(sim, p)
				if err != nil {
					log.Printf("pareto: cell radius=%.1f sla=%d skipped: %v", radius, target, err)
					return nil
				}
				cells[idx] = cell{point: NewPoint(b), ok: true}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("grid search: %w", err)
	}

	points := make([]Point, 0, len(cells))
	for _, c := range cells {
		if c.ok {
			points = append(points, c.point)
		}
	}
	return points, nil
}

func simulateCell(sim Simulator, p scenario.Parameters) (b scenario.KPIBundle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simulation panicked: %v", r)
		}
	}()
	return sim.Simulate(p)
}
