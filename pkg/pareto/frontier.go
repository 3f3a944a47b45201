package pareto

import (
	"math"
	"sort"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/cost"
)

// Metric names a Point field used as an objective.
type Metric string

const (
	MetricCoverage     Metric = "coverage_rate"
	MetricResponseTime Metric = "avg_response_time"
	MetricSLA          Metric = "sla_attainment"
	MetricCost         Metric = "total_cost"
	MetricUnmet        Metric = "unmet_demand"
)

// Value reads the metric from p. Unknown metrics read as NaN.
func (m Metric) Value(p Point) float64 {
	switch m {
	case MetricCoverage:
		return p.CoverageRate
	case MetricResponseTime:
		return p.AvgResponseTime
	case MetricSLA:
		return p.SLAAttainment
	case MetricCost:
		return p.TotalCost
	case MetricUnmet:
		return p.UnmetDemand
	}
	return math.NaN()
}

// Objective is a two-metric trade-off. X is always maximized.
type Objective struct {
	X         Metric `json:"x_metric"`
	Y         Metric `json:"y_metric"`
	MinimizeY bool   `json:"minimize_y"`
}

// DefaultObjective maximizes coverage and minimizes response time.
func DefaultObjective() Objective {
	return Objective{X: MetricCoverage, Y: MetricResponseTime, MinimizeY: true}
}

// dominates reports whether q dominates p: at least as good on both axes
// and strictly better on one.
func (o Objective) dominates(qx, qy, px, py float64) bool {
	if !o.MinimizeY {
		qy, py = -qy, -py
	}
	return (qx >= px && qy < py) || (qx > px && qy <= py)
}

// Frontier splits points into the non-dominated set and the rest, both in
// ascending X order with ties kept in input order. Points whose metrics are
// negative or NaN belong to neither set. The pairwise check is quadratic.
func Frontier(points []Point, o Objective) (frontier, dominated []Point) {
	type entry struct {
		p    Point
		x, y float64
	}
	valid := make([]entry, 0, len(points))
	for _, p := range points {
		x, y := o.X.Value(p), o.Y.Value(p)
		if math.IsNaN(x) || math.IsNaN(y) || x < 0 || y < 0 {
			continue
		}
		valid = append(valid, entry{p, x, y})
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].x < valid[j].x })

	for i, e := range valid {
		isDominated := false
		for j, other := range valid {
			if i != j && o.dominates(other.x, other.y, e.x, e.y) {
				isDominated = true
				break
			}
		}
		if isDominated {
			dominated = append(dominated, e.p)
		} else {
			frontier = append(frontier, e.p)
		}
	}
	return frontier, dominated
}

// Weights trade off coverage ("population"), SLA attainment and cost.
type Weights struct {
	Population float64 `json:"population" yaml:"population"`
	SLA        float64 `json:"sla" yaml:"sla"`
	Cost       float64 `json:"cost" yaml:"cost"`
}

// Normalized scales the weights to sum to 1. ok is false when any weight is
// negative or they sum to zero.
func (w Weights) Normalized() (Weights, bool) {
	if w.Population < 0 || w.SLA < 0 || w.Cost < 0 {
		return Weights{}, false
	}
	sum := w.Population + w.SLA + w.Cost
	if !(sum > 0) || math.IsInf(sum, 0) {
		return Weights{}, false
	}
	return Weights{Population: w.Population / sum, SLA: w.SLA / sum, Cost: w.Cost / sum}, true
}

// Score is the weighted sum of coverage/100, SLA/100 and the cost score.
// w should already be normalized.
func (w Weights) Score(p Point) float64 {
	return w.Population*p.CoverageRate/100 +
		w.SLA*p.SLAAttainment/100 +
		w.Cost*cost.Score(p.TotalCost)
}

// WeightedBest returns the highest scoring point, the earliest on ties.
// ok is false for no points or unusable weights.
func WeightedBest(points []Point, w Weights) (best Point, score float64, ok bool) {
	nw, valid := w.Normalized()
	if !valid || len(points) == 0 {
		return Point{}, 0, false
	}
	bestIdx := 0
	bestScore := nw.Score(points[0])
	for i := 1; i < len(points); i++ {
		if s := nw.Score(points[i]); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	return points[bestIdx], bestScore, true
}
