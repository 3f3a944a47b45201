// Package siting measures what a candidate base adds to an existing network,
// either by full scenario simulation or by an asset type's learned speed.
package siting

import (
	"fmt"
	"sort"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/cost"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
)

// Lift is the change from the before to the after scenario.
type Lift struct {
	SLALift         float64  `json:"sla_lift_absolute"`
	SLALiftPercent  float64  `json:"sla_lift_percent"`
	CoverageLift    float64  `json:"coverage_lift"`
	IncrementalCost float64  `json:"incremental_cost"`
	CostPerSLAPoint *float64 `json:"cost_per_sla_point"`
}

// ComputeLift compares two simulations. CostPerSLAPoint is nil unless SLA
// attainment improved.
func ComputeLift(before, after scenario.KPIBundle) Lift {
	beforeSLA := before.SLA.RatePercent
	l := Lift{
		SLALift:         after.SLA.RatePercent - beforeSLA,
		CoverageLift:    after.Coverage.RatePercent - before.Coverage.RatePercent,
		IncrementalCost: cost.Delta(before.Cost.Total, after.Cost.Total),
	}
	if beforeSLA > 0 {
		l.SLALiftPercent = l.SLALift / beforeSLA * 100
	}
	l.CostPerSLAPoint = cost.PerPoint(l.IncrementalCost, l.SLALift)
	return l
}

// Metadata echoes the inputs of an Evaluation.
type Metadata struct {
	ExistingBases      []string `json:"existing_bases"`
	CandidateBase      string   `json:"candidate_base,omitempty"`
	ServiceRadiusMiles float64  `json:"service_radius_miles"`
	SLATargetMinutes   int      `json:"sla_target_minutes"`
}

// Evaluation is a before/after comparison. After and Lift are nil when no
// candidate was given.
type Evaluation struct {
	Before   scenario.KPIBundle  `json:"before_scenario"`
	After    *scenario.KPIBundle `json:"after_scenario"`
	Lift     *Lift               `json:"sla_lift"`
	Metadata Metadata            `json:"metadata"`
}

// Simulator runs one scenario.
type Simulator interface {
	Simulate(p scenario.Parameters) (scenario.KPIBundle, error)
}

// EvaluateCandidate simulates shared with the existing bases and, when
// candidate is not empty, again with the candidate added. The base list in
// shared is ignored. A candidate that is already an existing base shows no
// lift.
func EvaluateCandidate(sim Simulator, existing []string, candidate string, shared scenario.Parameters) (Evaluation, error) {
	candidate = catalog.Normalize(candidate)
	out := Evaluation{
		Metadata: Metadata{
			ExistingBases:      existing,
			CandidateBase:      candidate,
			ServiceRadiusMiles: shared.ServiceRadiusMiles,
			SLATargetMinutes:   shared.SLATargetMinutes,
		},
	}

	before, err := sim.Simulate(shared.WithBases(existing))
	if err != nil {
		return Evaluation{}, fmt.Errorf("simulating existing bases: %w", err)
	}
	out.Before = before
	if candidate == "" {
		return out, nil
	}

	after, err := sim.Simulate(shared.WithBases(append(append([]string(nil), existing...), candidate)))
	if err != nil {
		return Evaluation{}, fmt.Errorf("simulating with %s: %w", candidate, err)
	}
	lift := ComputeLift(before, after)
	out.After = &after
	out.Lift = &lift
	return out, nil
}

// Ranked is one candidate's lift over the existing bases.
type Ranked struct {
	Candidate string `json:"candidate_base"`
	Lift      Lift   `json:"lift"`
}

// RankCandidates evaluates each candidate against the same existing bases and
// orders them by SLA lift, then coverage lift, keeping input order on ties.
// Candidates that are already existing bases are skipped.
func RankCandidates(sim Simulator, existing, candidates []string, shared scenario.Parameters) ([]Ranked, error) {
	before, err := sim.Simulate(shared.WithBases(existing))
	if err != nil {
		return nil, fmt.Errorf("simulating existing bases: %w", err)
	}
	have := make(map[string]bool)
	for _, name := range before.Parameters.BaseNames() {
		have[name] = true
	}

	var out []Ranked
	for _, c := range candidates {
		c = catalog.Normalize(c)
		if c == "" || have[c] {
			continue
		}
		have[c] = true
		after, err := sim.Simulate(shared.WithBases(append(append([]string(nil), existing...), c)))
		if err != nil {
			return nil, fmt.Errorf("simulating with %s: %w", c, err)
		}
		out = append(out, Ranked{Candidate: c, Lift: ComputeLift(before, after)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Lift.SLALift != out[j].Lift.SLALift {
			return out[i].Lift.SLALift > out[j].Lift.SLALift
		}
		return out[i].Lift.CoverageLift > out[j].Lift.CoverageLift
	})
	return out, nil
}
