// Package compare ranks simulated scenarios side by side.
package compare

import (
	"errors"
	"fmt"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
)

// ErrNoScenarios is returned when there is nothing to compare.
var ErrNoScenarios = errors.New("compare: at least one scenario is required")

// Row summarizes one scenario.
type Row struct {
	ScenarioID    string  `json:"scenario_id"`
	FleetSize     int     `json:"fleet_size"`
	Bases         int     `json:"bases"`
	SLAAttainment float64 `json:"sla_attainment"`
	UnmetDemand   float64 `json:"unmet_demand"`
	TotalCost     float64 `json:"total_cost"`
	CoverageRate  float64 `json:"coverage_rate"`
}

// Comparison is the ranked table.
type Comparison struct {
	Rows         []Row `json:"comparison"`
	BestSLA      Row   `json:"best_sla"`
	LowestCost   Row   `json:"lowest_cost"`
	BestCoverage Row   `json:"best_coverage"`
}

// Named pairs a label with a parameter set.
type Named struct {
	Name       string              `json:"name" yaml:"name"`
	Parameters scenario.Parameters `json:"params" yaml:"params"`
}

// Compare builds one row per bundle and picks the best SLA, lowest cost and
// best coverage. Ties go to the earliest bundle.
func Compare(bundles []scenario.KPIBundle) (Comparison, error) {
	return compareLabeled(bundles, nil)
}

func compareLabeled(bundles []scenario.KPIBundle, labels []string) (Comparison, error) {
	if len(bundles) == 0 {
		return Comparison{}, ErrNoScenarios
	}
	rows := make([]Row, len(bundles))
	for i, b := range bundles {
		id := fmt.Sprintf("Scenario %d", i+1)
		if i < len(labels) && labels[i] != "" {
			id = labels[i]
		}
		rows[i] = Row{
			ScenarioID:    id,
			FleetSize:     b.Parameters.FleetSize,
			Bases:         len(b.Parameters.BaseNames()),
			SLAAttainment: b.SLA.RatePercent,
			UnmetDemand:   b.Unmet.Missions,
			TotalCost:     b.Cost.Total,
			CoverageRate:  b.Coverage.RatePercent,
		}
	}

	bestSLA, lowestCost, bestCov := 0, 0, 0
	for i, r := range rows {
		if r.SLAAttainment > rows[bestSLA].SLAAttainment {
			bestSLA = i
		}
		if r.TotalCost < rows[lowestCost].TotalCost {
			lowestCost = i
		}
		if r.CoverageRate > rows[bestCov].CoverageRate {
			bestCov = i
		}
	}
	return Comparison{
		Rows:         rows,
		BestSLA:      rows[bestSLA],
		LowestCost:   rows[lowestCost],
		BestCoverage: rows[bestCov],
	}, nil
}

// Simulator is the subset of scenario.Simulator used here.
type Simulator interface {
	Simulate(p scenario.Parameters) (scenario.KPIBundle, error)
}

// Run simulates each named parameter set and compares the results. Any
// invalid set fails the whole comparison.
func Run(sim Simulator, sets []Named) (Comparison, []scenario.KPIBundle, error) {
	if len(sets) == 0 {
		return Comparison{}, nil, ErrNoScenarios
	}
	bundles := make([]scenario.KPIBundle, len(sets))
	labels := make([]string, len(sets))
	for i, s := range sets {
		b, err := sim.Simulate(s.Parameters)
		if err != nil {
			return Comparison{}, nil, fmt.Errorf("scenario %d (%s): %w", i+1, s.Name, err)
		}
		bundles[i] = b
		labels[i] = s.Name
	}
	cmp, err := compareLabeled(bundles, labels)
	return cmp, bundles, err
}
