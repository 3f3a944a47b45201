package scenario

import (
	"fmt"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/cost"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/coverage"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/demand"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/sla"
)

// MissionKPIs is mission volume and capacity.
type MissionKPIs struct {
	HistoricalTotal   int     `json:"historical_annual"`
	LastYear          int     `json:"last_year,omitempty"`
	LastYearMissions  int     `json:"last_year_missions"`
	EstimatedCapacity float64 `json:"estimated_capacity"`
	CoveredDemand     float64 `json:"covered_demand"`
}

// UnmetKPIs is covered demand beyond capacity.
type UnmetKPIs struct {
	Missions    float64 `json:"missions"`
	RatePercent float64 `json:"rate_percent"`
}

// CoverageKPIs is the share of catalog locations within radius of a base.
type CoverageKPIs struct {
	CitiesCovered int     `json:"cities_covered"`
	TotalCities   int     `json:"total_cities"`
	RatePercent   float64 `json:"coverage_rate"`
}

// KPIBundle is the result of one simulation.
type KPIBundle struct {
	Parameters      Parameters         `json:"scenario_params"`
	Missions        MissionKPIs        `json:"missions"`
	SLA             sla.Attainment     `json:"sla_attainment"`
	Unmet           UnmetKPIs          `json:"unmet_demand"`
	Cost            cost.Breakdown     `json:"cost"`
	Coverage        CoverageKPIs       `json:"coverage"`
	CoverageDetails map[string]int     `json:"coverage_details"`
	Bases           []catalog.Location `json:"resolved_bases"`
}

// Simulator evaluates parameter sets against one catalog and record set.
// It holds no mutable state and is safe for concurrent use.
type Simulator struct {
	catalog *catalog.Catalog
	records []mission.Record
	volume  mission.Summary
	days    int
}

// NewSimulator prepares a simulator. The records slice must not be modified
// afterwards.
func NewSimulator(cat *catalog.Catalog, records []mission.Record) *Simulator {
	return &Simulator{
		catalog: cat,
		records: records,
		volume:  mission.Summarize(records),
		days:    demand.OperationalDaysPerYear,
	}
}

// Catalog returns the location catalog.
func (s *Simulator) Catalog() *catalog.Catalog { return s.catalog }

// Records returns the mission records.
func (s *Simulator) Records() []mission.Record { return s.records }

// Simulate evaluates p. Unknown base names are dropped; an empty or
// out-of-bounds parameter set is rejected with ErrInvalidParameters.
func (s *Simulator) Simulate(p Parameters) (KPIBundle, error) {
	if err := p.Validate(); err != nil {
		return KPIBundle{}, err
	}
	names := p.BaseNames()
	bases := s.catalog.ResolveBases(names)

	cov := coverage.Compute(bases, p.ServiceRadiusMiles, s.catalog)
	rate := cov.Rate()

	attainment := sla.Evaluate(cov.Covered, s.records, p.SLATargetMinutes)
	capacity := demand.Capacity(p.FleetSize, p.MissionsPerVehiclePerDay, s.days)
	unmet := demand.EstimateUnmet(s.volume.LastYearCount, capacity, rate)

	costs, err := cost.Estimate(p.FleetSize, p.CrewsPerVehicle, len(names), p.Rates)
	if err != nil {
		return KPIBundle{}, fmt.Errorf("estimating cost: %w", err)
	}

	return KPIBundle{
		Parameters: p,
		Missions: MissionKPIs{
			HistoricalTotal:   s.volume.Total,
			LastYear:          s.volume.LastYear,
			LastYearMissions:  s.volume.LastYearCount,
			EstimatedCapacity: capacity,
			CoveredDemand:     unmet.CoveredDemand,
		},
		SLA: attainment,
		Unmet: UnmetKPIs{
			Missions:    unmet.Missions,
			RatePercent: unmet.RatePercent,
		},
		Cost: costs,
		Coverage: CoverageKPIs{
			CitiesCovered: len(cov.Covered),
			TotalCities:   cov.Total,
			RatePercent:   rate * 100,
		},
		CoverageDetails: cov.PerBase,
		Bases:           bases,
	}, nil
}
