package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario/scenariotest"
)

func params(bases ...string) Parameters {
	p := DefaultParameters()
	p.BaseLocations = bases
	return p
}

func TestSimulateEndToEnd(t *testing.T) {
	sim := NewSimulator(scenariotest.Catalog(), scenariotest.Records())
	got, err := sim.Simulate(params("BANGOR", "PORTLAND"))
	require.NoError(t, err)

	// 3 vehicles * 3 missions/day * 365
	assert.Equal(t, 3285.0, got.Missions.EstimatedCapacity)
	// 2*500000 + 3*100000 + 3*2*80000
	assert.Equal(t, 1780000.0, got.Cost.Total)
	assert.Equal(t, 1780.0, got.Cost.CostPerMission)

	assert.Equal(t, 9, got.Missions.HistoricalTotal)
	assert.Equal(t, 2023, got.Missions.LastYear)
	assert.Equal(t, 7, got.Missions.LastYearMissions)

	// BANGOR, BELFAST, WATERVILLE, PORTLAND, LEWISTON of 8 entries
	assert.Equal(t, 5, got.Coverage.CitiesCovered)
	assert.Equal(t, 8, got.Coverage.TotalCities)
	assert.InDelta(t, 62.5, got.Coverage.RatePercent, 1e-9)
	assert.Equal(t, map[string]int{"BANGOR": 3, "PORTLAND": 2}, got.CoverageDetails)

	// valid times 10,12,25,20,18,14; 20 is inclusive
	assert.Equal(t, 6, got.SLA.TotalEvaluated)
	assert.Equal(t, 5, got.SLA.WithinSLA)
	assert.InDelta(t, 500.0/6, got.SLA.RatePercent, 1e-9)
	assert.InDelta(t, 16.5, got.SLA.AvgResponseMinutes, 1e-9)

	assert.InDelta(t, 7*0.625, got.Missions.CoveredDemand, 1e-9)
	assert.Zero(t, got.Unmet.Missions)
	assert.Zero(t, got.Unmet.RatePercent)
}

func TestSimulateLargerRadiusCoversMore(t *testing.T) {
	sim := NewSimulator(scenariotest.Catalog(), scenariotest.Records())
	p := params("BANGOR", "PORTLAND")
	p.ServiceRadiusMiles = 100
	got, err := sim.Simulate(p)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Coverage.CitiesCovered)
	assert.Equal(t, 7, got.SLA.TotalEvaluated)
}

func TestSimulateDeterministic(t *testing.T) {
	sim := NewSimulator(scenariotest.Catalog(), scenariotest.Records())
	a, err := sim.Simulate(params("PORTLAND", "BANGOR"))
	require.NoError(t, err)
	b, err := sim.Simulate(params("PORTLAND", "BANGOR"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulateDropsUnknownBases(t *testing.T) {
	sim := NewSimulator(scenariotest.Catalog(), scenariotest.Records())
	got, err := sim.Simulate(params("BANGOR", "ATLANTIS"))
	require.NoError(t, err)
	require.Len(t, got.Bases, 1)
	assert.Equal(t, "BANGOR", got.Bases[0].Name)
	// Requested sites are still budgeted.
	assert.Equal(t, 1780000.0, got.Cost.Total)
}

func TestSimulateUnmetDemand(t *testing.T) {
	sim := NewSimulator(scenariotest.Catalog(), scenariotest.Records())
	p := params("BANGOR", "PORTLAND")
	p.FleetSize = 1
	p.MissionsPerVehiclePerDay = 1
	got, err := sim.Simulate(p)
	require.NoError(t, err)
	// capacity 365 far exceeds 4.375 covered missions
	assert.Equal(t, 365.0, got.Missions.EstimatedCapacity)
	assert.Zero(t, got.Unmet.Missions)
}

func TestSimulateEmptyRecords(t *testing.T) {
	sim := NewSimulator(scenariotest.Catalog(), nil)
	got, err := sim.Simulate(params("BANGOR"))
	require.NoError(t, err)
	assert.Zero(t, got.SLA.RatePercent)
	assert.Zero(t, got.SLA.TotalEvaluated)
	assert.Zero(t, got.Missions.LastYearMissions)
	assert.Zero(t, got.Unmet.RatePercent)
}

func TestSimulateRejectsInvalidParameters(t *testing.T) {
	sim := NewSimulator(scenariotest.Catalog(), scenariotest.Records())
	cases := map[string]func(*Parameters){
		"no bases":       func(p *Parameters) { p.BaseLocations = nil },
		"blank bases":    func(p *Parameters) { p.BaseLocations = []string{" ", ""} },
		"fleet too big":  func(p *Parameters) { p.FleetSize = 21 },
		"zero crews":     func(p *Parameters) { p.CrewsPerVehicle = 0 },
		"radius too low": func(p *Parameters) { p.ServiceRadiusMiles = 5 },
		"sla too high":   func(p *Parameters) { p.SLATargetMinutes = 61 },
		"zero missions":  func(p *Parameters) { p.MissionsPerVehiclePerDay = 0 },
		"negative rate":  func(p *Parameters) { p.Rates.Crew = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := params("BANGOR")
			mutate(&p)
			_, err := sim.Simulate(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameters))
			var pe *ParameterError
			require.True(t, errors.As(err, &pe))
			assert.False(t, pe.Report.Valid)
		})
	}
}

func TestBaseNamesNormalizesAndDedupes(t *testing.T) {
	p := params(" bangor", "BANGOR", "Portland", "")
	assert.Equal(t, []string{"BANGOR", "PORTLAND"}, p.BaseNames())
}

func TestParameterBoundsInclusive(t *testing.T) {
	p := params("BANGOR")
	p.FleetSize = MaxFleetSize
	p.CrewsPerVehicle = MaxCrewsPerVehicle
	p.ServiceRadiusMiles = MinRadiusMiles
	p.SLATargetMinutes = MinSLAMinutes
	assert.NoError(t, p.Validate())
}

func TestCheckWarnsOnRepeatedBase(t *testing.T) {
	r := params("BANGOR", "bangor ", "PORTLAND").Check()
	assert.True(t, r.Valid)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, "base_locations", r.Warnings[0].Field)
	assert.Contains(t, r.Warnings[0].Message, "BANGOR")
}
