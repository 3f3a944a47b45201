package siting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario/scenariotest"
)

func fixtureSim() *scenario.Simulator {
	return scenario.NewSimulator(scenariotest.Catalog(), scenariotest.Records())
}

func TestEvaluateCandidateLift(t *testing.T) {
	got, err := EvaluateCandidate(fixtureSim(), []string{"BANGOR"}, "portland", scenario.DefaultParameters())
	require.NoError(t, err)
	require.NotNil(t, got.After)
	require.NotNil(t, got.Lift)

	assert.InDelta(t, 75.0, got.Before.SLA.RatePercent, 1e-9)
	assert.InDelta(t, 500.0/6, got.After.SLA.RatePercent, 1e-9)
	assert.InDelta(t, 25.0/3, got.Lift.SLALift, 1e-9)
	assert.InDelta(t, 100.0/9, got.Lift.SLALiftPercent, 1e-9)
	assert.InDelta(t, 25.0, got.Lift.CoverageLift, 1e-9)
	assert.Equal(t, 500000.0, got.Lift.IncrementalCost)
	require.NotNil(t, got.Lift.CostPerSLAPoint)
	assert.InDelta(t, 60000.0, *got.Lift.CostPerSLAPoint, 1e-6)
	assert.Equal(t, "PORTLAND", got.Metadata.CandidateBase)
}

func TestEvaluateCandidateWithoutCandidate(t *testing.T) {
	got, err := EvaluateCandidate(fixtureSim(), []string{"BANGOR"}, "", scenario.DefaultParameters())
	require.NoError(t, err)
	assert.Nil(t, got.After)
	assert.Nil(t, got.Lift)
	assert.Equal(t, 1280000.0, got.Before.Cost.Total)
}

func TestCostPerSLAPointNullWithoutLift(t *testing.T) {
	// PRESQUE ISLE only adds its own 40 minute pickup, so attainment drops.
	got, err := EvaluateCandidate(fixtureSim(), []string{"BANGOR"}, "PRESQUE ISLE", scenario.DefaultParameters())
	require.NoError(t, err)
	require.NotNil(t, got.Lift)
	assert.InDelta(t, -15.0, got.Lift.SLALift, 1e-9)
	assert.Nil(t, got.Lift.CostPerSLAPoint)
	assert.Equal(t, 500000.0, got.Lift.IncrementalCost)
}

func TestEvaluateCandidateRejectsEmptyExisting(t *testing.T) {
	_, err := EvaluateCandidate(fixtureSim(), nil, "PORTLAND", scenario.DefaultParameters())
	assert.ErrorIs(t, err, scenario.ErrInvalidParameters)
}

func TestComputeLiftZeroBefore(t *testing.T) {
	var before, after scenario.KPIBundle
	after.SLA.RatePercent = 40
	l := ComputeLift(before, after)
	assert.Equal(t, 40.0, l.SLALift)
	assert.Zero(t, l.SLALiftPercent)
	require.NotNil(t, l.CostPerSLAPoint)
	assert.Zero(t, *l.CostPerSLAPoint)
}

func TestRankCandidates(t *testing.T) {
	ranked, err := RankCandidates(fixtureSim(), []string{"BANGOR"}, []string{"BANGOR", "PRESQUE ISLE", "portland", "PORTLAND"}, scenario.DefaultParameters())
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "PORTLAND", ranked[0].Candidate)
	assert.Equal(t, "PRESQUE ISLE", ranked[1].Candidate)
}

func TestHomeCity(t *testing.T) {
	recs := scenariotest.Records()
	home, ok := HomeCity(recs, "B-CCT")
	require.True(t, ok)
	assert.Equal(t, "BANGOR", home)

	// One LEWISTON and one AUGUSTA pickup.
	home, ok = HomeCity(recs, "L-CCT")
	require.True(t, ok)
	assert.Equal(t, "AUGUSTA", home)

	_, ok = HomeCity(recs, "neoGround")
	assert.False(t, ok)
}

func TestLearnSpeeds(t *testing.T) {
	speeds := LearnSpeeds(scenariotest.Records(), scenariotest.Catalog())

	// B-CCT samples: WATERVILLE 91.3, BELFAST 106.6, PRESQUE ISLE 134.9 mph.
	b, ok := speeds["B-CCT"]
	require.True(t, ok)
	assert.Equal(t, "BANGOR", b.HomeCity)
	assert.Equal(t, 3, b.Samples)
	assert.InDelta(t, 106.57, b.MedianMPH, 0.01)

	l, ok := speeds["L-CCT"]
	require.True(t, ok)
	assert.Equal(t, 1, l.Samples)
	assert.InDelta(t, 91.75, l.MedianMPH, 0.01)

	// Every S-CCT pickup is at its home city.
	_, ok = speeds["S-CCT"]
	assert.False(t, ok)
}

func TestEvaluateAssetTypeHomeBase(t *testing.T) {
	got := EvaluateAssetType(scenariotest.Records(), scenariotest.Catalog(), "B-CCT", 50, 20, nil)
	require.Len(t, got.Bases, 1)
	assert.Equal(t, "BANGOR", got.Bases[0].Name)
	assert.Equal(t, map[string]int{"BANGOR": 3}, got.Coverage)
	require.NotNil(t, got.MedianSpeedMPH)
	assert.Equal(t, 106.57, *got.MedianSpeedMPH)

	// BELFAST estimates 16.0 min, WATERVILLE 25.705; PRESQUE ISLE is out of range.
	assert.Equal(t, 2, got.Compliance.TotalTasks)
	assert.Equal(t, 1, got.Compliance.CompliantTasks)
	assert.Equal(t, 50.0, got.Compliance.ComplianceRate)
	assert.Equal(t, 20.85, got.Compliance.AvgResponseTime)

	require.Len(t, got.Samples, 3)
	for _, s := range got.Samples {
		if s.PickupCity == "PRESQUE ISLE" {
			assert.Nil(t, s.PickupDistanceMiles)
			assert.Empty(t, s.AssignedBase)
		} else {
			assert.Equal(t, "BANGOR", s.AssignedBase)
		}
	}
}

func TestEvaluateAssetTypeWhatIfBases(t *testing.T) {
	got := EvaluateAssetType(scenariotest.Records(), scenariotest.Catalog(), "B-CCT", 50, 20, []string{" belfast ", "NOWHERE", "BELFAST"})
	require.Len(t, got.Bases, 1)
	assert.Equal(t, "BELFAST", got.Bases[0].Name)
	assert.Equal(t, 2, got.Compliance.TotalTasks)
}

func TestEvaluateAssetTypeUnknown(t *testing.T) {
	got := EvaluateAssetType(scenariotest.Records(), scenariotest.Catalog(), "neoGround", 50, 20, nil)
	assert.Empty(t, got.Bases)
	assert.Empty(t, got.Coverage)
	assert.Zero(t, got.Compliance.TotalTasks)
	assert.Nil(t, got.MedianSpeedMPH)
}
