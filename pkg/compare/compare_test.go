package compare

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/scenario/scenariotest"
)

func bundle(fleet int, sla, cost, cov float64) scenario.KPIBundle {
	var b scenario.KPIBundle
	b.Parameters.FleetSize = fleet
	b.Parameters.BaseLocations = []string{"BANGOR"}
	b.SLA.RatePercent = sla
	b.Cost.Total = cost
	b.Coverage.RatePercent = cov
	return b
}

func TestCompareSelectsBest(t *testing.T) {
	got, err := Compare([]scenario.KPIBundle{
		bundle(2, 70, 1500000, 40),
		bundle(4, 90, 2500000, 60),
		bundle(1, 60, 900000, 80),
	})
	require.NoError(t, err)
	require.Len(t, got.Rows, 3)
	assert.Equal(t, "Scenario 2", got.BestSLA.ScenarioID)
	assert.Equal(t, "Scenario 3", got.LowestCost.ScenarioID)
	assert.Equal(t, "Scenario 3", got.BestCoverage.ScenarioID)
	assert.Equal(t, 1, got.Rows[0].Bases)
}

func TestCompareTiesGoToFirst(t *testing.T) {
	got, err := Compare([]scenario.KPIBundle{
		bundle(2, 80, 1000000, 50),
		bundle(3, 80, 1000000, 50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Scenario 1", got.BestSLA.ScenarioID)
	assert.Equal(t, "Scenario 1", got.LowestCost.ScenarioID)
	assert.Equal(t, "Scenario 1", got.BestCoverage.ScenarioID)
}

func TestCompareEmpty(t *testing.T) {
	_, err := Compare(nil)
	assert.True(t, errors.Is(err, ErrNoScenarios))
}

func TestRunLabelsAndPropagatesErrors(t *testing.T) {
	sim := scenario.NewSimulator(scenariotest.Catalog(), scenariotest.Records())
	small := scenario.DefaultParameters().WithBases([]string{"BANGOR"})
	large := scenario.DefaultParameters().WithBases([]string{"BANGOR", "PORTLAND"})

	cmp, bundles, err := Run(sim, []Named{{Name: "north only", Parameters: small}, {Parameters: large}})
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	assert.Equal(t, "north only", cmp.Rows[0].ScenarioID)
	assert.Equal(t, "Scenario 2", cmp.Rows[1].ScenarioID)
	assert.Equal(t, "Scenario 2", cmp.BestCoverage.ScenarioID)
	assert.Equal(t, "north only", cmp.LowestCost.ScenarioID)

	bad := small
	bad.FleetSize = 0
	_, _, err = Run(sim, []Named{{Name: "bad", Parameters: bad}})
	assert.True(t, errors.Is(err, scenario.ErrInvalidParameters))

	_, _, err = Run(sim, nil)
	assert.True(t, errors.Is(err, ErrNoScenarios))
}
