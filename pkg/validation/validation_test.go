package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportIsValid(t *testing.T) {
	r := NewReport()
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, "0 errors, 0 warnings", r.Summary)
}

func TestFailInvalidates(t *testing.T) {
	r := NewReport()
	r.Fail(Finding{Scope: ScopeParameter, Message: "fleet_size must be between 1 and 20"})
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, SeverityError, r.Errors[0].Severity)
	assert.Equal(t, "1 error, 0 warnings", r.Summary)
}

func TestWarnKeepsValid(t *testing.T) {
	r := NewReport()
	r.Warn(Finding{Scope: ScopeData, Field: "base_locations", Message: "BANGOR listed twice"})
	assert.True(t, r.Valid)
	assert.Equal(t, SeverityWarning, r.Warnings[0].Severity)
	assert.Equal(t, "0 errors, 1 warning", r.Summary)
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.Warn(Finding{Message: "w"})
	b := NewReport()
	b.Fail(Finding{Message: "e1"})
	b.Fail(Finding{Message: "e2"})

	a.Merge(b)
	a.Merge(nil)
	assert.False(t, a.Valid)
	assert.Equal(t, "2 errors, 1 warning", a.Summary)
	assert.Equal(t, "e1; e2", a.Messages())
}

func TestIntBetweenInclusive(t *testing.T) {
	r := NewReport()
	r.IntBetween("fleet_size", 1, 1, 20)
	r.IntBetween("fleet_size", 20, 1, 20)
	require.True(t, r.Valid)

	r.IntBetween("fleet_size", 21, 1, 20)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "fleet_size", r.Errors[0].Field)
	assert.Equal(t, "1-20", r.Errors[0].Want)
	assert.Equal(t, 21, r.Errors[0].Got)
}

func TestIntAtLeast(t *testing.T) {
	r := NewReport()
	r.IntAtLeast("missions_per_vehicle_per_day", 0, 1)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, ">= 1", r.Errors[0].Want)
}

func TestFloatChecksRejectNaN(t *testing.T) {
	r := NewReport()
	r.FloatBetween("service_radius_miles", math.NaN(), 10, 200)
	r.NonNegative("rates.base_cost_per_year", math.NaN())
	r.NonNegative("rates.crew_cost_per_year", 0)
	assert.Len(t, r.Errors, 2)
}
