// Package sla evaluates historical response times against a target.
package sla

import (
	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
)

// Attainment is the SLA section of a scenario result.
type Attainment struct {
	RatePercent        float64      `json:"rate_percent"`
	WithinSLA          int          `json:"within_sla"`
	TotalEvaluated     int          `json:"total_evaluated"`
	AvgResponseMinutes float64      `json:"avg_response_time_minutes"`
	Distribution       Distribution `json:"distribution"`
}

// ResponseTimes returns the dispatch to en-route minutes of records whose
// pickup city is in scope, and how many records were in scope. Records with
// unparseable times are in scope but yield no value.
func ResponseTimes(scope map[string]bool, records []mission.Record) (times []float64, inScope int) {
	for _, r := range records {
		if !scope[r.City()] {
			continue
		}
		inScope++
		if rt, ok := r.ResponseMinutes(); ok {
			times = append(times, rt)
		}
	}
	return times, inScope
}

// Evaluate computes attainment for missions picked up in the scoped cities.
// A response exactly at the target counts as within SLA. With no valid
// response times the rate and average are zero, and TotalEvaluated reports
// the in-scope record count.
func Evaluate(scope []string, records []mission.Record, targetMinutes int) Attainment {
	set := make(map[string]bool, len(scope))
	for _, s := range scope {
		set[s] = true
	}
	times, inScope := ResponseTimes(set, records)
	if len(times) == 0 {
		return Attainment{TotalEvaluated: inScope}
	}
	within := 0
	for _, rt := range times {
		if rt <= float64(targetMinutes) {
			within++
		}
	}
	dist := Summarize(times)
	return Attainment{
		RatePercent:        float64(within) / float64(len(times)) * 100,
		WithinSLA:          within,
		TotalEvaluated:     len(times),
		AvgResponseMinutes: dist.Mean,
		Distribution:       dist,
	}
}
