// Package scenario evaluates one fleet, crew and base configuration against
// the historical mission record.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/cost"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/validation"
)

// Parameter bounds.
const (
	MinFleetSize       = 1
	MaxFleetSize       = 20
	MinCrewsPerVehicle = 1
	MaxCrewsPerVehicle = 5
	MinMissionsPerDay  = 1
	MinRadiusMiles     = 10.0
	MaxRadiusMiles     = 200.0
	MinSLAMinutes      = 5
	MaxSLAMinutes      = 60
)

// ErrInvalidParameters marks a request rejected before any computation.
var ErrInvalidParameters = errors.New("invalid scenario parameters")

// ParameterError carries the findings behind an ErrInvalidParameters.
type ParameterError struct {
	Report *validation.Report
}

func (e *ParameterError) Error() string {
	return ErrInvalidParameters.Error() + ": " + e.Report.Messages()
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameters }

// Parameters configure one simulation.
type Parameters struct {
	FleetSize                int        `json:"fleet_size" yaml:"fleet_size"`
	CrewsPerVehicle          int        `json:"crews_per_vehicle" yaml:"crews_per_vehicle"`
	MissionsPerVehiclePerDay int        `json:"missions_per_vehicle_per_day" yaml:"missions_per_vehicle_per_day"`
	BaseLocations            []string   `json:"base_locations" yaml:"base_locations"`
	ServiceRadiusMiles       float64    `json:"service_radius_miles" yaml:"service_radius_miles"`
	SLATargetMinutes         int        `json:"sla_target_minutes" yaml:"sla_target_minutes"`
	Rates                    cost.Rates `json:"rates" yaml:"rates"`
}

// DefaultParameters returns a three-vehicle configuration over the existing
// bases with default cost rates.
func DefaultParameters() Parameters {
	return Parameters{
		FleetSize:                3,
		CrewsPerVehicle:          2,
		MissionsPerVehiclePerDay: 3,
		BaseLocations:            append([]string(nil), catalog.ExistingBases...),
		ServiceRadiusMiles:       50,
		SLATargetMinutes:         20,
		Rates:                    cost.DefaultRates(),
	}
}

// WithBases returns a copy of p using the given base names.
func (p Parameters) WithBases(names []string) Parameters {
	p.BaseLocations = append([]string(nil), names...)
	return p
}

// BaseNames returns the distinct normalized base names in request order.
func (p Parameters) BaseNames() []string {
	seen := make(map[string]bool, len(p.BaseLocations))
	var out []string
	for _, b := range p.BaseLocations {
		n := catalog.Normalize(b)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Check validates p and returns the full report.
func (p Parameters) Check() *validation.Report {
	r := validation.NewReport()
	r.IntBetween("fleet_size", p.FleetSize, MinFleetSize, MaxFleetSize)
	r.IntBetween("crews_per_vehicle", p.CrewsPerVehicle, MinCrewsPerVehicle, MaxCrewsPerVehicle)
	r.IntAtLeast("missions_per_vehicle_per_day", p.MissionsPerVehiclePerDay, MinMissionsPerDay)
	r.FloatBetween("service_radius_miles", p.ServiceRadiusMiles, MinRadiusMiles, MaxRadiusMiles)
	r.IntBetween("sla_target_minutes", p.SLATargetMinutes, MinSLAMinutes, MaxSLAMinutes)
	r.NonNegative("rates.base_cost_per_year", p.Rates.Base)
	r.NonNegative("rates.vehicle_cost_per_year", p.Rates.Vehicle)
	r.NonNegative("rates.crew_cost_per_year", p.Rates.Crew)
	if len(p.BaseNames()) == 0 {
		r.Fail(validation.Finding{
			Scope:   validation.ScopeParameter,
			Field:   "base_locations",
			Message: "base_locations must name at least one base",
			Hints:   []string{strings.Join(catalog.ExistingBases, ", ")},
		})
	}
	seen := make(map[string]int, len(p.BaseLocations))
	for _, b := range p.BaseLocations {
		if n := catalog.Normalize(b); n != "" {
			seen[n]++
			if seen[n] == 2 {
				r.Warn(validation.Finding{
					Scope:   validation.ScopeParameter,
					Field:   "base_locations",
					Message: fmt.Sprintf("%s is listed more than once and counts as one base", n),
					Got:     b,
				})
			}
		}
	}
	return r
}

// Validate returns a *ParameterError when p is out of bounds.
func (p Parameters) Validate() error {
	if r := p.Check(); !r.Valid {
		return &ParameterError{Report: r}
	}
	return nil
}
