// Package cost estimates annual operating cost of a base and fleet
// configuration.
package cost

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNegativeInput is returned when a count or rate is negative.
var ErrNegativeInput = errors.New("cost: negative input")

// Rates are annual per-unit costs.
type Rates struct {
	Base    float64 `json:"base_cost_per_year" yaml:"base_cost_per_year"`
	Vehicle float64 `json:"vehicle_cost_per_year" yaml:"vehicle_cost_per_year"`
	Crew    float64 `json:"crew_cost_per_year" yaml:"crew_cost_per_year"`
}

// DefaultRates returns the documented default rates.
func DefaultRates() Rates {
	return Rates{Base: BaseCostPerYear, Vehicle: VehicleCostPerYear, Crew: CrewCostPerYear}
}

// Breakdown itemizes annual cost by category.
type Breakdown struct {
	Total          float64 `json:"total_cost"`
	BaseCost       float64 `json:"base_cost"`
	VehicleCost    float64 `json:"vehicle_cost"`
	CrewCost       float64 `json:"crew_cost"`
	CostPerMission float64 `json:"cost_per_mission"`
}

// Estimate computes base_count*base + fleet*vehicle + fleet*crews*crew.
// Sums are carried in decimal so currency totals stay exact.
func Estimate(fleetSize, crewsPerVehicle, baseCount int, r Rates) (Breakdown, error) {
	if fleetSize < 0 || crewsPerVehicle < 0 || baseCount < 0 {
		return Breakdown{}, fmt.Errorf("%w: fleet=%d crews=%d bases=%d", ErrNegativeInput, fleetSize, crewsPerVehicle, baseCount)
	}
	if r.Base < 0 || r.Vehicle < 0 || r.Crew < 0 {
		return Breakdown{}, fmt.Errorf("%w: rates %+v", ErrNegativeInput, r)
	}

	base := decimal.NewFromInt(int64(baseCount)).Mul(decimal.NewFromFloat(r.Base))
	vehicle := decimal.NewFromInt(int64(fleetSize)).Mul(decimal.NewFromFloat(r.Vehicle))
	crew := decimal.NewFromInt(int64(fleetSize) * int64(crewsPerVehicle)).Mul(decimal.NewFromFloat(r.Crew))
	total := base.Add(vehicle).Add(crew)

	return Breakdown{
		Total:          total.InexactFloat64(),
		BaseCost:       base.InexactFloat64(),
		VehicleCost:    vehicle.InexactFloat64(),
		CrewCost:       crew.InexactFloat64(),
		CostPerMission: total.Div(decimal.NewFromInt(ReferenceMissions)).InexactFloat64(),
	}, nil
}

// Delta returns after - before.
func Delta(before, after float64) float64 {
	return decimal.NewFromFloat(after).Sub(decimal.NewFromFloat(before)).InexactFloat64()
}

// PerPoint returns amount/points, or nil when points is not positive.
func PerPoint(amount, points float64) *float64 {
	if points <= 0 {
		return nil
	}
	v := decimal.NewFromFloat(amount).Div(decimal.NewFromFloat(points)).InexactFloat64()
	return &v
}

// Score maps a total cost onto [0,1], 1 for free and 0 at or above
// NormalizationCap.
func Score(total float64) float64 {
	if total <= 0 {
		return 1
	}
	frac := total / NormalizationCap
	if frac > 1 {
		frac = 1
	}
	return 1 - frac
}
