// Package demand estimates fleet mission capacity and the covered demand it
// cannot absorb.
package demand

// OperationalDaysPerYear is the default number of flying days.
const OperationalDaysPerYear = 365

// Capacity returns fleetSize * missionsPerVehiclePerDay * days. Crew count
// is tracked for cost only and does not scale capacity.
func Capacity(fleetSize, missionsPerVehiclePerDay, days int) float64 {
	if days <= 0 {
		days = OperationalDaysPerYear
	}
	return float64(fleetSize) * float64(missionsPerVehiclePerDay) * float64(days)
}

// Unmet is the demand estimate for one scenario.
type Unmet struct {
	Missions      float64 `json:"missions"`
	RatePercent   float64 `json:"rate_percent"`
	CoveredDemand float64 `json:"covered_demand"`
	Capacity      float64 `json:"capacity"`
}

// EstimateUnmet scales annual missions by the coverage fraction and reports
// the excess over capacity. The result is never negative and the rate is 0
// when there is no covered demand.
func EstimateUnmet(annualMissions int, capacity, coverageRate float64) Unmet {
	covered := float64(annualMissions) * coverageRate
	unmet := covered - capacity
	if unmet < 0 {
		unmet = 0
	}
	rate := 0.0
	if covered > 0 {
		rate = unmet / covered * 100
	}
	return Unmet{
		Missions:      unmet,
		RatePercent:   rate,
		CoveredDemand: covered,
		Capacity:      capacity,
	}
}
