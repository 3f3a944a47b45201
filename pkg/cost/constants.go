package cost

// Annual operating cost defaults.
const (
	BaseCostPerYear    = 500000.0 // $/base/yr
	VehicleCostPerYear = 100000.0 // $/vehicle/yr
	CrewCostPerYear    = 80000.0  // $/crew/yr

	ReferenceMissions = 1000       // missions/yr behind the per-mission figure
	NormalizationCap  = 10000000.0 // $ at which the cost score bottoms out
)
