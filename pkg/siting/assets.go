package siting

import (
	"math"
	"sort"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/coverage"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/sla"
)

// Sample filters.
const (
	MaxTransitMinutes = 400.0
	MaxSpeedMPH       = 1000.0
)

// SpecialAssets are the transport asset types with their own home bases.
var SpecialAssets = []string{"neoGround", "L-CCT", "B-CCT", "S-CCT"}

// Sample is one mission flown by an asset type with its implied speed.
// PickupDistanceMiles is set by EvaluateAssetType when a base is in range.
type Sample struct {
	PickupCity          string   `json:"pu_city"`
	Asset               string   `json:"asset"`
	TransitMinutes      float64  `json:"time_diff_minutes"`
	DistanceMiles       float64  `json:"distance"`
	SpeedMPH            float64  `json:"speed"`
	PickupDistanceMiles *float64 `json:"pickup_distance_miles"`
	AssignedBase        string   `json:"assigned_base,omitempty"`
}

// AssetSpeed is the learned cruise speed of an asset type.
type AssetSpeed struct {
	Asset     string  `json:"asset"`
	HomeCity  string  `json:"home_city"`
	Samples   int     `json:"samples"`
	MedianMPH float64 `json:"median_speed_mph"`
}

// HomeCity returns the pickup city the asset flies from most often. Ties go
// to the lexically smallest city.
func HomeCity(records []mission.Record, asset string) (string, bool) {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Asset == asset {
			if c := r.City(); c != "" {
				counts[c]++
			}
		}
	}
	home, best := "", 0
	for c, n := range counts {
		if n > best || (n == best && c < home) {
			home, best = c, n
		}
	}
	return home, best > 0
}

// Samples returns the asset's home city and one sample per mission whose
// pickup city and home city are both located, with a transit time in
// (0, 400) minutes, a positive distance and a speed under 1000 mph.
func Samples(records []mission.Record, cat *catalog.Catalog, asset string) (string, []Sample) {
	home, ok := HomeCity(records, asset)
	if !ok {
		return "", nil
	}
	homeLoc, ok := cat.Lookup(home)
	if !ok || !homeLoc.Valid() {
		return home, nil
	}

	var out []Sample
	for _, r := range records {
		if r.Asset != asset {
			continue
		}
		pickup, ok := cat.Lookup(r.City())
		if !ok || !pickup.Valid() {
			continue
		}
		minutes, ok := r.TransitMinutes()
		if !ok || minutes <= 0 || minutes >= MaxTransitMinutes {
			continue
		}
		dist := homeLoc.DistanceTo(pickup.LatLon)
		if !(dist > 0) {
			continue
		}
		speed := dist / (minutes / 60)
		if speed >= MaxSpeedMPH {
			continue
		}
		out = append(out, Sample{
			PickupCity:     pickup.Name,
			Asset:          asset,
			TransitMinutes: minutes,
			DistanceMiles:  dist,
			SpeedMPH:       speed,
		})
	}
	return home, out
}

func medianSpeed(samples []Sample) float64 {
	speeds := make([]float64, len(samples))
	for i, s := range samples {
		speeds[i] = s.SpeedMPH
	}
	sort.Float64s(speeds)
	m := sla.Median(speeds)
	if math.IsNaN(m) || m <= 0 {
		return 0
	}
	return m
}

// LearnSpeeds returns the median speed of every asset type in records that
// has at least one usable sample.
func LearnSpeeds(records []mission.Record, cat *catalog.Catalog) map[string]AssetSpeed {
	seen := make(map[string]bool)
	out := make(map[string]AssetSpeed)
	for _, r := range records {
		if r.Asset == "" || seen[r.Asset] {
			continue
		}
		seen[r.Asset] = true
		home, samples := Samples(records, cat, r.Asset)
		if len(samples) == 0 {
			continue
		}
		out[r.Asset] = AssetSpeed{
			Asset:     r.Asset,
			HomeCity:  home,
			Samples:   len(samples),
			MedianMPH: medianSpeed(samples),
		}
	}
	return out
}

// AssetTypeResult is the coverage and estimated compliance of an asset type
// flying from a set of bases.
type AssetTypeResult struct {
	Asset          string             `json:"asset"`
	Bases          []catalog.Location `json:"bases"`
	Coverage       map[string]int     `json:"coverage_stats"`
	Compliance     sla.Compliance     `json:"compliance_stats"`
	MedianSpeedMPH *float64           `json:"median_speed_mph,omitempty"`
	Samples        []Sample           `json:"processed_data"`
}

// EvaluateAssetType flies asset's missions from baseCities (its home city
// when none are given). Each sample is assigned to the nearest base within
// radiusMiles and its response estimated as distance over the asset's median
// speed, without dispatch overhead. Compliance counts estimates at or under
// expectedMinutes. Unknown base names are dropped.
func EvaluateAssetType(records []mission.Record, cat *catalog.Catalog, asset string, radiusMiles, expectedMinutes float64, baseCities []string) AssetTypeResult {
	out := AssetTypeResult{Asset: asset, Coverage: map[string]int{}, Samples: []Sample{}}
	home, samples := Samples(records, cat, asset)
	if home == "" {
		return out
	}

	if len(baseCities) == 0 {
		baseCities = []string{home}
	}
	seen := make(map[string]bool)
	for _, name := range baseCities {
		loc, ok := cat.Lookup(name)
		if !ok || !loc.Valid() || seen[loc.Name] {
			continue
		}
		seen[loc.Name] = true
		out.Bases = append(out.Bases, loc)
	}
	if len(out.Bases) == 0 {
		return out
	}
	out.Coverage = coverage.PerBase(out.Bases, radiusMiles, cat.Locations())
	if len(samples) == 0 {
		return out
	}

	median := medianSpeed(samples)
	rounded := math.Round(median*100) / 100
	out.MedianSpeedMPH = &rounded

	var times []float64
	for i := range samples {
		s := &samples[i]
		pickup, _ := cat.Lookup(s.PickupCity)
		best := math.Inf(1)
		for _, b := range out.Bases {
			if d := b.DistanceTo(pickup.LatLon); d <= radiusMiles && d < best {
				best = d
				s.AssignedBase = b.Name
			}
		}
		if s.AssignedBase == "" {
			continue
		}
		d := best
		s.PickupDistanceMiles = &d
		t := s.TransitMinutes
		if median > 0 {
			t = math.Round(d/median*60*1000) / 1000
		}
		times = append(times, t)
	}
	out.Compliance = sla.Comply(times, expectedMinutes)
	out.Samples = samples
	return out
}
