// Package coverage determines which catalog locations a set of bases can
// reach within a service radius.
package coverage

import (
	"math"
	"sort"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
)

// sortedBases returns bases ordered by name. Equidistant ties in nearest-base
// assignment resolve to the lexically smallest base name.
func sortedBases(bases []catalog.Location) []catalog.Location {
	out := make([]catalog.Location, 0, len(bases))
	for _, b := range bases {
		if b.Valid() {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// nearest returns the closest base to loc and its distance. ok is false when
// there are no bases.
func nearest(bases []catalog.Location, loc catalog.Location) (catalog.Location, float64, bool) {
	best := math.Inf(1)
	var bestBase catalog.Location
	found := false
	for _, b := range bases {
		d := b.DistanceTo(loc.LatLon)
		if d < best {
			best = d
			bestBase = b
			found = true
		}
	}
	return bestBase, best, found
}

// NearestBase assigns every location to its closest base when that distance
// is within radiusMiles. A location appears under at most one base. Every
// valid base has an entry, possibly empty; location lists are sorted.
func NearestBase(bases []catalog.Location, radiusMiles float64, locations []catalog.Location) map[string][]string {
	ordered := sortedBases(bases)
	out := make(map[string][]string, len(ordered))
	for _, b := range ordered {
		out[b.Name] = []string{}
	}
	for _, loc := range locations {
		if !loc.Valid() {
			continue
		}
		b, d, ok := nearest(ordered, loc)
		if ok && d <= radiusMiles {
			out[b.Name] = append(out[b.Name], loc.Name)
		}
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

// WithinRadius returns the sorted names of locations within radiusMiles of at
// least one base.
func WithinRadius(bases []catalog.Location, radiusMiles float64, locations []catalog.Location) []string {
	var out []string
	for _, loc := range locations {
		if !loc.Valid() {
			continue
		}
		for _, b := range bases {
			if b.Valid() && b.DistanceTo(loc.LatLon) <= radiusMiles {
				out = append(out, loc.Name)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// PerBase counts, for each base independently, the locations within
// radiusMiles. A location near two bases counts under both.
func PerBase(bases []catalog.Location, radiusMiles float64, locations []catalog.Location) map[string]int {
	out := make(map[string]int, len(bases))
	for _, b := range bases {
		if !b.Valid() {
			continue
		}
		n := 0
		for _, loc := range locations {
			if loc.Valid() && b.DistanceTo(loc.LatLon) <= radiusMiles {
				n++
			}
		}
		out[b.Name] = n
	}
	return out
}

// Result bundles both coverage notions for one base set and radius.
type Result struct {
	Assignment map[string][]string `json:"assignment"`
	Covered    []string            `json:"covered"`
	PerBase    map[string]int      `json:"per_base"`
	Total      int                 `json:"total"`
}

// Rate returns the covered fraction of the catalog in [0,1], 0 for an empty
// catalog.
func (r Result) Rate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(len(r.Covered)) / float64(r.Total)
}

// Compute evaluates coverage of the catalog. Total counts every catalog
// entry, including those without usable coordinates.
func Compute(bases []catalog.Location, radiusMiles float64, cat *catalog.Catalog) Result {
	locs := cat.Locations()
	return Result{
		Assignment: NearestBase(bases, radiusMiles, locs),
		Covered:    WithinRadius(bases, radiusMiles, locs),
		PerBase:    PerBase(bases, radiusMiles, locs),
		Total:      cat.Len(),
	}
}
