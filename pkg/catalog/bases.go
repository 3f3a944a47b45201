package catalog

import "github.com/nudataviz/project-fall25-lifeflight/pkg/geo"

// ExistingBases are the currently operating bases.
var ExistingBases = []string{"BANGOR", "LEWISTON", "SANFORD"}

// CandidateSites are the cities evaluated as new base locations.
var CandidateSites = []string{
	"ROCKPORT", "AUGUSTA", "BELFAST", "WATERVILLE",
	"SKOWHEGAN", "BRIDGTON", "PRESQUE ISLE", "PORTLAND",
	"BIDDEFORD", "AUBURN",
}

// DefaultCoordinates covers the major base cities when a catalog file lacks
// them.
var DefaultCoordinates = map[string]geo.LatLon{
	"BANGOR":       {Lat: 44.8016, Lon: -68.7713},
	"PORTLAND":     {Lat: 43.6591, Lon: -70.2568},
	"LEWISTON":     {Lat: 44.1004, Lon: -70.2148},
	"AUBURN":       {Lat: 44.0979, Lon: -70.2311},
	"BIDDEFORD":    {Lat: 43.4926, Lon: -70.4534},
	"SANFORD":      {Lat: 43.4394, Lon: -70.7742},
	"ROCKPORT":     {Lat: 44.1879, Lon: -69.0767},
	"AUGUSTA":      {Lat: 44.3106, Lon: -69.7795},
	"BELFAST":      {Lat: 44.4259, Lon: -69.0064},
	"WATERVILLE":   {Lat: 44.5520, Lon: -69.6317},
	"SKOWHEGAN":    {Lat: 44.7651, Lon: -69.7194},
	"PRESQUE ISLE": {Lat: 46.6812, Lon: -68.0159},
}

// ResolveBase looks a base up in the catalog, then in DefaultCoordinates.
func (c *Catalog) ResolveBase(name string) (Location, bool) {
	if loc, ok := c.Lookup(name); ok {
		return loc, true
	}
	n := Normalize(name)
	if p, ok := DefaultCoordinates[n]; ok {
		return Location{Name: n, LatLon: p}, true
	}
	return Location{}, false
}

// ResolveBases resolves names in order, dropping unknown and duplicate names.
func (c *Catalog) ResolveBases(names []string) []Location {
	seen := make(map[string]bool, len(names))
	out := make([]Location, 0, len(names))
	for _, name := range names {
		loc, ok := c.ResolveBase(name)
		if !ok || seen[loc.Name] {
			continue
		}
		seen[loc.Name] = true
		out = append(out, loc)
	}
	return out
}

// BaseSets is the resolved existing and candidate base lists.
type BaseSets struct {
	Existing   []Location `json:"existing_bases"`
	Candidates []Location `json:"candidate_bases"`
}

// All returns existing bases followed by candidates.
func (b BaseSets) All() []Location {
	out := make([]Location, 0, len(b.Existing)+len(b.Candidates))
	out = append(out, b.Existing...)
	return append(out, b.Candidates...)
}

// Bases resolves the given existing and candidate names. Candidates that are
// also existing bases are skipped. Empty inputs fall back to ExistingBases
// and CandidateSites.
func (c *Catalog) Bases(existing, candidates []string) BaseSets {
	if len(existing) == 0 {
		existing = ExistingBases
	}
	if len(candidates) == 0 {
		candidates = CandidateSites
	}
	isExisting := make(map[string]bool, len(existing))
	for _, n := range existing {
		isExisting[Normalize(n)] = true
	}
	var filtered []string
	for _, n := range candidates {
		if !isExisting[Normalize(n)] {
			filtered = append(filtered, n)
		}
	}
	return BaseSets{
		Existing:   c.ResolveBases(existing),
		Candidates: c.ResolveBases(filtered),
	}
}
