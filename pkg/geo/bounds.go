package geo

// Bounds is a lat/lon bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// BoundsOf returns the bounding box of the valid points. The second return
// value is false when no point is valid.
func BoundsOf(points []LatLon) (Bounds, bool) {
	var b Bounds
	found := false
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		if !found {
			b = Bounds{MinLat: p.Lat, MinLon: p.Lon, MaxLat: p.Lat, MaxLon: p.Lon}
			found = true
			continue
		}
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
	}
	return b, found
}

// Pad grows the box on every side by frac of its extent.
func (b Bounds) Pad(frac float64) Bounds {
	dLat := (b.MaxLat - b.MinLat) * frac
	dLon := (b.MaxLon - b.MinLon) * frac
	return Bounds{
		MinLat: b.MinLat - dLat,
		MinLon: b.MinLon - dLon,
		MaxLat: b.MaxLat + dLat,
		MaxLon: b.MaxLon + dLon,
	}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() LatLon {
	return LatLon{Lat: (b.MinLat + b.MaxLat) / 2, Lon: (b.MinLon + b.MaxLon) / 2}
}

// Contains reports whether p lies inside the box (edges inclusive).
func (b Bounds) Contains(p LatLon) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}
