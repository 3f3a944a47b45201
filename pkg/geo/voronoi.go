package geo

// Cell is the part of the map closer to one seed than to any other.
type Cell struct {
	SeedIndex int     `json:"seed_index"`
	Seed      Point2D `json:"seed"`
	Polygon   Polygon `json:"polygon"`
}

// Voronoi cuts bounds into one cell per seed. Each cell is bounds clipped by
// the bisector half-plane facing its seed for every other seed; duplicate
// seeds share a cell.
func Voronoi(seeds []Point2D, bounds Polygon) []Cell {
	if len(seeds) == 0 {
		return nil
	}
	cells := make([]Cell, 0, len(seeds))
	for i, s := range seeds {
		region := bounds
		for _, o := range seeds {
			if o == s {
				continue
			}
			mid := s.add(o).scale(0.5)
			region = halfPlane{origin: mid, normal: s.sub(o)}.clip(region)
			if region.Empty() {
				break
			}
		}
		cells = append(cells, Cell{SeedIndex: i, Seed: s, Polygon: region})
	}
	return cells
}
