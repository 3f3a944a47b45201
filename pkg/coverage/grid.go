package coverage

import (
	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/geo"
)

// DefaultGridSize is the heat-surface resolution per axis.
const DefaultGridSize = 20

// Thresholds are the response-time bands reported per grid cell, in minutes.
var Thresholds = []int{5, 10, 15, 20}

// GridCell is one sample of the coverage heat-surface.
type GridCell struct {
	Latitude        float64      `json:"latitude"`
	Longitude       float64      `json:"longitude"`
	ClosestBase     string       `json:"closest_base,omitempty"`
	DistanceMiles   *float64     `json:"distance_miles"`
	ResponseMinutes *float64     `json:"response_time_minutes"`
	WithinRadius    bool         `json:"within_radius"`
	Coverage        map[int]bool `json:"coverage_minutes"`
}

// Grid samples an N x N lattice over the padded bounding box of the
// locations and classifies each point by its closest base. It returns nil
// when no location has coordinates. Cells with no base carry nil distance
// and response time.
func Grid(bases []catalog.Location, locations []catalog.Location, radiusMiles float64, size int, model geo.ResponseModel) []GridCell {
	if size <= 0 {
		size = DefaultGridSize
	}
	pts := make([]geo.LatLon, 0, len(locations))
	for _, l := range locations {
		pts = append(pts, l.LatLon)
	}
	box, ok := geo.BoundsOf(pts)
	if !ok {
		return nil
	}
	box = box.Pad(0.1)
	latStep := (box.MaxLat - box.MinLat) / float64(size)
	lonStep := (box.MaxLon - box.MinLon) / float64(size)

	ordered := sortedBases(bases)
	cells := make([]GridCell, 0, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			p := catalog.Location{LatLon: geo.LatLon{
				Lat: box.MinLat + float64(i)*latStep,
				Lon: box.MinLon + float64(j)*lonStep,
			}}
			cell := GridCell{
				Latitude:  p.Lat,
				Longitude: p.Lon,
				Coverage:  make(map[int]bool, len(Thresholds)),
			}
			for _, th := range Thresholds {
				cell.Coverage[th] = false
			}
			if b, d, found := nearest(ordered, p); found {
				rt := model.Minutes(d)
				dist := d
				cell.ClosestBase = b.Name
				cell.DistanceMiles = &dist
				cell.ResponseMinutes = &rt
				cell.WithinRadius = d <= radiusMiles
				for _, th := range Thresholds {
					cell.Coverage[th] = rt <= float64(th)
				}
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
