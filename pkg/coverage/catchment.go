package coverage

import (
	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
	"github.com/nudataviz/project-fall25-lifeflight/pkg/geo"
)

// Catchment is the map region a base serves first, with its service ring.
type Catchment struct {
	Base       string       `json:"base"`
	Region     []geo.LatLon `json:"region"`
	Ring       []geo.LatLon `json:"ring"`
	AreaSqMi   float64      `json:"area_sq_miles"`
	ServedSqMi float64      `json:"served_sq_miles"`
}

// Catchments partitions the padded bounding box of bases and locations into
// nearest-base regions. ServedSqMi is the part of each region inside the
// service radius.
func Catchments(bases []catalog.Location, locations []catalog.Location, radiusMiles float64) []Catchment {
	ordered := sortedBases(bases)
	if len(ordered) == 0 {
		return nil
	}
	pts := make([]geo.LatLon, 0, len(locations)+len(ordered))
	for _, l := range locations {
		pts = append(pts, l.LatLon)
	}
	for _, b := range ordered {
		pts = append(pts, b.LatLon)
	}
	box, _ := geo.BoundsOf(pts)
	box = box.Pad(0.1)

	proj := geo.Projection{Origin: box.Center()}
	seeds := make([]geo.Point2D, len(ordered))
	for i, b := range ordered {
		seeds[i] = proj.ToPlane(b.LatLon)
	}
	cells := geo.Voronoi(seeds, proj.BoundsPolygon(box))

	out := make([]Catchment, len(cells))
	for i, cell := range cells {
		ring := geo.Ring(cell.Seed, radiusMiles, geo.CircleSegments)
		served := geo.Clip(cell.Polygon, ring)
		out[i] = Catchment{
			Base:       ordered[cell.SeedIndex].Name,
			Region:     unproject(proj, cell.Polygon),
			Ring:       unproject(proj, ring),
			AreaSqMi:   cell.Polygon.Area(),
			ServedSqMi: served.Area(),
		}
	}
	return out
}

func unproject(proj geo.Projection, poly geo.Polygon) []geo.LatLon {
	out := make([]geo.LatLon, len(poly.Vertices))
	for i, v := range poly.Vertices {
		out[i] = proj.ToLatLon(v)
	}
	return out
}
