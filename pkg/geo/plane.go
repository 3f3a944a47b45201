package geo

import "math"

// Point2D is a position on a local map plane in miles, X east and Y north.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point2D) add(q Point2D) Point2D { return Point2D{p.X + q.X, p.Y + q.Y} }
func (p Point2D) sub(q Point2D) Point2D { return Point2D{p.X - q.X, p.Y - q.Y} }
func (p Point2D) dot(q Point2D) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point2D) scale(k float64) Point2D { return Point2D{p.X * k, p.Y * k} }

// Dist is the straight-line distance between p and q in plane units.
func (p Point2D) Dist(q Point2D) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Projection maps lat/lon onto an equirectangular plane centered on Origin.
// Distances come out in miles and stay close to haversine over a state.
type Projection struct {
	Origin LatLon
}

// ToPlane projects a coordinate onto the plane.
func (pr Projection) ToPlane(p LatLon) Point2D {
	k := math.Cos(radians(pr.Origin.Lat))
	return Point2D{
		X: EarthRadiusMiles * radians(p.Lon-pr.Origin.Lon) * k,
		Y: EarthRadiusMiles * radians(p.Lat-pr.Origin.Lat),
	}
}

// ToLatLon inverts ToPlane.
func (pr Projection) ToLatLon(p Point2D) LatLon {
	k := math.Cos(radians(pr.Origin.Lat))
	lon := pr.Origin.Lon
	if k > 1e-12 {
		lon += p.X / (EarthRadiusMiles * k) * 180 / math.Pi
	}
	return LatLon{
		Lat: pr.Origin.Lat + p.Y/EarthRadiusMiles*180/math.Pi,
		Lon: lon,
	}
}

// BoundsPolygon returns the projected rectangle of b, counterclockwise.
func (pr Projection) BoundsPolygon(b Bounds) Polygon {
	return Polygon{Vertices: []Point2D{
		pr.ToPlane(LatLon{Lat: b.MinLat, Lon: b.MinLon}),
		pr.ToPlane(LatLon{Lat: b.MinLat, Lon: b.MaxLon}),
		pr.ToPlane(LatLon{Lat: b.MaxLat, Lon: b.MaxLon}),
		pr.ToPlane(LatLon{Lat: b.MaxLat, Lon: b.MinLon}),
	}}
}
