package geo

import "math"

// CircleSegments is the vertex count of a service-radius ring.
const CircleSegments = 64

// Polygon is a closed region on the map plane. Rings and catchment cells
// are convex and counterclockwise.
type Polygon struct {
	Vertices []Point2D `json:"vertices"`
}

// Empty reports whether p encloses no area.
func (p Polygon) Empty() bool {
	return len(p.Vertices) < 3
}

// Area is the enclosed area in square plane units.
func (p Polygon) Area() float64 {
	if p.Empty() {
		return 0
	}
	var twice float64
	prev := p.Vertices[len(p.Vertices)-1]
	for _, v := range p.Vertices {
		twice += prev.X*v.Y - v.X*prev.Y
		prev = v
	}
	return math.Abs(twice) / 2
}

// Ring approximates the circle of radius around center with n vertices.
func Ring(center Point2D, radius float64, n int) Polygon {
	if n < 3 {
		n = 3
	}
	step := 2 * math.Pi / float64(n)
	out := make([]Point2D, n)
	for i := range out {
		s, c := math.Sincos(step * float64(i))
		out[i] = Point2D{X: center.X + radius*c, Y: center.Y + radius*s}
	}
	return Polygon{Vertices: out}
}

// halfPlane is the set of points q with (q - origin) . normal >= 0.
type halfPlane struct {
	origin, normal Point2D
}

func (h halfPlane) side(q Point2D) float64 {
	return q.sub(h.origin).dot(h.normal)
}

// leftOf is the half-plane to the left of the directed edge a->b.
func leftOf(a, b Point2D) halfPlane {
	d := b.sub(a)
	return halfPlane{origin: a, normal: Point2D{X: -d.Y, Y: d.X}}
}

// clip keeps the part of p inside h.
func (h halfPlane) clip(p Polygon) Polygon {
	if p.Empty() {
		return Polygon{}
	}
	var out []Point2D
	prev := p.Vertices[len(p.Vertices)-1]
	sPrev := h.side(prev)
	for _, v := range p.Vertices {
		s := h.side(v)
		if (sPrev >= 0) != (s >= 0) {
			t := sPrev / (sPrev - s)
			out = append(out, prev.add(v.sub(prev).scale(t)))
		}
		if s >= 0 {
			out = append(out, v)
		}
		prev, sPrev = v, s
	}
	if len(out) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: out}
}

// Clip returns the part of subject inside the convex counterclockwise
// polygon window.
func Clip(subject, window Polygon) Polygon {
	if subject.Empty() || window.Empty() {
		return Polygon{}
	}
	out := subject
	n := len(window.Vertices)
	for i, a := range window.Vertices {
		out = leftOf(a, window.Vertices[(i+1)%n]).clip(out)
		if out.Empty() {
			break
		}
	}
	return out
}
