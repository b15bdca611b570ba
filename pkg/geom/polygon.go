package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Ring is a closed, simple sequence of vertices. By convention the first
// and last point are NOT duplicated; callers that need the closed form
// (e.g. for SVG/Gerber output) close it themselves.
type Ring []Point

// OrbRing converts r to an orb.Ring, duplicating the first vertex at the
// end to produce orb's closed-ring convention.
func (r Ring) OrbRing() orb.Ring {
	out := make(orb.Ring, 0, len(r)+1)
	for _, p := range r {
		out = append(out, p.orb())
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// RingFromOrb converts an orb.Ring (closed or not) to our open-ring form.
func RingFromOrb(r orb.Ring) Ring {
	pts := []orb.Point(r)
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	out := make(Ring, len(pts))
	for i, p := range pts {
		out[i] = fromOrb(p)
	}
	return out
}

// SignedArea returns twice... no: returns the signed area of the ring.
// Positive for counter-clockwise rings in a y-up frame; since this
// package uses y-down screen coordinates, a positive result here means
// clockwise on screen. Callers should rely on sign consistency, not the
// absolute CW/CCW label.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return sum / 2
}

// Area returns the unsigned area enclosed by the ring.
func (r Ring) Area() float64 { return math.Abs(r.SignedArea()) }

// Reversed returns the ring with vertex order reversed.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Translate shifts every vertex by (dx, dy).
func (r Ring) Translate(dx, dy float64) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = Point{p.X + dx, p.Y + dy}
	}
	return out
}

// RotateAboutOrigin rotates every vertex by degrees CCW about (0,0).
func (r Ring) RotateAboutOrigin(degrees float64) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = p.Rotate(degrees)
	}
	return out
}

// ContainsPoint reports whether p lies strictly inside the ring using the
// standard even-odd ray-casting test. Points exactly on an edge are
// reported via the boundary-tolerant OnBoundary instead.
func (r Ring) ContainsPoint(p Point) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[j], r[i]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// OnBoundary reports whether p lies on one of the ring's edges within eps.
func (r Ring) OnBoundary(p Point, eps float64) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		if distToSegment(p, a, b) <= eps {
			return true
		}
	}
	return false
}

func distToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	ablen2 := abx*abx + aby*aby
	if ablen2 == 0 {
		return math.Hypot(apx, apy)
	}
	t := (apx*abx + apy*aby) / ablen2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx, cy := a.X+t*abx, a.Y+t*aby
	return math.Hypot(p.X-cx, p.Y-cy)
}

// Polygon is a simple exterior ring plus zero or more hole rings.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// ContainsPoint reports whether p is inside the exterior and outside
// every hole (the usual polygon-with-holes membership test).
func (p Polygon) ContainsPoint(pt Point) bool {
	if !p.Exterior.ContainsPoint(pt) {
		return false
	}
	for _, h := range p.Holes {
		if h.ContainsPoint(pt) {
			return false
		}
	}
	return true
}

// Translate shifts the whole polygon by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	holes := make([]Ring, len(p.Holes))
	for i, h := range p.Holes {
		holes[i] = h.Translate(dx, dy)
	}
	return Polygon{Exterior: p.Exterior.Translate(dx, dy), Holes: holes}
}

// MultiPolygon is an ordered collection of (generally disjoint) polygons.
type MultiPolygon []Polygon

// Translate shifts every polygon by (dx, dy).
func (mp MultiPolygon) Translate(dx, dy float64) MultiPolygon {
	out := make(MultiPolygon, len(mp))
	for i, p := range mp {
		out[i] = p.Translate(dx, dy)
	}
	return out
}

// ContainsPoint reports whether any polygon in mp contains p.
func (mp MultiPolygon) ContainsPoint(p Point) bool {
	for _, poly := range mp {
		if poly.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether mp has no polygons.
func (mp MultiPolygon) IsEmpty() bool { return len(mp) == 0 }

// SingleRing builds a MultiPolygon containing one hole-free polygon.
func SingleRing(r Ring) MultiPolygon {
	return MultiPolygon{{Exterior: r}}
}
