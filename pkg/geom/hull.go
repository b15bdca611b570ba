package geom

import (
	"math"
	"sort"
)

// ConvexHull computes the convex hull of a set of points using a Graham
// scan, the same algorithm original_source reaches for
// (geo::algorithm::convex_hull::graham::graham_hull) when convex-hull mode
// replaces the unioned outline.
func ConvexHull(points []Point) Ring {
	pts := dedupe(points)
	if len(pts) < 3 {
		return Ring(pts)
	}

	// Pick the point with lowest y (then lowest x) as the pivot.
	pivot := 0
	for i, p := range pts {
		if p.Y < pts[pivot].Y || (p.Y == pts[pivot].Y && p.X < pts[pivot].X) {
			pivot = i
		}
	}
	pts[0], pts[pivot] = pts[pivot], pts[0]
	origin := pts[0]
	rest := pts[1:]

	sort.Slice(rest, func(i, j int) bool {
		oi := polarOrder(origin, rest[i], rest[j])
		if oi != 0 {
			return oi < 0
		}
		// Collinear with origin: keep the farther point first so the
		// nearer duplicate gets dropped by the scan below.
		return sqDist(origin, rest[i]) > sqDist(origin, rest[j])
	})

	hull := make([]Point, 0, len(pts))
	hull = append(hull, origin)
	for _, p := range rest {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return Ring(hull)
}

func dedupe(points []Point) []Point {
	seen := make(map[Point]bool, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// cross returns the z-component of (b-a) x (c-a); positive means c is to
// the left of a->b.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func sqDist(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// polarOrder compares the polar angle of a and b around origin.
func polarOrder(origin, a, b Point) int {
	c := cross(origin, a, b)
	switch {
	case c > 0:
		return -1
	case c < 0:
		return 1
	default:
		return 0
	}
}

// angleTo returns the angle of p around origin. Nothing calls it: the
// hull scan stays purely in terms of cross products to avoid
// trigonometric round-off changing point ordering near-collinear cases.
func angleTo(origin, p Point) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X)
}
