package geom

import "math"

// eps is the tolerance used throughout boolean-op classification for
// "on the boundary" / "coincident vertex" decisions.
const eps = 1e-9

// Union returns the union of every polygon across all supplied
// multipolygons. Disjoint input polygons remain separate output polygons;
// overlapping or edge-touching polygons are merged into one.
func Union(mps ...MultiPolygon) MultiPolygon {
	var acc []Polygon
	for _, mp := range mps {
		for _, p := range mp {
			acc = mergeOne(acc, p)
		}
	}
	return MultiPolygon(acc)
}

// mergeOne merges polygon p into the accumulated result list, combining
// with any element it overlaps or touches. May need more than one pass
// since merging p with one element can newly overlap another.
func mergeOne(acc []Polygon, p Polygon) []Polygon {
	changed := true
	for changed {
		changed = false
		for i, q := range acc {
			if merged, ok := unionTwo(q, p); ok {
				acc = append(acc[:i], acc[i+1:]...)
				// merged may itself be a list (rare: a union that
				// produces a single contour, but keep general).
				p = merged[0]
				for _, extra := range merged[1:] {
					acc = append(acc, extra)
				}
				changed = true
				break
			}
		}
	}
	acc = append(acc, p)
	return acc
}

// Difference returns additive minus the union of subtract. Polygons fully
// inside an additive polygon (and not crossing its boundary) become holes
// of that polygon rather than separate disjoint output.
func Difference(additive MultiPolygon, subtract MultiPolygon) MultiPolygon {
	result := append(MultiPolygon{}, additive...)
	for _, neg := range subtract {
		var next []Polygon
		for _, pos := range result {
			next = append(next, differenceOne(pos, neg)...)
		}
		result = next
	}
	return result
}

// unionTwo attempts to merge a and b into one polygon. ok is false if
// they are genuinely disjoint (no touch, no overlap, no containment).
func unionTwo(a, b Polygon) (merged []Polygon, ok bool) {
	boxA, boxB := BoxFromRing(a.Exterior), BoxFromRing(b.Exterior)
	if !boxA.Overlaps(boxB) {
		return nil, false
	}

	if ring, found := mergeAlongSharedEdge(a.Exterior, b.Exterior); found {
		return []Polygon{{Exterior: ring, Holes: append(append([]Ring{}, a.Holes...), b.Holes...)}}, true
	}

	crossings := ringIntersections(a.Exterior, b.Exterior)
	if len(crossings) == 0 {
		switch {
		case containsRing(a.Exterior, b.Exterior):
			return []Polygon{{Exterior: a.Exterior, Holes: a.Holes}}, true
		case containsRing(b.Exterior, a.Exterior):
			return []Polygon{{Exterior: b.Exterior, Holes: b.Holes}}, true
		default:
			return nil, false
		}
	}

	rings := greinerHormann(a.Exterior, b.Exterior, opUnion)
	if len(rings) == 0 {
		return nil, false
	}
	out := make([]Polygon, len(rings))
	for i, r := range rings {
		out[i] = Polygon{Exterior: r}
	}
	return out, true
}

// differenceOne subtracts ring neg.Exterior from polygon pos.
func differenceOne(pos Polygon, neg Polygon) []Polygon {
	boxP, boxN := BoxFromRing(pos.Exterior), BoxFromRing(neg.Exterior)
	if !boxP.Overlaps(boxN) {
		return []Polygon{pos}
	}

	crossings := ringIntersections(pos.Exterior, neg.Exterior)
	if len(crossings) == 0 {
		switch {
		case containsRing(pos.Exterior, neg.Exterior):
			holes := append(append([]Ring{}, pos.Holes...), neg.Exterior)
			return []Polygon{{Exterior: pos.Exterior, Holes: holes}}
		case containsRing(neg.Exterior, pos.Exterior):
			return nil // pos entirely consumed
		default:
			return []Polygon{pos}
		}
	}

	rings := greinerHormann(pos.Exterior, neg.Exterior, opDifference)
	if len(rings) == 0 {
		return nil
	}
	out := make([]Polygon, len(rings))
	for i, r := range rings {
		out[i] = Polygon{Exterior: r, Holes: pos.Holes}
	}
	return out
}

// containsRing reports whether every vertex of inner lies inside (or on
// the boundary of) outer, and at least one lies strictly inside —
// i.e. inner is nested within outer with no boundary crossing.
func containsRing(outer, inner Ring) bool {
	anyStrict := false
	for _, p := range inner {
		if outer.ContainsPoint(p) {
			anyStrict = true
			continue
		}
		if !outer.OnBoundary(p, eps) {
			return false
		}
	}
	return anyStrict
}

// mergeAlongSharedEdge looks for an edge of a and an edge of b that are
// the same segment (endpoints equal, in either order) and splices the
// two rings into one by dropping the shared edge. This is exactly the
// case array/tuple/column positioners produce: adjacent copies placed at
// a pitch equal to the child's bounding-box extent share a full edge.
func mergeAlongSharedEdge(a, b Ring) (Ring, bool) {
	n, m := len(a), len(b)
	for i := 0; i < n; i++ {
		a0, a1 := a[i], a[(i+1)%n]
		for j := 0; j < m; j++ {
			b0, b1 := b[j], b[(j+1)%m]
			if samePoint(a0, b1) && samePoint(a1, b0) {
				return spliceRings(a, i, b, j), true
			}
		}
	}
	return nil, false
}

func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// spliceRings builds the merged boundary: walk a from i+1 around back to
// i (inclusive), then walk b from j+1 around back to j (inclusive, minus
// the duplicate shared vertices).
func spliceRings(a Ring, i int, b Ring, j int) Ring {
	n, m := len(a), len(b)
	out := make(Ring, 0, n+m)
	for k := 1; k <= n; k++ {
		out = append(out, a[(i+k)%n])
	}
	for k := 1; k <= m; k++ {
		out = append(out, b[(j+k)%m])
	}
	return dedupeAdjacent(out)
}

func dedupeAdjacent(r Ring) Ring {
	if len(r) == 0 {
		return r
	}
	out := make(Ring, 0, len(r))
	for i, p := range r {
		prev := out
		if len(out) == 0 {
			out = append(out, p)
			continue
		}
		last := prev[len(prev)-1]
		if !samePoint(last, p) {
			out = append(out, p)
		}
		_ = i
	}
	if len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// ringIntersections returns the parametric crossing points between every
// edge of a and every edge of b, excluding coincident/parallel overlaps
// (those are handled by mergeAlongSharedEdge / containment checks).
func ringIntersections(a, b Ring) []Point {
	var out []Point
	n, m := len(a), len(b)
	for i := 0; i < n; i++ {
		a0, a1 := a[i], a[(i+1)%n]
		for j := 0; j < m; j++ {
			b0, b1 := b[j], b[(j+1)%m]
			if p, _, _, ok := segmentIntersect(a0, a1, b0, b1); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// segmentIntersect computes the intersection of segments (a0,a1) and
// (b0,b1), returning the point and the parametric positions t, u along
// each segment. Only proper interior crossings (0<t<1, 0<u<1) count; a
// crossing exactly at a shared vertex is reported by the touching-edge
// path instead, so it is excluded here via the epsilon guard.
func segmentIntersect(a0, a1, b0, b1 Point) (Point, float64, float64, bool) {
	rx, ry := a1.X-a0.X, a1.Y-a0.Y
	sx, sy := b1.X-b0.X, b1.Y-b0.Y
	denom := rx*sy - ry*sx
	if math.Abs(denom) < 1e-12 {
		return Point{}, 0, 0, false
	}
	qpx, qpy := b0.X-a0.X, b0.Y-a0.Y
	t := (qpx*sy - qpy*sx) / denom
	u := (qpx*ry - qpy*rx) / denom
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return Point{}, 0, 0, false
	}
	return Point{a0.X + t*rx, a0.Y + t*ry}, t, u, true
}

type boolOp int

const (
	opUnion boolOp = iota
	opDifference
)

// gh-vertex: one node of a Greiner-Hormann doubly linked ring.
type ghVertex struct {
	p          Point
	next, prev *ghVertex
	intersect  bool
	entry      bool
	visited    bool
	neighbor   *ghVertex
	alpha      float64
}

// buildGHRing makes a circular doubly linked list from a plain ring.
func buildGHRing(r Ring) *ghVertex {
	nodes := make([]*ghVertex, len(r))
	for i, p := range r {
		nodes[i] = &ghVertex{p: p}
	}
	n := len(nodes)
	for i := 0; i < n; i++ {
		nodes[i].next = nodes[(i+1)%n]
		nodes[i].prev = nodes[(i-1+n)%n]
	}
	return nodes[0]
}

// insertBetween inserts v between a and a.next, keeping any existing
// intersection vertices already inserted on that edge ordered by alpha.
func insertBetween(edgeStart *ghVertex, v *ghVertex) {
	cur := edgeStart
	for cur.next.intersect && cur.next.alpha < v.alpha && cur.next != edgeStart {
		cur = cur.next
	}
	v.next = cur.next
	v.prev = cur
	cur.next.prev = v
	cur.next = v
}

// greinerHormann clips ring a against ring b for the given operation,
// returning the resulting boundary ring(s). Both inputs must be simple,
// hole-free rings with at least one proper edge crossing between them
// (callers route the no-crossing cases through containment/touching
// checks before reaching here).
func greinerHormann(a, b Ring, op boolOp) []Ring {
	startA := buildGHRing(a)
	startB := buildGHRing(b)

	type edgeRef struct{ start *ghVertex }
	var edgesA, edgesB []*ghVertex
	for v, i := startA, 0; i < len(a); i, v = i+1, v.next {
		edgesA = append(edgesA, v)
	}
	for v, i := startB, 0; i < len(b); i, v = i+1, v.next {
		edgesB = append(edgesB, v)
	}

	any := false
	for _, ea := range edgesA {
		a0, a1 := ea.p, ea.next.p
		for _, eb := range edgesB {
			b0, b1 := eb.p, eb.next.p
			pt, t, u, ok := segmentIntersect(a0, a1, b0, b1)
			if !ok {
				continue
			}
			any = true
			va := &ghVertex{p: pt, intersect: true, alpha: t}
			vb := &ghVertex{p: pt, intersect: true, alpha: u}
			va.neighbor = vb
			vb.neighbor = va
			insertBetween(ea, va)
			insertBetween(eb, vb)
		}
	}
	if !any {
		return nil
	}

	markEntries(startA, b)
	markEntries(startB, a)

	if op == opUnion {
		flipEntries(startA)
		flipEntries(startB)
	} else if op == opDifference {
		flipEntries(startB)
	}

	return traceContours(startA)
}

// markEntries walks list starting at start (which may have grown past the
// original head via intersection insertion, so we search for any
// non-intersection vertex to anchor on) and sets entry/exit flags.
func markEntries(start *ghVertex, other Ring) {
	anchor := start
	for anchor.intersect {
		anchor = anchor.next
	}
	inside := other.ContainsPoint(anchor.p)
	entryForNext := !inside
	v := anchor
	for {
		if v.intersect {
			v.entry = entryForNext
			entryForNext = !entryForNext
		}
		v = v.next
		if v == anchor {
			break
		}
	}
}

func flipEntries(start *ghVertex) {
	v := start
	for {
		if v.intersect {
			v.entry = !v.entry
		}
		v = v.next
		if v == start {
			break
		}
	}
}

// traceContours walks all unvisited intersection vertices reachable from
// start, producing one output ring per closed traversal.
func traceContours(start *ghVertex) []Ring {
	var all []*ghVertex
	collectAll(start, &all)

	var rings []Ring
	for _, seed := range all {
		if !seed.intersect || seed.visited {
			continue
		}
		var ring Ring
		cur := seed
		for {
			cur.visited = true
			cur.neighbor.visited = true
			ring = append(ring, cur.p)
			forward := cur.entry
			for {
				if forward {
					cur = cur.next
				} else {
					cur = cur.prev
				}
				ring = append(ring, cur.p)
				if cur.intersect {
					break
				}
			}
			cur.visited = true
			cur.neighbor.visited = true
			cur = cur.neighbor
			if cur == seed {
				break
			}
		}
		rings = append(rings, dedupeAdjacent(ring))
	}
	return rings
}

func collectAll(start *ghVertex, out *[]*ghVertex) {
	seen := map[*ghVertex]bool{}
	v := start
	for {
		if !seen[v] {
			seen[v] = true
			*out = append(*out, v)
		}
		v = v.next
		if v == start {
			break
		}
	}
}
