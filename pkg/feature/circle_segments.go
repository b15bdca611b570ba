package feature

import (
	"math"

	"github.com/chazu/panelgo/pkg/geom"
)

// DefaultCircleSegmentFunc decides how many segments approximate a circle
// of the given radius. The exact count is a quality/performance
// trade-off the spec leaves open; this default scales with radius so
// small drills stay cheap while large outlines stay round, and callers
// that care can swap the function out wholesale.
var DefaultCircleSegmentFunc = func(radius float64) int {
	n := int(math.Ceil(radius * 8))
	if n < 24 {
		n = 24
	}
	return n
}

// CircleSegments returns the segment count DefaultCircleSegmentFunc
// currently produces for radius.
func CircleSegments(radius float64) int {
	return DefaultCircleSegmentFunc(radius)
}

// circleRing approximates a circle of radius r centered at c with n
// vertices, evenly spaced starting at angle 0.
func circleRing(c geom.Point, r float64, n int) geom.Ring {
	ring := make(geom.Ring, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = geom.Point{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)}
	}
	return ring
}
