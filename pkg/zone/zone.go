// Package zone implements a small 2-D region algebra: circles, simple
// polygons and unions of regions, all answering the same containment and
// distance queries through the Zone interface.
//
// The set of zone kinds is closed. Pairwise queries between kinds are
// dispatched explicitly in this package, so adding a kind means extending
// the dispatch functions below rather than relying on runtime casts spread
// across the variants.
//
// Zones are mutable and not safe for concurrent use. Callers that share a
// zone between goroutines must serialize access to the top-level zone.
package zone

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance used for boundary and overlap decisions.
const Epsilon = 1e-9

// Zone is a region of the plane.
type Zone interface {
	// Position returns the reference point of the zone: the center of a
	// circle, the vertex mean of a polygon, the member mean of a composite.
	Position() Point

	// Contains reports whether p lies inside or on the boundary.
	Contains(p Point) bool

	// IsInside reports whether this zone overlaps or touches other.
	IsInside(other Zone) bool

	// IsFullyInside reports whether this zone lies entirely within other.
	IsFullyInside(other Zone) bool

	// DistanceToPoint returns the distance from the zone to p, or 0 when p
	// is contained.
	DistanceToPoint(p Point) float64

	// DistanceTo returns the separation between this zone and other, or 0
	// when they overlap or touch. It returns NaN for unsupported pairs.
	DistanceTo(other Zone) float64

	// BoundaryDistance returns the signed distance from p to the boundary,
	// negative when p is inside.
	BoundaryDistance(p Point) float64

	// Bounds returns the axis-aligned bounding rectangle of the zone.
	Bounds() r2.Rect

	// MoveBy translates the zone by (dx, dy).
	MoveBy(dx, dy float64)

	// SetPosition translates the zone so that Position() becomes (x, y).
	SetPosition(x, y float64)

	sealed()
}

// Compile-time interface checks.
var (
	_ Zone = (*Circle)(nil)
	_ Zone = (*Polygon)(nil)
	_ Zone = (*Composite)(nil)
)

// overlaps is the shared IsInside rule for every zone kind.
func overlaps(a, b Zone) bool {
	return distance(a, b) <= Epsilon
}

// distance dispatches DistanceTo over every pair of zone kinds.
func distance(a, b Zone) float64 {
	switch a := a.(type) {
	case *Circle:
		switch b := b.(type) {
		case *Circle:
			return math.Max(0, a.center.DistanceTo(b.center)-(a.radius+b.radius))
		case *Polygon:
			return circlePolygonDistance(a, b)
		case *Composite:
			return b.DistanceTo(a)
		}
	case *Polygon:
		switch b := b.(type) {
		case *Circle:
			return circlePolygonDistance(b, a)
		case *Polygon:
			return VertexSampledDistance(a, b)
		case *Composite:
			return b.DistanceTo(a)
		}
	case *Composite:
		if b == nil {
			return math.NaN()
		}
		minDistance := math.Inf(1)
		for _, m := range a.members {
			minDistance = math.Min(minDistance, m.DistanceTo(b))
		}
		return minDistance
	}
	return math.NaN()
}

// fullyInside dispatches IsFullyInside over every pair of zone kinds.
func fullyInside(a, b Zone) bool {
	switch a := a.(type) {
	case *Circle:
		switch b := b.(type) {
		case *Circle:
			return a.center.DistanceTo(b.center)+a.radius <= b.radius
		case *Polygon:
			if !b.Contains(a.center) {
				return false
			}
			return b.EdgeDistance(a.center) >= a.radius
		case *Composite:
			// Sufficient but not necessary: a circle straddling two
			// touching members is reported as not fully inside.
			for _, m := range b.members {
				if a.IsFullyInside(m) {
					return true
				}
			}
			return false
		}
	case *Polygon:
		if b == nil {
			return false
		}
		// Exact for convex targets; concave targets can report true for a
		// polygon whose edges leave and re-enter.
		for _, c := range a.corners {
			if !b.Contains(c) {
				return false
			}
		}
		return true
	case *Composite:
		if b == nil {
			return false
		}
		for _, m := range a.members {
			if !m.IsFullyInside(b) {
				return false
			}
		}
		return true
	}
	return false
}

func circlePolygonDistance(c *Circle, p *Polygon) float64 {
	return math.Max(0, p.DistanceToPoint(c.center)-c.radius)
}
