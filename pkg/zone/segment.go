package zone

import "math"

// collinearEpsilon bounds the cross product below which three points are
// treated as collinear.
const collinearEpsilon = 1e-12

// pointSegmentDistance returns the shortest distance from p to the segment
// ab. The projection parameter is clamped to [0, 1].
func pointSegmentDistance(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lengthSq := abx*abx + aby*aby
	if lengthSq == 0 {
		return p.DistanceTo(a)
	}

	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lengthSq
	switch {
	case t < 0:
		return p.DistanceTo(a)
	case t > 1:
		return p.DistanceTo(b)
	}
	return p.DistanceTo(Point{X: a.X + t*abx, Y: a.Y + t*aby})
}

// segmentDistance returns the shortest distance between segments ab and cd.
func segmentDistance(a, b, c, d Point) float64 {
	if segmentsIntersect(a, b, c, d) {
		return 0
	}
	return math.Min(
		math.Min(pointSegmentDistance(a, c, d), pointSegmentDistance(b, c, d)),
		math.Min(pointSegmentDistance(c, a, b), pointSegmentDistance(d, a, b)),
	)
}

type turn int

const (
	collinear turn = iota
	clockwise
	counterClockwise
)

func orientation(a, b, c Point) turn {
	v := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	switch {
	case math.Abs(v) <= collinearEpsilon:
		return collinear
	case v > 0:
		return clockwise
	}
	return counterClockwise
}

// onSegment reports whether q lies within the bounding box of segment pr.
// Only meaningful when p, q and r are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X)+collinearEpsilon &&
		q.X+collinearEpsilon >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y)+collinearEpsilon &&
		q.Y+collinearEpsilon >= math.Min(p.Y, r.Y)
}

// segmentsIntersect reports whether segments p1q1 and p2q2 share a point,
// including touching endpoints and collinear overlap.
func segmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == collinear && onSegment(p1, p2, q1):
		return true
	case o2 == collinear && onSegment(p1, q2, q1):
		return true
	case o3 == collinear && onSegment(p2, p1, q2):
		return true
	case o4 == collinear && onSegment(p2, q1, q2):
		return true
	}
	return false
}
