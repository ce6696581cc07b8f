package zone

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/golang/geo/r2"
)

// rotationEpsilon is the smallest rotation RotateBy applies.
const rotationEpsilon = 1e-12

// Polygon is a simple polygon given as an ordered vertex loop. The last
// vertex implicitly connects back to the first.
//
// The polygon keeps the shape it was built from together with the affine
// transform accumulated by MoveBy and RotateBy; corners are always derived
// from that pair. The rotation counter records the total signed rotation
// applied since construction and is never wrapped, so a full turn reads as
// 2π rather than 0.
type Polygon struct {
	shape    []v2.Vec
	xf       sdf.M33
	corners  []Point
	rotation float64
}

// NewPolygon returns a polygon through the given vertices. The points are
// copied.
func NewPolygon(points ...Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	shape := make([]v2.Vec, len(points))
	for i, p := range points {
		shape[i] = p.vec()
	}
	return newPolygon(shape, sdf.Identity2d(), 0), nil
}

// NewPolygonWithRotation returns a polygon through corners whose rotation
// counter starts at rotation. The corners are taken as already rotated; this
// is how a stored polygon is restored.
func NewPolygonWithRotation(rotation float64, corners ...Point) (*Polygon, error) {
	p, err := NewPolygon(corners...)
	if err != nil {
		return nil, err
	}
	p.rotation = rotation
	return p, nil
}

// MustPolygon is like NewPolygon but panics on error. Intended for literals
// in tests and examples.
func MustPolygon(points ...Point) *Polygon {
	p, err := NewPolygon(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewRectangle returns an axis-aligned width x height rectangle centered on
// center.
func NewRectangle(center Point, width, height float64) *Polygon {
	return NewRotatedRectangle(center, width, height, 0)
}

// NewRotatedRectangle returns a width x height rectangle centered on center
// and rotated by angle radians. The polygon's rotation starts at angle.
func NewRotatedRectangle(center Point, width, height, angle float64) *Polygon {
	hw, hh := width/2, height/2
	shape := []v2.Vec{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	xf := sdf.Translate2d(center.vec()).Mul(sdf.Rotate2d(angle))
	return newPolygon(shape, xf, angle)
}

// NewSegmentRectangle returns the rectangle covering the segment from a to b
// widened by thickness, half on each side. It fails when a and b coincide.
func NewSegmentRectangle(a, b Point, thickness float64) (*Polygon, error) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, ErrDegenerateSegment
	}

	px := -dy * (thickness / 2) / length
	py := dx * (thickness / 2) / length
	shape := []v2.Vec{
		{X: a.X + px, Y: a.Y + py},
		{X: a.X - px, Y: a.Y - py},
		{X: b.X - px, Y: b.Y - py},
		{X: b.X + px, Y: b.Y + py},
	}
	return newPolygon(shape, sdf.Identity2d(), 0), nil
}

func newPolygon(shape []v2.Vec, xf sdf.M33, rotation float64) *Polygon {
	p := &Polygon{
		shape:    shape,
		xf:       xf,
		corners:  make([]Point, len(shape)),
		rotation: rotation,
	}
	p.rebuild()
	return p
}

// rebuild derives the corners from the construction shape and transform.
func (p *Polygon) rebuild() {
	for i, v := range p.shape {
		p.corners[i] = fromVec(p.xf.MulPosition(v))
	}
}

func (*Polygon) sealed() {}

// Position returns the mean of the corners.
func (p *Polygon) Position() Point {
	return centroid(p.corners)
}

// Corners returns a copy of the current vertex loop.
func (p *Polygon) Corners() []Point {
	out := make([]Point, len(p.corners))
	copy(out, p.corners)
	return out
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.corners)
}

// edge returns the i-th edge, wrapping around.
func (p *Polygon) edge(i int) (Point, Point) {
	n := len(p.corners)
	return p.corners[i%n], p.corners[(i+1)%n]
}

// Rotation returns the cumulative rotation in radians.
func (p *Polygon) Rotation() float64 {
	return p.rotation
}

// RotationDegrees returns the cumulative rotation in degrees.
func (p *Polygon) RotationDegrees() float64 {
	return sdf.RtoD(p.rotation)
}

// Contains reports whether pt is inside the polygon or within Epsilon of its
// boundary. The interior test is the even-odd crossing rule.
func (p *Polygon) Contains(pt Point) bool {
	if p.EdgeDistance(pt) <= Epsilon {
		return true
	}

	crossings := 0
	for i := range p.corners {
		a, b := p.edge(i)
		// Horizontal edges never pass the strict test, so the division
		// below is never by zero.
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

// IsInside reports whether the polygon overlaps or touches other.
func (p *Polygon) IsInside(other Zone) bool {
	return overlaps(p, other)
}

// IsFullyInside reports whether every vertex of the polygon is contained by
// other.
func (p *Polygon) IsFullyInside(other Zone) bool {
	return fullyInside(p, other)
}

// DistanceToPoint returns the distance from the polygon to pt, or 0 when pt
// is contained.
func (p *Polygon) DistanceToPoint(pt Point) float64 {
	if p.Contains(pt) {
		return 0
	}
	return p.EdgeDistance(pt)
}

// EdgeDistance returns the unsigned distance from pt to the nearest edge,
// whether pt is inside or outside.
func (p *Polygon) EdgeDistance(pt Point) float64 {
	minDistance := math.Inf(1)
	for i := range p.corners {
		a, b := p.edge(i)
		minDistance = math.Min(minDistance, pointSegmentDistance(pt, a, b))
	}
	return minDistance
}

// BoundaryDistance returns the edge distance, negated when pt is inside.
func (p *Polygon) BoundaryDistance(pt Point) float64 {
	d := p.EdgeDistance(pt)
	if p.Contains(pt) {
		return -d
	}
	return d
}

// DistanceTo returns the gap between the polygon and other. Against another
// polygon this is VertexSampledDistance.
func (p *Polygon) DistanceTo(other Zone) float64 {
	return distance(p, other)
}

// Bounds returns the bounding rectangle of the corners.
func (p *Polygon) Bounds() r2.Rect {
	pts := make([]r2.Point, len(p.corners))
	for i, c := range p.corners {
		pts[i] = r2.Point{X: c.X, Y: c.Y}
	}
	return r2.RectFromPoints(pts...)
}

// Area returns the unsigned shoelace area.
func (p *Polygon) Area() float64 {
	area := 0.0
	for i := range p.corners {
		a, b := p.edge(i)
		area += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(area) / 2
}

// IsSimple reports whether no two non-adjacent edges touch.
func (p *Polygon) IsSimple() bool {
	n := len(p.corners)
	for i := 0; i < n; i++ {
		a1, a2 := p.edge(i)
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last edges share corner 0
			}
			b1, b2 := p.edge(j)
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// MoveBy translates every corner by (dx, dy).
func (p *Polygon) MoveBy(dx, dy float64) {
	p.xf = sdf.Translate2d(v2.Vec{X: dx, Y: dy}).Mul(p.xf)
	p.rebuild()
}

// SetPosition translates the polygon so that its vertex mean lands on (x, y).
func (p *Polygon) SetPosition(x, y float64) {
	c := p.Position()
	p.MoveBy(x-c.X, y-c.Y)
}

// RotateBy rotates the polygon about its vertex mean by angle radians,
// counterclockwise for positive angles.
func (p *Polygon) RotateBy(angle float64) {
	if math.Abs(angle) < rotationEpsilon {
		return
	}
	c := p.Position().vec()
	about := sdf.Translate2d(c).Mul(sdf.Rotate2d(angle)).Mul(sdf.Translate2d(c.MulScalar(-1)))
	p.xf = about.Mul(p.xf)
	p.rebuild()
	p.rotation += angle
}

// RotateByDegrees is RotateBy with the angle in degrees.
func (p *Polygon) RotateByDegrees(degrees float64) {
	p.RotateBy(sdf.DtoR(degrees))
}

// SetRotation rotates the polygon so that Rotation() reports angle.
func (p *Polygon) SetRotation(angle float64) {
	p.RotateBy(angle - p.rotation)
}

// SetRotationDegrees is SetRotation with the angle in degrees.
func (p *Polygon) SetRotationDegrees(degrees float64) {
	p.SetRotation(sdf.DtoR(degrees))
}

// ---------------------------------------------------------------------------
// Polygon to polygon distance
// ---------------------------------------------------------------------------

// VertexSampledDistance approximates the gap between two polygons. It returns
// 0 when any pair of edges touches or when a vertex of either polygon is
// contained by the other; otherwise it is the smallest distance from any
// vertex of one polygon to the other polygon.
//
// The result is exact when the closest approach involves a vertex, which
// always holds for convex pairs. Separated concave pairs whose closest
// approach runs between two edge interiors are overstated;
// ExactPolygonDistance compares edge pairs for those.
func VertexSampledDistance(a, b *Polygon) float64 {
	if edgesTouch(a, b) {
		return 0
	}
	minDistance := math.Inf(1)
	for _, v := range a.corners {
		if b.Contains(v) {
			return 0
		}
		minDistance = math.Min(minDistance, b.DistanceToPoint(v))
	}
	for _, v := range b.corners {
		if a.Contains(v) {
			return 0
		}
		minDistance = math.Min(minDistance, a.DistanceToPoint(v))
	}
	return minDistance
}

// edgesTouch reports whether any edge of a shares a point with any edge of b.
func edgesTouch(a, b *Polygon) bool {
	for i := range a.corners {
		a1, a2 := a.edge(i)
		for j := range b.corners {
			b1, b2 := b.edge(j)
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// ExactPolygonDistance returns the gap between two polygons by comparing
// every edge pair.
func ExactPolygonDistance(a, b *Polygon) float64 {
	if b.Contains(a.corners[0]) || a.Contains(b.corners[0]) {
		return 0
	}
	minDistance := math.Inf(1)
	for i := range a.corners {
		a1, a2 := a.edge(i)
		for j := range b.corners {
			b1, b2 := b.edge(j)
			d := segmentDistance(a1, a2, b1, b2)
			if d == 0 {
				return 0
			}
			minDistance = math.Min(minDistance, d)
		}
	}
	return minDistance
}
