package zone

import (
	"math"

	"github.com/golang/geo/r2"
)

// Circle is a disc on the field. The radius is fixed at construction; only
// the center moves.
type Circle struct {
	center Point
	radius float64
}

// NewCircle returns a circle with the given center and radius. The radius is
// expected to be positive; it is not checked.
func NewCircle(center Point, radius float64) *Circle {
	return &Circle{center: center, radius: radius}
}

// NewUnitCircle returns a circle of radius 1 centered at the origin.
func NewUnitCircle() *Circle {
	return NewCircle(Point{}, 1)
}

func (*Circle) sealed() {}

// Position returns the center of the circle.
func (c *Circle) Position() Point {
	return c.center
}

// Radius returns the radius of the circle.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Contains reports whether p is inside or on the circle.
func (c *Circle) Contains(p Point) bool {
	return c.BoundaryDistance(p) <= 0
}

// IsInside reports whether the circle overlaps or touches other.
func (c *Circle) IsInside(other Zone) bool {
	return overlaps(c, other)
}

// IsFullyInside reports whether the whole disc lies within other. Touching
// the boundary from inside counts.
func (c *Circle) IsFullyInside(other Zone) bool {
	return fullyInside(c, other)
}

// DistanceToPoint returns the distance from the circle's perimeter to p, or
// 0 when p is inside.
func (c *Circle) DistanceToPoint(p Point) float64 {
	return math.Max(0, c.BoundaryDistance(p))
}

// DistanceTo returns the gap between the circle and other.
func (c *Circle) DistanceTo(other Zone) float64 {
	return distance(c, other)
}

// BoundaryDistance returns |p - center| - radius.
func (c *Circle) BoundaryDistance(p Point) float64 {
	return p.DistanceTo(c.center) - c.radius
}

// Bounds returns the square enclosing the circle.
func (c *Circle) Bounds() r2.Rect {
	d := 2 * c.radius
	return r2.RectFromCenterSize(r2.Point{X: c.center.X, Y: c.center.Y}, r2.Point{X: d, Y: d})
}

// MoveBy translates the center by (dx, dy).
func (c *Circle) MoveBy(dx, dy float64) {
	c.center = c.center.Add(dx, dy)
}

// SetPosition moves the center to (x, y).
func (c *Circle) SetPosition(x, y float64) {
	c.center = Point{X: x, Y: y}
}
