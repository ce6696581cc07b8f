package zone

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Point is an immutable 2-D coordinate on the field.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%.3f, y=%.3f)", p.X, p.Y)
}

func (p Point) vec() v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

func fromVec(v v2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// centroid returns the arithmetic mean of pts. pts must be non-empty.
func centroid(pts []Point) Point {
	var sumX, sumY float64
	for _, pt := range pts {
		sumX += pt.X
		sumY += pt.Y
	}
	n := float64(len(pts))
	return Point{X: sumX / n, Y: sumY / n}
}
