package zone

import (
	"math"
	"testing"
)

// square returns the 4x4 square centered on the origin.
func square() *Polygon {
	return MustPolygon(Pt(-2, -2), Pt(2, -2), Pt(2, 2), Pt(-2, 2))
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(Pt(0, 0), 5)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(1, 1), true},
		{"outside", Pt(5, 5), false},
		{"on boundary", Pt(5, 0), true},
		{"just outside boundary", Pt(5.0001, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCircleDistanceToPoint(t *testing.T) {
	c := NewCircle(Pt(0, 0), 3)
	if got := c.DistanceToPoint(Pt(7, 0)); !approx(got, 4) {
		t.Errorf("outside distance = %f, want 4", got)
	}
	if got := c.DistanceToPoint(Pt(1, 1)); got != 0 {
		t.Errorf("inside distance = %f, want 0", got)
	}
}

func TestCircleDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a    *Circle
		b    Zone
		want float64
	}{
		{"separated circles", NewCircle(Pt(0, 0), 2), NewCircle(Pt(10, 0), 3), 5},
		{"overlapping circles", NewCircle(Pt(0, 0), 5), NewCircle(Pt(8, 0), 4), 0},
		{"circle outside polygon", NewCircle(Pt(10, 0), 2), square(), 6},
		{"circle overlapping polygon", NewCircle(Pt(5, 0), 4), square(), 0},
		{"center inside polygon", NewCircle(Pt(0, 0), 0.5), square(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceTo(tt.b); !approx(got, tt.want) {
				t.Errorf("DistanceTo = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCircleDistanceToNilIsNaN(t *testing.T) {
	c := NewUnitCircle()
	if got := c.DistanceTo(nil); !math.IsNaN(got) {
		t.Errorf("DistanceTo(nil) = %f, want NaN", got)
	}
	if c.IsInside(nil) {
		t.Error("IsInside(nil) = true, want false")
	}
	if c.IsFullyInside(nil) {
		t.Error("IsFullyInside(nil) = true, want false")
	}
}

func TestCircleIsInsideTriangles(t *testing.T) {
	c := NewCircle(Pt(0, 0), 2)
	eps := 1e-6
	tests := []struct {
		name     string
		triangle *Polygon
		want     bool
	}{
		{"edges cross, no vertex inside", MustPolygon(Pt(5, 0), Pt(-5, 2), Pt(-5, -2)), true},
		{"vertex exactly on circle", MustPolygon(Pt(2, 0), Pt(-4, 3), Pt(-4, -3)), true},
		{"edge tangent to circle", MustPolygon(Pt(-5, 2), Pt(5, 2), Pt(0, 5)), true},
		{"just outside", MustPolygon(Pt(2+eps, 3), Pt(2+eps, -3), Pt(5, 0)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsInside(tt.triangle); got != tt.want {
				t.Errorf("IsInside = %v, want %v (distance %g)", got, tt.want, c.DistanceTo(tt.triangle))
			}
		})
	}
}

func TestCircleIsInsideCircles(t *testing.T) {
	if !NewCircle(Pt(0, 0), 2).IsInside(NewCircle(Pt(5, 0), 3)) {
		t.Error("touching circles should overlap")
	}
	if NewCircle(Pt(0, 0), 1).IsInside(NewCircle(Pt(10, 0), 1)) {
		t.Error("separated circles should not overlap")
	}
}

func TestCircleIsFullyInside(t *testing.T) {
	outer := NewCircle(Pt(0, 0), 10)
	tests := []struct {
		name  string
		inner *Circle
		other Zone
		want  bool
	}{
		{"smaller circle in larger", NewCircle(Pt(1, 1), 2), outer, true},
		{"touching edge of larger", NewCircle(Pt(7, 0), 3), outer, true},
		{"poking out of larger", NewCircle(Pt(8, 0), 3), outer, false},
		{"outside polygon", NewCircle(Pt(10, 0), 1), square(), false},
		{"too large for polygon", NewCircle(Pt(0, 0), 3), square(), false},
		{"inside polygon", NewCircle(Pt(0, 0), 1), square(), true},
		{"touching polygon edge from inside", NewCircle(Pt(0, 0), 2), square(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inner.IsFullyInside(tt.other); got != tt.want {
				t.Errorf("IsFullyInside = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleIsFullyInsideComposite(t *testing.T) {
	u := MustComposite(square(), NewCircle(Pt(10, 0), 3))
	if !NewCircle(Pt(10, 1), 1).IsFullyInside(u) {
		t.Error("circle inside one member should be fully inside the union")
	}
	if NewCircle(Pt(6, 0), 1).IsFullyInside(u) {
		t.Error("circle between members should not be fully inside the union")
	}
}

func TestCircleMove(t *testing.T) {
	c := NewCircle(Pt(1, 2), 1)
	c.MoveBy(3, -1)
	if got := c.Position(); got != Pt(4, 1) {
		t.Errorf("after MoveBy, Position() = %v, want (4, 1)", got)
	}
	c.SetPosition(-5, 5)
	if got := c.Position(); got != Pt(-5, 5) {
		t.Errorf("after SetPosition, Position() = %v, want (-5, 5)", got)
	}
	if c.Radius() != 1 {
		t.Errorf("radius changed to %f", c.Radius())
	}
}

func TestCircleBounds(t *testing.T) {
	b := NewCircle(Pt(1, -1), 2).Bounds()
	if !approx(b.Lo().X, -1) || !approx(b.Lo().Y, -3) || !approx(b.Hi().X, 3) || !approx(b.Hi().Y, 1) {
		t.Errorf("Bounds() = %v, want [(-1,-3), (3,1)]", b)
	}
}
