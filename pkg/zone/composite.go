package zone

import (
	"math"

	"github.com/golang/geo/r2"
)

// Composite is the union of its member zones. Members may be of any kind,
// including other composites.
//
// Members are held by reference: moving the composite moves the member
// zones themselves, and a zone that also belongs to another composite moves
// with both. No zone is reachable twice from one composite, directly or
// through nested composites, so MoveBy moves each zone exactly once.
type Composite struct {
	members []Zone
}

// NewComposite returns the union of members. The member list is copied.
func NewComposite(members ...Zone) (*Composite, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	seen := make(map[Zone]struct{}, len(members))
	for _, m := range members {
		if m == nil {
			return nil, ErrNilMember
		}
		if err := markReachable(m, seen); err != nil {
			return nil, err
		}
	}
	return &Composite{members: append([]Zone(nil), members...)}, nil
}

// markReachable records z and everything nested under it in seen. A zone
// reached a second time would be moved twice by MoveBy.
func markReachable(z Zone, seen map[Zone]struct{}) error {
	if _, dup := seen[z]; dup {
		return ErrDuplicateMember
	}
	seen[z] = struct{}{}
	if c, ok := z.(*Composite); ok {
		for _, m := range c.members {
			if err := markReachable(m, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// MustComposite is like NewComposite but panics on error.
func MustComposite(members ...Zone) *Composite {
	c, err := NewComposite(members...)
	if err != nil {
		panic(err)
	}
	return c
}

func (*Composite) sealed() {}

// Members returns a copy of the member list.
func (c *Composite) Members() []Zone {
	return append([]Zone(nil), c.members...)
}

// Position returns the mean of the members' positions. It is not weighted
// by area.
func (c *Composite) Position() Point {
	centers := make([]Point, len(c.members))
	for i, m := range c.members {
		centers[i] = m.Position()
	}
	return centroid(centers)
}

// Contains reports whether any member contains p.
func (c *Composite) Contains(p Point) bool {
	for _, m := range c.members {
		if m.Contains(p) {
			return true
		}
	}
	return false
}

// IsInside reports whether any member overlaps or touches other.
func (c *Composite) IsInside(other Zone) bool {
	return overlaps(c, other)
}

// IsFullyInside reports whether every member lies fully inside other.
func (c *Composite) IsFullyInside(other Zone) bool {
	return fullyInside(c, other)
}

// DistanceToPoint returns 0 when p is contained, otherwise the smallest
// member distance.
func (c *Composite) DistanceToPoint(p Point) float64 {
	if c.Contains(p) {
		return 0
	}
	minDistance := math.Inf(1)
	for _, m := range c.members {
		minDistance = math.Min(minDistance, m.DistanceToPoint(p))
	}
	return minDistance
}

// DistanceTo returns the smallest distance from any member to other.
func (c *Composite) DistanceTo(other Zone) float64 {
	return distance(c, other)
}

// BoundaryDistance returns the distance to the union's boundary, negative
// inside. Inside, it is the distance to the nearest way out of any
// containing member, not the depth of the deepest one.
func (c *Composite) BoundaryDistance(p Point) float64 {
	if !c.Contains(p) {
		return c.DistanceToPoint(p)
	}
	nearest := math.Inf(-1)
	for _, m := range c.members {
		if !m.Contains(p) {
			continue
		}
		nearest = math.Max(nearest, m.BoundaryDistance(p))
	}
	return nearest
}

// Bounds returns the union of the members' bounds.
func (c *Composite) Bounds() r2.Rect {
	b := r2.EmptyRect()
	for _, m := range c.members {
		b = b.Union(m.Bounds())
	}
	return b
}

// MoveBy translates every member by (dx, dy).
func (c *Composite) MoveBy(dx, dy float64) {
	for _, m := range c.members {
		m.MoveBy(dx, dy)
	}
}

// SetPosition translates every member by the same offset so that Position()
// becomes (x, y).
func (c *Composite) SetPosition(x, y float64) {
	p := c.Position()
	c.MoveBy(x-p.X, y-p.Y)
}
