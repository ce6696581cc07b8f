package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/fieldzone/pkg/zone"
)

var (
	ErrEmptyName     = errors.New("layout: empty zone name")
	ErrDuplicateName = errors.New("layout: duplicate zone name")
	ErrNilZone       = errors.New("layout: nil zone")
)

// Layout is an ordered set of named zones. Names are unique; the same zone
// value may be registered under more than one name, or appear both on its
// own and as a composite member.
type Layout struct {
	zones map[string]zone.Zone
	order []string
}

// New creates an empty layout.
func New() *Layout {
	return &Layout{zones: make(map[string]zone.Zone)}
}

// Add registers z under name.
func (l *Layout) Add(name string, z zone.Zone) error {
	if name == "" {
		return ErrEmptyName
	}
	if z == nil {
		return fmt.Errorf("zone %q: %w", name, ErrNilZone)
	}
	if _, exists := l.zones[name]; exists {
		return fmt.Errorf("zone %q: %w", name, ErrDuplicateName)
	}
	l.zones[name] = z
	l.order = append(l.order, name)
	return nil
}

// Lookup returns the zone registered under name, or nil.
func (l *Layout) Lookup(name string) zone.Zone {
	return l.zones[name]
}

// MustLookup returns the zone registered under name, or panics.
func (l *Layout) MustLookup(name string) zone.Zone {
	z := l.Lookup(name)
	if z == nil {
		panic(fmt.Sprintf("layout: no zone named %q", name))
	}
	return z
}

// Names returns the zone names in registration order.
func (l *Layout) Names() []string {
	return append([]string(nil), l.order...)
}

// Count returns the number of named zones.
func (l *Layout) Count() int {
	return len(l.order)
}

// ContainingZones returns, in registration order, the names of every zone
// that contains p.
func (l *Layout) ContainingZones(p zone.Point) []string {
	var names []string
	for _, name := range l.order {
		if l.zones[name].Contains(p) {
			names = append(names, name)
		}
	}
	return names
}

// Nearest returns the zone closest to p and its distance. Ties go to the
// zone registered first. ok is false for an empty layout.
func (l *Layout) Nearest(p zone.Point) (name string, distance float64, ok bool) {
	distance = math.Inf(1)
	for _, n := range l.order {
		if d := l.zones[n].DistanceToPoint(p); d < distance {
			name, distance, ok = n, d, true
		}
	}
	return name, distance, ok
}
