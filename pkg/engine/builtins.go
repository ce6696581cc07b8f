package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/fieldzone/pkg/layout"
	"github.com/chazu/fieldzone/pkg/zone"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPoint wraps a zone.Point.
type sexpPoint struct {
	p zone.Point
}

func (s *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(point %g %g)", s.p.X, s.p.Y)
}
func (s *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpZone wraps a zone.Zone so it can be passed between builtins. The
// wrapped zone is shared, not copied: (move z ...) moves z everywhere it is
// referenced.
type sexpZone struct {
	z zone.Zone
}

func (s *sexpZone) SexpString(ps *zygo.PrintState) string {
	switch z := s.z.(type) {
	case *zone.Circle:
		return fmt.Sprintf("(circle :center (point %g %g) :radius %g)", z.Position().X, z.Position().Y, z.Radius())
	case *zone.Polygon:
		return fmt.Sprintf("(polygon ... %d corners)", z.Len())
	case *zone.Composite:
		return fmt.Sprintf("(union ... %d members)", len(z.Members()))
	}
	return fmt.Sprintf("(zone %T)", s.z)
}
func (s *sexpZone) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW reports whether s is a keyword produced by preprocessSource and
// returns its name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds a mixed positional and keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. A
// trailing keyword with no value maps to SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// number fetches a required numeric keyword argument.
func (a kwArgs) number(fn, key string) (float64, error) {
	v, ok := a.kw[key]
	if !ok {
		return 0, fmt.Errorf("%s: missing :%s", fn, key)
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", fn, key, err)
	}
	return f, nil
}

// point fetches a point keyword argument, or def when absent.
func (a kwArgs) point(fn, key string, def *zone.Point) (zone.Point, error) {
	v, ok := a.kw[key]
	if !ok {
		if def == nil {
			return zone.Point{}, fmt.Errorf("%s: missing :%s", fn, key)
		}
		return *def, nil
	}
	p, err := toPoint(v)
	if err != nil {
		return zone.Point{}, fmt.Errorf("%s: %s: %w", fn, key, err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a SexpInt or SexpFloat.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toPoint(s zygo.Sexp) (zone.Point, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.p, nil
	}
	return zone.Point{}, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
}

func toZone(s zygo.Sexp) (zone.Zone, error) {
	if z, ok := s.(*sexpZone); ok {
		return z.z, nil
	}
	return nil, fmt.Errorf("expected zone, got %T (%s)", s, s.SexpString(nil))
}

// flatten expands list and array arguments in place so that (polygon pts)
// and (union zs) accept a prebuilt sequence as well as inline items.
func flatten(args []zygo.Sexp) ([]zygo.Sexp, error) {
	var out []zygo.Sexp
	for _, a := range args {
		switch v := a.(type) {
		case *zygo.SexpPair:
			items, err := zygo.ListToArray(v)
			if err != nil {
				return nil, err
			}
			out = append(out, items...)
		case *zygo.SexpArray:
			out = append(out, v.Val...)
		default:
			out = append(out, a)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the zone DSL into env. Named zones land in l.
//
// Source must be preprocessed with preprocessSource so that :keyword tokens
// reach the builtins as recognizable strings.
func registerBuiltins(env *zygo.Zlisp, l *layout.Layout) {

	// (point x y)
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("point requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: y: %w", err)
		}
		return &sexpPoint{p: zone.Pt(x, y)}, nil
	})

	// (circle :center (point 0 0) :radius 2)
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.point("circle", "center", &zone.Point{})
		if err != nil {
			return zygo.SexpNull, err
		}
		r, err := pa.number("circle", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		if r <= 0 {
			return zygo.SexpNull, fmt.Errorf("circle: radius must be positive, got %g", r)
		}
		return &sexpZone{z: zone.NewCircle(center, r)}, nil
	})

	// (polygon (point 0 0) (point 4 0) (point 2 3) ...)
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		items, err := flatten(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		pts := make([]zone.Point, len(items))
		for i, item := range items {
			p, err := toPoint(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polygon: corner %d: %w", i, err)
			}
			pts[i] = p
		}
		p, err := zone.NewPolygon(pts...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return &sexpZone{z: p}, nil
	})

	// (rect :center (point 0 0) :width 4 :height 2 :angle 30)
	env.AddFunction("rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.point("rect", "center", &zone.Point{})
		if err != nil {
			return zygo.SexpNull, err
		}
		w, err := pa.number("rect", "width")
		if err != nil {
			return zygo.SexpNull, err
		}
		h, err := pa.number("rect", "height")
		if err != nil {
			return zygo.SexpNull, err
		}
		r := zone.NewRectangle(center, w, h)
		if _, ok := pa.kw["angle"]; ok {
			deg, err := pa.number("rect", "angle")
			if err != nil {
				return zygo.SexpNull, err
			}
			r.RotateByDegrees(deg)
		}
		return &sexpZone{z: r}, nil
	})

	// (segment :from (point 0 0) :to (point 10 0) :thickness 1)
	env.AddFunction("segment", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		from, err := pa.point("segment", "from", nil)
		if err != nil {
			return zygo.SexpNull, err
		}
		to, err := pa.point("segment", "to", nil)
		if err != nil {
			return zygo.SexpNull, err
		}
		thickness, err := pa.number("segment", "thickness")
		if err != nil {
			return zygo.SexpNull, err
		}
		p, err := zone.NewSegmentRectangle(from, to, thickness)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("segment: %w", err)
		}
		return &sexpZone{z: p}, nil
	})

	// (union z1 z2 ...)
	env.AddFunction("union", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		items, err := flatten(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("union: %w", err)
		}
		members := make([]zone.Zone, len(items))
		for i, item := range items {
			z, err := toZone(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("union: member %d: %w", i, err)
			}
			members[i] = z
		}
		c, err := zone.NewComposite(members...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("union: %w", err)
		}
		return &sexpZone{z: c}, nil
	})

	// (move z dx dy)
	env.AddFunction("move", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("move requires a zone and two offsets, got %d arguments", len(args))
		}
		z, err := toZone(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("move: %w", err)
		}
		dx, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("move: dx: %w", err)
		}
		dy, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("move: dy: %w", err)
		}
		z.MoveBy(dx, dy)
		return args[0], nil
	})

	// (rotate z degrees); polygons only.
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("rotate requires a polygon and an angle, got %d arguments", len(args))
		}
		z, err := toZone(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		p, ok := z.(*zone.Polygon)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rotate: only polygons can be rotated, got %T", z)
		}
		deg, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: angle: %w", err)
		}
		p.RotateByDegrees(deg)
		return args[0], nil
	})

	// (defzone "name" z)
	env.AddFunction("defzone", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defzone requires a name and a zone")
		}
		zoneName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defzone: name: %w", err)
		}
		z, err := toZone(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defzone: %w", err)
		}
		if err := l.Add(zoneName, z); err != nil {
			return zygo.SexpNull, fmt.Errorf("defzone: %w", err)
		}
		return args[1], nil
	})

	// (zone "name")
	env.AddFunction("zone", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("zone requires a name argument")
		}
		zoneName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("zone: name: %w", err)
		}
		z := l.Lookup(zoneName)
		if z == nil {
			return zygo.SexpNull, fmt.Errorf("zone: no zone named %q", zoneName)
		}
		return &sexpZone{z: z}, nil
	})

	// (distance z (point x y)) or (distance z1 z2)
	env.AddFunction("distance", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("distance requires two arguments, got %d", len(args))
		}
		z, err := toZone(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		if p, ok := args[1].(*sexpPoint); ok {
			return &zygo.SexpFloat{Val: z.DistanceToPoint(p.p)}, nil
		}
		other, err := toZone(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		return &zygo.SexpFloat{Val: z.DistanceTo(other)}, nil
	})
}
