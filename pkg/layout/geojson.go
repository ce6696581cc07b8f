package layout

import (
	"errors"
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/chazu/fieldzone/pkg/zone"
)

// Feature property keys.
const (
	propName     = "name"
	propKind     = "kind"
	propRadius   = "radius"
	propRotation = "rotation"
	propZone     = "zone"
)

// Zone kinds as written to the kind property and to member descriptors.
const (
	KindCircle    = "circle"
	KindPolygon   = "polygon"
	KindComposite = "composite"
)

// Decode errors.
var (
	// ErrBadFeature reports a feature that does not describe a zone.
	ErrBadFeature = errors.New("layout: malformed zone feature")
)

// Encode writes the layout as a GeoJSON FeatureCollection with one feature
// per named zone, in registration order.
//
// A circle is a Point geometry with a radius property. A polygon is a
// Polygon geometry with a closed ring and a rotation property in radians.
// A composite is a GeometryCollection for viewers plus a zone property
// holding the nested member descriptors that Decode reads back.
//
// Members shared between zones are written once per use; decoding yields
// independent copies.
func Encode(l *Layout) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, name := range l.order {
		f, err := encodeFeature(l.zones[name])
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", name, err)
		}
		f.ID = name
		f.SetProperty(propName, name)
		fc.AddFeature(f)
	}
	return fc.MarshalJSON()
}

func encodeFeature(z zone.Zone) (*geojson.Feature, error) {
	g, err := encodeGeometry(z)
	if err != nil {
		return nil, err
	}
	f := geojson.NewFeature(g)
	switch z := z.(type) {
	case *zone.Circle:
		f.SetProperty(propKind, KindCircle)
		f.SetProperty(propRadius, z.Radius())
	case *zone.Polygon:
		f.SetProperty(propKind, KindPolygon)
		f.SetProperty(propRotation, z.Rotation())
	case *zone.Composite:
		f.SetProperty(propKind, KindComposite)
		f.SetProperty(propZone, describe(z))
	}
	return f, nil
}

func encodeGeometry(z zone.Zone) (*geojson.Geometry, error) {
	switch z := z.(type) {
	case *zone.Circle:
		return geojson.NewPointGeometry(coord(z.Position())), nil
	case *zone.Polygon:
		return geojson.NewPolygonGeometry([][][]float64{ring(z.Corners())}), nil
	case *zone.Composite:
		members := z.Members()
		geoms := make([]*geojson.Geometry, len(members))
		for i, m := range members {
			g, err := encodeGeometry(m)
			if err != nil {
				return nil, err
			}
			geoms[i] = g
		}
		return geojson.NewCollectionGeometry(geoms...), nil
	}
	return nil, fmt.Errorf("unsupported zone type %T", z)
}

func coord(p zone.Point) []float64 {
	return []float64{p.X, p.Y}
}

// ring returns the corners as a closed GeoJSON linear ring.
func ring(corners []zone.Point) [][]float64 {
	out := make([][]float64, 0, len(corners)+1)
	for _, c := range corners {
		out = append(out, coord(c))
	}
	return append(out, coord(corners[0]))
}

// describe returns the nested descriptor of z. Descriptors use only JSON
// types so that they read back the same after a round trip.
func describe(z zone.Zone) map[string]any {
	switch z := z.(type) {
	case *zone.Circle:
		return map[string]any{
			propKind:   KindCircle,
			"center":   coord(z.Position()),
			propRadius: z.Radius(),
		}
	case *zone.Polygon:
		corners := z.Corners()
		pts := make([][]float64, len(corners))
		for i, c := range corners {
			pts[i] = coord(c)
		}
		return map[string]any{
			propKind:     KindPolygon,
			"corners":    pts,
			propRotation: z.Rotation(),
		}
	case *zone.Composite:
		members := z.Members()
		descs := make([]map[string]any, len(members))
		for i, m := range members {
			descs[i] = describe(m)
		}
		return map[string]any{
			propKind:  KindComposite,
			"members": descs,
		}
	}
	return nil
}

// Decode reads a FeatureCollection written by Encode. Features without a
// name property are named "zone-N" after their position.
func Decode(data []byte) (*Layout, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}

	l := New()
	for i, f := range fc.Features {
		name, err := f.PropertyString(propName)
		if err != nil || name == "" {
			name = fmt.Sprintf("zone-%d", i)
		}
		z, err := decodeFeature(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, name, err)
		}
		if err := l.Add(name, z); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func decodeFeature(f *geojson.Feature) (zone.Zone, error) {
	if f.Geometry == nil {
		return nil, fmt.Errorf("%w: no geometry", ErrBadFeature)
	}
	switch {
	case f.Geometry.IsPoint():
		r, err := f.PropertyFloat64(propRadius)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFeature, err)
		}
		p, err := point(f.Geometry.Point)
		if err != nil {
			return nil, err
		}
		return zone.NewCircle(p, r), nil

	case f.Geometry.IsPolygon():
		if len(f.Geometry.Polygon) == 0 {
			return nil, fmt.Errorf("%w: empty polygon", ErrBadFeature)
		}
		corners, err := openRing(f.Geometry.Polygon[0])
		if err != nil {
			return nil, err
		}
		rotation := f.PropertyMustFloat64(propRotation, 0)
		return zone.NewPolygonWithRotation(rotation, corners...)

	case f.Geometry.IsCollection():
		desc, ok := f.Properties[propZone]
		if !ok {
			return nil, fmt.Errorf("%w: composite without %q property", ErrBadFeature, propZone)
		}
		return undescribe(desc)
	}
	return nil, fmt.Errorf("%w: unsupported geometry %s", ErrBadFeature, f.Geometry.Type)
}

// openRing drops the closing coordinate of a GeoJSON ring if present.
func openRing(coords [][]float64) ([]zone.Point, error) {
	pts := make([]zone.Point, 0, len(coords))
	for _, c := range coords {
		p, err := point(c)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	return pts, nil
}

func point(c []float64) (zone.Point, error) {
	if len(c) < 2 {
		return zone.Point{}, fmt.Errorf("%w: coordinate %v needs two values", ErrBadFeature, c)
	}
	return zone.Pt(c[0], c[1]), nil
}

// undescribe rebuilds a zone from a descriptor as produced by describe and
// read back through encoding/json.
func undescribe(v any) (zone.Zone, error) {
	desc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: descriptor is %T, want object", ErrBadFeature, v)
	}
	kind, _ := desc[propKind].(string)
	switch kind {
	case KindCircle:
		center, err := anyPoint(desc["center"])
		if err != nil {
			return nil, err
		}
		r, ok := desc[propRadius].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: circle radius missing", ErrBadFeature)
		}
		return zone.NewCircle(center, r), nil

	case KindPolygon:
		raw, ok := desc["corners"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: polygon corners missing", ErrBadFeature)
		}
		corners := make([]zone.Point, len(raw))
		for i, c := range raw {
			p, err := anyPoint(c)
			if err != nil {
				return nil, err
			}
			corners[i] = p
		}
		rotation, _ := desc[propRotation].(float64)
		return zone.NewPolygonWithRotation(rotation, corners...)

	case KindComposite:
		raw, ok := desc["members"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: composite members missing", ErrBadFeature)
		}
		members := make([]zone.Zone, len(raw))
		for i, m := range raw {
			z, err := undescribe(m)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			members[i] = z
		}
		return zone.NewComposite(members...)
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrBadFeature, kind)
}

func anyPoint(v any) (zone.Point, error) {
	raw, ok := v.([]any)
	if !ok || len(raw) < 2 {
		return zone.Point{}, fmt.Errorf("%w: bad coordinate %v", ErrBadFeature, v)
	}
	x, xok := raw[0].(float64)
	y, yok := raw[1].(float64)
	if !xok || !yok {
		return zone.Point{}, fmt.Errorf("%w: bad coordinate %v", ErrBadFeature, v)
	}
	return zone.Pt(x, y), nil
}
