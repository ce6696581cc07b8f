// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/golang/geo/r2"

	"github.com/chazu/fieldzone/pkg/kernel"
	"github.com/chazu/fieldzone/pkg/zone"
)

// Name is the configuration name of this kernel.
const Name = "sdfx"

// Compile-time interface checks.
var (
	_ kernel.Kernel = (*SdfxKernel)(nil)
	_ kernel.Field  = (*sdfxField)(nil)
)

// sdfxField wraps an sdf.SDF2 to implement kernel.Field.
type sdfxField struct {
	s sdf.SDF2
}

func (f *sdfxField) Evaluate(p zone.Point) float64 {
	return f.s.Evaluate(v2.Vec{X: p.X, Y: p.Y})
}

func (f *sdfxField) Bounds() r2.Rect {
	bb := f.s.BoundingBox()
	return r2.RectFromPoints(
		r2.Point{X: bb.Min.X, Y: bb.Min.Y},
		r2.Point{X: bb.Max.X, Y: bb.Max.Y},
	)
}

// SdfxKernel compiles zones into sdfx 2D signed distance functions. The
// compiled field is a snapshot: later moves of the zone do not affect it.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// Name implements kernel.Kernel.
func (k *SdfxKernel) Name() string { return Name }

// Compile implements kernel.Kernel.
func (k *SdfxKernel) Compile(z zone.Zone) (kernel.Field, error) {
	if z == nil {
		return nil, kernel.ErrNilZone
	}
	s, err := k.build(z)
	if err != nil {
		return nil, err
	}
	return &sdfxField{s: s}, nil
}

func (k *SdfxKernel) build(z zone.Zone) (sdf.SDF2, error) {
	switch z := z.(type) {
	case *zone.Circle:
		// sdf.Circle2D is centered on the origin.
		s, err := sdf.Circle2D(z.Radius())
		if err != nil {
			return nil, fmt.Errorf("sdfx: circle: %w", err)
		}
		c := z.Position()
		return sdf.Transform2D(s, sdf.Translate2d(v2.Vec{X: c.X, Y: c.Y})), nil

	case *zone.Polygon:
		corners := z.Corners()
		vs := make([]v2.Vec, len(corners))
		for i, c := range corners {
			vs[i] = v2.Vec{X: c.X, Y: c.Y}
		}
		s, err := sdf.Polygon2D(vs)
		if err != nil {
			return nil, fmt.Errorf("sdfx: polygon: %w", err)
		}
		return s, nil

	case *zone.Composite:
		members := z.Members()
		parts := make([]sdf.SDF2, len(members))
		for i, m := range members {
			s, err := k.build(m)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			parts[i] = s
		}
		return sdf.Union2D(parts...), nil
	}
	return nil, fmt.Errorf("sdfx: unsupported zone type %T", z)
}
