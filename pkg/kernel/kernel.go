// Package kernel defines the abstract field kernel interface. A kernel
// compiles a zone into a signed distance field that renderers sample.
// Implementations (native, sdfx) sit behind this interface so that the
// backend can be swapped without changing the rest of the system.
package kernel

import (
	"errors"

	"github.com/golang/geo/r2"

	"github.com/chazu/fieldzone/pkg/zone"
)

// Field is a compiled signed distance field.
type Field interface {
	// Evaluate returns the signed distance from p to the boundary,
	// negative inside. Kernels agree on the sign everywhere and on the
	// magnitude outside; depth inside a union may differ.
	Evaluate(p zone.Point) float64

	// Bounds returns the axis-aligned bounding rectangle of the inside.
	Bounds() r2.Rect
}

// Kernel compiles zones into fields.
type Kernel interface {
	// Name identifies the kernel, e.g. for configuration.
	Name() string

	// Compile turns z into a field. Whether the field follows later
	// changes to z is up to the kernel; callers recompile after moving or
	// rotating a zone.
	Compile(z zone.Zone) (Field, error)
}

// ErrNilZone is returned when compiling a nil zone.
var ErrNilZone = errors.New("kernel: compile nil zone")

// Compile-time interface checks.
var (
	_ Kernel = Native{}
	_ Field  = (*nativeField)(nil)
)

// NativeName is the configuration name of the native kernel.
const NativeName = "native"

// Native evaluates fields with the zone package's own distance queries.
type Native struct{}

// Name implements Kernel.
func (Native) Name() string { return NativeName }

// Compile implements Kernel. The field reads z live.
func (Native) Compile(z zone.Zone) (Field, error) {
	if z == nil {
		return nil, ErrNilZone
	}
	return &nativeField{z: z}, nil
}

type nativeField struct {
	z zone.Zone
}

func (f *nativeField) Evaluate(p zone.Point) float64 {
	return f.z.BoundaryDistance(p)
}

func (f *nativeField) Bounds() r2.Rect {
	return f.z.Bounds()
}
