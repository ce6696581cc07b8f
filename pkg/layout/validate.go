package layout

import (
	"fmt"
	"math"

	"github.com/chazu/fieldzone/pkg/zone"
)

// ValidationSeverity indicates whether a validation finding makes a layout
// unusable or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // layout unusable
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Zone     string             // name of the top-level zone
	Path     string             // member path inside a composite, e.g. "1/0"
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] zone %q: %s", e.Severity, e.Zone, e.Message)
	}
	return fmt.Sprintf("[%s] zone %q member %s: %s", e.Severity, e.Zone, e.Path, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning = ValidationError

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the result holds no errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// ValidateAll checks every named zone and its members. It never mutates the
// layout.
func ValidateAll(l *Layout) ValidationResult {
	var result ValidationResult
	for _, name := range l.order {
		v := &visitor{zone: name}
		v.walk(l.zones[name], "")
		result.Errors = append(result.Errors, v.errs...)
		result.Warnings = append(result.Warnings, v.warnings...)
	}
	return result
}

type visitor struct {
	zone     string
	errs     []ValidationError
	warnings []ValidationWarning
}

func (v *visitor) fail(path, format string, args ...any) {
	v.errs = append(v.errs, ValidationError{
		Zone:     v.zone,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	})
}

func (v *visitor) warn(path, format string, args ...any) {
	v.warnings = append(v.warnings, ValidationWarning{
		Zone:     v.zone,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
	})
}

func (v *visitor) walk(z zone.Zone, path string) {
	switch z := z.(type) {
	case *zone.Circle:
		if !z.Position().IsFinite() {
			v.fail(path, "circle center %s is not finite", z.Position())
		}
		if r := z.Radius(); math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			v.fail(path, "circle radius is %.4f, must be positive", r)
		}
	case *zone.Polygon:
		for i, c := range z.Corners() {
			if !c.IsFinite() {
				v.fail(path, "corner %d %s is not finite", i, c)
				return
			}
		}
		if z.Area() <= zone.Epsilon {
			v.warn(path, "polygon has zero area")
		} else if !z.IsSimple() {
			v.warn(path, "polygon edges cross; containment follows the even-odd rule")
		}
	case *zone.Composite:
		for i, m := range z.Members() {
			child := fmt.Sprintf("%d", i)
			if path != "" {
				child = path + "/" + child
			}
			v.walk(m, child)
		}
	}
}
