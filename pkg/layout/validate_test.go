package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/fieldzone/pkg/zone"
)

func hasFinding(findings []ValidationError, zoneName, substr string) bool {
	for _, f := range findings {
		if f.Zone == zoneName && strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateAllClean(t *testing.T) {
	result := ValidateAll(field())
	if !result.OK() || len(result.Warnings) != 0 {
		t.Errorf("valid field reported errors %v, warnings %v", result.Errors, result.Warnings)
	}
}

func TestValidateAllErrors(t *testing.T) {
	l := New()
	mustAdd(l, "flat", zone.NewCircle(zone.Pt(0, 0), 0))
	mustAdd(l, "inverted", zone.NewCircle(zone.Pt(0, 0), -1))
	mustAdd(l, "lost", zone.NewCircle(zone.Pt(math.NaN(), 0), 1))
	mustAdd(l, "far", zone.MustPolygon(zone.Pt(0, 0), zone.Pt(math.Inf(1), 0), zone.Pt(0, 1)))

	result := ValidateAll(l)
	if result.OK() {
		t.Fatal("expected errors")
	}
	for _, tc := range []struct{ zone, substr string }{
		{"flat", "must be positive"},
		{"inverted", "must be positive"},
		{"lost", "not finite"},
		{"far", "not finite"},
	} {
		if !hasFinding(result.Errors, tc.zone, tc.substr) {
			t.Errorf("missing error %q for zone %q in %v", tc.substr, tc.zone, result.Errors)
		}
	}
	for _, e := range result.Errors {
		if e.Severity != SeverityError {
			t.Errorf("error finding has severity %s", e.Severity)
		}
	}
}

func TestValidateAllWarnings(t *testing.T) {
	l := New()
	mustAdd(l, "bowtie", zone.MustPolygon(zone.Pt(0, 0), zone.Pt(4, 2), zone.Pt(4, 0), zone.Pt(0, 1)))
	mustAdd(l, "sliver", zone.MustPolygon(zone.Pt(0, 0), zone.Pt(1, 0), zone.Pt(2, 0)))

	result := ValidateAll(l)
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if !hasFinding(result.Warnings, "bowtie", "edges cross") {
		t.Errorf("missing crossing-edges warning in %v", result.Warnings)
	}
	if !hasFinding(result.Warnings, "sliver", "zero area") {
		t.Errorf("missing zero-area warning in %v", result.Warnings)
	}
	if hasFinding(result.Warnings, "sliver", "edges cross") {
		t.Error("zero-area polygon should only get the zero-area warning")
	}
}

func TestValidateNestedMemberPath(t *testing.T) {
	inner := zone.MustComposite(zone.NewUnitCircle(), zone.NewCircle(zone.Pt(5, 5), 0))
	l := New()
	mustAdd(l, "group", zone.MustComposite(zone.NewRectangle(zone.Pt(0, 0), 1, 1), inner))

	result := ValidateAll(l)
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(result.Errors), result.Errors)
	}
	e := result.Errors[0]
	if e.Path != "1/1" {
		t.Errorf("Path = %q, want %q", e.Path, "1/1")
	}
	if want := `[error] zone "group" member 1/1: circle radius is 0.0000, must be positive`; e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" {
		t.Error("unexpected severity names")
	}
	if got := ValidationSeverity(7).String(); got != "ValidationSeverity(7)" {
		t.Errorf("String() = %q", got)
	}
}
