package layout

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/chazu/fieldzone/pkg/zone"
)

func TestEncodeShape(t *testing.T) {
	data, err := Encode(field())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Type != "FeatureCollection" {
		t.Errorf("type = %q, want FeatureCollection", doc.Type)
	}

	want := []struct{ id, geometry, kind string }{
		{"goal", "Point", KindCircle},
		{"bay", "Polygon", KindPolygon},
		{"start", "GeometryCollection", KindComposite},
	}
	if len(doc.Features) != len(want) {
		t.Fatalf("got %d features, want %d", len(doc.Features), len(want))
	}
	for i, w := range want {
		f := doc.Features[i]
		if f.ID != w.id || f.Properties["name"] != w.id {
			t.Errorf("feature %d: id %q name %v, want %q", i, f.ID, f.Properties["name"], w.id)
		}
		if f.Geometry.Type != w.geometry {
			t.Errorf("feature %d: geometry %q, want %q", i, f.Geometry.Type, w.geometry)
		}
		if f.Properties["kind"] != w.kind {
			t.Errorf("feature %d: kind %v, want %q", i, f.Properties["kind"], w.kind)
		}
	}

	var ring [][][]float64
	if err := json.Unmarshal(doc.Features[1].Geometry.Coordinates, &ring); err != nil {
		t.Fatalf("polygon coordinates: %v", err)
	}
	if len(ring) != 1 || len(ring[0]) != 5 {
		t.Fatalf("want one closed ring of 5 positions, got %v", ring)
	}
	if diff := cmp.Diff(ring[0][0], ring[0][4]); diff != "" {
		t.Errorf("ring not closed (-first +last):\n%s", diff)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := field()
	data, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if diff := cmp.Diff(src.Names(), got.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	goal := got.MustLookup("goal").(*zone.Circle)
	if goal.Radius() != 1.5 || goal.Position() != zone.Pt(0, 0) {
		t.Errorf("goal = %v r=%f", goal.Position(), goal.Radius())
	}

	bay := got.MustLookup("bay").(*zone.Polygon)
	srcBay := src.MustLookup("bay").(*zone.Polygon)
	if diff := cmp.Diff(srcBay.Corners(), bay.Corners(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("bay corners mismatch (-want +got):\n%s", diff)
	}
	if bay.Rotation() != 0.25 {
		t.Errorf("bay rotation = %f, want 0.25", bay.Rotation())
	}

	start := got.MustLookup("start").(*zone.Composite)
	if n := len(start.Members()); n != 2 {
		t.Fatalf("start has %d members, want 2", n)
	}
	for _, p := range []zone.Point{zone.Pt(-6, -6), zone.Pt(6.9, -5.1), zone.Pt(0, -6)} {
		if start.Contains(p) != src.MustLookup("start").Contains(p) {
			t.Errorf("start containment differs at %v", p)
		}
	}
}

func TestRoundTripNestedComposite(t *testing.T) {
	l := New()
	mustAdd(l, "nested", zone.MustComposite(
		zone.NewCircle(zone.Pt(1, 2), 3),
		zone.MustComposite(
			zone.MustPolygon(zone.Pt(0, 0), zone.Pt(1, 0), zone.Pt(0, 1)),
			zone.NewCircle(zone.Pt(-4, 4), 0.5),
		),
	))

	data, err := Encode(l)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	outer := got.MustLookup("nested").(*zone.Composite)
	inner, ok := outer.Members()[1].(*zone.Composite)
	if !ok {
		t.Fatalf("member 1 = %T, want *zone.Composite", outer.Members()[1])
	}
	c := inner.Members()[1].(*zone.Circle)
	if c.Position() != zone.Pt(-4, 4) || c.Radius() != 0.5 {
		t.Errorf("nested circle = %v r=%f", c.Position(), c.Radius())
	}
	if !outer.Contains(zone.Pt(0.2, 0.2)) {
		t.Error("nested triangle lost")
	}
}

func TestEncodeRejectsNonFinite(t *testing.T) {
	l := New()
	mustAdd(l, "lost", zone.NewCircle(zone.Pt(math.NaN(), 0), 1))
	if _, err := Encode(l); err == nil {
		t.Error("Encode should fail for NaN coordinates")
	}
}

func TestDecodeUnnamedFeature(t *testing.T) {
	data := []byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"radius":4}},
		{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2]]]},"properties":null}
	]}`)
	l, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"zone-0", "zone-1"}, l.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	// An open ring keeps all four corners.
	if n := l.MustLookup("zone-1").(*zone.Polygon).Len(); n != 4 {
		t.Errorf("polygon has %d corners, want 4", n)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "circle without radius",
			data: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"name":"a"}}]}`,
			want: ErrBadFeature,
		},
		{
			name: "polygon with two corners",
			data: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,1],[0,0]]]},"properties":{"name":"a"}}]}`,
			want: zone.ErrTooFewPoints,
		},
		{
			name: "composite without descriptor",
			data: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"GeometryCollection","geometries":[]},"properties":{"name":"a"}}]}`,
			want: ErrBadFeature,
		},
		{
			name: "unsupported geometry",
			data: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{"name":"a"}}]}`,
			want: ErrBadFeature,
		},
		{
			name: "duplicate names",
			data: `{"type":"FeatureCollection","features":[
				{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"name":"a","radius":1}},
				{"type":"Feature","geometry":{"type":"Point","coordinates":[5,0]},"properties":{"name":"a","radius":1}}]}`,
			want: ErrDuplicateName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Decode: err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("Decode of garbage should fail")
	}
}
