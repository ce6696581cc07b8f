// Package raster samples compiled zone fields onto character grids. One
// grid is produced per named zone.
package raster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/chazu/fieldzone/pkg/kernel"
	"github.com/chazu/fieldzone/pkg/layout"
	"github.com/chazu/fieldzone/pkg/zone"
)

// Cell glyphs used by Grid.String.
const (
	Inside  = '#'
	Outside = '.'
)

// ErrEmptyGrid is returned for grids with no columns or rows.
var ErrEmptyGrid = errors.New("raster: grid needs at least one column and one row")

// Grid is a rows x cols sampling of a field. Row 0 is the top of the
// sampled rectangle (largest Y).
type Grid struct {
	Name   string
	Cols   int
	Rows   int
	Bounds r2.Rect
	cells  []bool
}

// At reports whether the cell at (col, row) is inside the field.
func (g *Grid) At(col, row int) bool {
	return g.cells[row*g.Cols+col]
}

// Filled returns the number of inside cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no cell is inside.
func (g *Grid) IsEmpty() bool {
	return g.Filled() == 0
}

// String renders the grid one row per line, top row first.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Cols + 1) * g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(col, row) {
				b.WriteByte(Inside)
			} else {
				b.WriteByte(Outside)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rasterize samples f over its own bounds.
func Rasterize(f kernel.Field, cols, rows int) (*Grid, error) {
	return RasterizeIn(f, f.Bounds(), cols, rows)
}

// RasterizeIn samples f at the center of each cell of a cols x rows grid
// laid over rect. A cell is inside when the field is <= 0 there.
func RasterizeIn(f kernel.Field, rect r2.Rect, cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Cols:   cols,
		Rows:   rows,
		Bounds: rect,
		cells:  make([]bool, cols*rows),
	}
	if rect.IsEmpty() {
		return g, nil
	}

	size := rect.Size()
	cw, ch := size.X/float64(cols), size.Y/float64(rows)
	lo, hi := rect.Lo(), rect.Hi()
	for row := 0; row < rows; row++ {
		y := hi.Y - (float64(row)+0.5)*ch
		for col := 0; col < cols; col++ {
			x := lo.X + (float64(col)+0.5)*cw
			g.cells[row*cols+col] = f.Evaluate(zone.Pt(x, y)) <= 0
		}
	}
	return g, nil
}

// RasterizeLayout compiles every named zone with k and samples each over
// its own bounds grown by margin on every side. Grids come back in
// registration order. The layout is read-only here.
func RasterizeLayout(l *layout.Layout, k kernel.Kernel, cols, rows int, margin float64) ([]*Grid, error) {
	if l == nil {
		return nil, nil
	}

	var grids []*Grid
	for _, name := range l.Names() {
		f, err := k.Compile(l.Lookup(name))
		if err != nil {
			return nil, fmt.Errorf("raster: compile %q: %w", name, err)
		}
		g, err := RasterizeIn(f, f.Bounds().ExpandedByMargin(margin), cols, rows)
		if err != nil {
			return nil, fmt.Errorf("raster: %q: %w", name, err)
		}
		g.Name = name
		grids = append(grids, g)
	}
	return grids, nil
}
