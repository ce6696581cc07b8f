// Package layout holds the named zones that make up a playing field and
// moves them in and out of GeoJSON.
package layout
