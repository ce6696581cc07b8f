// Package commands defines the zonectl CLI.
//
// Commands
//
//   - list       Print every named zone with its kind, position and bounds
//   - contains   Print the zones that contain a point
//   - distance   Print each zone's distance to a point
//   - render     Draw a zone as a character grid
//   - export     Write the layout as GeoJSON
//   - validate   Report layout errors and warnings
//
// Every command reads a layout from --file: a zone DSL program, or a
// GeoJSON FeatureCollection when the name ends in .geojson or .json.
//
// # Configuration
//
// ZONECTL_KERNEL picks the field kernel used by render (native or sdfx).
// ZONECTL_COLS and ZONECTL_ROWS set the default render size and
// ZONECTL_MARGIN the space drawn around a zone. Flags override
// the environment.
package commands
