// Package world provides the elevation map that floods are simulated on.
//
// What:
//
//   - Map wraps a rectangular [][]float64 elevation grid with a static
//     flood threshold and a fixed list of water sources.
//   - Cells with elevation > threshold are "above threshold" and never flood.
//   - Parse and Load read the plain-text map format from any io.Reader
//     or go-billy filesystem.
//   - Stats summarises the elevation distribution.
//
// Why:
//
//   - Map satisfies flood.Surface, so the propagation engine stays
//     indifferent to where elevation data comes from.
//
// Map format (whitespace separated, '#' starts a comment line):
//
//	<rows> <cols>
//	<threshold>
//	<number of sources>
//	<row> <col>          one line per source
//	<elevation> ...      rows lines of cols values
//
// Complexity:
//
//   - NewMap, Parse: O(R×C) time and memory.
//   - Elevation, AboveThreshold, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSourceOutOfBounds: a water source lies outside the grid.
//   - ErrSyntax: the map text is malformed (wraps line context).
//   - grid.ErrOutOfBounds: a query point lies outside the grid.
package world
