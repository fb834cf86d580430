package world

import (
	"errors"

	"github.com/katalvlaran/floodsim/grid"
)

// Sentinel errors for map construction and parsing.
var (
	// ErrEmptyGrid indicates the elevation grid has no rows or no columns.
	ErrEmptyGrid = errors.New("world: elevation grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("world: all rows must have the same length")
	// ErrSourceOutOfBounds indicates a water source outside the grid.
	ErrSourceOutOfBounds = errors.New("world: water source out of bounds")
	// ErrSyntax indicates malformed map text.
	ErrSyntax = errors.New("world: malformed map")
)

// Map is an immutable elevation grid with a flood threshold and water sources.
// Elevations[r][c] holds the height of cell (r,c); it is deep-copied on
// construction and never exposed for mutation.
type Map struct {
	bounds     grid.Bounds
	elevations [][]float64
	threshold  float64
	sources    []grid.Point
	min, max   float64
}

// Stats summarises a Map's elevations.
type Stats struct {
	Cells     int     // total number of cells
	Floodable int     // cells at or below the threshold
	Sources   int     // number of water sources
	Min       float64 // lowest elevation
	Max       float64 // highest elevation
	Mean      float64 // arithmetic mean elevation
	Threshold float64 // flood threshold
}
