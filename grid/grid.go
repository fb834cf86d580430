// Package grid defines the coordinate value types shared by the world map,
// the flood state and the propagation engine.
//
// A Point is a pure (row, column) value. Neighbor derivation never checks
// bounds; callers validate candidates against a Bounds before acting on them.
package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds indicates a point lies outside the grid dimensions.
// Surfaces wrap it when asked about a cell that does not exist.
var ErrOutOfBounds = errors.New("grid: point out of bounds")

// Point is an immutable (Row, Col) coordinate on a rectangular grid.
type Point struct {
	Row, Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Up returns the point one row above p.
func (p Point) Up() Point { return Point{p.Row - 1, p.Col} }

// Down returns the point one row below p.
func (p Point) Down() Point { return Point{p.Row + 1, p.Col} }

// Left returns the point one column left of p.
func (p Point) Left() Point { return Point{p.Row, p.Col - 1} }

// Right returns the point one column right of p.
func (p Point) Right() Point { return Point{p.Row, p.Col + 1} }

// Neighbors returns the four orthogonal neighbors in the fixed
// order up, down, left, right. None of them are bounds-checked.
func (p Point) Neighbors() [4]Point {
	return [4]Point{p.Up(), p.Down(), p.Left(), p.Right()}
}

// String renders p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Bounds describes a Rows×Cols grid anchored at (0,0).
type Bounds struct {
	Rows, Cols int
}

// Contains reports whether p lies within b.
// Complexity: O(1).
func (b Bounds) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// Empty reports whether b has no cells.
func (b Bounds) Empty() bool {
	return b.Rows <= 0 || b.Cols <= 0
}

// Len returns the number of cells in b.
func (b Bounds) Len() int {
	if b.Empty() {
		return 0
	}
	return b.Rows * b.Cols
}

// Index maps p to its row-major offset: Row*Cols + Col.
// The result is meaningless for points outside b.
func (b Bounds) Index(p Point) int {
	return p.Row*b.Cols + p.Col
}

// Point converts a row-major offset back to a Point.
func (b Bounds) Point(idx int) Point {
	return Point{idx / b.Cols, idx % b.Cols}
}

// Check returns nil if p lies within b, otherwise an error wrapping ErrOutOfBounds.
func (b Bounds) Check(p Point) error {
	if b.Contains(p) {
		return nil
	}
	return fmt.Errorf("%w: %v not within %dx%d", ErrOutOfBounds, p, b.Rows, b.Cols)
}
