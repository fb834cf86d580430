package flood

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/floodsim/grid"
)

// State is a dense rows×cols matrix of "is this cell flooded" flags.
// Cells start dry and only ever transition dry→flooded.
// A State is owned by a single run and is not safe for concurrent mutation.
type State struct {
	bounds grid.Bounds
	cells  []bool // row-major
	count  int
}

// NewState returns an all-dry State of the given dimensions.
// Non-positive dimensions produce an empty State.
func NewState(rows, cols int) *State {
	b := grid.Bounds{Rows: rows, Cols: cols}
	return &State{bounds: b, cells: make([]bool, b.Len())}
}

// Dimensions returns the row and column counts.
func (s *State) Dimensions() (rows, cols int) {
	return s.bounds.Rows, s.bounds.Cols
}

// IsFlooded reports whether p has been marked. Points off the grid are never flooded.
// Complexity: O(1).
func (s *State) IsFlooded(p grid.Point) bool {
	if !s.bounds.Contains(p) {
		return false
	}
	return s.cells[s.bounds.Index(p)]
}

// MarkFlooded sets p to flooded and reports whether this call changed it.
// Marking an already-flooded cell, or a point off the grid, is a no-op.
// Complexity: O(1).
func (s *State) MarkFlooded(p grid.Point) bool {
	if !s.bounds.Contains(p) {
		return false
	}
	i := s.bounds.Index(p)
	if s.cells[i] {
		return false
	}
	s.cells[i] = true
	s.count++

	return true
}

// Count returns the number of flooded cells.
func (s *State) Count() int {
	return s.count
}

// Points returns every flooded cell in row-major order.
// Complexity: O(R×C).
func (s *State) Points() []grid.Point {
	out := make([]grid.Point, 0, s.count)
	for i, wet := range s.cells {
		if wet {
			out = append(out, s.bounds.Point(i))
		}
	}
	return out
}

// Set returns the flooded cells as a set.
func (s *State) Set() mapset.Set[grid.Point] {
	set := mapset.New[grid.Point]()
	for i, wet := range s.cells {
		if wet {
			set.Put(s.bounds.Point(i))
		}
	}
	return set
}

// Equal reports whether s and other have the same dimensions and flooded cells.
func (s *State) Equal(other *State) bool {
	if other == nil || s.bounds != other.bounds || s.count != other.count {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	out := &State{bounds: s.bounds, cells: make([]bool, len(s.cells)), count: s.count}
	copy(out.cells, s.cells)
	return out
}

// View returns a read-only view of s.
func (s *State) View() View {
	return View{s: s}
}

// View is a read-only window onto a State, handed to sinks so they can
// render a frame without being able to mutate it.
type View struct {
	s *State
}

// Dimensions returns the row and column counts.
func (v View) Dimensions() (rows, cols int) { return v.s.Dimensions() }

// IsFlooded reports whether p has been marked.
func (v View) IsFlooded(p grid.Point) bool { return v.s.IsFlooded(p) }

// Count returns the number of flooded cells.
func (v View) Count() int { return v.s.Count() }

// Snapshot returns an independent copy of the viewed state.
func (v View) Snapshot() *State { return v.s.Clone() }
