package world

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/floodsim/grid"
)

// NewMap constructs a Map from a non-empty, rectangular elevation grid.
// It deep-copies elevations and sources to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or columns, ErrNonRectangular
// if any row length differs, and ErrSourceOutOfBounds (one per offending
// source, combined) if a source lies outside the grid.
// Complexity: O(R×C) time and memory.
func NewMap(elevations [][]float64, threshold float64, sources []grid.Point) (*Map, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(elevations), len(elevations[0])
	for r, row := range elevations {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	b := grid.Bounds{Rows: rows, Cols: cols}

	var err error
	for _, s := range sources {
		if !b.Contains(s) {
			err = multierr.Append(err, fmt.Errorf("%w: %v not within %dx%d", ErrSourceOutOfBounds, s, rows, cols))
		}
	}
	if err != nil {
		return nil, err
	}

	m := &Map{
		bounds:     b,
		elevations: make([][]float64, rows),
		threshold:  threshold,
		sources:    append([]grid.Point(nil), sources...),
		min:        elevations[0][0],
		max:        elevations[0][0],
	}
	for r := 0; r < rows; r++ {
		m.elevations[r] = make([]float64, cols)
		copy(m.elevations[r], elevations[r])
		for _, v := range m.elevations[r] {
			if v < m.min {
				m.min = v
			}
			if v > m.max {
				m.max = v
			}
		}
	}

	return m, nil
}

// Bounds returns the grid dimensions as a grid.Bounds.
func (m *Map) Bounds() grid.Bounds {
	return m.bounds
}

// Dimensions returns the row and column counts.
func (m *Map) Dimensions() (rows, cols int) {
	return m.bounds.Rows, m.bounds.Cols
}

// InBounds reports whether p lies within the map.
// Complexity: O(1).
func (m *Map) InBounds(p grid.Point) bool {
	return m.bounds.Contains(p)
}

// Elevation returns the height of cell p, or an error wrapping
// grid.ErrOutOfBounds if p is not on the map.
func (m *Map) Elevation(p grid.Point) (float64, error) {
	if err := m.bounds.Check(p); err != nil {
		return 0, err
	}
	return m.elevations[p.Row][p.Col], nil
}

// AboveThreshold reports whether cell p is strictly higher than the flood
// threshold. It fails like Elevation for points off the map.
func (m *Map) AboveThreshold(p grid.Point) (bool, error) {
	h, err := m.Elevation(p)
	if err != nil {
		return false, err
	}
	return h > m.threshold, nil
}

// Threshold returns the flood threshold.
func (m *Map) Threshold() float64 {
	return m.threshold
}

// WaterSources returns a copy of the water-source list. It may be empty.
func (m *Map) WaterSources() []grid.Point {
	return append([]grid.Point(nil), m.sources...)
}

// MinElevation returns the lowest elevation on the map.
func (m *Map) MinElevation() float64 {
	return m.min
}

// MaxElevation returns the highest elevation on the map.
func (m *Map) MaxElevation() float64 {
	return m.max
}

// Stats computes summary statistics over every cell.
// Complexity: O(R×C).
func (m *Map) Stats() Stats {
	s := Stats{
		Cells:     m.bounds.Len(),
		Sources:   len(m.sources),
		Min:       m.min,
		Max:       m.max,
		Threshold: m.threshold,
	}
	var sum float64
	for _, row := range m.elevations {
		for _, v := range row {
			sum += v
			if v <= m.threshold {
				s.Floodable++
			}
		}
	}
	s.Mean = sum / float64(s.Cells)

	return s
}
