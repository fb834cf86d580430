package flood

import "github.com/katalvlaran/floodsim/grid"

// recurse floods from each source using the native call stack.
//
// A floodable source is visited directly. A source above the threshold is
// still a seed: its floodable neighbors are visited, exactly as the queue
// and stack strategies expand it.
//
// Recursion depth is bounded by the size of the largest region reachable
// from one seed. Go's goroutine stacks grow on demand, so this is safe on
// practical maps, but the iterative strategies have no depth bound at all.
func (w *walker) recurse() error {
	for _, s := range w.seeds() {
		if w.floodable(s) {
			if err := w.visit(s); err != nil {
				return err
			}
			continue
		}
		for _, n := range s.Neighbors() {
			if err := w.visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// visit returns immediately for points off the grid, above the threshold
// or already flooded; otherwise it marks p and visits up, down, left, right.
// Marking before descending bounds the total work to one mark per cell.
func (w *walker) visit(p grid.Point) error {
	if !w.bounds.Contains(p) {
		return nil
	}
	w.opts.OnSchedule(p)
	if !w.floodable(p) || w.state.IsFlooded(p) {
		return nil
	}
	if err := w.mark(p); err != nil {
		return err
	}
	for _, n := range p.Neighbors() {
		if err := w.visit(n); err != nil {
			return err
		}
	}
	return nil
}
