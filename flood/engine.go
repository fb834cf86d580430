package flood

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"github.com/katalvlaran/floodsim/grid"
)

// walker is the run context: it owns the State and result for one run.
type walker struct {
	surface Surface
	bounds  grid.Bounds
	opts    Options
	state   *State
	res     *Result
}

// Run floods surface using strategy, applying any number of functional Options.
// Configuration problems (nil, typed-nil or empty surface, unknown strategy, bad options)
// are all reported together, wrapped in ErrConfig, before any propagation.
// A sink error aborts the run and is returned wrapped in ErrSink together
// with the partially populated Result. Out-of-bounds neighbors are never
// reported; they are simply not expanded.
func Run(surface Surface, strategy Strategy, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(surface, strategy, o); err != nil {
		return nil, err
	}

	rows, cols := surface.Dimensions()
	w := &walker{
		surface: surface,
		bounds:  grid.Bounds{Rows: rows, Cols: cols},
		opts:    o,
		state:   NewState(rows, cols),
	}
	w.res = &Result{Strategy: strategy, State: w.state}

	// the opening frame is emitted regardless of Visualize
	if err := w.frame(true); err != nil {
		return w.res, err
	}

	var err error
	switch strategy {
	case BreadthFirst:
		err = w.drain(newQueue(len(surface.WaterSources())))
	case DepthFirstStack:
		err = w.drain(newStack(len(surface.WaterSources())))
	case DepthFirstRecursive:
		err = w.recurse()
	}
	if err != nil {
		return w.res, err
	}

	// and so is the closing one
	if err := w.frame(true); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// validate collects every configuration problem into a single ErrConfig.
func validate(surface Surface, strategy Strategy, o Options) error {
	var err error
	if o.err != nil {
		err = multierr.Append(err, o.err)
	}
	if isNil(surface) {
		err = multierr.Append(err, ErrSurfaceNil)
	} else if rows, cols := surface.Dimensions(); rows <= 0 || cols <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %dx%d", ErrEmptySurface, rows, cols))
	}
	if !strategy.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w %q", ErrUnknownStrategy, strategy))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// isNil reports whether s is nil or a nil pointer wrapped in the interface.
func isNil(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// floodable reports whether p is in bounds and at or below the threshold.
// Bounds are checked first; a surface that still answers with an
// out-of-bounds error is treated as "no such cell".
func (w *walker) floodable(p grid.Point) bool {
	if !w.bounds.Contains(p) {
		return false
	}
	above, err := w.surface.AboveThreshold(p)
	if err != nil {
		return false
	}
	return !above
}

// mark floods p, records it and emits a fine-grained frame when enabled.
func (w *walker) mark(p grid.Point) error {
	if !w.state.MarkFlooded(p) {
		return nil
	}
	seq := len(w.res.Order)
	w.res.Order = append(w.res.Order, p)
	w.opts.OnMark(p, seq)

	if !w.opts.Visualize {
		return nil
	}
	if err := w.frame(false); err != nil {
		return err
	}
	if w.opts.Delay > 0 {
		w.opts.Sleep(w.opts.Delay)
	}
	return nil
}

// frame hands the current state to the sink; edge frames open and close
// the run and go to EdgeSink when one is set.
func (w *walker) frame(edge bool) error {
	w.res.Frames++
	sink := w.opts.Sink
	if edge && w.opts.EdgeSink != nil {
		sink = w.opts.EdgeSink
	}
	if err := sink.Render(w.state.View(), w.surface); err != nil {
		return fmt.Errorf("%w: frame %d: %w", ErrSink, w.res.Frames, err)
	}
	return nil
}

// seeds returns the surface's sources that lie on the grid.
func (w *walker) seeds() []grid.Point {
	src := w.surface.WaterSources()
	out := src[:0:0]
	for _, p := range src {
		if w.bounds.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}
