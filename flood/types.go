package flood

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/floodsim/grid"
)

// Sentinel errors for flood runs.
var (
	// ErrConfig wraps every configuration problem reported before a run starts.
	ErrConfig = errors.New("flood: invalid run configuration")

	// ErrSurfaceNil is returned when a nil Surface is passed to Run.
	ErrSurfaceNil = errors.New("flood: surface is nil")

	// ErrEmptySurface is returned when the Surface has no rows or columns.
	ErrEmptySurface = errors.New("flood: surface has no cells")

	// ErrUnknownStrategy is returned for an unrecognised strategy identifier.
	ErrUnknownStrategy = errors.New("flood: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")

	// ErrSink wraps an error returned by a Sink while rendering a frame.
	ErrSink = errors.New("flood: sink failed")
)

// Strategy selects the traversal order used to propagate water.
type Strategy string

// The three interchangeable strategies. All produce the same final State.
const (
	BreadthFirst        Strategy = "breadth-first"
	DepthFirstStack     Strategy = "depth-first-stack"
	DepthFirstRecursive Strategy = "depth-first-recursive"
)

// Strategies lists every supported strategy in a stable order.
var Strategies = []Strategy{BreadthFirst, DepthFirstStack, DepthFirstRecursive}

var strategyAliases = map[string]Strategy{
	"breadth-first":         BreadthFirst,
	"bfs":                   BreadthFirst,
	"queue":                 BreadthFirst,
	"depth-first-stack":     DepthFirstStack,
	"stack":                 DepthFirstStack,
	"depth-first-recursive": DepthFirstRecursive,
	"recursive":             DepthFirstRecursive,
}

// ParseStrategy maps an identifier (case-insensitive) to a Strategy.
// It accepts the canonical names as well as "queue", "bfs", "stack" and "recursive".
func ParseStrategy(s string) (Strategy, error) {
	if st, ok := strategyAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w %q (want one of %s, %s, %s)", ErrUnknownStrategy, s,
		BreadthFirst, DepthFirstStack, DepthFirstRecursive)
}

// Valid reports whether st is one of the supported strategies.
func (st Strategy) Valid() bool {
	switch st {
	case BreadthFirst, DepthFirstStack, DepthFirstRecursive:
		return true
	}
	return false
}

// Surface is the read-only world the engine floods.
// Elevation and AboveThreshold must fail with an error wrapping
// grid.ErrOutOfBounds for points outside Dimensions.
type Surface interface {
	Elevation(p grid.Point) (float64, error)
	AboveThreshold(p grid.Point) (bool, error)
	Dimensions() (rows, cols int)
	WaterSources() []grid.Point
	MinElevation() float64
	MaxElevation() float64
}

// Sink renders a frame of a run. It must not retain v beyond the call
// if it needs a stable copy; use v.Snapshot for that.
type Sink interface {
	Render(v View, s Surface) error
}

// SinkFunc adapts an ordinary function to a Sink.
type SinkFunc func(v View, s Surface) error

// Render calls f(v, s).
func (f SinkFunc) Render(v View, s Surface) error { return f(v, s) }

// nopSink discards every frame.
type nopSink struct{}

func (nopSink) Render(View, Surface) error { return nil }

// Option configures a run via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the parameters and hooks of a single run.
type Options struct {
	// Visualize, when true, emits a frame after every newly flooded cell.
	// The before and after frames are emitted regardless.
	Visualize bool

	// Sink receives every frame. Defaults to a no-op sink.
	Sink Sink

	// EdgeSink, when set, receives the opening and closing frames instead
	// of Sink, which then only sees the per-mark frames.
	EdgeSink Sink

	// Delay is the pause after each fine-grained frame.
	Delay time.Duration

	// Sleep performs the pause; defaults to time.Sleep.
	Sleep func(time.Duration)

	// OnMark is called after a cell transitions to flooded, with its
	// 0-based position in the flooding order.
	OnMark func(p grid.Point, seq int)

	// OnSchedule is called whenever a point is pushed onto the frontier
	// (queue or stack) or a recursive visit enters an on-grid point.
	OnSchedule func(p grid.Point)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - fine-grained visualization off
//   - a no-op sink and no delay
//   - time.Sleep as the pacing function
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Visualize:  false,
		Sink:       nopSink{},
		Delay:      0,
		Sleep:      time.Sleep,
		OnMark:     func(grid.Point, int) {},
		OnSchedule: func(grid.Point) {},
	}
}

// WithVisualize toggles a frame after every newly flooded cell.
func WithVisualize(on bool) Option {
	return func(o *Options) {
		o.Visualize = on
	}
}

// WithSink installs the frame renderer. A nil sink keeps the default.
func WithSink(s Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithEdgeSink routes the opening and closing frames to s, e.g. to draw the
// before and after maps differently from the animation. A nil sink keeps
// every frame on the main Sink.
func WithEdgeSink(s Sink) Option {
	return func(o *Options) {
		o.EdgeSink = s
	}
}

// WithDelay pauses for d after each fine-grained frame.
//
//	d > 0: pause
//	d == 0: no pause
//	d < 0: invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithSleep replaces the pacing function, e.g. to avoid real waits in tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Sleep = fn
		}
	}
}

// WithOnMark registers a callback run after each new mark.
func WithOnMark(fn func(p grid.Point, seq int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMark = fn
		}
	}
}

// WithOnSchedule registers a callback run on every frontier push or on-grid recursive visit.
func WithOnSchedule(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSchedule = fn
		}
	}
}

// Result is the outcome of a run.
type Result struct {
	// Strategy is the traversal that produced the result.
	Strategy Strategy
	// State is the final flood state.
	State *State
	// Order lists cells in the order they were flooded.
	Order []grid.Point
	// Frames counts how many times the sink was invoked.
	Frames int
}

// Flooded reports whether p ended up flooded.
func (r *Result) Flooded(p grid.Point) bool {
	return r.State.IsFlooded(p)
}
