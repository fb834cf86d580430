// Package flood simulates water spreading over an elevation Surface from its
// water sources to every 4-connected cell at or below the flood threshold.
//
// What
//
//	Run(surface, strategy, opts...) floods a fresh State and returns a Result:
//		State   the final flooded matrix
//		Order   cells in the order they were flooded
//		Frames  number of sink invocations
//
//	Three interchangeable strategies:
//		BreadthFirst         FIFO queue
//		DepthFirstStack      explicit LIFO stack
//		DepthFirstRecursive  native call stack
//
//	All three converge to the identical final State; only visit order,
//	and therefore the intermediate frames, differ.
//
// Semantics
//
//	A cell is floodable iff it is on the grid and not above the threshold.
//	Sources are unconditional seeds: a source above the threshold is never
//	flooded itself, but its floodable neighbors are expanded. Sources off
//	the grid are ignored. A flooded cell is never processed again, so every
//	cell is marked at most once and flooding is monotonic.
//
// Boundaries
//
//	Neighbor derivation is unchecked. The engine tests each candidate with a
//	single in-bounds-and-floodable predicate before acting on it, so an
//	out-of-bounds condition never reaches the caller.
//
// Frames
//
//	The sink is called once before and once after every run. With
//	WithVisualize(true) it is also called after each newly flooded cell,
//	followed by the WithDelay pause. WithEdgeSink sends the opening and
//	closing frames to a second sink.
//
// Complexity (R×C cells)
//
//   - Time:   O(R×C) for every strategy
//   - Memory: O(R×C) for State and frontier; the recursive strategy uses
//     call-stack depth proportional to the largest reachable region.
//
// Errors
//
//   - ErrConfig             umbrella for the configuration errors below
//   - ErrSurfaceNil         if surface is nil
//   - ErrEmptySurface       if the surface has no cells
//   - ErrUnknownStrategy    for unrecognised identifiers (see ParseStrategy)
//   - ErrOptionViolation    for invalid options (e.g. negative delay)
//   - ErrSink               if the sink fails while rendering a frame
//
// Runs are single-threaded and own all their mutable state. Independent runs
// may share one immutable Surface from different goroutines.
package flood
