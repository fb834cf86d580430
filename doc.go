// Package floodsim simulates water spreading over an elevation map and
// lets you watch it happen, one cell at a time.
//
// 🚀 What is floodsim?
//
//	A small, dependency-light toolkit that brings together:
//		• A world map: elevation grid, flood threshold and water sources
//		• A propagation engine with three interchangeable strategies:
//		  breadth-first (queue), depth-first-stack and depth-first-recursive
//		• Frame sinks: basic, values and shaded text renderers plus PNG frames
//		• A CLI that loads a map file and replays the flood
//
// ✨ Why floodsim?
//
//   - Same answer, different journey: every strategy floods the same cells,
//     only the visit order and the intermediate frames differ
//   - Hooks (OnMark, OnSchedule) and a pluggable Sink for custom tracing
//   - Deterministic: identical inputs always replay identical frames
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/           Point, Bounds and the fixed up, down, left, right neighbour order
//	world/          Map (a flood.Surface), summary Stats and the map-file parser
//	flood/          Run, State, Strategy, Options and the frontier walkers
//	render/         Basic, Values, Shade and Raster sinks
//	cmd/floodsim/   the command-line front end
//	examples/       a runnable side-by-side strategy comparison
//
// Quick ASCII example (threshold 2.5, source at the top-left corner):
//
//	1 1 9 1        ~ ~ 9 ~
//	1 9 9 1   →    ~ 9 9 ~
//	1 1 1 1        ~ ~ ~ ~
//
//	go install github.com/katalvlaran/floodsim/cmd/floodsim@latest
package floodsim
