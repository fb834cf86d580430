// Command floodsim floods a world map from its water sources and renders
// the result.
//
//	floodsim [flags] <map file> <algorithm> <visualize>
//
// algorithm is one of breadth-first (queue), depth-first-stack (stack) or
// depth-first-recursive (recursive). visualize "true" renders a frame after
// every newly flooded cell with -render; the map is always shown before and
// after with -frame-render.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/katalvlaran/floodsim/flood"
	"github.com/katalvlaran/floodsim/world"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, osfs.New(".")))
}

// run parses args, floods the map and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, fs billy.Filesystem) int {
	logger := log.New(stderr, "floodsim: ", 0)

	cfg := NewConfig()
	flags := flag.NewFlagSet("floodsim", flag.ContinueOnError)
	flags.SetOutput(stderr)
	cfg.Bind(flags)
	flags.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		fmt.Fprintln(stderr, "\n  algorithms: breadth-first (queue), depth-first-stack (stack), depth-first-recursive (recursive)")
		fmt.Fprintln(stderr, "  visualize:  true, false")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if err := cfg.SetArgs(flags.Args()); err != nil {
		flags.Usage()
		return 1
	}
	strategy, err := cfg.Validate()
	if err != nil {
		logger.Printf("invalid configuration: %v", err)
		flags.Usage()
		return 1
	}

	m, err := world.Load(fs, cfg.MapFile)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	if cfg.Summary {
		s := m.Stats()
		fmt.Fprintf(stdout, "map %dx%d: %d sources, threshold %g, elevation %g..%g (mean %.2f), %d/%d cells at or below threshold\n",
			m.Bounds().Rows, m.Bounds().Cols, s.Sources, s.Threshold, s.Min, s.Max, s.Mean, s.Floodable, s.Cells)
	}

	frames, edges := cfg.Sinks(stdout, fs)
	res, err := flood.Run(m, strategy,
		flood.WithVisualize(cfg.Visualize),
		flood.WithSink(frames),
		flood.WithEdgeSink(edges),
		flood.WithDelay(cfg.Delay),
	)
	if err != nil {
		logger.Printf("%s run failed: %v", strategy, err)
		return 1
	}
	if cfg.Summary {
		wet, sources := res.State.Set(), m.WaterSources()
		under := 0
		for _, p := range sources {
			if wet.Has(p) {
				under++
			}
		}
		fmt.Fprintf(stdout, "%s flooded %d cells in %d frames, %d/%d sources under water\n",
			res.Strategy, res.State.Count(), res.Frames, under, len(sources))
	}
	return 0
}
