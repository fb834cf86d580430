package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/katalvlaran/floodsim/flood"
	"github.com/katalvlaran/floodsim/render"
)

// errUsage reports missing positional arguments.
var errUsage = errors.New("usage: floodsim [flags] <map file> <algorithm> <visualize>")

// renderers lists the accepted -render values.
var renderers = []string{"basic", "values", "shade", "png"}

// Config represents the command-line parameters for a run.
type Config struct {
	MapFile   string
	Algorithm string
	Visualize bool

	Render      string
	FrameRender string
	Delay       time.Duration
	Out         string
	Scale       int
	Clear       bool
	Summary     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Render:      "shade",
		FrameRender: "basic",
		Delay:       500 * time.Millisecond,
		Out:         "frames",
		Scale:       8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Render, "render", c.Render, "renderer for the per-cell frames: "+strings.Join(renderers, ", "))
	fs.StringVar(&c.FrameRender, "frame-render", c.FrameRender, "renderer for the before and after frames: "+strings.Join(renderers, ", "))
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause after each intermediate frame")
	fs.StringVar(&c.Out, "out", c.Out, "directory for png frames")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell for png frames")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "scroll the previous text frame off screen")
	fs.BoolVar(&c.Summary, "summary", c.Summary, "print map statistics and the flooded cell count")
}

// SetArgs takes the positional <map file> <algorithm> <visualize> arguments.
// Anything other than a case-insensitive "true" disables visualization.
func (c *Config) SetArgs(args []string) error {
	if len(args) < 3 {
		return errUsage
	}
	c.MapFile = args[0]
	c.Algorithm = args[1]
	c.Visualize = strings.EqualFold(args[2], "true")
	return nil
}

// Validate checks every parameter and returns the parsed strategy.
// All problems are reported together.
func (c *Config) Validate() (flood.Strategy, error) {
	var err error
	if c.MapFile == "" {
		err = multierr.Append(err, fmt.Errorf("%w: map file is empty", flood.ErrConfig))
	}
	st, serr := flood.ParseStrategy(c.Algorithm)
	err = multierr.Append(err, serr)

	for _, kind := range []struct{ flag, value string }{
		{"render", c.Render},
		{"frame-render", c.FrameRender},
	} {
		if !slices.Contains(renderers, kind.value) {
			err = multierr.Append(err, fmt.Errorf("%w: unknown -%s renderer %q (want one of %s)",
				flood.ErrConfig, kind.flag, kind.value, strings.Join(renderers, ", ")))
		}
	}
	if c.Delay < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: delay cannot be negative (%v)", flood.ErrConfig, c.Delay))
	}
	if (c.Render == "png" || c.FrameRender == "png") && c.Scale < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: scale must be at least 1 (%d)", flood.ErrConfig, c.Scale))
	}
	return st, err
}

// Sinks builds the renderers for the per-cell frames and for the before and
// after frames. Equal kinds share one sink so png frames stay numbered in order.
func (c *Config) Sinks(w io.Writer, fs billy.Filesystem) (frames, edges flood.Sink) {
	frames = c.sink(c.Render, w, fs)
	if c.FrameRender == c.Render {
		return frames, frames
	}
	return frames, c.sink(c.FrameRender, w, fs)
}

func (c *Config) sink(kind string, w io.Writer, fs billy.Filesystem) flood.Sink {
	switch kind {
	case "basic":
		return &render.Basic{W: w, Clear: c.Clear}
	case "values":
		return &render.Values{W: w, Clear: c.Clear}
	case "png":
		return &render.Raster{FS: fs, Dir: c.Out, Scale: c.Scale}
	default:
		return &render.Shade{W: w, Clear: c.Clear}
	}
}
