package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path"

	hsluv "github.com/hsluv/hsluv-go"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/katalvlaran/floodsim/flood"
	"github.com/katalvlaran/floodsim/grid"
)

// Raster writes each frame as a PNG file named frame-NNNN.png under Dir on FS.
// Dry land is coloured along an HSLuv ramp from low green to high brown;
// flooded cells are water blue. Each cell becomes a Scale×Scale block.
type Raster struct {
	FS    billy.Filesystem
	Dir   string
	Scale int // pixels per cell; values < 1 mean 1

	frames int
}

// water is the colour of flooded cells.
var water = hsluvColor(250, 90, 45)

// Frames returns how many frames have been written.
func (r *Raster) Frames() int {
	return r.frames
}

// Render implements flood.Sink. The frame counter only advances once the
// file is written and closed.
func (r *Raster) Render(v flood.View, s flood.Surface) error {
	img := r.Image(v, s)

	if r.Dir != "" {
		if err := r.FS.MkdirAll(r.Dir, 0o755); err != nil {
			return fmt.Errorf("render: mkdir %s: %w", r.Dir, err)
		}
	}
	name := path.Join(r.Dir, fmt.Sprintf("frame-%04d.png", r.frames))
	if err := r.write(name, img); err != nil {
		return err
	}
	r.frames++
	return nil
}

func (r *Raster) write(name string, img image.Image) (err error) {
	f, err := r.FS.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", name, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", name, err)
	}
	return nil
}

// Image draws the current frame without writing it anywhere.
func (r *Raster) Image(v flood.View, s flood.Surface) *image.RGBA {
	scale := r.Scale
	if scale < 1 {
		scale = 1
	}
	rows, cols := v.Dimensions()
	img := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))

	low, high := s.MinElevation(), s.MaxElevation()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := grid.Pt(row, col)
			c := water
			if !v.IsFlooded(p) {
				h, _ := s.Elevation(p)
				c = landColor(h, low, high)
			}
			for y := row * scale; y < (row+1)*scale; y++ {
				for x := col * scale; x < (col+1)*scale; x++ {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img
}

// landColor maps h within [low,high] onto the land ramp.
func landColor(h, low, high float64) color.RGBA {
	t := 0.0
	if high > low {
		t = (h - low) / (high - low)
	}
	return hsluvColor(130-100*t, 60, 35+45*t)
}

func hsluvColor(h, s, l float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(h, s, l)
	return color.RGBA{
		uint8(r * 0xff),
		uint8(g * 0xff),
		uint8(b * 0xff),
		0xff,
	}
}
