// Package render provides flood.Sink implementations: three text renderers
// for terminals and a PNG raster writer.
//
// Every sink builds a whole frame in memory and writes it in one call, so a
// failing writer surfaces as a single error from Render.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/floodsim/flood"
	"github.com/katalvlaran/floodsim/grid"
)

// clearLines is how many blank lines scroll the previous frame away.
const clearLines = 50

// Basic prints dry cells as their elevation truncated to an integer and
// flooded cells as a light shade block.
type Basic struct {
	W     io.Writer
	Clear bool // scroll the previous frame off screen first
}

// Render implements flood.Sink.
func (b *Basic) Render(v flood.View, s flood.Surface) error {
	return writeFrame(b.W, b.Clear, v, func(buf *bytes.Buffer, p grid.Point) {
		if v.IsFlooded(p) {
			buf.WriteString("░░ ")
			return
		}
		h, _ := s.Elevation(p)
		fmt.Fprintf(buf, "%2.0f ", h)
	}, nil)
}

// Values prints dry cells with one decimal place and flooded cells as XXX.
type Values struct {
	W     io.Writer
	Clear bool
}

// Render implements flood.Sink.
func (r *Values) Render(v flood.View, s flood.Surface) error {
	return writeFrame(r.W, r.Clear, v, func(buf *bytes.Buffer, p grid.Point) {
		if v.IsFlooded(p) {
			buf.WriteString(" XXX ")
			return
		}
		h, _ := s.Elevation(p)
		fmt.Fprintf(buf, " %3.1f ", h)
	}, nil)
}

// Shade draws a bordered map. Flooded cells are blank; dry cells use one of
// four glyphs by elevation quartile, lowest to highest: ░░ ▒▒ ▓▓ ██.
type Shade struct {
	W     io.Writer
	Clear bool
}

// Render implements flood.Sink.
func (r *Shade) Render(v flood.View, s flood.Surface) error {
	low := s.MinElevation()
	quarter := (s.MaxElevation() - low) / 4
	_, cols := v.Dimensions()

	border := func(buf *bytes.Buffer, left, right string) {
		buf.WriteString(left)
		for i := 0; i < cols; i++ {
			buf.WriteString("══")
		}
		buf.WriteString(right)
		buf.WriteByte('\n')
	}
	return writeFrame(r.W, r.Clear, v, func(buf *bytes.Buffer, p grid.Point) {
		if v.IsFlooded(p) {
			buf.WriteString("  ")
			return
		}
		h, _ := s.Elevation(p)
		buf.WriteString(Glyph(h, low, quarter))
	}, &frame{
		top:    func(buf *bytes.Buffer) { border(buf, "╔", "╗") },
		bottom: func(buf *bytes.Buffer) { border(buf, "╚", "╝") },
		left:   "║",
		right:  "║",
	})
}

// Glyph returns the shade for elevation h given the map's lowest point and
// a quarter of its elevation range.
func Glyph(h, low, quarter float64) string {
	switch {
	case h < low+quarter:
		return "░░"
	case h < low+2*quarter:
		return "▒▒"
	case h < low+3*quarter:
		return "▓▓"
	default:
		return "██"
	}
}

// frame decorates the cell grid with borders.
type frame struct {
	top, bottom func(*bytes.Buffer)
	left, right string
}

// writeFrame renders every cell row by row with cell and writes the result to w.
func writeFrame(w io.Writer, clear bool, v flood.View, cell func(*bytes.Buffer, grid.Point), f *frame) error {
	var buf bytes.Buffer
	if clear {
		buf.Write(bytes.Repeat([]byte{'\n'}, clearLines))
	}
	if f != nil {
		f.top(&buf)
	}
	rows, cols := v.Dimensions()
	for r := 0; r < rows; r++ {
		if f != nil {
			buf.WriteString(f.left)
		}
		for c := 0; c < cols; c++ {
			cell(&buf, grid.Pt(r, c))
		}
		if f != nil {
			buf.WriteString(f.right)
		}
		buf.WriteByte('\n')
	}
	if f != nil {
		f.bottom(&buf)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	return nil
}
