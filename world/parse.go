package world

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/katalvlaran/floodsim/grid"
)

// token is a single whitespace-delimited word with the line it came from.
type token struct {
	text string
	line int
}

// tokenizer yields words from map text, skipping blank and '#' comment lines.
type tokenizer struct {
	sc   *bufio.Scanner
	line int
	buf  []token
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenizer{sc: sc}
}

// next returns the next token, io.EOF when the input is exhausted,
// or a scanner error.
func (t *tokenizer) next() (token, error) {
	for len(t.buf) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return token{}, err
			}
			return token{}, io.EOF
		}
		t.line++
		text := strings.TrimSpace(t.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, f := range strings.Fields(text) {
			t.buf = append(t.buf, token{text: f, line: t.line})
		}
	}
	tok := t.buf[0]
	t.buf = t.buf[1:]

	return tok, nil
}

func (t *tokenizer) int(what string) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, t.wrap(what, err)
	}
	v, err := strconv.Atoi(tok.text)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrSyntax, tok.line, what, tok.text)
	}
	return v, nil
}

func (t *tokenizer) float(what string) (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, t.wrap(what, err)
	}
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not a number", ErrSyntax, tok.line, what, tok.text)
	}
	return v, nil
}

func (t *tokenizer) wrap(what string, err error) error {
	if err == io.EOF {
		return fmt.Errorf("%w: unexpected end of input reading %s", ErrSyntax, what)
	}
	return fmt.Errorf("world: reading %s: %w", what, err)
}

// Parse reads a map in the text format described in the package docs.
// Structural problems wrap ErrSyntax; grid shape and source problems
// are reported by NewMap.
func Parse(r io.Reader) (*Map, error) {
	t := newTokenizer(r)

	rows, err := t.int("row count")
	if err != nil {
		return nil, err
	}
	cols, err := t.int("column count")
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	threshold, err := t.float("threshold")
	if err != nil {
		return nil, err
	}
	n, err := t.int("source count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative source count %d", ErrSyntax, n)
	}

	// counts come from untrusted input, so slices grow only as tokens arrive
	var sources []grid.Point
	for i := 0; i < n; i++ {
		var p grid.Point
		if p.Row, err = t.int(fmt.Sprintf("source %d row", i)); err != nil {
			return nil, err
		}
		if p.Col, err = t.int(fmt.Sprintf("source %d column", i)); err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}

	var elevations [][]float64
	for r := 0; r < rows; r++ {
		var row []float64
		for c := 0; c < cols; c++ {
			h, err := t.float(fmt.Sprintf("elevation (%d,%d)", r, c))
			if err != nil {
				return nil, err
			}
			row = append(row, h)
		}
		elevations = append(elevations, row)
	}
	if tok, err := t.next(); err == nil {
		return nil, fmt.Errorf("%w: line %d: trailing data %q after %dx%d grid", ErrSyntax, tok.line, tok.text, rows, cols)
	} else if err != io.EOF {
		return nil, t.wrap("trailing data", err)
	}

	return NewMap(elevations, threshold, sources)
}

// Load opens path on fs and parses it as a map.
func Load(fs billy.Filesystem, path string) (m *Map, err error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("world: open %s: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	m, err = Parse(f)
	if err != nil {
		return nil, fmt.Errorf("world: %s: %w", path, err)
	}
	return m, nil
}
