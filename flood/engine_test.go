package flood_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/floodsim/flood"
	"github.com/katalvlaran/floodsim/grid"
	"github.com/katalvlaran/floodsim/world"
)

// StrategySuite runs every property once per strategy.
type StrategySuite struct {
	suite.Suite
	strategy flood.Strategy
}

func TestBreadthFirst(t *testing.T) {
	suite.Run(t, &StrategySuite{strategy: flood.BreadthFirst})
}

func TestDepthFirstStack(t *testing.T) {
	suite.Run(t, &StrategySuite{strategy: flood.DepthFirstStack})
}

func TestDepthFirstRecursive(t *testing.T) {
	suite.Run(t, &StrategySuite{strategy: flood.DepthFirstRecursive})
}

func (s *StrategySuite) run(m flood.Surface, opts ...flood.Option) *flood.Result {
	res, err := flood.Run(m, s.strategy, opts...)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.strategy, res.Strategy)
	return res
}

// TestUniformFloodsAll: 3×3 all at elevation 0, source at the centre.
func (s *StrategySuite) TestUniformFloodsAll() {
	m := mustMap(s.T(), uniform(3, 3, 0), 0, grid.Pt(1, 1))
	res := s.run(m)
	require.Equal(s.T(), 9, res.State.Count(), "every cell floods")
	require.Len(s.T(), res.Order, 9)
	require.Equal(s.T(), grid.Pt(1, 1), res.Order[0], "the source floods first")
}

// TestBlockedRow: a raised middle row stops water from the top-left corner.
func (s *StrategySuite) TestBlockedRow() {
	m := mustMap(s.T(), [][]float64{
		{0, 0, 0},
		{9, 9, 9},
		{0, 0, 0},
	}, 1, grid.Pt(0, 0))
	res := s.run(m)

	require := require.New(s.T())
	require.Equal([]grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, res.State.Points())
	for c := 0; c < 3; c++ {
		require.False(res.Flooded(grid.Pt(1, c)), "blocked row stays dry")
		require.False(res.Flooded(grid.Pt(2, c)), "row beyond the block stays dry")
	}
}

// TestNoSources leaves the state all dry.
func (s *StrategySuite) TestNoSources() {
	m := mustMap(s.T(), uniform(4, 4, 0), 10)
	res := s.run(m)
	require.Zero(s.T(), res.State.Count())
	require.Empty(s.T(), res.Order)
}

// TestThresholdInclusive floods cells exactly at the threshold.
func (s *StrategySuite) TestThresholdInclusive() {
	m := mustMap(s.T(), [][]float64{{2, 2, 2.0001}}, 2, grid.Pt(0, 0))
	res := s.run(m)
	require.Equal(s.T(), []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, res.State.Points())
}

// TestPathMustStayLow: a low cell behind a ridge is not reached, even
// though its own elevation qualifies.
func (s *StrategySuite) TestPathMustStayLow() {
	m := mustMap(s.T(), [][]float64{{0, 0, 7, 0}}, 1, grid.Pt(0, 0))
	res := s.run(m)
	require.False(s.T(), res.Flooded(grid.Pt(0, 3)))
	require.Equal(s.T(), 2, res.State.Count())
}

// TestAboveThresholdSource: a high source does not flood itself but still
// seeds its floodable neighbors.
func (s *StrategySuite) TestAboveThresholdSource() {
	m := mustMap(s.T(), [][]float64{
		{0, 9, 0},
		{9, 9, 9},
	}, 1, grid.Pt(0, 1))
	res := s.run(m)
	require.Equal(s.T(), []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, res.State.Points())
}

// TestDuplicateSources floods each cell once.
func (s *StrategySuite) TestDuplicateSources() {
	m := mustMap(s.T(), uniform(2, 2, 0), 0, grid.Pt(0, 0), grid.Pt(0, 0), grid.Pt(1, 1))
	marks := make(map[grid.Point]int)
	res := s.run(m, flood.WithOnMark(func(p grid.Point, _ int) { marks[p]++ }))
	require.Equal(s.T(), 4, res.State.Count())
	for p, n := range marks {
		require.Equalf(s.T(), 1, n, "%v marked %d times", p, n)
	}
}

// TestMatchesOracle compares against independent union-find reachability.
func (s *StrategySuite) TestMatchesOracle() {
	for seed := int64(1); seed <= 20; seed++ {
		m := randomMap(s.T(), seed, 12, 17, int(seed%4))
		res := s.run(m)
		require.Truef(s.T(), setsEqual(reachable(m), res.State.Set()), "seed %d", seed)
	}
}

// TestMonotonicAndBounded: every frame is a superset of the previous one and
// nothing is ever reported off the grid.
func (s *StrategySuite) TestMonotonicAndBounded() {
	m := randomMap(s.T(), 7, 9, 9, 3)
	var prev *flood.State
	sink := flood.SinkFunc(func(v flood.View, _ flood.Surface) error {
		cur := v.Snapshot()
		if prev != nil {
			for _, p := range prev.Points() {
				if !cur.IsFlooded(p) {
					s.T().Errorf("%v became dry", p)
				}
			}
			if cur.Count() < prev.Count() {
				s.T().Errorf("count shrank %d → %d", prev.Count(), cur.Count())
			}
		}
		prev = cur
		return nil
	})
	b := m.Bounds()
	res := s.run(m,
		flood.WithVisualize(true),
		flood.WithSink(sink),
		flood.WithOnMark(func(p grid.Point, _ int) {
			if !b.Contains(p) {
				s.T().Errorf("marked off-grid %v", p)
			}
		}),
		flood.WithOnSchedule(func(p grid.Point) {
			if !b.Contains(p) {
				s.T().Errorf("scheduled off-grid %v", p)
			}
		}),
	)
	for _, p := range res.Order {
		require.True(s.T(), b.Contains(p))
	}
}

// TestFrames: before and after frames always fire; per-mark frames only when visualizing.
func (s *StrategySuite) TestFrames() {
	m := mustMap(s.T(), uniform(3, 4, 0), 0, grid.Pt(0, 0))

	frames := 0
	counter := flood.SinkFunc(func(flood.View, flood.Surface) error { frames++; return nil })

	res := s.run(m, flood.WithSink(counter))
	require.Equal(s.T(), 2, res.Frames)
	require.Equal(s.T(), 2, frames)

	frames = 0
	var slept []time.Duration
	res = s.run(m,
		flood.WithSink(counter),
		flood.WithVisualize(true),
		flood.WithDelay(250*time.Millisecond),
		flood.WithSleep(func(d time.Duration) { slept = append(slept, d) }),
	)
	require.Equal(s.T(), 2+12, res.Frames)
	require.Equal(s.T(), res.Frames, frames)
	require.Len(s.T(), slept, 12, "one pause per fine-grained frame")
	require.Equal(s.T(), 250*time.Millisecond, slept[0])
}

// TestFrameCounts: the opening frame sees a dry state, the closing one the result.
func (s *StrategySuite) TestFrameCounts() {
	m := mustMap(s.T(), uniform(2, 3, 0), 0, grid.Pt(1, 2))
	var counts []int
	sink := flood.SinkFunc(func(v flood.View, _ flood.Surface) error {
		counts = append(counts, v.Count())
		return nil
	})
	s.run(m, flood.WithSink(sink), flood.WithVisualize(true))
	require.Equal(s.T(), []int{0, 1, 2, 3, 4, 5, 6, 6}, counts)
}

// TestEdgeSink: the opening and closing frames go to the edge sink, marks to the main one.
func (s *StrategySuite) TestEdgeSink() {
	m := mustMap(s.T(), uniform(2, 2, 0), 0, grid.Pt(0, 0))
	var edges, marks []int
	res := s.run(m,
		flood.WithVisualize(true),
		flood.WithSink(flood.SinkFunc(func(v flood.View, _ flood.Surface) error {
			marks = append(marks, v.Count())
			return nil
		})),
		flood.WithEdgeSink(flood.SinkFunc(func(v flood.View, _ flood.Surface) error {
			edges = append(edges, v.Count())
			return nil
		})),
	)
	require.Equal(s.T(), []int{0, 4}, edges)
	require.Equal(s.T(), []int{1, 2, 3, 4}, marks)
	require.Equal(s.T(), 6, res.Frames)
}

// TestSinkError aborts the run and returns the partial result.
func (s *StrategySuite) TestSinkError() {
	m := mustMap(s.T(), uniform(3, 3, 0), 0, grid.Pt(0, 0))
	boom := errors.New("boom")
	n := 0
	sink := flood.SinkFunc(func(flood.View, flood.Surface) error {
		n++
		if n == 3 {
			return boom
		}
		return nil
	})
	res, err := flood.Run(m, s.strategy, flood.WithSink(sink), flood.WithVisualize(true))
	require.ErrorIs(s.T(), err, flood.ErrSink)
	require.ErrorIs(s.T(), err, boom)
	require.NotNil(s.T(), res)
	require.Equal(s.T(), 2, res.State.Count(), "stopped after the second mark")
}

// TestHoleySurface: in-bounds cells answering out-of-bounds are treated as absent.
func (s *StrategySuite) TestHoleySurface() {
	m := &holeySurface{
		Map:   mustMap(s.T(), uniform(1, 5, 0), 0, grid.Pt(0, 0)),
		holes: map[grid.Point]bool{grid.Pt(0, 2): true},
	}
	res := s.run(m)
	require.Equal(s.T(), []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, res.State.Points())
}

// TestStrategyEquivalence runs all three strategies on random maps and
// requires identical final states with differing visit orders allowed.
func TestStrategyEquivalence(t *testing.T) {
	for seed := int64(100); seed < 130; seed++ {
		m := randomMap(t, seed, 20, 25, 1+int(seed%5))
		var first *flood.State
		for _, st := range flood.Strategies {
			res, err := flood.Run(m, st)
			require.NoError(t, err)
			if first == nil {
				first = res.State
				continue
			}
			assert.Truef(t, first.Equal(res.State), "seed %d: %s differs from %s", seed, st, flood.Strategies[0])
		}
	}
}

// TestVisitOrder pins the distinct orders on a 2×2 open grid from (0,0).
func TestVisitOrder(t *testing.T) {
	m := mustMap(t, uniform(2, 2, 0), 0, grid.Pt(0, 0))
	want := map[flood.Strategy][]grid.Point{
		flood.BreadthFirst:        {{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}},
		flood.DepthFirstStack:     {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}},
		flood.DepthFirstRecursive: {{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}},
	}
	for st, order := range want {
		res, err := flood.Run(m, st)
		require.NoError(t, err)
		assert.Equalf(t, order, res.Order, "strategy %s", st)
	}
}

// TestSchedule counts frontier pushes and on-grid recursive visits on a single cell.
func TestSchedule(t *testing.T) {
	m := mustMap(t, [][]float64{{0}}, 0, grid.Pt(0, 0))
	want := map[flood.Strategy]int{
		flood.BreadthFirst:        1, // the seed; no floodable neighbors
		flood.DepthFirstStack:     1,
		flood.DepthFirstRecursive: 1, // off-grid neighbors return before the hook
	}
	for st, n := range want {
		calls := 0
		_, err := flood.Run(m, st, flood.WithOnSchedule(func(grid.Point) { calls++ }))
		require.NoError(t, err)
		assert.Equalf(t, n, calls, "strategy %s", st)
	}
}

// TestRun_ConfigErrors verifies every problem is reported together before flooding.
func TestRun_ConfigErrors(t *testing.T) {
	frames := 0
	sink := flood.SinkFunc(func(flood.View, flood.Surface) error { frames++; return nil })

	_, err := flood.Run(nil, "sideways", flood.WithDelay(-time.Second), flood.WithSink(sink))
	require.Error(t, err)
	assert.ErrorIs(t, err, flood.ErrConfig)
	assert.ErrorIs(t, err, flood.ErrSurfaceNil)
	assert.ErrorIs(t, err, flood.ErrUnknownStrategy)
	assert.ErrorIs(t, err, flood.ErrOptionViolation)
	assert.Zero(t, frames, "no frame before a valid configuration")

	_, err = flood.Run(emptySurface{}, flood.BreadthFirst)
	assert.ErrorIs(t, err, flood.ErrEmptySurface)
	assert.ErrorIs(t, err, flood.ErrConfig)
}

// TestRun_TypedNilSurface: a nil *world.Map inside the interface is reported, not dereferenced.
func TestRun_TypedNilSurface(t *testing.T) {
	var m *world.Map
	var res *flood.Result
	var err error
	require.NotPanics(t, func() { res, err = flood.Run(m, flood.BreadthFirst) })
	assert.Nil(t, res)
	assert.ErrorIs(t, err, flood.ErrSurfaceNil)
	assert.ErrorIs(t, err, flood.ErrConfig)
}

// TestRun_Repeatable shows runs share no state.
func TestRun_Repeatable(t *testing.T) {
	m := randomMap(t, 3, 10, 10, 2)
	a, err := flood.Run(m, flood.DepthFirstStack)
	require.NoError(t, err)
	b, err := flood.Run(m, flood.DepthFirstStack)
	require.NoError(t, err)
	assert.Equal(t, a.Order, b.Order)
	assert.True(t, a.State.Equal(b.State))
	assert.NotSame(t, a.State, b.State)
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]flood.Strategy{
		"breadth-first":         flood.BreadthFirst,
		"Queue":                 flood.BreadthFirst,
		"bfs":                   flood.BreadthFirst,
		"depth-first-stack":     flood.DepthFirstStack,
		" STACK ":               flood.DepthFirstStack,
		"depth-first-recursive": flood.DepthFirstRecursive,
		"recursive":             flood.DepthFirstRecursive,
	}
	for in, want := range cases {
		got, err := flood.ParseStrategy(in)
		require.NoErrorf(t, err, "ParseStrategy(%q)", in)
		assert.Equal(t, want, got)
	}
	_, err := flood.ParseStrategy("dijkstra")
	assert.ErrorIs(t, err, flood.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "dijkstra")
	assert.False(t, flood.Strategy("queue").Valid(), "aliases are not canonical")
}

// holeySurface reports selected in-bounds cells as missing.
type holeySurface struct {
	Map   flood.Surface
	holes map[grid.Point]bool
}

func (h *holeySurface) AboveThreshold(p grid.Point) (bool, error) {
	if h.holes[p] {
		return false, grid.ErrOutOfBounds
	}
	return h.Map.AboveThreshold(p)
}

func (h *holeySurface) Elevation(p grid.Point) (float64, error) { return h.Map.Elevation(p) }
func (h *holeySurface) Dimensions() (int, int)                  { return h.Map.Dimensions() }
func (h *holeySurface) WaterSources() []grid.Point              { return h.Map.WaterSources() }
func (h *holeySurface) MinElevation() float64                   { return h.Map.MinElevation() }
func (h *holeySurface) MaxElevation() float64                   { return h.Map.MaxElevation() }

// emptySurface has no cells.
type emptySurface struct{}

func (emptySurface) Elevation(grid.Point) (float64, error)   { return 0, grid.ErrOutOfBounds }
func (emptySurface) AboveThreshold(grid.Point) (bool, error) { return false, grid.ErrOutOfBounds }
func (emptySurface) Dimensions() (int, int)                  { return 0, 0 }
func (emptySurface) WaterSources() []grid.Point              { return nil }
func (emptySurface) MinElevation() float64                   { return 0 }
func (emptySurface) MaxElevation() float64                   { return 0 }
