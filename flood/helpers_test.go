package flood_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/floodsim/grid"
	"github.com/katalvlaran/floodsim/world"
)

// mustMap builds a world.Map or fails the test.
func mustMap(t testing.TB, elev [][]float64, threshold float64, sources ...grid.Point) *world.Map {
	t.Helper()
	m, err := world.NewMap(elev, threshold, sources)
	require.NoError(t, err)
	return m
}

// uniform returns a rows×cols grid filled with v.
func uniform(rows, cols int, v float64) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = v
		}
	}
	return out
}

// randomMap builds a deterministic rows×cols map with values in [0,10),
// threshold 5 and n random sources.
func randomMap(t testing.TB, seed int64, rows, cols, n int) *world.Map {
	rng := rand.New(rand.NewSource(seed))
	elev := make([][]float64, rows)
	for r := range elev {
		elev[r] = make([]float64, cols)
		for c := range elev[r] {
			elev[r][c] = float64(rng.Intn(10))
		}
	}
	sources := make([]grid.Point, n)
	for i := range sources {
		sources[i] = grid.Pt(rng.Intn(rows), rng.Intn(cols))
	}
	return mustMap(t, elev, 5, sources...)
}

// reachable is an independent oracle for the flooded set. It labels the
// connected components of floodable cells with union-find, then keeps every
// component that contains a floodable source or touches any source.
func reachable(m *world.Map) mapset.Set[grid.Point] {
	b := m.Bounds()
	parent := make([]int, b.Len())
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	floodable := func(p grid.Point) bool {
		if !b.Contains(p) {
			return false
		}
		above, _ := m.AboveThreshold(p)
		return !above
	}
	for i := 0; i < b.Len(); i++ {
		p := b.Point(i)
		if !floodable(p) {
			continue
		}
		for _, n := range []grid.Point{p.Down(), p.Right()} {
			if floodable(n) {
				parent[find(i)] = find(b.Index(n))
			}
		}
	}

	roots := mapset.New[int]()
	for _, s := range m.WaterSources() {
		if floodable(s) {
			roots.Put(find(b.Index(s)))
			continue
		}
		for _, n := range s.Neighbors() {
			if floodable(n) {
				roots.Put(find(b.Index(n)))
			}
		}
	}

	out := mapset.New[grid.Point]()
	for i := 0; i < b.Len(); i++ {
		p := b.Point(i)
		if floodable(p) && roots.Has(find(i)) {
			out.Put(p)
		}
	}
	return out
}

// setsEqual compares two point sets by membership.
func setsEqual(a, b mapset.Set[grid.Point]) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(p grid.Point) {
		if !b.Has(p) {
			same = false
		}
	})
	return same
}
