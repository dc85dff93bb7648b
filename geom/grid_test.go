package geom

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIdxCoords(t *testing.T) {
	g := NewGrid([3]int{0, 0, 0}, [3]int{4, 3, 2})
	assert.Equal(t, 24, g.Volume)

	for idx := 0; idx < g.Volume; idx++ {
		x, y, z := g.Coords(idx)
		got, ok := g.IdxCheck(x, y, z)
		if !ok || got != idx {
			t.Errorf("Coords(%d) = (%d %d %d), which maps back to %d",
				idx, x, y, z, got)
		}
	}

	_, ok := g.IdxCheck(4, 0, 0)
	assert.False(t, ok)
	_, ok = g.IdxCheck(-1, 0, 0)
	assert.False(t, ok)
}

func TestCellGridStoresOccupiedCells(t *testing.T) {
	pts := []Vec{{0, 0, 0}, {1000, 1000, 1000}}
	cg, err := NewCellGrid(pts, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cg.Occupied())
	assert.Equal(t, 1.0, cg.CellWidth)
	assert.Equal(t, [3]int{1000, 1000, 1000}, cg.Cell(1))
}

func TestCellGridFarOutlier(t *testing.T) {
	gen := rand.New(rand.NewSource(2))
	n := 3000
	pts := make([]Vec, n+1)
	for i := 0; i < n; i++ {
		pts[i] = Vec{
			gen.Float64() * 40, gen.Float64() * 40, gen.Float64() * 40,
		}
	}
	pts[n] = Vec{1e9, 1e9, 1e9}

	cg, err := NewCellGrid(pts, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cg.CellWidth)
	// At most 10^3 cells for the cluster, plus one for the outlier.
	assert.LessOrEqual(t, cg.Occupied(), 1001)
	assert.Greater(t, cg.Occupied(), 100)

	// Cells stay small, so the cluster is not lumped together and the
	// outlier sees nobody.
	perCell := map[[3]int]int{}
	for i := range pts {
		perCell[cg.Cell(i)]++
	}
	for c, k := range perCell {
		if k > 50 {
			t.Errorf("cell %v holds %d points", c, k)
		}
	}
	assert.NotEqual(t, cg.Cell(0), cg.Cell(n))

	visited := 0
	cg.Visit(n, func(j int) { visited++ })
	assert.Equal(t, 1, visited)
	visited = 0
	cg.Visit(0, func(j int) {
		if j == n {
			t.Errorf("outlier visited from point 0")
		}
		visited++
	})
	assert.Less(t, visited, n/10)
}

func TestCellGridInfiniteSpan(t *testing.T) {
	pts := []Vec{{-math.MaxFloat64, 0, 0}, {math.MaxFloat64, 0, 0}}
	_, err := NewCellGrid(pts, 1)
	assert.True(t, errors.Is(err, ErrTooManyCells))

	pts = []Vec{{0, 0, 0}, {0, 1e300, 0}}
	_, err = NewCellGrid(pts, 1)
	assert.True(t, errors.Is(err, ErrTooManyCells))
}

func bruteNeighbors(centers []Vec, radii []float64) [][]int {
	out := make([][]int, len(centers))
	for i := range centers {
		for j := range centers {
			if i == j {
				continue
			}
			r := radii[i] + radii[j]
			if centers[i].Dist2(centers[j]) < r*r {
				out[i] = append(out[i], j)
			}
		}
	}
	return out
}

func TestNeighborListMatchesBruteForce(t *testing.T) {
	gen := rand.New(rand.NewSource(1))
	n := 300
	centers, radii := make([]Vec, n), make([]float64, n)
	for i := range centers {
		centers[i] = Vec{
			gen.Float64() * 30, gen.Float64() * 30, gen.Float64() * 30,
		}
		radii[i] = 1.4 + 1.5 + gen.Float64()*0.5
	}

	for _, shift := range []float64{0, -1e6} {
		shifted := make([]Vec, n)
		for i := range centers {
			shifted[i] = Vec{
				centers[i][0] + shift, centers[i][1], centers[i][2] - shift,
			}
		}
		nl, err := NewNeighborList(shifted, radii)
		require.NoError(t, err)
		want := bruteNeighbors(shifted, radii)
		for i := range want {
			assert.True(t, sort.IntsAreSorted(nl.Neighbors[i]))
			if len(want[i]) == 0 {
				assert.Empty(t, nl.Neighbors[i])
				continue
			}
			assert.Equal(t, want[i], nl.Neighbors[i],
				"atom %d with shift %g", i, shift)
		}
	}
}

func TestNeighborListEnclosed(t *testing.T) {
	centers := []Vec{{0, 0, 0}, {0, 0, 0}, {0.5, 0, 0}, {20, 0, 0}}
	radii := []float64{3, 3, 1, 3}
	nl, err := NewNeighborList(centers, radii)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, true, false}, nl.Enclosed)
	assert.Equal(t, []int{1, 2}, nl.Neighbors[0])
	assert.Empty(t, nl.Neighbors[3])
}

func TestNeighborListTouchingIsNotNeighbor(t *testing.T) {
	centers := []Vec{{0, 0, 0}, {4, 0, 0}}
	nl, err := NewNeighborList(centers, []float64{2, 2})
	require.NoError(t, err)
	assert.Empty(t, nl.Neighbors[0])
	assert.Empty(t, nl.Neighbors[1])
}
