package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooManyCells is returned when a CellGrid cannot index the cells its
// points span.
var ErrTooManyCells = errors.New("geom: cell grid too large")

// Grid provides an interface for reasoning over a 1D slice as if it were a
// 3D grid.
type Grid struct {
	CellBounds
	Length, Area, Volume int
	uBounds              [3]int
}

// CellBounds represents a bounding box aligned to grid cells.
type CellBounds struct {
	Origin, Width [3]int
}

// NewGrid returns a new Grid instance.
func NewGrid(origin [3]int, width [3]int) *Grid {
	g := &Grid{}
	g.Init(origin, width)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(origin [3]int, width [3]int) {
	g.Origin = origin
	g.Width = width

	g.Length = width[0]
	g.Area = width[0] * width[1]
	g.Volume = width[0] * width[1] * width[2]

	for i := 0; i < 3; i++ {
		g.uBounds[i] = g.Origin[i] + g.Width[i]
	}
}

// Idx returns the grid index corresponding to a set of coordinates.
func (g *Grid) Idx(x, y, z int) int {
	return (x - g.Origin[0]) + (y-g.Origin[1])*g.Length +
		(z-g.Origin[2])*g.Area
}

// IdxCheck returns an index and true if the given coordinate are valid and
// false otherwise.
func (g *Grid) IdxCheck(x, y, z int) (idx int, ok bool) {
	if !g.BoundsCheck(x, y, z) {
		return -1, false
	}

	return g.Idx(x, y, z), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(x, y, z int) bool {
	return (g.Origin[0] <= x && g.Origin[1] <= y && g.Origin[2] <= z) &&
		(x < g.uBounds[0] && y < g.uBounds[1] && z < g.uBounds[2])
}

// Coords returns the x, y, z coordinates of a point from its grid index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = idx%g.Length + g.Origin[0]
	y = (idx%g.Area)/g.Length + g.Origin[1]
	z = idx/g.Area + g.Origin[2]
	return x, y, z
}

// CellGrid bins a set of points into cubic cells so that every point within
// CellWidth of a query point is found by visiting the 27 surrounding cells.
// Only occupied cells are stored. Points are kept as a linked list per cell:
// heads[cell] is the first point in that cell and next[i] is the point after
// i, or -1.
type CellGrid struct {
	Min       Vec
	CellWidth float64

	heads map[[3]int]int
	next  []int
	cells [][3]int
	// offsets is the 3 x 3 x 3 block of cells around a cell.
	offsets *Grid
}

// maxCellCoord bounds the cell coordinates along each axis so that they,
// and their neighbors, are exactly representable.
const maxCellCoord = 1 << 52

// NewCellGrid bins pts into cells which are width wide. Memory scales with
// the number of points, not with the volume they span. ErrTooManyCells is
// returned if the cell coordinates along some axis can't be represented,
// which only happens for spans far beyond any molecule.
func NewCellGrid(pts []Vec, width float64) (*CellGrid, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("geom: NewCellGrid given no points")
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf(
			"geom: cell width must be positive and finite, got %g", width,
		)
	}

	min, max := Bounds(pts)
	for k := 0; k < 3; k++ {
		n := (max[k] - min[k]) / width
		if math.IsInf(n, 0) || math.IsNaN(n) || n >= maxCellCoord {
			return nil, fmt.Errorf(
				"%w: coordinate span along axis %d is %g, %g cells of "+
					"width %g", ErrTooManyCells, k, max[k]-min[k], n, width,
			)
		}
	}

	cg := &CellGrid{
		Min:       min,
		CellWidth: width,
		heads:     make(map[[3]int]int),
		next:      make([]int, len(pts)),
		cells:     make([][3]int, len(pts)),
		offsets:   NewGrid([3]int{-1, -1, -1}, [3]int{3, 3, 3}),
	}

	// Insert in reverse so that each cell's list is in increasing index order.
	for i := len(pts) - 1; i >= 0; i-- {
		c := cg.cellCoords(pts[i])
		cg.cells[i] = c
		if j, ok := cg.heads[c]; ok {
			cg.next[i] = j
		} else {
			cg.next[i] = -1
		}
		cg.heads[c] = i
	}

	return cg, nil
}

func (cg *CellGrid) cellCoords(v Vec) [3]int {
	var c [3]int
	for k := 0; k < 3; k++ {
		c[k] = int((v[k] - cg.Min[k]) / cg.CellWidth)
	}
	return c
}

// Cell returns the coordinates of the cell containing the i-th point.
func (cg *CellGrid) Cell(i int) [3]int { return cg.cells[i] }

// Occupied returns the number of cells which contain at least one point.
func (cg *CellGrid) Occupied() int { return len(cg.heads) }

// Visit calls f on every point in the cell containing the i-th point and the
// 26 cells around it. Points are visited cell by cell, so callers that need a
// particular order must sort.
func (cg *CellGrid) Visit(i int, f func(j int)) {
	c0 := cg.cells[i]
	for idx := 0; idx < cg.offsets.Volume; idx++ {
		dx, dy, dz := cg.offsets.Coords(idx)
		c := [3]int{c0[0] + dx, c0[1] + dy, c0[2] + dz}
		head, ok := cg.heads[c]
		if !ok {
			continue
		}
		for j := head; j != -1; j = cg.next[j] {
			f(j)
		}
	}
}
