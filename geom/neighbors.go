package geom

import (
	"sort"
)

// NeighborList records, for each sphere, every other sphere that it
// intersects.
type NeighborList struct {
	// Neighbors[i] lists, in increasing order, every j != i with
	// |c_i - c_j| < r_i + r_j.
	Neighbors [][]int
	// Enclosed[i] is true if sphere i lies entirely inside (or exactly on)
	// some other sphere.
	Enclosed []bool
}

// NewNeighborList finds all intersecting pairs among the spheres with the
// given centers and radii using a CellGrid. Pairs which only touch are not
// neighbors.
func NewNeighborList(centers []Vec, radii []float64) (*NeighborList, error) {
	maxR := 0.0
	for _, r := range radii {
		if r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		maxR = 1
	}

	cg, err := NewCellGrid(centers, 2*maxR)
	if err != nil {
		return nil, err
	}

	nl := &NeighborList{
		Neighbors: make([][]int, len(centers)),
		Enclosed:  make([]bool, len(centers)),
	}

	for i := range centers {
		ci, ri := centers[i], radii[i]
		var nbs []int
		cg.Visit(i, func(j int) {
			if j == i {
				return
			}
			rSum := ri + radii[j]
			d2 := ci.Dist2(centers[j])
			if d2 >= rSum*rSum {
				return
			}
			nbs = append(nbs, j)

			// r_i + d <= r_j
			if ri <= radii[j] {
				rDiff := radii[j] - ri
				if d2 <= rDiff*rDiff {
					nl.Enclosed[i] = true
				}
			}
		})
		sort.Ints(nbs)
		nl.Neighbors[i] = nbs
	}

	return nl, nil
}
