package sasa

import (
	"math"
	"sort"
)

// arc is an angular interval [lo, hi] with 0 <= lo < hi <= 2 pi.
type arc struct {
	lo, hi float64
}

type arcs []arc

func (as arcs) Len() int           { return len(as) }
func (as arcs) Less(i, j int) bool { return as[i].lo < as[j].lo }
func (as arcs) Swap(i, j int)      { as[i], as[j] = as[j], as[i] }

// leeRichards slices each expanded sphere into n slabs of equal thickness
// perpendicular to the z axis. In each slab the exposed fraction of the
// circle through the slab's midplane is taken as the exposed fraction of the
// slab's zone of the sphere, whose area is 2 pi R delta.
type leeRichards struct {
	n    int
	arcs arcs
}

func newLeeRichards(slices int) *leeRichards {
	return &leeRichards{n: slices, arcs: make(arcs, 0, 64)}
}

func (lr *leeRichards) atomArea(prob *problem, i int) float64 {
	ci, Ri := prob.centers[i], prob.radii[i]
	nbs := prob.nl.Neighbors[i]
	delta := 2 * Ri / float64(lr.n)

	sum := 0.0
	for k := 0; k < lr.n; k++ {
		// Slab planes are placed per atom, starting from the bottom of atom
		// i. They are not a single set of z planes shared by all atoms, so
		// neighbors are cut at different heights than they are in their own
		// slabs.
		z := ci[2] - Ri + delta*(float64(k)+0.5)
		dzi := z - ci[2]
		ri := math.Sqrt(math.Max(Ri*Ri-dzi*dzi, 0))

		exposed := lr.exposedArc(prob, ci[0], ci[1], z, ri, nbs)
		sum += exposed * Ri * delta
	}
	return sum
}

// exposedArc returns the angle of the circle of radius ri centered on
// (xi, yi) in the plane at height z that is not covered by the cross-sections
// of any of the neighboring spheres.
func (lr *leeRichards) exposedArc(
	prob *problem, xi, yi, z, ri float64, nbs []int,
) float64 {
	lr.arcs = lr.arcs[:0]

	for _, j := range nbs {
		cj, Rj := prob.centers[j], prob.radii[j]
		dz := z - cj[2]
		if dz >= Rj || dz <= -Rj {
			continue
		}
		rj := math.Sqrt(Rj*Rj - dz*dz)

		dx, dy := cj[0]-xi, cj[1]-yi
		d := math.Hypot(dx, dy)

		switch {
		case d >= ri+rj:
			continue
		case d+ri <= rj:
			// The whole circle is inside neighbor j.
			return 0
		case d+rj <= ri:
			// Neighbor j is inside the circle and can't touch its edge.
			continue
		}

		alpha := math.Atan2(dy, dx)
		cosBeta := (ri*ri + d*d - rj*rj) / (2 * ri * d)
		beta := math.Acos(math.Max(-1, math.Min(1, cosBeta)))
		lr.addArc(alpha-beta, alpha+beta)
	}

	return 2*math.Pi - lr.coveredArc()
}

// addArc adds the interval [lo, hi] to the covered set, wrapping it into
// [0, 2 pi). hi - lo must be at most 2 pi.
func (lr *leeRichards) addArc(lo, hi float64) {
	const twoPi = 2 * math.Pi
	if lo < 0 {
		lo += twoPi
		hi += twoPi
	}
	if hi > twoPi {
		lr.arcs = append(lr.arcs, arc{lo, twoPi}, arc{0, hi - twoPi})
	} else {
		lr.arcs = append(lr.arcs, arc{lo, hi})
	}
}

// arcUnion returns the total length of the union of as. as is sorted in
// place.
func arcUnion(as arcs) float64 {
	if len(as) == 0 {
		return 0
	}
	sort.Sort(as)

	covered := 0.0
	lo, hi := as[0].lo, as[0].hi
	for _, a := range as[1:] {
		if a.lo <= hi {
			if a.hi > hi {
				hi = a.hi
			}
			continue
		}
		covered += hi - lo
		lo, hi = a.lo, a.hi
	}
	return covered + (hi - lo)
}

func (lr *leeRichards) coveredArc() float64 { return arcUnion(lr.arcs) }
