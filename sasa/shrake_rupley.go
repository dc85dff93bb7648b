package sasa

import (
	"math"

	"github.com/nobuyasu/gosasa/geom"
)

// SpherePoints returns n points spread quasi-uniformly over the unit sphere
// using the golden section spiral. The points are the same for a given n.
func SpherePoints(n int) []geom.Vec {
	pts := make([]geom.Vec, n)
	inc := math.Pi * (3 - math.Sqrt(5))
	dz := 2.0 / float64(n)

	for k := range pts {
		z := 1 - dz*(float64(k)+0.5)
		r := math.Sqrt(math.Max(1-z*z, 0))
		phi := float64(k) * inc
		pts[k] = geom.Vec{r * math.Cos(phi), r * math.Sin(phi), z}
	}
	return pts
}

// shrakeRupley places the test points on each expanded sphere and counts the
// ones which are not inside any neighbor.
type shrakeRupley struct {
	unit []geom.Vec
}

func newShrakeRupley(unit []geom.Vec) *shrakeRupley {
	return &shrakeRupley{unit: unit}
}

func (sr *shrakeRupley) atomArea(prob *problem, i int) float64 {
	ci, Ri := prob.centers[i], prob.radii[i]
	nbs := prob.nl.Neighbors[i]

	exposed := 0
	// Neighboring test points tend to be buried by the same atom, so it gets
	// checked first.
	last := -1
	for _, u := range sr.unit {
		pt := geom.Vec{ci[0] + Ri*u[0], ci[1] + Ri*u[1], ci[2] + Ri*u[2]}

		if last >= 0 && buries(prob, nbs[last], pt) {
			continue
		}

		buried := false
		for n, j := range nbs {
			if n != last && buries(prob, j, pt) {
				buried, last = true, n
				break
			}
		}
		if !buried {
			exposed++
		}
	}

	return float64(exposed) / float64(len(sr.unit)) * 4 * math.Pi * Ri * Ri
}

// buries returns true if pt is strictly inside the expanded sphere of atom j.
func buries(prob *problem, j int, pt geom.Vec) bool {
	Rj := prob.radii[j]
	return prob.centers[j].Dist2(pt) < Rj*Rj
}
