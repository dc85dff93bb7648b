/*package sasa computes solvent accessible surface areas of sets of atoms.

Each atom is a sphere. The engine expands every sphere by the probe radius and
reports, per atom, the area of its expanded sphere which lies outside every
other expanded sphere. Two algorithms are supported: Lee & Richards (1971),
which slices each sphere into parallel planes and measures exposed arcs, and
Shrake & Rupley (1973), which counts exposed test points.

Calculate is a pure function of its arguments and may be called concurrently.
*/
package sasa

import (
	"errors"
	"fmt"
	"math"

	"github.com/nobuyasu/gosasa/geom"
)

// Atom is a single sphere. Radius does not include the probe radius.
type Atom struct {
	Center geom.Vec
	Radius float64
}

// Result holds the exposed area of every atom, in the same order as the
// input, and their sum. All areas are in square Angstroms.
type Result struct {
	Total   float64
	PerAtom []float64
}

// Len returns the number of atoms in r.
func (r *Result) Len() int { return len(r.PerAtom) }

// Isolated returns the exposed area of an atom of radius r with no neighbors,
// 4 pi (r + probe)^2.
func Isolated(r, probe float64) float64 {
	R := r + probe
	return 4 * math.Pi * R * R
}

// problem is the immutable input shared by all workers of one calculation.
type problem struct {
	centers []geom.Vec
	radii   []float64 // expanded radii
	nl      *geom.NeighborList
	p       Parameters
}

// algorithm computes the exposed area of a single atom. Implementations keep
// per-worker scratch space, so each worker gets its own instance.
type algorithm interface {
	atomArea(prob *problem, i int) float64
}

// Calculate computes the solvent accessible surface area of atoms. All of the
// input is checked before any work is done; on error no Result is returned.
// Errors wrap either ErrInvalidInput or ErrAllocation.
func Calculate(atoms []Atom, p Parameters) (*Result, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	if err := checkAtoms(atoms); err != nil {
		return nil, err
	}

	prob := &problem{
		centers: make([]geom.Vec, len(atoms)),
		radii:   make([]float64, len(atoms)),
		p:       p,
	}
	for i := range atoms {
		prob.centers[i] = atoms[i].Center
		prob.radii[i] = atoms[i].Radius + p.ProbeRadius
	}

	nl, err := geom.NewNeighborList(prob.centers, prob.radii)
	if err != nil {
		if errors.Is(err, geom.ErrTooManyCells) {
			return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	prob.nl = nl

	// Everything shared between workers (neighbor lists, test points) is
	// built before any of them start.
	var newAlg func() algorithm
	switch p.Algorithm {
	case LeeRichards:
		newAlg = func() algorithm { return newLeeRichards(p.LeeRichardsSlices) }
	case ShrakeRupley:
		pts := SpherePoints(p.ShrakeRupleyPoints)
		newAlg = func() algorithm { return newShrakeRupley(pts) }
	}

	res := &Result{PerAtom: make([]float64, len(atoms))}
	workers := p.Threads
	if workers > len(atoms) {
		workers = len(atoms)
	}

	if workers == 1 {
		calcAtoms(prob, newAlg(), 0, 1, res.PerAtom)
	} else {
		out := make(chan int, workers)
		for id := 0; id < workers; id++ {
			go chanCalcAtoms(id, workers, prob, newAlg(), res.PerAtom, out)
		}
		for i := 0; i < workers; i++ {
			<-out
		}
	}

	// Serial sum in index order, so the total does not depend on Threads.
	for _, a := range res.PerAtom {
		res.Total += a
	}
	return res, nil
}

// calcAtoms computes the area of every atom i with i % workers == worker.
// Each worker writes to a disjoint set of elements of areas.
func calcAtoms(prob *problem, alg algorithm, worker, workers int, areas []float64) {
	for i := worker; i < len(areas); i += workers {
		if prob.nl.Enclosed[i] {
			areas[i] = 0
			continue
		}
		areas[i] = alg.atomArea(prob, i)
	}
}

// chanCalcAtoms is a worker function which runs calcAtoms and then sends its
// ID to the out channel.
func chanCalcAtoms(
	worker, workers int, prob *problem, alg algorithm,
	areas []float64, out chan<- int,
) {
	calcAtoms(prob, alg, worker, workers, areas)
	out <- worker
}

func checkAtoms(atoms []Atom) error {
	if len(atoms) == 0 {
		return fmt.Errorf("%w: no atoms given", ErrInvalidInput)
	}
	for i := range atoms {
		if !atoms[i].Center.Finite() {
			return fmt.Errorf(
				"%w: atom %d has non-finite center %v",
				ErrInvalidInput, i, atoms[i].Center,
			)
		}
		r := atoms[i].Radius
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf(
				"%w: atom %d has radius %g, must be finite and non-negative",
				ErrInvalidInput, i, r,
			)
		}
	}
	return nil
}
