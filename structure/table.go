package structure

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/nobuyasu/gosasa/sasa"
)

// ReadTable reads atoms from a whitespace-separated text table with the
// columns
//
//     x y z radius [residue]
//
// If residueCol is true the fifth column holds an integer residue number which
// is used to group atoms into residues; otherwise every atom is in residue 0.
func ReadTable(fname string, residueCol bool) (*Snapshot, error) {
	colIdxs := []int{0, 1, 2, 3}
	if residueCol {
		colIdxs = append(colIdxs, 4)
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs, rs := cols[0], cols[1], cols[2], cols[3]
	recs := make([]Record, len(xs))
	for i := range recs {
		recs[i] = Record{X: xs[i], Y: ys[i], Z: zs[i], Radius: rs[i]}
		recs[i].ResSeq = "0"
		if residueCol {
			res := cols[4][i]
			if res != math.Trunc(res) {
				return nil, fmt.Errorf(
					"%w: residue number %g on row %d of %s is not an integer",
					sasa.ErrInvalidInput, res, i, fname,
				)
			}
			recs[i].ResSeq = fmt.Sprintf("%d", int(res))
		}
	}

	b := &Builder{}
	return b.Build(recs)
}

// FromAtoms builds a snapshot out of bare spheres, with every atom in its own
// residue.
func FromAtoms(atoms []sasa.Atom) (*Snapshot, error) {
	return NewBuilder().Build(RecordsFromAtoms(atoms))
}

// RecordsFromAtoms wraps bare spheres as records so that they can be passed
// through a Builder. Every atom is placed in its own residue.
func RecordsFromAtoms(atoms []sasa.Atom) []Record {
	recs := make([]Record, len(atoms))
	for i, at := range atoms {
		recs[i] = Record{
			ResSeq: fmt.Sprintf("%d", i+1),
			X:      at.Center[0], Y: at.Center[1], Z: at.Center[2],
			Radius: at.Radius,
		}
	}
	return recs
}
