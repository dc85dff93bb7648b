/*package structure converts caller atom lists into the immutable input used by
the sasa engine and keeps the bookkeeping needed to map results back onto
atoms and residues.
*/
package structure

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/nobuyasu/gosasa/geom"
	"github.com/nobuyasu/gosasa/sasa"
)

// Record is a single atom as supplied by the caller.
type Record struct {
	Name, ResName, ResSeq, Chain, Element string
	X, Y, Z                               float64
	// Radius is the van der Waals radius. If it is zero and the record has a
	// name or element, the Builder's Classifier supplies it.
	Radius float64
	// Virtual atoms are placeholders which have no physical extent.
	Virtual bool
}

// Hydrogen returns true if rec is a hydrogen (or deuterium) atom.
func (rec *Record) Hydrogen() bool {
	el := strings.ToUpper(strings.TrimSpace(rec.Element))
	if el != "" {
		return el == "H" || el == "D"
	}
	return IsHydrogen(rec.Name)
}

// ResidueKey identifies a residue.
type ResidueKey struct {
	Chain, ResSeq, ResName string
}

func (key ResidueKey) String() string {
	return fmt.Sprintf("%s %s %s", key.Chain, key.ResName, key.ResSeq)
}

// Snapshot is an immutable, ordered set of atoms ready for a surface area
// calculation. Atom i of the snapshot corresponds to element i of a
// sasa.Result computed from Atoms().
type Snapshot struct {
	atoms    []sasa.Atom
	records  []Record
	residues [][]int
	keys     []ResidueKey
}

// Len returns the number of atoms in the snapshot.
func (s *Snapshot) Len() int { return len(s.atoms) }

// Atoms returns a copy of the snapshot's atoms.
func (s *Snapshot) Atoms() []sasa.Atom {
	out := make([]sasa.Atom, len(s.atoms))
	copy(out, s.atoms)
	return out
}

// Record returns the record which atom i was built from.
func (s *Snapshot) Record(i int) Record { return s.records[i] }

// Residues returns the atom indices of each residue, in residue order.
func (s *Snapshot) Residues() [][]int {
	out := make([][]int, len(s.residues))
	for i := range s.residues {
		out[i] = append([]int(nil), s.residues[i]...)
	}
	return out
}

// ResidueKeys returns the identity of each residue, in the same order as
// Residues.
func (s *Snapshot) ResidueKeys() []ResidueKey {
	return append([]ResidueKey(nil), s.keys...)
}

// Centers returns the atom centers.
func (s *Snapshot) Centers() []geom.Vec {
	out := make([]geom.Vec, len(s.atoms))
	for i := range s.atoms {
		out[i] = s.atoms[i].Center
	}
	return out
}

// Transform returns a copy of s with every atom moved by x -> m*x + shift.
func (s *Snapshot) Transform(m mat.Matrix, shift geom.Vec) *Snapshot {
	centers := geom.Transform(s.Centers(), m, shift)

	out := &Snapshot{
		atoms:    make([]sasa.Atom, len(s.atoms)),
		records:  make([]Record, len(s.records)),
		residues: s.Residues(),
		keys:     s.ResidueKeys(),
	}
	copy(out.records, s.records)
	for i := range centers {
		out.atoms[i] = sasa.Atom{Center: centers[i], Radius: s.atoms[i].Radius}
		out.records[i].X = centers[i][0]
		out.records[i].Y = centers[i][1]
		out.records[i].Z = centers[i][2]
	}
	return out
}

// Builder turns records into Snapshots.
type Builder struct {
	// SkipHydrogens drops hydrogen atoms.
	SkipHydrogens bool
	// SkipVirtual drops virtual atoms.
	SkipVirtual bool
	Classifier  Classifier
}

// NewBuilder returns a Builder which skips hydrogens and virtual atoms and
// assigns missing radii by element.
func NewBuilder() *Builder {
	return &Builder{
		SkipHydrogens: true,
		SkipVirtual:   true,
		Classifier:    DefaultElementClassifier(),
	}
}

// Build creates a Snapshot from recs. Records are kept in order, minus any
// skipped ones. Consecutive records with the same chain, residue number and
// residue name form a residue.
func (b *Builder) Build(recs []Record) (*Snapshot, error) {
	s := &Snapshot{}

	for i := range recs {
		rec := recs[i]
		if b.SkipVirtual && rec.Virtual {
			continue
		}
		if b.SkipHydrogens && rec.Hydrogen() {
			continue
		}

		if math.IsNaN(rec.Radius) || rec.Radius < 0 {
			return nil, fmt.Errorf(
				"%w: record %d ('%s') has radius %g",
				sasa.ErrInvalidInput, i, rec.Name, rec.Radius,
			)
		}
		if rec.Radius == 0 && (rec.Name != "" || rec.Element != "") {
			if b.Classifier == nil {
				return nil, fmt.Errorf(
					"%w: record %d ('%s') has no radius and no classifier "+
						"was given", sasa.ErrInvalidInput, i, rec.Name,
				)
			}
			r, err := b.Classifier.Radius(&rec)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			rec.Radius = r
		}

		idx := len(s.atoms)
		s.atoms = append(s.atoms, sasa.Atom{
			Center: geom.Vec{rec.X, rec.Y, rec.Z}, Radius: rec.Radius,
		})
		s.records = append(s.records, rec)

		key := ResidueKey{rec.Chain, rec.ResSeq, rec.ResName}
		if len(s.keys) == 0 || s.keys[len(s.keys)-1] != key {
			s.keys = append(s.keys, key)
			s.residues = append(s.residues, nil)
		}
		last := len(s.residues) - 1
		s.residues[last] = append(s.residues[last], idx)
	}

	if len(s.atoms) == 0 {
		return nil, fmt.Errorf(
			"%w: none of the %d records could be used",
			sasa.ErrInvalidInput, len(recs),
		)
	}
	return s, nil
}
