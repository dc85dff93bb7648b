/*package residue reduces per-atom surface areas to per-residue values and
classifies residues by how exposed they are.
*/
package residue

import (
	"fmt"
	"strings"

	"github.com/nobuyasu/gosasa/sasa"
	"github.com/nobuyasu/gosasa/structure"
)

// backbone lists the atom names which are not part of a side chain.
var backbone = map[string]bool{
	"N": true, "CA": true, "C": true, "O": true, "OXT": true,
}

// IsBackbone returns true if the atom name belongs to the protein backbone.
func IsBackbone(name string) bool {
	return backbone[strings.ToUpper(strings.TrimSpace(name))]
}

// Sum adds up the per-atom areas of each group of atom indices.
func Sum(res *sasa.Result, groups [][]int) ([]float64, error) {
	sums := make([]float64, len(groups))
	for g, idxs := range groups {
		for _, i := range idxs {
			if i < 0 || i >= len(res.PerAtom) {
				return nil, fmt.Errorf(
					"%w: group %d refers to atom %d, but the result has %d "+
						"atoms", sasa.ErrInvalidInput, g, i, len(res.PerAtom),
				)
			}
			sums[g] += res.PerAtom[i]
		}
	}
	return sums, nil
}

// Subset returns the total area of the atoms i with mask[i] set. The mask may
// be shorter than the result, in which case the remaining atoms are not
// selected.
func Subset(res *sasa.Result, mask []bool) (float64, error) {
	if len(mask) > len(res.PerAtom) {
		return 0, fmt.Errorf(
			"%w: mask has %d entries, but the result has %d atoms",
			sasa.ErrInvalidInput, len(mask), len(res.PerAtom),
		)
	}
	sum := 0.0
	for i, ok := range mask {
		if ok {
			sum += res.PerAtom[i]
		}
	}
	return sum, nil
}

// ResidueSASA returns the total area of each residue in s.
func ResidueSASA(s *structure.Snapshot, res *sasa.Result) ([]float64, error) {
	if err := checkLen(s, res); err != nil {
		return nil, err
	}
	return Sum(res, s.Residues())
}

// SideChainSASA returns the area of each residue's side chain. Glycine has no
// side chain, so its CA stands in for one. Residues which are not amino acids
// have no side chain and get 0.
func SideChainSASA(s *structure.Snapshot, res *sasa.Result) ([]float64, error) {
	if err := checkLen(s, res); err != nil {
		return nil, err
	}

	residues, keys := s.Residues(), s.ResidueKeys()
	groups := make([][]int, len(residues))
	for r, idxs := range residues {
		if _, ok := OneLetter(keys[r].ResName); !ok {
			continue
		}
		gly := strings.ToUpper(strings.TrimSpace(keys[r].ResName)) == "GLY"
		for _, i := range idxs {
			name := strings.ToUpper(strings.TrimSpace(s.Record(i).Name))
			if (gly && name == "CA") || (!gly && !IsBackbone(name)) {
				groups[r] = append(groups[r], i)
			}
		}
	}
	return Sum(res, groups)
}

func checkLen(s *structure.Snapshot, res *sasa.Result) error {
	if s.Len() != res.Len() {
		return fmt.Errorf(
			"%w: snapshot has %d atoms, but the result has %d",
			sasa.ErrInvalidInput, s.Len(), res.Len(),
		)
	}
	return nil
}
