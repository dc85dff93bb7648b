package structure

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nobuyasu/gosasa/sasa"
)

// ErrUnknownElement is returned when no radius is known for an atom's
// element. It wraps sasa.ErrInvalidInput.
var ErrUnknownElement = fmt.Errorf("%w: unknown element", sasa.ErrInvalidInput)

// Classifier assigns van der Waals radii to atoms.
type Classifier interface {
	Radius(rec *Record) (float64, error)
}

// vdwRadii are van der Waals radii in Angstroms of common bio-elements,
// from Bondi (1964) and Alvarez (2013). Keys are upper case.
var vdwRadii = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"P":  1.80,
	"S":  1.80,
	"SE": 1.90,
	"K":  2.75,
	"CA": 2.31,
	"MG": 1.73,
	"CL": 1.75,
	"NA": 2.27,
	"CU": 2.00,
	"ZN": 2.02,
	"CO": 1.95,
	"FE": 1.96,
	"MN": 1.96,
	"CR": 1.97,
	"SI": 2.10,
	"BE": 1.53,
	"F":  1.47,
	"BR": 1.83,
	"I":  1.98,
}

// ElementClassifier looks radii up by element symbol.
type ElementClassifier struct {
	Radii map[string]float64
}

// DefaultElementClassifier returns an ElementClassifier using the built-in
// radius table.
func DefaultElementClassifier() *ElementClassifier {
	radii := make(map[string]float64, len(vdwRadii))
	for el, r := range vdwRadii {
		radii[el] = r
	}
	return &ElementClassifier{Radii: radii}
}

// Radius returns the radius of rec's element. If rec.Element is empty, the
// element is guessed from the atom name.
func (ec *ElementClassifier) Radius(rec *Record) (float64, error) {
	el := strings.ToUpper(strings.TrimSpace(rec.Element))
	if el == "" {
		el = GuessElement(rec.Name, rec.ResName)
	}
	r, ok := ec.Radii[el]
	if !ok {
		return 0, fmt.Errorf(
			"%w '%s' for atom '%s' in residue %s %s",
			ErrUnknownElement, el, rec.Name, rec.ResName, rec.ResSeq,
		)
	}
	return r, nil
}

// GuessElement guesses an element symbol from a PDB-style atom name. Names of
// single-atom residues whose name is also a two letter element (ZN, FE, ...)
// are taken to be that element. Otherwise the first letter of the name is
// used, skipping leading digits as in "1HG2".
func GuessElement(name, resName string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	resName = strings.ToUpper(strings.TrimSpace(resName))

	if len(name) == 2 && name == resName {
		if _, ok := vdwRadii[name]; ok {
			return name
		}
	}

	for _, c := range name {
		if unicode.IsLetter(c) {
			return string(c)
		}
	}
	return ""
}

// IsHydrogen returns true for atom names of hydrogens, which start with H or
// with a digit followed by H.
func IsHydrogen(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return false
	}
	if name[0] == 'H' {
		return true
	}
	return len(name) > 1 && name[0] >= '1' && name[0] <= '9' && name[1] == 'H'
}
