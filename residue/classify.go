package residue

import (
	"strings"

	"github.com/nobuyasu/gosasa/sasa"
	"github.com/nobuyasu/gosasa/structure"
)

// DefaultCoreCutoff is the residue area, in square Angstroms, at or below
// which a residue is considered to be in the core.
const DefaultCoreCutoff = 10.0

var oneLetter = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"MSE": 'M',
}

// OneLetter returns the one letter code of an amino acid residue name and
// false if the residue is not an amino acid.
func OneLetter(resName string) (byte, bool) {
	c, ok := oneLetter[strings.ToUpper(strings.TrimSpace(resName))]
	return c, ok
}

// HydrophobicThresholds gives, for each hydrophobic amino acid, the side chain
// area above which the residue counts as exposed.
var HydrophobicThresholds = map[byte]float64{
	'V': 30, 'I': 35, 'L': 35, 'F': 40, 'M': 40, 'Y': 40, 'W': 70,
}

const polarAAs = "DEKRHNQST"

// Burial is a coarse classification of a residue's environment.
type Burial int

const (
	Core Burial = iota
	Surface
)

func (b Burial) String() string {
	if b == Core {
		return "Core"
	}
	return "Surface"
}

// Replacements returns the amino acids a buried polar residue is usually
// redesigned to in the given environment.
func (b Burial) Replacements() string {
	if b == Core {
		return "AVILM"
	}
	return "ERK"
}

// Exposure is the per-residue outcome of a classification.
type Exposure struct {
	Residue  structure.ResidueKey
	Index    int
	Code     byte
	Area     float64
	SideArea float64
}

// ExposedHydrophobics returns the hydrophobic residues whose side chain area
// is above the threshold for their type.
func ExposedHydrophobics(
	s *structure.Snapshot, res *sasa.Result,
) ([]Exposure, error) {
	exps, err := exposures(s, res)
	if err != nil {
		return nil, err
	}

	out := []Exposure{}
	for _, e := range exps {
		threshold, ok := HydrophobicThresholds[e.Code]
		if ok && e.SideArea > threshold {
			out = append(out, e)
		}
	}
	return out, nil
}

// Polar is a polar residue and the environment it was found in.
type Polar struct {
	Exposure
	Burial Burial
}

// Polars returns every polar residue in s, classified as Core if its total
// area is at or below coreCutoff and as Surface otherwise.
func Polars(
	s *structure.Snapshot, res *sasa.Result, coreCutoff float64,
) ([]Polar, error) {
	exps, err := exposures(s, res)
	if err != nil {
		return nil, err
	}

	out := []Polar{}
	for _, e := range exps {
		if strings.IndexByte(polarAAs, e.Code) == -1 {
			continue
		}
		out = append(out, Polar{e, Classify(e.Area, coreCutoff)})
	}
	return out, nil
}

// BuriedPolars returns the Core entries of Polars.
func BuriedPolars(
	s *structure.Snapshot, res *sasa.Result, coreCutoff float64,
) ([]Polar, error) {
	polars, err := Polars(s, res, coreCutoff)
	if err != nil {
		return nil, err
	}

	out := []Polar{}
	for _, p := range polars {
		if p.Burial == Core {
			out = append(out, p)
		}
	}
	return out, nil
}

// Classify returns Core if area is at or below coreCutoff and Surface
// otherwise.
func Classify(area, coreCutoff float64) Burial {
	if area <= coreCutoff {
		return Core
	}
	return Surface
}

// exposures returns per-residue areas for every amino acid residue in s.
func exposures(s *structure.Snapshot, res *sasa.Result) ([]Exposure, error) {
	areas, err := ResidueSASA(s, res)
	if err != nil {
		return nil, err
	}
	sides, err := SideChainSASA(s, res)
	if err != nil {
		return nil, err
	}

	out := []Exposure{}
	for r, key := range s.ResidueKeys() {
		code, ok := OneLetter(key.ResName)
		if !ok {
			continue
		}
		out = append(out, Exposure{
			Residue: key, Index: r, Code: code,
			Area: areas[r], SideArea: sides[r],
		})
	}
	return out, nil
}
