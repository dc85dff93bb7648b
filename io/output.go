package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nobuyasu/gosasa/residue"
	"github.com/nobuyasu/gosasa/sasa"
	"github.com/nobuyasu/gosasa/structure"
)

// ResultHeader describes how a result was computed.
type ResultHeader struct {
	Input      string
	Params     sasa.Parameters
	CoreCutoff float64
	Total      float64
	Atoms      int
	Residues   int
}

// Resolution returns the resolution parameter of the header's algorithm.
func (hd *ResultHeader) Resolution() int {
	if hd.Params.Algorithm == sasa.ShrakeRupley {
		return hd.Params.ShrakeRupleyPoints
	}
	return hd.Params.LeeRichardsSlices
}

// ResidueFlags are the classification labels written next to residue areas.
const (
	FlagNone               = "-"
	FlagExposedHydrophobic = "exposed-hydrophobic"
	FlagBuriedPolar        = "buried-polar"
)

// WriteResult writes a text report of res to w. The first line gives the
// total area. It is followed by one line per atom and one line per residue.
func WriteResult(
	w io.Writer, hd *ResultHeader, s *structure.Snapshot, res *sasa.Result,
) error {
	resAreas, err := residue.ResidueSASA(s, res)
	if err != nil {
		return err
	}
	sideAreas, err := residue.SideChainSASA(s, res)
	if err != nil {
		return err
	}
	flags, err := residueFlags(s, res, hd.CoreCutoff)
	if err != nil {
		return err
	}

	hd.Total, hd.Atoms, hd.Residues = res.Total, res.Len(), len(resAreas)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Total SASA: %.4f\n", hd.Total)
	fmt.Fprintf(bw, "# Input: %s\n", hd.Input)
	fmt.Fprintf(bw, "# Algorithm: %v, Resolution: %d, ProbeRadius: %g\n",
		hd.Params.Algorithm, hd.Resolution(), hd.Params.ProbeRadius)

	fmt.Fprintf(bw, "# %d atoms\n", hd.Atoms)
	fmt.Fprintln(bw, "# index sasa")
	for i, area := range res.PerAtom {
		fmt.Fprintf(bw, "%d %.4f\n", i, area)
	}

	fmt.Fprintf(bw, "# %d residues\n", hd.Residues)
	fmt.Fprintln(bw, "# chain resname resseq sasa side-chain-sasa flag")
	for r, key := range s.ResidueKeys() {
		chain := key.Chain
		if chain == "" {
			chain = "-"
		}
		name := key.ResName
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(bw, "%s %s %s %.4f %.4f %s\n", chain, name, key.ResSeq,
			resAreas[r], sideAreas[r], flags[r])
	}

	return bw.Flush()
}

// WriteResultFile writes the report of res to the named file, or to stdout
// if fname is empty.
func WriteResultFile(
	fname string, hd *ResultHeader, s *structure.Snapshot, res *sasa.Result,
) error {
	if fname == "" {
		return WriteResult(os.Stdout, hd, s, res)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WriteResult(f, hd, s, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func residueFlags(
	s *structure.Snapshot, res *sasa.Result, coreCutoff float64,
) ([]string, error) {
	flags := make([]string, len(s.ResidueKeys()))
	for i := range flags {
		flags[i] = FlagNone
	}

	exposed, err := residue.ExposedHydrophobics(s, res)
	if err != nil {
		return nil, err
	}
	for _, e := range exposed {
		flags[e.Index] = FlagExposedHydrophobic
	}

	polars, err := residue.Polars(s, res, coreCutoff)
	if err != nil {
		return nil, err
	}
	for _, p := range polars {
		if p.Burial == residue.Core {
			flags[p.Index] = FlagBuriedPolar
		}
	}

	return flags, nil
}

// SweepRow is one resolution of a resolution sweep.
type SweepRow struct {
	Algorithm  sasa.Algorithm
	Resolution int
	Total      float64
}

// WriteSweep writes a resolution sweep table to w. If the sweep contains both
// algorithms, the relative difference between the finest Lee-Richards and the
// finest Shrake-Rupley total is written last.
func WriteSweep(w io.Writer, rows []SweepRow) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# algorithm resolution total")

	var lr, sr *SweepRow
	for i := range rows {
		row := &rows[i]
		fmt.Fprintf(bw, "%v %d %.4f\n", row.Algorithm, row.Resolution, row.Total)

		switch row.Algorithm {
		case sasa.LeeRichards:
			if lr == nil || row.Resolution > lr.Resolution {
				lr = row
			}
		case sasa.ShrakeRupley:
			if sr == nil || row.Resolution > sr.Resolution {
				sr = row
			}
		}
	}

	if lr != nil && sr != nil {
		fmt.Fprintf(bw, "# LeeRichards(%d) - ShrakeRupley(%d): %.4f",
			lr.Resolution, sr.Resolution, lr.Total-sr.Total)
		// A structure whose atoms are all enclosed has no area at all.
		if sr.Total != 0 {
			diff := (lr.Total - sr.Total) / sr.Total
			fmt.Fprintf(bw, " (%.2f%%)", 100*diff)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
