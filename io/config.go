package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
	"gopkg.in/warnings.v0"

	"github.com/nobuyasu/gosasa/sasa"
)

const (
	ExampleSASAFile = `[SASA]

#######################
# Required Parameters #
#######################

# Atom table to read. Each row is "x y z radius", optionally followed by an
# integer residue number (see ResidueColumn). Coordinates and radii are in
# Angstroms.
Input = path/to/atoms.txt

#######################
# Optional Parameters #
#######################

# File which the results are written to. Per-atom and per-residue areas are
# written after a one line header giving the total. If not set, results are
# written to stdout.
# Output = path/to/sasa.txt

# Algorithm may be set to one of:
# [ LeeRichards | ShrakeRupley ]
# LeeRichards is the default and is usually more accurate at a fixed cost.
# Algorithm = LeeRichards

# Radius of the solvent probe. The default corresponds to water.
# ProbeRadius = 1.4

# Resolution of each algorithm. Slices is the number of slices per atom used
# by LeeRichards and Points is the number of test points per atom used by
# ShrakeRupley. Only the one belonging to the chosen Algorithm is used.
# Slices = 20
# Points = 100

# Number of goroutines the calculation is split over. Results do not depend
# on this value.
# Threads = 1

# Set to true if the fifth column of Input holds residue numbers.
# ResidueColumn = false

# Polar residues with a total area at or below CoreCutoff (in square
# Angstroms) are reported as buried.
# CoreCutoff = 10

# By default unknown variables in this file are ignored. Set Strict to true to
# treat them as errors.
# Strict = false

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SASAConfig struct {
	// Required
	Input string

	// Optional
	Output string

	Algorithm      string
	ProbeRadius    float64
	Slices, Points int
	Threads        int

	ResidueColumn bool
	CoreCutoff    float64

	Strict bool

	LogFile, ProfileFile string
}

type SASAWrapper struct {
	SASA SASAConfig
}

func DefaultSASAWrapper() *SASAWrapper {
	con := SASAConfig{}
	con.Algorithm = sasa.LeeRichards.String()
	con.ProbeRadius = sasa.DefaultProbeRadius
	con.Slices = sasa.DefaultSlices
	con.Points = sasa.DefaultPoints
	con.Threads = sasa.DefaultThreads
	con.CoreCutoff = 10
	return &SASAWrapper{con}
}

// DefaultSASAConfig returns a configuration which uses the default
// calculation parameters and has no input or output files.
func DefaultSASAConfig() *SASAConfig {
	return &DefaultSASAWrapper().SASA
}

func (con *SASAConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SASAConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SASAConfig) ValidAlgorithm() bool {
	_, err := sasa.ParseAlgorithm(con.Algorithm)
	return err == nil
}
func (con *SASAConfig) ValidProbeRadius() bool {
	return con.ProbeRadius > 0
}
func (con *SASAConfig) ValidSlices() bool {
	return con.Slices > 0
}
func (con *SASAConfig) ValidPoints() bool {
	return con.Points > 0
}
func (con *SASAConfig) ValidThreads() bool {
	return con.Threads > 0
}
func (con *SASAConfig) ValidCoreCutoff() bool {
	return con.CoreCutoff >= 0
}
func (con *SASAConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SASAConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// CheckInit checks the calculation options of con. Input and Output are not
// checked, since a configuration can be used without either.
func (con *SASAConfig) CheckInit() error {
	if !con.ValidAlgorithm() {
		return fmt.Errorf(
			"%w: unrecognized 'Algorithm' value '%s', must be one of "+
				"'LeeRichards' or 'ShrakeRupley'",
			sasa.ErrInvalidInput, con.Algorithm,
		)
	} else if !con.ValidProbeRadius() {
		return fmt.Errorf(
			"%w: 'ProbeRadius' must be positive, but is %g",
			sasa.ErrInvalidInput, con.ProbeRadius,
		)
	} else if !con.ValidThreads() {
		return fmt.Errorf(
			"%w: 'Threads' must be positive, but is %d",
			sasa.ErrInvalidInput, con.Threads,
		)
	} else if !con.ValidCoreCutoff() {
		return fmt.Errorf(
			"%w: 'CoreCutoff' must be non-negative, but is %g",
			sasa.ErrInvalidInput, con.CoreCutoff,
		)
	}

	_, err := con.Parameters()
	return err
}

// Parameters converts con into calculation parameters.
func (con *SASAConfig) Parameters() (sasa.Parameters, error) {
	alg, err := sasa.ParseAlgorithm(con.Algorithm)
	if err != nil {
		return sasa.Parameters{}, err
	}

	p := sasa.Parameters{
		Algorithm:          alg,
		ProbeRadius:        con.ProbeRadius,
		LeeRichardsSlices:  con.Slices,
		ShrakeRupleyPoints: con.Points,
		Threads:            con.Threads,
	}
	if err := p.Check(); err != nil {
		return sasa.Parameters{}, err
	}
	return p, nil
}

// ReadSASAConfig reads and checks the [SASA] section of a config file.
func ReadSASAConfig(fname string) (*SASAConfig, error) {
	wrap := DefaultSASAWrapper()
	err := gcfg.ReadFileInto(wrap, fname)
	return checkRead(wrap, err, fname)
}

// ReadSASAConfigString is ReadSASAConfig for a config held in memory.
func ReadSASAConfigString(str string) (*SASAConfig, error) {
	wrap := DefaultSASAWrapper()
	err := gcfg.ReadStringInto(wrap, str)
	return checkRead(wrap, err, "config string")
}

func checkRead(wrap *SASAWrapper, err error, name string) (*SASAConfig, error) {
	con := &wrap.SASA
	if !con.Strict {
		err = warnings.FatalOnly(err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse %s: %v",
			sasa.ErrInvalidInput, name, err)
	}

	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}
