package sasa

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidInput is wrapped by every error caused by malformed atoms or
	// parameters.
	ErrInvalidInput = errors.New("sasa: invalid input")
	// ErrAllocation is wrapped by errors caused by the engine being unable to
	// build its internal buffers.
	ErrAllocation = errors.New("sasa: allocation failure")
)

// Algorithm selects the method used to compute surface areas.
type Algorithm int

const (
	LeeRichards Algorithm = iota
	ShrakeRupley
)

const (
	DefaultProbeRadius = 1.4
	DefaultSlices      = 20
	DefaultPoints      = 100
	DefaultThreads     = 1
)

var algorithmNames = map[Algorithm]string{
	LeeRichards:  "LeeRichards",
	ShrakeRupley: "ShrakeRupley",
}

func (alg Algorithm) String() string {
	if name, ok := algorithmNames[alg]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(alg))
}

// Valid returns true if alg is one of the supported algorithms.
func (alg Algorithm) Valid() bool {
	_, ok := algorithmNames[alg]
	return ok
}

// ParseAlgorithm converts an algorithm name into an Algorithm. Matching
// ignores case and the punctuation commonly used in the names, so
// "LeeRichards", "lee-richards" and "lee_richards" are all accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for alg, algName := range algorithmNames {
		if strings.ToLower(algName) == key {
			return alg, nil
		}
	}
	return 0, fmt.Errorf(
		"%w: unrecognized algorithm '%s', must be one of "+
			"'LeeRichards' or 'ShrakeRupley'", ErrInvalidInput, name,
	)
}

// Parameters configures a single calculation.
type Parameters struct {
	Algorithm   Algorithm
	ProbeRadius float64

	// Number of slices per atom used by LeeRichards.
	LeeRichardsSlices int
	// Number of test points per atom used by ShrakeRupley.
	ShrakeRupleyPoints int

	Threads int
}

// DefaultParameters returns the parameters used when nothing else is
// specified: Lee-Richards with 20 slices and a 1.4 Angstrom probe on a single
// thread.
func DefaultParameters() Parameters {
	return Parameters{
		Algorithm:          LeeRichards,
		ProbeRadius:        DefaultProbeRadius,
		LeeRichardsSlices:  DefaultSlices,
		ShrakeRupleyPoints: DefaultPoints,
		Threads:            DefaultThreads,
	}
}

// Check returns an error wrapping ErrInvalidInput if p cannot be used for a
// calculation. Only the resolution parameter of the selected algorithm is
// checked.
func (p Parameters) Check() error {
	if !p.Algorithm.Valid() {
		return fmt.Errorf("%w: unknown algorithm %v", ErrInvalidInput, p.Algorithm)
	}
	if !(p.ProbeRadius > 0) || math.IsInf(p.ProbeRadius, 0) {
		return fmt.Errorf(
			"%w: probe radius must be positive and finite, but is %g",
			ErrInvalidInput, p.ProbeRadius,
		)
	}

	switch p.Algorithm {
	case LeeRichards:
		if p.LeeRichardsSlices < 1 {
			return fmt.Errorf(
				"%w: need at least one Lee-Richards slice, but given %d",
				ErrInvalidInput, p.LeeRichardsSlices,
			)
		}
	case ShrakeRupley:
		if p.ShrakeRupleyPoints < 1 {
			return fmt.Errorf(
				"%w: need at least one Shrake-Rupley point, but given %d",
				ErrInvalidInput, p.ShrakeRupleyPoints,
			)
		}
	}

	if p.Threads < 1 {
		return fmt.Errorf(
			"%w: thread count must be positive, but is %d",
			ErrInvalidInput, p.Threads,
		)
	}
	return nil
}
