/*package gosasa computes solvent-accessible surface areas of atomic
structures.

Method bundles a calculation configuration and applies it to structure
snapshots. The algorithms themselves live in the sasa package.
*/
package gosasa

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/nobuyasu/gosasa/io"
	"github.com/nobuyasu/gosasa/residue"
	"github.com/nobuyasu/gosasa/sasa"
	"github.com/nobuyasu/gosasa/structure"
)

// ErrUnknownAlgorithm is returned when a Method is asked to use an algorithm
// it doesn't know. It wraps sasa.ErrInvalidInput.
var ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", sasa.ErrInvalidInput)

var (
	DefaultSweepSlices = []int{10, 20, 30, 40}
	DefaultSweepPoints = []int{100}
)

// Method is a configured surface area calculation. The zero value is not
// usable; create Methods with NewMethod.
type Method struct {
	p          sasa.Parameters
	coreCutoff float64
	log        bool
}

// NewMethod creates a Method from a configuration. A nil config gives the
// default parameters.
func NewMethod(c *io.SASAConfig) (*Method, error) {
	if c == nil {
		c = io.DefaultSASAConfig()
	}

	if !c.ValidAlgorithm() {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownAlgorithm, c.Algorithm)
	} else if err := c.CheckInit(); err != nil {
		return nil, err
	}

	p, err := c.Parameters()
	if err != nil {
		return nil, err
	}
	return &Method{p: p, coreCutoff: c.CoreCutoff}, nil
}

// Log turns progress logging on or off.
func (m *Method) Log(flag bool) { m.log = flag }

// Clone returns an independent copy of m.
func (m *Method) Clone() *Method {
	m2 := *m
	return &m2
}

// Parameters returns the parameters m passes to sasa.Calculate.
func (m *Method) Parameters() sasa.Parameters { return m.p }

func (m *Method) ProbeRadius() float64 { return m.p.ProbeRadius }
func (m *Method) Algorithm() sasa.Algorithm { return m.p.Algorithm }
func (m *Method) Slices() int { return m.p.LeeRichardsSlices }
func (m *Method) Points() int { return m.p.ShrakeRupleyPoints }
func (m *Method) Threads() int { return m.p.Threads }
func (m *Method) CoreCutoff() float64 { return m.coreCutoff }

func (m *Method) SetProbeRadius(r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return fmt.Errorf(
			"%w: probe radius must be positive and finite, but is %g",
			sasa.ErrInvalidInput, r,
		)
	}
	m.p.ProbeRadius = r
	return nil
}

// SetAlgorithm selects the algorithm by name, e.g. "LeeRichards".
func (m *Method) SetAlgorithm(name string) error {
	alg, err := sasa.ParseAlgorithm(name)
	if err != nil {
		return fmt.Errorf("%w '%s'", ErrUnknownAlgorithm, name)
	}
	m.p.Algorithm = alg
	return nil
}

func (m *Method) SetSlices(n int) error {
	if n < 1 {
		return fmt.Errorf(
			"%w: need at least one slice, but given %d", sasa.ErrInvalidInput, n,
		)
	}
	m.p.LeeRichardsSlices = n
	return nil
}

func (m *Method) SetPoints(n int) error {
	if n < 1 {
		return fmt.Errorf(
			"%w: need at least one point, but given %d", sasa.ErrInvalidInput, n,
		)
	}
	m.p.ShrakeRupleyPoints = n
	return nil
}

func (m *Method) SetThreads(n int) error {
	if n < 1 {
		return fmt.Errorf(
			"%w: thread count must be positive, but is %d",
			sasa.ErrInvalidInput, n,
		)
	}
	m.p.Threads = n
	return nil
}

func (m *Method) SetCoreCutoff(area float64) error {
	if !(area >= 0) {
		return fmt.Errorf(
			"%w: core cutoff must be non-negative, but is %g",
			sasa.ErrInvalidInput, area,
		)
	}
	m.coreCutoff = area
	return nil
}

// Result runs the calculation on s and returns the full result.
func (m *Method) Result(s *structure.Snapshot) (*sasa.Result, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", sasa.ErrInvalidInput)
	}

	t0 := time.Now()
	res, err := sasa.Calculate(s.Atoms(), m.p)
	if err != nil {
		return nil, err
	}
	if m.log {
		log.Printf(
			"Computed SASA of %d atoms with %v (resolution %d) on %d "+
				"threads in %s: %.4f", s.Len(), m.p.Algorithm,
			m.resolution(m.p.Algorithm), m.p.Threads, time.Since(t0),
			res.Total,
		)
	}
	return res, nil
}

// Calculate returns the total surface area of s.
func (m *Method) Calculate(s *structure.Snapshot) (float64, error) {
	res, err := m.Result(s)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

// CalculateAtoms returns the full result for a set of bare spheres.
func (m *Method) CalculateAtoms(atoms []sasa.Atom) (*sasa.Result, error) {
	s, err := structure.FromAtoms(atoms)
	if err != nil {
		return nil, err
	}
	return m.Result(s)
}

// AtomSASA returns the surface area of each atom in s.
func (m *Method) AtomSASA(s *structure.Snapshot) ([]float64, error) {
	res, err := m.Result(s)
	if err != nil {
		return nil, err
	}
	return res.PerAtom, nil
}

// ResidueSASA returns the surface area of each residue in s.
func (m *Method) ResidueSASA(s *structure.Snapshot) ([]float64, error) {
	res, err := m.Result(s)
	if err != nil {
		return nil, err
	}
	return residue.ResidueSASA(s, res)
}

// CalculateAtomSubset returns the total area of the atoms selected by mask.
// Unselected atoms still occlude the selected ones.
func (m *Method) CalculateAtomSubset(
	s *structure.Snapshot, mask []bool,
) (float64, error) {
	if s != nil && len(mask) != s.Len() {
		return 0, fmt.Errorf(
			"%w: mask has %d entries, but the snapshot has %d atoms",
			sasa.ErrInvalidInput, len(mask), s.Len(),
		)
	}
	res, err := m.Result(s)
	if err != nil {
		return 0, err
	}
	return residue.Subset(res, mask)
}

// ExposedHydrophobics returns the hydrophobic residues of s with exposed side
// chains.
func (m *Method) ExposedHydrophobics(
	s *structure.Snapshot,
) ([]residue.Exposure, error) {
	res, err := m.Result(s)
	if err != nil {
		return nil, err
	}
	return residue.ExposedHydrophobics(s, res)
}

// Polars classifies every polar residue of s as Core or Surface using the
// Method's core cutoff.
func (m *Method) Polars(s *structure.Snapshot) ([]residue.Polar, error) {
	res, err := m.Result(s)
	if err != nil {
		return nil, err
	}
	return residue.Polars(s, res, m.coreCutoff)
}

// BuriedPolars returns the polar residues of s which are buried below the
// Method's core cutoff.
func (m *Method) BuriedPolars(
	s *structure.Snapshot,
) ([]residue.Polar, error) {
	res, err := m.Result(s)
	if err != nil {
		return nil, err
	}
	return residue.BuriedPolars(s, res, m.coreCutoff)
}

// Sweep computes the total area of s with Lee-Richards at each slice count
// and with Shrake-Rupley at each point count. All other parameters are taken
// from m.
func (m *Method) Sweep(
	s *structure.Snapshot, slices, points []int,
) ([]io.SweepRow, error) {
	rows := []io.SweepRow{}
	run := func(alg sasa.Algorithm, res []int) error {
		for _, n := range res {
			m2 := m.Clone()
			m2.p.Algorithm = alg
			var err error
			if alg == sasa.LeeRichards {
				err = m2.SetSlices(n)
			} else {
				err = m2.SetPoints(n)
			}
			if err != nil {
				return err
			}

			total, err := m2.Calculate(s)
			if err != nil {
				return err
			}
			rows = append(rows, io.SweepRow{
				Algorithm: alg, Resolution: n, Total: total,
			})
		}
		return nil
	}

	if err := run(sasa.LeeRichards, slices); err != nil {
		return nil, err
	}
	if err := run(sasa.ShrakeRupley, points); err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *Method) resolution(alg sasa.Algorithm) int {
	if alg == sasa.ShrakeRupley {
		return m.p.ShrakeRupleyPoints
	}
	return m.p.LeeRichardsSlices
}
