package residue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobuyasu/gosasa/sasa"
	"github.com/nobuyasu/gosasa/structure"
)

func rec(name, resName, resSeq string, radius float64) structure.Record {
	return structure.Record{
		Name: name, ResName: resName, ResSeq: resSeq, Chain: "A",
		Radius: radius,
	}
}

// snapshot builds a four residue snapshot. Areas are supplied directly as a
// fake result, so coordinates don't matter.
func snapshot(t *testing.T) *structure.Snapshot {
	recs := []structure.Record{
		rec("N", "LEU", "1", 1.55), rec("CA", "LEU", "1", 1.7),
		rec("C", "LEU", "1", 1.7), rec("O", "LEU", "1", 1.52),
		rec("CB", "LEU", "1", 1.7), rec("CG", "LEU", "1", 1.7),

		rec("N", "GLY", "2", 1.55), rec("CA", "GLY", "2", 1.7),
		rec("C", "GLY", "2", 1.7), rec("O", "GLY", "2", 1.52),

		rec("N", "SER", "3", 1.55), rec("CA", "SER", "3", 1.7),
		rec("C", "SER", "3", 1.7), rec("O", "SER", "3", 1.52),
		rec("CB", "SER", "3", 1.7), rec("OG", "SER", "3", 1.52),
		rec("OXT", "SER", "3", 1.52),

		rec("ZN", "ZN", "4", 2.02),
	}
	for i := range recs {
		recs[i].X = float64(i) * 5
	}
	s, err := structure.NewBuilder().Build(recs)
	require.NoError(t, err)
	return s
}

func fakeResult(areas ...float64) *sasa.Result {
	res := &sasa.Result{PerAtom: areas}
	for _, a := range areas {
		res.Total += a
	}
	return res
}

var areas = []float64{
	1, 2, 3, 4, 20, 30, // LEU: side chain 50
	1, 5, 1, 1, // GLY: CA 5
	1, 1, 1, 1, 1, 1, 1, // SER: 7 total
	40, // ZN
}

func TestSum(t *testing.T) {
	res := fakeResult(1, 2, 3, 4)
	sums, err := Sum(res, [][]int{{0, 1}, {3}, {}})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 0}, sums)

	_, err = Sum(res, [][]int{{0, 4}})
	assert.True(t, errors.Is(err, sasa.ErrInvalidInput))
	_, err = Sum(res, [][]int{{-1}})
	assert.True(t, errors.Is(err, sasa.ErrInvalidInput))
}

func TestSubset(t *testing.T) {
	res := fakeResult(1, 2, 3, 4)
	sum, err := Subset(res, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, 4.0, sum)

	_, err = Subset(res, make([]bool, 5))
	assert.True(t, errors.Is(err, sasa.ErrInvalidInput))
}

func TestAreas(t *testing.T) {
	s := snapshot(t)
	res := fakeResult(areas...)

	total, err := ResidueSASA(s, res)
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 8, 7, 40}, total)

	side, err := SideChainSASA(s, res)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 5, 2, 0}, side)

	_, err = ResidueSASA(s, fakeResult(1, 2))
	assert.True(t, errors.Is(err, sasa.ErrInvalidInput))
}

func TestExposedHydrophobics(t *testing.T) {
	s := snapshot(t)

	exps, err := ExposedHydrophobics(s, fakeResult(areas...))
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, byte('L'), exps[0].Code)
	assert.Equal(t, 0, exps[0].Index)
	assert.Equal(t, 50.0, exps[0].SideArea)

	// Leucine at the threshold is not exposed.
	buried := append([]float64(nil), areas...)
	buried[4], buried[5] = 15, 20
	exps, err = ExposedHydrophobics(s, fakeResult(buried...))
	require.NoError(t, err)
	assert.Empty(t, exps)
}

func TestBuriedPolars(t *testing.T) {
	s := snapshot(t)

	bps, err := BuriedPolars(s, fakeResult(areas...), DefaultCoreCutoff)
	require.NoError(t, err)
	require.Len(t, bps, 1)
	assert.Equal(t, byte('S'), bps[0].Code)
	assert.Equal(t, Core, bps[0].Burial)
	assert.Equal(t, "AVILM", bps[0].Burial.Replacements())
	assert.Equal(t, "A SER 3", bps[0].Residue.String())

	bps, err = BuriedPolars(s, fakeResult(areas...), 5)
	require.NoError(t, err)
	assert.Empty(t, bps)
}

func TestPolars(t *testing.T) {
	s := snapshot(t)

	table := []struct {
		cutoff float64
		burial Burial
		repl   string
	}{
		{DefaultCoreCutoff, Core, "AVILM"},
		{7, Core, "AVILM"},
		{6.9, Surface, "ERK"},
		{0, Surface, "ERK"},
	}

	for i, test := range table {
		ps, err := Polars(s, fakeResult(areas...), test.cutoff)
		require.NoError(t, err)
		if len(ps) != 1 {
			t.Errorf("%d) expected one polar residue, got %d", i, len(ps))
			continue
		}
		if ps[0].Code != 'S' || ps[0].Index != 2 {
			t.Errorf("%d) expected SER at 2, got %c at %d",
				i, ps[0].Code, ps[0].Index)
		}
		if ps[0].Burial != test.burial {
			t.Errorf("%d) expected %s, got %s", i, test.burial, ps[0].Burial)
		}
		if r := ps[0].Burial.Replacements(); r != test.repl {
			t.Errorf("%d) expected replacements %s, got %s", i, test.repl, r)
		}
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Core, Classify(10, 10))
	assert.Equal(t, Surface, Classify(10.5, 10))
	assert.Equal(t, "Surface", Surface.String())
	assert.Equal(t, "ERK", Surface.Replacements())

	c, ok := OneLetter(" trp")
	assert.True(t, ok)
	assert.Equal(t, byte('W'), c)
	_, ok = OneLetter("HOH")
	assert.False(t, ok)
}

func TestClassifyRealCalculation(t *testing.T) {
	// A lone leucine is fully exposed.
	recs := []structure.Record{
		{Name: "N", ResName: "LEU", ResSeq: "1", X: -0.5, Y: 1.4, Z: 0},
		{Name: "CA", ResName: "LEU", ResSeq: "1", X: 0, Y: 0, Z: 0},
		{Name: "C", ResName: "LEU", ResSeq: "1", X: 1.5, Y: 0, Z: 0},
		{Name: "O", ResName: "LEU", ResSeq: "1", X: 2.2, Y: 1, Z: 0},
		{Name: "CB", ResName: "LEU", ResSeq: "1", X: -0.5, Y: -0.8, Z: 1.2},
		{Name: "CG", ResName: "LEU", ResSeq: "1", X: -0.2, Y: -2.3, Z: 1.3},
		{Name: "CD1", ResName: "LEU", ResSeq: "1", X: -0.8, Y: -3, Z: 2.5},
		{Name: "CD2", ResName: "LEU", ResSeq: "1", X: -0.6, Y: -3, Z: 0},
	}
	s, err := structure.NewBuilder().Build(recs)
	require.NoError(t, err)
	res, err := sasa.Calculate(s.Atoms(), sasa.DefaultParameters())
	require.NoError(t, err)

	exps, err := ExposedHydrophobics(s, res)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Greater(t, exps[0].SideArea, HydrophobicThresholds['L'])
	assert.Less(t, exps[0].SideArea, exps[0].Area)
}
