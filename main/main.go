package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/nobuyasu/gosasa"
	"github.com/nobuyasu/gosasa/io"
	"github.com/nobuyasu/gosasa/sasa"
	"github.com/nobuyasu/gosasa/structure"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		config, exampleConfig string
		plotFile              string
		threads               int
		sweep                 bool
	)
	vars := map[string]*string {
		"Config": &config,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&config, "Config", "",
		"Configuration file for a [SASA] calculation.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. The only accepted argument is 'SASA'.",
	)
	flag.IntVar(
		&threads, "Threads", 0,
		"Overrides the 'Threads' value of the configuration file.",
	)
	flag.BoolVar(
		&sweep, "Sweep", false,
		"Computes the total area at several resolutions of both algorithms " +
			"instead of a single result.",
	)
	flag.StringVar(
		&plotFile, "Plot", "",
		"With -Sweep, saves a plot of the sweep to the given file.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Config":
		con, err := io.ReadSASAConfig(config)
		if err != nil { log.Fatal(err.Error()) }

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		}
		if threads != 0 {
			con.Threads = threads
		}

		fg := setupFiles(con)
		defer fg.Close()

		if sweep {
			sweepMain(con, plotFile)
		} else {
			sasaMain(con)
		}

	case "ExampleConfig":
		switch exampleConfig {
		case "SASA":
			fmt.Println(io.ExampleSASAFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'SASA'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gosasa " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupFiles(con *io.SASAConfig) *FileGroup {
	fg := &FileGroup{}

	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(f)
		fg.log = f
	}

	if con.ValidProfileFile() {
		f, err := os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err.Error())
		}
		fg.prof = f
	}

	return fg
}

func loadMethod(con *io.SASAConfig) (*gosasa.Method, *structure.Snapshot) {
	m, err := gosasa.NewMethod(con)
	if err != nil { log.Fatal(err.Error()) }
	m.Log(true)

	s, err := structure.ReadTable(con.Input, con.ResidueColumn)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d atoms in %d residues from %s",
		s.Len(), len(s.Residues()), con.Input)

	return m, s
}

func sasaMain(con *io.SASAConfig) {
	m, s := loadMethod(con)

	res, err := m.Result(s)
	if err != nil { log.Fatal(err.Error()) }

	hd := &io.ResultHeader{
		Input: con.Input, Params: m.Parameters(), CoreCutoff: m.CoreCutoff(),
	}
	if err = io.WriteResultFile(con.Output, hd, s, res); err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidOutput() {
		log.Println("Wrote results to", con.Output)
	}
}

func sweepMain(con *io.SASAConfig, plotFile string) {
	m, s := loadMethod(con)

	rows, err := m.Sweep(s, gosasa.DefaultSweepSlices, gosasa.DefaultSweepPoints)
	if err != nil { log.Fatal(err.Error()) }

	out := os.Stdout
	if con.ValidOutput() {
		out, err = os.Create(con.Output)
		if err != nil { log.Fatal(err.Error()) }
		defer out.Close()
	}
	if err = io.WriteSweep(out, rows); err != nil { log.Fatal(err.Error()) }

	if plotFile != "" {
		plotSweep(plotFile, con.Input, rows)
		log.Println("Saved sweep plot to", plotFile)
	}
}

func plotSweep(fname, input string, rows []io.SweepRow) {
	lrXs, lrYs := []float64{}, []float64{}
	srXs, srYs := []float64{}, []float64{}
	for _, row := range rows {
		if row.Algorithm == sasa.LeeRichards {
			lrXs = append(lrXs, float64(row.Resolution))
			lrYs = append(lrYs, row.Total)
		} else {
			srXs = append(srXs, float64(row.Resolution))
			srYs = append(srYs, row.Total)
		}
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(lrXs, lrYs, "o-", plt.LW(3), plt.C("b"))
	plt.Plot(srXs, srYs, "s", plt.C("r"))
	plt.Title(fmt.Sprintf("SASA resolution sweep of %s", input))
	plt.XLabel("slices (blue) / points (red)", plt.FontSize(16))
	plt.YLabel(`SASA [${\rm \AA}^2$]`, plt.FontSize(16))
	plt.XScale("log")
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	plt.Execute()
}
