// Command xtal builds a tetragonal unit cell and prints its gonum
// representation as JSON.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/xtallography/internal/config"
	"github.com/banshee-data/xtallography/internal/lattice"
	"github.com/banshee-data/xtallography/internal/lattice/gonumlat"
	"github.com/banshee-data/xtallography/internal/monitoring"
	"github.com/banshee-data/xtallography/internal/units"
	"github.com/banshee-data/xtallography/internal/version"
)

// cellSummary is the JSON document written to stdout.
type cellSummary struct {
	LatticeSystem lattice.LatticeSystem `json:"lattice_system"`
	Centering     lattice.Centering     `json:"centering"`
	A             float64               `json:"a"`
	C             float64               `json:"c"` // ångströms
	Volume        float64               `json:"volume"`
	Metric        [][]float64           `json:"metric"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xtal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	a := fs.Float64("a", 0, "Lattice constant a (equal axes)")
	c := fs.Float64("c", 0, "Lattice constant c (principal axis)")
	centering := fs.String("centering", string(lattice.CenteringPrimitive), "Cell centering (primitive, body_centered, ...)")
	lengthUnits := fs.String("units", units.Angstrom, "Length units of -a and -c ("+units.GetValidUnitsString()+")")
	configPath := fs.String("config", "", "Path to a JSON cell config file")
	showVersion := fs.Bool("version", false, "Print version and exit")
	verbose := fs.Bool("v", false, "Log diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "xtal %s\n", version.String())
		return 0
	}

	if *verbose {
		monitoring.SetOutput(stderr, "xtal: ")
	} else {
		monitoring.SetLogger(nil)
	}

	cfg := config.EmptyCellConfig()
	if *configPath != "" {
		loaded, err := config.LoadCellConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "xtal: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// explicitly set flags override the config file
	override := config.EmptyCellConfig()
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			override.A = a
		case "c":
			override.C = c
		case "centering":
			parsed, err := lattice.ParseCentering(*centering)
			if err != nil {
				flagErr = err
				return
			}
			override.Centering = &parsed
		case "units":
			override.Units = lengthUnits
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "xtal: %v\n", flagErr)
		return 1
	}
	cfg = cfg.Merge(override)

	cell, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(stderr, "xtal: %v\n", err)
		return 1
	}
	monitoring.Logf("built %s", cell)

	summary, err := summarize(cell, gonumlat.Backend{})
	if err != nil {
		fmt.Fprintf(stderr, "xtal: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		fmt.Fprintf(stderr, "xtal: failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func summarize(cell *lattice.TetragonalUnitCell, backend lattice.Backend) (*cellSummary, error) {
	rep, err := cell.ToBackend(backend)
	if err != nil {
		return nil, err
	}
	lc, ok := rep.(*gonumlat.LatticeConstants)
	if !ok {
		return nil, errors.New("unexpected backend representation")
	}
	monitoring.Logf("converted %s: volume=%g", cell, lc.Volume())

	r, cols := lc.Metric.Dims()
	metric := make([][]float64, r)
	for i := range metric {
		metric[i] = make([]float64, cols)
		for j := range metric[i] {
			metric[i][j] = lc.Metric.At(i, j)
		}
	}

	return &cellSummary{
		LatticeSystem: cell.LatticeSystem(),
		Centering:     cell.Centering(),
		A:             cell.A(),
		C:             cell.C(),
		Volume:        lc.Volume(),
		Metric:        metric,
	}, nil
}
