package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"inventory-game/internal/config"
	"inventory-game/internal/demand"
)

// gen-demand refreshes a fixed demand file: it draws a seeded sequence and
// writes it as a CSV with a single "demand" column, the format the fixed
// demand mode reads back.
func main() {
	out := flag.String("out", "sample_demand.csv", "Output CSV path")
	seed := flag.Int64("seed", config.DefaultDemandSeed, "Random seed")
	low := flag.Int("low", config.DefaultDemandLow, "Minimum demand per period")
	high := flag.Int("high", config.DefaultDemandHigh, "Maximum demand per period")
	periods := flag.Int("periods", config.DefaultHorizon, "Number of periods")
	flag.Parse()

	src, err := demand.NewRandomSource(*seed, *low, *high, *periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen-demand: %v\n", err)
		os.Exit(1)
	}

	series := make([]float64, *periods)
	for i := range series {
		v, err := src.DemandFor(i + 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gen-demand: %v\n", err)
			os.Exit(1)
		}
		series[i] = v
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "gen-demand: %v\n", err)
			os.Exit(1)
		}
	}
	if err := demand.WriteSeriesCSV(*out, series); err != nil {
		fmt.Fprintf(os.Stderr, "gen-demand: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d periods to %s (seed=%d, range=[%d,%d])\n", *periods, *out, *seed, *low, *high)
}
