// SPDX-License-Identifier: MIT
// Command eqcol solves the Equitable Graph Coloring Problem for a single
// instance file and appends the result to a CSV.
//
// Usage: eqcol <input_file> <output_file> [options]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/eqcol/clock"
	"github.com/katalvlaran/eqcol/descent"
	"github.com/katalvlaran/eqcol/ecio"
	"github.com/katalvlaran/eqcol/instance"
	"github.com/katalvlaran/eqcol/tabu"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("eqcol", flag.ContinueOnError)

	seed := fs.Int64("seed", 0, "PRNG seed")
	alpha := fs.Float64("alpha", 0.6, "dynamic tenure coefficient on |C(s)|")
	beta := fs.Int("beta", 10, "upper bound of the uniform additive tenure term")
	aspiration := fs.Int("aspiration", 1, "0|1: enable aspiration criterion")
	timeLimit := fs.Int("time_limit", 1000, "wall-clock budget in seconds for the entire descent")
	maxIter := fs.Int("max_iter", 10_000_000, "per-attempt iteration cap")
	perturbationLimit := fs.Int("perturbation_limit", 1000, "iterations without improvement before perturbation")
	perturbationStrength := fs.Float64("perturbation_strength", 0.16, "fraction of n used as perturbation exchange count")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: eqcol <input_file> <output_file> [options]")
		return 2
	}
	if *aspiration != 0 && *aspiration != 1 {
		fmt.Fprintf(os.Stderr, "eqcol: --aspiration must be 0 or 1, got %d\n", *aspiration)
		return 2
	}

	inputFile := fs.Arg(0)
	outputFile := fs.Arg(1)

	inst, err := instance.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eqcol: %v\n", err)
		return 1
	}

	if components, err := inst.ConnectedComponents(); err != nil {
		fmt.Fprintf(os.Stderr, "eqcol: connectivity diagnostic failed: %v\n", err)
	} else if len(components) > 1 {
		fmt.Fprintf(os.Stderr, "eqcol: warning: %s has %d connected components\n", inputFile, len(components))
	}

	cfg := tabu.NewConfig(
		tabu.WithMaxIter(*maxIter),
		tabu.WithAlpha(*alpha),
		tabu.WithBeta(*beta),
		tabu.WithAspiration(*aspiration == 1),
		tabu.WithPerturbationLimit(*perturbationLimit),
		tabu.WithPerturbationStrength(*perturbationStrength),
	)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "eqcol: %v\n", err)
		return 2
	}

	oracle := clock.NewMonotonic(time.Duration(*timeLimit) * time.Second)

	start := time.Now()
	res, err := descent.Run(inst, cfg, *seed, oracle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eqcol: %v\n", err)
		return 1
	}
	elapsed := time.Since(start).Seconds()

	if err := ecio.AppendRow(outputFile, inputFile, *seed, cfg, res, elapsed); err != nil {
		fmt.Fprintf(os.Stderr, "eqcol: %v\n", err)
		return 1
	}

	fmt.Printf("eqcol: %s | K %d->%d | seed %d | %.4fs | %d iterations\n",
		inputFile, res.InitialK, res.BestK, *seed, elapsed, res.TotalIter)
	return 0
}
