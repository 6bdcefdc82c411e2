// SPDX-License-Identifier: MIT
// Command eqcol-gen writes a synthetic planted-partition ECP instance file
// usable as eqcol's input: "n m" header followed by m "a b" edge lines,
// 1-based, matching instance.ReadFile's contract.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/eqcol/builder"
	"github.com/katalvlaran/eqcol/core"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("eqcol-gen", flag.ContinueOnError)

	n := fs.Int("n", 100, "vertex count")
	k := fs.Int("k", 5, "planted class count")
	density := fs.Float64("density", 0.5, "Bernoulli edge density between differing classes")
	seed := fs.Int64("seed", 0, "PRNG seed")
	clique := fs.Bool("clique_witness", false, "embed a k-vertex clique certifying best_k >= k")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: eqcol-gen -n N -k K [options] <output_file>")
		return 2
	}

	g, err := builder.BuildGraph(
		nil,
		[]builder.BuilderOption{builder.WithSeed(*seed), builder.WithCliqueWitness(*clique)},
		builder.PlantedPartition(*n, *k, *density),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eqcol-gen: %v\n", err)
		return 1
	}

	if err := writeInstanceFile(fs.Arg(0), g, *n); err != nil {
		fmt.Fprintf(os.Stderr, "eqcol-gen: %v\n", err)
		return 1
	}
	return 0
}

// writeInstanceFile flattens g's edge set into the plain-text instance
// format ("n m" header, then "a b" 1-based edge lines).
func writeInstanceFile(path string, g *core.Graph, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	edges := g.Edges()

	if _, err := fmt.Fprintf(f, "%d %d\n", n, len(edges)); err != nil {
		return err
	}
	for _, e := range edges {
		var a, b int
		if _, err := fmt.Sscanf(e.From, "%d", &a); err != nil {
			return fmt.Errorf("parse edge endpoint %q: %w", e.From, err)
		}
		if _, err := fmt.Sscanf(e.To, "%d", &b); err != nil {
			return fmt.Errorf("parse edge endpoint %q: %w", e.To, err)
		}
		if _, err := fmt.Fprintf(f, "%d %d\n", a+1, b+1); err != nil {
			return err
		}
	}
	return nil
}
